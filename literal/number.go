package literal

import (
	"math/big"
	"strconv"

	"github.com/robinvdvleuten/readshow/parser"
)

// Number is the scanned text of an unsigned decimal literal. All slices alias
// the source buffer.
type Number struct {
	Text     []byte // Whole literal
	Digits   []byte // Integer part
	Fraction []byte // Digits after '.', nil when absent
	Exponent []byte // Exponent including its sign, nil when absent
}

// Mantissa returns the integer and fraction digits as one integer.
func (n Number) Mantissa() *big.Int {
	digits := make([]byte, 0, len(n.Digits)+len(n.Fraction))
	digits = append(digits, n.Digits...)
	digits = append(digits, n.Fraction...)

	m, ok := new(big.Int).SetString(string(digits), 10)
	if !ok {
		return new(big.Int)
	}
	return m
}

// Scale returns the power of ten the mantissa is multiplied by. Exponents too
// large for an int saturate.
func (n Number) Scale() int {
	exp := 0
	if n.Exponent != nil {
		// ParseInt saturates on range errors.
		v, _ := strconv.ParseInt(string(n.Exponent), 10, 32)
		exp = int(v)
	}
	return exp - len(n.Fraction)
}

// Order returns the decimal order of magnitude of a non-zero literal: the
// value lies in [10^(Order-1), 10^Order).
func (n Number) Order() int {
	significant := len(n.Digits) + len(n.Fraction)
	for _, c := range n.Digits {
		if c != '0' {
			break
		}
		significant--
	}
	if significant == len(n.Fraction) {
		for _, c := range n.Fraction {
			if c != '0' {
				break
			}
			significant--
		}
	}
	return n.Scale() + significant
}

// ScanNumber scans an unsigned decimal literal: a digit run, an optional
// fraction ('.' and at least one digit) and an optional exponent. A '.' not
// followed by a digit is left unconsumed. An exponent marker without digits is
// a hard failure.
func ScanNumber(in parser.Input) (Number, parser.Input, *parser.Error) {
	var num Number

	rest := scanDigits(in)
	if rest.Offset() == in.Offset() {
		return num, in, &parser.Error{Severity: parser.Soft, Message: noDigits(Decimal), At: in}
	}
	num.Digits = in.Until(rest)

	if dot, _ := rest.Peek(); dot == '.' {
		if d, _ := rest.PeekAt(1); isDecimalDigit(d) {
			start := rest.Advance(1)
			rest = scanDigits(start)
			num.Fraction = start.Until(rest)
		}
	}

	if e, _ := rest.Peek(); e == 'e' || e == 'E' {
		start := rest.Advance(1)
		digits := start
		if sign, _ := start.Peek(); sign == '+' || sign == '-' {
			digits = start.Advance(1)
		}
		end := scanDigits(digits)
		if end.Offset() == digits.Offset() {
			return num, rest, &parser.Error{Severity: parser.Hard, Message: "malformed exponent in numeric literal", At: digits}
		}
		num.Exponent = start.Until(end)
		rest = end
	}

	num.Text = in.Until(rest)
	return num, rest, nil
}

func scanDigits(in parser.Input) parser.Input {
	for {
		c, _ := in.Peek()
		if !isDecimalDigit(c) {
			return in
		}
		in = in.Advance(1)
	}
}

