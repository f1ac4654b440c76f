// Package literal decodes numeric, character and string literals in the
// printed form a show-style printer produces.
package literal

import (
	"fmt"
	"math/big"

	"github.com/robinvdvleuten/readshow/parser"
	"golang.org/x/exp/constraints"
)

// Radix describes the digits of one number base.
type Radix struct {
	Name       string
	Base       int64
	IsDigit    func(rune) bool
	DigitValue func(rune) int64
}

var (
	Decimal = Radix{Name: "decimal", Base: 10, IsDigit: isDecimalDigit, DigitValue: digitValue}
	Octal   = Radix{Name: "octal", Base: 8, IsDigit: isOctalDigit, DigitValue: digitValue}
	Hex     = Radix{Name: "hex", Base: 16, IsDigit: isHexDigit, DigitValue: digitValue}
)

func isDecimalDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isOctalDigit(r rune) bool {
	return r >= '0' && r <= '7'
}

func isHexDigit(r rune) bool {
	return isDecimalDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func digitValue(r rune) int64 {
	switch {
	case r >= '0' && r <= '9':
		return int64(r - '0')
	case r >= 'a' && r <= 'f':
		return int64(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int64(r-'A') + 10
	}
	return 0
}

func noDigits(r Radix) string {
	return fmt.Sprintf("expected one or more %s digits", r.Name)
}

// Natural consumes one or more digits of the radix and folds them left to
// right as acc*base + digit.
func Natural(r Radix) parser.Parser[*big.Int] {
	return func(in parser.Input) parser.Result[*big.Int] {
		digits := parser.ManySatisfy(r.IsDigit)(in)
		if len(digits.Value) == 0 {
			return parser.Failure[*big.Int](in, parser.Soft, noDigits(r))
		}

		base := big.NewInt(r.Base)
		acc := new(big.Int)
		d := new(big.Int)
		for _, c := range digits.Value {
			acc.Mul(acc, base)
			acc.Add(acc, d.SetInt64(r.DigitValue(rune(c))))
		}
		return parser.Ok(digits.Rest, acc)
	}
}

// NaturalFast decodes a decimal digit run with a single conversion instead of
// a per-digit fold. It consumes exactly what Natural(Decimal) consumes and fails
// with the same message.
func NaturalFast() parser.Parser[*big.Int] {
	return func(in parser.Input) parser.Result[*big.Int] {
		digits := parser.ManySatisfy(isDecimalDigit)(in)
		if len(digits.Value) == 0 {
			return parser.Failure[*big.Int](in, parser.Soft, noDigits(Decimal))
		}

		n, ok := new(big.Int).SetString(string(digits.Value), 10)
		if !ok {
			return parser.Failure[*big.Int](in, parser.Soft, noDigits(Decimal))
		}
		return parser.Ok(digits.Rest, n)
	}
}

// UnsignedInRadix decodes a natural number of the radix into T.
func UnsignedInRadix[T constraints.Integer](r Radix) parser.Parser[T] {
	return Narrow[T](Natural(r))
}

// Narrow converts an arbitrary precision result into T, failing hard when the
// value does not fit.
func Narrow[T constraints.Integer](p parser.Parser[*big.Int]) parser.Parser[T] {
	return func(in parser.Input) parser.Result[T] {
		r := p(in)
		if r.Err != nil {
			return parser.Propagate[T](r)
		}

		v, ok := fits[T](r.Value)
		if !ok {
			var zero T
			return parser.Failure[T](in, parser.Hard, fmt.Sprintf("value %s out of range for %T", r.Value, zero))
		}
		return parser.Ok(r.Rest, v)
	}
}

func fits[T constraints.Integer](v *big.Int) (T, bool) {
	var zero T
	if ^zero < 0 {
		if !v.IsInt64() {
			return zero, false
		}
		n := v.Int64()
		t := T(n)
		return t, int64(t) == n
	}

	if !v.IsUint64() {
		return zero, false
	}
	n := v.Uint64()
	t := T(n)
	return t, uint64(t) == n
}

// Signed runs p, or commits to a negated p after a leading '-'.
func Signed[T any](p parser.Parser[T], negate func(T) T) parser.Parser[T] {
	negative := parser.Then(
		parser.Satisfy(func(r rune) bool { return r == '-' }, "'-'"),
		parser.Commit(parser.Map(p, negate)),
	)
	return func(in parser.Input) parser.Result[T] {
		if in.HasPrefix("-") {
			return negative(in)
		}
		return p(in)
	}
}

// NegateBig returns -v.
func NegateBig(v *big.Int) *big.Int {
	return new(big.Int).Neg(v)
}

func prefixed(prefixes []string, r Radix) parser.Parser[*big.Int] {
	digits := Natural(r)
	return func(in parser.Input) parser.Result[*big.Int] {
		for _, p := range prefixes {
			if in.HasPrefix(p) {
				return digits(in.Advance(len(p)))
			}
		}
		return parser.Failure[*big.Int](in, parser.Soft, fmt.Sprintf("expected a %s literal", r.Name))
	}
}

// HexLiteral decodes a 0x or 0X prefixed hexadecimal number.
func HexLiteral() parser.Parser[*big.Int] {
	return prefixed([]string{"0x", "0X"}, Hex)
}

// OctLiteral decodes a 0o or 0O prefixed octal number.
func OctLiteral() parser.Parser[*big.Int] {
	return prefixed([]string{"0o", "0O"}, Octal)
}

// IntegerLiteral decodes a hexadecimal, octal or decimal natural number.
func IntegerLiteral() parser.Parser[*big.Int] {
	return parser.OrElse(HexLiteral(), parser.OrElse(OctLiteral(), NaturalFast()))
}
