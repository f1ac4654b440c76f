package literal

import (
	"math"
	"strings"

	"github.com/robinvdvleuten/readshow/parser"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

// Decimal orders beyond which every float64 is infinite or zero.
const (
	maxFloatOrder = 330
	minFloatOrder = -330
)

// Float decodes an unsigned floating point literal. The value is assembled
// exactly from its digits before rounding to T once. When no digits are present
// the case-insensitive words nan and infinity are accepted.
func Float[T constraints.Float]() parser.Parser[T] {
	special := specialFloat[T]()
	return func(in parser.Input) parser.Result[T] {
		num, rest, err := ScanNumber(in)
		if err == nil {
			return parser.Ok(rest, toFloat[T](num))
		}
		if err.IsHard() {
			return parser.Result[T]{Rest: err.At, Err: err}
		}

		if r := special(in); !r.Failed() {
			return r
		}
		return parser.Failure[T](in, parser.Soft, "expected a floating point number")
	}
}

func toFloat[T constraints.Float](num Number) T {
	mantissa := num.Mantissa()
	if mantissa.Sign() == 0 {
		return 0
	}

	switch order := num.Order(); {
	case order > maxFloatOrder:
		return T(math.Inf(1))
	case order < minFloatOrder:
		return 0
	}

	rat := decimal.NewFromBigInt(mantissa, int32(num.Scale())).Rat()

	var zero T
	if _, ok := any(zero).(float32); ok {
		f, _ := rat.Float32()
		return T(f)
	}
	f, _ := rat.Float64()
	return T(f)
}

func specialFloat[T constraints.Float]() parser.Parser[T] {
	word := parser.Many1Satisfy(isLetter, "letters")
	return func(in parser.Input) parser.Result[T] {
		r := word(in)
		if r.Failed() {
			return parser.Propagate[T](r)
		}

		switch w := string(r.Value); {
		case strings.EqualFold(w, "nan"):
			return parser.Ok(r.Rest, T(math.NaN()))
		case strings.EqualFold(w, "infinity"):
			return parser.Ok(r.Rest, T(math.Inf(1)))
		}
		return parser.Failure[T](in, parser.Soft, "expected nan or infinity")
	}
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// NegateFloat returns -v.
func NegateFloat[T constraints.Float](v T) T {
	return -v
}

// DecimalValue decodes an unsigned decimal literal exactly.
func DecimalValue() parser.Parser[decimal.Decimal] {
	return func(in parser.Input) parser.Result[decimal.Decimal] {
		num, rest, err := ScanNumber(in)
		if err != nil {
			if err.IsHard() {
				return parser.Result[decimal.Decimal]{Rest: err.At, Err: err}
			}
			return parser.Failure[decimal.Decimal](in, parser.Soft, "expected a decimal number")
		}

		scale := num.Scale()
		if scale > math.MaxInt32 || scale < math.MinInt32 {
			return parser.Failure[decimal.Decimal](in, parser.Hard, "exponent out of range in decimal literal")
		}
		return parser.Ok(rest, decimal.NewFromBigInt(num.Mantissa(), int32(scale)))
	}
}

// NegateDecimal returns -d.
func NegateDecimal(d decimal.Decimal) decimal.Decimal {
	return d.Neg()
}
