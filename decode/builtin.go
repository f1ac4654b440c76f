package decode

import (
	"github.com/robinvdvleuten/readshow/lexer"
	"github.com/robinvdvleuten/readshow/literal"
	"github.com/robinvdvleuten/readshow/parser"
	"golang.org/x/exp/constraints"
)

func skipSpace[T any](p parser.Parser[T]) parser.Parser[T] {
	return parser.Then(parser.Spaces(), p)
}

// Integer decodes a possibly negative hexadecimal, octal or decimal integer
// into T. Values outside the range of T are a hard failure.
func Integer[T constraints.Integer]() Type[T] {
	return FromParser(skipSpace(literal.Narrow[T](literal.Signed(literal.IntegerLiteral(), literal.NegateBig))))
}

// Floating decodes a possibly negative floating point number into T.
func Floating[T constraints.Float]() Type[T] {
	return FromParser(skipSpace(literal.Signed(literal.Float[T](), literal.NegateFloat[T])))
}

var (
	Int    = Integer[int]()
	Int8   = Integer[int8]()
	Int16  = Integer[int16]()
	Int32  = Integer[int32]()
	Int64  = Integer[int64]()
	Uint   = Integer[uint]()
	Uint8  = Integer[uint8]()
	Uint16 = Integer[uint16]()
	Uint32 = Integer[uint32]()
	Uint64 = Integer[uint64]()

	BigInt = FromParser(skipSpace(literal.Signed(literal.IntegerLiteral(), literal.NegateBig)))

	Float64 = Floating[float64]()
	Float32 = Floating[float32]()

	Decimal = FromParser(skipSpace(literal.Signed(literal.DecimalValue(), literal.NegateDecimal)))

	Bool = FromParser(Enumeration("Bool", []bool{false, true}, showBool))

	OrderingType = FromParser(Enumeration("Ordering", []Ordering{LT, EQ, GT}, Ordering.String))

	UnitType = FromParser(parser.Then(lexer.ExpectWord("("), parser.Map(lexer.ExpectWord(")"), func(lexer.Token) Unit {
		return Unit{}
	})))

	// Char decodes 'c'. Its sequence form is a string literal, never a list.
	Char = WithList(
		FromParser(skipSpace(literal.CharLiteral())),
		skipSpace(parser.Map(literal.StringLiteral(), func(s string) []rune { return []rune(s) })),
	)

	String = FromParser(skipSpace(literal.StringLiteral()))

	// Raw yields the remaining input without decoding it.
	Raw = FromPrec(func(int) parser.Parser[[]byte] { return RawBytes() })
)

func showBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// RawBytes consumes the rest of the input and yields it unchanged.
func RawBytes() parser.Parser[[]byte] {
	return func(in parser.Input) parser.Result[[]byte] {
		rest := in.Advance(in.Len())
		return parser.Ok(rest, in.Until(rest))
	}
}
