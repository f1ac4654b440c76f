package decode

import (
	"github.com/robinvdvleuten/readshow/lexer"
	"github.com/robinvdvleuten/readshow/parser"
)

var ordinals = [...]string{"1st", "2nd", "3rd"}

// tupleStep decodes one part of an n-tuple: the punctuation before item i
// (opening or separating) followed by the item itself.
func tupleStep[T any](n, i int, item parser.Parser[T]) parser.Parser[T] {
	punct, context := ",", "Separating"
	if i == 0 {
		punct, context = "(", "Opening"
	}
	tuple := "a " + string(rune('0'+n)) + "-tuple"

	return parser.Then(
		parser.Decorate(lexer.ExpectWord(punct), parser.Prefix(context+" "+tuple+"\n")),
		parser.Decorate(item, parser.Prefix("In "+ordinals[i]+" item of "+tuple+"\n")),
	)
}

func closeTuple(n int) parser.Parser[lexer.Token] {
	return parser.Decorate(lexer.ExpectWord(")"), parser.Prefix("Closing a "+string(rune('0'+n))+"-tuple\n"))
}

// tupleType derives a Type from a tuple body. A tuple opens with the same
// bracket as a surplus layer of parentheses, so every nesting level retries the
// level below it from the same view. The layered form is memoized per offset.
func tupleType[T any](body parser.Parser[T]) Type[T] {
	var layered parser.Parser[T]
	layered = parser.Memo(parser.OrElse(
		parser.Bracket(lexer.ExpectWord("("), lexer.ExpectWord(")"), parser.Lazy(func() parser.Parser[T] {
			return layered
		})),
		body,
	))

	return Type[T]{
		parse:     body,
		parsePrec: func(int) parser.Parser[T] { return layered },
		parseList: List(layered),
	}
}

// PairOf decodes (a,b).
func PairOf[A, B any](a Type[A], b Type[B]) Type[Pair[A, B]] {
	first := tupleStep(2, 0, a.ParsePrec(0))
	second := tupleStep(2, 1, b.ParsePrec(0))
	end := closeTuple(2)

	return tupleType(func(in parser.Input) parser.Result[Pair[A, B]] {
		x := first(in)
		if x.Err != nil {
			return parser.Propagate[Pair[A, B]](x)
		}
		y := second(x.Rest)
		if y.Err != nil {
			return parser.Propagate[Pair[A, B]](y)
		}
		z := end(y.Rest)
		if z.Err != nil {
			return parser.Propagate[Pair[A, B]](z)
		}
		return parser.Ok(z.Rest, Pair[A, B]{First: x.Value, Second: y.Value})
	})
}

// TripleOf decodes (a,b,c).
func TripleOf[A, B, C any](a Type[A], b Type[B], c Type[C]) Type[Triple[A, B, C]] {
	first := tupleStep(3, 0, a.ParsePrec(0))
	second := tupleStep(3, 1, b.ParsePrec(0))
	third := tupleStep(3, 2, c.ParsePrec(0))
	end := closeTuple(3)

	return tupleType(func(in parser.Input) parser.Result[Triple[A, B, C]] {
		x := first(in)
		if x.Err != nil {
			return parser.Propagate[Triple[A, B, C]](x)
		}
		y := second(x.Rest)
		if y.Err != nil {
			return parser.Propagate[Triple[A, B, C]](y)
		}
		z := third(y.Rest)
		if z.Err != nil {
			return parser.Propagate[Triple[A, B, C]](z)
		}
		e := end(z.Rest)
		if e.Err != nil {
			return parser.Propagate[Triple[A, B, C]](e)
		}
		return parser.Ok(e.Rest, Triple[A, B, C]{First: x.Value, Second: y.Value, Third: z.Value})
	})
}

// MaybeOf decodes Nothing or Just v. Just needs parentheses above
// precedence 9.
func MaybeOf[T any](t Type[T]) Type[Maybe[T]] {
	nothing := OptionalParens(parser.Map(lexer.ExpectWord("Nothing"), func(lexer.Token) Maybe[T] {
		return Nothing[T]()
	}))
	just := parser.Then(
		lexer.ExpectWord("Just"),
		parser.Commit(parser.Decorate(parser.Map(t.ParsePrec(10), Just[T]), parser.Prefix("but within Just, "))),
	)

	return FromPrec(func(prec int) parser.Parser[Maybe[T]] {
		return parser.Decorate(
			parser.OrElse(nothing, Parens(prec > 9, just)),
			parser.Prefix("expected a Maybe (Just or Nothing)\n\t"),
		)
	})
}

// EitherOf decodes Left l or Right r, parenthesized above precedence 9.
func EitherOf[L, R any](l Type[L], r Type[R]) Type[Either[L, R]] {
	alts := Constructors(
		Alt[Either[L, R]]{Name: "Left", Parser: parser.Map(l.ParsePrec(10), Left[L, R])},
		Alt[Either[L, R]]{Name: "Right", Parser: parser.Map(r.ParsePrec(10), Right[L, R])},
	)

	return FromPrec(func(prec int) parser.Parser[Either[L, R]] {
		return Parens(prec > 9, alts)
	})
}

// ListOf decodes the sequence form of t.
func ListOf[T any](t Type[T]) Type[[]T] {
	return FromParser(t.ParseList())
}
