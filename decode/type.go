// Package decode reads typed values back from their printed form.
//
// A Type bundles the three ways a value of one Go type can be decoded:
// on its own, at a given precedence, and as a sequence. Types are built from
// a single parser and derive the remaining forms, so most decoders only have
// to describe one shape.
package decode

import (
	"github.com/robinvdvleuten/readshow/lexer"
	"github.com/robinvdvleuten/readshow/parser"
)

// Type is the decoding capability of T.
type Type[T any] struct {
	parse     parser.Parser[T]
	parsePrec func(prec int) parser.Parser[T]
	parseList parser.Parser[[]T]
}

// Parse decodes a T at the outermost level.
func (t Type[T]) Parse() parser.Parser[T] {
	return t.parse
}

// ParsePrec decodes a T appearing in a context of the given precedence.
// Values that print with spaces need parentheses above precedence 10.
func (t Type[T]) ParsePrec(prec int) parser.Parser[T] {
	return t.parsePrec(prec)
}

// ParseList decodes a sequence of T.
func (t Type[T]) ParseList() parser.Parser[[]T] {
	return t.parseList
}

// FromParser builds a Type from a parser that ignores precedence. Surrounding
// parentheses are always accepted.
func FromParser[T any](p parser.Parser[T]) Type[T] {
	prec := OptionalParens(p)
	t := Type[T]{
		parse:     p,
		parsePrec: func(int) parser.Parser[T] { return prec },
	}
	t.parseList = List(prec)
	return t
}

// FromPrec builds a Type from a precedence aware parser.
func FromPrec[T any](f func(prec int) parser.Parser[T]) Type[T] {
	t := Type[T]{
		parse:     f(0),
		parsePrec: f,
	}
	t.parseList = List(f(0))
	return t
}

// WithList replaces the sequence form of t.
func WithList[T any](t Type[T], list parser.Parser[[]T]) Type[T] {
	t.parseList = list
	return t
}

// List decodes a bracketed, comma separated sequence. Both [] and [ ] are empty.
func List[T any](elem parser.Parser[T]) parser.Parser[[]T] {
	return parser.Decorate(
		parser.BracketSep(lexer.ExpectWord("["), lexer.ExpectWord(","), lexer.ExpectWord("]"), elem),
		parser.Prefix("Expected a list, but\n\t"),
	)
}

// Erase forgets the static type of t, for decoders composed at runtime.
func Erase[T any](t Type[T]) Type[any] {
	up := func(v T) any { return v }
	return Type[any]{
		parse: parser.Map(t.parse, up),
		parsePrec: func(prec int) parser.Parser[any] {
			return parser.Map(t.parsePrec(prec), up)
		},
		parseList: parser.Map(t.parseList, func(vs []T) []any {
			out := make([]any, len(vs))
			for i, v := range vs {
				out[i] = v
			}
			return out
		}),
	}
}
