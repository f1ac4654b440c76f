package decode

import (
	"fmt"
	"strings"

	"github.com/robinvdvleuten/readshow/lexer"
	"github.com/robinvdvleuten/readshow/parser"
)

// Parens decodes p inside parentheses. With required set exactly one layer is
// mandatory; otherwise any number of layers, including none, is accepted.
// Extra layers inside a required one are always allowed.
func Parens[T any](required bool, p parser.Parser[T]) parser.Parser[T] {
	var optional parser.Parser[T]
	inner := func(in parser.Input) parser.Result[T] {
		return optional(in)
	}
	mandatory := parser.Bracket(lexer.ExpectWord("("), lexer.ExpectWord(")"), parser.Parser[T](inner))
	optional = parser.OrElse(mandatory, p)

	if required {
		return mandatory
	}
	return optional
}

// OptionalParens is Parens(false, p).
func OptionalParens[T any](p parser.Parser[T]) parser.Parser[T] {
	return Parens(false, p)
}

// Field decodes `name = value`. Once the name is seen the rest is committed.
func Field[T any](name string, t Type[T]) parser.Parser[T] {
	value := parser.Then(lexer.ExpectWord("="), t.ParsePrec(0))
	return parser.Then(
		lexer.ExpectWord(name),
		parser.Commit(parser.Decorate(value, parser.Prefix("in field "+name+",\n\t"))),
	)
}

// NextField decodes `, name = value`, for every field after the first.
func NextField[T any](name string, t Type[T]) parser.Parser[T] {
	return parser.Then(lexer.ExpectWord(","), Field(name, t))
}

// Record decodes `Name {fields}`, committing after the constructor name.
func Record[T any](name string, fields parser.Parser[T]) parser.Parser[T] {
	body := parser.Bracket(lexer.ExpectWord("{"), lexer.ExpectWord("}"), fields)
	return parser.Then(
		lexer.ExpectWord(name),
		parser.Commit(parser.Decorate(body, parser.Prefix("within record "+name+",\n\t"))),
	)
}

// Alt is a named constructor and the decoder of its arguments.
type Alt[T any] struct {
	Name   string
	Parser parser.Parser[T]
}

// Constructors tries each constructor name in order. The first name whose
// token matches wins and commits to decoding its arguments, so the order of
// alternatives matters when names overlap.
func Constructors[T any](alts ...Alt[T]) parser.Parser[T] {
	return constructors(func(name string) parser.Parser[[]byte] {
		return parser.Map(lexer.ExpectWord(name), func(tok lexer.Token) []byte { return tok.Text })
	}, alts)
}

// LiteralConstructors is Constructors matching names as raw text instead of
// whole tokens. A name matches any input it is a prefix of, which suits
// compact encodings without separators between a tag and its payload.
func LiteralConstructors[T any](alts ...Alt[T]) parser.Parser[T] {
	return constructors(func(name string) parser.Parser[[]byte] {
		return parser.Then(parser.Spaces(), lexer.ExpectLiteral(name))
	}, alts)
}

func constructors[T any](match func(string) parser.Parser[[]byte], alts []Alt[T]) parser.Parser[T] {
	choices := make([]parser.Alt[T], len(alts))
	for i, alt := range alts {
		args := parser.Commit(parser.Decorate(alt.Parser, parser.Prefix("got constructor, but within "+alt.Name+",\n\t")))
		choices[i] = parser.Alt[T]{
			Label:  alt.Name,
			Parser: parser.Then(match(alt.Name), args),
		}
	}
	return parser.FirstOf(choices...)
}

// Enumeration decodes one of a fixed set of values, recognized by the token
// show prints for them.
func Enumeration[T any](typeName string, values []T, show func(T) string) parser.Parser[T] {
	words := make([]string, len(values))
	for i, v := range values {
		words[i] = show(v)
	}
	expected := fmt.Sprintf("expected %s value (%s)", typeName, joinOr(words))

	return func(in parser.Input) parser.Result[T] {
		tok := lexer.NextToken(in)
		if tok.Err.IsHard() {
			return parser.Propagate[T](tok)
		}
		if tok.Err == nil {
			for i, word := range words {
				if string(tok.Value.Text) == word {
					return parser.Ok(tok.Rest, values[i])
				}
			}
		}
		return parser.Failure[T](in.SkipSpace(), parser.Soft, expected)
	}
}

// joinOr renders a, b or c.
func joinOr(words []string) string {
	if len(words) < 2 {
		return strings.Join(words, "")
	}
	return strings.Join(words[:len(words)-1], ", ") + " or " + words[len(words)-1]
}
