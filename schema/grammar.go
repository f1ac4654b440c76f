// Package schema describes decoders with type expressions such as
// `Maybe (Either Int [Char])`.
//
// An expression is parsed into a small AST and compiled into a
// decode.Type[any]. The CLI uses it to pick a decoder at runtime.
package schema

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/robinvdvleuten/readshow/parser"
)

// Expr is a type constructor applied to zero or more arguments.
//
// Example:
//
//	Either String (Maybe Int)
type Expr struct {
	Pos  lexer.Position
	Head *Atom   `parser:"@@"`
	Args []*Atom `parser:"@@*"`
}

// Atom is a type name, a list type, the unit type or a parenthesized group.
// A group with one element is plain grouping; two or three make a tuple.
type Atom struct {
	Pos   lexer.Position
	Name  string  `parser:"  @Ident"`
	Unit  bool    `parser:"| @( '(' ')' )"`
	List  *Expr   `parser:"| '[' @@ ']'"`
	Group []*Expr `parser:"| '(' @@ ( ',' @@ )* ')'"`
}

func (e *Expr) String() string {
	parts := make([]string, 0, len(e.Args)+1)
	parts = append(parts, e.Head.String())
	for _, arg := range e.Args {
		parts = append(parts, arg.String())
	}
	return strings.Join(parts, " ")
}

func (a *Atom) String() string {
	switch {
	case a.Unit:
		return "()"
	case a.List != nil:
		return "[" + a.List.String() + "]"
	case a.Group != nil:
		items := make([]string, len(a.Group))
		for i, item := range a.Group {
			items[i] = item.String()
		}
		return "(" + strings.Join(items, ", ") + ")"
	default:
		return a.Name
	}
}

var (
	lex = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_']*`},
		{Name: "Punct", Pattern: `[\[\](),]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	grammar = participle.MustBuild[Expr](
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
)

// Parse parses a type expression.
func Parse(filename, text string) (*Expr, error) {
	expr, err := grammar.ParseString(filename, text)
	if err != nil {
		return nil, newParseError(filename, text, err)
	}
	return expr, nil
}

// newParseError converts a grammar error into a located error.
func newParseError(filename, text string, err error) *parser.ParseError {
	if pErr, ok := err.(participle.Error); ok {
		return &parser.ParseError{
			Pos:        position(filename, pErr.Position()),
			Message:    pErr.Message(),
			Source:     []byte(text),
			Underlying: err,
		}
	}

	return &parser.ParseError{
		Pos:        parser.Position{Filename: filename, Line: 1, Column: 1},
		Message:    err.Error(),
		Source:     []byte(text),
		Underlying: err,
	}
}

func position(filename string, pos lexer.Position) parser.Position {
	return parser.Position{
		Filename: filename,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}
