package schema

import (
	"fmt"

	"github.com/robinvdvleuten/readshow/decode"
	"github.com/robinvdvleuten/readshow/parser"
)

var builtins = map[string]decode.Type[any]{
	"Int":      decode.Erase(decode.Int),
	"Int8":     decode.Erase(decode.Int8),
	"Int16":    decode.Erase(decode.Int16),
	"Int32":    decode.Erase(decode.Int32),
	"Int64":    decode.Erase(decode.Int64),
	"Word":     decode.Erase(decode.Uint),
	"Word8":    decode.Erase(decode.Uint8),
	"Word16":   decode.Erase(decode.Uint16),
	"Word32":   decode.Erase(decode.Uint32),
	"Word64":   decode.Erase(decode.Uint64),
	"Integer":  decode.Erase(decode.BigInt),
	"Double":   decode.Erase(decode.Float64),
	"Float":    decode.Erase(decode.Float32),
	"Decimal":  decode.Erase(decode.Decimal),
	"Bool":     decode.Erase(decode.Bool),
	"Ordering": decode.Erase(decode.OrderingType),
	"Char":     decode.Erase(decode.Char),
	"String":   decode.Erase(decode.String),
}

// arities of the type constructors taking arguments.
var arities = map[string]int{
	"Maybe":  1,
	"Either": 2,
}

// Examples are common type expressions, offered when none is given.
var Examples = []string{
	"Int",
	"Double",
	"Bool",
	"String",
	"[Int]",
	"(Int, Bool)",
	"Maybe Int",
	"Either String Int",
}

// Compile parses text and builds the decoder it describes.
func Compile(filename, text string) (decode.Type[any], error) {
	expr, err := Parse(filename, text)
	if err != nil {
		return decode.Type[any]{}, err
	}

	c := &compiler{filename: filename, source: text}
	return c.expr(expr)
}

type compiler struct {
	filename string
	source   string
}

func (c *compiler) errorf(at *Atom, format string, args ...interface{}) error {
	return &parser.ParseError{
		Pos:     position(c.filename, at.Pos),
		Message: fmt.Sprintf(format, args...),
		Source:  []byte(c.source),
	}
}

func (c *compiler) expr(e *Expr) (decode.Type[any], error) {
	if len(e.Args) == 0 {
		return c.atom(e.Head)
	}

	head := e.Head
	arity, ok := arities[head.Name]
	if !ok {
		return decode.Type[any]{}, c.errorf(head, "%s does not take arguments", head)
	}
	if len(e.Args) != arity {
		return decode.Type[any]{}, c.errorf(head, "%s expects %d argument(s), got %d", head.Name, arity, len(e.Args))
	}

	args := make([]decode.Type[any], len(e.Args))
	for i, arg := range e.Args {
		t, err := c.atom(arg)
		if err != nil {
			return decode.Type[any]{}, err
		}
		args[i] = t
	}

	if head.Name == "Maybe" {
		return decode.Erase(decode.MaybeOf(args[0])), nil
	}
	return decode.Erase(decode.EitherOf(args[0], args[1])), nil
}

func (c *compiler) atom(a *Atom) (decode.Type[any], error) {
	switch {
	case a.Unit:
		return decode.Erase(decode.UnitType), nil

	case a.List != nil:
		// [Char] is a string literal, not a list of characters.
		if len(a.List.Args) == 0 && a.List.Head.Name == "Char" {
			return builtins["String"], nil
		}
		elem, err := c.expr(a.List)
		if err != nil {
			return decode.Type[any]{}, err
		}
		return decode.Erase(decode.ListOf(elem)), nil

	case a.Group != nil:
		return c.group(a)
	}

	if t, ok := builtins[a.Name]; ok {
		return t, nil
	}
	if arity, ok := arities[a.Name]; ok {
		return decode.Type[any]{}, c.errorf(a, "%s expects %d argument(s), got 0", a.Name, arity)
	}
	return decode.Type[any]{}, c.errorf(a, "unknown type %q", a.Name)
}

func (c *compiler) group(a *Atom) (decode.Type[any], error) {
	items := make([]decode.Type[any], len(a.Group))
	for i, item := range a.Group {
		t, err := c.expr(item)
		if err != nil {
			return decode.Type[any]{}, err
		}
		items[i] = t
	}

	switch len(items) {
	case 1:
		return items[0], nil
	case 2:
		return decode.Erase(decode.PairOf(items[0], items[1])), nil
	case 3:
		return decode.Erase(decode.TripleOf(items[0], items[1], items[2])), nil
	default:
		return decode.Type[any]{}, c.errorf(a, "tuples of %d elements are not supported", len(items))
	}
}
