// Package readshow reads values back from the text a show-style printer
// produces.
//
// Decoders are described by decode.Type values:
//
//	v, err := readshow.ReadString(ctx, decode.MaybeOf(decode.Int), "Just (-3)")
//
// Errors returned by this package are *parser.ParseError values locating the
// failure in the input.
package readshow

import (
	"context"
	"strings"

	"github.com/robinvdvleuten/readshow/decode"
	"github.com/robinvdvleuten/readshow/parser"
	"github.com/robinvdvleuten/readshow/telemetry"
)

// Option configures Read.
type Option func(*options)

type options struct {
	filename string
}

// WithFilename names the input in error positions.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Decode decodes one T from the front of src and returns the unconsumed rest.
func Decode[T any](t decode.Type[T], src []byte, opts ...Option) (T, []byte, error) {
	o := newOptions(opts)

	r := t.ParsePrec(0).Run(src)
	if r.Err != nil {
		var zero T
		return zero, nil, parser.NewParseError(o.filename, r.Err)
	}
	return r.Value, r.Rest.Bytes(), nil
}

// Read decodes all of src as one T. Only whitespace may follow the value.
func Read[T any](ctx context.Context, t decode.Type[T], src []byte, opts ...Option) (T, error) {
	o := newOptions(opts)

	timer := telemetry.FromContext(ctx).Start("read")
	defer timer.End()
	timer.Bytes(len(src))

	decodeTimer := timer.Child("decode")
	r := parser.Skip(t.ParsePrec(0), parser.Then(parser.Spaces(), parser.End()))(parser.NewInput(src))
	decodeTimer.Bytes(r.Rest.Offset())
	decodeTimer.End()

	if r.Err != nil {
		var zero T
		return zero, parser.NewParseError(o.filename, r.Err)
	}
	return r.Value, nil
}

// ReadString is Read over a string.
func ReadString[T any](ctx context.Context, t decode.Type[T], s string, opts ...Option) (T, error) {
	return Read(ctx, t, []byte(s), opts...)
}

// Raw returns src without decoding it.
func Raw(src []byte) []byte {
	v, _, _ := Decode(decode.Raw, src)
	return v
}

// Reading is one result of the legacy reads convention: a value and the text
// left after it.
type Reading[T any] struct {
	Value T
	Rest  string
}

// Reads adapts t to a function returning zero readings on failure and exactly
// one on success.
func Reads[T any](t decode.Type[T]) func(prec int, s string) []Reading[T] {
	return func(prec int, s string) []Reading[T] {
		r := t.ParsePrec(prec).RunString(s)
		if r.Err != nil {
			return nil
		}
		return []Reading[T]{{Value: r.Value, Rest: r.Rest.String()}}
	}
}

// FromReads adapts a legacy reads function to a Type. The function must
// return at most one reading whose Rest is a suffix of its input.
func FromReads[T any](reads func(prec int, s string) []Reading[T]) decode.Type[T] {
	return decode.FromPrec(func(prec int) parser.Parser[T] {
		return func(in parser.Input) parser.Result[T] {
			s := in.String()
			readings := reads(prec, s)

			switch {
			case len(readings) == 0:
				return parser.Failure[T](in, parser.Soft, "no parse")
			case len(readings) > 1:
				return parser.Failure[T](in, parser.Soft, "ambiguous parse")
			case !strings.HasSuffix(s, readings[0].Rest):
				return parser.Failure[T](in, parser.Hard, "reading left a remainder that is not a suffix of its input")
			}

			return parser.Ok(in.Advance(len(s)-len(readings[0].Rest)), readings[0].Value)
		}
	})
}
