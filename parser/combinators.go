package parser

import (
	"fmt"
	"strings"
	"unicode"
)

// Combinators for building decoders out of smaller decoders.
//
// Backtracking model:
//   - A soft failure lets OrElse, FirstOf and the repetition combinators retry
//     an alternative from the same view
//   - Commit promotes soft failures to hard ones, which propagate through every
//     enclosing alternative unchanged
//   - Error messages are composed outside-in with Decorate as failures propagate

// Map transforms the value of a successful parse.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(in Input) Result[B] {
		r := p(in)
		if r.Err != nil {
			return Propagate[B](r)
		}
		return Ok(r.Rest, f(r.Value))
	}
}

// Bind runs p and then the parser chosen from its value.
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(in Input) Result[B] {
		r := p(in)
		if r.Err != nil {
			return Propagate[B](r)
		}
		return f(r.Value)(r.Rest)
	}
}

// Then runs p and q in sequence and keeps the value of q.
func Then[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return func(in Input) Result[B] {
		r := p(in)
		if r.Err != nil {
			return Propagate[B](r)
		}
		return q(r.Rest)
	}
}

// Skip runs p and q in sequence and keeps the value of p.
func Skip[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return func(in Input) Result[A] {
		r := p(in)
		if r.Err != nil {
			return r
		}
		s := q(r.Rest)
		if s.Err != nil {
			return Propagate[A](s)
		}
		return Ok(s.Rest, r.Value)
	}
}

// OrElse tries p and, on a soft failure, retries q from the same view.
// A hard failure of p is returned without trying q.
func OrElse[T any](p, q Parser[T]) Parser[T] {
	return func(in Input) Result[T] {
		r := p(in)
		if r.Err == nil || r.Err.Severity == Hard {
			return r
		}
		return q(in)
	}
}

// Commit turns every soft failure inside p into a hard one.
func Commit[T any](p Parser[T]) Parser[T] {
	return func(in Input) Result[T] {
		r := p(in)
		if r.Err != nil && r.Err.Severity == Soft {
			promoted := *r.Err
			promoted.Severity = Hard
			r.Err = &promoted
		}
		return r
	}
}

// Decorate rewrites the message of any failure of p.
func Decorate[T any](p Parser[T], f func(string) string) Parser[T] {
	return func(in Input) Result[T] {
		r := p(in)
		if r.Err != nil {
			decorated := *r.Err
			decorated.Message = f(r.Err.Message)
			r.Err = &decorated
		}
		return r
	}
}

// DecorateHard rewrites the message of hard failures of p only.
func DecorateHard[T any](p Parser[T], f func(string) string) Parser[T] {
	return func(in Input) Result[T] {
		r := p(in)
		if r.Err.IsHard() {
			decorated := *r.Err
			decorated.Message = f(r.Err.Message)
			r.Err = &decorated
		}
		return r
	}
}

// Prefix returns a message transform that prepends s.
func Prefix(s string) func(string) string {
	return func(msg string) string {
		return s + msg
	}
}

// Suffix returns a message transform that appends s.
func Suffix(s string) func(string) string {
	return func(msg string) string {
		return msg + s
	}
}

// Alt is one labelled alternative of FirstOf.
type Alt[T any] struct {
	Label  string
	Parser Parser[T]
}

// FirstOf tries each alternative in order and returns the first success.
// A hard failure stops the search. When every alternative fails softly the
// message lists each label with the reason it was rejected.
func FirstOf[T any](alts ...Alt[T]) Parser[T] {
	return func(in Input) Result[T] {
		var msg strings.Builder
		msg.WriteString("failed to parse any of the possible choices:")

		for _, alt := range alts {
			r := alt.Parser(in)
			if r.Err == nil || r.Err.Severity == Hard {
				return r
			}
			fmt.Fprintf(&msg, "\n\t%s\n\t\t%s", alt.Label, indent(r.Err.Message, "\t\t"))
		}

		return Failure[T](in, Soft, msg.String())
	}
}

func indent(msg, prefix string) string {
	return strings.ReplaceAll(msg, "\n", "\n"+prefix)
}

// Lazy defers building a parser until it runs, for recursive grammars.
func Lazy[T any](f func() Parser[T]) Parser[T] {
	return func(in Input) Result[T] {
		return f()(in)
	}
}

// Many applies p zero or more times, stopping at the first soft failure.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(in Input) Result[[]T] {
		var items []T
		for {
			r := p(in)
			if r.Err != nil {
				if r.Err.Severity == Hard {
					return Propagate[[]T](r)
				}
				return Ok(in, items)
			}
			if r.Rest.Offset() == in.Offset() {
				// No progress; stop instead of looping forever.
				return Ok(in, append(items, r.Value))
			}
			items = append(items, r.Value)
			in = r.Rest
		}
	}
}

// NextChar consumes exactly one character.
func NextChar() Parser[rune] {
	return func(in Input) Result[rune] {
		if in.AtEnd() {
			return Failure[rune](in, Soft, "unexpected end of input")
		}
		r, size := in.Peek()
		return Ok(in.Advance(size), r)
	}
}

// Satisfy consumes one character matching pred; what describes the expected
// character class in the failure message.
func Satisfy(pred func(rune) bool, what string) Parser[rune] {
	return func(in Input) Result[rune] {
		if in.AtEnd() {
			return Failure[rune](in, Soft, fmt.Sprintf("expected %s, got end of input", what))
		}
		r, size := in.Peek()
		if !pred(r) {
			return Failure[rune](in, Soft, fmt.Sprintf("expected %s, got %q", what, r))
		}
		return Ok(in.Advance(size), r)
	}
}

// ManySatisfy consumes the longest run of characters matching pred, possibly
// empty. The returned bytes alias the source buffer.
func ManySatisfy(pred func(rune) bool) Parser[[]byte] {
	return func(in Input) Result[[]byte] {
		rest := scanWhile(in, pred)
		return Ok(rest, in.Until(rest))
	}
}

// Many1Satisfy is ManySatisfy requiring at least one character.
func Many1Satisfy(pred func(rune) bool, what string) Parser[[]byte] {
	return func(in Input) Result[[]byte] {
		rest := scanWhile(in, pred)
		if rest.Offset() == in.Offset() {
			return Failure[[]byte](in, Soft, fmt.Sprintf("expected one or more %s", what))
		}
		return Ok(rest, in.Until(rest))
	}
}

func scanWhile(in Input, pred func(rune) bool) Input {
	for !in.AtEnd() {
		r, size := in.Peek()
		if !pred(r) {
			break
		}
		in = in.Advance(size)
	}
	return in
}

// Spaces skips any run of whitespace.
func Spaces() Parser[[]byte] {
	return ManySatisfy(unicode.IsSpace)
}

// End succeeds only when no input remains.
func End() Parser[struct{}] {
	return func(in Input) Result[struct{}] {
		if !in.AtEnd() {
			return Failure[struct{}](in, Soft, fmt.Sprintf("unexpected trailing input %q", preview(in)))
		}
		return Ok(in, struct{}{})
	}
}

// preview returns a short excerpt of the remaining input for messages.
func preview(in Input) string {
	const max = 20
	rest := in.Bytes()
	if len(rest) > max {
		return string(rest[:max]) + "..."
	}
	return string(rest)
}

// Bracket parses p between open and close. Once p has succeeded the closing
// bracket is mandatory: a missing close is a hard failure.
func Bracket[O, C, T any](open Parser[O], close Parser[C], p Parser[T]) Parser[T] {
	opening := Decorate(open, Prefix("missing opening bracket:\n\t"))
	closing := Commit(Decorate(close, Prefix("when looking for closing bracket:\n\t")))
	return Skip(Then(opening, p), closing)
}

// BracketSep parses a possibly empty sequence of p separated by sep and
// enclosed by open and close.
func BracketSep[O, S, C, T any](open Parser[O], sep Parser[S], close Parser[C], p Parser[T]) Parser[[]T] {
	return func(in Input) Result[[]T] {
		o := open(in)
		if o.Err != nil {
			return Propagate[[]T](Decorate(open, Prefix("missing opening bracket:\n\t"))(in))
		}

		if c := close(o.Rest); c.Err == nil {
			return Ok(c.Rest, []T{})
		} else if c.Err.Severity == Hard {
			return Propagate[[]T](c)
		}

		first := Decorate(p, Prefix("after first bracket in a group:\n\t"))(o.Rest)
		if first.Err != nil {
			return Propagate[[]T](first)
		}

		items := []T{first.Value}
		rest := first.Rest
		for {
			s := sep(rest)
			if s.Err != nil {
				if s.Err.Severity == Hard {
					return Propagate[[]T](s)
				}
				break
			}
			item := Commit(Decorate(p, Prefix("after separator in a group:\n\t")))(s.Rest)
			if item.Err != nil {
				return Propagate[[]T](item)
			}
			items = append(items, item.Value)
			rest = item.Rest
		}

		c := Commit(Decorate(close, Prefix("when looking for closing bracket:\n\t")))(rest)
		if c.Err != nil {
			return Propagate[[]T](c)
		}
		return Ok(c.Rest, items)
	}
}
