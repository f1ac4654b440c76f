package parser

// Severity classifies a decode failure.
type Severity uint8

const (
	// Soft failures may be recovered from by an enclosing alternative.
	Soft Severity = iota
	// Hard failures happen after a commit and abort every enclosing alternative.
	Hard
)

func (s Severity) String() string {
	if s == Hard {
		return "hard"
	}
	return "soft"
}

// Error is a decode failure. At is the view where recognition stopped.
type Error struct {
	Severity Severity
	Message  string
	At       Input
}

func (e *Error) Error() string {
	return e.Message
}

// IsHard reports whether the failure was raised past a commit point.
func (e *Error) IsHard() bool {
	return e != nil && e.Severity == Hard
}

// Result is the outcome of running a Parser: either a value together with the
// remaining input, or an Error.
type Result[T any] struct {
	Rest  Input
	Value T
	Err   *Error
}

// Ok builds a successful result.
func Ok[T any](rest Input, v T) Result[T] {
	return Result[T]{Rest: rest, Value: v}
}

// Failure builds a failed result at the given position.
func Failure[T any](at Input, severity Severity, message string) Result[T] {
	return Result[T]{Rest: at, Err: &Error{Severity: severity, Message: message, At: at}}
}

// Failed reports whether the result carries an error.
func (r Result[T]) Failed() bool {
	return r.Err != nil
}

// Propagate re-types a failed result so it can be returned from a parser of
// another type.
func Propagate[T, U any](r Result[U]) Result[T] {
	return Result[T]{Rest: r.Rest, Err: r.Err}
}

// Parser decodes a T from the front of an Input.
type Parser[T any] func(in Input) Result[T]

// Run applies the parser to a whole buffer.
func (p Parser[T]) Run(src []byte) Result[T] {
	return p(NewInput(src))
}

// RunString applies the parser to a string.
func (p Parser[T]) RunString(s string) Result[T] {
	return p(NewInputString(s))
}
