package parser

import (
	"fmt"
)

// ParseError is a decode failure located in its source buffer.
type ParseError struct {
	Pos        Position
	Message    string
	Source     []byte
	Underlying error
}

func (e *ParseError) Error() string {
	location := fmt.Sprintf("%s:%d:%d", e.Pos.Filename, e.Pos.Line, e.Pos.Column)
	if e.Pos.Filename == "" {
		location = fmt.Sprintf("line %d, column %d", e.Pos.Line, e.Pos.Column)
	}

	return fmt.Sprintf("%s: %s", location, e.Message)
}

func (e *ParseError) GetPosition() Position {
	return e.Pos
}

func (e *ParseError) Unwrap() error {
	return e.Underlying
}

// Hard reports whether the failure was raised past a commit point.
func (e *ParseError) Hard() bool {
	if err, ok := e.Underlying.(*Error); ok {
		return err.IsHard()
	}
	return false
}

// NewParseError locates a runtime failure in its source buffer.
func NewParseError(filename string, err *Error) *ParseError {
	pos := err.At.Position()
	pos.Filename = filename

	return &ParseError{
		Pos:        pos,
		Message:    err.Message,
		Source:     err.At.Source(),
		Underlying: err,
	}
}
