package decode

import "fmt"

// Unit is the empty tuple ().
type Unit struct{}

// Ordering is the result of a three-way comparison.
type Ordering int

const (
	LT Ordering = -1
	EQ Ordering = 0
	GT Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case LT:
		return "LT"
	case EQ:
		return "EQ"
	case GT:
		return "GT"
	}
	return fmt.Sprintf("Ordering(%d)", int(o))
}

// Pair is a 2-tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is a 3-tuple.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Maybe is an optional value.
type Maybe[T any] struct {
	Value T
	Valid bool
}

// Just wraps a present value.
func Just[T any](v T) Maybe[T] {
	return Maybe[T]{Value: v, Valid: true}
}

// Nothing returns an absent value.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

func (m Maybe[T]) String() string {
	if !m.Valid {
		return "Nothing"
	}
	return fmt.Sprintf("Just %v", m.Value)
}

// Either holds exactly one of two alternatives.
type Either[L, R any] struct {
	Left    L
	Right   R
	IsRight bool
}

// Left builds the first alternative.
func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{Left: v}
}

// Right builds the second alternative.
func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{Right: v, IsRight: true}
}

func (e Either[L, R]) String() string {
	if e.IsRight {
		return fmt.Sprintf("Right %v", e.Right)
	}
	return fmt.Sprintf("Left %v", e.Left)
}
