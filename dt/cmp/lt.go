// Package cmp provides the ordering vocabulary used by the list in
// dt: less-than functions for native and user types, and the
// equivalence relation derived from an ordering.
package cmp

import (
	"time"

	"golang.org/x/exp/constraints"
)

// Orderable allows users to define a method on their types which
// implement a method to provide a LessThan operation.
type Orderable[T any] interface{ LessThan(T) bool }

// LessThan describes a strict less than operation, typically
// provided by one of the following operations. Implementations must
// be strict weak orderings: LessThan(a, a) is always false.
type LessThan[T any] func(a, b T) bool

// LessThanNative provides a wrapper around the < operator for types
// that support it, and is the default ordering of lists built with
// dt.NewList.
func LessThanNative[T constraints.Ordered](a, b T) bool { return a < b }

// LessThanCustom converts types that implement the Orderable
// interface.
func LessThanCustom[T Orderable[T]](a, b T) bool { return a.LessThan(b) }

// LessThanConverter provides a function to convert a non-orderable
// type to an orderable type, and orders values by their converted
// form.
func LessThanConverter[T any, S constraints.Ordered](converter func(T) S) LessThan[T] {
	return func(a, b T) bool { return LessThanNative(converter(a), converter(b)) }
}

// LessThanTime compares time using the time.Time.Before() method.
func LessThanTime(a, b time.Time) bool { return a.Before(b) }

// Reverse wraps an existing LessThan operator and reverses its
// direction. The result is still strict.
func Reverse[T any](fn LessThan[T]) LessThan[T] { return func(a, b T) bool { return fn(b, a) } }

// Equal reports whether neither value orders before the other.
func Equal[T any](lt LessThan[T], a, b T) bool { return !lt(a, b) && !lt(b, a) }

// Equivalence returns the equality function implied by the ordering.
func (lt LessThan[T]) Equivalence() func(a, b T) bool {
	return func(a, b T) bool { return Equal(lt, a, b) }
}

// Compare returns -1, 0, or 1 when a orders before, equivalent to,
// or after b.
func (lt LessThan[T]) Compare(a, b T) int {
	switch {
	case lt(a, b):
		return -1
	case lt(b, a):
		return 1
	default:
		return 0
	}
}
