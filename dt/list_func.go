package dt

import (
	"golang.org/x/exp/constraints"

	"github.com/tychoish/chain/dt/cmp"
)

// ForEach calls the function on every value, front to back.
func (l *List[T]) ForEach(fn func(T)) {
	for e := l.Head(); e != nil; e = e.next {
		fn(e.item)
	}
}

// Transform replaces every value with the result of the function.
// The order tracker drops to OrderUnknown.
func (l *List[T]) Transform(fn func(T) T) {
	l.less()
	for e := l.head; e != nil; e = e.next {
		e.item = fn(e.item)
	}
	l.order = OrderUnknown
}

// AllOf reports whether the predicate holds for every value. It is
// true for an empty list.
func (l *List[T]) AllOf(pred func(T) bool) bool {
	for e := l.Head(); e != nil; e = e.next {
		if !pred(e.item) {
			return false
		}
	}
	return true
}

// AnyOf reports whether the predicate holds for some value.
func (l *List[T]) AnyOf(pred func(T) bool) bool {
	for e := l.Head(); e != nil; e = e.next {
		if pred(e.item) {
			return true
		}
	}
	return false
}

// NoneOf reports whether the predicate holds for no value.
func (l *List[T]) NoneOf(pred func(T) bool) bool { return !l.AnyOf(pred) }

// Filter returns a new list, with the same ordering, holding the
// values for which the predicate holds.
func (l *List[T]) Filter(pred func(T) bool) *List[T] {
	out := NewListWith(l.less())
	for e := l.head; e != nil; e = e.next {
		if pred(e.item) {
			out.PushBack(e.item)
		}
	}
	return out
}

// Map builds a new natively ordered list from the results of the
// function. The new list tracks its own order as it is built.
func Map[T any, U constraints.Ordered](l *List[T], fn func(T) U) *List[U] {
	return MapWith(l, cmp.LessThanNative[U], fn)
}

// MapWith builds a new list ordered by lt from the results of the
// function.
func MapWith[T, U any](l *List[T], lt cmp.LessThan[U], fn func(T) U) *List[U] {
	out := NewListWith(lt)
	for e := l.Head(); e != nil; e = e.next {
		out.PushBack(fn(e.item))
	}
	return out
}

// Reduce folds the values of the list, front to back, into a single
// value.
func Reduce[T, U any](l *List[T], initial U, fn func(U, T) U) U {
	out := initial
	for e := l.Head(); e != nil; e = e.next {
		out = fn(out, e.item)
	}
	return out
}
