package dt

import (
	"bufio"
	"fmt"
	"io"
	"iter"

	"github.com/tychoish/chain/ers"
)

// Stack provides a generic singly linked LIFO stack. Push and Pop
// are O(1). The zero value is an empty stack ready to use.
//
// Positional operations (At, FindFirst, Slice, ...) count from the
// top of the stack.
type Stack[T comparable] struct {
	top    *item[T]
	length int
}

// NewStack builds a stack by pushing the items in order, so the last
// item ends up on top.
func NewStack[T comparable](items ...T) *Stack[T] {
	s := &Stack[T]{}
	s.Push(items...)
	return s
}

// Len returns the length of the stack. Because stacks track their
// own size, this is an O(1) operation.
func (s *Stack[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.length
}

// Empty reports whether the stack has no items.
func (s *Stack[T]) Empty() bool { return s.Len() == 0 }

// Push adds the items to the stack, in order.
func (s *Stack[T]) Push(items ...T) {
	for idx := range items {
		s.top = &item[T]{value: items[idx], next: s.top}
		s.length++
	}
}

// Pop removes the item on the top of the stack, and returns it.
// Returns ErrUnderflow when the stack is empty.
func (s *Stack[T]) Pop() (out T, err error) {
	if s.Len() == 0 {
		return out, ers.Wrap(ers.ErrUnderflow, "pop")
	}

	it := s.top
	s.top = it.next
	it.next = nil
	s.length--
	return it.value, nil
}

// Top returns the item on the top of the stack without removing it.
func (s *Stack[T]) Top() (out T, err error) {
	if s.Len() == 0 {
		return out, ers.Wrap(ers.ErrUnderflow, "top of stack")
	}
	return s.top.value, nil
}

// Duplicate pushes a copy of the top item. Returns ErrUnderflow when
// the stack is empty.
func (s *Stack[T]) Duplicate() error {
	v, err := s.Top()
	if err != nil {
		return ers.Wrap(err, "duplicate")
	}
	s.Push(v)
	return nil
}

// At returns the item at the index, counting from the top.
func (s *Stack[T]) At(index int) (out T, err error) {
	if index < 0 || index >= s.Len() {
		return out, ers.Wrapf(ers.ErrOutOfRange, "index %d for stack of length %d", index, s.Len())
	}
	it := s.top
	for i := 0; i < index; i++ {
		it = it.next
	}
	return it.value, nil
}

func (s *Stack[T]) head() *item[T] {
	if s == nil {
		return nil
	}
	return s.top
}

// Contains reports whether the stack holds the value.
func (s *Stack[T]) Contains(v T) bool { return s.FindFirst(v) >= 0 }

// Count returns the number of items equal to the value.
func (s *Stack[T]) Count(v T) int { return countItems(s.head(), v) }

// FindFirst returns the position of the item nearest the top that is
// equal to the value, or -1.
func (s *Stack[T]) FindFirst(v T) int { return findFirstItem(s.head(), v) }

// FindLast returns the position of the item nearest the bottom that
// is equal to the value, or -1.
func (s *Stack[T]) FindLast(v T) int { return findLastItem(s.head(), v) }

// RemoveFirst removes the item nearest the top that is equal to the
// value, and reports whether there was one.
func (s *Stack[T]) RemoveFirst(v T) bool {
	var prev *item[T]
	for it := s.head(); it != nil; prev, it = it, it.next {
		if it.value == v {
			s.unlink(prev, it)
			return true
		}
	}
	return false
}

// RemoveAll removes every item equal to the value and returns the
// number removed.
func (s *Stack[T]) RemoveAll(v T) int {
	removed := 0
	var prev *item[T]
	for it := s.head(); it != nil; {
		next := it.next
		if it.value == v {
			s.unlink(prev, it)
			removed++
		} else {
			prev = it
		}
		it = next
	}
	return removed
}

func (s *Stack[T]) unlink(prev, it *item[T]) {
	if prev == nil {
		s.top = it.next
	} else {
		prev.next = it.next
	}
	it.next = nil
	s.length--
}

// Reverse reverses the stack in place, so that the bottom item
// becomes the top.
func (s *Stack[T]) Reverse() {
	if s.Len() <= 1 {
		return
	}
	s.top = reverseItems(s.top)
}

// Clear removes all items from the stack.
func (s *Stack[T]) Clear() { s.top, s.length = nil, 0 }

// Swap exchanges the contents of the two stacks in O(1). Swapping
// with nil or with itself does nothing.
func (s *Stack[T]) Swap(other *Stack[T]) {
	if s == nil || other == nil || s == other {
		return
	}
	*s, *other = *other, *s
}

// Copy returns a new stack holding the same items in the same order.
func (s *Stack[T]) Copy() *Stack[T] {
	out := &Stack[T]{}
	out.Push(reverseSlice(s.Slice())...)
	return out
}

// Equal reports whether both stacks hold equal items in the same
// order.
func (s *Stack[T]) Equal(other *Stack[T]) bool {
	return s.Len() == other.Len() && equalItems(s.head(), other.head())
}

// ForEach calls the function on every item, top to bottom.
func (s *Stack[T]) ForEach(fn func(T)) { forEachItem(s.head(), fn) }

// AllOf reports whether the predicate holds for every item.
func (s *Stack[T]) AllOf(pred func(T) bool) bool {
	return !anyItem(s.head(), func(v T) bool { return !pred(v) })
}

// AnyOf reports whether the predicate holds for some item.
func (s *Stack[T]) AnyOf(pred func(T) bool) bool { return anyItem(s.head(), pred) }

// Slice exports the items to a slice, top first.
func (s *Stack[T]) Slice() []T { return sliceItems(s.head(), s.Len()) }

// SliceReverse exports the items to a slice, bottom first.
func (s *Stack[T]) SliceReverse() []T { return reverseSlice(s.Slice()) }

// Seq returns a native go iterator function over the items, top to
// bottom. The iteration is not destructive.
func (s *Stack[T]) Seq() iter.Seq[T] { return seqItems(s.head()) }

// SeqPop returns a destructive iterator that pops items until the
// stack is empty or the iteration stops.
func (s *Stack[T]) SeqPop() iter.Seq[T] {
	return func(yield func(T) bool) {
		for s.Len() > 0 {
			v, _ := s.Pop()
			if !yield(v) {
				return
			}
		}
	}
}

// CheckIntegrity verifies that the recorded length matches a
// traversal from the top.
func (s *Stack[T]) CheckIntegrity() error {
	if s == nil {
		return nil
	}

	count := 0
	for it := s.top; it != nil; it = it.next {
		count++
		if count > s.length {
			return integrityError("traversal exceeds length %d", s.length)
		}
	}
	if count != s.length {
		return integrityError("traversal found %d of %d items", count, s.length)
	}
	return nil
}

// String renders the items as "[top, ..., bottom]".
func (s *Stack[T]) String() string { return stringItems(s.head()) }

// Fprint writes a one line description of the stack.
func (s *Stack[T]) Fprint(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Stack [size=%d]: ", s.Len())
	if s.Len() == 0 {
		bw.WriteString("(empty)")
	} else {
		bw.WriteString("TOP -> ")
		bw.WriteString(joinItems(s.top, " -> "))
		bw.WriteString(" -> BOTTOM")
	}
	bw.WriteByte('\n')
	return bw.Flush()
}
