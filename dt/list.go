package dt

import (
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/tychoish/chain/dt/cmp"
	"github.com/tychoish/chain/ers"
)

// List provides an ordered doubly linked list. In addition to the
// usual end operations, the list carries a default ordering and
// tracks (conservatively) whether its values are sorted under that
// ordering, which gates binary search and lets InsertSorted and
// Merge skip redundant sorts.
//
// Lists must be constructed with NewList or NewListWith. Callers are
// responsible for their own concurrency control.
type List[T any] struct {
	head   *Element[T]
	tail   *Element[T]
	length int
	order  Order
	lt     cmp.LessThan[T]
}

// NewList builds a list of natively ordered values, ordered by the <
// operator, and appends the items to it.
func NewList[T constraints.Ordered](items ...T) *List[T] {
	return NewListWith(cmp.LessThanNative[T], items...)
}

// NewListWith builds a list that uses the provided function as its
// default ordering, and appends the items to it. The ordering must
// be strict; element equality is derived from it. NewListWith panics
// if lt is nil.
func NewListWith[T any](lt cmp.LessThan[T], items ...T) *List[T] {
	if lt == nil {
		panic(ers.NewInvariantViolation(ErrUninitializedContainer, "list requires an ordering"))
	}

	l := &List[T]{lt: lt, order: OrderSorted}
	l.Append(items...)
	return l
}

// Element is a node in a list, as returned by the cursor
// operations (Head, Tail, Find, ...). A nil element marks the end of
// a traversal; all methods are safe to call on nil elements.
type Element[T any] struct {
	next *Element[T]
	prev *Element[T]
	list *List[T]
	item T
}

// Value accesses the element's value.
func (e *Element[T]) Value() (out T) {
	if e == nil {
		return out
	}
	return e.item
}

// Ok reports whether the element is a real (non-end) position.
func (e *Element[T]) Ok() bool { return e != nil }

// Next returns the following element, or nil at the end of the list.
func (e *Element[T]) Next() *Element[T] {
	if e == nil {
		return nil
	}
	return e.next
}

// Previous returns the preceding element, or nil at the front of the
// list.
func (e *Element[T]) Previous() *Element[T] {
	if e == nil {
		return nil
	}
	return e.prev
}

// In checks to see if an element is in the specified list. Because
// elements hold a pointer to their list, this is an O(1) operation.
func (e *Element[T]) In(l *List[T]) bool { return e != nil && l != nil && e.list == l }

func (l *List[T]) less() cmp.LessThan[T] {
	if l == nil || l.lt == nil {
		panic(ers.NewInvariantViolation(ErrUninitializedContainer, "list has no ordering"))
	}
	return l.lt
}

func (l *List[T]) equal(a, b T) bool { return cmp.Equal(l.lt, a, b) }

// Len returns the length of the list. As the mutating operations
// track the length of the list, this is an O(1) operation.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool { return l.Len() == 0 }

// Order reports what the list knows about its arrangement.
func (l *List[T]) Order() Order {
	if l == nil {
		return OrderUnknown
	}
	return l.order
}

// Sorted reports whether the list is known to be sorted under its
// default ordering. A false value does not mean the list is out of
// order; use IsSorted to scan.
func (l *List[T]) Sorted() bool { return l.Order() == OrderSorted }

// Ordering returns the list's default ordering.
func (l *List[T]) Ordering() cmp.LessThan[T] { return l.less() }

// Head returns the first element of the list, or nil when the list
// is empty. Use it to begin a c-style iteration over the list:
//
//	for e := list.Head(); e.Ok(); e = e.Next() {
//	       // operate
//	}
func (l *List[T]) Head() *Element[T] {
	if l == nil {
		return nil
	}
	return l.head
}

// Tail returns the last element of the list, or nil when the list
// is empty.
func (l *List[T]) Tail() *Element[T] {
	if l == nil {
		return nil
	}
	return l.tail
}

// Front returns the first value, or ErrUnderflow when the list is
// empty.
func (l *List[T]) Front() (out T, err error) {
	if l.Len() == 0 {
		return out, ers.Wrap(ers.ErrUnderflow, "front of list")
	}
	return l.head.item, nil
}

// Back returns the last value, or ErrUnderflow when the list is
// empty.
func (l *List[T]) Back() (out T, err error) {
	if l.Len() == 0 {
		return out, ers.Wrap(ers.ErrUnderflow, "back of list")
	}
	return l.tail.item, nil
}

// At returns the value at the index, walking from whichever end of
// the list is closer.
func (l *List[T]) At(index int) (out T, err error) {
	e, err := l.nodeAt(index)
	if err != nil {
		return out, err
	}
	return e.item, nil
}

// ElementAt returns the element at the index.
func (l *List[T]) ElementAt(index int) (*Element[T], error) { return l.nodeAt(index) }

func (l *List[T]) nodeAt(index int) (*Element[T], error) {
	if index < 0 || index >= l.Len() {
		return nil, ers.Wrapf(ers.ErrOutOfRange, "index %d for list of length %d", index, l.Len())
	}

	if index < l.length/2 {
		e := l.head
		for i := 0; i < index; i++ {
			e = e.next
		}
		return e, nil
	}

	e := l.tail
	for i := l.length - 1; i > index; i-- {
		e = e.prev
	}
	return e, nil
}

// Slice exports the contents of the list to a slice, front to back.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.Len())
	for e := l.Head(); e != nil; e = e.next {
		out = append(out, e.item)
	}
	return out
}

// SliceReverse exports the contents of the list to a slice, back to
// front.
func (l *List[T]) SliceReverse() []T {
	out := make([]T, 0, l.Len())
	for e := l.Tail(); e != nil; e = e.prev {
		out = append(out, e.item)
	}
	return out
}

// Seq returns a native go iterator function for the items in a list,
// front to back. The iterator is not synchronized with the list:
// removing the element the iterator is positioned on ends the
// iteration.
func (l *List[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.Head(); e != nil; e = e.next {
			if !yield(e.item) {
				return
			}
		}
	}
}

// Backward returns a native go iterator function for the items in a
// list, back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.Tail(); e != nil; e = e.prev {
			if !yield(e.item) {
				return
			}
		}
	}
}

func (l *List[T]) newElement(v T) *Element[T] { return &Element[T]{item: v, list: l} }

func (l *List[T]) linkFront(e *Element[T]) {
	e.list = l
	e.prev = nil
	e.next = l.head
	if l.head == nil {
		l.tail = e
	} else {
		l.head.prev = e
	}
	l.head = e
	l.length++
}

func (l *List[T]) linkBack(e *Element[T]) {
	e.list = l
	e.next = nil
	e.prev = l.tail
	if l.tail == nil {
		l.head = e
	} else {
		l.tail.next = e
	}
	l.tail = e
	l.length++
}

// linkBefore splices e in front of at, which must be an interior or
// tail element of l (never the head).
func (l *List[T]) linkBefore(at, e *Element[T]) {
	e.list = l
	e.next = at
	e.prev = at.prev
	at.prev.next = e
	at.prev = e
	l.length++
}

func (l *List[T]) unlink(e *Element[T]) {
	switch {
	case e == l.head && e == l.tail:
		l.head, l.tail = nil, nil
	case e == l.head:
		l.head = e.next
		l.head.prev = nil
	case e == l.tail:
		l.tail = e.prev
		l.tail.next = nil
	default:
		e.prev.next = e.next
		e.next.prev = e.prev
	}

	e.next, e.prev, e.list = nil, nil, nil
	l.length--

	// removal cannot break a sorted list, but it can remove the
	// inversion that made the list unsorted.
	if l.order == OrderUnsorted {
		l.order = OrderUnknown
	}
}

// detach empties the list and returns its former chain. Elements in
// the chain still point at l until they are relinked.
func (l *List[T]) detach() *Element[T] {
	head := l.head
	l.head, l.tail, l.length, l.order = nil, nil, 0, OrderSorted
	return head
}

// relink installs the singly linked chain starting at head as the
// contents of the list, rebuilding the prev links, tail, length, and
// membership. It reports whether the chain is non-decreasing under
// the list's ordering.
func (l *List[T]) relink(head *Element[T]) bool {
	sorted := true
	l.head, l.tail, l.length = head, nil, 0

	var prev *Element[T]
	for e := head; e != nil; e = e.next {
		e.prev = prev
		e.list = l
		if sorted && prev != nil && l.lt(e.item, prev.item) {
			sorted = false
		}
		prev = e
		l.length++
	}
	l.tail = prev

	return sorted
}
