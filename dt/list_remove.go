package dt

import "github.com/tychoish/chain/ers"

// PopFront removes the first element from the list and returns its
// value. Returns ErrUnderflow if the list is empty.
func (l *List[T]) PopFront() (out T, err error) {
	if l.Len() == 0 {
		return out, ers.Wrap(ers.ErrUnderflow, "pop front")
	}
	e := l.head
	l.unlink(e)
	return e.item, nil
}

// PopBack removes the last element from the list and returns its
// value. Returns ErrUnderflow if the list is empty.
func (l *List[T]) PopBack() (out T, err error) {
	if l.Len() == 0 {
		return out, ers.Wrap(ers.ErrUnderflow, "pop back")
	}
	e := l.tail
	l.unlink(e)
	return e.item, nil
}

// RemoveAt removes the element at the index and returns its value.
func (l *List[T]) RemoveAt(index int) (out T, err error) {
	e, err := l.nodeAt(index)
	if err != nil {
		return out, err
	}
	l.unlink(e)
	return e.item, nil
}

// Erase removes the element from the list and returns the element
// that followed it. Erasing a nil element, or one that is not a
// member of this list, does nothing and returns nil.
func (l *List[T]) Erase(e *Element[T]) *Element[T] {
	if !e.In(l) {
		return nil
	}

	next := e.next
	l.unlink(e)
	return next
}

// EraseRange removes the elements from first up to, but not
// including, last, and returns last. A nil last erases through the
// end of the list.
func (l *List[T]) EraseRange(first, last *Element[T]) *Element[T] {
	for first != nil && first != last {
		first = l.Erase(first)
	}
	return last
}

// RemoveFirst removes the first element equal to the value,
// returning false when there is none.
func (l *List[T]) RemoveFirst(v T) bool {
	e := l.Find(v)
	if e == nil {
		return false
	}
	l.unlink(e)
	return true
}

// RemoveLast removes the last element equal to the value, returning
// false when there is none.
func (l *List[T]) RemoveLast(v T) bool {
	e := l.FindLastElement(v)
	if e == nil {
		return false
	}
	l.unlink(e)
	return true
}

// RemoveAll removes every element equal to the value and returns
// the number removed.
func (l *List[T]) RemoveAll(v T) int {
	l.less()
	return l.RemoveIf(func(in T) bool { return l.equal(in, v) })
}

// RemoveIf removes every element for which the predicate returns
// true and returns the number removed.
func (l *List[T]) RemoveIf(pred func(T) bool) int {
	removed := 0
	for e := l.Head(); e != nil; {
		next := e.next
		if pred(e.item) {
			l.unlink(e)
			removed++
		}
		e = next
	}
	return removed
}

// Clear removes all elements from the list. Outstanding elements are
// detached, and the list is sorted (trivially) afterwards.
func (l *List[T]) Clear() {
	for e := l.detach(); e != nil; {
		next := e.next
		e.next, e.prev, e.list = nil, nil, nil
		e = next
	}
}
