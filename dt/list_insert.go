package dt

import "github.com/tychoish/chain/ers"

// PushFront creates an element and prepends it to the list. If the
// list was sorted and the value orders after the former front, the
// list becomes unsorted; equal values keep it sorted.
func (l *List[T]) PushFront(v T) { l.pushFrontElement(l.newElement(v)) }

// PushBack creates an element and appends it to the list. If the
// list was sorted and the value orders before the former back, the
// list becomes unsorted; equal values keep it sorted.
func (l *List[T]) PushBack(v T) { l.pushBackElement(l.newElement(v)) }

// Append adds a variadic sequence of items to the end of the list.
func (l *List[T]) Append(items ...T) {
	for idx := range items {
		l.PushBack(items[idx])
	}
}

func (l *List[T]) pushFrontElement(e *Element[T]) {
	lt := l.less()
	if l.order == OrderSorted && l.head != nil && lt(l.head.item, e.item) {
		l.order = OrderUnsorted
	}
	l.linkFront(e)
}

func (l *List[T]) pushBackElement(e *Element[T]) {
	lt := l.less()
	if l.order == OrderSorted && l.tail != nil && lt(e.item, l.tail.item) {
		l.order = OrderUnsorted
	}
	l.linkBack(e)
}

// Insert adds the value so that it ends up at the index, which may
// range from 0 to Len() inclusive. Inserting at either end has the
// same effect as PushFront or PushBack; inserting in the middle of
// the list always drops the list's order to OrderUnknown, without
// checking whether the new value happens to fit.
func (l *List[T]) Insert(index int, v T) error {
	l.less()

	switch {
	case index < 0 || index > l.length:
		return ers.Wrapf(ers.ErrOutOfRange, "insert at %d for list of length %d", index, l.length)
	case index == 0:
		l.PushFront(v)
	case index == l.length:
		l.PushBack(v)
	default:
		at, err := l.nodeAt(index)
		if err != nil {
			return err
		}
		l.linkBefore(at, l.newElement(v))
		l.order = OrderUnknown
	}
	return nil
}

// InsertBefore adds the value in front of the element and returns
// the new element. When the element is nil or not a member of this
// list, the value is appended to the back of the list.
func (l *List[T]) InsertBefore(at *Element[T], v T) *Element[T] {
	switch {
	case !at.In(l):
		l.PushBack(v)
		return l.tail
	case at == l.head:
		l.PushFront(v)
		return l.head
	default:
		l.less()
		e := l.newElement(v)
		l.linkBefore(at, e)
		l.order = OrderUnknown
		return e
	}
}

// InsertSorted adds the value at a position that keeps the list
// sorted. If the list is not known to be sorted, it is sorted first,
// which makes the call O(n log n) rather than O(n). Values equal to
// existing values are placed before them.
func (l *List[T]) InsertSorted(v T) {
	lt := l.less()
	if l.order != OrderSorted {
		l.Sort()
	}

	switch {
	case l.head == nil || !lt(l.head.item, v):
		l.PushFront(v)
	case !lt(v, l.tail.item):
		l.PushBack(v)
	default:
		at := l.head
		for lt(at.item, v) {
			at = at.next
		}
		l.linkBefore(at, l.newElement(v))
	}
}

// SetAt replaces the value at the index. The list stays sorted only
// if the new value still fits between its neighbors.
func (l *List[T]) SetAt(index int, v T) error {
	lt := l.less()
	e, err := l.nodeAt(index)
	if err != nil {
		return err
	}

	e.item = v

	switch l.order {
	case OrderSorted:
		if (e.prev != nil && lt(v, e.prev.item)) || (e.next != nil && lt(e.next.item, v)) {
			l.order = OrderUnsorted
		}
	case OrderUnsorted:
		l.order = OrderUnknown
	}
	return nil
}

// Resize grows the list by appending the fill value, or shrinks it by
// removing values from the back, until it has the given length.
func (l *List[T]) Resize(length int, fill T) error {
	l.less()
	if length < 0 {
		return ers.Wrapf(ers.ErrOutOfRange, "resize to %d", length)
	}

	for l.length > length {
		l.unlink(l.tail)
	}
	for l.length < length {
		l.PushBack(fill)
	}
	return nil
}
