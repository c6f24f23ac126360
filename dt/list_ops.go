package dt

// Reverse reverses the list in place by exchanging the links of
// every element. The order tracker always drops to OrderUnknown.
func (l *List[T]) Reverse() {
	l.less()
	for e := l.head; e != nil; e = e.prev {
		e.next, e.prev = e.prev, e.next
	}
	l.head, l.tail = l.tail, l.head
	l.order = OrderUnknown
}

// Unique removes every element that is equal to the element before
// it, and returns the number of elements removed. Only adjacent
// duplicates are removed: sort the list first to remove all
// duplicates.
func (l *List[T]) Unique() int {
	l.less()
	return l.UniqueFunc(l.equal)
}

// UniqueFunc removes every element for which eq(previous, element)
// is true, comparing against the surviving predecessor, and returns
// the number of elements removed.
func (l *List[T]) UniqueFunc(eq func(a, b T) bool) int {
	removed := 0
	for e := l.Head(); e != nil && e.next != nil; {
		if eq(e.item, e.next.item) {
			l.unlink(e.next)
			removed++
			continue
		}
		e = e.next
	}
	return removed
}

// Copy duplicates the list. The element objects in the list are
// distinct, though if the values are themselves references, the
// values of both lists would be shared. The copy keeps the
// ordering and the order tracker of the original.
func (l *List[T]) Copy() *List[T] {
	out := NewListWith(l.less())
	for e := l.head; e != nil; e = e.next {
		out.linkBack(out.newElement(e.item))
	}
	out.order = l.order
	return out
}

// Swap exchanges the contents, ordering, and order tracker of the
// two lists. Elements remain valid and follow their values into the
// other list, which makes Swap O(n) in the combined length.
func (l *List[T]) Swap(other *List[T]) {
	if other == nil || other == l {
		return
	}

	*l, *other = *other, *l

	for e := l.head; e != nil; e = e.next {
		e.list = l
	}
	for e := other.head; e != nil; e = e.next {
		e.list = other
	}
}

// Extend removes items from the front of the input list, and appends
// them to the end (back) of the current list, maintaining the order
// tracker as PushBack does.
func (l *List[T]) Extend(input *List[T]) {
	l.less()
	if input == nil || input == l {
		return
	}

	for input.Len() > 0 {
		e := input.head
		input.unlink(e)
		l.pushBackElement(e)
	}
}
