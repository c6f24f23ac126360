package dt

// Equal reports whether both lists hold equal values in the same
// positions, using the equality implied by the receiver's ordering.
func (l *List[T]) Equal(other *List[T]) bool {
	l.less()
	if l.Len() != other.Len() {
		return false
	}

	for a, b := l.head, other.Head(); a != nil && b != nil; a, b = a.next, b.next {
		if !l.equal(a.item, b.item) {
			return false
		}
	}
	return true
}

// Compare orders the lists lexicographically under the receiver's
// ordering, returning -1, 0, or 1. When one list is a prefix of the
// other, the shorter list orders first.
func (l *List[T]) Compare(other *List[T]) int {
	lt := l.less()

	a, b := l.head, other.Head()
	for ; a != nil && b != nil; a, b = a.next, b.next {
		switch {
		case lt(a.item, b.item):
			return -1
		case lt(b.item, a.item):
			return 1
		}
	}

	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	default:
		return 1
	}
}

// Less reports whether the list orders lexicographically before
// other.
func (l *List[T]) Less(other *List[T]) bool { return l.Compare(other) < 0 }

// LessOrEqual reports whether the list does not order after other.
func (l *List[T]) LessOrEqual(other *List[T]) bool { return l.Compare(other) <= 0 }

// Greater reports whether the list orders lexicographically after
// other.
func (l *List[T]) Greater(other *List[T]) bool { return l.Compare(other) > 0 }

// GreaterOrEqual reports whether the list does not order before
// other.
func (l *List[T]) GreaterOrEqual(other *List[T]) bool { return l.Compare(other) >= 0 }
