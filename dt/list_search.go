package dt

import "github.com/tychoish/chain/ers"

// Contains reports whether any element is equal to the value.
func (l *List[T]) Contains(v T) bool { return l.Find(v) != nil }

// Count returns the number of elements equal to the value.
func (l *List[T]) Count(v T) int {
	l.less()
	count := 0
	for e := l.head; e != nil; e = e.next {
		if l.equal(e.item, v) {
			count++
		}
	}
	return count
}

// FindFirst returns the index of the first element equal to the
// value, or -1.
func (l *List[T]) FindFirst(v T) int {
	l.less()
	idx := 0
	for e := l.head; e != nil; e = e.next {
		if l.equal(e.item, v) {
			return idx
		}
		idx++
	}
	return -1
}

// FindLast returns the index of the last element equal to the value,
// or -1.
func (l *List[T]) FindLast(v T) int {
	l.less()
	idx := l.length - 1
	for e := l.tail; e != nil; e = e.prev {
		if l.equal(e.item, v) {
			return idx
		}
		idx--
	}
	return -1
}

// Find returns the first element equal to the value, or nil.
func (l *List[T]) Find(v T) *Element[T] {
	l.less()
	for e := l.head; e != nil; e = e.next {
		if l.equal(e.item, v) {
			return e
		}
	}
	return nil
}

// FindLastElement returns the last element equal to the value, or
// nil.
func (l *List[T]) FindLastElement(v T) *Element[T] {
	l.less()
	for e := l.tail; e != nil; e = e.prev {
		if l.equal(e.item, v) {
			return e
		}
	}
	return nil
}

// BinarySearch reports whether the value is in the list, using a
// binary search. It returns ErrNotSorted unless the list is known to
// be sorted; the list is not scanned to check.
//
// Each probe resolves its index by walking the list, so a search
// costs O(n) link traversals in total rather than O(log n).
func (l *List[T]) BinarySearch(v T) (bool, error) {
	e, _, err := l.binarySearch(v)
	return e != nil, err
}

// BinarySearchIndex returns the index of an element equal to the
// value, or -1, using a binary search. When several elements are
// equal, any of their indexes may be returned. It returns
// ErrNotSorted unless the list is known to be sorted.
func (l *List[T]) BinarySearchIndex(v T) (int, error) {
	_, idx, err := l.binarySearch(v)
	return idx, err
}

// BinaryFind returns an element equal to the value, or nil, using a
// binary search. It returns ErrNotSorted unless the list is known to
// be sorted.
func (l *List[T]) BinaryFind(v T) (*Element[T], error) {
	e, _, err := l.binarySearch(v)
	return e, err
}

func (l *List[T]) binarySearch(v T) (*Element[T], int, error) {
	lt := l.less()
	if l.order != OrderSorted {
		return nil, -1, ers.Wrapf(ers.ErrNotSorted, "binary search of %s list", l.order)
	}

	low, high := 0, l.length-1
	for low <= high {
		mid := low + (high-low)/2
		e, err := l.nodeAt(mid)
		if err != nil {
			return nil, -1, err
		}

		switch {
		case lt(e.item, v):
			low = mid + 1
		case lt(v, e.item):
			if mid == 0 {
				return nil, -1, nil
			}
			high = mid - 1
		default:
			return e, mid, nil
		}
	}

	return nil, -1, nil
}
