package dt

import (
	"golang.org/x/exp/slices"

	"github.com/tychoish/chain/dt/cmp"
)

// Sort orders the list under its default ordering with a merge sort
// over the links of the list. The sort is stable, and afterwards the
// list is known to be sorted.
func (l *List[T]) Sort() {
	lt := l.less()
	if l.length > 1 {
		l.relink(mergeSort(l.head, lt))
	}
	l.order = OrderSorted
}

// SortFunc orders the values of the list with the provided
// comparison, by copying them to a slice, sorting the slice, and
// writing the values back into the existing elements.
//
// The list's order tracker only describes the default ordering, so
// after SortFunc the list always reports OrderUnknown, even when the
// comparison agrees with the default ordering.
func (l *List[T]) SortFunc(lt cmp.LessThan[T]) {
	l.less()
	if l.length > 1 {
		buf := l.Slice()
		slices.SortStableFunc(buf, lt)

		idx := 0
		for e := l.head; e != nil; e = e.next {
			e.item = buf[idx]
			idx++
		}
	}
	l.order = OrderUnknown
}

// IsSorted scans the list and reports whether it is non-decreasing
// under its default ordering. Unlike Sorted, this is O(n) and does
// not consult or update the order tracker.
func (l *List[T]) IsSorted() bool { return l.IsSortedFunc(l.less()) }

// IsSortedFunc scans the list and reports whether no element orders
// before its predecessor under the comparison.
func (l *List[T]) IsSortedFunc(lt cmp.LessThan[T]) bool {
	for e := l.Head(); e != nil && e.next != nil; e = e.next {
		if lt(e.next.item, e.item) {
			return false
		}
	}
	return true
}

// Merge moves all elements of other into the list, so that the
// result is sorted under the receiver's default ordering. Either
// list is sorted first if it is not known to be sorted. Ties prefer
// the receiver's elements. Afterwards other is empty.
//
// The result is checked while it is relinked, so a list that was
// marked sorted under a different ordering cannot make the result
// claim to be sorted. Merging a list with itself, or with nil, does
// nothing.
func (l *List[T]) Merge(other *List[T]) {
	lt := l.less()
	if other == nil || other == l {
		return
	}

	if l.order != OrderSorted {
		l.Sort()
	}

	right := other.order
	chain := other.detach()
	if right != OrderSorted {
		chain = mergeSort(chain, lt)
	}

	if l.relink(mergeChains(l.detach(), chain, lt)) {
		l.order = OrderSorted
	} else {
		l.order = OrderUnsorted
	}
}

// MergeFunc moves all elements of other into the list, interleaving
// them with the two-pointer merge under the comparison. Neither list
// is sorted first: if the inputs are not ordered under lt, the
// interleaving is unspecified. The list's order tracker is
// recomputed for the default ordering. Afterwards other is empty.
func (l *List[T]) MergeFunc(other *List[T], lt cmp.LessThan[T]) {
	l.less()
	if other == nil || other == l {
		return
	}

	if l.relink(mergeChains(l.detach(), other.detach(), lt)) {
		l.order = OrderSorted
	} else {
		l.order = OrderUnsorted
	}
}

// mergeSort sorts the singly linked chain starting at head and
// returns the new head. Only next links are maintained.
func mergeSort[T any](head *Element[T], lt cmp.LessThan[T]) *Element[T] {
	if head == nil || head.next == nil {
		return head
	}

	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}

	right := slow.next
	slow.next = nil

	return mergeChains(mergeSort(head, lt), mergeSort(right, lt), lt)
}

// mergeChains merges two sorted singly linked chains, taking from
// left unless the right element orders strictly before it.
func mergeChains[T any](left, right *Element[T], lt cmp.LessThan[T]) *Element[T] {
	var root Element[T]
	tail := &root

	for left != nil && right != nil {
		if lt(right.item, left.item) {
			tail.next = right
			right = right.next
		} else {
			tail.next = left
			left = left.next
		}
		tail = tail.next
	}

	if left != nil {
		tail.next = left
	} else {
		tail.next = right
	}

	return root.next
}
