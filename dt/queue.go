package dt

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/tychoish/chain/ers"
)

// item is the node shared by the singly linked Queue and Stack.
type item[T any] struct {
	next  *item[T]
	value T
}

// Queue provides a generic singly linked FIFO queue. Enqueue and
// Dequeue are O(1). The zero value is an empty queue ready to use.
type Queue[T comparable] struct {
	front  *item[T]
	rear   *item[T]
	length int
}

// NewQueue builds a queue holding the items, with the first item at
// the front.
func NewQueue[T comparable](items ...T) *Queue[T] {
	q := &Queue[T]{}
	q.Enqueue(items...)
	return q
}

// Len returns the number of items in the queue.
func (q *Queue[T]) Len() int {
	if q == nil {
		return 0
	}
	return q.length
}

// Empty reports whether the queue has no items.
func (q *Queue[T]) Empty() bool { return q.Len() == 0 }

// Enqueue adds the items to the rear of the queue, in order.
func (q *Queue[T]) Enqueue(items ...T) {
	for idx := range items {
		q.PushBack(items[idx])
	}
}

// PushBack adds an item to the rear of the queue.
func (q *Queue[T]) PushBack(v T) {
	it := &item[T]{value: v}
	if q.rear == nil {
		q.front = it
	} else {
		q.rear.next = it
	}
	q.rear = it
	q.length++
}

// Dequeue removes the item at the front of the queue and returns
// it. Returns ErrUnderflow when the queue is empty.
func (q *Queue[T]) Dequeue() (out T, err error) {
	if q.Len() == 0 {
		return out, ers.Wrap(ers.ErrUnderflow, "dequeue")
	}

	it := q.front
	q.front = it.next
	if q.front == nil {
		q.rear = nil
	}
	q.length--
	return it.value, nil
}

// PopFront is an alias for Dequeue.
func (q *Queue[T]) PopFront() (T, error) { return q.Dequeue() }

// Front returns the item at the front of the queue without removing
// it.
func (q *Queue[T]) Front() (out T, err error) {
	if q.Len() == 0 {
		return out, ers.Wrap(ers.ErrUnderflow, "front of queue")
	}
	return q.front.value, nil
}

// Rear returns the most recently enqueued item without removing it.
func (q *Queue[T]) Rear() (out T, err error) {
	if q.Len() == 0 {
		return out, ers.Wrap(ers.ErrUnderflow, "rear of queue")
	}
	return q.rear.value, nil
}

// At returns the item at the index, counting from the front.
func (q *Queue[T]) At(index int) (out T, err error) {
	if index < 0 || index >= q.Len() {
		return out, ers.Wrapf(ers.ErrOutOfRange, "index %d for queue of length %d", index, q.Len())
	}
	it := q.front
	for i := 0; i < index; i++ {
		it = it.next
	}
	return it.value, nil
}

// Contains reports whether the queue holds the value.
func (q *Queue[T]) Contains(v T) bool { return q.FindFirst(v) >= 0 }

// Count returns the number of items equal to the value.
func (q *Queue[T]) Count(v T) int { return countItems(q.head(), v) }

// FindFirst returns the position of the first item equal to the
// value, counting from the front, or -1.
func (q *Queue[T]) FindFirst(v T) int { return findFirstItem(q.head(), v) }

// FindLast returns the position of the last item equal to the value,
// counting from the front, or -1.
func (q *Queue[T]) FindLast(v T) int { return findLastItem(q.head(), v) }

// RemoveFirst removes the item closest to the front that is equal to
// the value, and reports whether there was one.
func (q *Queue[T]) RemoveFirst(v T) bool {
	var prev *item[T]
	for it := q.head(); it != nil; prev, it = it, it.next {
		if it.value == v {
			q.unlink(prev, it)
			return true
		}
	}
	return false
}

// RemoveAll removes every item equal to the value and returns the
// number removed. The relative order of the other items is kept.
func (q *Queue[T]) RemoveAll(v T) int {
	removed := 0
	var prev *item[T]
	for it := q.head(); it != nil; {
		next := it.next
		if it.value == v {
			q.unlink(prev, it)
			removed++
		} else {
			prev = it
		}
		it = next
	}
	return removed
}

func (q *Queue[T]) head() *item[T] {
	if q == nil {
		return nil
	}
	return q.front
}

func (q *Queue[T]) unlink(prev, it *item[T]) {
	if prev == nil {
		q.front = it.next
	} else {
		prev.next = it.next
	}
	if q.rear == it {
		q.rear = prev
	}
	it.next = nil
	q.length--
}

// Duplicate places a copy of the front item at the front of the
// queue. Returns ErrUnderflow when the queue is empty.
func (q *Queue[T]) Duplicate() error {
	if q.Len() == 0 {
		return ers.Wrap(ers.ErrUnderflow, "duplicate front of queue")
	}
	q.front = &item[T]{value: q.front.value, next: q.front}
	q.length++
	return nil
}

// Reverse reverses the queue in place, so that the rear item becomes
// the front.
func (q *Queue[T]) Reverse() {
	if q.Len() <= 1 {
		return
	}
	q.rear = q.front
	q.front = reverseItems(q.front)
}

// Clear removes all items from the queue.
func (q *Queue[T]) Clear() { q.front, q.rear, q.length = nil, nil, 0 }

// Swap exchanges the contents of the two queues in O(1). Swapping
// with nil or with itself does nothing.
func (q *Queue[T]) Swap(other *Queue[T]) {
	if q == nil || other == nil || q == other {
		return
	}
	*q, *other = *other, *q
}

// Copy returns a new queue holding the same items in the same order.
func (q *Queue[T]) Copy() *Queue[T] {
	out := &Queue[T]{}
	for it := q.head(); it != nil; it = it.next {
		out.PushBack(it.value)
	}
	return out
}

// Equal reports whether both queues hold equal items in the same
// order.
func (q *Queue[T]) Equal(other *Queue[T]) bool {
	return q.Len() == other.Len() && equalItems(q.head(), other.head())
}

// ForEach calls the function on every item, front to rear.
func (q *Queue[T]) ForEach(fn func(T)) { forEachItem(q.head(), fn) }

// AllOf reports whether the predicate holds for every item.
func (q *Queue[T]) AllOf(pred func(T) bool) bool {
	return !anyItem(q.head(), func(v T) bool { return !pred(v) })
}

// AnyOf reports whether the predicate holds for some item.
func (q *Queue[T]) AnyOf(pred func(T) bool) bool { return anyItem(q.head(), pred) }

// Slice exports the items to a slice, front first.
func (q *Queue[T]) Slice() []T { return sliceItems(q.head(), q.Len()) }

// SliceReverse exports the items to a slice, rear first.
func (q *Queue[T]) SliceReverse() []T {
	return reverseSlice(q.Slice())
}

// Seq returns a native go iterator function over the items, front to
// rear.
func (q *Queue[T]) Seq() iter.Seq[T] { return seqItems(q.head()) }

// CheckIntegrity verifies that the recorded length matches a
// traversal from the front, and that the traversal ends at the rear.
func (q *Queue[T]) CheckIntegrity() error {
	if q.Len() == 0 {
		if q != nil && (q.front != nil || q.rear != nil) {
			return integrityError("empty queue has front=%t rear=%t", q.front != nil, q.rear != nil)
		}
		return nil
	}

	count, last := 0, (*item[T])(nil)
	for it := q.front; it != nil; it = it.next {
		count++
		last = it
		if count > q.length {
			return integrityError("traversal exceeds length %d", q.length)
		}
	}

	switch {
	case count != q.length:
		return integrityError("traversal found %d of %d items", count, q.length)
	case last != q.rear:
		return integrityError("traversal does not end at the rear")
	}
	return nil
}

// String renders the items as "[front, ..., rear]".
func (q *Queue[T]) String() string { return stringItems(q.head()) }

// Fprint writes a one line description of the queue.
func (q *Queue[T]) Fprint(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Queue [size=%d]: ", q.Len())
	if q.Len() == 0 {
		bw.WriteString("(empty)")
	} else {
		bw.WriteString("FRONT -> ")
		bw.WriteString(joinItems(q.front, " -> "))
		bw.WriteString(" <- REAR")
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

////////////////////////////////////////////////////////////////////////
//
// helpers shared with Stack
//
////////////////////////////////////////////////////////////////////////

func countItems[T comparable](it *item[T], v T) int {
	count := 0
	for ; it != nil; it = it.next {
		if it.value == v {
			count++
		}
	}
	return count
}

func findFirstItem[T comparable](it *item[T], v T) int {
	for idx := 0; it != nil; idx, it = idx+1, it.next {
		if it.value == v {
			return idx
		}
	}
	return -1
}

func findLastItem[T comparable](it *item[T], v T) int {
	found := -1
	for idx := 0; it != nil; idx, it = idx+1, it.next {
		if it.value == v {
			found = idx
		}
	}
	return found
}

func equalItems[T comparable](a, b *item[T]) bool {
	for ; a != nil && b != nil; a, b = a.next, b.next {
		if a.value != b.value {
			return false
		}
	}
	return a == nil && b == nil
}

func anyItem[T any](it *item[T], pred func(T) bool) bool {
	for ; it != nil; it = it.next {
		if pred(it.value) {
			return true
		}
	}
	return false
}

func forEachItem[T any](it *item[T], fn func(T)) {
	for ; it != nil; it = it.next {
		fn(it.value)
	}
}

func sliceItems[T any](it *item[T], size int) []T {
	out := make([]T, 0, size)
	for ; it != nil; it = it.next {
		out = append(out, it.value)
	}
	return out
}

func seqItems[T any](it *item[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := it; cur != nil; cur = cur.next {
			if !yield(cur.value) {
				return
			}
		}
	}
}

// reverseItems reverses the chain in place and returns the new head.
func reverseItems[T any](it *item[T]) *item[T] {
	var prev *item[T]
	for it != nil {
		next := it.next
		it.next = prev
		prev, it = it, next
	}
	return prev
}

func reverseSlice[T any](in []T) []T {
	for i, j := 0, len(in)-1; i < j; i, j = i+1, j-1 {
		in[i], in[j] = in[j], in[i]
	}
	return in
}

func joinItems[T any](it *item[T], sep string) string {
	var buf strings.Builder
	for first := it; it != nil; it = it.next {
		if it != first {
			buf.WriteString(sep)
		}
		fmt.Fprint(&buf, it.value)
	}
	return buf.String()
}

func stringItems[T any](it *item[T]) string { return "[" + joinItems(it, ", ") + "]" }
