package dt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/tychoish/chain/ers"
)

// Stats summarizes a list for diagnostics. The rendering of Stats is
// meant for humans and is not stable.
type Stats[T any] struct {
	Size      int
	Order     Order
	Front     T
	Back      T
	Integrity error
}

// Empty reports whether the summarized list was empty.
func (s Stats[T]) Empty() bool { return s.Size == 0 }

// Stats collects the size, order, end values, and the result of an
// integrity check for the list.
func (l *List[T]) Stats() Stats[T] {
	st := Stats[T]{
		Size:      l.Len(),
		Order:     l.Order(),
		Integrity: l.CheckIntegrity(),
	}
	if l.Len() > 0 {
		st.Front = l.head.item
		st.Back = l.tail.item
	}
	return st
}

// String renders the values of the list as "[a, b, c]".
func (l *List[T]) String() string {
	var buf strings.Builder
	buf.WriteByte('[')
	for e := l.Head(); e != nil; e = e.next {
		if e != l.head {
			buf.WriteString(", ")
		}
		fmt.Fprint(&buf, e.item)
	}
	buf.WriteByte(']')
	return buf.String()
}

// Fprint writes a one line description of the list, with its size,
// order, and values from head to tail.
func (l *List[T]) Fprint(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "List [size=%d, order=%s]: ", l.Len(), l.Order())
	if l.Len() == 0 {
		bw.WriteString("(empty)")
	} else {
		bw.WriteString("HEAD <-> ")
		for e := l.head; e != nil; e = e.next {
			fmt.Fprint(bw, e.item)
			bw.WriteString(" <-> ")
		}
		bw.WriteString("TAIL")
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

// FprintReverse writes a one line description of the list, with its
// size and values from tail to head.
func (l *List[T]) FprintReverse(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "List (reverse) [size=%d]: ", l.Len())
	if l.Len() == 0 {
		bw.WriteString("(empty)")
	} else {
		bw.WriteString("TAIL <-> ")
		for e := l.tail; e != nil; e = e.prev {
			fmt.Fprint(bw, e.item)
			bw.WriteString(" <-> ")
		}
		bw.WriteString("HEAD")
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

// FprintStats writes the list's Stats as a block of text.
func (l *List[T]) FprintStats(w io.Writer) error {
	st := l.Stats()

	bw := bufio.NewWriter(w)
	bw.WriteString("=== List Statistics ===\n")
	fmt.Fprintf(bw, "Size: %d\n", st.Size)
	fmt.Fprintf(bw, "Empty: %s\n", yesNo(st.Empty()))
	fmt.Fprintf(bw, "Sorted: %s (%s)\n", yesNo(st.Order == OrderSorted), st.Order)
	if !st.Empty() {
		fmt.Fprintf(bw, "Front element: %v\n", st.Front)
		fmt.Fprintf(bw, "Back element: %v\n", st.Back)
	}
	fmt.Fprintf(bw, "Integrity check: %s\n", passFail(st.Integrity))
	bw.WriteString("=======================\n")
	return bw.Flush()
}

// LogStats emits the list's Stats as a structured log entry: at info
// level when the integrity check passes, and at error level (with
// the failure attached) when it does not.
func (l *List[T]) LogStats(logger logrus.FieldLogger, msg string) {
	st := l.Stats()
	entry := logger.WithFields(logrus.Fields{
		"size":      st.Size,
		"order":     st.Order.String(),
		"integrity": passFail(st.Integrity),
	})
	if !st.Empty() {
		entry = entry.WithFields(logrus.Fields{"front": st.Front, "back": st.Back})
	}

	if st.Integrity != nil {
		entry.WithError(st.Integrity).Error(msg)
		return
	}
	entry.Info(msg)
}

// CheckIntegrity verifies the structure of the list: the recorded
// length, that traversals from either end reach the other end, that
// every forward link has a matching back link, and that every
// element belongs to the list. It returns nil, or an error rooted in
// ers.ErrInvariantViolation that describes the first problem found.
//
// No other operation calls CheckIntegrity.
func (l *List[T]) CheckIntegrity() error {
	if l == nil {
		return nil
	}

	if l.length < 0 {
		return integrityError("negative length %d", l.length)
	}

	if l.length == 0 || l.head == nil || l.tail == nil {
		if l.length != 0 || l.head != nil || l.tail != nil {
			return integrityError("length %d with head=%t tail=%t", l.length, l.head != nil, l.tail != nil)
		}
		return nil
	}

	if l.head.prev != nil {
		return integrityError("head has a previous element")
	}
	if l.tail.next != nil {
		return integrityError("tail has a next element")
	}

	count := 0
	for e := l.head; e != nil; e = e.next {
		count++
		switch {
		case count > l.length:
			return integrityError("forward traversal exceeds length %d", l.length)
		case e.list != l:
			return integrityError("element %d belongs to another list", count-1)
		case e.next == nil && e != l.tail:
			return integrityError("forward traversal ends before the tail at %d", count-1)
		case e.next != nil && e.next.prev != e:
			return integrityError("broken back link after element %d", count-1)
		}
	}
	if count != l.length {
		return integrityError("forward traversal found %d of %d elements", count, l.length)
	}

	count = 0
	for e := l.tail; e != nil; e = e.prev {
		count++
		switch {
		case count > l.length:
			return integrityError("backward traversal exceeds length %d", l.length)
		case e.prev == nil && e != l.head:
			return integrityError("backward traversal ends before the head")
		}
	}
	if count != l.length {
		return integrityError("backward traversal found %d of %d elements", count, l.length)
	}

	return nil
}

func integrityError(tmpl string, args ...any) error {
	return ers.Wrapf(ers.ErrInvariantViolation, tmpl, args...)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func passFail(err error) string {
	if err != nil {
		return "FAILED"
	}
	return "PASSED"
}
