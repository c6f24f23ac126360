package dt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tychoish/chain/ers"
)

func TestStack(t *testing.T) {
	t.Run("ZeroValue", func(t *testing.T) {
		var s Stack[string]
		assert.True(t, s.Empty())
		s.Push("a")
		v, err := s.Top()
		require.NoError(t, err)
		assert.Equal(t, "a", v)
	})
	t.Run("LIFO", func(t *testing.T) {
		s := NewStack(1, 2, 3)
		assert.Equal(t, 3, s.Len())
		for _, expected := range []int{3, 2, 1} {
			v, err := s.Pop()
			require.NoError(t, err)
			assert.Equal(t, expected, v)
		}

		_, err := s.Pop()
		assert.ErrorIs(t, err, ers.ErrUnderflow)
		_, err = s.Top()
		assert.ErrorIs(t, err, ers.ErrUnderflow)
		assert.ErrorIs(t, s.Duplicate(), ers.ErrUnderflow)
		assert.Equal(t, 0, s.Len())
	})
	t.Run("Positions", func(t *testing.T) {
		s := NewStack(1, 2, 1, 3)
		assert.Equal(t, []int{3, 1, 2, 1}, s.Slice())
		assert.Equal(t, []int{1, 2, 1, 3}, s.SliceReverse())

		v, err := s.At(0)
		require.NoError(t, err)
		assert.Equal(t, 3, v)
		_, err = s.At(4)
		assert.ErrorIs(t, err, ers.ErrOutOfRange)

		assert.Equal(t, 1, s.FindFirst(1))
		assert.Equal(t, 3, s.FindLast(1))
		assert.Equal(t, 2, s.Count(1))
		assert.True(t, s.Contains(2))
		assert.False(t, s.Contains(5))
	})
	t.Run("Remove", func(t *testing.T) {
		s := NewStack(1, 2, 1, 3, 1)
		assert.True(t, s.RemoveFirst(1))
		assert.Equal(t, []int{3, 1, 2, 1}, s.Slice())
		assert.Equal(t, 2, s.RemoveAll(1))
		assert.Equal(t, []int{3, 2}, s.Slice())
		assert.False(t, s.RemoveFirst(1))
		require.NoError(t, s.CheckIntegrity())
	})
	t.Run("Duplicate", func(t *testing.T) {
		s := NewStack(4, 5)
		require.NoError(t, s.Duplicate())
		assert.Equal(t, []int{5, 5, 4}, s.Slice())
	})
	t.Run("Reverse", func(t *testing.T) {
		s := NewStack(1, 2, 3)
		s.Reverse()
		v, err := s.Top()
		require.NoError(t, err)
		assert.Equal(t, 1, v)
		assert.Equal(t, []int{1, 2, 3}, s.Slice())
		require.NoError(t, s.CheckIntegrity())
	})
	t.Run("CopySwapClear", func(t *testing.T) {
		a := NewStack(1, 2, 3)
		b := a.Copy()
		assert.True(t, a.Equal(b))
		assert.Equal(t, a.Slice(), b.Slice())

		_, err := b.Pop()
		require.NoError(t, err)
		assert.False(t, a.Equal(b))

		a.Swap(b)
		assert.Equal(t, 2, a.Len())
		assert.Equal(t, 3, b.Len())

		b.Clear()
		assert.True(t, b.Empty())
		require.NoError(t, b.CheckIntegrity())
	})
	t.Run("SwapNil", func(t *testing.T) {
		s := NewStack(1, 2)
		assert.NotPanics(t, func() { s.Swap(nil) })
		s.Swap(s)
		assert.Equal(t, []int{2, 1}, s.Slice())

		var empty *Stack[int]
		assert.NotPanics(t, func() { empty.Swap(s) })
		assert.NotPanics(t, func() { empty.Reverse() })
		assert.Equal(t, []int{2, 1}, s.Slice())

		single := NewStack(5)
		single.Reverse()
		assert.Equal(t, []int{5}, single.Slice())
	})
	t.Run("Iterators", func(t *testing.T) {
		s := NewStack(1, 2, 3)
		vals := []int{}
		for v := range s.Seq() {
			vals = append(vals, v)
		}
		assert.Equal(t, []int{3, 2, 1}, vals)
		assert.Equal(t, 3, s.Len())

		vals = vals[:0]
		for v := range s.SeqPop() {
			vals = append(vals, v)
			if v == 2 {
				break
			}
		}
		assert.Equal(t, []int{3, 2}, vals)
		assert.Equal(t, 1, s.Len())

		assert.True(t, s.AllOf(func(v int) bool { return v == 1 }))
		assert.True(t, s.AnyOf(func(v int) bool { return v == 1 }))
		count := 0
		s.ForEach(func(int) { count++ })
		assert.Equal(t, 1, count)
	})
	t.Run("Print", func(t *testing.T) {
		s := NewStack("a", "b")
		assert.Equal(t, "[b, a]", s.String())

		buf := &bytes.Buffer{}
		require.NoError(t, s.Fprint(buf))
		assert.Equal(t, "Stack [size=2]: TOP -> b -> a -> BOTTOM\n", buf.String())

		buf.Reset()
		require.NoError(t, NewStack[string]().Fprint(buf))
		assert.Equal(t, "Stack [size=0]: (empty)\n", buf.String())
	})
	t.Run("Integrity", func(t *testing.T) {
		s := NewStack(1, 2)
		s.length = 3
		assert.ErrorIs(t, s.CheckIntegrity(), ers.ErrInvariantViolation)
		s.length = 1
		assert.ErrorIs(t, s.CheckIntegrity(), ers.ErrInvariantViolation)
	})
}
