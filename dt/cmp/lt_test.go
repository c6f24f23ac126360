package cmp

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type userOrderable struct {
	val int
}

func (u userOrderable) LessThan(in userOrderable) bool { return u.val < in.val }

func TestCmp(t *testing.T) {
	t.Run("Native", func(t *testing.T) {
		for idx, b := range []bool{
			LessThanNative(1, 2),
			LessThanNative(0, 40),
			LessThanNative(-1, 0),
			LessThanNative(1.5, 1.9),
			LessThanNative(440, 9001),
			LessThanNative("abc", "abcd"),
		} {
			assert.True(t, b, idx)
		}

		for idx, b := range []bool{
			LessThanNative(0, -2),
			LessThanNative(2.1, 1.9),
			LessThanNative(999440, 9001),
			LessThanNative("zzzz", "aaa"),
			LessThanNative(7, 7),
		} {
			assert.False(t, b, idx)
		}
	})
	t.Run("Reversed", func(t *testing.T) {
		for idx, b := range []bool{
			Reverse(LessThanNative[int])(1, 2),
			Reverse(LessThanNative[int])(0, 40),
			Reverse(LessThanNative[float64])(1.5, 1.9),
			Reverse(LessThanNative[uint])(440, 9001),
			Reverse(LessThanNative[string])("abc", "abcd"),
			Reverse(LessThanNative[int])(3, 3),
		} {
			assert.False(t, b, idx)
		}

		for idx, b := range []bool{
			Reverse(LessThanNative[int8])(0, -2),
			Reverse(LessThanNative[float32])(2.1, 1.9),
			Reverse(LessThanNative[uint64])(999440, 9001),
			Reverse(LessThanNative[string])("zzzz", "aaa"),
		} {
			assert.True(t, b, idx)
		}
	})
	t.Run("Time", func(t *testing.T) {
		now := time.Now()
		assert.False(t, LessThanTime(now, now.Add(-time.Hour)))
		assert.True(t, LessThanTime(now, now.Add(time.Hour)))
	})
	t.Run("Custom", func(t *testing.T) {
		assert.True(t, LessThanCustom(userOrderable{1}, userOrderable{199}))
		assert.False(t, LessThanCustom(userOrderable{1000}, userOrderable{199}))
	})
	t.Run("Converter", func(t *testing.T) {
		lt := LessThanConverter(func(in string) int { return len(in) })
		assert.True(t, lt("a", "bb"))
		assert.False(t, lt("cc", "dd"))
		assert.True(t, Equal(lt, "cc", "dd"))
	})
	t.Run("Equivalence", func(t *testing.T) {
		fold := LessThan[string](func(a, b string) bool { return strings.ToLower(a) < strings.ToLower(b) })
		eq := fold.Equivalence()
		assert.True(t, eq("Hello", "hello"))
		assert.False(t, eq("hello", "world"))
		assert.True(t, Equal(LessThanNative[int], 4, 4))
		assert.False(t, Equal(LessThanNative[int], 4, 5))
	})
	t.Run("Compare", func(t *testing.T) {
		lt := LessThan[int](LessThanNative[int])
		assert.Equal(t, -1, lt.Compare(1, 2))
		assert.Equal(t, 0, lt.Compare(2, 2))
		assert.Equal(t, 1, lt.Compare(3, 2))
	})
}
