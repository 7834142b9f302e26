package stack

import (
	"testing"

	"github.com/nilheap/fixedcol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack_PushPop(t *testing.T) {
	s := New[int](4)

	for _, v := range []int{1, 2, 3} {
		require.NoError(t, s.Push(v))
	}
	assert.Equal(t, 3, s.Len())

	// LIFO order.
	for _, want := range []int{3, 2, 1} {
		got, ok := s.Pop()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := s.Pop()
	assert.False(t, ok)
}

func TestStack_Peek(t *testing.T) {
	s := New[string](2)

	_, ok := s.Peek()
	assert.False(t, ok)

	require.NoError(t, s.Push("a"))
	require.NoError(t, s.Push("b"))

	v, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, "b", v)
	assert.Equal(t, 2, s.Len())
}

func TestStack_CapacityExceeded(t *testing.T) {
	s := New[int](2)

	require.NoError(t, s.Push(1))
	require.NoError(t, s.Push(2))

	err := s.Push(3)
	var ece *fixedcol.ErrCapacityExceeded
	require.ErrorAs(t, err, &ece)
	assert.Equal(t, 2, ece.Capacity)

	// Popping makes room again.
	s.Pop()
	assert.NoError(t, s.Push(3))
}

func TestStack_Reset(t *testing.T) {
	s := New[int](4)
	require.NoError(t, s.Push(1))
	require.NoError(t, s.Push(2))

	s.Reset()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 4, s.Cap())

	require.NoError(t, s.Push(7))
	v, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestStack_ZeroCapacity(t *testing.T) {
	s := New[int](0)

	var ece *fixedcol.ErrCapacityExceeded
	assert.ErrorAs(t, s.Push(1), &ece)

	_, ok := s.Pop()
	assert.False(t, ok)
}
