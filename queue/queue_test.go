package queue

import (
	"testing"

	"github.com/nilheap/fixedcol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_EnqueueDequeue(t *testing.T) {
	q := New[int](4)

	for _, v := range []int{1, 2, 3} {
		require.NoError(t, q.Enqueue(v))
	}
	assert.Equal(t, 3, q.Len())

	// FIFO order.
	for _, want := range []int{1, 2, 3} {
		got, ok := q.Dequeue()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := q.Dequeue()
	assert.False(t, ok)
}

func TestQueue_Peek(t *testing.T) {
	q := New[string](2)

	_, ok := q.Peek()
	assert.False(t, ok)

	require.NoError(t, q.Enqueue("a"))
	require.NoError(t, q.Enqueue("b"))

	v, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, "a", v)
	assert.Equal(t, 2, q.Len())
}

func TestQueue_CapacityExceeded(t *testing.T) {
	q := New[int](2)

	require.NoError(t, q.Enqueue(1))
	require.NoError(t, q.Enqueue(2))

	err := q.Enqueue(3)
	var ece *fixedcol.ErrCapacityExceeded
	require.ErrorAs(t, err, &ece)
	assert.Equal(t, 2, ece.Capacity)

	q.Dequeue()
	assert.NoError(t, q.Enqueue(3))
}

func TestQueue_WrapAround(t *testing.T) {
	// Cycle through far more elements than the capacity so head and tail wrap
	// repeatedly; ordering must survive the wrap.
	q := New[int](3)

	next := 0
	for i := 0; i < 3; i++ {
		require.NoError(t, q.Enqueue(next))
		next++
	}

	expect := 0
	for i := 0; i < 50; i++ {
		v, ok := q.Dequeue()
		require.True(t, ok)
		require.Equal(t, expect, v)
		expect++

		require.NoError(t, q.Enqueue(next))
		next++
	}
	assert.Equal(t, 3, q.Len())
}

func TestQueue_Reset(t *testing.T) {
	q := New[int](4)
	require.NoError(t, q.Enqueue(1))
	require.NoError(t, q.Enqueue(2))
	q.Dequeue()

	q.Reset()
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, 4, q.Cap())

	require.NoError(t, q.Enqueue(9))
	v, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, 9, v)
}

func TestQueue_ZeroCapacity(t *testing.T) {
	q := New[int](0)

	var ece *fixedcol.ErrCapacityExceeded
	assert.ErrorAs(t, q.Enqueue(1), &ece)

	_, ok := q.Dequeue()
	assert.False(t, ok)
}
