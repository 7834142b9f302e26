package binaryheap

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/nilheap/fixedcol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeap_MinOrder(t *testing.T) {
	h := NewMin[int](8)

	for _, v := range []int{5, 3, 8, 1} {
		require.NoError(t, h.Push(v))
	}

	var popped []int
	for {
		v, ok := h.Pop()
		if !ok {
			break
		}
		popped = append(popped, v)
	}

	assert.Equal(t, []int{1, 3, 5, 8}, popped)
	assert.Equal(t, 0, h.Len())
}

func TestHeap_MaxOrder(t *testing.T) {
	h := NewMax[float64](16)

	items := []float64{0.4, 9, 0.001, 2.03, 2.042, 1.0009, 10.03, 5.029}
	for _, v := range items {
		require.NoError(t, h.Push(v))
	}

	top, ok := h.Peek()
	require.True(t, ok)
	assert.Equal(t, 10.03, top)

	prev, _ := h.Pop()
	for h.Len() > 0 {
		v, ok := h.Pop()
		require.True(t, ok)
		assert.LessOrEqual(t, v, prev)
		prev = v
	}
}

func TestHeap_CustomComparator(t *testing.T) {
	type job struct {
		name     string
		priority int
	}

	h := NewFunc(4, func(a, b job) bool { return a.priority < b.priority })

	require.NoError(t, h.Push(job{"compact", 7}))
	require.NoError(t, h.Push(job{"flush", 1}))
	require.NoError(t, h.Push(job{"sync", 3}))

	v, ok := h.Pop()
	require.True(t, ok)
	assert.Equal(t, "flush", v.name)

	v, ok = h.Pop()
	require.True(t, ok)
	assert.Equal(t, "sync", v.name)
}

func TestHeap_CapacityExceeded(t *testing.T) {
	h := NewMin[int](2)

	require.NoError(t, h.Push(1))
	require.NoError(t, h.Push(2))

	err := h.Push(3)
	var ece *fixedcol.ErrCapacityExceeded
	require.ErrorAs(t, err, &ece)
	assert.Equal(t, 2, ece.Capacity)

	// Failed push leaves the heap intact.
	assert.Equal(t, 2, h.Len())
	v, ok := h.Pop()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	// Room again after a pop.
	assert.NoError(t, h.Push(3))
}

func TestHeap_Empty(t *testing.T) {
	h := NewMin[int](4)

	_, ok := h.Pop()
	assert.False(t, ok)
	_, ok = h.Peek()
	assert.False(t, ok)
}

func TestHeap_PeekAfterMixedOps(t *testing.T) {
	h := NewMin[int](64)
	rng := rand.New(rand.NewSource(1))

	var reference []int
	for i := 0; i < 500; i++ {
		if rng.Intn(3) == 0 && len(reference) > 0 {
			want := reference[0]
			got, ok := h.Pop()
			require.True(t, ok)
			require.Equal(t, want, got)
			reference = reference[1:]
			continue
		}
		if h.Len() == h.Cap() {
			continue
		}
		v := rng.Intn(1000)
		require.NoError(t, h.Push(v))
		reference = append(reference, v)
		sort.Ints(reference)

		top, ok := h.Peek()
		require.True(t, ok)
		require.Equal(t, reference[0], top)
	}
}

func TestHeap_Reset(t *testing.T) {
	h := NewMax[int](4)
	require.NoError(t, h.Push(1))
	require.NoError(t, h.Push(2))

	h.Reset()
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, 4, h.Cap())

	require.NoError(t, h.Push(9))
	v, ok := h.Peek()
	require.True(t, ok)
	assert.Equal(t, 9, v)
}

func BenchmarkHeap_PushPop(b *testing.B) {
	h := NewMin[int](1024)
	rng := rand.New(rand.NewSource(42))

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if h.Len() == h.Cap() {
			h.Pop()
		}
		_ = h.Push(rng.Int())
		if i%2 == 1 {
			h.Pop()
		}
	}
}
