package pqueue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueOrdering(t *testing.T) {
	q := New[string]()

	q.Push("low", 1)
	q.Push("high", 10)
	q.Push("mid", 5)

	require.Equal(t, 3, q.Len())

	for _, want := range []string{"high", "mid", "low"} {
		got, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := q.Pop()
	assert.False(t, ok)
}

func TestQueueNegatedScoresPopLowestFirst(t *testing.T) {
	q := New[int]()

	elevations := []float64{4.5, 0.25, 9.75, 2.5}
	for v, e := range elevations {
		q.Push(v, -e)
	}

	var order []int
	for {
		v, ok := q.Pop()
		if !ok {
			break
		}
		order = append(order, v)
	}

	assert.Equal(t, []int{1, 3, 0, 2}, order)
}
