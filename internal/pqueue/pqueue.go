// Package pqueue provides a small score-ordered priority queue used by the
// flow and region searches. Entries with the highest score pop first; callers
// that want min-first ordering push negated scores.
package pqueue

import "container/heap"

// Queue is a max-priority queue of values keyed by a float score.
type Queue[T any] struct {
	entries entryHeap[T]
}

// New returns an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Push adds a value with the given score.
func (q *Queue[T]) Push(value T, score float64) {
	heap.Push(&q.entries, entry[T]{value: value, score: score})
}

// Pop removes and returns the value with the highest score. The second return
// is false when the queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	if len(q.entries) == 0 {
		var zero T
		return zero, false
	}
	e := heap.Pop(&q.entries).(entry[T])
	return e.value, true
}

// Len returns the number of queued values.
func (q *Queue[T]) Len() int { return len(q.entries) }

type entry[T any] struct {
	value T
	score float64
}

type entryHeap[T any] []entry[T]

func (h entryHeap[T]) Len() int           { return len(h) }
func (h entryHeap[T]) Less(i, j int) bool { return h[i].score > h[j].score }
func (h entryHeap[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *entryHeap[T]) Push(x any)        { *h = append(*h, x.(entry[T])) }
func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}
