package graph

import "container/heap"

type stack[T any] struct {
	items []T
}

func (s *stack[T]) push(item T) { s.items = append(s.items, item) }
func (s *stack[T]) empty() bool { return len(s.items) == 0 }

func (s *stack[T]) pop() T {
	last := len(s.items) - 1
	item := s.items[last]
	var zero T
	s.items[last] = zero
	s.items = s.items[:last]
	return item
}

type queue[T any] struct {
	items []T
	head  int
}

func (q *queue[T]) push(item T) { q.items = append(q.items, item) }
func (q *queue[T]) empty() bool { return q.head == len(q.items) }

func (q *queue[T]) pop() T {
	item := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++
	// Reclaim the consumed prefix once it dominates the backing array
	if q.head > 64 && q.head*2 > len(q.items) {
		q.items = append([]T(nil), q.items[q.head:]...)
		q.head = 0
	}
	return item
}

// priorityQueue pops the lowest priority first, ties in insertion order.
type priorityQueue[T any] struct {
	entries entries[T]
	seq     int
}

type entry[T any] struct {
	item     T
	priority float64
	seq      int
}

type entries[T any] []entry[T]

func (e entries[T]) Len() int { return len(e) }
func (e entries[T]) Less(i, j int) bool {
	if e[i].priority != e[j].priority {
		return e[i].priority < e[j].priority
	}
	return e[i].seq < e[j].seq
}
func (e entries[T]) Swap(i, j int) { e[i], e[j] = e[j], e[i] }
func (e *entries[T]) Push(x any)   { *e = append(*e, x.(entry[T])) }
func (e *entries[T]) Pop() any {
	old := *e
	last := len(old) - 1
	item := old[last]
	*e = old[:last]
	return item
}

func (pq *priorityQueue[T]) push(item T, priority float64) {
	heap.Push(&pq.entries, entry[T]{item: item, priority: priority, seq: pq.seq})
	pq.seq++
}

func (pq *priorityQueue[T]) empty() bool { return len(pq.entries) == 0 }

func (pq *priorityQueue[T]) pop() T {
	return heap.Pop(&pq.entries).(entry[T]).item
}
