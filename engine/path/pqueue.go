package path

import (
	"container/heap"
)

func NewNode[T comparable](value T, priority int) *PqItem[T] {
	return &PqItem[T]{value: value, priority: priority}
}

// A PqItem is something we manage in a priority queue.
type PqItem[T comparable] struct {
	value    T
	priority int
	// maintained by the heap.Interface methods
	index int
}

func (item *PqItem[T]) GetPriority() int {
	return item.priority
}

func (item *PqItem[T]) GetValue() T {
	return item.value
}

// PriorityQueue is a min-heap of items ordered by priority.
type PriorityQueue[T comparable] struct {
	items pqItems[T]
}

func NewPriorityQueue[T comparable]() *PriorityQueue[T] {
	return &PriorityQueue[T]{}
}

func (pq *PriorityQueue[T]) Len() int { return len(pq.items) }

func (pq *PriorityQueue[T]) IsEmpty() bool {
	return len(pq.items) == 0
}

func (pq *PriorityQueue[T]) Push(item *PqItem[T]) {
	heap.Push(&pq.items, item)
}

func (pq *PriorityQueue[T]) Pop() *PqItem[T] {
	return heap.Pop(&pq.items).(*PqItem[T])
}

// Update changes the priority of an item that is still queued.
func (pq *PriorityQueue[T]) Update(item *PqItem[T], priority int) {
	item.priority = priority
	heap.Fix(&pq.items, item.index)
}

type pqItems[T comparable] []*PqItem[T]

func (pq pqItems[T]) Len() int { return len(pq) }

func (pq pqItems[T]) Less(i, j int) bool {
	return pq[i].priority < pq[j].priority
}

func (pq pqItems[T]) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *pqItems[T]) Push(x any) {
	item := x.(*PqItem[T])
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *pqItems[T]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // avoid memory leak
	item.index = -1
	*pq = old[0 : n-1]
	return item
}
