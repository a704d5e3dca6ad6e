package path

type DijkstraSource[T any] interface {
	GetNeighbors(node T) []T
	GetCost(currentNode T, neighbor T) int
}

// Dijkstra returns the cost of the cheapest path from source to every node reachable within
// maxCost, and the predecessor of each node on that path.
func Dijkstra[T comparable](source T, maxCost int, dataSource DijkstraSource[T]) (dist map[T]int, prev map[T]T) {
	dist = map[T]int{source: 0}
	prev = make(map[T]T)
	queued := make(map[T]*PqItem[T])
	done := make(map[T]bool)

	Q := NewPriorityQueue[T]()
	start := NewNode(source, 0)
	queued[source] = start
	Q.Push(start)

	for !Q.IsEmpty() {
		currentNode := Q.Pop()
		current := currentNode.GetValue()
		delete(queued, current)
		done[current] = true
		for _, neighbor := range dataSource.GetNeighbors(current) {
			if done[neighbor] {
				continue
			}
			neighborDist := dist[current] + dataSource.GetCost(current, neighbor)
			if neighborDist > maxCost {
				continue
			}
			if oldDist, known := dist[neighbor]; known && neighborDist >= oldDist {
				continue
			}
			dist[neighbor] = neighborDist
			prev[neighbor] = current
			if item, ok := queued[neighbor]; ok {
				Q.Update(item, neighborDist)
			} else {
				item = NewNode(neighbor, neighborDist)
				queued[neighbor] = item
				Q.Push(item)
			}
		}
	}
	return
}
