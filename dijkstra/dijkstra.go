package dijkstra

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/bmssp/core"
)

// Sentinel errors returned by the oracle.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to ShortestPaths.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates that the source vertex is outside [0, n).
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")
)

// ShortestPaths computes exact shortest-path distances from source to every
// vertex of g, returning a slice of length g.N() with +Inf for unreachable
// vertices. The signature matches sssp.ShortestPaths so the two engines are
// interchangeable in tests and benchmarks.
func ShortestPaths(g *core.Graph, source int) ([]float64, error) {
	// 1) Validate inputs before allocating anything.
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.N()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source=%d, n=%d", ErrSourceOutOfRange, source, n)
	}

	// 2) Prepare distance and settled tables.
	dist := make([]float64, n)
	for v := range dist {
		dist[v] = math.Inf(1)
	}
	dist[source] = 0
	settled := make([]bool, n)

	// 3) Seed the heap with the source and run the main loop.
	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, nodeItem{v: source, dist: 0})

	for pq.Len() > 0 {
		it := heap.Pop(&pq).(nodeItem)
		u := it.v
		if settled[u] {
			continue // stale lazy-decrease-key entry
		}
		settled[u] = true

		// 4) Relax all out-edges of u. A strict improvement pushes a fresh
		//    heap entry; the outdated one is skipped later via settled[u].
		targets, weights := g.OutEdges(u)
		du := dist[u]
		for j, v := range targets {
			if nd := du + weights[j]; nd < dist[v] {
				dist[v] = nd
				heap.Push(&pq, nodeItem{v: v, dist: nd})
			}
		}
	}

	return dist, nil
}

// nodeItem pairs a vertex with its distance snapshot at push time.
type nodeItem struct {
	v    int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by ascending distance, with the
// vertex id as a deterministic tie-break.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller distance → higher priority.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].v < pq[j].v
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
