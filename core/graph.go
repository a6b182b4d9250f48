package core

import (
	"fmt"
	"math"
)

// Graph is an immutable directed graph in compressed sparse row form.
//
// The out-edges of vertex u occupy positions offsets[u] through offsets[u+1]
// of targets and weights. The zero value is not usable; construct with NewGraph.
type Graph struct {
	n       int
	offsets []int
	targets []int
	weights []float64
}

// NewGraph validates n and edges and builds the CSR adjacency.
//
// Validation (in order):
//  1. n must be positive (ErrInvalidVertexCount).
//  2. Every weight must be finite (ErrNonFiniteWeight) and ≥ 0 (ErrNegativeWeight).
//  3. Every endpoint must lie in [0, n) (ErrEdgeOutOfRange), unless
//     WithDroppedEdges() was supplied, in which case such edges are skipped.
//
// Complexity:
//
//   - Time:  O(n + m) — one validation pass, one counting pass, one fill pass.
//   - Space: O(n + m) for the three CSR slices.
func NewGraph(n int, edges []Edge, opts ...GraphOption) (*Graph, error) {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrInvalidVertexCount, n)
	}

	// 1) Validate every edge once, before any allocation proportional to m.
	//    Weight checks run even for edges that WithDroppedEdges would discard:
	//    a malformed weight is a caller bug regardless of endpoints.
	kept := 0
	for i, e := range edges {
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return nil, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNonFiniteWeight, e.From, e.To, e.Weight)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			if cfg.dropOutOfRange {
				continue
			}

			return nil, fmt.Errorf("%w: edges[%d]=%d→%d with n=%d", ErrEdgeOutOfRange, i, e.From, e.To, n)
		}
		kept++
	}

	// 2) Count out-degrees into offsets[1..n].
	g := &Graph{
		n:       n,
		offsets: make([]int, n+1),
		targets: make([]int, kept),
		weights: make([]float64, kept),
	}
	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			continue // only reachable with WithDroppedEdges
		}
		g.offsets[e.From+1]++
	}

	// 3) Prefix-sum the counts into row offsets.
	for u := 0; u < n; u++ {
		g.offsets[u+1] += g.offsets[u]
	}

	// 4) Fill targets/weights, preserving input order within each row.
	cursor := make([]int, n)
	copy(cursor, g.offsets[:n])
	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			continue
		}
		at := cursor[e.From]
		g.targets[at] = e.To
		g.weights[at] = e.Weight
		cursor[e.From]++
	}

	return g, nil
}

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

// M returns the number of stored edges.
func (g *Graph) M() int { return len(g.targets) }

// OutDegree returns the number of out-edges of u.
func (g *Graph) OutDegree(u int) int {
	return g.offsets[u+1] - g.offsets[u]
}

// OutEdges returns the targets and weights of u's out-edges as two parallel
// read-only subslices. Callers must not mutate them.
func (g *Graph) OutEdges(u int) ([]int, []float64) {
	lo, hi := g.offsets[u], g.offsets[u+1]

	return g.targets[lo:hi], g.weights[lo:hi]
}
