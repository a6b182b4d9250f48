package sssp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bmssp/core"
)

// ShortestPaths computes exact shortest-path distances from source to every
// vertex of g.
//
// Returns a slice of length g.N(): entry v holds the distance of the shortest
// directed walk source→v, or +Inf when no such walk exists. The slice is
// freshly allocated and owned by the caller.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must lie in [0, g.N()) (ErrSourceOutOfRange).
//
// Edge validity was already enforced by core.NewGraph, so no computation
// state exists before validation passes and no error can surface after it.
//
// Complexity:
//
//   - Time:  O(m·log^(2/3) n) in the comparison-addition model.
//   - Space: O(n + m) — the distance state plus per-level frontier machinery.
func ShortestPaths(g *core.Graph, source int, opts ...Option) ([]float64, error) {
	// 1) Build and validate options; derive the recursion parameters.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if source < 0 || source >= g.N() {
		return nil, fmt.Errorf("%w: source=%d, n=%d", ErrSourceOutOfRange, source, g.N())
	}

	// 2) One exclusive distance state per computation; the source is its only
	//    seeded entry.
	r := &runner{
		g: g,
		s: newState(g.N(), source),
		p: deriveParams(g.N(), cfg),
	}

	// 3) The whole computation is one top-level bounded call with no bound.
	r.bmssp(r.p.maxLevel, math.Inf(1), []int{source})

	return r.s.dist, nil
}

// Distances is the convenience form of ShortestPaths for callers holding a
// raw edge list: it validates and builds the graph, then runs the engine.
func Distances(n int, edges []core.Edge, source int) ([]float64, error) {
	g, err := core.NewGraph(n, edges)
	if err != nil {
		return nil, err
	}

	return ShortestPaths(g, source)
}
