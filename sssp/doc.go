// Package sssp computes single-source shortest paths on directed graphs with
// non-negative real edge weights using the recursive frontier-reduction
// algorithm of Duan, Mao, Mao, Shu and Yin (2025).
//
// Overview:
//
//   - The engine runs in O(m·log^(2/3) n) time in the comparison-addition
//     model, below the Θ(m + n·log n) of heap-based Dijkstra on sparse graphs.
//   - Instead of settling one vertex at a time, it settles batches: a bounded
//     multi-source recursion (BMSSP) descends through O(log n / t) levels,
//     each level shrinking its frontier with FindPivots and scheduling work
//     through a partial-sorting queue (package frontier).
//   - At level 0 it degenerates into a mini-Dijkstra capped at k+1 settled
//     vertices, which is where distances actually become final.
//
// Determinism:
//
//	Every relaxation resolves ties by the lexicographic key
//	(dist, hops, pred). The total order makes the shortest-path forest used
//	for pivot selection unique, and makes the whole computation reproducible:
//	rerunning on the same input yields bit-identical output, and the output
//	does not depend on the order of the input edge list.
//
// Parameters (derived from n, overridable for testing):
//
//	logn     = max(1, log₂ n)
//	k        = max(2, ⌊logn^(1/3)⌋)   — relaxation depth / pivot threshold
//	t        = max(1, ⌊logn^(2/3)⌋)   — per-level width exponent
//	maxLevel = ⌈logn / t⌉             — recursion depth
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the graph pointer is nil.
//	– ErrSourceOutOfRange  if the source vertex is outside [0, n).
//	– ErrBadPivotThreshold (via panic) if WithPivotThreshold gets k < 2.
//	– ErrBadLevelExponent  (via panic) if WithLevelExponent gets t < 1.
//
// API reference:
//
//	func ShortestPaths(g *core.Graph, source int, opts ...Option) ([]float64, error)
//	func Distances(n int, edges []core.Edge, source int) ([]float64, error)
//
// Both return a length-n slice: entry v holds the exact shortest-path
// distance from source to v, or +Inf when v is unreachable. The expected
// crossover versus dijkstra.ShortestPaths sits at very large n; on small
// graphs the oracle is faster and this package's value is its bound.
//
// Thread safety: a single computation owns all of its state and must not be
// shared across goroutines; distinct computations are independent.
package sssp
