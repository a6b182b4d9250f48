// Package dijkstra provides the textbook shortest-path oracle the rest of the
// module is measured against.
//
// Overview:
//
//   - Classic Dijkstra over a core.Graph with a min-heap priority queue and
//     the lazy-decrease-key strategy: improvements push duplicate entries and
//     stale entries are skipped when popped.
//   - Exposes the same call signature as sssp.ShortestPaths, so tests and
//     benchmarks can swap the two engines freely.
//   - On graphs below the asymptotic crossover this oracle is the faster
//     engine; its other job is being obviously correct.
//
// Complexity:
//
//   - Time:  O((n + m) log n)
//   - Each vertex is extracted at most once: n extractions from the heap.
//   - Each edge relaxation may push a new entry: up to m pushes.
//   - Space: O(n + m)
//   - O(n) for the distance and settled slices.
//   - O(m) worst-case heap entries under lazy decrease-key.
//
// Errors (sentinel):
//
//	– ErrNilGraph         if the provided graph pointer is nil.
//	– ErrSourceOutOfRange if the source vertex is outside [0, n).
//
// Weight validity is core.NewGraph's concern; by the time a *core.Graph
// exists, every weight is finite and non-negative.
package dijkstra
