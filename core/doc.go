// Package core provides the immutable directed-graph representation shared by
// every shortest-path component in bmssp.
//
// The Graph G = (V,E) is a compressed sparse row (CSR) structure over dense
// integer vertex ids in [0, n):
//
//   - One offsets slice of length n+1, one targets slice and one weights slice
//     of length m; the out-edges of u live at positions offsets[u]..offsets[u+1].
//   - Construction is the single validation boundary: NewGraph rejects bad
//     vertex counts, out-of-range endpoints, negative weights and non-finite
//     weights before any algorithm ever runs.
//   - After NewGraph returns, the Graph never changes. Algorithms hold a
//     read-only view and need no synchronization.
//
// Why CSR?
//
//   - O(1) access to a vertex's out-edges as two contiguous subslices.
//   - Multi-edges and self-loops are representable with no special cases;
//     the relaxation rule makes both harmless.
//   - Deterministic iteration — edges of u appear in input order, and results
//     do not depend on that order anyway (the engine's tie-break is total).
//
// Configuration Options (GraphOption):
//
//	– WithDroppedEdges()
//	    Silently drop edges whose endpoints fall outside [0, n) instead of
//	    failing construction with ErrEdgeOutOfRange.
//
// Errors (sentinel):
//
//	– ErrInvalidVertexCount if n ≤ 0.
//	– ErrEdgeOutOfRange     if an edge endpoint is outside [0, n).
//	– ErrNegativeWeight     if any edge weight is < 0.
//	– ErrNonFiniteWeight    if any edge weight is NaN or ±Inf.
//
// See also: sssp.ShortestPaths and dijkstra.ShortestPaths, which both consume
// a *core.Graph and a source vertex.
package core
