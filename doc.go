// Package bmssp is a single-source shortest-path engine for directed graphs
// with non-negative real edge weights, built around the recursive
// frontier-reduction algorithm of Duan, Mao, Mao, Shu and Yin (2025).
//
// 🚀 What is bmssp?
//
//	A deterministic SSSP toolkit that runs in O(m·log^(2/3) n) time in the
//	comparison-addition model, organized as small composable packages:
//		• core/     — immutable CSR digraph over dense integer ids + validation
//		• frontier/ — bounded partial-sorting queue (Insert / BatchPrepend / Pull)
//		• sssp/     — FindPivots, the bounded multi-source recursion, and the driver
//		• dijkstra/ — a textbook lazy-heap oracle with the same call signature
//		• builder/  — deterministic graph generators for tests and benchmarks
//
// ✨ Why choose bmssp?
//
//   - Exact — distances match Dijkstra bit-for-bit tie-breaking included
//   - Deterministic — a total (dist, hops, pred) order fixes every tie
//   - Pure Go — no cgo; roaring bitmaps for vertex-set bookkeeping
//   - Testable — every package ships scenario, property and benchmark suites
//
// Quick ASCII example:
//
//	    0 ──1── 1 ──2── 2
//	     \              │
//	      ────4─────────┘
//
//	two routes from 0 to 2; the engine settles the cheaper one (weight 3).
//
// Entry point:
//
//	dist, err := sssp.Distances(n, edges, source)
//
// Dive into DESIGN.md for the grounding of each component and into the
// per-package doc.go files for contracts and complexity notes.
//
//	go get github.com/katalvlaran/bmssp
package bmssp
