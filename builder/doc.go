// Package builder generates deterministic edge lists for the graph shapes the
// test and benchmark suites lean on.
//
// Every generator returns a plain []core.Edge ready for core.NewGraph, and
// every randomized generator takes an explicit seed:
//
//   - Determinism: same arguments and seed ⇒ identical edge list, across runs
//     and platforms. No time-based randomness hidden anywhere.
//   - Stable order: vertices ascend, per-vertex trials ascend, so generated
//     lists double as fixtures.
//
// Shapes:
//
//	– Chain(n, w)                 — the path 0→1→…→n−1, uniform weight.
//	– Cycle(n, w)                 — the directed n-cycle.
//	– Complete(n, w)              — all ordered pairs (i, j), i ≠ j.
//	– RandomSparse(n, deg, maxW, seed) — ~deg random out-edges per vertex.
//	– RandomDense(n, p, maxW, seed)    — each ordered pair independently with
//	  probability p (Erdős–Rényi-like).
//
// Random weights are uniform in [0, maxW); a maxW of 0 yields all-zero
// weights. Generators do not validate against core's rules — they construct
// values core.NewGraph accepts by construction.
package builder
