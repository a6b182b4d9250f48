package builder

import (
	"math/rand"

	"github.com/katalvlaran/bmssp/core"
)

// defaultSeed is the fixed seed substituted when callers pass seed==0, so the
// zero value still produces reproducible graphs.
const defaultSeed int64 = 1

// Chain returns the path 0→1→…→n−1 with every edge weighing w.
func Chain(n int, w float64) []core.Edge {
	if n < 2 {
		return nil
	}
	edges := make([]core.Edge, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, core.Edge{From: i, To: i + 1, Weight: w})
	}

	return edges
}

// Cycle returns the directed cycle 0→1→…→n−1→0 with every edge weighing w.
func Cycle(n int, w float64) []core.Edge {
	if n < 2 {
		return nil
	}
	edges := make([]core.Edge, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, core.Edge{From: i, To: (i + 1) % n, Weight: w})
	}

	return edges
}

// Complete returns every ordered pair (i, j) with i ≠ j, all weighing w.
func Complete(n int, w float64) []core.Edge {
	if n < 2 {
		return nil
	}
	edges := make([]core.Edge, 0, n*(n-1))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				edges = append(edges, core.Edge{From: i, To: j, Weight: w})
			}
		}
	}

	return edges
}

// RandomSparse returns a digraph with deg random out-edges per vertex and
// uniform weights in [0, maxW). Duplicate targets and self-loops are kept —
// the consumers treat both as ordinary edges.
//
// Deterministic for a fixed (n, deg, maxW, seed): the trial order is vertex
// ascending, slot ascending.
func RandomSparse(n, deg int, maxW float64, seed int64) []core.Edge {
	rng := rngFromSeed(seed)
	edges := make([]core.Edge, 0, n*deg)
	for u := 0; u < n; u++ {
		for s := 0; s < deg; s++ {
			edges = append(edges, core.Edge{
				From:   u,
				To:     rng.Intn(n),
				Weight: weightIn(rng, maxW),
			})
		}
	}

	return edges
}

// RandomDense returns an Erdős–Rényi-like digraph: each ordered pair (i, j)
// with i ≠ j is included independently with probability p, weights uniform in
// [0, maxW). Deterministic for a fixed (n, p, maxW, seed).
func RandomDense(n int, p, maxW float64, seed int64) []core.Edge {
	rng := rngFromSeed(seed)
	var edges []core.Edge
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || rng.Float64() >= p {
				continue
			}
			edges = append(edges, core.Edge{From: i, To: j, Weight: weightIn(rng, maxW)})
		}
	}

	return edges
}

// rngFromSeed returns a deterministic *rand.Rand; seed==0 maps to defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// weightIn draws a uniform weight from [0, maxW), tolerating maxW == 0.
func weightIn(rng *rand.Rand, maxW float64) float64 {
	if maxW <= 0 {
		return 0
	}

	return rng.Float64() * maxW
}
