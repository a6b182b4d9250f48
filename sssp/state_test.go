package sssp

import (
	"math"
	"testing"
)

func TestNewState_Seeding(t *testing.T) {
	s := newState(4, 2)
	for v := 0; v < 4; v++ {
		if v == 2 {
			continue
		}
		if !math.IsInf(s.dist[v], 1) || s.pred[v] != noPred || s.hops[v] != maxHops {
			t.Fatalf("vertex %d not initialized to the unreached label", v)
		}
	}
	if s.dist[2] != 0 || s.pred[2] != 2 || s.hops[2] != 0 {
		t.Fatal("source label incorrect")
	}
}

func TestRelax_StrictImprovement(t *testing.T) {
	s := newState(3, 0)
	if !s.relax(0, 1, 5) {
		t.Fatal("first relaxation into an unreached vertex must succeed")
	}
	if s.dist[1] != 5 || s.pred[1] != 0 || s.hops[1] != 1 {
		t.Fatalf("label after relax: dist=%g pred=%d hops=%d", s.dist[1], s.pred[1], s.hops[1])
	}

	// A worse distance never wins.
	if s.relax(0, 1, 6) {
		t.Fatal("longer path must not be adopted")
	}
}

func TestRelax_HopsTieBreak(t *testing.T) {
	// Two routes to vertex 3 with equal weight: 0→1→3 (two hops, via 5+0)
	// and 0→3 (one hop, weight 5). The shorter hop count must win.
	s := newState(4, 0)
	s.relax(0, 1, 5)
	s.relax(1, 3, 0) // dist 5 via two hops
	if !s.relax(0, 3, 5) {
		t.Fatal("equal distance with fewer hops must be adopted")
	}
	if s.hops[3] != 1 || s.pred[3] != 0 {
		t.Fatalf("tie-break failed: hops=%d pred=%d", s.hops[3], s.pred[3])
	}
}

func TestRelax_PredTieBreak(t *testing.T) {
	// Equal distance, equal hops: the smaller predecessor id wins.
	s := newState(4, 0)
	s.relax(0, 2, 1)
	s.relax(0, 1, 1)
	s.relax(2, 3, 1) // dist 2, hops 2, pred 2
	if !s.relax(1, 3, 1) {
		t.Fatal("equal (dist, hops) with smaller pred must be adopted")
	}
	if s.pred[3] != 1 {
		t.Fatalf("pred = %d; want 1", s.pred[3])
	}
	// Re-offering the identical label is a no-op.
	if s.relax(1, 3, 1) {
		t.Fatal("identical label must not be re-adopted")
	}
}

func TestRelax_SelfLoopNeverImproves(t *testing.T) {
	s := newState(2, 0)
	s.relax(0, 1, 2)
	if s.relax(1, 1, 0) {
		t.Fatal("a zero-weight self-loop adds a hop and must lose")
	}
}

func TestRelax_DistNeverIncreases(t *testing.T) {
	// Monotonicity under a randomized relaxation storm.
	s := newState(5, 0)
	snapshots := func() []float64 {
		out := make([]float64, 5)
		copy(out, s.dist)

		return out
	}
	edges := [][3]float64{{0, 1, 2}, {1, 2, 2}, {0, 2, 5}, {2, 3, 1}, {1, 3, 4}, {3, 4, 0}}
	for round := 0; round < 4; round++ {
		for _, e := range edges {
			before := snapshots()
			s.relax(int(e[0]), int(e[1]), e[2])
			for v, d := range s.dist {
				if d > before[v] {
					t.Fatalf("dist[%d] increased from %g to %g", v, before[v], d)
				}
			}
		}
	}
}
