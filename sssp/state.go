package sssp

import "math"

// noPred marks a vertex that has no recorded path yet.
const noPred = int32(-1)

// maxHops is the initial edge count of an unreached vertex.
const maxHops = int32(math.MaxInt32)

// state is the mutable per-computation distance table shared by every
// recursion level: for each vertex the best-known distance upper bound, the
// predecessor on the recorded path, and the recorded path's edge count.
//
// state is an owned, exclusive resource. Exactly one exists per computation,
// every mutation goes through relax, and dist never increases.
type state struct {
	dist []float64
	pred []int32
	hops []int32
}

// newState allocates the table for n vertices and seeds the source.
func newState(n, source int) *state {
	s := &state{
		dist: make([]float64, n),
		pred: make([]int32, n),
		hops: make([]int32, n),
	}
	for v := 0; v < n; v++ {
		s.dist[v] = math.Inf(1)
		s.pred[v] = noPred
		s.hops[v] = maxHops
	}
	s.dist[source] = 0
	s.pred[source] = int32(source)
	s.hops[source] = 0

	return s
}

// relax offers the path source→…→u→v to v and reports whether it was adopted.
//
// The candidate label (dist[u]+w, hops[u]+1, u) is compared to v's stored
// label (dist[v], hops[v], pred[v]) under the lexicographic order; the
// candidate wins only on a strict improvement. The order is total over
// candidate paths, which keeps the shortest-path forest unique and the whole
// computation deterministic.
func (s *state) relax(u, v int, w float64) bool {
	nd := s.dist[u] + w
	nh := s.hops[u] + 1

	if nd > s.dist[v] {
		return false
	}
	if nd == s.dist[v] {
		if nh > s.hops[v] {
			return false
		}
		if nh == s.hops[v] && int32(u) >= s.pred[v] {
			return false
		}
	}

	s.dist[v] = nd
	s.hops[v] = nh
	s.pred[v] = int32(u)

	return true
}
