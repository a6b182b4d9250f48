package sssp

import (
	"container/heap"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/bmssp/core"
	"github.com/katalvlaran/bmssp/frontier"
)

// runner holds the per-computation resources threaded through the recursion:
// the immutable graph, the exclusive distance state, and the derived
// parameters. All methods are single-threaded.
type runner struct {
	g *core.Graph
	s *state
	p params
}

// bmssp executes one bounded multi-source call: given a recursion level, an
// exclusive upper bound and a non-empty source set whose members all have
// dist < bound, it returns a (possibly tightened) bound B' ≤ bound and the
// set of vertices this call completed — every returned vertex holds its true
// shortest-path distance, strictly below B'.
//
// The returned set never exceeds k·2^(level·t) vertices; the caller is
// responsible for relaxing their out-edges.
func (r *runner) bmssp(level int, bound float64, src []int) (float64, *roaring.Bitmap) {
	if level == 0 {
		return r.baseCase(bound, src)
	}

	// 1) Shrink the frontier to pivots; W remembers everything the shrink
	//    touched so step 7 can sweep the stragglers back in.
	pivots, wList, _ := r.findPivots(bound, src)

	// 2) Seed the partial-sorting queue with the pivots.
	d, err := frontier.New(pow2((level-1)*r.p.t), bound)
	if err != nil {
		panic(err) // unreachable: block size ≥ 1 and bound is never NaN
	}
	bestBound := bound
	for _, x := range pivots {
		if dx := r.s.dist[x]; dx < bound {
			d.Insert(x, dx)
			if dx < bestBound {
				bestBound = dx
			}
		}
	}

	// 3) Main loop: pull a batch, complete it one level down, relax outward
	//    from the completed set, and feed discoveries back into the queue.
	u := roaring.New()
	capU := uint64(r.p.k * pow2(level*r.p.t))
	var batch []frontier.Item
	for u.GetCardinality() < capU && d.Len() > 0 {
		pulled, pullBound := d.Pull()
		if len(pulled) == 0 {
			break
		}

		subBound, subU := r.bmssp(level-1, pullBound, pulled)
		u.Or(subU)
		bestBound = subBound

		// 4) Relax out-edges of the freshly completed vertices and categorize
		//    each touched target by its new distance. The trigger is
		//    non-strict on dist: a target whose label was produced inside the
		//    subcall via this very edge must still be (re)scheduled, or it
		//    would fall out of the queue discipline.
		batch = batch[:0]
		iter := subU.Iterator()
		for iter.HasNext() {
			from := int(iter.Next())
			targets, weights := r.g.OutEdges(from)
			df := r.s.dist[from]
			for j, v := range targets {
				improved := r.s.relax(from, v, weights[j])
				if !improved && df+weights[j] != r.s.dist[v] {
					continue
				}
				if u.Contains(uint32(v)) {
					continue // completed in this call, nothing left to schedule
				}
				dv := r.s.dist[v]
				switch {
				case dv >= pullBound && dv < bound:
					d.Insert(v, dv)
				case dv >= subBound && dv < pullBound:
					batch = append(batch, frontier.Item{Vertex: v, Value: dv})
				}
				// dv < subBound: completed at a deeper level already.
			}
		}

		// 5) Source-set members the subcall could not finish under its
		//    tightened bound go back to the front of the queue.
		for _, x := range pulled {
			if u.Contains(uint32(x)) {
				continue
			}
			if dx := r.s.dist[x]; dx >= subBound && dx < pullBound {
				batch = append(batch, frontier.Item{Vertex: x, Value: dx})
			}
		}
		d.BatchPrepend(batch)
	}

	// 6) The final bound: the queue draining means everything below the
	//    original bound is done; stopping on the workload cap keeps the last
	//    subcall's bound.
	finalBound := bound
	if d.Len() > 0 {
		finalBound = bestBound
	}

	// 7) Sweep the working set: members already holding their final distance
	//    below the final bound are complete even if no subcall claimed them.
	for _, x := range wList {
		if r.s.dist[x] < finalBound {
			u.Add(uint32(x))
		}
	}

	return finalBound, u
}

// baseCase runs the level-0 bounded mini-Dijkstra: settle at most k+1
// vertices from the (usually singleton) source set, never crossing the bound.
//
// Settling uses the full (dist, hops, vertex) key and the lazy-decrease-key
// discipline — stale heap entries are recognized by comparing their snapshot
// against the live state and skipped.
func (r *runner) baseCase(bound float64, src []int) (float64, *roaring.Bitmap) {
	settled := roaring.New()
	order := make([]int, 0, r.p.k+1)

	h := make(baseHeap, 0, len(src)+r.p.k)
	heap.Init(&h)
	for _, x := range src {
		heap.Push(&h, baseItem{v: x, d: r.s.dist[x], h: r.s.hops[x]})
	}

	for h.Len() > 0 {
		it := heap.Pop(&h).(baseItem)
		if it.d >= bound {
			break // everything left is out of this call's scope
		}
		if settled.Contains(uint32(it.v)) {
			continue
		}
		if it.d != r.s.dist[it.v] || it.h != r.s.hops[it.v] {
			continue // stale entry, a better label exists
		}

		settled.Add(uint32(it.v))
		order = append(order, it.v)
		if len(order) == r.p.k+1 {
			break
		}

		targets, weights := r.g.OutEdges(it.v)
		for j, v := range targets {
			// A label this very edge already produced (e.g. during FindPivots)
			// is scheduled as if the relaxation had just succeeded.
			improved := r.s.relax(it.v, v, weights[j])
			if !improved && (r.s.pred[v] != int32(it.v) || r.s.hops[v] != it.h+1 || r.s.dist[v] != it.d+weights[j]) {
				continue
			}
			if r.s.dist[v] < bound {
				heap.Push(&h, baseItem{v: v, d: r.s.dist[v], h: r.s.hops[v]})
			}
		}
	}

	// At most k settled: the whole batch is complete under the given bound.
	if len(order) <= r.p.k {
		return bound, settled
	}

	// Otherwise tighten to the largest settled distance and return the settled
	// prefix short of the last vertex — exactly the set strictly below the new
	// bound when distances are distinct, and still k vertices of progress when
	// the settle order had to break distance ties. The excluded vertex keeps
	// its exact label for a later call to claim.
	dmax := r.s.dist[order[len(order)-1]]
	u := roaring.New()
	for _, v := range order[:len(order)-1] {
		u.Add(uint32(v))
	}

	return dmax, u
}

// baseItem snapshots a vertex's label at push time; the snapshot doubles as
// the staleness check on pop.
type baseItem struct {
	v int
	d float64
	h int32
}

// baseHeap is a min-heap of baseItem ordered by the lexicographic
// (dist, hops, vertex) key, matching the relaxation order exactly.
type baseHeap []baseItem

func (q baseHeap) Len() int { return len(q) }

func (q baseHeap) Less(i, j int) bool {
	if q[i].d != q[j].d {
		return q[i].d < q[j].d
	}
	if q[i].h != q[j].h {
		return q[i].h < q[j].h
	}

	return q[i].v < q[j].v
}

func (q baseHeap) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *baseHeap) Push(x interface{}) { *q = append(*q, x.(baseItem)) }

func (q *baseHeap) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]

	return it
}
