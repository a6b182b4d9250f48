package sssp

import "github.com/RoaringBitmap/roaring/v2"

// findPivots shrinks the frontier src under the bound b.
//
// It runs k rounds of bounded relaxation outward from src, accumulating the
// working set W, then selects as pivots the members of src rooting
// shortest-path subtrees of at least k working vertices. Every distance
// mutation goes through state.relax, so the forest it derives afterwards is
// uniquely determined by the (dist, hops, pred) order.
//
// Returns the pivot set P ⊆ src, plus W as both an insertion-ordered slice
// and a bitmap (the caller sweeps the slice, the forest pass needs the
// membership test).
//
// Complexity: O(k·|src| + edges touched) in the fast path — the early exit
// fires as soon as |W| exceeds k·|src|, capping the relaxation work this call
// contributes.
func (r *runner) findPivots(b float64, src []int) (pivots, wList []int, wSet *roaring.Bitmap) {
	wSet = roaring.New()
	wList = make([]int, 0, (r.p.k+1)*len(src))
	for _, x := range src {
		wSet.Add(uint32(x))
		wList = append(wList, x)
	}

	// 1) k synchronized relaxation waves. Each wave reads the state left by
	//    the previous one; a vertex improved twice in one wave seeds the next
	//    wave once. A label this very edge already produced (by an enclosing
	//    level) counts as a successful relaxation.
	limit := r.p.k * len(src)
	wave := src
	for i := 0; i < r.p.k && len(wave) > 0; i++ {
		var next []int
		seen := roaring.New()
		for _, u := range wave {
			targets, weights := r.g.OutEdges(u)
			for j, v := range targets {
				improved := r.s.relax(u, v, weights[j])
				if !improved && (r.s.pred[v] != int32(u) || r.s.hops[v] != r.s.hops[u]+1 || r.s.dist[v] != r.s.dist[u]+weights[j]) {
					continue
				}
				if r.s.dist[v] >= b {
					continue
				}
				if !seen.Contains(uint32(v)) {
					seen.Add(uint32(v))
					next = append(next, v)
				}
				if !wSet.Contains(uint32(v)) {
					wSet.Add(uint32(v))
					wList = append(wList, v)
				}
			}
		}

		// 2) Early exit: the frontier refused to shrink, every src member
		//    stays a pivot.
		if len(wList) > limit {
			return src, wList, wSet
		}
		wave = next
	}

	// 3) Build the shortest-path forest on W. The parent of v is the u ∈ W
	//    with dist[v] = dist[u] + w(u,v) minimizing (hops[u]+1, u); exact
	//    float equality is intended — dist[v] was produced by one such sum.
	//    Only out-edges of W members are scanned (the CSR has no reverse
	//    index), and a vertex never parents itself.
	parent := make(map[int]int, len(wList))
	parentHops := make(map[int]int32, len(wList))
	for _, u := range wList {
		du := r.s.dist[u]
		ch := r.s.hops[u] + 1
		targets, weights := r.g.OutEdges(u)
		for j, v := range targets {
			if v == u || !wSet.Contains(uint32(v)) {
				continue
			}
			if r.s.dist[v] != du+weights[j] {
				continue
			}
			if p, ok := parent[v]; !ok || ch < parentHops[v] || (ch == parentHops[v] && u < p) {
				parent[v] = u
				parentHops[v] = ch
			}
		}
	}

	// 4) Subtree sizes, computed iteratively to keep stack depth flat.
	children := make(map[int][]int, len(parent))
	for v, p := range parent {
		children[p] = append(children[p], v)
	}
	size := make(map[int]int, len(wList))
	var stack []int
	for _, root := range wList {
		if _, hasParent := parent[root]; hasParent {
			continue
		}
		// Post-order over the root's subtree: a vertex is sized once all its
		// children are; negative marks an expanded entry awaiting sizing.
		stack = append(stack[:0], root)
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			if v < 0 {
				stack = stack[:len(stack)-1]
				v = -v - 1
				total := 1
				for _, c := range children[v] {
					total += size[c]
				}
				size[v] = total

				continue
			}
			stack[len(stack)-1] = -v - 1
			stack = append(stack, children[v]...)
		}
	}

	// 5) Pivots: src members rooting subtrees of at least k working vertices.
	//    An empty selection keeps the whole frontier, so progress never stalls.
	pivots = make([]int, 0, len(src)/r.p.k+1)
	for _, x := range src {
		if _, hasParent := parent[x]; hasParent {
			continue
		}
		if size[x] >= r.p.k {
			pivots = append(pivots, x)
		}
	}
	if len(pivots) == 0 {
		pivots = src
	}

	return pivots, wList, wSet
}
