package frontier

import (
	"math"
	"sort"
)

// Queue is a bounded partial-sorting container of (vertex, value) pairs.
//
// All stored values are strictly less than the bound supplied to New, and each
// vertex appears at most once. See the package documentation for the contract
// of the three operations and the block invariants.
type Queue struct {
	blockSize int
	bound     float64

	// blocks are ordered by ascending ub; every item in blocks[i] has
	// Value ≤ blocks[i].ub, and any item placed in a later block by Insert
	// exceeds every earlier ub. The tail block always has ub == bound, so a
	// covering block exists for every admissible value.
	blocks []*block

	// vals maps a stored vertex to its current value.
	vals map[int]float64

	// at maps a stored vertex to the block holding it.
	at map[int]*block
}

// New constructs an empty Queue with the given block size and exclusive upper
// bound. blockSize must be positive; bound must not be NaN (+Inf is allowed
// and is the usual top-level bound).
func New(blockSize int, bound float64) (*Queue, error) {
	if blockSize <= 0 {
		return nil, ErrBadBlockSize
	}
	if math.IsNaN(bound) {
		return nil, ErrBadBound
	}

	return &Queue{
		blockSize: blockSize,
		bound:     bound,
		blocks:    []*block{{ub: bound}},
		vals:      make(map[int]float64),
		at:        make(map[int]*block),
	}, nil
}

// Len returns the number of stored vertices.
func (q *Queue) Len() int { return len(q.vals) }

// Bound returns the exclusive upper bound the queue was constructed with.
func (q *Queue) Bound() float64 { return q.bound }

// Insert adopts x as the value of v.
//
// The call is a no-op when x ≥ bound, or when v already stores a value ≤ x.
// Otherwise any previous pair for v is removed and (v, x) is placed into the
// first block whose upper bound covers x, splitting that block at its median
// if it overflows the block size.
func (q *Queue) Insert(v int, x float64) {
	if x >= q.bound {
		return
	}
	if old, ok := q.vals[v]; ok {
		if old <= x {
			return
		}
		q.remove(v)
	}
	q.place(v, x)
}

// BatchPrepend inserts items whose values the caller produced strictly below
// the queue's current minimum. The batch is deduplicated per vertex, filtered
// by the Insert no-op rules, sorted once, and prepended as blocks of at most
// blockSize items. If the prepend precondition turns out to be violated, the
// batch silently degrades to per-item Insert and remains correct.
func (q *Queue) BatchPrepend(items []Item) {
	if len(items) == 0 {
		return
	}

	// 1) Deduplicate by vertex, keeping the smallest value, and apply the
	//    same admission rules as Insert (bound cut, existing-value cut).
	best := make(map[int]float64, len(items))
	for _, it := range items {
		if it.Value >= q.bound {
			continue
		}
		if old, ok := q.vals[it.Vertex]; ok && old <= it.Value {
			continue
		}
		if cur, ok := best[it.Vertex]; !ok || it.Value < cur {
			best[it.Vertex] = it.Value
		}
	}
	if len(best) == 0 {
		return
	}

	batch := make([]Item, 0, len(best))
	for v, x := range best {
		batch = append(batch, Item{Vertex: v, Value: x})
	}
	sort.Slice(batch, func(i, j int) bool {
		if batch[i].Value != batch[j].Value {
			return batch[i].Value < batch[j].Value
		}

		return batch[i].Vertex < batch[j].Vertex
	})

	// 2) Verify the prepend precondition against the current minimum.
	//    On violation, fall back to ordinary Inserts.
	if min, ok := q.min(); ok && batch[len(batch)-1].Value >= min {
		for _, it := range batch {
			q.Insert(it.Vertex, it.Value)
		}

		return
	}

	// 3) Evict any stale pairs for the batched vertices. Their old values sit
	//    at or above the current minimum, hence above every batched value.
	for _, it := range batch {
		if _, ok := q.vals[it.Vertex]; ok {
			q.remove(it.Vertex)
		}
	}

	// 4) Prepend the batch as fresh blocks of at most blockSize items, keeping
	//    ascending order so the cross-block invariant survives.
	nb := (len(batch) + q.blockSize - 1) / q.blockSize
	fresh := make([]*block, 0, nb+len(q.blocks))
	for off := 0; off < len(batch); off += q.blockSize {
		end := off + q.blockSize
		if end > len(batch) {
			end = len(batch)
		}
		chunk := append([]Item(nil), batch[off:end]...)
		b := &block{ub: chunk[len(chunk)-1].Value, items: chunk}
		fresh = append(fresh, b)
		for _, it := range chunk {
			q.vals[it.Vertex] = it.Value
			q.at[it.Vertex] = b
		}
	}
	q.blocks = append(fresh, q.blocks...)
}

// Pull removes and returns the vertices holding the smallest stored values,
// together with the smallest value still stored afterwards (or the bound when
// the queue is empty). The batch holds up to blockSize vertices, extended by
// any further vertices tied with the largest extracted value: the extension
// guarantees that every returned value is strictly below the returned bound,
// which the recursion needs to settle the whole batch under that bound. The
// returned vertices are ordered by ascending (value, vertex).
func (q *Queue) Pull() ([]int, float64) {
	out := make([]int, 0, q.blockSize)
	last := math.Inf(-1)

	// 1) Drain whole blocks from the front while they fit, sorting each so the
	//    returned order is deterministic. The cross-block invariant guarantees
	//    front blocks hold the global minima.
	for len(out) < q.blockSize && len(q.blocks) > 0 {
		b := q.blocks[0]
		if len(b.items) == 0 {
			if len(q.blocks) == 1 {
				break // keep the tail catch-all block
			}
			q.blocks = q.blocks[1:]

			continue
		}

		sortItems(b.items)
		room := q.blockSize - len(out)
		if len(b.items) <= room {
			for _, it := range b.items {
				out = append(out, it.Vertex)
				last = it.Value
				delete(q.vals, it.Vertex)
				delete(q.at, it.Vertex)
			}
			b.items = nil

			continue
		}

		// 2) Boundary block: take only the smallest `room` items, leave the rest.
		for _, it := range b.items[:room] {
			out = append(out, it.Vertex)
			last = it.Value
			delete(q.vals, it.Vertex)
			delete(q.at, it.Vertex)
		}
		b.items = append([]Item(nil), b.items[room:]...)
	}

	// 3) Extend the batch across ties with the largest extracted value, so the
	//    reported bound strictly exceeds every extracted value. Everything
	//    still stored is ≥ last; a block left holding only larger values ends
	//    the scan by the cross-block invariant.
	if len(out) > 0 && len(q.vals) > 0 {
		var ties []int
		for _, b := range q.blocks {
			if len(b.items) == 0 {
				continue
			}
			keep := b.items[:0]
			larger := false
			for _, it := range b.items {
				if it.Value == last {
					ties = append(ties, it.Vertex)
					delete(q.vals, it.Vertex)
					delete(q.at, it.Vertex)

					continue
				}
				keep = append(keep, it)
				larger = true
			}
			b.items = keep
			if larger {
				break
			}
		}
		sort.Ints(ties)
		out = append(out, ties...)
	}

	// 4) Report the smallest remaining value, or the bound when drained.
	rest, ok := q.min()
	if !ok {
		rest = q.bound
	}

	return out, rest
}

// min scans from the front for the first non-empty block and returns the
// smallest value stored there, which the block invariant makes global.
func (q *Queue) min() (float64, bool) {
	for _, b := range q.blocks {
		if len(b.items) == 0 {
			continue
		}
		m := b.items[0].Value
		for _, it := range b.items[1:] {
			if it.Value < m {
				m = it.Value
			}
		}

		return m, true
	}

	return 0, false
}

// remove deletes v's pair from its block and both indexes.
// The caller must know v is stored.
func (q *Queue) remove(v int) {
	b := q.at[v]
	for i, it := range b.items {
		if it.Vertex == v {
			b.items[i] = b.items[len(b.items)-1]
			b.items = b.items[:len(b.items)-1]

			break
		}
	}
	delete(q.vals, v)
	delete(q.at, v)
}

// place stores (v, x) into the first block covering x, splitting on overflow.
// The caller must have removed any previous pair for v.
func (q *Queue) place(v int, x float64) {
	idx := sort.Search(len(q.blocks), func(i int) bool { return q.blocks[i].ub >= x })
	b := q.blocks[idx] // the tail block has ub == bound, so idx is always valid
	b.items = append(b.items, Item{Vertex: v, Value: x})
	q.vals[v] = x
	q.at[v] = b

	if len(b.items) > q.blockSize {
		q.split(idx)
	}
}

// split divides an overflowing block at its median value, so each half holds
// about half a block and Insert keeps amortizing.
func (q *Queue) split(idx int) {
	b := q.blocks[idx]
	sortItems(b.items)
	half := len(b.items) / 2

	lo := &block{ub: b.items[half-1].Value, items: append([]Item(nil), b.items[:half]...)}
	b.items = append([]Item(nil), b.items[half:]...)

	q.blocks = append(q.blocks, nil)
	copy(q.blocks[idx+1:], q.blocks[idx:])
	q.blocks[idx] = lo

	for _, it := range lo.items {
		q.at[it.Vertex] = lo
	}
}

// sortItems orders items by ascending (value, vertex).
func sortItems(items []Item) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Value != items[j].Value {
			return items[i].Value < items[j].Value
		}

		return items[i].Vertex < items[j].Vertex
	})
}
