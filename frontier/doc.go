// Package frontier implements the bounded partial-sorting queue that drives
// the bounded multi-source shortest-path recursion.
//
// The Queue stores (vertex, value) pairs under a fixed exclusive upper bound B
// and a block size M. It is "partially sorting": values are kept only as
// ordered as the three operations require, which is what makes the amortized
// costs cheap.
//
// Operations:
//
//   - Insert(v, x)       — adopt x as v's value if x < B and x beats v's
//     stored value; otherwise a no-op.
//   - BatchPrepend(items) — bulk insert of items the caller produced below the
//     current minimum; lands as ≤M-sized blocks at the
//     front. If the precondition does not hold, the batch
//     degrades to per-item Insert and stays correct.
//   - Pull()             — remove and return up to M vertices holding the
//     smallest values — extended across ties with the
//     largest extracted value — plus the smallest
//     remaining value (or B when the queue drained).
//     The extension keeps the returned bound a strict
//     separator, so a batch is always settleable under it.
//
// Realization:
//
//	An ordered list of blocks, each holding at most M unsorted pairs, with a
//	cross-block invariant: every value in a block is at most the block's upper
//	bound, and block bounds ascend. Insert binary-searches the first covering
//	block and splits it at the median when it overflows; Pull takes whole
//	prefix blocks and sorts only the boundary block; BatchPrepend sorts the
//	batch once and prepends it as fresh blocks. A vertex→block index keeps the
//	one-value-per-key invariant cheap to enforce.
//
// Complexity (amortized, against the bound's comparison-addition accounting):
//
//   - Insert: O(log(#blocks)) search + O(M) occasional split, O(1) per element
//     amortized across a level.
//   - BatchPrepend: O(ℓ·log ℓ) for a batch of ℓ ≤ M elements, O(1) per element
//     modulo the sort's log factor.
//   - Pull: O(M) plus the boundary sort.
//
// The structure is not safe for concurrent use; the recursion that owns it is
// strictly single-threaded.
package frontier
