package frontier_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bmssp/frontier"
)

// BenchmarkInsertPull measures the steady-state insert/pull cycle at a block
// size typical for mid-recursion levels.
func BenchmarkInsertPull(b *testing.B) {
	const blockSize = 64
	const live = 4096

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		q, err := frontier.New(blockSize, math.Inf(1))
		if err != nil {
			b.Fatal(err)
		}
		b.StartTimer()

		for v := 0; v < live; v++ {
			q.Insert(v, float64((v*31)%live))
		}
		for q.Len() > 0 {
			q.Pull()
		}
	}
}

// BenchmarkBatchPrepend measures the bulk path with batches at the block size.
func BenchmarkBatchPrepend(b *testing.B) {
	const blockSize = 64

	items := make([]frontier.Item, blockSize)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		q, err := frontier.New(blockSize, math.Inf(1))
		if err != nil {
			b.Fatal(err)
		}
		b.StartTimer()

		// Each wave sits strictly below the previous one, as in the recursion.
		for wave := 0; wave < 64; wave++ {
			base := float64((64 - wave) * blockSize)
			for j := range items {
				items[j] = frontier.Item{Vertex: wave*blockSize + j, Value: base + float64(j)/float64(blockSize)}
			}
			q.BatchPrepend(items)
		}
	}
}
