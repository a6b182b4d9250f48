package sssp

import "math"

// params carries the three derived quantities governing the recursion.
//
// k bounds both the relaxation depth of FindPivots and the number of vertices
// the level-0 mini-Dijkstra settles; t controls how much wider each level is
// than the one below; maxLevel is the recursion depth the driver starts at.
type params struct {
	k        int
	t        int
	maxLevel int
}

// deriveParams computes (k, t, maxLevel) from the vertex count, honoring any
// option overrides:
//
//	logn     = max(1, log₂ n)
//	k        = max(2, ⌊logn^(1/3)⌋)
//	t        = max(1, ⌊logn^(2/3)⌋)
//	maxLevel = ⌈logn / t⌉
func deriveParams(n int, o Options) params {
	logn := math.Log2(float64(n))
	if logn < 1 {
		logn = 1
	}

	k := o.PivotThreshold
	if k == 0 {
		k = int(math.Floor(math.Pow(logn, 1.0/3.0)))
		if k < 2 {
			k = 2
		}
	}

	t := o.LevelExponent
	if t == 0 {
		t = int(math.Floor(math.Pow(logn, 2.0/3.0)))
		if t < 1 {
			t = 1
		}
	}

	maxLevel := int(math.Ceil(logn / float64(t)))
	if maxLevel < 1 {
		maxLevel = 1
	}

	return params{k: k, t: t, maxLevel: maxLevel}
}

// pow2 returns 2^e as an int, saturating at 2^30. The exponents that reach it
// are (level−1)·t for block sizes and level·t for workload caps; saturation
// keeps overridden parameters on tiny graphs from overflowing while staying
// far above any realistic frontier size.
func pow2(e int) int {
	if e <= 0 {
		return 1
	}
	if e > 30 {
		return 1 << 30
	}

	return 1 << e
}
