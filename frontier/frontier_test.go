package frontier_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/bmssp/frontier"
)

func TestNew_Validation(t *testing.T) {
	_, err := frontier.New(0, 10)
	require.ErrorIs(t, err, frontier.ErrBadBlockSize)

	_, err = frontier.New(-1, 10)
	require.ErrorIs(t, err, frontier.ErrBadBlockSize)

	_, err = frontier.New(4, math.NaN())
	require.ErrorIs(t, err, frontier.ErrBadBound)

	q, err := frontier.New(4, math.Inf(1))
	require.NoError(t, err)
	require.Zero(t, q.Len())
}

// QueueSuite exercises the partial-sorting queue under its three operations.
type QueueSuite struct {
	suite.Suite
}

func (s *QueueSuite) mk(blockSize int, bound float64) *frontier.Queue {
	q, err := frontier.New(blockSize, bound)
	require.NoError(s.T(), err)

	return q
}

// TestInsertBoundRejection verifies that values at or above the bound vanish.
func (s *QueueSuite) TestInsertBoundRejection() {
	q := s.mk(4, 10)
	q.Insert(1, 10)   // == bound: rejected
	q.Insert(2, 11.5) // above bound: rejected
	require.Zero(s.T(), q.Len())

	q.Insert(3, 9.999)
	require.Equal(s.T(), 1, q.Len())
}

// TestInsertPerKeyDedup verifies the one-value-per-vertex invariant.
func (s *QueueSuite) TestInsertPerKeyDedup() {
	q := s.mk(4, 100)
	q.Insert(7, 5)
	q.Insert(7, 8) // worse: ignored
	q.Insert(7, 5) // equal: ignored
	require.Equal(s.T(), 1, q.Len())

	q.Insert(7, 2) // better: replaces
	vs, rest := q.Pull()
	require.Equal(s.T(), []int{7}, vs)
	require.Equal(s.T(), 100.0, rest)
	require.Zero(s.T(), q.Len())
}

// TestPullOrdersAcrossBlocks inserts enough pairs to force block splits and
// verifies that successive Pulls return ascending value groups.
func (s *QueueSuite) TestPullOrdersAcrossBlocks() {
	q := s.mk(3, math.Inf(1))
	// 10 pairs, values 9..0 inserted descending to stress placement.
	for i := 0; i < 10; i++ {
		q.Insert(i, float64(9-i))
	}
	require.Equal(s.T(), 10, q.Len())

	// First pull must return the vertices holding values 0,1,2 → ids 9,8,7.
	vs, rest := q.Pull()
	require.Equal(s.T(), []int{9, 8, 7}, vs)
	require.Equal(s.T(), 3.0, rest)

	vs, rest = q.Pull()
	require.Equal(s.T(), []int{6, 5, 4}, vs)
	require.Equal(s.T(), 6.0, rest)

	vs, rest = q.Pull()
	require.Equal(s.T(), []int{3, 2, 1}, vs)
	require.Equal(s.T(), 9.0, rest)

	// Last pull drains the queue; the reported bound is the construction bound.
	vs, rest = q.Pull()
	require.Equal(s.T(), []int{0}, vs)
	require.True(s.T(), math.IsInf(rest, 1))
	require.Zero(s.T(), q.Len())
}

// TestPullTieBreak verifies deterministic ordering of equal values.
func (s *QueueSuite) TestPullTieBreak() {
	q := s.mk(8, 50)
	q.Insert(5, 1)
	q.Insert(3, 1)
	q.Insert(9, 1)
	vs, _ := q.Pull()
	require.Equal(s.T(), []int{3, 5, 9}, vs)
}

// TestPullEmpty verifies the drained contract.
func (s *QueueSuite) TestPullEmpty() {
	q := s.mk(2, 42)
	vs, rest := q.Pull()
	require.Empty(s.T(), vs)
	require.Equal(s.T(), 42.0, rest)
}

// TestBatchPrependFastPath prepends strictly below the current minimum and
// expects the batch to come out first.
func (s *QueueSuite) TestBatchPrependFastPath() {
	q := s.mk(2, 100)
	q.Insert(1, 40)
	q.Insert(2, 50)

	q.BatchPrepend([]frontier.Item{
		{Vertex: 10, Value: 5},
		{Vertex: 11, Value: 7},
		{Vertex: 12, Value: 6},
	})
	require.Equal(s.T(), 5, q.Len())

	vs, rest := q.Pull()
	require.Equal(s.T(), []int{10, 12}, vs)
	require.Equal(s.T(), 7.0, rest)

	vs, _ = q.Pull()
	require.Equal(s.T(), []int{11, 1}, vs)
}

// TestBatchPrependDegraded violates the prepend precondition and expects
// plain Insert semantics to hold anyway.
func (s *QueueSuite) TestBatchPrependDegraded() {
	q := s.mk(4, 100)
	q.Insert(1, 10)
	q.Insert(2, 20)

	// 30 ≥ current minimum 10, so the batch degrades to Inserts.
	q.BatchPrepend([]frontier.Item{
		{Vertex: 3, Value: 30},
		{Vertex: 2, Value: 15}, // improves 2's stored 20
		{Vertex: 1, Value: 50}, // worse than stored 10: ignored
	})
	require.Equal(s.T(), 3, q.Len())

	vs, rest := q.Pull()
	require.Equal(s.T(), []int{1, 2, 3}, vs)
	require.Equal(s.T(), 100.0, rest)
}

// TestBatchPrependDedup feeds duplicate vertices and expects the smallest
// value per vertex to win.
func (s *QueueSuite) TestBatchPrependDedup() {
	q := s.mk(4, 100)
	q.Insert(9, 90)
	q.BatchPrepend([]frontier.Item{
		{Vertex: 4, Value: 8},
		{Vertex: 4, Value: 3},
		{Vertex: 4, Value: 5},
	})
	require.Equal(s.T(), 2, q.Len())

	vs, rest := q.Pull()
	require.Equal(s.T(), []int{4, 9}, vs)
	require.Equal(s.T(), 100.0, rest)
}

// TestReinsertAfterPull confirms pulled vertices may re-enter with new values.
func (s *QueueSuite) TestReinsertAfterPull() {
	q := s.mk(2, 100)
	q.Insert(1, 10)
	vs, _ := q.Pull()
	require.Equal(s.T(), []int{1}, vs)

	q.Insert(1, 60)
	require.Equal(s.T(), 1, q.Len())
	vs, rest := q.Pull()
	require.Equal(s.T(), []int{1}, vs)
	require.Equal(s.T(), 100.0, rest)
}

// TestInterleaved runs a longer mixed workload and checks global ordering of
// everything ever pulled.
func (s *QueueSuite) TestInterleaved() {
	q := s.mk(4, math.Inf(1))
	for i := 0; i < 32; i++ {
		q.Insert(i, float64((i*7)%32)+100)
	}

	// Prepend a wave below everything inserted so far.
	batch := make([]frontier.Item, 0, 8)
	for i := 32; i < 40; i++ {
		batch = append(batch, frontier.Item{Vertex: i, Value: float64(i - 32)})
	}
	q.BatchPrepend(batch)

	prev := math.Inf(-1)
	seen := make(map[int]bool)
	for q.Len() > 0 {
		vs, rest := q.Pull()
		require.NotEmpty(s.T(), vs)
		require.LessOrEqual(s.T(), prev, rest)
		prev = rest
		for _, v := range vs {
			require.False(s.T(), seen[v], "vertex %d pulled twice", v)
			seen[v] = true
		}
	}
	require.Len(s.T(), seen, 40)
}

func TestQueueSuite(t *testing.T) {
	suite.Run(t, new(QueueSuite))
}
