// Package frontier_test provides a runnable example of the queue discipline.
package frontier_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bmssp/frontier"
)

// ExampleQueue walks through one insert/prepend/pull cycle.
func ExampleQueue() {
	// 1) A queue with blocks of two and no upper bound.
	q, err := frontier.New(2, math.Inf(1))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	// 2) Three vertices with their current distance estimates.
	q.Insert(7, 4.0)
	q.Insert(3, 6.0)
	q.Insert(9, 5.0)

	// 3) A discovery wave strictly below the current minimum lands in front.
	q.BatchPrepend([]frontier.Item{{Vertex: 1, Value: 2.0}})

	// 4) Pull returns the smallest batch and the next separating value.
	vertices, next := q.Pull()
	fmt.Println(vertices, next)

	vertices, next = q.Pull()
	fmt.Println(vertices, math.IsInf(next, 1))
	// Output:
	// [1 7] 5
	// [9 3] true
}
