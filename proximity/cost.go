// Package proximity - route distance calculator.
//
// One shared, side-effect-free cost function serves both the exhaustive
// cycle search and the greedy router: the closed-tour Euclidean length of
// an ordered vertex sequence. Edge-constrained callers (the cycle search)
// get the same numbers, because edge weights *are* Euclidean distances.
//
// Complexity: O(len(order)) time, O(len(order)) scratch space.
package proximity

import (
	"fmt"

	"github.com/routelab/hamroute/spatial"
)

// TourCost returns the total length of the closed tour visiting the given
// vertices in order and returning to the first one.
//
// The sequence is treated as closed; a sequence that already repeats its
// start at the end sums to the same value. Indices outside [0, Order())
// yield ErrVertexOutOfRange. Empty and single-vertex sequences cost 0.
func (g *Graph) TourCost(order []int) (float64, error) {
	pts := make([]spatial.Point, len(order))
	for i, v := range order {
		if v < 0 || v >= len(g.locs) {
			return 0, fmt.Errorf("TourCost: order[%d]=%d, n=%d: %w", i, v, len(g.locs), ErrVertexOutOfRange)
		}
		pts[i] = g.locs[v].Pos
	}

	return spatial.TourLength(pts), nil
}
