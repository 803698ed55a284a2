// Package proximity - degree analysis over the built graph.
//
// The degree table is derived from the weight matrix on demand; it has no
// life of its own and can never drift out of sync with the edges.
//
// Complexity: O(n²) time, O(n) space.
package proximity

import "math"

// Degrees returns the degree of every vertex in index order
// (the number of incident edges).
func (g *Graph) Degrees() []int {
	n := len(g.locs)
	deg := make([]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && !math.IsInf(g.weight[i][j], 1) {
				deg[i]++
			}
		}
	}

	return deg
}

// MinDegree returns the minimum vertex degree and true, or (0, false) for
// the empty graph where no minimum exists.
func (g *Graph) MinDegree() (int, bool) {
	deg := g.Degrees()
	if len(deg) == 0 {
		return 0, false
	}

	min := deg[0]
	for _, d := range deg[1:] {
		if d < min {
			min = d
		}
	}

	return min, true
}
