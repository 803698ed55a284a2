// Package hamilton - implementation of the backtracking search.
//
// Contract:
//   - g non-nil (else ErrNilGraph); g.Order() ≤ bound (else ErrGraphTooLarge).
//   - Returns (cycle, true, nil) with the lexicographically first valid
//     cycle, or (zero, false, nil) when none exists.
//   - Degenerate orders: n==0 ⇒ no cycle; n==1 ⇒ the trivial loop [0,0]
//     with cost 0; n==2 ⇒ a cycle iff the single edge exists (the closed
//     walk 0→1→0, matching the permutation-check semantics).
//
// Determinism:
//   - Candidates are explored in ascending vertex order at every depth,
//     so the result is a pure function of the graph.
package hamilton

import (
	"fmt"

	"github.com/routelab/hamroute/proximity"
)

// Find searches g exhaustively for a Hamiltonian cycle starting and
// ending at vertex 0.
//
// The found flag distinguishes "no cycle exists" (a legitimate outcome,
// err == nil) from input refusal (err != nil).
func Find(g *proximity.Graph, opts ...Option) (Cycle, bool, error) {
	if g == nil {
		return Cycle{}, false, ErrNilGraph
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Order()
	if n > o.MaxVertices {
		return Cycle{}, false, fmt.Errorf("Find: n=%d > bound=%d: %w", n, o.MaxVertices, ErrGraphTooLarge)
	}

	switch n {
	case 0:
		return Cycle{}, false, nil
	case 1:
		// A single depot trivially loops on itself.
		return Cycle{Order: []int{0, 0}, Cost: 0}, true, nil
	}

	// Explicit visited set + path stack instead of materialized
	// permutations: memory stays O(n) no matter how the search branches.
	visited := make([]bool, n)
	path := make([]int, 1, n)
	path[0] = 0
	visited[0] = true

	order, ok := extend(g, visited, path, n)
	if !ok {
		return Cycle{}, false, nil
	}

	cost, err := g.TourCost(order)
	if err != nil {
		// Unreachable for indices produced by the search itself.
		return Cycle{}, false, err
	}

	return Cycle{Order: order, Cost: cost}, true, nil
}

// extend grows path by one vertex and recurses; it returns the completed
// closed order on success. Branches die as soon as the next hop is a
// non-edge, which is what keeps the factorial space tractable in practice.
func extend(g *proximity.Graph, visited []bool, path []int, n int) ([]int, bool) {
	last := path[len(path)-1]

	if len(path) == n {
		if !g.HasEdge(last, 0) {
			return nil, false // all visited but the loop does not close
		}
		order := make([]int, n+1)
		copy(order, path)
		order[n] = 0

		return order, true
	}

	for v := 1; v < n; v++ { // ascending order ⇒ lexicographic first result
		if visited[v] || !g.HasEdge(last, v) {
			continue
		}
		visited[v] = true
		order, ok := extend(g, visited, append(path, v), n)
		visited[v] = false
		if ok {
			return order, true
		}
	}

	return nil, false
}
