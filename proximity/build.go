// Package proximity - implementation of the threshold-graph builder.
//
// Contract:
//   - threshold ≥ 0 and finite-or-+Inf (NaN and negatives are rejected);
//     +Inf is legal and yields the complete graph.
//   - Location IDs must be non-empty and unique; coordinates finite.
//   - Validation happens before any allocation of the weight matrix, so
//     a failed Build has no partial effects.
//
// Determinism:
//   - Pairs are examined in a stable order (i asc, j > i asc), so two
//     Builds over equal inputs produce identical matrices.
//
// Complexity: O(n²) time, O(n²) space.
package proximity

import (
	"fmt"
	"math"

	"github.com/routelab/hamroute/spatial"
)

// Build constructs the proximity graph over locs: every unordered pair
// within threshold distance becomes an undirected edge weighted by its
// exact Euclidean distance.
//
// threshold == 0 yields an edgeless graph (coincident locations excepted,
// since d ≤ 0 still holds for them); threshold at or above the maximum
// pairwise distance yields the complete graph.
func Build(locs []spatial.Location, threshold float64) (*Graph, error) {
	// Stage 1: parameter validation, cheapest first.
	if math.IsNaN(threshold) || threshold < 0 {
		return nil, fmt.Errorf("Build: threshold=%v: %w", threshold, ErrNegativeThreshold)
	}
	if err := validateLocations(locs); err != nil {
		return nil, err
	}

	// Stage 2: snapshot the vertex list so later caller mutations of locs
	// cannot leak into the graph.
	n := len(locs)
	snap := make([]spatial.Location, n)
	copy(snap, locs)

	// Stage 3: fill the symmetric weight matrix in stable pair order.
	w := make([][]float64, n)
	for i := range w {
		w[i] = make([]float64, n)
		for j := range w[i] {
			if i != j {
				w[i][j] = math.Inf(1) // no edge until proven close enough
			}
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := spatial.Distance(snap[i].Pos, snap[j].Pos)
			if d <= threshold {
				w[i][j] = d
				w[j][i] = d
			}
		}
	}

	return &Graph{locs: snap, weight: w, threshold: threshold}, nil
}

// validateLocations rejects empty or duplicate IDs and non-finite
// coordinates before any graph state exists.
//
// Complexity: O(n) time, O(n) extra space for the uniqueness set.
func validateLocations(locs []spatial.Location) error {
	seen := make(map[string]struct{}, len(locs))
	for i, l := range locs {
		if l.ID == "" {
			return fmt.Errorf("Build: location %d: %w", i, ErrEmptyID)
		}
		if _, dup := seen[l.ID]; dup {
			return fmt.Errorf("Build: location %d (%q): %w", i, l.ID, ErrDuplicateID)
		}
		seen[l.ID] = struct{}{}

		if !isFinite(l.Pos.X) || !isFinite(l.Pos.Y) {
			return fmt.Errorf("Build: location %d (%q): %w", i, l.ID, ErrBadCoordinate)
		}
	}

	return nil
}

// isFinite reports whether f is neither NaN nor ±Inf.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// HasEdge reports whether the unordered pair {u,v} is connected.
// Out-of-range indices and self-loops report false.
//
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || v < 0 || u >= len(g.locs) || v >= len(g.locs) || u == v {
		return false
	}

	return !math.IsInf(g.weight[u][v], 1)
}

// EdgeWeight returns the weight of edge {u,v} and whether it exists.
//
// Complexity: O(1).
func (g *Graph) EdgeWeight(u, v int) (float64, bool) {
	if !g.HasEdge(u, v) {
		return 0, false
	}

	return g.weight[u][v], true
}

// Edges returns all connected pairs in lexicographic (U, then V) order.
//
// Complexity: O(n²).
func (g *Graph) Edges() []Pair {
	return g.collectPairs(true)
}

// NonEdges returns all excluded pairs (distance beyond the threshold) in
// lexicographic order. This is the derived view a renderer uses to draw
// "too far to connect" links; it is recomputed, not stored.
//
// Complexity: O(n²).
func (g *Graph) NonEdges() []Pair {
	return g.collectPairs(false)
}

// collectPairs walks the upper triangle once, keeping connected or
// disconnected pairs as requested.
func (g *Graph) collectPairs(connected bool) []Pair {
	n := len(g.locs)
	out := make([]Pair, 0, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.IsInf(g.weight[i][j], 1) != connected {
				out = append(out, Pair{U: i, V: j})
			}
		}
	}

	return out
}
