// Package nearest - types, sentinels, and the greedy router itself.
//
// Contract:
//   - g non-nil (else ErrNilGraph) and non-empty (else ErrEmptyGraph).
//   - Unconstrained mode never fails for n ≥ 1.
//   - Constrained mode fails with ErrRouteBlocked when no unvisited
//     neighbour is adjacent to the current vertex, or the closing edge
//     is missing.
package nearest

import (
	"errors"
	"fmt"

	"github.com/routelab/hamroute/proximity"
	"github.com/routelab/hamroute/spatial"
)

// Sentinel errors for the router.
var (
	// ErrNilGraph indicates a nil graph was passed to Route.
	ErrNilGraph = errors.New("nearest: graph is nil")

	// ErrEmptyGraph indicates a graph with no vertices to route over.
	ErrEmptyGraph = errors.New("nearest: graph has no vertices")

	// ErrRouteBlocked indicates the edge-constrained walk dead-ended
	// before visiting every vertex (or could not close the tour).
	ErrRouteBlocked = errors.New("nearest: constrained route blocked by missing edge")
)

// Tour is a complete closed route over all vertices.
//
// Order has the same closed shape as hamilton.Cycle: n+1 indices starting
// and ending at 0. Unlike a Cycle it need not follow graph edges unless
// GraphConstrained reports that it does.
type Tour struct {
	// Order is the closed visiting sequence.
	Order []int

	// Cost is the total Euclidean length of the tour, stabilized to 1e-9.
	Cost float64

	// GraphConstrained records which movement policy built the tour:
	// false means distances ignored edge existence.
	GraphConstrained bool
}

// Options configures Route.
type Options struct {
	GraphConstrained bool
}

// Option is a functional option for Route.
type Option func(*Options)

// WithGraphConstrained restricts movement to actual graph edges.
func WithGraphConstrained() Option {
	return func(o *Options) {
		o.GraphConstrained = true
	}
}

// Route builds the greedy nearest-neighbour tour from vertex 0.
//
// Ties between equidistant unvisited vertices resolve to the smallest
// index, so the route is reproducible across runs and platforms.
func Route(g *proximity.Graph, opts ...Option) (Tour, error) {
	if g == nil {
		return Tour{}, ErrNilGraph
	}

	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Order()
	if n == 0 {
		return Tour{}, ErrEmptyGraph
	}

	visited := make([]bool, n)
	order := make([]int, 0, n+1)
	order = append(order, 0)
	visited[0] = true
	current := 0

	for len(order) < n {
		next := pickNearest(g, current, visited, o.GraphConstrained)
		if next < 0 {
			return Tour{}, fmt.Errorf("Route: stuck at vertex %d after %d stops: %w",
				current, len(order), ErrRouteBlocked)
		}
		visited[next] = true
		order = append(order, next)
		current = next
	}

	// Close the loop. The constrained policy must also respect the
	// closing hop; the heuristic policy closes unconditionally.
	if o.GraphConstrained && n > 1 && !g.HasEdge(current, 0) {
		return Tour{}, fmt.Errorf("Route: no closing edge %d→0: %w", current, ErrRouteBlocked)
	}
	order = append(order, 0)

	cost, err := g.TourCost(order)
	if err != nil {
		// Unreachable for indices produced by the walk itself.
		return Tour{}, err
	}

	return Tour{Order: order, Cost: cost, GraphConstrained: o.GraphConstrained}, nil
}

// pickNearest returns the closest unvisited vertex to current, or -1 when
// none qualifies. Strict less-than keeps the smallest index on ties.
func pickNearest(g *proximity.Graph, current int, visited []bool, constrained bool) int {
	best := -1
	var bestDist float64

	for v := 0; v < len(visited); v++ {
		if visited[v] {
			continue
		}
		if constrained && !g.HasEdge(current, v) {
			continue
		}
		d := spatial.Distance(g.Location(current).Pos, g.Location(v).Pos)
		if best < 0 || d < bestDist {
			best = v
			bestDist = d
		}
	}

	return best
}
