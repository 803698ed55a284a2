// Package planner - pipeline orchestration.
//
// Contract:
//   - 0 ≤ p.N ≤ hamilton.MaxVertices (else ErrSizeExceeded); finer input
//     validation (threshold sign, coordinate sanity) is owned by the leaf
//     packages and surfaces through their sentinels.
//   - Run is synchronous and single-threaded: every stage completes
//     before the next starts, and the Result is fully formed on return.
//
// Complexity: dominated by hamilton.Find, O((n−1)!) worst case under the
// enforced cap; everything else is O(n²).
package planner

import (
	"errors"
	"fmt"

	"github.com/routelab/hamroute/dirac"
	"github.com/routelab/hamroute/hamilton"
	"github.com/routelab/hamroute/nearest"
	"github.com/routelab/hamroute/proximity"
	"github.com/routelab/hamroute/spatial"
)

// ErrSizeExceeded indicates a requested network larger than the
// exhaustive-search bound the whole pipeline is sized for.
var ErrSizeExceeded = errors.New("planner: location count exceeds supported bound")

// Params identifies one analysis run. It is comparable and doubles as a
// cache key: equal Params (with equal options) imply equal Results.
type Params struct {
	// N is the number of delivery locations.
	N int

	// Threshold is the road-reach distance for the proximity graph.
	Threshold float64

	// Seed drives the reproducible city layout.
	Seed int64
}

// Options configures Run.
type Options struct {
	// Bounds is the coordinate sampling square.
	Bounds spatial.Bounds

	// ConstrainedRoute switches the fallback router to edge-constrained
	// movement (see nearest.WithGraphConstrained).
	ConstrainedRoute bool
}

// Option is a functional option for Run.
type Option func(*Options)

// WithBounds sets the coordinate sampling square.
// Panics on min >= max, matching spatial.WithBounds.
func WithBounds(min, max float64) Option {
	if min >= max {
		panic(spatial.ErrBadBounds.Error())
	}

	return func(o *Options) {
		o.Bounds = spatial.Bounds{Min: min, Max: max}
	}
}

// WithConstrainedRoute makes the fallback route respect graph edges.
// Such runs can fail with nearest.ErrRouteBlocked on sparse graphs.
func WithConstrainedRoute() Option {
	return func(o *Options) {
		o.ConstrainedRoute = true
	}
}

// Result is the immutable outcome of one analysis run.
type Result struct {
	// Locations are the generated delivery stops, in vertex order.
	Locations []spatial.Location

	// Graph is the proximity graph built over them.
	Graph *proximity.Graph

	// Degrees is the per-vertex degree table.
	Degrees []int

	// Dirac is the guarantee verdict.
	Dirac dirac.Verdict

	// Cycle is the Hamiltonian cycle, meaningful only when CycleFound.
	Cycle hamilton.Cycle

	// CycleFound reports whether the exhaustive search succeeded.
	CycleFound bool

	// Route is the nearest-neighbour fallback tour. For n == 0 it is the
	// zero Tour (there is nothing to route).
	Route nearest.Tour

	// NonEdges lists the pairs excluded by the threshold, for display.
	NonEdges []proximity.Pair
}

// Run executes one full analysis for p.
func Run(p Params, opts ...Option) (Result, error) {
	o := Options{Bounds: spatial.UnitBounds}
	for _, opt := range opts {
		opt(&o)
	}

	return run(p, o)
}

// run is the shared core behind Run and Cache.Run.
func run(p Params, o Options) (Result, error) {
	if p.N > hamilton.MaxVertices {
		return Result{}, fmt.Errorf("Run: n=%d > max=%d: %w", p.N, hamilton.MaxVertices, ErrSizeExceeded)
	}

	locs, err := spatial.Generate(p.N, p.Seed,
		spatial.WithBounds(o.Bounds.Min, o.Bounds.Max))
	if err != nil {
		return Result{}, err
	}

	g, err := proximity.Build(locs, p.Threshold)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Locations: locs,
		Graph:     g,
		Degrees:   g.Degrees(),
		Dirac:     dirac.EvaluateGraph(g),
		NonEdges:  g.NonEdges(),
	}

	res.Cycle, res.CycleFound, err = hamilton.Find(g)
	if err != nil {
		return Result{}, err
	}

	if p.N == 0 {
		// Nothing to route; the zero Tour is the defined trivial result.
		return res, nil
	}

	var ropts []nearest.Option
	if o.ConstrainedRoute {
		ropts = append(ropts, nearest.WithGraphConstrained())
	}
	res.Route, err = nearest.Route(g, ropts...)
	if err != nil {
		return Result{}, err
	}

	return res, nil
}
