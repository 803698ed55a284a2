package planner_test

import (
	"testing"

	"github.com/routelab/hamroute/dirac"
	"github.com/routelab/hamroute/hamilton"
	"github.com/routelab/hamroute/nearest"
	"github.com/routelab/hamroute/planner"
	"github.com/routelab/hamroute/proximity"
	"github.com/stretchr/testify/require"
)

func TestRun_Deterministic(t *testing.T) {
	p := planner.Params{N: 6, Threshold: 0.3, Seed: 42}

	a, err := planner.Run(p)
	require.NoError(t, err)
	b, err := planner.Run(p)
	require.NoError(t, err)

	require.Equal(t, a.Locations, b.Locations)
	require.Equal(t, a.Degrees, b.Degrees)
	require.Equal(t, a.Dirac, b.Dirac)
	require.Equal(t, a.CycleFound, b.CycleFound)
	require.Equal(t, a.Cycle, b.Cycle)
	require.Equal(t, a.Route, b.Route)
	require.Equal(t, a.NonEdges, b.NonEdges)
}

func TestRun_SnapshotConsistency(t *testing.T) {
	res, err := planner.Run(planner.Params{N: 8, Threshold: 0.5, Seed: 7})
	require.NoError(t, err)

	require.Len(t, res.Locations, 8)
	require.Equal(t, 8, res.Graph.Order())
	require.Equal(t, res.Graph.Degrees(), res.Degrees)
	require.Equal(t, res.Graph.NonEdges(), res.NonEdges)
	require.Equal(t, dirac.EvaluateGraph(res.Graph), res.Dirac)

	// The fallback route is always present and complete.
	require.Len(t, res.Route.Order, 9)
	require.False(t, res.Route.GraphConstrained)

	// Edge + non-edge counts partition all unordered pairs.
	require.Equal(t, 8*7/2, len(res.Graph.Edges())+len(res.NonEdges))

	// Dirac holding must coincide with an actual cycle (sufficiency).
	if res.Dirac.Outcome == dirac.Holds {
		require.True(t, res.CycleFound)
	}
}

func TestRun_CompleteNetworkFindsCycle(t *testing.T) {
	// Threshold 2 dwarfs the unit square's diameter: complete graph.
	res, err := planner.Run(planner.Params{N: 6, Threshold: 2, Seed: 42})
	require.NoError(t, err)

	require.Equal(t, dirac.Holds, res.Dirac.Outcome)
	require.True(t, res.CycleFound)
	require.Len(t, res.Cycle.Order, 7)
	require.Equal(t, 0, res.Cycle.Order[0])
	require.Equal(t, 0, res.Cycle.Order[6])
}

func TestRun_SparseNetworkStillRoutes(t *testing.T) {
	// Threshold 0: no roads at all. Dirac fails, no cycle, but the
	// heuristic route still closes a full tour.
	res, err := planner.Run(planner.Params{N: 5, Threshold: 0, Seed: 3})
	require.NoError(t, err)

	require.Equal(t, dirac.Fails, res.Dirac.Outcome)
	require.Zero(t, res.Dirac.MinDegree)
	require.False(t, res.CycleFound)
	require.Len(t, res.Route.Order, 6)
}

func TestRun_Degenerate(t *testing.T) {
	res, err := planner.Run(planner.Params{N: 0, Threshold: 1, Seed: 1})
	require.NoError(t, err)
	require.Empty(t, res.Locations)
	require.Empty(t, res.Degrees)
	require.Equal(t, dirac.NotApplicable, res.Dirac.Outcome)
	require.False(t, res.CycleFound)
	require.Empty(t, res.Route.Order)

	res, err = planner.Run(planner.Params{N: 1, Threshold: 1, Seed: 1})
	require.NoError(t, err)
	require.Equal(t, dirac.NotApplicable, res.Dirac.Outcome)
	require.True(t, res.CycleFound)
	require.Equal(t, []int{0, 0}, res.Cycle.Order)
	require.Equal(t, []int{0, 0}, res.Route.Order)
}

func TestRun_SizeExceeded(t *testing.T) {
	_, err := planner.Run(planner.Params{N: hamilton.MaxVertices + 1, Threshold: 1, Seed: 1})
	require.ErrorIs(t, err, planner.ErrSizeExceeded)
}

func TestRun_LeafValidationSurfaces(t *testing.T) {
	_, err := planner.Run(planner.Params{N: 4, Threshold: -1, Seed: 1})
	require.ErrorIs(t, err, proximity.ErrNegativeThreshold)
}

func TestRun_ConstrainedRoute(t *testing.T) {
	// Complete network: constrained routing must succeed and say so.
	res, err := planner.Run(planner.Params{N: 5, Threshold: 2, Seed: 8},
		planner.WithConstrainedRoute())
	require.NoError(t, err)
	require.True(t, res.Route.GraphConstrained)

	// Roadless network: constrained routing has nowhere to go.
	_, err = planner.Run(planner.Params{N: 5, Threshold: 0, Seed: 8},
		planner.WithConstrainedRoute())
	require.ErrorIs(t, err, nearest.ErrRouteBlocked)
}

func TestRun_CustomBounds(t *testing.T) {
	res, err := planner.Run(planner.Params{N: 6, Threshold: 50, Seed: 4},
		planner.WithBounds(0, 100))
	require.NoError(t, err)
	for _, l := range res.Locations {
		require.GreaterOrEqual(t, l.Pos.X, 0.0)
		require.Less(t, l.Pos.X, 100.0)
	}
}

func TestCache_MemoizesByParams(t *testing.T) {
	c := planner.NewCache()

	p := planner.Params{N: 6, Threshold: 0.3, Seed: 42}
	a, err := c.Run(p)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	b, err := c.Run(p)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len(), "repeat run must hit the cache")
	require.Equal(t, a, b)

	_, err = c.Run(planner.Params{N: 6, Threshold: 0.3, Seed: 43})
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	// Same params under a different route policy is a different run.
	_, err = c.Run(p, planner.WithConstrainedRoute())
	if err == nil {
		require.Equal(t, 3, c.Len())
	} else {
		// A blocked constrained route is a legitimate outcome here; it
		// must not be cached.
		require.ErrorIs(t, err, nearest.ErrRouteBlocked)
		require.Equal(t, 2, c.Len())
	}
}

func TestCache_DoesNotCacheFailures(t *testing.T) {
	c := planner.NewCache()
	_, err := c.Run(planner.Params{N: 99, Threshold: 1, Seed: 1})
	require.ErrorIs(t, err, planner.ErrSizeExceeded)
	require.Zero(t, c.Len())
}
