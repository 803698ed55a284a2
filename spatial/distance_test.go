package spatial_test

import (
	"math"
	"testing"

	"github.com/routelab/hamroute/spatial"
	"github.com/stretchr/testify/require"
)

// unitSquare is the canonical four-corner fixture used across the module's
// tests: perimeter 4, diagonal √2.
var unitSquare = []spatial.Point{
	{X: 0, Y: 0},
	{X: 1, Y: 0},
	{X: 1, Y: 1},
	{X: 0, Y: 1},
}

func TestDistance_SymmetryAndNonNegativity(t *testing.T) {
	pts := []spatial.Point{
		{X: 0, Y: 0}, {X: 3, Y: 4}, {X: -1.5, Y: 2.25}, {X: 7, Y: -7},
	}
	for i := range pts {
		for j := range pts {
			d := spatial.Distance(pts[i], pts[j])
			require.GreaterOrEqual(t, d, 0.0)
			require.Equal(t, d, spatial.Distance(pts[j], pts[i]))
		}
	}
	require.Equal(t, 5.0, spatial.Distance(spatial.Point{}, spatial.Point{X: 3, Y: 4}))
	require.Equal(t, 0.0, spatial.Distance(pts[1], pts[1]))
}

func TestTourLength_UnitSquarePerimeter(t *testing.T) {
	require.Equal(t, 4.0, spatial.TourLength(unitSquare))
}

func TestTourLength_ClosedDuplicateIsEquivalent(t *testing.T) {
	closed := append(append([]spatial.Point{}, unitSquare...), unitSquare[0])
	require.Equal(t, spatial.TourLength(unitSquare), spatial.TourLength(closed))
}

func TestTourLength_Degenerate(t *testing.T) {
	require.Equal(t, 0.0, spatial.TourLength(nil))
	require.Equal(t, 0.0, spatial.TourLength([]spatial.Point{{X: 2, Y: 2}}))
	// Two points: there and back again.
	require.Equal(t, 2.0, spatial.TourLength([]spatial.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}))
}

func TestTourLength_DiagonalTour(t *testing.T) {
	// Crossing tour over the square: two sides + two diagonals.
	tour := []spatial.Point{unitSquare[0], unitSquare[1], unitSquare[3], unitSquare[2]}
	require.InDelta(t, 2+2*math.Sqrt2, spatial.TourLength(tour), 1e-9)
}
