// Package proximity - graph snapshot type and sentinel errors.
//
// Error policy (explicit and strict):
//   - Only package-level sentinel variables are exposed.
//   - Callers branch with errors.Is; messages are context, not contract.
//   - Build attaches parameter context via %w wrapping.
package proximity

import (
	"errors"

	"github.com/routelab/hamroute/spatial"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrNegativeThreshold indicates a negative or NaN distance threshold.
	ErrNegativeThreshold = errors.New("proximity: threshold must be non-negative")

	// ErrEmptyID indicates a location with an empty identifier.
	ErrEmptyID = errors.New("proximity: location ID is empty")

	// ErrDuplicateID indicates two locations sharing one identifier.
	ErrDuplicateID = errors.New("proximity: duplicate location ID")

	// ErrBadCoordinate indicates a NaN or infinite coordinate.
	ErrBadCoordinate = errors.New("proximity: coordinate is not finite")

	// ErrVertexOutOfRange indicates a vertex index outside [0, Order()).
	ErrVertexOutOfRange = errors.New("proximity: vertex index out of range")
)

// Pair is an unordered vertex pair with U < V.
type Pair struct {
	U int
	V int
}

// Graph is an immutable proximity-graph snapshot: the locations it was
// built from plus a dense symmetric weight matrix.
//
// weight[i][j] holds the Euclidean distance between i and j when the pair
// is connected, math.Inf(1) when it is not, and 0 on the diagonal.
// The zero Graph is an empty graph; all query methods are read-only and
// safe for concurrent use.
type Graph struct {
	locs      []spatial.Location
	weight    [][]float64
	threshold float64
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	return len(g.locs)
}

// Threshold returns the distance threshold the graph was built with.
func (g *Graph) Threshold() float64 {
	return g.threshold
}

// Locations returns a copy of the vertex list in index order.
// Copying keeps the snapshot immutable even against careless callers.
func (g *Graph) Locations() []spatial.Location {
	out := make([]spatial.Location, len(g.locs))
	copy(out, g.locs)

	return out
}

// Location returns the location at index i.
// Panics on out-of-range i, like a slice access would.
func (g *Graph) Location(i int) spatial.Location {
	return g.locs[i]
}
