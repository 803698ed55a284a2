// Package proximity builds the delivery network itself: an undirected
// weighted graph connecting every pair of locations whose Euclidean
// distance is within a road-reach threshold.
//
// What:
//
//   - Build(locs, threshold): validate inputs and produce an immutable
//     Graph snapshot. Edge {u,v} exists iff d(u,v) ≤ threshold; its weight
//     is exactly d(u,v).
//   - Degree analysis: Degrees() and MinDegree() over the built graph.
//   - Derived views: Edges() and NonEdges() (the excluded pairs a caller
//     may want to display as "too far to connect").
//   - TourCost(order): closed-tour length of any vertex sequence over
//     this graph's coordinates, shared by the cycle search and the router.
//
// Representation:
//
//	A dense symmetric weight matrix with math.Inf(1) marking "no edge"
//	and 0 on the diagonal. The matrix is built once and never mutated;
//	a new run builds a new Graph.
//
// Invariants:
//
//   - No self-loops; at most one edge per unordered pair.
//   - Weights are symmetric, finite where an edge exists, and ≥ 0.
//   - The edge set is monotone non-decreasing in the threshold.
//
// Errors (sentinel):
//
//   - ErrNegativeThreshold  threshold < 0 or NaN
//   - ErrEmptyID            a location has an empty identifier
//   - ErrDuplicateID        two locations share an identifier
//   - ErrBadCoordinate      a coordinate is NaN or ±Inf
//   - ErrVertexOutOfRange   a tour references a vertex outside [0,n)
//
// Complexity: Build O(n²) time and space; degree and view queries O(n²)
// worst case; TourCost O(len(order)).
package proximity
