// Package nearest produces the fallback delivery route: a greedy
// nearest-neighbour tour that always exists, Hamiltonian or not.
//
// Algorithm:
//
//	Start at vertex 0; repeatedly hop to the closest unvisited vertex by
//	Euclidean distance, breaking ties toward the smallest index; once all
//	vertices are visited, close the tour back to the start.
//
// Two movement policies:
//
//   - Default: raw Euclidean distance, ignoring whether a graph edge
//     connects the pair. The route is an idealized real-world shortcut —
//     always complete, but "heuristic, not graph-constrained". Callers
//     can read Tour.GraphConstrained to label it honestly.
//   - WithGraphConstrained(): only actual edges may be travelled
//     (including the closing hop). A sparse graph can dead-end the walk,
//     in which case Route returns ErrRouteBlocked rather than a partial
//     tour.
//
// Determinism: pure function of (graph, options) — no randomness, stable
// tie-break.
//
// Complexity: O(n²) time, O(n) space.
package nearest
