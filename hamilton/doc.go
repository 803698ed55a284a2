// Package hamilton performs an exhaustive search for a Hamiltonian cycle
// in a proximity graph: a closed walk using only graph edges that visits
// every vertex exactly once before returning to the start.
//
// Algorithm:
//
//	Depth-first backtracking over partial permutations. Vertex 0 is fixed
//	as the start (killing rotational duplicates); the remaining vertices
//	are tried in ascending index order, and a branch is pruned the moment
//	the next hop is not an edge. The first complete permutation whose
//	closing hop back to 0 is also an edge wins, so ties resolve
//	lexicographically.
//
// Bound:
//
//	The candidate space is (n−1)! — acceptable only because n is capped.
//	Find refuses graphs larger than MaxVertices with ErrGraphTooLarge
//	instead of silently grinding, so the package is safe to call without
//	any UI-level guardrail.
//
// Absence of a cycle is an expected outcome for sparse graphs and is
// reported through the found flag, not an error.
//
// Complexity: O((n−1)!) candidates worst case, O(n) per edge check chain;
// memory O(n) for the visited set and path stack.
package hamilton
