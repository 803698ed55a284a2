// Package spatial - Euclidean measurement helpers shared by every
// consumer of coordinates (graph builder, cycle search, router).
//
// Design:
//   - Pure functions, no allocations, no validation beyond what math
//     gives for free (distances of finite points are finite and ≥ 0).
//   - Closed-tour sums are stabilized to 1e-9 to avoid cross-platform
//     floating-point drift in reported totals.
//
// Complexity: Distance O(1); TourLength O(len(pts)).
package spatial

import "math"

// roundScale controls final length stabilization precision (1e-9).
const roundScale = 1e9

// Distance returns the Euclidean distance between a and b.
// Symmetric and non-negative for finite inputs.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// TourLength returns the total length of the closed tour that visits pts
// in order and returns from the last point to the first.
//
// The sequence is treated as closed: the wrap segment is always included.
// A sequence that already repeats its first point at the end therefore
// sums to the same value (the extra wrap segment has length zero).
// Zero or one point ⇒ 0.
func TourLength(pts []Point) float64 {
	n := len(pts)
	if n < 2 {
		return 0
	}

	var sum float64
	for i := 0; i < n-1; i++ {
		sum += Distance(pts[i], pts[i+1])
	}
	sum += Distance(pts[n-1], pts[0]) // closing segment

	return round1e9(sum)
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
