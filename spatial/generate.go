// Package spatial - implementation of the coordinate generator.
//
// Contract:
//   - n ≥ 0 (else ErrBadCount); n == 0 yields an empty, non-nil slice.
//   - Coordinates are drawn i.i.d. uniform from the configured square in a
//     fixed order (x before y, vertex 0 before vertex 1, …), so output is
//     fully determined by (n, seed, options).
//   - Labels come from Options.LabelFn applied to ascending indices.
//
// Complexity: O(n) time, O(n) space.
package spatial

import "fmt"

// Generate produces n delivery locations with reproducible random
// positions inside the configured square.
//
// Same (n, seed) and options always yield identical locations; this is
// the reproducibility contract the rest of the module leans on.
func Generate(n int, seed int64, opts ...Option) ([]Location, error) {
	if n < 0 {
		return nil, fmt.Errorf("Generate: n=%d: %w", n, ErrBadCount)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rng := rngFromSeed(seed)
	span := o.Bounds.Max - o.Bounds.Min

	locs := make([]Location, n)
	for i := 0; i < n; i++ {
		// Fixed draw order (x, then y) keeps the stream stable even if
		// Location gains fields later.
		x := o.Bounds.Min + rng.Float64()*span
		y := o.Bounds.Min + rng.Float64()*span
		locs[i] = Location{
			ID:  o.LabelFn(i),
			Pos: Point{X: x, Y: y},
		}
	}

	return locs, nil
}
