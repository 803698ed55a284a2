// Package spatial provides the geometric foundation of the module:
// deterministic generation of 2D delivery locations and the Euclidean
// measurements every other package is built on.
//
// What:
//
//   - Generate(n, seed): n labelled locations sampled uniformly from a
//     bounded square. Same (n, seed, bounds) ⇒ byte-identical output.
//   - Distance(a, b): Euclidean distance between two points.
//   - TourLength(pts): total length of the closed tour visiting pts in
//     order and returning to the first point.
//
// Determinism:
//
//   - All randomness flows through a single seeded math/rand stream.
//   - seed == 0 is mapped to a fixed default seed, so the zero value is
//     reproducible rather than time-based.
//   - Tour lengths are rounded to 1e-9 to keep results stable across
//     platforms and optimization levels.
//
// Errors (sentinel):
//
//   - ErrBadCount  n is negative.
//
// Option constructors (WithBounds, WithLabelFn) panic on meaningless
// arguments; runtime input never panics.
package spatial
