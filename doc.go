// Package hamroute models a delivery network as a proximity graph and
// answers two questions about it: does Dirac's degree condition guarantee
// a full delivery loop, and can such a loop actually be found.
//
// The module is organized as small, pure, leaf-first packages:
//
//	spatial/   — deterministic 2D coordinate generation + Euclidean geometry
//	proximity/ — distance-threshold graph construction + degree analysis
//	dirac/     — Dirac's theorem evaluator (holds / fails / not applicable)
//	hamilton/  — exhaustive Hamiltonian-cycle search (bounded backtracking)
//	nearest/   — greedy nearest-neighbour fallback router
//	planner/   — one-shot analysis facade tying the above together
//	cmd/       — hamroute CLI: single runs and YAML scenario batches
//
// Every analysis run is an immutable snapshot: same (n, threshold, seed)
// in, same locations, graph, verdict, cycle and route out. The packages
// never log, never panic on runtime input, and report failures through
// sentinel errors checked with errors.Is.
//
// Quick ASCII example (four depots on a unit square, threshold 1.5):
//
//	D───C
//	│ ╳ │        every pair within reach ⇒ complete graph,
//	A───B        min degree 3 ≥ ⌈4/2⌉ ⇒ Dirac holds ⇒ loop A→B→C→D→A exists.
//
// See planner.Run for the one-call entry point.
package hamroute
