// Package planner is the one-call facade over the analysis pipeline:
//
//	spatial.Generate → proximity.Build → Degrees → dirac.Evaluate
//	                                   → hamilton.Find
//	                                   → nearest.Route
//
// Run executes the whole pipeline sequentially and returns a single
// immutable Result snapshot. There is no incremental mutation: change any
// input (locations, threshold, seed) and the previous snapshot is simply
// discarded by running again.
//
// Because a run is a pure function of its Params (plus options), results
// are safely memoizable; Cache provides that as an opt-in wrapper so Run
// itself stays stateless.
//
// Degenerate inputs short-circuit to defined results instead of erroring:
// n==0 yields an empty graph, a NotApplicable verdict, no cycle and no
// route; n==1 yields the trivial one-stop loop for both.
package planner
