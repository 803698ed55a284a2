// Package dirac evaluates Dirac's sufficient condition for Hamiltonicity:
// a simple graph on n ≥ 3 vertices whose minimum degree is at least ⌈n/2⌉
// is guaranteed to contain a Hamiltonian cycle.
//
// The evaluator only certifies the guarantee; it never searches for a
// cycle. That split mirrors the theorem itself — the condition is
// sufficient, not necessary, so a failing verdict says nothing about
// whether a cycle exists (see package hamilton for the search).
//
// For n < 3 the theorem does not apply, and the verdict reports
// NotApplicable rather than a vacuous truth value.
//
// Complexity: O(n) over the degree table.
package dirac
