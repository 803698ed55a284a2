// Package dirac - verdict types and the evaluator itself.
//
// Contract:
//   - Evaluate is a pure function of (n, degree table); it touches no
//     graph structure and allocates nothing.
//   - len(degrees) must equal n (else ErrDegreeMismatch); degrees are
//     trusted to come from proximity.Graph.Degrees and are not re-derived.
package dirac

import (
	"errors"
	"fmt"

	"github.com/routelab/hamroute/proximity"
)

// ErrDegreeMismatch indicates a degree table whose length disagrees with
// the declared vertex count, or a negative vertex count.
var ErrDegreeMismatch = errors.New("dirac: degree table does not match vertex count")

// Outcome is the three-valued result of the Dirac test.
type Outcome int

const (
	// NotApplicable means n < 3, where the theorem is undefined.
	NotApplicable Outcome = iota

	// Fails means the condition does not hold (which proves nothing
	// about the absence of a Hamiltonian cycle).
	Fails

	// Holds means minimum degree ≥ ⌈n/2⌉, guaranteeing a Hamiltonian cycle.
	Holds
)

// String implements fmt.Stringer for human-readable reports.
func (o Outcome) String() string {
	switch o {
	case Holds:
		return "holds"
	case Fails:
		return "fails"
	case NotApplicable:
		return "not applicable"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Verdict is the full result of one evaluation: the outcome plus the
// numbers that produced it, so callers can display "min degree 1 < 2".
type Verdict struct {
	// Outcome classifies the test result.
	Outcome Outcome

	// Order is the vertex count the test was run against.
	Order int

	// MinDegree is the minimum degree observed (0 when Order == 0).
	MinDegree int

	// Required is the threshold ⌈n/2⌉ the minimum degree was held to.
	Required int
}

// Evaluate applies Dirac's test to a degree table of n vertices.
//
// For n ≥ 3: Outcome is Holds iff min(degrees) ≥ ⌈n/2⌉, else Fails.
// For n < 3: Outcome is NotApplicable; MinDegree and Required are still
// populated where defined, so reports stay informative.
//
// Complexity: O(n).
func Evaluate(n int, degrees []int) (Verdict, error) {
	if n < 0 || len(degrees) != n {
		return Verdict{}, fmt.Errorf("Evaluate: n=%d, len(degrees)=%d: %w", n, len(degrees), ErrDegreeMismatch)
	}

	v := Verdict{
		Outcome:  NotApplicable,
		Order:    n,
		Required: (n + 1) / 2, // ⌈n/2⌉ without floating point
	}
	if n == 0 {
		v.Required = 0

		return v, nil
	}

	v.MinDegree = degrees[0]
	for _, d := range degrees[1:] {
		if d < v.MinDegree {
			v.MinDegree = d
		}
	}

	if n < 3 {
		return v, nil
	}

	if v.MinDegree >= v.Required {
		v.Outcome = Holds
	} else {
		v.Outcome = Fails
	}

	return v, nil
}

// EvaluateGraph runs the test directly against a built proximity graph.
// Degree derivation and the count always agree here, so no error leg.
func EvaluateGraph(g *proximity.Graph) Verdict {
	v, _ := Evaluate(g.Order(), g.Degrees())

	return v
}
