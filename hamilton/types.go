// Package hamilton - result type, sentinel errors, and search options.
package hamilton

import "errors"

// MaxVertices is the hard ceiling on the exhaustive search. At n=10 the
// candidate space is 9! = 362880 orderings, comfortably sub-second; one
// more vertex multiplies that by ten.
const MaxVertices = 10

// Sentinel errors for the cycle search.
var (
	// ErrNilGraph indicates a nil graph was passed to Find.
	ErrNilGraph = errors.New("hamilton: graph is nil")

	// ErrGraphTooLarge indicates the graph exceeds the factorial-search
	// bound; the search refuses rather than running unbounded.
	ErrGraphTooLarge = errors.New("hamilton: graph exceeds exhaustive search bound")
)

// Cycle is a Hamiltonian cycle found by the search.
//
// Order lists n+1 vertex indices starting and ending at 0
// (Order[0] == Order[n] == 0); every other vertex appears exactly once,
// and every consecutive pair is an edge of the searched graph.
type Cycle struct {
	// Order is the closed visiting sequence.
	Order []int

	// Cost is the total Euclidean length of the cycle, stabilized to 1e-9.
	Cost float64
}

// Options configures Find.
//
// MaxVertices – effective search bound; never above the package ceiling.
type Options struct {
	MaxVertices int
}

// Option is a functional option for Find.
type Option func(*Options)

// WithMaxVertices lowers the search bound below the package ceiling,
// e.g. to keep latency tight in interactive callers. Values above
// MaxVertices are clamped to it; k < 1 panics (programmer error).
func WithMaxVertices(k int) Option {
	if k < 1 {
		panic("hamilton: WithMaxVertices requires k >= 1")
	}

	return func(o *Options) {
		o.MaxVertices = k
		if o.MaxVertices > MaxVertices {
			o.MaxVertices = MaxVertices
		}
	}
}

// defaultOptions returns the resolved defaults applied before user options.
func defaultOptions() Options {
	return Options{MaxVertices: MaxVertices}
}
