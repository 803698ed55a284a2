// Command hamroute - plain-text rendering of one analysis result.
//
// The report mirrors the information surface of the original interactive
// demo minus the drawing: layout, degree table, Dirac verdict, cycle or
// its absence, and the heuristic route with an honesty label when it
// ignored the road network.
package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/routelab/hamroute/dirac"
	"github.com/routelab/hamroute/planner"
)

func writeReport(out io.Writer, p planner.Params, res planner.Result) error {
	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)

	fmt.Fprintf(w, "Delivery network\tn=%d threshold=%g seed=%d\n", p.N, p.Threshold, p.Seed)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "ID\tX\tY\tdegree")
	for i, l := range res.Locations {
		fmt.Fprintf(w, "%s\t%.3f\t%.3f\t%d\n", l.ID, l.Pos.X, l.Pos.Y, res.Degrees[i])
	}
	fmt.Fprintln(w)

	switch res.Dirac.Outcome {
	case dirac.Holds:
		fmt.Fprintf(w, "Dirac's condition\tsatisfied (min degree %d ≥ %d): Hamiltonian cycle guaranteed\n",
			res.Dirac.MinDegree, res.Dirac.Required)
	case dirac.Fails:
		fmt.Fprintf(w, "Dirac's condition\tnot satisfied (min degree %d < %d): no guarantee either way\n",
			res.Dirac.MinDegree, res.Dirac.Required)
	case dirac.NotApplicable:
		fmt.Fprintf(w, "Dirac's condition\tnot applicable (n=%d < 3)\n", res.Dirac.Order)
	}

	if res.CycleFound {
		fmt.Fprintf(w, "Hamiltonian route\t%s\n", tourString(res, res.Cycle.Order))
		fmt.Fprintf(w, "Total distance\t%.3f\n", res.Cycle.Cost)
	} else {
		fmt.Fprintln(w, "Hamiltonian route\tnone — the network is not dense enough")
	}

	label := "heuristic, not graph-constrained"
	if res.Route.GraphConstrained {
		label = "graph-constrained"
	}
	fmt.Fprintf(w, "Greedy route (%s)\t%s\n", label, tourString(res, res.Route.Order))
	fmt.Fprintf(w, "Total distance\t%.3f\n", res.Route.Cost)

	fmt.Fprintf(w, "Pairs too far to connect\t%d of %d\n",
		len(res.NonEdges), len(res.NonEdges)+len(res.Graph.Edges()))

	return w.Flush()
}

// tourString renders a vertex index sequence as "A → B → … → A".
func tourString(res planner.Result, order []int) string {
	ids := make([]string, len(order))
	for i, v := range order {
		ids[i] = res.Locations[v].ID
	}

	return strings.Join(ids, " → ")
}