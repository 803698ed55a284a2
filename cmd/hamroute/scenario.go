// Command hamroute - YAML scenario batches.
//
// A scenario file lists runs to analyze back to back, e.g.:
//
//	runs:
//	  - locations: 6
//	    threshold: 0.3
//	    seed: 42
//	  - locations: 8
//	    threshold: 0.25
//	    seed: 7
//	    constrained: true
//
// Per-run `constrained` overrides the command-line default.
package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/routelab/hamroute/planner"
)

// scenarioFile is the on-disk shape of a batch.
type scenarioFile struct {
	Runs []scenarioRun `yaml:"runs"`
}

// scenarioRun is one entry; Constrained is optional and defaults to the
// CLI-wide flag.
type scenarioRun struct {
	Locations   int     `yaml:"locations"`
	Threshold   float64 `yaml:"threshold"`
	Seed        int64   `yaml:"seed"`
	Constrained *bool   `yaml:"constrained,omitempty"`
}

// runScenarioFile parses path and reports every run in order, separated
// by a rule. A run that fails validation aborts the batch: scenario files
// are authored artifacts, and silently skipping entries would hide typos.
func runScenarioFile(out io.Writer, path string, defaultConstrained bool) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scenario: %w", err)
	}

	var sf scenarioFile
	if err = yaml.Unmarshal(raw, &sf); err != nil {
		return fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if len(sf.Runs) == 0 {
		return fmt.Errorf("scenario %s lists no runs", path)
	}

	for i, r := range sf.Runs {
		if r.Locations < minLocations || r.Locations > maxLocations {
			return fmt.Errorf("scenario run %d: locations must be in [%d,%d], got %d",
				i+1, minLocations, maxLocations, r.Locations)
		}

		constrained := defaultConstrained
		if r.Constrained != nil {
			constrained = *r.Constrained
		}

		if i > 0 {
			fmt.Fprintln(out, "────────────────────────────────────────")
		}
		p := planner.Params{N: r.Locations, Threshold: r.Threshold, Seed: r.Seed}
		if err = runOnce(out, p, constrained); err != nil {
			return fmt.Errorf("scenario run %d: %w", i+1, err)
		}
	}

	return nil
}
