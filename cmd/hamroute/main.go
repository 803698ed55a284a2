// Command hamroute analyzes a randomly laid-out delivery network: does
// Dirac's condition guarantee a full delivery loop, can one actually be
// found, and what does the greedy fallback route look like.
//
// Single run:
//
//	hamroute --locations 6 --threshold 0.3 --seed 42
//
// Batch of runs from a YAML scenario file:
//
//	hamroute --scenario scenarios.yaml
//
// Every flag can also come from the environment with the HAMROUTE_ prefix
// (HAMROUTE_LOCATIONS, HAMROUTE_THRESHOLD, …). The 4–10 location range is
// enforced here at the edge; the library itself only enforces the hard
// exhaustive-search bound.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/routelab/hamroute/planner"
)

// UI-level input range, matching the original demo's slider.
const (
	minLocations = 4
	maxLocations = 10

	envPrefix = "HAMROUTE"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "hamroute:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "hamroute",
		Short:         "Delivery-route analysis via Dirac's theorem and exhaustive cycle search",
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			// Flags win over env; env wins over defaults.
			v.SetEnvPrefix(envPrefix)
			v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			v.AutomaticEnv()

			return v.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if scenario := v.GetString("scenario"); scenario != "" {
				return runScenarioFile(cmd.OutOrStdout(), scenario, v.GetBool("constrained"))
			}

			n := v.GetInt("locations")
			if n < minLocations || n > maxLocations {
				return fmt.Errorf("--locations must be in [%d,%d], got %d", minLocations, maxLocations, n)
			}

			return runOnce(cmd.OutOrStdout(), planner.Params{
				N:         n,
				Threshold: v.GetFloat64("threshold"),
				Seed:      v.GetInt64("seed"),
			}, v.GetBool("constrained"))
		},
	}

	flags := cmd.Flags()
	flags.IntP("locations", "n", 6, "number of delivery locations (4-10)")
	flags.Float64P("threshold", "t", 0.3, "connection distance (road reach threshold)")
	flags.Int64P("seed", "s", 42, "random seed for the city layout")
	flags.Bool("constrained", false, "restrict the heuristic route to actual roads")
	flags.String("scenario", "", "YAML file with a list of runs to analyze")

	return cmd
}

// runOnce executes a single analysis and renders its report.
func runOnce(out io.Writer, p planner.Params, constrained bool) error {
	var opts []planner.Option
	if constrained {
		opts = append(opts, planner.WithConstrainedRoute())
	}

	res, err := planner.Run(p, opts...)
	if err != nil {
		if errors.Is(err, planner.ErrSizeExceeded) {
			return fmt.Errorf("network too large for exhaustive analysis: %w", err)
		}

		return err
	}

	return writeReport(out, p, res)
}
