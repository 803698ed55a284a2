package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunScenarioFile_Batch(t *testing.T) {
	path := writeTempScenario(t, `
runs:
  - locations: 4
    threshold: 2.0
    seed: 42
  - locations: 6
    threshold: 0.3
    seed: 7
`)
	var out bytes.Buffer
	require.NoError(t, runScenarioFile(&out, path, false))

	report := out.String()
	require.Contains(t, report, "n=4 threshold=2 seed=42")
	require.Contains(t, report, "n=6 threshold=0.3 seed=7")
	// Threshold 2 exceeds the unit square's diameter: guaranteed loop.
	require.Contains(t, report, "Hamiltonian cycle guaranteed")
	require.Contains(t, report, "heuristic, not graph-constrained")
}

func TestRunScenarioFile_RejectsOutOfRangeRun(t *testing.T) {
	path := writeTempScenario(t, `
runs:
  - locations: 11
    threshold: 0.3
    seed: 1
`)
	var out bytes.Buffer
	err := runScenarioFile(&out, path, false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "locations must be in [4,10]")
}

func TestRunScenarioFile_RejectsEmptyAndMissing(t *testing.T) {
	path := writeTempScenario(t, "runs: []\n")
	var out bytes.Buffer
	require.Error(t, runScenarioFile(&out, path, false))

	require.Error(t, runScenarioFile(&out, filepath.Join(t.TempDir(), "nope.yaml"), false))
}

func TestRootCmd_FlagsDrivePlanner(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--locations", "5", "--threshold", "2", "--seed", "3"})

	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "n=5 threshold=2 seed=3")
	require.Contains(t, out.String(), "Hamiltonian cycle guaranteed")
}

func TestRootCmd_RejectsBadRange(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--locations", "3"})
	require.Error(t, cmd.Execute())
}
