package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestScenarioCommand_RunsFile(t *testing.T) {
	path := writeScenario(t, `name: cli_smoke
records: 100
searches: 50
hit_ratio: 0.7
seed: 42
locale: en-US
demo: true
`)

	out, _, err := execute(t, "scenario", path)
	require.NoError(t, err)

	assert.Contains(t, out, "=== DEMO ===")
	assert.Contains(t, out, "Records found:     35")
}

func TestScenarioCommand_InvalidSchema(t *testing.T) {
	path := writeScenario(t, "name: bad\nhit_ratio: 2.5\n")

	_, _, err := execute(t, "scenario", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "invalid scenario")
}

func TestScenarioCommand_MissingFile(t *testing.T) {
	_, _, err := execute(t, "scenario", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestScenarioCommand_LocaleFlagFallback(t *testing.T) {
	// Scenario without a locale inherits the --locale flag.
	path := writeScenario(t, "name: fallback\nrecords: 50\nsearches: 20\nseed: 1\n")

	out, _, err := execute(t, "scenario", path, "--locale", "en-US")
	require.NoError(t, err)
	assert.Contains(t, out, "=== BENCHMARK RESULTS ===")
}
