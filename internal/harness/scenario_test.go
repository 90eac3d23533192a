package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario_Valid(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/smoke.yaml")
	require.NoError(t, err)

	assert.Equal(t, "smoke", s.Name)
	assert.Equal(t, 100, s.Records)
	assert.Equal(t, 50, s.Searches)
	assert.InDelta(t, 0.7, s.HitRatio, 1e-9)
	assert.Equal(t, uint64(42), s.Seed)
	assert.Equal(t, "en-US", s.Locale)
	assert.True(t, s.Demo)
}

func TestLoadScenario_Invalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{
			name: "missing_name",
			yaml: "records: 10\nsearches: 5\n",
		},
		{
			name: "empty_name",
			yaml: "name: \"\"\nrecords: 10\n",
		},
		{
			name: "negative_records",
			yaml: "name: bad\nrecords: -5\n",
		},
		{
			name: "hit_ratio_above_one",
			yaml: "name: bad\nhit_ratio: 1.5\n",
		},
		{
			name: "hit_ratio_negative",
			yaml: "name: bad\nhit_ratio: -0.1\n",
		},
		{
			name: "not_yaml",
			yaml: "{{{",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "scenario.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.yaml), 0o644))

			_, err := LoadScenario(path)
			require.Error(t, err)

			var se *ScenarioError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, path, se.Path)
		})
	}
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestScenario_Config(t *testing.T) {
	s := &Scenario{Records: 100, Searches: 50, HitRatio: 0.7, Seed: 42}
	cfg := s.Config()
	assert.Equal(t, 100, cfg.Records)
	assert.Equal(t, 50, cfg.Searches)
	assert.InDelta(t, 0.7, cfg.HitRatio, 1e-9)
	assert.Equal(t, uint64(42), cfg.Seed)
}

func TestValidate_DefaultsOnlyScenario(t *testing.T) {
	// A scenario with just a name is valid: all dimensions default.
	s := &Scenario{Name: "defaults"}
	assert.NoError(t, s.Validate())
}
