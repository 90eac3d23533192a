package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGolden_Smoke(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/smoke.yaml")
	require.NoError(t, err)

	res := RunWithGolden(t, s)
	assert.Equal(t, 3, res.DemoSize)
	assert.Equal(t, GoldenRunID, res.Report.RunID)
	assert.Equal(t, 35, res.Report.Hits)
	assert.Equal(t, 15, res.Report.Misses)
}

func TestGolden_BenchOnly(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/bench_only.yaml")
	require.NoError(t, err)

	res := RunWithGolden(t, s)
	assert.Equal(t, 0, res.DemoSize)
	assert.Equal(t, 20, res.Report.Hits)
	assert.Equal(t, 20, res.Report.Misses)
}
