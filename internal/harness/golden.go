package harness

import (
	"bytes"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/uidbench/internal/testutil"
)

// goldenEpoch anchors the stepping clock for golden runs.
var goldenEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// goldenStep is the fake clock's advance per reading. Every elapsed
// duration in a golden run is a whole multiple of it.
const goldenStep = 5 * time.Millisecond

// GoldenRunID is the fixed run ID used in golden output.
const GoldenRunID = "golden-run"

// RunWithGolden executes a scenario deterministically and compares its
// console output against testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// The scenario must carry a fixed seed; otherwise the hit/miss split
// is still stable (hit slots always hit, fresh keys effectively never
// collide) but the exercised key sequence is not reproducible.
func RunWithGolden(t *testing.T, s *Scenario) *Result {
	t.Helper()

	clock := testutil.NewSteppingClock(goldenEpoch, goldenStep)
	runIDs := testutil.NewFixedRunIDGenerator(GoldenRunID)

	var buf bytes.Buffer
	res, err := Run(s, &buf, clock, runIDs)
	if err != nil {
		t.Fatalf("scenario %s failed: %v", s.Name, err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, s.Name, buf.Bytes())

	return res
}
