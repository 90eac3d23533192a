package results

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/uidbench/internal/bench"
)

func testReport(id string, startedAt time.Time) bench.Report {
	return bench.Report{
		RunID:            id,
		StartedAt:        startedAt,
		Records:          100,
		Searches:         50,
		Hits:             35,
		Misses:           15,
		GenerateAttempts: 100,
		GenerateElapsed:  5 * time.Millisecond,
		SearchElapsed:    2 * time.Millisecond,
	}
}

func openTestHistory(t *testing.T) *History {
	t.Helper()
	h, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { h.Close() })
	return h
}

func TestHistory_AppendListRoundTrip(t *testing.T) {
	h := openTestHistory(t)
	ctx := context.Background()

	want := testReport("run-1", time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, h.Append(ctx, want))

	got, err := h.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, want, got[0])
}

func TestHistory_AppendIdempotent(t *testing.T) {
	h := openTestHistory(t)
	ctx := context.Background()

	r := testReport("run-1", time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, h.Append(ctx, r))
	require.NoError(t, h.Append(ctx, r), "duplicate append must be a no-op")

	got, err := h.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestHistory_ListNewestFirst(t *testing.T) {
	h := openTestHistory(t)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, h.Append(ctx, testReport("run-a", base)))
	require.NoError(t, h.Append(ctx, testReport("run-b", base.Add(time.Hour))))
	require.NoError(t, h.Append(ctx, testReport("run-c", base.Add(2*time.Hour))))

	got, err := h.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "run-c", got[0].RunID)
	assert.Equal(t, "run-b", got[1].RunID)
}

func TestHistory_EmptyList(t *testing.T) {
	h := openTestHistory(t)

	got, err := h.List(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	h, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, h.Append(ctx, testReport("run-1", time.Now().UTC().Truncate(time.Second))))
	require.NoError(t, h.Close())

	// Schema application is idempotent; data survives reopen.
	h2, err := Open(path)
	require.NoError(t, err)
	defer h2.Close()

	got, err := h2.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
