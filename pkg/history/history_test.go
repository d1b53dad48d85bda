package history

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidharthgehlot/TidyDesk/internal"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()
	h, err := Open(filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { h.Close() })
	return h
}

func TestOpen_CreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "sub", "history.db")

	h, err := Open(dbPath)
	require.NoError(t, err)
	defer h.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "Expected database file to be created")
}

func TestRecordCleanup(t *testing.T) {
	h := openTestHistory(t)
	start := time.Now().Add(-time.Second)

	result := &internal.CleanupResult{
		Source:      "/home/user/Desktop",
		Destination: "/home/user/Desktop/TidyDesk",
		Moved:       3,
		Skipped:     1,
		StartTime:   start,
		EndTime:     start.Add(time.Millisecond),
	}

	run, err := h.RecordCleanup(result.Source, result, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, StatusOK, run.Status)

	runs, err := h.Recent(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.ID, runs[0].ID)
	assert.Equal(t, "cleanup", runs[0].Kind)
	assert.Equal(t, 3, runs[0].Moved)
	assert.Equal(t, 1, runs[0].Skipped)
	assert.Equal(t, "/home/user/Desktop/TidyDesk", runs[0].Destination)
}

func TestRecordCleanup_Statuses(t *testing.T) {
	h := openTestHistory(t)

	clean, err := h.RecordCleanup("/a", &internal.CleanupResult{Source: "/a", Destination: "/a/TidyDesk"}, nil)
	require.NoError(t, err)
	assert.Equal(t, StatusAlreadyClean, clean.Status)

	failed, err := h.RecordCleanup("/missing", nil, fmt.Errorf("%w: /missing", internal.ErrDirectoryAccess))
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, failed.Status)
	assert.Equal(t, "/missing", failed.Source)
	assert.Contains(t, failed.Message, "directory not accessible")
}

func TestRecordRestore(t *testing.T) {
	h := openTestHistory(t)
	dest := "/home/user/Downloads/TidyDesk"

	notFound, err := h.RecordRestore(dest, nil, fmt.Errorf("%w: x", internal.ErrRecordNotFound))
	require.NoError(t, err)
	assert.Equal(t, StatusNotFound, notFound.Status)

	parse, err := h.RecordRestore(dest, nil, fmt.Errorf("%w: x", internal.ErrRecordParse))
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, parse.Status)

	ok, err := h.RecordRestore(dest, &internal.RestoreResult{Destination: dest, Restored: 2, Skipped: 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, StatusOK, ok.Status)
	assert.Equal(t, 2, ok.Restored)

	runs, err := h.ForDestination(dest)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestRecent_OrderAndLimit(t *testing.T) {
	h := openTestHistory(t)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		result := &internal.CleanupResult{
			Source:      fmt.Sprintf("/src%d", i),
			Destination: fmt.Sprintf("/src%d/TidyDesk", i),
			Moved:       i + 1,
			StartTime:   base.Add(time.Duration(i) * time.Minute),
			EndTime:     base.Add(time.Duration(i)*time.Minute + time.Second),
		}
		_, err := h.RecordCleanup(result.Source, result, nil)
		require.NoError(t, err)
	}

	runs, err := h.Recent(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "/src4", runs[0].Source)
	assert.Equal(t, "/src3", runs[1].Source)

	all, err := h.Recent(0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}
