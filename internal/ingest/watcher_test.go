package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectEvents(t *testing.T, events <-chan string, want int, timeout time.Duration) map[string]struct{} {
	t.Helper()
	seen := map[string]struct{}{}
	deadline := time.After(timeout)
	for len(seen) < want {
		select {
		case p, ok := <-events:
			if !ok {
				return seen
			}
			seen[p] = struct{}{}
		case <-deadline:
			return seen
		}
	}
	return seen
}

func TestWatcherEmitsNewPDFs(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{dir}}, nil)
	require.NoError(t, err)

	pdfPath := filepath.Join(dir, "a.pdf")
	require.NoError(t, os.WriteFile(pdfPath, []byte("%PDF"), 0o644))
	// Non-PDF files never surface.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	seen := collectEvents(t, events, 1, 5*time.Second)
	assert.Contains(t, seen, pdfPath)
	assert.NotContains(t, seen, filepath.Join(dir, "notes.txt"))
}

func TestWatcherInitialScan(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "already-there.pdf")
	require.NoError(t, os.WriteFile(existing, []byte("%PDF"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{dir}, InitialScan: true}, nil)
	require.NoError(t, err)

	seen := collectEvents(t, events, 1, 5*time.Second)
	assert.Contains(t, seen, existing)
}

func TestWatcherDebounceBurst(t *testing.T) {
	// A tiny debounce window with a burst of creates makes the timer fire
	// while events are still arriving; run with -race to verify the pending
	// set is safely shared between the timer and the event loop.
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: time.Microsecond,
	}, nil)
	require.NoError(t, err)

	const n = 200
	for i := 0; i < n; i++ {
		require.NoError(t, os.WriteFile(
			filepath.Join(dir, fmt.Sprintf("f%03d.pdf", i)), []byte("%PDF"), 0o644))
	}

	seen := collectEvents(t, events, n, 10*time.Second)
	assert.NotEmpty(t, seen)
	for p := range seen {
		assert.Equal(t, ".pdf", filepath.Ext(p))
	}
}

func TestWatcherRequiresRoots(t *testing.T) {
	_, _, err := StartWatcher(context.Background(), WatchConfig{}, nil)
	require.Error(t, err)
}
