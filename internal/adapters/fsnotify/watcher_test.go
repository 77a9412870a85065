package fsnotify

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectChanges starts a watcher on dir and returns a thread-safe getter for
// observed paths.
func collectChanges(t *testing.T, dir string) func() []string {
	t.Helper()
	w, err := NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { w.Stop() })

	var mu sync.Mutex
	var got []string
	err = w.Watch(dir, func(path string) {
		mu.Lock()
		got = append(got, path)
		mu.Unlock()
	})
	require.NoError(t, err)

	return func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), got...)
	}
}

// waitFor polls until cond returns true or the timeout elapses.
func waitFor(t *testing.T, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return cond()
}

func TestWatcher_ReportsRustSourceChanges(t *testing.T) {
	dir := t.TempDir()
	changes := collectChanges(t, dir)

	target := filepath.Join(dir, "lib.rs")
	require.NoError(t, os.WriteFile(target, []byte("fn main() {}"), 0644))

	ok := waitFor(t, func() bool {
		for _, p := range changes() {
			if p == target {
				return true
			}
		}
		return false
	})
	assert.True(t, ok, "expected change event for %s", target)
}

func TestWatcher_IgnoresNonRustFiles(t *testing.T) {
	dir := t.TempDir()
	changes := collectChanges(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lib.rs.swp"), []byte("x"), 0644))

	time.Sleep(200 * time.Millisecond)
	assert.Empty(t, changes())
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)
	require.NoError(t, w.Watch(t.TempDir(), func(string) {}))
	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}

func TestIsRustSource(t *testing.T) {
	assert.True(t, isRustSource("/p/src/lib.rs"))
	assert.False(t, isRustSource("/p/src/lib.go"))
	assert.False(t, isRustSource("/p/target/debug/build.rs"))
	assert.False(t, isRustSource("/p/.git/lib.rs"))
	assert.False(t, isRustSource("/p/src/lib.rs.swp"))
}
