package file

import (
	"context"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set("parser.fuzzy_threshold", int64(80)))

	var reloads atomic.Int32
	w, err := NewWatcher(store, func() { reloads.Add(1) })
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx)
	}()

	content := "[parser]\nfuzzy_threshold = 90\n"
	require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0600))

	require.Eventually(t, func() bool {
		return store.GetInt("parser.fuzzy_threshold") == 90
	}, 3*time.Second, 20*time.Millisecond)
	assert.GreaterOrEqual(t, reloads.Load(), int32(1))

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop on context cancellation")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set("k", "v"))

	var reloads atomic.Int32
	w, err := NewWatcher(store, func() { reloads.Add(1) })
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	require.NoError(t, os.WriteFile(tmpDir+"/other.txt", []byte("x"), 0600))
	time.Sleep(200 * time.Millisecond)

	assert.Zero(t, reloads.Load())
}
