package presetwatch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thatcatcamp/buttonsmith/internal/logger"
	"github.com/thatcatcamp/buttonsmith/internal/style"
)

const brandYAML = `
presets:
  - name: brand
    bgType: solid
    bg1: "#123456"
`

func TestStoreLoadSwapsAndNotifies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(brandYAML), 0o644))

	store := NewStore(nil)
	_, ok := store.Catalog().Lookup("brand")
	require.False(t, ok)

	var notified []string
	store.Subscribe(func(c *style.Catalog) { notified = c.Names() })

	_, err := store.Load(path)
	require.NoError(t, err)

	_, ok = store.Catalog().Lookup("brand")
	assert.True(t, ok)
	assert.Contains(t, notified, "brand")
	assert.Contains(t, notified, "danger", "built-ins stay available")
}

func TestStoreLoadErrorKeepsCatalog(t *testing.T) {
	store := NewStore(nil)
	before := store.Catalog()

	_, err := store.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Same(t, before, store.Catalog())
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("presets: []\n"), 0o644))

	store := NewStore(nil)
	w, err := NewWatcher(store, path, logger.Nop())
	require.NoError(t, err)
	w.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	defer func() {
		cancel()
		<-done
	}()

	// unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte(brandYAML), 0o644))
	require.NoError(t, os.WriteFile(path, []byte(brandYAML), 0o644))

	require.Eventually(t, func() bool {
		_, ok := store.Catalog().Lookup("brand")
		return ok
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatcherKeepsCatalogOnBadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(brandYAML), 0o644))

	store := NewStore(nil)
	_, err := store.Load(path)
	require.NoError(t, err)

	w, err := NewWatcher(store, path, logger.Nop())
	require.NoError(t, err)
	w.reload()
	good := store.Catalog()

	require.NoError(t, os.WriteFile(path, []byte("presets: [ {name: "), 0o644))
	w.reload()
	assert.Same(t, good, store.Catalog())
	w.watcher.Close()
}
