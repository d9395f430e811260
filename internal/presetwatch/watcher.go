package presetwatch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/thatcatcamp/buttonsmith/internal/logger"
)

// DefaultDebounce coalesces the burst of events one editor save produces.
const DefaultDebounce = 150 * time.Millisecond

// Watcher reloads a Store whenever its preset file changes.
type Watcher struct {
	store    *Store
	path     string
	debounce time.Duration
	log      *logger.Logger
	watcher  *fsnotify.Watcher
}

// NewWatcher watches path's directory, since editors often replace the file
// by rename and a watch on the file itself would be lost.
func NewWatcher(store *Store, path string, log *logger.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve preset file: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		store:    store,
		path:     abs,
		debounce: DefaultDebounce,
		log:      log.With("component", "presetwatch"),
		watcher:  fsw,
	}, nil
}

// Run processes events until ctx is done, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Error(err, "preset watcher error")
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) != 0
}

func (w *Watcher) reload() {
	c, err := w.store.Load(w.path)
	if err != nil {
		w.log.Error(err, "preset reload failed, keeping previous presets")
		return
	}
	w.log.With("presets", len(c.Names())).Info("presets reloaded")
}
