// Package presetwatch keeps the server's preset catalog in sync with a custom
// preset file.
package presetwatch

import (
	"sync"
	"sync/atomic"

	"github.com/thatcatcamp/buttonsmith/internal/style"
)

// Store holds the current catalog. Catalogs are immutable, so a reload builds a
// new one and swaps the pointer; readers never see a half-loaded set.
type Store struct {
	current atomic.Pointer[style.Catalog]

	mu   sync.RWMutex
	subs []func(*style.Catalog)
}

// NewStore starts with c, or the built-in catalog when c is nil.
func NewStore(c *style.Catalog) *Store {
	if c == nil {
		c = style.NewCatalog()
	}
	s := &Store{}
	s.current.Store(c)
	return s
}

// Catalog returns the catalog in effect.
func (s *Store) Catalog() *style.Catalog {
	return s.current.Load()
}

// Subscribe registers fn to run after every swap.
func (s *Store) Subscribe(fn func(*style.Catalog)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Swap installs c and notifies subscribers.
func (s *Store) Swap(c *style.Catalog) {
	s.current.Store(c)

	s.mu.RLock()
	subs := make([]func(*style.Catalog), len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()

	for _, fn := range subs {
		fn(c)
	}
}

// Load reads path and swaps in built-ins plus its presets. On error the
// current catalog stays.
func (s *Store) Load(path string) (*style.Catalog, error) {
	presets, err := style.LoadPresetFile(path)
	if err != nil {
		return nil, err
	}
	c := style.NewCatalog(presets...)
	s.Swap(c)
	return c, nil
}
