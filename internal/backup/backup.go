// Package backup snapshots saved projects to timestamped JSON files in a
// directory, keeps the newest few, and restores a snapshot into the store.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/thatcatcamp/buttonsmith/internal/codec"
	"github.com/thatcatcamp/buttonsmith/internal/projects"
	"gorm.io/gorm"
)

const (
	filePrefix = "projects-"
	fileSuffix = ".json"
	timeLayout = "20060102-150405.000"
)

// DefaultKeep is how many snapshots survive pruning when none is configured
const DefaultKeep = 10

// Snapshot is the on-disk format of one backup
type Snapshot struct {
	CreatedAt time.Time `json:"createdAt"`
	Projects  []Entry   `json:"projects"`
}

// Entry is one saved project. Token is the share token the store keeps.
type Entry struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}

// Manager writes and prunes snapshots under Dir
type Manager struct {
	Dir  string
	Keep int

	now func() time.Time
}

// NewManager creates a manager; keep <= 0 uses DefaultKeep
func NewManager(dir string, keep int) *Manager {
	if keep <= 0 {
		keep = DefaultKeep
	}
	return &Manager{Dir: dir, Keep: keep, now: time.Now}
}

// Create writes a snapshot of every saved project and prunes old ones.
// Returns the new file's path.
func (m *Manager) Create(database *gorm.DB) (string, error) {
	rows, err := projects.List(database)
	if err != nil {
		return "", err
	}

	snap := Snapshot{CreatedAt: m.now().UTC(), Projects: make([]Entry, 0, len(rows))}
	for _, row := range rows {
		snap.Projects = append(snap.Projects, Entry{Name: row.Name, Token: row.Token})
	}

	if err := os.MkdirAll(m.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", err
	}

	// write then rename so a half-written file never looks like a snapshot
	tmp, err := os.CreateTemp(m.Dir, ".snapshot-*")
	if err != nil {
		return "", fmt.Errorf("failed to create backup: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write backup: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}

	path := filepath.Join(m.Dir, filePrefix+snap.CreatedAt.Format(timeLayout)+fileSuffix)
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	if err := m.prune(); err != nil {
		return path, err
	}
	return path, nil
}

// List returns snapshot paths, oldest first
func (m *Manager) List() ([]string, error) {
	entries, err := os.ReadDir(m.Dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		paths = append(paths, filepath.Join(m.Dir, name))
	}
	// the timestamp layout sorts lexically
	sort.Strings(paths)
	return paths, nil
}

func (m *Manager) prune() error {
	paths, err := m.List()
	if err != nil {
		return err
	}
	for len(paths) > m.Keep {
		if err := os.Remove(paths[0]); err != nil {
			return fmt.Errorf("failed to prune backup: %w", err)
		}
		paths = paths[1:]
	}
	return nil
}

// Read loads a snapshot file
func Read(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid backup %s: %w", filepath.Base(path), err)
	}
	return &snap, nil
}

// Restore saves every project in the snapshot, overwriting projects with the
// same name. Projects not in the snapshot are left alone.
func Restore(database *gorm.DB, path string) (int, error) {
	snap, err := Read(path)
	if err != nil {
		return 0, err
	}

	restored := 0
	for _, e := range snap.Projects {
		m, err := codec.Decode(e.Token)
		if err != nil {
			return restored, fmt.Errorf("project %q: %w", e.Name, err)
		}
		if _, err := projects.Save(database, e.Name, m); err != nil {
			return restored, fmt.Errorf("project %q: %w", e.Name, err)
		}
		restored++
	}
	return restored, nil
}
