// SPDX-License-Identifier: MIT
package backup

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/thatcatcamp/buttonsmith/internal/db"
	"github.com/thatcatcamp/buttonsmith/internal/projects"
	"github.com/thatcatcamp/buttonsmith/internal/style"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := db.Open("sqlite", filepath.Join(t.TempDir(), "backup.db"))
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	return database
}

func TestCreateAndRestore(t *testing.T) {
	source := setupTestDB(t)
	m := style.Default()
	m.Text = "Saved"
	if _, err := projects.Save(source, "hero", m); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	manager := NewManager(t.TempDir(), 3)
	path, err := manager.Create(source)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "projects-") {
		t.Errorf("unexpected snapshot name %s", path)
	}

	target := setupTestDB(t)
	n, err := Restore(target, path)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if n != 1 {
		t.Errorf("restored %d projects, want 1", n)
	}

	got, err := projects.GetByName(target, "hero")
	if err != nil {
		t.Fatalf("restored project missing: %v", err)
	}
	if got.Style.Text != "Saved" {
		t.Errorf("restored text = %q", got.Style.Text)
	}
}

func TestCreatePrunesOldest(t *testing.T) {
	database := setupTestDB(t)
	manager := NewManager(t.TempDir(), 2)

	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	manager.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	var created []string
	for i := 0; i < 4; i++ {
		path, err := manager.Create(database)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		created = append(created, path)
	}

	kept, err := manager.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(kept) != 2 || kept[0] != created[2] || kept[1] != created[3] {
		t.Errorf("kept %v, want the newest two of %v", kept, created)
	}
}

func TestListMissingDir(t *testing.T) {
	manager := NewManager(filepath.Join(t.TempDir(), "absent"), 0)
	paths, err := manager.List()
	if err != nil || len(paths) != 0 {
		t.Errorf("List on missing dir = %v, %v", paths, err)
	}
	if manager.Keep != DefaultKeep {
		t.Errorf("Keep = %d, want default %d", manager.Keep, DefaultKeep)
	}
}

func TestReadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects-bad.json")
	if err := writeFile(path, "not json"); err != nil {
		t.Fatal(err)
	}
	if _, err := Read(path); err == nil {
		t.Error("expected error for invalid snapshot")
	}
}
