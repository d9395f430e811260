package models

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(All()...); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func TestCreateProjectAssignsUUID(t *testing.T) {
	db := setupTestDB(t)

	project := Project{Name: "checkout", Token: "abc"}
	if err := db.Create(&project).Error; err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}

	if len(project.ID) != 36 {
		t.Errorf("Project ID should be a UUID, got %q", project.ID)
	}
	if project.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestProjectKeepsExplicitID(t *testing.T) {
	db := setupTestDB(t)

	project := Project{ID: "fixed-id", Name: "fixed", Token: "abc"}
	if err := db.Create(&project).Error; err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}
	if project.ID != "fixed-id" {
		t.Errorf("expected explicit ID to survive, got %q", project.ID)
	}
}

func TestProjectNameUnique(t *testing.T) {
	db := setupTestDB(t)

	db.Create(&Project{Name: "dup", Token: "a"})
	if err := db.Create(&Project{Name: "dup", Token: "b"}).Error; err == nil {
		t.Error("expected unique constraint violation on name")
	}
}

func TestCreatePlaygroundEntry(t *testing.T) {
	db := setupTestDB(t)

	entry := PlaygroundEntry{Token: "tok"}
	if err := db.Create(&entry).Error; err != nil {
		t.Fatalf("Failed to create entry: %v", err)
	}
	if entry.ID == 0 {
		t.Error("Entry ID should be set after creation")
	}
}
