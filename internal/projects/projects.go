// Package projects stores named button styles and the playground board.
// Styles are kept as codec tokens, so a row is exactly what a share link holds.
package projects

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/thatcatcamp/buttonsmith/internal/codec"
	"github.com/thatcatcamp/buttonsmith/internal/models"
	"github.com/thatcatcamp/buttonsmith/internal/style"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when a project or playground entry does not exist.
var ErrNotFound = errors.New("not found")

// Saved is a project decoded back into a style.
type Saved struct {
	models.Project
	Style style.Model
}

// Save stores m under name, replacing any project already using that name.
// An empty name becomes project-<unix millis>.
func Save(db *gorm.DB, name string, m style.Model) (*models.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("project-%d", time.Now().UnixMilli())
	}

	token, err := codec.Encode(m)
	if err != nil {
		return nil, err
	}

	project := &models.Project{Name: name, Label: m.Text, Token: token}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"label", "token", "updated_at"}),
	}).Create(project).Error
	if err != nil {
		return nil, fmt.Errorf("failed to save project: %w", err)
	}

	// on conflict the row keeps its original ID
	return GetRowByName(db, name)
}

// Get loads a project by ID.
func Get(db *gorm.DB, id string) (*Saved, error) {
	var project models.Project
	if err := db.Where("id = ?", id).First(&project).Error; err != nil {
		return nil, notFound("project", id, err)
	}
	return decode(project)
}

// GetByName loads a project by name.
func GetByName(db *gorm.DB, name string) (*Saved, error) {
	project, err := GetRowByName(db, name)
	if err != nil {
		return nil, err
	}
	return decode(*project)
}

// GetRowByName returns the stored row without decoding its token.
func GetRowByName(db *gorm.DB, name string) (*models.Project, error) {
	var project models.Project
	if err := db.Where("name = ?", strings.TrimSpace(name)).First(&project).Error; err != nil {
		return nil, notFound("project", name, err)
	}
	return &project, nil
}

// List returns every project, most recently updated first.
func List(db *gorm.DB) ([]models.Project, error) {
	var projects []models.Project
	if err := db.Order("updated_at desc").Order("name").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Delete removes a project by ID.
func Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Project{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("project", id, gorm.ErrRecordNotFound)
	}
	return nil
}

func decode(project models.Project) (*Saved, error) {
	m, err := codec.Decode(project.Token)
	if err != nil {
		return nil, fmt.Errorf("project %s: %w", project.Name, err)
	}
	return &Saved{Project: project, Style: m}, nil
}

func notFound(kind, key string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %s: %w", kind, key, ErrNotFound)
	}
	return fmt.Errorf("failed to load %s %s: %w", kind, key, err)
}
