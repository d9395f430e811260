package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is a named, saved button style
type Project struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"uniqueIndex;size:191;not null"`
	Label     string // button text at save time, for listings
	Token     string `gorm:"type:text;not null"` // codec token of the style
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PlaygroundEntry is one button pinned to the playground board
type PlaygroundEntry struct {
	ID        uint      `gorm:"primaryKey"`
	Token     string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`
}

// BeforeCreate assigns a UUID to new projects
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides for consistent naming
func (Project) TableName() string {
	return "projects"
}

func (PlaygroundEntry) TableName() string {
	return "playground_entries"
}

// All lists every model for migrations
func All() []interface{} {
	return []interface{}{&Project{}, &PlaygroundEntry{}}
}
