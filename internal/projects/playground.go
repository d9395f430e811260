package projects

import (
	"fmt"

	"github.com/thatcatcamp/buttonsmith/internal/codec"
	"github.com/thatcatcamp/buttonsmith/internal/models"
	"github.com/thatcatcamp/buttonsmith/internal/style"
	"gorm.io/gorm"
)

// Pinned is a playground entry decoded back into a style.
type Pinned struct {
	ID    uint        `json:"id"`
	Token string      `json:"token"`
	Style style.Model `json:"style"`
}

// AddToPlayground pins m to the board. When maxEntries is positive the oldest
// entries beyond it are dropped.
func AddToPlayground(db *gorm.DB, m style.Model, maxEntries int) (*models.PlaygroundEntry, error) {
	token, err := codec.Encode(m)
	if err != nil {
		return nil, err
	}

	entry := &models.PlaygroundEntry{Token: token}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		if maxEntries <= 0 {
			return nil
		}
		var keep []uint
		if err := tx.Model(&models.PlaygroundEntry{}).
			Order("id desc").Limit(maxEntries).Pluck("id", &keep).Error; err != nil {
			return err
		}
		return tx.Where("id NOT IN ?", keep).Delete(&models.PlaygroundEntry{}).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add playground entry: %w", err)
	}
	return entry, nil
}

// ListPlayground returns the board in the order entries were added.
func ListPlayground(db *gorm.DB) ([]Pinned, error) {
	var entries []models.PlaygroundEntry
	if err := db.Order("id").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list playground: %w", err)
	}

	pinned := make([]Pinned, 0, len(entries))
	for _, e := range entries {
		m, err := codec.Decode(e.Token)
		if err != nil {
			return nil, fmt.Errorf("playground entry %d: %w", e.ID, err)
		}
		pinned = append(pinned, Pinned{ID: e.ID, Token: e.Token, Style: m})
	}
	return pinned, nil
}

// RemoveFromPlayground deletes a single entry.
func RemoveFromPlayground(db *gorm.DB, id uint) error {
	result := db.Delete(&models.PlaygroundEntry{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to remove playground entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("playground entry", fmt.Sprint(id), gorm.ErrRecordNotFound)
	}
	return nil
}

// ClearPlayground empties the board.
func ClearPlayground(db *gorm.DB) error {
	if err := db.Where("1 = 1").Delete(&models.PlaygroundEntry{}).Error; err != nil {
		return fmt.Errorf("failed to clear playground: %w", err)
	}
	return nil
}
