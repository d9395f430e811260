package backup

import (
	"context"
	"time"

	"github.com/thatcatcamp/buttonsmith/internal/logger"
	"gorm.io/gorm"
)

// Scheduler takes a snapshot every interval
type Scheduler struct {
	manager  *Manager
	db       *gorm.DB
	interval time.Duration
	log      *logger.Logger
}

// NewScheduler creates a scheduler. Default interval is daily.
func NewScheduler(manager *Manager, database *gorm.DB, interval time.Duration, log *logger.Logger) *Scheduler {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &Scheduler{
		manager:  manager,
		db:       database,
		interval: interval,
		log:      log.With("component", "backup"),
	}
}

// Run snapshots once immediately, then on every tick until ctx ends.
// Failures are logged and the schedule continues.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.runBackup()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.runBackup()
		}
	}
}

func (s *Scheduler) runBackup() {
	path, err := s.manager.Create(s.db)
	if err != nil {
		s.log.Error(err, "backup failed")
		return
	}
	s.log.With("path", path).Debug("backup written")
}
