// Package services – StatsService
//
// Read-only reporting over the injury history table.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/avasilev/go-recovery-backend/internal/repo"
)

// StatsService implements the statistics use-cases.
type StatsService struct {
	// DB is the database handle used for all reporting queries.
	DB *gorm.DB
}

// InjuryHistory returns the caller's injury intervals, most recent first.
// Open intervals carry a null end date.
func (s *StatsService) InjuryHistory(ctx context.Context, userID string) ([]repo.HistoryRow, error) {
	return repo.ListHistoryForUser(ctx, s.DB, userID)
}
