// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// UserInjuryHistory model: open/closed interval rows tracking when a user
// held an injury.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/avasilev/go-recovery-backend/internal/domain"
)

// HistoryRow is the joined projection returned by the statistics endpoint:
// one interval together with the injury name.
type HistoryRow struct {
	InjuryID   uint       `json:"injuryId"`
	InjuryName string     `json:"injuryName"`
	StartDate  time.Time  `json:"startDate"`
	EndDate    *time.Time `json:"endDate"`
}

// OpenHistory inserts a new open interval (EndDate nil) starting now (UTC).
func OpenHistory(ctx context.Context, db *gorm.DB, userID string, injuryID uint) error {
	h := &domain.UserInjuryHistory{
		AppUserID: userID,
		InjuryID:  injuryID,
		StartDate: time.Now().UTC(),
	}
	return db.WithContext(ctx).Create(h).Error
}

// CloseLatestHistory stamps EndDate on the most recent open interval for
// (user, injury). It is a no-op when no open interval exists.
func CloseLatestHistory(ctx context.Context, db *gorm.DB, userID string, injuryID uint, end time.Time) error {
	var h domain.UserInjuryHistory
	err := db.WithContext(ctx).
		Where("app_user_id = ? AND injury_id = ? AND end_date IS NULL", userID, injuryID).
		Order("start_date desc").
		First(&h).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return err
	}
	return db.WithContext(ctx).
		Model(&domain.UserInjuryHistory{}).
		Where("id = ?", h.ID).
		Update("end_date", end).Error
}

// ListHistoryForUser returns the user's intervals joined with injury names,
// most recent first.
func ListHistoryForUser(ctx context.Context, db *gorm.DB, userID string) ([]HistoryRow, error) {
	var out []HistoryRow
	err := db.WithContext(ctx).
		Model(&domain.UserInjuryHistory{}).
		Select("user_injury_histories.injury_id, injuries.name AS injury_name, user_injury_histories.start_date, user_injury_histories.end_date").
		Joins("JOIN injuries ON injuries.id = user_injury_histories.injury_id").
		Where("user_injury_histories.app_user_id = ?", userID).
		Order("user_injury_histories.start_date desc").
		Scan(&out).Error
	return out, err
}
