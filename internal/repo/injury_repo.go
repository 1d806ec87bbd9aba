// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Injury
// model and its links to recovery exercises.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions. They follow the "thin repository"
// approach: no business logic, only CRUD persistence and query composition.
//
// Error semantics:
//   - When an injury is not found, functions return gorm.ErrRecordNotFound
//     (exported in this package as ErrNotFound).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/avasilev/go-recovery-backend/internal/domain"
)

// ListInjuries returns all injuries ordered by ID ascending.
func ListInjuries(ctx context.Context, db *gorm.DB) ([]domain.Injury, error) {
	var out []domain.Injury
	err := db.WithContext(ctx).Order("id asc").Find(&out).Error
	return out, err
}

// CountInjuries returns the total number of injuries.
func CountInjuries(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.Injury{}).Count(&total).Error
	return total, err
}

// ListInjuriesPage returns a paginated slice of injuries ordered by ID.
// The caller computes offset and limit (e.g., (page-1)*pageSize).
func ListInjuriesPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Injury, error) {
	var out []domain.Injury
	err := db.WithContext(ctx).
		Order("id asc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// GetInjury fetches a single injury by ID, or ErrNotFound if missing.
func GetInjury(ctx context.Context, db *gorm.DB, id uint) (*domain.Injury, error) {
	var inj domain.Injury
	err := db.WithContext(ctx).Where("id = ?", id).First(&inj).Error
	if err != nil {
		return nil, err
	}
	return &inj, nil
}

// CreateInjury inserts a new injury row and returns the persisted record.
func CreateInjury(ctx context.Context, db *gorm.DB, inj *domain.Injury) error {
	return db.WithContext(ctx).Create(inj).Error
}

// SaveInjury persists all scalar fields of an existing injury row.
func SaveInjury(ctx context.Context, db *gorm.DB, inj *domain.Injury) error {
	return db.WithContext(ctx).Save(inj).Error
}

// DeleteInjury removes an injury row by ID. It returns ErrNotFound when no
// row was deleted.
func DeleteInjury(ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Delete(&domain.Injury{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListInjuryExercises returns the recovery exercises linked to an injury,
// ordered by exercise ID.
func ListInjuryExercises(ctx context.Context, db *gorm.DB, injuryID uint) ([]domain.RecoveryExercise, error) {
	var out []domain.RecoveryExercise
	err := db.WithContext(ctx).
		Joins("JOIN injury_recovery_exercises ire ON ire.recovery_exercise_id = recovery_exercises.id").
		Where("ire.injury_id = ?", injuryID).
		Order("recovery_exercises.id asc").
		Find(&out).Error
	return out, err
}

// CreateInjuryLinks inserts one link row per exercise ID for the given injury.
// Callers validate the IDs first; a stale ID surfaces as a constraint error.
func CreateInjuryLinks(ctx context.Context, db *gorm.DB, injuryID uint, exerciseIDs []uint) error {
	if len(exerciseIDs) == 0 {
		return nil
	}
	links := make([]domain.InjuryRecoveryExercise, 0, len(exerciseIDs))
	for _, id := range exerciseIDs {
		links = append(links, domain.InjuryRecoveryExercise{InjuryID: injuryID, RecoveryExerciseID: id})
	}
	return db.WithContext(ctx).Create(&links).Error
}

// DeleteInjuryLinks removes every exercise link of the given injury.
func DeleteInjuryLinks(ctx context.Context, db *gorm.DB, injuryID uint) error {
	return db.WithContext(ctx).
		Delete(&domain.InjuryRecoveryExercise{}, "injury_id = ?", injuryID).Error
}

// ListExistingExerciseIDs returns the subset of the given exercise IDs that
// actually exist. Used for bulk cross-reference validation: the caller diffs
// the result against its input to report every invalid ID at once.
func ListExistingExerciseIDs(ctx context.Context, db *gorm.DB, ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []uint
	err := db.WithContext(ctx).
		Model(&domain.RecoveryExercise{}).
		Where("id IN ?", ids).
		Pluck("id", &out).Error
	return out, err
}
