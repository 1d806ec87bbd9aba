// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// RecoveryExercise model and its links to injuries. It mirrors
// injury_repo.go: the two catalogs are symmetric aggregates over the same
// link table.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/avasilev/go-recovery-backend/internal/domain"
)

// ListExercises returns all recovery exercises ordered by ID ascending.
func ListExercises(ctx context.Context, db *gorm.DB) ([]domain.RecoveryExercise, error) {
	var out []domain.RecoveryExercise
	err := db.WithContext(ctx).Order("id asc").Find(&out).Error
	return out, err
}

// CountExercises returns the total number of recovery exercises.
func CountExercises(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.RecoveryExercise{}).Count(&total).Error
	return total, err
}

// ListExercisesPage returns a paginated slice of exercises ordered by ID.
func ListExercisesPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.RecoveryExercise, error) {
	var out []domain.RecoveryExercise
	err := db.WithContext(ctx).
		Order("id asc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// GetExercise fetches a single exercise by ID, or ErrNotFound if missing.
func GetExercise(ctx context.Context, db *gorm.DB, id uint) (*domain.RecoveryExercise, error) {
	var ex domain.RecoveryExercise
	err := db.WithContext(ctx).Where("id = ?", id).First(&ex).Error
	if err != nil {
		return nil, err
	}
	return &ex, nil
}

// CreateExercise inserts a new exercise row and returns the persisted record.
func CreateExercise(ctx context.Context, db *gorm.DB, ex *domain.RecoveryExercise) error {
	return db.WithContext(ctx).Create(ex).Error
}

// SaveExercise persists all scalar fields of an existing exercise row.
func SaveExercise(ctx context.Context, db *gorm.DB, ex *domain.RecoveryExercise) error {
	return db.WithContext(ctx).Save(ex).Error
}

// DeleteExercise removes an exercise row by ID. It returns ErrNotFound when
// no row was deleted.
func DeleteExercise(ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Delete(&domain.RecoveryExercise{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListExerciseInjuries returns the injuries linked to an exercise, ordered
// by injury ID.
func ListExerciseInjuries(ctx context.Context, db *gorm.DB, exerciseID uint) ([]domain.Injury, error) {
	var out []domain.Injury
	err := db.WithContext(ctx).
		Joins("JOIN injury_recovery_exercises ire ON ire.injury_id = injuries.id").
		Where("ire.recovery_exercise_id = ?", exerciseID).
		Order("injuries.id asc").
		Find(&out).Error
	return out, err
}

// CreateExerciseLinks inserts one link row per injury ID for the given
// exercise. Callers validate the IDs first.
func CreateExerciseLinks(ctx context.Context, db *gorm.DB, exerciseID uint, injuryIDs []uint) error {
	if len(injuryIDs) == 0 {
		return nil
	}
	links := make([]domain.InjuryRecoveryExercise, 0, len(injuryIDs))
	for _, id := range injuryIDs {
		links = append(links, domain.InjuryRecoveryExercise{InjuryID: id, RecoveryExerciseID: exerciseID})
	}
	return db.WithContext(ctx).Create(&links).Error
}

// DeleteExerciseLinks removes every injury link of the given exercise.
func DeleteExerciseLinks(ctx context.Context, db *gorm.DB, exerciseID uint) error {
	return db.WithContext(ctx).
		Delete(&domain.InjuryRecoveryExercise{}, "recovery_exercise_id = ?", exerciseID).Error
}

// ListExistingInjuryIDs returns the subset of the given injury IDs that
// actually exist, for bulk cross-reference validation.
func ListExistingInjuryIDs(ctx context.Context, db *gorm.DB, ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []uint
	err := db.WithContext(ctx).
		Model(&domain.Injury{}).
		Where("id IN ?", ids).
		Pluck("id", &out).Error
	return out, err
}
