// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// RecoveryPlan aggregate: plans, their workout days, and the per-day
// exercise assignments.
//
// Ownership is always part of the query. User-facing lookups filter by
// app_user_id; doctor-facing lookups filter by doctor_id together with the
// is_created_by_doctor flag, so a doctor can never touch a self-made user
// plan and vice versa.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/avasilev/go-recovery-backend/internal/domain"
)

// ListPlansForUser returns all plans owned by userID, ordered by ID.
func ListPlansForUser(ctx context.Context, db *gorm.DB, userID string) ([]domain.RecoveryPlan, error) {
	var out []domain.RecoveryPlan
	err := db.WithContext(ctx).
		Where("app_user_id = ?", userID).
		Order("id asc").
		Find(&out).Error
	return out, err
}

// GetPlanForUser fetches one plan scoped to its owner. A plan belonging to a
// different user yields ErrNotFound, never a permission error.
func GetPlanForUser(ctx context.Context, db *gorm.DB, id uint, userID string) (*domain.RecoveryPlan, error) {
	var p domain.RecoveryPlan
	err := db.WithContext(ctx).
		Where("id = ? AND app_user_id = ?", id, userID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPlansForDoctor returns the plans authored by doctorID.
func ListPlansForDoctor(ctx context.Context, db *gorm.DB, doctorID string) ([]domain.RecoveryPlan, error) {
	var out []domain.RecoveryPlan
	err := db.WithContext(ctx).
		Where("doctor_id = ? AND is_created_by_doctor = ?", doctorID, true).
		Order("id asc").
		Find(&out).Error
	return out, err
}

// GetPlanForDoctor fetches one doctor-authored plan scoped to its author.
func GetPlanForDoctor(ctx context.Context, db *gorm.DB, id uint, doctorID string) (*domain.RecoveryPlan, error) {
	var p domain.RecoveryPlan
	err := db.WithContext(ctx).
		Where("id = ? AND doctor_id = ? AND is_created_by_doctor = ?", id, doctorID, true).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePlan inserts a new plan row and returns the persisted record.
func CreatePlan(ctx context.Context, db *gorm.DB, p *domain.RecoveryPlan) error {
	return db.WithContext(ctx).Create(p).Error
}

// SavePlan persists all scalar fields of an existing plan row.
func SavePlan(ctx context.Context, db *gorm.DB, p *domain.RecoveryPlan) error {
	return db.WithContext(ctx).Save(p).Error
}

// DeletePlan removes a plan row by primary key. Day and assignment rows are
// removed by the caller within the same transaction.
func DeletePlan(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Delete(&domain.RecoveryPlan{}, "id = ?", id).Error
}

// ListWorkoutDays returns the workout days of a plan ordered by day number.
func ListWorkoutDays(ctx context.Context, db *gorm.DB, planID uint) ([]domain.WorkoutDay, error) {
	var out []domain.WorkoutDay
	err := db.WithContext(ctx).
		Where("recovery_plan_id = ?", planID).
		Order("day_number asc").
		Find(&out).Error
	return out, err
}

// GetWorkoutDay fetches the day with the given number inside a plan, or
// ErrNotFound.
func GetWorkoutDay(ctx context.Context, db *gorm.DB, planID uint, dayNumber int) (*domain.WorkoutDay, error) {
	var d domain.WorkoutDay
	err := db.WithContext(ctx).
		Where("recovery_plan_id = ? AND day_number = ?", planID, dayNumber).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// CreateWorkoutDay inserts a new day row for a plan.
func CreateWorkoutDay(ctx context.Context, db *gorm.DB, d *domain.WorkoutDay) error {
	return db.WithContext(ctx).Create(d).Error
}

// DeleteWorkoutDay removes one day row by primary key.
func DeleteWorkoutDay(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Delete(&domain.WorkoutDay{}, "id = ?", id).Error
}

// DeleteWorkoutDaysForPlan removes every day row of a plan. Assignments are
// removed separately (see DeleteAssignmentsForPlan).
func DeleteWorkoutDaysForPlan(ctx context.Context, db *gorm.DB, planID uint) error {
	return db.WithContext(ctx).
		Delete(&domain.WorkoutDay{}, "recovery_plan_id = ?", planID).Error
}

// ListAssignments returns the exercise assignments of one workout day,
// ordered by exercise ID.
func ListAssignments(ctx context.Context, db *gorm.DB, dayID uint) ([]domain.RecoveryPlanExercise, error) {
	var out []domain.RecoveryPlanExercise
	err := db.WithContext(ctx).
		Where("workout_day_id = ?", dayID).
		Order("recovery_exercise_id asc").
		Find(&out).Error
	return out, err
}

// GetAssignment fetches one (day, exercise) assignment, or ErrNotFound.
func GetAssignment(ctx context.Context, db *gorm.DB, dayID, exerciseID uint) (*domain.RecoveryPlanExercise, error) {
	var a domain.RecoveryPlanExercise
	err := db.WithContext(ctx).
		Where("workout_day_id = ? AND recovery_exercise_id = ?", dayID, exerciseID).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAssignment inserts one exercise assignment row.
func CreateAssignment(ctx context.Context, db *gorm.DB, a *domain.RecoveryPlanExercise) error {
	return db.WithContext(ctx).Create(a).Error
}

// UpdateAssignment replaces the sets/reps/duration of an existing assignment.
func UpdateAssignment(ctx context.Context, db *gorm.DB, a *domain.RecoveryPlanExercise) error {
	return db.WithContext(ctx).
		Model(&domain.RecoveryPlanExercise{}).
		Where("workout_day_id = ? AND recovery_exercise_id = ?", a.WorkoutDayID, a.RecoveryExerciseID).
		Updates(map[string]any{
			"sets":             a.Sets,
			"reps":             a.Reps,
			"duration_seconds": a.Duration,
		}).Error
}

// DeleteAssignment removes one (day, exercise) assignment row. It returns
// ErrNotFound when no row was deleted.
func DeleteAssignment(ctx context.Context, db *gorm.DB, dayID, exerciseID uint) error {
	res := db.WithContext(ctx).
		Delete(&domain.RecoveryPlanExercise{},
			"workout_day_id = ? AND recovery_exercise_id = ?", dayID, exerciseID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountAssignmentsForDay returns how many assignments remain on a day. The
// service removes the day itself when the count drops to zero.
func CountAssignmentsForDay(ctx context.Context, db *gorm.DB, dayID uint) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.RecoveryPlanExercise{}).
		Where("workout_day_id = ?", dayID).
		Count(&total).Error
	return total, err
}

// DeleteAssignmentsForPlan removes every assignment row hanging off any day
// of the plan, via a subquery on workout_days.
func DeleteAssignmentsForPlan(ctx context.Context, db *gorm.DB, planID uint) error {
	return db.WithContext(ctx).
		Where("workout_day_id IN (?)",
			db.Model(&domain.WorkoutDay{}).Select("id").Where("recovery_plan_id = ?", planID)).
		Delete(&domain.RecoveryPlanExercise{}).Error
}
