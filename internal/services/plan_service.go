// Package services – PlanService
//
// This file implements the user-facing recovery-plan operations: listing and
// fetching the caller's own plans, creating an empty plan, and the per-day
// exercise assignment and removal. Every lookup is scoped to the calling user;
// a plan belonging to somebody else surfaces as ErrPlanNotFound, never as a
// permission error, so existence is not leaked.
//
// Assignment semantics:
//   - Day numbers start at 1; sets, reps and duration must be >= 0 when
//     present.
//   - Assigning to a day that does not exist yet creates the day; assigning
//     an exercise already on the day updates it in place.
//   - Removing the last assignment of a day removes the day itself.
package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/avasilev/go-recovery-backend/internal/domain"
	"github.com/avasilev/go-recovery-backend/internal/repo"
)

// maxPlanName is the longest accepted plan name after trimming.
const maxPlanName = 40

// PlanService implements the use-cases around user-owned recovery plans.
type PlanService struct {
	// DB is the database handle used for all plan operations.
	DB *gorm.DB
}

// ListMine returns every plan owned by userID, days ordered by number.
func (s *PlanService) ListMine(ctx context.Context, userID string) ([]PlanInfo, error) {
	plans, err := repo.ListPlansForUser(ctx, s.DB, userID)
	if err != nil {
		return nil, err
	}
	out := make([]PlanInfo, 0, len(plans))
	for i := range plans {
		info, err := composePlan(ctx, s.DB, &plans[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *info)
	}
	return out, nil
}

// GetMine returns one plan owned by userID, or ErrPlanNotFound.
func (s *PlanService) GetMine(ctx context.Context, userID string, id uint) (*PlanInfo, error) {
	plan, err := repo.GetPlanForUser(ctx, s.DB, id, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return composePlan(ctx, s.DB, plan)
}

// Create inserts an empty plan for userID. The name must be non-empty after
// trimming and at most 40 characters; otherwise ErrPlanName.
func (s *PlanService) Create(ctx context.Context, userID, name string) (*PlanInfo, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || len(trimmed) > maxPlanName {
		return nil, ErrPlanName
	}

	plan := &domain.RecoveryPlan{Name: trimmed, AppUserID: userID}
	if err := repo.CreatePlan(ctx, s.DB, plan); err != nil {
		return nil, err
	}
	return composePlan(ctx, s.DB, plan)
}

// AssignExercise upserts one exercise assignment on a day of the caller's
// plan and returns the refreshed plan.
func (s *PlanService) AssignExercise(ctx context.Context, userID string, planID, exerciseID uint, dayNumber int, sets, reps, duration *int) (*PlanInfo, error) {
	if dayNumber < 1 {
		return nil, ErrInvalidDayNumber
	}
	if negative(sets) || negative(reps) || negative(duration) {
		return nil, ErrInvalidSetsReps
	}

	var out *PlanInfo
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		plan, err := repo.GetPlanForUser(ctx, tx, planID, userID)
		if err != nil {
			if isNotFound(err) {
				return ErrPlanNotFound
			}
			return err
		}

		if _, err := repo.GetExercise(ctx, tx, exerciseID); err != nil {
			if isNotFound(err) {
				return ErrExerciseNotFound
			}
			return err
		}

		day, err := repo.GetWorkoutDay(ctx, tx, plan.ID, dayNumber)
		if err != nil {
			if !isNotFound(err) {
				return err
			}
			day = &domain.WorkoutDay{DayNumber: dayNumber, RecoveryPlanID: plan.ID}
			if err := repo.CreateWorkoutDay(ctx, tx, day); err != nil {
				return err
			}
		}

		assignment := &domain.RecoveryPlanExercise{
			WorkoutDayID:       day.ID,
			RecoveryExerciseID: exerciseID,
			Sets:               sets,
			Reps:               reps,
			Duration:           duration,
		}
		if _, err := repo.GetAssignment(ctx, tx, day.ID, exerciseID); err != nil {
			if !isNotFound(err) {
				return err
			}
			if err := repo.CreateAssignment(ctx, tx, assignment); err != nil {
				return err
			}
		} else if err := repo.UpdateAssignment(ctx, tx, assignment); err != nil {
			return err
		}

		out, err = composePlan(ctx, tx, plan)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveExercise deletes one assignment from a day of the caller's plan.
// The day is removed together with its last assignment. Missing plan, day,
// or assignment each surface as their own sentinel.
func (s *PlanService) RemoveExercise(ctx context.Context, userID string, planID, exerciseID uint, dayNumber int) (*PlanInfo, error) {
	var out *PlanInfo
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		plan, err := repo.GetPlanForUser(ctx, tx, planID, userID)
		if err != nil {
			if isNotFound(err) {
				return ErrPlanNotFound
			}
			return err
		}

		day, err := repo.GetWorkoutDay(ctx, tx, plan.ID, dayNumber)
		if err != nil {
			if isNotFound(err) {
				return ErrWorkoutDayNotFound
			}
			return err
		}

		if err := repo.DeleteAssignment(ctx, tx, day.ID, exerciseID); err != nil {
			if isNotFound(err) {
				return ErrAssignmentNotFound
			}
			return err
		}

		remaining, err := repo.CountAssignmentsForDay(ctx, tx, day.ID)
		if err != nil {
			return err
		}
		if remaining == 0 {
			if err := repo.DeleteWorkoutDay(ctx, tx, day.ID); err != nil {
				return err
			}
		}

		out, err = composePlan(ctx, tx, plan)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteMine removes one plan owned by userID together with its days and
// assignments.
func (s *PlanService) DeleteMine(ctx context.Context, userID string, id uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		plan, err := repo.GetPlanForUser(ctx, tx, id, userID)
		if err != nil {
			if isNotFound(err) {
				return ErrPlanNotFound
			}
			return err
		}
		return deletePlanTree(ctx, tx, plan.ID)
	})
}

// negative reports whether a nullable count holds a negative value.
func negative(v *int) bool { return v != nil && *v < 0 }

// deletePlanTree removes assignments, days, and finally the plan row.
func deletePlanTree(ctx context.Context, tx *gorm.DB, planID uint) error {
	if err := repo.DeleteAssignmentsForPlan(ctx, tx, planID); err != nil {
		return err
	}
	if err := repo.DeleteWorkoutDaysForPlan(ctx, tx, planID); err != nil {
		return err
	}
	return repo.DeletePlan(ctx, tx, planID)
}

// composePlan assembles the full plan view: days ordered by number, each with
// its assignments joined against the exercise catalog for names.
func composePlan(ctx context.Context, db *gorm.DB, plan *domain.RecoveryPlan) (*PlanInfo, error) {
	days, err := repo.ListWorkoutDays(ctx, db, plan.ID)
	if err != nil {
		return nil, err
	}

	out := &PlanInfo{
		ID:                plan.ID,
		Name:              plan.Name,
		AppUserID:         plan.AppUserID,
		IsCreatedByDoctor: plan.IsCreatedByDoctor,
		DoctorID:          plan.DoctorID,
		WorkoutDays:       make([]WorkoutDayInfo, 0, len(days)),
	}

	for _, day := range days {
		assignments, err := repo.ListAssignments(ctx, db, day.ID)
		if err != nil {
			return nil, err
		}
		dayInfo := WorkoutDayInfo{
			DayNumber: day.DayNumber,
			Exercises: make([]PlanExerciseInfo, 0, len(assignments)),
		}
		for _, a := range assignments {
			ex, err := repo.GetExercise(ctx, db, a.RecoveryExerciseID)
			if err != nil {
				return nil, err
			}
			dayInfo.Exercises = append(dayInfo.Exercises, PlanExerciseInfo{
				RecoveryExerciseID: a.RecoveryExerciseID,
				Name:               ex.Name,
				Sets:               a.Sets,
				Reps:               a.Reps,
				Duration:           a.Duration,
			})
		}
		out.WorkoutDays = append(out.WorkoutDays, dayInfo)
	}
	return out, nil
}
