// Package services – DoctorService
//
// This file implements the doctor-side use-cases: patient listings over the
// user-injury table, claiming and releasing severe injuries, and the full
// lifecycle of doctor-authored recovery plans. A doctor may author a plan for
// a user only while assigned to at least one of that user's injuries
// (ErrDoctorNotLinked otherwise), and can only ever see plans they authored
// themselves.
package services

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/avasilev/go-recovery-backend/internal/domain"
	"github.com/avasilev/go-recovery-backend/internal/repo"
)

// PlanExerciseInput is one exercise prescription inside a plan payload.
type PlanExerciseInput struct {
	RecoveryExerciseID uint `json:"recoveryExerciseId" binding:"required"`
	Sets               *int `json:"sets"`
	Reps               *int `json:"reps"`
	Duration           *int `json:"duration"`
}

// WorkoutDayInput is one day inside a plan payload.
type WorkoutDayInput struct {
	DayNumber int                 `json:"dayNumber" binding:"required"`
	Exercises []PlanExerciseInput `json:"exercises"`
}

// PlanInput is the payload for creating or replacing a doctor-authored plan.
type PlanInput struct {
	AppUserID   string            `json:"appUserId" binding:"required"`
	Name        string            `json:"name" binding:"required"`
	WorkoutDays []WorkoutDayInput `json:"workoutDays"`
}

// DoctorService implements the use-cases reserved for the Doctor role.
type DoctorService struct {
	// DB is the database handle used for all doctor operations.
	DB *gorm.DB
}

// SeverePatients returns every severe user-injury link with the patient's
// username. An empty result yields ErrNoPatients.
func (s *DoctorService) SeverePatients(ctx context.Context) ([]repo.PatientRow, error) {
	rows, err := repo.ListSeverePatients(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoPatients
	}
	return rows, nil
}

// AvailablePatients returns the severe links with no doctor assigned yet.
func (s *DoctorService) AvailablePatients(ctx context.Context) ([]repo.PatientRow, error) {
	return repo.ListAvailablePatients(ctx, s.DB)
}

// MyPatients returns the links currently assigned to the calling doctor.
func (s *DoctorService) MyPatients(ctx context.Context, doctorID string) ([]repo.PatientRow, error) {
	return repo.ListDoctorPatients(ctx, s.DB, doctorID)
}

// AssignSelf claims a severe user-injury for the calling doctor.
//
// Semantics:
//   - The (user, injury) link must exist; otherwise ErrUserInjuryNotFound.
//   - The injury must be marked severe; otherwise ErrNotSevere.
//   - Last write wins: a link already claimed by another doctor is
//     reassigned without conflict detection.
func (s *DoctorService) AssignSelf(ctx context.Context, doctorID, userID string, injuryID uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ui, err := repo.GetUserInjury(ctx, tx, userID, injuryID)
		if err != nil {
			if isNotFound(err) {
				return ErrUserInjuryNotFound
			}
			return err
		}
		if !ui.IsTooSevere {
			return ErrNotSevere
		}
		return repo.SetUserInjuryDoctor(ctx, tx, userID, injuryID, &doctorID)
	})
}

// UnassignSelf releases a user-injury previously claimed by the calling
// doctor. A caller who is not the assigned doctor gets ErrNotAssignedDoctor.
func (s *DoctorService) UnassignSelf(ctx context.Context, doctorID, userID string, injuryID uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ui, err := repo.GetUserInjury(ctx, tx, userID, injuryID)
		if err != nil {
			if isNotFound(err) {
				return ErrUserInjuryNotFound
			}
			return err
		}
		if ui.DoctorID == nil || *ui.DoctorID != doctorID {
			return ErrNotAssignedDoctor
		}
		return repo.SetUserInjuryDoctor(ctx, tx, userID, injuryID, nil)
	})
}

// ListPlans returns every plan authored by the calling doctor.
func (s *DoctorService) ListPlans(ctx context.Context, doctorID string) ([]PlanInfo, error) {
	plans, err := repo.ListPlansForDoctor(ctx, s.DB, doctorID)
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

// GetPlan returns one doctor-authored plan, or ErrPlanNotFound.
func (s *DoctorService) GetPlan(ctx context.Context, doctorID string, id uint) (*PlanInfo, error) {
	plan, err := repo.GetPlanForDoctor(ctx, s.DB, id, doctorID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return composePlan(ctx, s.DB, plan)
}

// CreatePlan validates and materializes a full doctor-authored plan for the
// target user in one transaction, returning the composed view.
//
// Validation order:
//   - the caller must be linked to the target user (ErrDoctorNotLinked);
//   - the target user must exist (ErrUserNotFound);
//   - the name must be 1-40 characters after trimming (ErrPlanName);
//   - at least one workout day (ErrNoWorkoutDays);
//   - every sets/reps/duration value >= 0 when present (ErrInvalidSetsReps);
//   - every exercise ID must exist, reported together (InvalidIDsError);
//   - every day number >= 1 and unique within the payload, reported
//     together (InvalidIDsError);
//   - no exercise listed twice on the same day (InvalidIDsError).
func (s *DoctorService) CreatePlan(ctx context.Context, doctorID string, in PlanInput) (*PlanInfo, error) {
	tr := otel.Tracer("services/DoctorService")
	ctx, span := tr.Start(ctx, "CreatePlan",
		trace.WithAttributes(
			attribute.String("doctor.id", doctorID),
			attribute.String("patient.id", in.AppUserID),
			attribute.Int("plan.days", len(in.WorkoutDays)),
		),
	)
	defer span.End()

	var out *PlanInfo
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		plan := &domain.RecoveryPlan{
			AppUserID:         in.AppUserID,
			IsCreatedByDoctor: true,
			DoctorID:          &doctorID,
		}
		name, err := s.validatePlanInput(ctx, tx, doctorID, in)
		if err != nil {
			return err
		}
		plan.Name = name

		if err := repo.CreatePlan(ctx, tx, plan); err != nil {
			return err
		}
		if err := buildPlanTree(ctx, tx, plan.ID, in.WorkoutDays); err != nil {
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

// UpdatePlan replaces an existing doctor-authored plan with the given
// payload. All workout days are deleted and rebuilt from the input; the whole
// replacement runs in one transaction, so a rejected payload leaves the
// previous tree intact.
func (s *DoctorService) UpdatePlan(ctx context.Context, doctorID string, id uint, in PlanInput) (*PlanInfo, error) {
	tr := otel.Tracer("services/DoctorService")
	ctx, span := tr.Start(ctx, "UpdatePlan",
		trace.WithAttributes(
			attribute.String("doctor.id", doctorID),
			attribute.Int("plan.id", int(id)),
			attribute.Int("plan.days", len(in.WorkoutDays)),
		),
	)
	defer span.End()

	var out *PlanInfo
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		plan, err := repo.GetPlanForDoctor(ctx, tx, id, doctorID)
		if err != nil {
			if isNotFound(err) {
				return ErrPlanNotFound
			}
			return err
		}

		name, err := s.validatePlanInput(ctx, tx, doctorID, in)
		if err != nil {
			return err
		}

		plan.Name = name
		plan.AppUserID = in.AppUserID
		if err := repo.SavePlan(ctx, tx, plan); err != nil {
			return err
		}

		if err := repo.DeleteAssignmentsForPlan(ctx, tx, plan.ID); err != nil {
			return err
		}
		if err := repo.DeleteWorkoutDaysForPlan(ctx, tx, plan.ID); err != nil {
			return err
		}
		if err := buildPlanTree(ctx, tx, plan.ID, in.WorkoutDays); err != nil {
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

// DeletePlan removes one doctor-authored plan with its days and assignments.
func (s *DoctorService) DeletePlan(ctx context.Context, doctorID string, id uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		plan, err := repo.GetPlanForDoctor(ctx, tx, id, doctorID)
		if err != nil {
			if isNotFound(err) {
				return ErrPlanNotFound
			}
			return err
		}
		return deletePlanTree(ctx, tx, plan.ID)
	})
}

// validatePlanInput runs the full plan validation chain and returns the
// trimmed name.
func (s *DoctorService) validatePlanInput(ctx context.Context, tx *gorm.DB, doctorID string, in PlanInput) (string, error) {
	linked, err := repo.DoctorLinkedToUser(ctx, tx, doctorID, in.AppUserID)
	if err != nil {
		return "", err
	}
	if !linked {
		return "", ErrDoctorNotLinked
	}

	if _, err := repo.GetUser(ctx, tx, in.AppUserID); err != nil {
		if isNotFound(err) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" || len(name) > maxPlanName {
		return "", ErrPlanName
	}

	if len(in.WorkoutDays) == 0 {
		return "", ErrNoWorkoutDays
	}

	var exerciseIDs []uint
	var badDays, dupExercises []int64
	requested := make(map[uint]struct{})
	dayNumbers := make(map[int]struct{}, len(in.WorkoutDays))
	for _, day := range in.WorkoutDays {
		// A day number below 1 and a repeated day number are both rejected;
		// repeats would otherwise die on the per-plan unique index.
		if day.DayNumber < 1 {
			badDays = append(badDays, int64(day.DayNumber))
		} else if _, dup := dayNumbers[day.DayNumber]; dup {
			badDays = append(badDays, int64(day.DayNumber))
		}
		dayNumbers[day.DayNumber] = struct{}{}

		inDay := make(map[uint]struct{}, len(day.Exercises))
		for _, ex := range day.Exercises {
			if negative(ex.Sets) || negative(ex.Reps) || negative(ex.Duration) {
				return "", ErrInvalidSetsReps
			}
			if _, dup := inDay[ex.RecoveryExerciseID]; dup {
				dupExercises = append(dupExercises, int64(ex.RecoveryExerciseID))
			}
			inDay[ex.RecoveryExerciseID] = struct{}{}

			if _, seen := requested[ex.RecoveryExerciseID]; !seen {
				requested[ex.RecoveryExerciseID] = struct{}{}
				exerciseIDs = append(exerciseIDs, ex.RecoveryExerciseID)
			}
		}
	}

	// The distinct requested set is validated as-is: an explicit zero is an
	// unknown reference like any other and belongs in the invalid-IDs report.
	if err := validateExerciseIDs(ctx, tx, exerciseIDs); err != nil {
		return "", err
	}
	if len(badDays) > 0 {
		return "", &InvalidIDsError{Field: "dayNumbers", IDs: badDays}
	}
	if len(dupExercises) > 0 {
		return "", &InvalidIDsError{Field: "duplicateRecoveryExerciseIds", IDs: dupExercises}
	}
	return name, nil
}

// buildPlanTree writes the day and assignment rows of a validated payload.
func buildPlanTree(ctx context.Context, tx *gorm.DB, planID uint, days []WorkoutDayInput) error {
	for _, day := range days {
		d := &domain.WorkoutDay{DayNumber: day.DayNumber, RecoveryPlanID: planID}
		if err := repo.CreateWorkoutDay(ctx, tx, d); err != nil {
			return err
		}
		for _, ex := range day.Exercises {
			a := &domain.RecoveryPlanExercise{
				WorkoutDayID:       d.ID,
				RecoveryExerciseID: ex.RecoveryExerciseID,
				Sets:               ex.Sets,
				Reps:               ex.Reps,
				Duration:           ex.Duration,
			}
			if err := repo.CreateAssignment(ctx, tx, a); err != nil {
				return err
			}
		}
	}
	return nil
}
