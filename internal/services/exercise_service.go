// Package services – ExerciseService
//
// This file implements the recovery-exercise catalog. It is the mirror image
// of the injury catalog over the same link table: listing, lookup, and
// create/update/delete with bulk-validated injury references. See
// injury_service.go for the shared validation semantics.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/avasilev/go-recovery-backend/internal/domain"
	"github.com/avasilev/go-recovery-backend/internal/repo"
)

// ExerciseService implements the use-cases around the exercise catalog.
type ExerciseService struct {
	// DB is the database handle used for all catalog operations.
	DB *gorm.DB
}

// List returns one page of exercises with their linked injuries plus the
// total number of exercises.
func (s *ExerciseService) List(ctx context.Context, offset, limit int) ([]ExerciseInfo, int64, error) {
	total, err := repo.CountExercises(ctx, s.DB)
	if err != nil {
		return nil, 0, err
	}
	rows, err := repo.ListExercisesPage(ctx, s.DB, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	out := make([]ExerciseInfo, 0, len(rows))
	for i := range rows {
		info, err := s.compose(ctx, s.DB, &rows[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *info)
	}
	return out, total, nil
}

// Get returns one exercise with its linked injuries, or ErrExerciseNotFound.
func (s *ExerciseService) Get(ctx context.Context, id uint) (*ExerciseInfo, error) {
	ex, err := repo.GetExercise(ctx, s.DB, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return s.compose(ctx, s.DB, ex)
}

// Create persists a new exercise together with its injury links. Zero IDs are
// dropped, the rest are validated in bulk, and everything is written in one
// transaction.
func (s *ExerciseService) Create(ctx context.Context, name, description string, injuryIDs []uint) (*ExerciseInfo, error) {
	ids := dropZeroIDs(injuryIDs)

	var out *ExerciseInfo
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := validateInjuryIDs(ctx, tx, ids); err != nil {
			return err
		}

		ex := &domain.RecoveryExercise{Name: name, Description: description}
		if err := repo.CreateExercise(ctx, tx, ex); err != nil {
			return err
		}
		if err := repo.CreateExerciseLinks(ctx, tx, ex.ID, ids); err != nil {
			return err
		}

		var err error
		out, err = s.compose(ctx, tx, ex)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the scalars and the full link set of an existing exercise.
// Validation happens before any write: a rejected update leaves the previous
// link set intact.
func (s *ExerciseService) Update(ctx context.Context, id uint, name, description string, injuryIDs []uint) (*ExerciseInfo, error) {
	ids := dropZeroIDs(injuryIDs)

	var out *ExerciseInfo
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ex, err := repo.GetExercise(ctx, tx, id)
		if err != nil {
			if isNotFound(err) {
				return ErrExerciseNotFound
			}
			return err
		}

		if err := validateInjuryIDs(ctx, tx, ids); err != nil {
			return err
		}

		ex.Name = name
		ex.Description = description
		if err := repo.SaveExercise(ctx, tx, ex); err != nil {
			return err
		}

		if err := repo.DeleteExerciseLinks(ctx, tx, id); err != nil {
			return err
		}
		if err := repo.CreateExerciseLinks(ctx, tx, id, ids); err != nil {
			return err
		}

		out, err = s.compose(ctx, tx, ex)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes an exercise and its link rows, returning the deleted view.
func (s *ExerciseService) Delete(ctx context.Context, id uint) (*ExerciseInfo, error) {
	var out *ExerciseInfo
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ex, err := repo.GetExercise(ctx, tx, id)
		if err != nil {
			if isNotFound(err) {
				return ErrExerciseNotFound
			}
			return err
		}

		out, err = s.compose(ctx, tx, ex)
		if err != nil {
			return err
		}

		if err := repo.DeleteExerciseLinks(ctx, tx, id); err != nil {
			return err
		}
		return repo.DeleteExercise(ctx, tx, id)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// compose joins one exercise row with its linked injuries.
func (s *ExerciseService) compose(ctx context.Context, db *gorm.DB, ex *domain.RecoveryExercise) (*ExerciseInfo, error) {
	injuries, err := repo.ListExerciseInjuries(ctx, db, ex.ID)
	if err != nil {
		return nil, err
	}
	out := &ExerciseInfo{
		ID:          ex.ID,
		Name:        ex.Name,
		Description: ex.Description,
		Injuries:    make([]InjurySummary, 0, len(injuries)),
	}
	for _, inj := range injuries {
		out.Injuries = append(out.Injuries, InjurySummary{
			ID: inj.ID, Name: inj.Name, Description: inj.Description, BodyPart: inj.BodyPart,
		})
	}
	return out, nil
}

// validateInjuryIDs checks every referenced injury in one query and reports
// all missing IDs via InvalidIDsError.
func validateInjuryIDs(ctx context.Context, db *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	found, err := repo.ListExistingInjuryIDs(ctx, db, ids)
	if err != nil {
		return err
	}
	if missing := diffIDs(ids, found); len(missing) > 0 {
		return &InvalidIDsError{Field: "injuryIds", IDs: missing}
	}
	return nil
}
