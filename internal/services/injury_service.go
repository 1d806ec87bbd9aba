// Package services – InjuryService
//
// This file implements the injury catalog: paginated listing, lookup, and the
// create/update/delete operations that maintain the links to recovery
// exercises. Link IDs equal to zero are ignored; every remaining ID is
// validated in bulk before anything is written, and an InvalidIDsError names
// all offending IDs at once. Creates and updates run inside a transaction, so
// a rejected request leaves both the row and its link set untouched.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/avasilev/go-recovery-backend/internal/domain"
	"github.com/avasilev/go-recovery-backend/internal/repo"
)

// InjuryService implements the use-cases around the injury catalog.
type InjuryService struct {
	// DB is the database handle used for all catalog operations.
	DB *gorm.DB
}

// List returns one page of injuries with their linked exercises plus the
// total number of injuries.
func (s *InjuryService) List(ctx context.Context, offset, limit int) ([]InjuryInfo, int64, error) {
	total, err := repo.CountInjuries(ctx, s.DB)
	if err != nil {
		return nil, 0, err
	}
	rows, err := repo.ListInjuriesPage(ctx, s.DB, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	out := make([]InjuryInfo, 0, len(rows))
	for i := range rows {
		info, err := s.compose(ctx, s.DB, &rows[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *info)
	}
	return out, total, nil
}

// Get returns one injury with its linked exercises, or ErrInjuryNotFound.
func (s *InjuryService) Get(ctx context.Context, id uint) (*InjuryInfo, error) {
	inj, err := repo.GetInjury(ctx, s.DB, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInjuryNotFound
		}
		return nil, err
	}
	return s.compose(ctx, s.DB, inj)
}

// Create persists a new injury together with its exercise links.
//
// Semantics:
//   - Exercise IDs equal to zero are dropped before validation.
//   - All remaining IDs are checked in one query; missing ones are reported
//     together via InvalidIDsError and nothing is persisted.
//   - Row and links are written in one transaction.
func (s *InjuryService) Create(ctx context.Context, name, description, bodyPart string, exerciseIDs []uint) (*InjuryInfo, error) {
	ids := dropZeroIDs(exerciseIDs)

	var out *InjuryInfo
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := validateExerciseIDs(ctx, tx, ids); err != nil {
			return err
		}

		inj := &domain.Injury{Name: name, Description: description, BodyPart: bodyPart}
		if err := repo.CreateInjury(ctx, tx, inj); err != nil {
			return err
		}
		if err := repo.CreateInjuryLinks(ctx, tx, inj.ID, ids); err != nil {
			return err
		}

		var err error
		out, err = s.compose(ctx, tx, inj)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the scalars and the full link set of an existing injury.
// Validation happens before any write: a rejected update leaves the previous
// link set intact.
func (s *InjuryService) Update(ctx context.Context, id uint, name, description, bodyPart string, exerciseIDs []uint) (*InjuryInfo, error) {
	ids := dropZeroIDs(exerciseIDs)

	var out *InjuryInfo
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inj, err := repo.GetInjury(ctx, tx, id)
		if err != nil {
			if isNotFound(err) {
				return ErrInjuryNotFound
			}
			return err
		}

		if err := validateExerciseIDs(ctx, tx, ids); err != nil {
			return err
		}

		inj.Name = name
		inj.Description = description
		inj.BodyPart = bodyPart
		if err := repo.SaveInjury(ctx, tx, inj); err != nil {
			return err
		}

		if err := repo.DeleteInjuryLinks(ctx, tx, id); err != nil {
			return err
		}
		if err := repo.CreateInjuryLinks(ctx, tx, id, ids); err != nil {
			return err
		}

		out, err = s.compose(ctx, tx, inj)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes an injury and its link rows, returning the deleted view.
func (s *InjuryService) Delete(ctx context.Context, id uint) (*InjuryInfo, error) {
	var out *InjuryInfo
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inj, err := repo.GetInjury(ctx, tx, id)
		if err != nil {
			if isNotFound(err) {
				return ErrInjuryNotFound
			}
			return err
		}

		out, err = s.compose(ctx, tx, inj)
		if err != nil {
			return err
		}

		if err := repo.DeleteInjuryLinks(ctx, tx, id); err != nil {
			return err
		}
		return repo.DeleteInjury(ctx, tx, id)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// compose joins one injury row with its linked exercises.
func (s *InjuryService) compose(ctx context.Context, db *gorm.DB, inj *domain.Injury) (*InjuryInfo, error) {
	exercises, err := repo.ListInjuryExercises(ctx, db, inj.ID)
	if err != nil {
		return nil, err
	}
	out := &InjuryInfo{
		ID:                inj.ID,
		Name:              inj.Name,
		Description:       inj.Description,
		BodyPart:          inj.BodyPart,
		RecoveryExercises: make([]ExerciseSummary, 0, len(exercises)),
	}
	for _, ex := range exercises {
		out.RecoveryExercises = append(out.RecoveryExercises, ExerciseSummary{
			ID: ex.ID, Name: ex.Name, Description: ex.Description,
		})
	}
	return out, nil
}

// dropZeroIDs removes zero entries and duplicates while preserving order.
func dropZeroIDs(ids []uint) []uint {
	out := make([]uint, 0, len(ids))
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// validateExerciseIDs checks every referenced exercise in one query and
// reports all missing IDs via InvalidIDsError.
func validateExerciseIDs(ctx context.Context, db *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	found, err := repo.ListExistingExerciseIDs(ctx, db, ids)
	if err != nil {
		return err
	}
	if missing := diffIDs(ids, found); len(missing) > 0 {
		return &InvalidIDsError{Field: "recoveryExerciseIds", IDs: missing}
	}
	return nil
}

// diffIDs returns the members of want absent from have, in want's order.
func diffIDs(want, have []uint) []int64 {
	present := make(map[uint]struct{}, len(have))
	for _, id := range have {
		present[id] = struct{}{}
	}
	var missing []int64
	for _, id := range want {
		if _, ok := present[id]; !ok {
			missing = append(missing, int64(id))
		}
	}
	return missing
}
