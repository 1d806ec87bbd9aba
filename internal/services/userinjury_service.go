// Package services – UserInjuryService
//
// This file implements the caller's own injury list: viewing current
// injuries with their recommended exercises, assigning an injury (which opens
// a history interval on first assignment), and unassigning it (which closes
// the most recent open interval, best-effort).
package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/avasilev/go-recovery-backend/internal/domain"
	"github.com/avasilev/go-recovery-backend/internal/repo"
)

// UserInjuryService implements the use-cases around a user's own injuries.
type UserInjuryService struct {
	// DB is the database handle used for all user-injury operations.
	DB *gorm.DB
}

// ListMine returns the caller's injuries with the exercises linked to each.
func (s *UserInjuryService) ListMine(ctx context.Context, userID string) ([]UserInjuryInfo, error) {
	links, err := repo.ListUserInjuries(ctx, s.DB, userID)
	if err != nil {
		return nil, err
	}

	out := make([]UserInjuryInfo, 0, len(links))
	for _, link := range links {
		inj, err := repo.GetInjury(ctx, s.DB, link.InjuryID)
		if err != nil {
			return nil, err
		}
		exercises, err := repo.ListInjuryExercises(ctx, s.DB, link.InjuryID)
		if err != nil {
			return nil, err
		}

		info := UserInjuryInfo{
			InjuryID:          inj.ID,
			Name:              inj.Name,
			Description:       inj.Description,
			BodyPart:          inj.BodyPart,
			IsTooSevere:       link.IsTooSevere,
			RecoveryExercises: make([]ExerciseSummary, 0, len(exercises)),
		}
		for _, ex := range exercises {
			info.RecoveryExercises = append(info.RecoveryExercises, ExerciseSummary{
				ID: ex.ID, Name: ex.Name, Description: ex.Description,
			})
		}
		out = append(out, info)
	}
	return out, nil
}

// Assign links an injury to the caller.
//
// Semantics:
//   - The injury must exist in the catalog; otherwise ErrInjuryNotFound.
//   - First assignment creates the link and opens a history interval.
//   - Re-assignment only updates the severity flag; no new interval is
//     opened.
func (s *UserInjuryService) Assign(ctx context.Context, userID string, injuryID uint, severe bool) (*AssignedInjury, error) {
	var out *AssignedInjury
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inj, err := repo.GetInjury(ctx, tx, injuryID)
		if err != nil {
			if isNotFound(err) {
				return ErrInjuryNotFound
			}
			return err
		}

		_, err = repo.GetUserInjury(ctx, tx, userID, injuryID)
		switch {
		case err == nil:
			if err := repo.UpdateUserInjurySeverity(ctx, tx, userID, injuryID, severe); err != nil {
				return err
			}
		case isNotFound(err):
			link := &domain.UserInjury{AppUserID: userID, InjuryID: injuryID, IsTooSevere: severe}
			if err := repo.CreateUserInjury(ctx, tx, link); err != nil {
				return err
			}
			if err := repo.OpenHistory(ctx, tx, userID, injuryID); err != nil {
				return err
			}
		default:
			return err
		}

		out = &AssignedInjury{
			InjuryID:    inj.ID,
			Name:        inj.Name,
			Description: inj.Description,
			IsTooSevere: severe,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Unassign removes the caller's link to an injury and stamps the end date on
// the most recent open history interval. A missing link yields
// ErrUserInjuryNotFound.
func (s *UserInjuryService) Unassign(ctx context.Context, userID string, injuryID uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repo.DeleteUserInjury(ctx, tx, userID, injuryID); err != nil {
			if isNotFound(err) {
				return ErrUserInjuryNotFound
			}
			return err
		}
		return repo.CloseLatestHistory(ctx, tx, userID, injuryID, time.Now().UTC())
	})
}
