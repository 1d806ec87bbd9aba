// Package seed – loading
//
// Load inserts the built-in catalog into an empty database and is a no-op on
// a populated one, so restarts are safe. Demo accounts are optional and only
// created when their credentials are configured.
package seed

import (
	"context"

	"golang.org/x/text/cases"
	"gorm.io/gorm"

	"github.com/avasilev/go-recovery-backend/internal/auth"
	"github.com/avasilev/go-recovery-backend/internal/domain"
	"github.com/avasilev/go-recovery-backend/internal/repo"
)

// Load populates the catalog tables when they are empty. Each table is
// guarded by its own count so a partially seeded database heals itself.
func Load(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&domain.RecoveryExercise{}).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			if err := tx.Create(&Exercises).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&domain.Injury{}).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			if err := tx.Create(&Injuries).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&domain.InjuryRecoveryExercise{}).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			if err := tx.Create(&Links).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

var folder = cases.Fold()

// fold case-folds a login string the same way the account service does.
func fold(s string) string { return folder.String(s) }

// DemoUser describes one optional account to create at startup.
type DemoUser struct {
	Role     domain.Role
	Username string
	Email    string
	Password string
}

// EnsureUsers creates each demo account unless a user with the same username
// or email already exists. Entries with missing fields are skipped.
func EnsureUsers(ctx context.Context, db *gorm.DB, hasher *auth.PasswordHasher, users []DemoUser) error {
	for _, u := range users {
		if u.Username == "" || u.Email == "" || u.Password == "" {
			continue
		}
		taken, err := repo.CountUsersByLogin(ctx, db, fold(u.Username), fold(u.Email))
		if err != nil {
			return err
		}
		if taken > 0 {
			continue
		}
		hash, err := hasher.Hash(u.Password)
		if err != nil {
			return err
		}
		if _, err := repo.CreateUser(ctx, db, u.Username, u.Email, hash, u.Role); err != nil {
			return err
		}
	}
	return nil
}
