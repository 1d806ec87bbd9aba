// Package services – AccountService
//
// This file implements registration and login. Registration enforces the
// password policy and uniqueness of username/email before hashing; doctor
// registration additionally requires the shared secret key. Login matches the
// given login string against username or email case-insensitively (Unicode
// case folding) and verifies the bcrypt hash. All three operations return an
// AuthResult carrying a freshly signed token.
package services

import (
	"context"

	"golang.org/x/text/cases"
	"gorm.io/gorm"

	"github.com/avasilev/go-recovery-backend/internal/auth"
	"github.com/avasilev/go-recovery-backend/internal/domain"
	"github.com/avasilev/go-recovery-backend/internal/repo"
)

// AccountService implements the use-cases around account creation and login.
type AccountService struct {
	// DB is the database handle used for all account operations.
	DB *gorm.DB
	// Tokens signs the JWTs returned to clients.
	Tokens *auth.JWTService
	// Hasher hashes and verifies passwords.
	Hasher *auth.PasswordHasher
	// DoctorKey is the shared secret required by doctor registration.
	DoctorKey string
}

// fold performs Unicode case folding for case-insensitive login matching.
var fold = cases.Fold()

// Register creates a User-role account and returns its first token.
//
// Validation:
//   - password must satisfy the policy; otherwise ErrWeakPassword.
//   - username and email must both be unused (case-insensitive); otherwise
//     ErrDuplicateUser.
func (s *AccountService) Register(ctx context.Context, username, email, password string) (*AuthResult, error) {
	return s.register(ctx, username, email, password, domain.RoleUser)
}

// RegisterDoctor creates a Doctor-role account. The shared secretKey must
// match the configured doctor key; otherwise ErrInvalidDoctorKey.
func (s *AccountService) RegisterDoctor(ctx context.Context, username, email, password, secretKey string) (*AuthResult, error) {
	if s.DoctorKey == "" || secretKey != s.DoctorKey {
		return nil, ErrInvalidDoctorKey
	}
	return s.register(ctx, username, email, password, domain.RoleDoctor)
}

func (s *AccountService) register(ctx context.Context, username, email, password string, role domain.Role) (*AuthResult, error) {
	if !auth.StrongPassword(password) {
		return nil, ErrWeakPassword
	}

	var user *domain.AppUser
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := repo.CountUsersByLogin(ctx, tx, fold.String(username), fold.String(email))
		if err != nil {
			return err
		}
		if taken > 0 {
			return ErrDuplicateUser
		}

		hash, err := s.Hasher.Hash(password)
		if err != nil {
			return err
		}

		// The count above matches case-folded values; the unique indexes
		// compare raw columns. A clash that slips past the check (folding
		// disagreement or a concurrent registration) is still a duplicate.
		user, err = repo.CreateUser(ctx, tx, username, email, hash, role)
		if err != nil && isDuplicate(err) {
			return ErrDuplicateUser
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	token, err := s.Tokens.Generate(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Username: user.Username, Email: user.Email, Token: token}, nil
}

// Login authenticates a user by username or email (case-insensitive) and
// password. Any failure yields ErrInvalidCredentials; the caller learns
// nothing about which check failed.
func (s *AccountService) Login(ctx context.Context, login, password string) (*AuthResult, error) {
	user, err := repo.FindUserByLogin(ctx, s.DB, fold.String(login))
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.Hasher.Verify(password, user.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.Tokens.Generate(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Username: user.Username, Email: user.Email, Token: token}, nil
}
