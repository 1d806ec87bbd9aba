// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the AppUser
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/avasilev/go-recovery-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateUser inserts a new AppUser row with a generated UUID primary key.
// The caller provides the already-hashed password. On success the persisted
// user is returned; constraint violations surface as the raw gorm error.
func CreateUser(ctx context.Context, db *gorm.DB, username, email, passwordHash string, role domain.Role) (*domain.AppUser, error) {
	u := &domain.AppUser{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// GetUser fetches a single user by primary key, or ErrNotFound if missing.
func GetUser(ctx context.Context, db *gorm.DB, id string) (*domain.AppUser, error) {
	var u domain.AppUser
	err := db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindUserByLogin fetches a user whose username or email matches the given
// login, compared case-insensitively. The caller passes the login already
// case-folded; the stored columns are lowered in SQL.
func FindUserByLogin(ctx context.Context, db *gorm.DB, folded string) (*domain.AppUser, error) {
	var u domain.AppUser
	err := db.WithContext(ctx).
		Where("LOWER(username) = ? OR LOWER(email) = ?", folded, folded).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CountUsersByLogin returns how many users already hold the given username or
// email (case-insensitive). Used to reject duplicate registrations before the
// unique index fires.
func CountUsersByLogin(ctx context.Context, db *gorm.DB, username, email string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.AppUser{}).
		Where("LOWER(username) = ? OR LOWER(email) = ?", username, email).
		Count(&total).Error
	return total, err
}
