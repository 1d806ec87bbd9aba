// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the UserInjury
// link table and the doctor-assignment queries built on top of it.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/avasilev/go-recovery-backend/internal/domain"
)

// PatientRow is the joined projection used by the doctor listings: one
// user-injury link together with the patient's username.
type PatientRow struct {
	AppUserID   string `json:"appUserId"`
	InjuryID    uint   `json:"injuryId"`
	Username    string `json:"username"`
	IsTooSevere bool   `json:"isTooSevere"`
}

// ListUserInjuries returns every injury link of one user, ordered by injury ID.
func ListUserInjuries(ctx context.Context, db *gorm.DB, userID string) ([]domain.UserInjury, error) {
	var out []domain.UserInjury
	err := db.WithContext(ctx).
		Where("app_user_id = ?", userID).
		Order("injury_id asc").
		Find(&out).Error
	return out, err
}

// GetUserInjury fetches one (user, injury) link, or ErrNotFound.
func GetUserInjury(ctx context.Context, db *gorm.DB, userID string, injuryID uint) (*domain.UserInjury, error) {
	var ui domain.UserInjury
	err := db.WithContext(ctx).
		Where("app_user_id = ? AND injury_id = ?", userID, injuryID).
		First(&ui).Error
	if err != nil {
		return nil, err
	}
	return &ui, nil
}

// CreateUserInjury inserts one link row.
func CreateUserInjury(ctx context.Context, db *gorm.DB, ui *domain.UserInjury) error {
	return db.WithContext(ctx).Create(ui).Error
}

// UpdateUserInjurySeverity sets the severity flag of an existing link.
func UpdateUserInjurySeverity(ctx context.Context, db *gorm.DB, userID string, injuryID uint, severe bool) error {
	return db.WithContext(ctx).
		Model(&domain.UserInjury{}).
		Where("app_user_id = ? AND injury_id = ?", userID, injuryID).
		Update("is_too_severe", severe).Error
}

// DeleteUserInjury removes one link row. It returns ErrNotFound when no row
// was deleted.
func DeleteUserInjury(ctx context.Context, db *gorm.DB, userID string, injuryID uint) error {
	res := db.WithContext(ctx).
		Delete(&domain.UserInjury{}, "app_user_id = ? AND injury_id = ?", userID, injuryID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetUserInjuryDoctor writes (or clears, with nil) the doctor assigned to a
// link. Last write wins; there is no conflict detection.
func SetUserInjuryDoctor(ctx context.Context, db *gorm.DB, userID string, injuryID uint, doctorID *string) error {
	return db.WithContext(ctx).
		Model(&domain.UserInjury{}).
		Where("app_user_id = ? AND injury_id = ?", userID, injuryID).
		Update("doctor_id", doctorID).Error
}

// ListSeverePatients returns every severe user-injury link joined with the
// patient's username.
func ListSeverePatients(ctx context.Context, db *gorm.DB) ([]PatientRow, error) {
	var out []PatientRow
	err := db.WithContext(ctx).
		Model(&domain.UserInjury{}).
		Select("user_injuries.app_user_id, user_injuries.injury_id, app_users.username, user_injuries.is_too_severe").
		Joins("JOIN app_users ON app_users.id = user_injuries.app_user_id").
		Where("user_injuries.is_too_severe = ?", true).
		Order("user_injuries.app_user_id asc, user_injuries.injury_id asc").
		Scan(&out).Error
	return out, err
}

// ListAvailablePatients returns the severe links with no doctor assigned yet.
func ListAvailablePatients(ctx context.Context, db *gorm.DB) ([]PatientRow, error) {
	var out []PatientRow
	err := db.WithContext(ctx).
		Model(&domain.UserInjury{}).
		Select("user_injuries.app_user_id, user_injuries.injury_id, app_users.username, user_injuries.is_too_severe").
		Joins("JOIN app_users ON app_users.id = user_injuries.app_user_id").
		Where("user_injuries.is_too_severe = ? AND user_injuries.doctor_id IS NULL", true).
		Order("user_injuries.app_user_id asc, user_injuries.injury_id asc").
		Scan(&out).Error
	return out, err
}

// ListDoctorPatients returns the links currently assigned to doctorID.
func ListDoctorPatients(ctx context.Context, db *gorm.DB, doctorID string) ([]PatientRow, error) {
	var out []PatientRow
	err := db.WithContext(ctx).
		Model(&domain.UserInjury{}).
		Select("user_injuries.app_user_id, user_injuries.injury_id, app_users.username, user_injuries.is_too_severe").
		Joins("JOIN app_users ON app_users.id = user_injuries.app_user_id").
		Where("user_injuries.doctor_id = ?", doctorID).
		Order("user_injuries.app_user_id asc, user_injuries.injury_id asc").
		Scan(&out).Error
	return out, err
}

// DoctorLinkedToUser reports whether doctorID is assigned to at least one of
// the user's injuries. It gates doctor-authored plan creation.
func DoctorLinkedToUser(ctx context.Context, db *gorm.DB, doctorID, userID string) (bool, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.UserInjury{}).
		Where("doctor_id = ? AND app_user_id = ?", doctorID, userID).
		Count(&total).Error
	return total > 0, err
}
