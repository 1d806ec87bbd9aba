// Package domain defines the persistence models for users, injuries, recovery
// exercises, and recovery plans. These types are mapped with GORM and form the
// core data layer of the rehabilitation backend.
//
// Relationships are expressed through explicit foreign-key columns and
// composite-key link tables; there are no navigation collections. Repositories
// perform the joins they need (see internal/repo).
package domain

import "time"

// Role is the closed set of account roles. Tokens carry exactly one of these
// values and the HTTP layer rejects anything else.
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleUser   Role = "User"
	RoleDoctor Role = "Doctor"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleDoctor:
		return true
	}
	return false
}

// AppUser is an account. The same table backs patients and doctors; the Role
// column decides which endpoints an account may call.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - Username / Email: unique, matched case-insensitively at login.
//   - PasswordHash: bcrypt hash, never serialized.
//   - Role: one of Admin, User, Doctor.
type AppUser struct {
	ID           string    `json:"id"       gorm:"type:char(36);primaryKey"`
	Username     string    `json:"username" gorm:"type:varchar(64);not null;uniqueIndex"`
	Email        string    `json:"email"    gorm:"type:varchar(128);not null;uniqueIndex"`
	PasswordHash string    `json:"-"        gorm:"type:varchar(255);not null"`
	Role         Role      `json:"role"     gorm:"type:varchar(16);not null;default:'User'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the database table name for AppUser.
func (AppUser) TableName() string { return "app_users" }

// Injury is a catalog entry describing a condition that can be assigned to
// users and linked to recovery exercises.
type Injury struct {
	ID          uint   `json:"id"          gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name"        gorm:"type:varchar(128);not null"`
	Description string `json:"description" gorm:"type:text;not null"`
	BodyPart    string `json:"bodyPart"    gorm:"type:varchar(64);not null"`
}

// TableName returns the database table name for Injury.
func (Injury) TableName() string { return "injuries" }

// RecoveryExercise is a catalog entry that injuries and recovery plans refer to.
type RecoveryExercise struct {
	ID          uint   `json:"id"          gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name"        gorm:"type:varchar(128);not null"`
	Description string `json:"description" gorm:"type:text;not null"`
}

// TableName returns the database table name for RecoveryExercise.
func (RecoveryExercise) TableName() string { return "recovery_exercises" }

// InjuryRecoveryExercise is the many-to-many link between injuries and
// recovery exercises. Composite key, no payload.
type InjuryRecoveryExercise struct {
	InjuryID           uint `json:"injuryId"           gorm:"primaryKey;autoIncrement:false"`
	RecoveryExerciseID uint `json:"recoveryExerciseId" gorm:"primaryKey;autoIncrement:false"`
}

// TableName returns the database table name for InjuryRecoveryExercise.
func (InjuryRecoveryExercise) TableName() string { return "injury_recovery_exercises" }

// UserInjury links an injury to a user. IsTooSevere marks the injury as
// requiring doctor oversight; DoctorID is set once a doctor claims it and
// stays nil otherwise.
type UserInjury struct {
	AppUserID   string  `json:"appUserId"   gorm:"type:char(36);primaryKey"`
	InjuryID    uint    `json:"injuryId"    gorm:"primaryKey;autoIncrement:false"`
	IsTooSevere bool    `json:"isTooSevere" gorm:"not null;default:false"`
	DoctorID    *string `json:"doctorId"    gorm:"type:char(36)"`
}

// TableName returns the database table name for UserInjury.
func (UserInjury) TableName() string { return "user_injuries" }

// RecoveryPlan is the aggregate root for a user's rehabilitation programme.
// Plans authored by a doctor carry IsCreatedByDoctor=true and the doctor's ID.
type RecoveryPlan struct {
	ID                uint    `json:"id"                gorm:"primaryKey;autoIncrement"`
	Name              string  `json:"name"              gorm:"type:varchar(40);not null"`
	AppUserID         string  `json:"appUserId"         gorm:"type:char(36);not null;index"`
	IsCreatedByDoctor bool    `json:"isCreatedByDoctor" gorm:"not null;default:false"`
	DoctorID          *string `json:"doctorId"          gorm:"type:char(36);index"`
}

// TableName returns the database table name for RecoveryPlan.
func (RecoveryPlan) TableName() string { return "recovery_plans" }

// WorkoutDay groups the exercise assignments of one day inside a plan.
// DayNumber is unique within a plan and a day is removed together with its
// last exercise assignment.
type WorkoutDay struct {
	ID             uint `json:"id"             gorm:"primaryKey;autoIncrement"`
	DayNumber      int  `json:"dayNumber"      gorm:"not null;uniqueIndex:idx_plan_day,priority:2"`
	RecoveryPlanID uint `json:"recoveryPlanId" gorm:"not null;uniqueIndex:idx_plan_day,priority:1"`
}

// TableName returns the database table name for WorkoutDay.
func (WorkoutDay) TableName() string { return "workout_days" }

// RecoveryPlanExercise assigns one exercise to one workout day with optional
// sets, reps and duration (seconds). All three are nullable and must be >= 0
// when present.
type RecoveryPlanExercise struct {
	WorkoutDayID       uint `json:"workoutDayId"       gorm:"primaryKey;autoIncrement:false"`
	RecoveryExerciseID uint `json:"recoveryExerciseId" gorm:"primaryKey;autoIncrement:false"`
	Sets               *int `json:"sets"`
	Reps               *int `json:"reps"`
	Duration           *int `json:"duration"           gorm:"column:duration_seconds"`
}

// TableName returns the database table name for RecoveryPlanExercise.
func (RecoveryPlanExercise) TableName() string { return "recovery_plan_exercises" }

// UserInjuryHistory is an open/closed interval record tracking when a user
// held an injury. A row is opened when the injury is first assigned and the
// most recent open row is closed when it is unassigned. At most one open row
// (EndDate == nil) exists per (user, injury).
type UserInjuryHistory struct {
	ID        uint       `json:"id"        gorm:"primaryKey;autoIncrement"`
	AppUserID string     `json:"appUserId" gorm:"type:char(36);not null;index"`
	InjuryID  uint       `json:"injuryId"  gorm:"not null;index"`
	StartDate time.Time  `json:"startDate" gorm:"not null"`
	EndDate   *time.Time `json:"endDate"`
}

// TableName returns the database table name for UserInjuryHistory.
func (UserInjuryHistory) TableName() string { return "user_injury_histories" }
