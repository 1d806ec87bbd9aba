// Package services defines the business logic for accounts, the injury and
// exercise catalogs, user injuries, recovery plans, and doctor assignments.
// This file centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer and translation
// into user-facing messages or HTTP status codes should be performed at the
// handler/controller layer.
package services

import (
	"errors"
	"fmt"
	"strings"
)

// Account-related errors.
var (
	// ErrWeakPassword is returned when a registration password does not meet
	// the policy (>=6 chars with an uppercase letter, a lowercase letter, and
	// a digit).
	ErrWeakPassword = errors.New("password does not meet the strength requirements")

	// ErrDuplicateUser is returned when the username or email is already taken.
	ErrDuplicateUser = errors.New("username or email already in use")

	// ErrInvalidCredentials is returned on a failed login. It deliberately
	// does not say which part was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidDoctorKey is returned when the shared doctor registration key
	// does not match.
	ErrInvalidDoctorKey = errors.New("invalid doctor registration key")
)

// Catalog-related errors.
var (
	// ErrInjuryNotFound indicates that the requested injury does not exist.
	ErrInjuryNotFound = errors.New("injury not found")

	// ErrExerciseNotFound indicates that the requested recovery exercise does
	// not exist.
	ErrExerciseNotFound = errors.New("recovery exercise not found")
)

// Recovery-plan errors.
var (
	// ErrPlanNotFound indicates that the plan does not exist or is not
	// accessible to the caller. Ownership mismatches surface as this error so
	// the existence of another user's plan is never confirmed.
	ErrPlanNotFound = errors.New("recovery plan not found")

	// ErrPlanName is returned when a plan name is empty after trimming or
	// longer than 40 characters.
	ErrPlanName = errors.New("plan name must be 1-40 characters")

	// ErrInvalidDayNumber is returned when a workout day number is below 1.
	ErrInvalidDayNumber = errors.New("day number must be at least 1")

	// ErrInvalidSetsReps is returned when a sets, reps or duration value is
	// negative.
	ErrInvalidSetsReps = errors.New("sets, reps and duration must be zero or positive")

	// ErrWorkoutDayNotFound indicates that the plan has no day with the given
	// number.
	ErrWorkoutDayNotFound = errors.New("workout day not found")

	// ErrAssignmentNotFound indicates that the day has no assignment for the
	// given exercise.
	ErrAssignmentNotFound = errors.New("exercise is not assigned to this day")

	// ErrNoWorkoutDays is returned when a doctor-authored plan carries no
	// workout days at all.
	ErrNoWorkoutDays = errors.New("plan must contain at least one workout day")
)

// User-injury and doctor errors.
var (
	// ErrUserInjuryNotFound indicates that the (user, injury) link does not
	// exist.
	ErrUserInjuryNotFound = errors.New("user injury not found")

	// ErrUserNotFound indicates that the target user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrNoPatients is returned when the severe-injury listing is empty.
	ErrNoPatients = errors.New("no patients found")

	// ErrNotSevere is returned when a doctor tries to claim an injury that is
	// not marked severe.
	ErrNotSevere = errors.New("injury is not marked as severe")

	// ErrNotAssignedDoctor is returned when a doctor tries to release a
	// patient assigned to somebody else (or to nobody).
	ErrNotAssignedDoctor = errors.New("caller is not the assigned doctor")

	// ErrDoctorNotLinked is returned when a doctor authors a plan for a user
	// none of whose injuries they are assigned to.
	ErrDoctorNotLinked = errors.New("doctor is not linked to this user")
)

// InvalidIDsError reports every invalid cross-reference value found during
// bulk validation, so the caller can fix all of them in one round trip. It is
// used for missing catalog IDs, out-of-range or repeated day numbers, and
// exercises listed twice on the same day.
type InvalidIDsError struct {
	// Field names the offending request field, e.g. "recoveryExerciseIds".
	Field string
	// IDs are the offending values, in request order.
	IDs []int64
}

// Error implements the error interface.
func (e *InvalidIDsError) Error() string {
	parts := make([]string, 0, len(e.IDs))
	for _, id := range e.IDs {
		parts = append(parts, fmt.Sprint(id))
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, strings.Join(parts, ", "))
}
