// Package handlers provides HTTP handler implementations for the public API.
//
// This file maps service-layer sentinel errors onto HTTP responses. Keeping
// the translation in one place guarantees that the same business error always
// produces the same status and error code regardless of which endpoint
// surfaced it.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avasilev/go-recovery-backend/internal/services"
)

// failService translates a service-layer error into an HTTP error response.
//
// Known sentinels map to their canonical status and code; everything else is
// treated as an internal error with a generic message so storage details never
// leak to clients. The error's own message is used for client-facing 4xx
// responses because service sentinels are written to be safe for display.
func failService(c *gin.Context, err error) {
	var invalid *services.InvalidIDsError
	if errors.As(err, &invalid) {
		fail(c, http.StatusBadRequest, ErrCodeInvalidIDs, invalid.Error())
		return
	}

	switch {
	case errors.Is(err, services.ErrWeakPassword):
		fail(c, http.StatusBadRequest, ErrCodeWeakPassword, err.Error())
	case errors.Is(err, services.ErrDuplicateUser):
		fail(c, http.StatusBadRequest, ErrCodeDuplicateUser, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, err.Error())
	case errors.Is(err, services.ErrInvalidDoctorKey):
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, err.Error())

	case errors.Is(err, services.ErrInjuryNotFound),
		errors.Is(err, services.ErrExerciseNotFound),
		errors.Is(err, services.ErrPlanNotFound),
		errors.Is(err, services.ErrWorkoutDayNotFound),
		errors.Is(err, services.ErrAssignmentNotFound),
		errors.Is(err, services.ErrUserInjuryNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrNoPatients):
		fail(c, http.StatusNotFound, ErrCodeNotFound, err.Error())

	case errors.Is(err, services.ErrPlanName):
		fail(c, http.StatusBadRequest, ErrCodeInvalidPlanName, err.Error())
	case errors.Is(err, services.ErrInvalidDayNumber),
		errors.Is(err, services.ErrInvalidSetsReps),
		errors.Is(err, services.ErrNoWorkoutDays):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())

	case errors.Is(err, services.ErrNotSevere):
		fail(c, http.StatusBadRequest, ErrCodeNotSevere, err.Error())
	case errors.Is(err, services.ErrNotAssignedDoctor):
		fail(c, http.StatusUnauthorized, ErrCodeNotAssigned, err.Error())
	case errors.Is(err, services.ErrDoctorNotLinked):
		fail(c, http.StatusForbidden, ErrCodeNotLinked, err.Error())

	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "unexpected error")
	}
}
