// Recovery exercise catalog HTTP handlers.
//
// This file exposes REST endpoints for the exercise catalog, the mirror image
// of the injury endpoints:
//   - GET    /api/recoveryexercise        (list, paginated)
//   - GET    /api/recoveryexercise/{id}   (fetch with linked injuries)
//   - POST   /api/recoveryexercise        (create, optionally linking injuries)
//   - PUT    /api/recoveryexercise/{id}   (update scalars and replace links)
//   - DELETE /api/recoveryexercise/{id}   (delete with links)
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/avasilev/go-recovery-backend/internal/services"
)

//
// DTOs
//

// ExerciseRequest is the JSON payload for creating or updating an exercise.
type ExerciseRequest struct {
	// Name is the catalog display name.
	Name string `json:"name" binding:"required,min=1,max=120" example:"Wrist Flexor Stretch"`
	// Description explains how to perform the exercise.
	Description string `json:"description" binding:"required" example:"Extend the arm and gently pull the fingers back"`
	// InjuryIDs links catalog injuries; zero values are ignored.
	InjuryIDs []uint `json:"injuryIds" example:"3,7"`
}

// ListExercisesResponse wraps a page of exercises and pagination information.
type ListExercisesResponse struct {
	Exercises  []services.ExerciseInfo `json:"exercises"`
	Pagination Pagination              `json:"pagination"`
}

//
// Handlers
//

// ListExercises godoc
// @ID          listExercises
// @Summary     List recovery exercises (paginated)
// @Description Returns a page of the exercise catalog with linked injuries.
// @Tags        Exercises
// @Produce     json
// @Security    BearerAuth
//
// @Param       page       query  int  false  "Page number"     minimum(1) default(1)
// @Param       page_size  query  int  false  "Items per page"  minimum(1) maximum(100) default(20)
//
// @Success     200  {object}  handlers.ListExercisesResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /recoveryexercise [get]
func (h *Handlers) ListExercises(c *gin.Context) {
	page, pageSize := clampPagination(c)

	items, total, err := h.exerciseSvc.List(c.Request.Context(), (page-1)*pageSize, pageSize)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, ListExercisesResponse{
		Exercises:  items,
		Pagination: newPagination(page, pageSize, total),
	})
}

// GetExercise godoc
// @ID          getExercise
// @Summary     Get one exercise
// @Description Returns a single exercise with its linked injuries.
// @Tags        Exercises
// @Produce     json
// @Security    BearerAuth
//
// @Param       id  path  int  true  "Exercise ID"  minimum(1)
//
// @Success     200  {object}  services.ExerciseInfo
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Exercise not found"
// @Router      /recoveryexercise/{id} [get]
func (h *Handlers) GetExercise(c *gin.Context) {
	id, okID := idParam(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "exercise id must be a positive integer")
		return
	}

	info, err := h.exerciseSvc.Get(c.Request.Context(), id)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, info)
}

// CreateExercise godoc
// @ID          createExercise
// @Summary     Create an exercise
// @Description Creates a catalog exercise, optionally linking existing injuries. Any unknown injury ID rejects the whole request.
// @Tags        Exercises
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       body  body  handlers.ExerciseRequest  true  "Exercise payload"
//
// @Success     201  {object}  services.ExerciseInfo
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed or unknown injury IDs"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /recoveryexercise [post]
func (h *Handlers) CreateExercise(c *gin.Context) {
	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name and description are required")
		return
	}

	info, err := h.exerciseSvc.Create(c.Request.Context(),
		strings.TrimSpace(req.Name), req.Description, req.InjuryIDs)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusCreated, info)
}

// UpdateExercise godoc
// @ID          updateExercise
// @Summary     Update an exercise
// @Description Replaces the exercise's fields and its injury links atomically. Unknown injury IDs reject the update and leave existing links intact.
// @Tags        Exercises
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       id    path  int                       true  "Exercise ID"  minimum(1)
// @Param       body  body  handlers.ExerciseRequest  true  "Exercise payload"
//
// @Success     200  {object}  services.ExerciseInfo
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed or unknown injury IDs"
// @Failure     404  {object}  handlers.ErrorResponse  "Exercise not found"
// @Router      /recoveryexercise/{id} [put]
func (h *Handlers) UpdateExercise(c *gin.Context) {
	id, okID := idParam(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "exercise id must be a positive integer")
		return
	}

	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name and description are required")
		return
	}

	info, err := h.exerciseSvc.Update(c.Request.Context(), id,
		strings.TrimSpace(req.Name), req.Description, req.InjuryIDs)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, info)
}

// DeleteExercise godoc
// @ID          deleteExercise
// @Summary     Delete an exercise
// @Description Removes the exercise and its injury links.
// @Tags        Exercises
// @Produce     json
// @Security    BearerAuth
//
// @Param       id  path  int  true  "Exercise ID"  minimum(1)
//
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Exercise not found"
// @Router      /recoveryexercise/{id} [delete]
func (h *Handlers) DeleteExercise(c *gin.Context) {
	id, okID := idParam(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "exercise id must be a positive integer")
		return
	}

	if _, err := h.exerciseSvc.Delete(c.Request.Context(), id); err != nil {
		failService(c, err)
		return
	}
	noContent(c)
}
