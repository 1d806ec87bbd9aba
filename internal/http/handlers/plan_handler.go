// Recovery plan HTTP handlers (user-facing).
//
// This file exposes REST endpoints for a user's own recovery plans:
//   - GET    /api/recoveryplan                                (list own plans)
//   - GET    /api/recoveryplan/{id}                           (fetch one plan)
//   - POST   /api/recoveryplan                                (create, Idempotency-Key aware)
//   - PUT    /api/recoveryplan/assign/{exerciseId}/{planId}   (upsert exercise on a day)
//   - PATCH  /api/recoveryplan/unlink/{exerciseId}/{planId}   (remove exercise from a day)
//   - DELETE /api/recoveryplan/{id}                           (delete plan tree)
//
// Every route is scoped to the authenticated caller: a plan belonging to
// another user is indistinguishable from a missing one (404).
//
// Plan creation honors the Idempotency-Key header. A replayed key within the
// TTL window returns the previously created plan with 200 instead of creating
// a duplicate.
package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avasilev/go-recovery-backend/internal/http/middleware"
	"github.com/avasilev/go-recovery-backend/internal/repo"
	"github.com/avasilev/go-recovery-backend/internal/utils"
)

//
// DTOs
//

// CreatePlanRequest is the JSON payload for creating a recovery plan.
type CreatePlanRequest struct {
	// Name is the plan title (1-40 chars after trimming).
	Name string `json:"name" binding:"required,min=1,max=40" example:"Week 1"`
}

// AssignExerciseRequest is the JSON payload for placing an exercise on a
// workout day. Assigning the same exercise and day twice updates the existing
// row in place.
type AssignExerciseRequest struct {
	// DayNumber selects (or creates) the workout day, starting at 1.
	DayNumber int `json:"dayNumber" binding:"required,min=1" example:"1"`
	// Sets is the prescribed set count; optional, must not be negative.
	Sets *int `json:"sets" example:"3"`
	// Reps is the prescribed repetition count; optional, must not be negative.
	Reps *int `json:"reps" example:"10"`
	// Duration is the prescribed duration in seconds; optional.
	Duration *int `json:"duration" example:"60"`
}

// UnlinkExerciseRequest is the JSON payload for removing an exercise from a
// workout day. Removing the last exercise also removes the day.
type UnlinkExerciseRequest struct {
	// DayNumber selects the workout day the exercise is removed from.
	DayNumber int `json:"dayNumber" binding:"required,min=1" example:"1"`
}

//
// Handlers
//

// ListPlans godoc
// @ID          listPlans
// @Summary     List own recovery plans
// @Description Returns every recovery plan belonging to the caller, with workout days and exercises.
// @Tags        Plans
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {array}   services.PlanInfo
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /recoveryplan [get]
func (h *Handlers) ListPlans(c *gin.Context) {
	plans, err := h.planSvc.ListMine(c.Request.Context(), userID(c))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, plans)
}

// GetPlan godoc
// @ID          getPlan
// @Summary     Get one recovery plan
// @Description Returns a plan owned by the caller, with its full day/exercise tree.
// @Tags        Plans
// @Produce     json
// @Security    BearerAuth
//
// @Param       id  path  int  true  "Plan ID"  minimum(1)
//
// @Success     200  {object}  services.PlanInfo
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Plan not found"
// @Router      /recoveryplan/{id} [get]
func (h *Handlers) GetPlan(c *gin.Context) {
	id, okID := idParam(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "plan id must be a positive integer")
		return
	}

	plan, err := h.planSvc.GetMine(c.Request.Context(), userID(c), id)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, plan)
}

// CreatePlan godoc
// @ID          createPlan
// @Summary     Create a recovery plan
// @Description Creates an empty plan for the caller. Supports Idempotency-Key: a replayed key returns the original plan with 200.
// @Tags        Plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       Idempotency-Key  header  string  false  "Client-chosen key for safe retries"
// @Param       body             body    handlers.CreatePlanRequest  true  "Plan payload"
//
// @Success     201  {object}  services.PlanInfo
// @Success     200  {object}  services.PlanInfo  "Replayed creation"
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid name"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /recoveryplan [post]
func (h *Handlers) CreatePlan(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)

	// Serve a stored result when the middleware flagged a replay.
	if key, hasKey := middleware.GetIdempotencyKey(c); hasKey && middleware.IsReplay(c) && h.db != nil {
		if rec, err := repo.GetIdempotency(ctx, h.db, uid, c.FullPath(), key, time.Now().UTC()); err == nil {
			if planID := utils.AtoiDefault(rec.ResourceID, 0); planID > 0 {
				if plan, err := h.planSvc.GetMine(ctx, uid, uint(planID)); err == nil {
					ok(c, http.StatusOK, plan)
					return
				}
			}
		}
		// Fall through and create when the stored record is unusable.
	}

	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name is required (1-40 chars)")
		return
	}

	plan, err := h.planSvc.Create(ctx, uid, strings.TrimSpace(req.Name))
	if err != nil {
		failService(c, err)
		return
	}

	// Record the result for future replays (best effort).
	if key, hasKey := middleware.GetIdempotencyKey(c); hasKey && h.db != nil {
		_, _ = repo.CreateIdempotency(ctx, h.db, uid, c.FullPath(), key,
			strconv.FormatUint(uint64(plan.ID), 10), http.StatusCreated, h.idempotencyTTL)
	}

	ok(c, http.StatusCreated, plan)
}

// AssignExercise godoc
// @ID          assignPlanExercise
// @Summary     Assign an exercise to a workout day
// @Description Places an exercise on a day of the caller's plan, creating the day when needed. Re-assigning the same pair updates sets/reps/duration in place.
// @Tags        Plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       exerciseId  path  int  true  "Exercise ID"  minimum(1)
// @Param       planId      path  int  true  "Plan ID"      minimum(1)
// @Param       body        body  handlers.AssignExerciseRequest  true  "Assignment payload"
//
// @Success     200  {object}  services.PlanInfo
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid day number or negative sets/reps"
// @Failure     404  {object}  handlers.ErrorResponse  "Plan or exercise not found"
// @Router      /recoveryplan/assign/{exerciseId}/{planId} [put]
func (h *Handlers) AssignExercise(c *gin.Context) {
	exerciseID, okEx := idParam(c, "exerciseId")
	planID, okPlan := idParam(c, "planId")
	if !okEx || !okPlan {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "exercise and plan ids must be positive integers")
		return
	}

	var req AssignExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "dayNumber is required (>= 1)")
		return
	}

	plan, err := h.planSvc.AssignExercise(c.Request.Context(), userID(c),
		planID, exerciseID, req.DayNumber, req.Sets, req.Reps, req.Duration)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, plan)
}

// UnlinkExercise godoc
// @ID          unlinkPlanExercise
// @Summary     Remove an exercise from a workout day
// @Description Removes the exercise from the given day of the caller's plan. The day itself is removed when it becomes empty.
// @Tags        Plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       exerciseId  path  int  true  "Exercise ID"  minimum(1)
// @Param       planId      path  int  true  "Plan ID"      minimum(1)
// @Param       body        body  handlers.UnlinkExerciseRequest  true  "Day selector"
//
// @Success     200  {object}  services.PlanInfo
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Plan, day or assignment not found"
// @Router      /recoveryplan/unlink/{exerciseId}/{planId} [patch]
func (h *Handlers) UnlinkExercise(c *gin.Context) {
	exerciseID, okEx := idParam(c, "exerciseId")
	planID, okPlan := idParam(c, "planId")
	if !okEx || !okPlan {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "exercise and plan ids must be positive integers")
		return
	}

	var req UnlinkExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "dayNumber is required (>= 1)")
		return
	}

	plan, err := h.planSvc.RemoveExercise(c.Request.Context(), userID(c),
		planID, exerciseID, req.DayNumber)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, plan)
}

// DeletePlan godoc
// @ID          deletePlan
// @Summary     Delete a recovery plan
// @Description Deletes the caller's plan together with all its workout days and assignments.
// @Tags        Plans
// @Produce     json
// @Security    BearerAuth
//
// @Param       id  path  int  true  "Plan ID"  minimum(1)
//
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Plan not found"
// @Router      /recoveryplan/{id} [delete]
func (h *Handlers) DeletePlan(c *gin.Context) {
	id, okID := idParam(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "plan id must be a positive integer")
		return
	}

	if err := h.planSvc.DeleteMine(c.Request.Context(), userID(c), id); err != nil {
		failService(c, err)
		return
	}
	noContent(c)
}
