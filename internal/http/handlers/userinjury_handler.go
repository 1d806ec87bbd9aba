// User injury HTTP handlers.
//
// This file exposes REST endpoints for the caller's own injury list:
//   - GET   /api/userinjury/user/injuries        (list own injuries)
//   - PUT   /api/userinjury/assign               (assign/update severity)
//   - PATCH /api/userinjury/unlink/{injuryId}    (remove an injury)
//
// Assignment is an upsert: the first assignment opens a history interval,
// re-assignment only updates the severity flag. Unlinking closes the latest
// open history interval.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

//
// DTOs
//

// AssignInjuryRequest is the JSON payload for assigning an injury to the
// caller or updating its severity.
type AssignInjuryRequest struct {
	// InjuryID references a catalog injury.
	InjuryID uint `json:"injuryId" binding:"required,min=1" example:"3"`
	// IsTooSevere marks the injury as needing a doctor.
	IsTooSevere bool `json:"isTooSevere" example:"false"`
}

//
// Handlers
//

// ListUserInjuries godoc
// @ID          listUserInjuries
// @Summary     List own injuries
// @Description Returns the caller's injuries with severity, assigned doctor and recommended exercises.
// @Tags        UserInjuries
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {array}   services.UserInjuryInfo
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /userinjury/user/injuries [get]
func (h *Handlers) ListUserInjuries(c *gin.Context) {
	items, err := h.uiSvc.ListMine(c.Request.Context(), userID(c))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, items)
}

// AssignInjury godoc
// @ID          assignInjury
// @Summary     Assign an injury to the caller
// @Description First-time assignment opens a history interval; re-assignment updates the severity flag in place without a new interval.
// @Tags        UserInjuries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       body  body  handlers.AssignInjuryRequest  true  "Assignment payload"
//
// @Success     200  {object}  services.AssignedInjury
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Injury not found"
// @Router      /userinjury/assign [put]
func (h *Handlers) AssignInjury(c *gin.Context) {
	var req AssignInjuryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "injuryId is required")
		return
	}

	res, err := h.uiSvc.Assign(c.Request.Context(), userID(c), req.InjuryID, req.IsTooSevere)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, res)
}

// UnassignInjury godoc
// @ID          unassignInjury
// @Summary     Remove an injury from the caller
// @Description Deletes the injury link and closes the latest open history interval (best effort).
// @Tags        UserInjuries
// @Produce     json
// @Security    BearerAuth
//
// @Param       injuryId  path  int  true  "Injury ID"  minimum(1)
//
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "User injury not found"
// @Router      /userinjury/unlink/{injuryId} [patch]
func (h *Handlers) UnassignInjury(c *gin.Context) {
	injuryID, okID := idParam(c, "injuryId")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "injury id must be a positive integer")
		return
	}

	if err := h.uiSvc.Unassign(c.Request.Context(), userID(c), injuryID); err != nil {
		failService(c, err)
		return
	}
	noContent(c)
}
