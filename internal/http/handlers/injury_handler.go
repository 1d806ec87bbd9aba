// Injury catalog HTTP handlers.
//
// This file exposes REST endpoints for the injury catalog:
//   - GET    /api/injury        (list, paginated)
//   - GET    /api/injury/{id}   (fetch with linked exercises)
//   - POST   /api/injury        (create, optionally linking exercises)
//   - PUT    /api/injury/{id}   (update scalars and replace links)
//   - DELETE /api/injury/{id}   (delete with links)
//
// Cross-reference IDs are validated in bulk: a create or update naming any
// unknown exercise ID is rejected with every offending ID listed, and nothing
// is persisted.
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

// InjuryRequest is the JSON payload for creating or updating an injury.
type InjuryRequest struct {
	// Name is the catalog display name.
	Name string `json:"name" binding:"required,min=1,max=120" example:"Wrist Strain"`
	// Description explains the injury in plain language.
	Description string `json:"description" binding:"required" example:"Overstretched wrist tendons"`
	// BodyPart names the affected body part.
	BodyPart string `json:"bodyPart" binding:"required,min=1,max=60" example:"Wrist"`
	// RecoveryExerciseIDs links catalog exercises; zero values are ignored.
	RecoveryExerciseIDs []uint `json:"recoveryExerciseIds" example:"12,14"`
}

// ListInjuriesResponse wraps a page of injuries and pagination information.
type ListInjuriesResponse struct {
	Injuries   []services.InjuryInfo `json:"injuries"`
	Pagination Pagination            `json:"pagination"`
}

//
// Handlers
//

// ListInjuries godoc
// @ID          listInjuries
// @Summary     List injuries (paginated)
// @Description Returns a page of the injury catalog with linked exercises.
// @Tags        Injuries
// @Produce     json
// @Security    BearerAuth
//
// @Param       page       query  int  false  "Page number"     minimum(1) default(1)
// @Param       page_size  query  int  false  "Items per page"  minimum(1) maximum(100) default(20)
//
// @Success     200  {object}  handlers.ListInjuriesResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /injury [get]
func (h *Handlers) ListInjuries(c *gin.Context) {
	page, pageSize := clampPagination(c)

	items, total, err := h.injurySvc.List(c.Request.Context(), (page-1)*pageSize, pageSize)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, ListInjuriesResponse{
		Injuries:   items,
		Pagination: newPagination(page, pageSize, total),
	})
}

// GetInjury godoc
// @ID          getInjury
// @Summary     Get one injury
// @Description Returns a single injury with its linked recovery exercises.
// @Tags        Injuries
// @Produce     json
// @Security    BearerAuth
//
// @Param       id  path  int  true  "Injury ID"  minimum(1)
//
// @Success     200  {object}  services.InjuryInfo
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Injury not found"
// @Router      /injury/{id} [get]
func (h *Handlers) GetInjury(c *gin.Context) {
	id, okID := idParam(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "injury id must be a positive integer")
		return
	}

	info, err := h.injurySvc.Get(c.Request.Context(), id)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, info)
}

// CreateInjury godoc
// @ID          createInjury
// @Summary     Create an injury
// @Description Creates a catalog injury, optionally linking existing exercises. Any unknown exercise ID rejects the whole request.
// @Tags        Injuries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       body  body  handlers.InjuryRequest  true  "Injury payload"
//
// @Success     201  {object}  services.InjuryInfo
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed or unknown exercise IDs"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /injury [post]
func (h *Handlers) CreateInjury(c *gin.Context) {
	var req InjuryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name, description and bodyPart are required")
		return
	}

	info, err := h.injurySvc.Create(c.Request.Context(),
		strings.TrimSpace(req.Name), req.Description, strings.TrimSpace(req.BodyPart), req.RecoveryExerciseIDs)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusCreated, info)
}

// UpdateInjury godoc
// @ID          updateInjury
// @Summary     Update an injury
// @Description Replaces the injury's fields and its exercise links atomically. Unknown exercise IDs reject the update and leave existing links intact.
// @Tags        Injuries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       id    path  int                     true  "Injury ID"  minimum(1)
// @Param       body  body  handlers.InjuryRequest  true  "Injury payload"
//
// @Success     200  {object}  services.InjuryInfo
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed or unknown exercise IDs"
// @Failure     404  {object}  handlers.ErrorResponse  "Injury not found"
// @Router      /injury/{id} [put]
func (h *Handlers) UpdateInjury(c *gin.Context) {
	id, okID := idParam(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "injury id must be a positive integer")
		return
	}

	var req InjuryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name, description and bodyPart are required")
		return
	}

	info, err := h.injurySvc.Update(c.Request.Context(), id,
		strings.TrimSpace(req.Name), req.Description, strings.TrimSpace(req.BodyPart), req.RecoveryExerciseIDs)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, info)
}

// DeleteInjury godoc
// @ID          deleteInjury
// @Summary     Delete an injury
// @Description Removes the injury and its exercise links.
// @Tags        Injuries
// @Produce     json
// @Security    BearerAuth
//
// @Param       id  path  int  true  "Injury ID"  minimum(1)
//
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Injury not found"
// @Router      /injury/{id} [delete]
func (h *Handlers) DeleteInjury(c *gin.Context) {
	id, okID := idParam(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "injury id must be a positive integer")
		return
	}

	if _, err := h.injurySvc.Delete(c.Request.Context(), id); err != nil {
		failService(c, err)
		return
	}
	noContent(c)
}
