// Doctor HTTP handlers.
//
// This file exposes the REST endpoints reserved for the Doctor role:
//   - GET    /api/doctor/injuries             (all severe patient injuries)
//   - GET    /api/doctor/patients/available   (severe and unassigned)
//   - GET    /api/doctor/patients             (patients assigned to the caller)
//   - PATCH  /api/doctor/assign-doctor        (claim a severe injury)
//   - DELETE /api/doctor/unassign-doctor      (release a claimed injury)
//   - GET    /api/doctor/recovery-plans       (plans authored by the caller)
//   - GET    /api/doctor/recovery-plan/{id}   (one authored plan)
//   - POST   /api/doctor/recovery-plan        (author a plan for a patient)
//   - PUT    /api/doctor/recovery-plan/{id}   (replace an authored plan)
//   - DELETE /api/doctor/recovery-plan/{id}   (delete an authored plan)
//
// All routes sit behind RequireRole(Doctor). A doctor may author plans only
// for patients linked to them through some injury assignment.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avasilev/go-recovery-backend/internal/services"
)

//
// DTOs
//

// DoctorAssignRequest is the JSON payload for claiming or releasing a
// patient's injury.
type DoctorAssignRequest struct {
	// AppUserID is the patient's user ID.
	AppUserID string `json:"appUserId" binding:"required" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	// InjuryID references the patient's injury link.
	InjuryID uint `json:"injuryId" binding:"required,min=1" example:"3"`
}

//
// Patient listings
//

// SeverePatients godoc
// @ID          severePatients
// @Summary     List severe patient injuries
// @Description Returns every user injury marked too severe, with the patient's username. Returns 404 when there are none.
// @Tags        Doctor
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {array}   repo.PatientRow
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     403  {object}  handlers.ErrorResponse  "Doctor role required"
// @Failure     404  {object}  handlers.ErrorResponse  "No patients found"
// @Router      /doctor/injuries [get]
func (h *Handlers) SeverePatients(c *gin.Context) {
	rows, err := h.doctorSvc.SeverePatients(c.Request.Context())
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, rows)
}

// AvailablePatients godoc
// @ID          availablePatients
// @Summary     List available patients
// @Description Returns severe user injuries that no doctor has claimed yet.
// @Tags        Doctor
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {array}   repo.PatientRow
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     403  {object}  handlers.ErrorResponse  "Doctor role required"
// @Router      /doctor/patients/available [get]
func (h *Handlers) AvailablePatients(c *gin.Context) {
	rows, err := h.doctorSvc.AvailablePatients(c.Request.Context())
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, rows)
}

// MyPatients godoc
// @ID          myPatients
// @Summary     List own patients
// @Description Returns the user injuries currently assigned to the calling doctor.
// @Tags        Doctor
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {array}   repo.PatientRow
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     403  {object}  handlers.ErrorResponse  "Doctor role required"
// @Router      /doctor/patients [get]
func (h *Handlers) MyPatients(c *gin.Context) {
	rows, err := h.doctorSvc.MyPatients(c.Request.Context(), userID(c))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, rows)
}

//
// Claim / release
//

// AssignDoctor godoc
// @ID          assignDoctor
// @Summary     Claim a patient's injury
// @Description Assigns the calling doctor to a severe user injury. Last write wins on concurrent claims.
// @Tags        Doctor
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       body  body  handlers.DoctorAssignRequest  true  "Patient and injury"
//
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Injury is not marked severe"
// @Failure     404  {object}  handlers.ErrorResponse  "User injury not found"
// @Router      /doctor/assign-doctor [patch]
func (h *Handlers) AssignDoctor(c *gin.Context) {
	var req DoctorAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "appUserId and injuryId are required")
		return
	}

	if err := h.doctorSvc.AssignSelf(c.Request.Context(), userID(c), req.AppUserID, req.InjuryID); err != nil {
		failService(c, err)
		return
	}
	noContent(c)
}

// UnassignDoctor godoc
// @ID          unassignDoctor
// @Summary     Release a patient's injury
// @Description Clears the doctor assignment on a user injury. Only the currently assigned doctor may release it.
// @Tags        Doctor
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       body  body  handlers.DoctorAssignRequest  true  "Patient and injury"
//
// @Success     204  {string}  string  "No Content"
// @Failure     401  {object}  handlers.ErrorResponse  "Caller is not the assigned doctor"
// @Failure     404  {object}  handlers.ErrorResponse  "User injury not found"
// @Router      /doctor/unassign-doctor [delete]
func (h *Handlers) UnassignDoctor(c *gin.Context) {
	var req DoctorAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "appUserId and injuryId are required")
		return
	}

	if err := h.doctorSvc.UnassignSelf(c.Request.Context(), userID(c), req.AppUserID, req.InjuryID); err != nil {
		failService(c, err)
		return
	}
	noContent(c)
}

//
// Authored plans
//

// ListDoctorPlans godoc
// @ID          listDoctorPlans
// @Summary     List authored recovery plans
// @Description Returns every plan the calling doctor has authored for patients.
// @Tags        Doctor
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {array}   services.PlanInfo
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /doctor/recovery-plans [get]
func (h *Handlers) ListDoctorPlans(c *gin.Context) {
	plans, err := h.doctorSvc.ListPlans(c.Request.Context(), userID(c))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, plans)
}

// GetDoctorPlan godoc
// @ID          getDoctorPlan
// @Summary     Get one authored plan
// @Description Returns a plan authored by the calling doctor, with its full day/exercise tree.
// @Tags        Doctor
// @Produce     json
// @Security    BearerAuth
//
// @Param       id  path  int  true  "Plan ID"  minimum(1)
//
// @Success     200  {object}  services.PlanInfo
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Plan not found"
// @Router      /doctor/recovery-plan/{id} [get]
func (h *Handlers) GetDoctorPlan(c *gin.Context) {
	id, okID := idParam(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "plan id must be a positive integer")
		return
	}

	plan, err := h.doctorSvc.GetPlan(c.Request.Context(), userID(c), id)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, plan)
}

// CreateDoctorPlan godoc
// @ID          createDoctorPlan
// @Summary     Author a plan for a patient
// @Description Creates a full plan (days and exercises) for a patient linked to the calling doctor. Unknown exercise IDs or day numbers below 1 reject the whole payload.
// @Tags        Doctor
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       body  body  services.PlanInput  true  "Plan payload"
//
// @Success     201  {object}  services.PlanInfo
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure     403  {object}  handlers.ErrorResponse  "Doctor is not linked to this user"
// @Failure     404  {object}  handlers.ErrorResponse  "User not found"
// @Router      /doctor/recovery-plan [post]
func (h *Handlers) CreateDoctorPlan(c *gin.Context) {
	var in services.PlanInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "appUserId and name are required")
		return
	}

	plan, err := h.doctorSvc.CreatePlan(c.Request.Context(), userID(c), in)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusCreated, plan)
}

// UpdateDoctorPlan godoc
// @ID          updateDoctorPlan
// @Summary     Replace an authored plan
// @Description Validates the payload, then rebuilds the plan's entire day/exercise tree in one transaction.
// @Tags        Doctor
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       id    path  int                 true  "Plan ID"  minimum(1)
// @Param       body  body  services.PlanInput  true  "Plan payload"
//
// @Success     200  {object}  services.PlanInfo
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure     403  {object}  handlers.ErrorResponse  "Doctor is not linked to this user"
// @Failure     404  {object}  handlers.ErrorResponse  "Plan not found"
// @Router      /doctor/recovery-plan/{id} [put]
func (h *Handlers) UpdateDoctorPlan(c *gin.Context) {
	id, okID := idParam(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "plan id must be a positive integer")
		return
	}

	var in services.PlanInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "appUserId and name are required")
		return
	}

	plan, err := h.doctorSvc.UpdatePlan(c.Request.Context(), userID(c), id, in)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, plan)
}

// DeleteDoctorPlan godoc
// @ID          deleteDoctorPlan
// @Summary     Delete an authored plan
// @Description Deletes a plan authored by the calling doctor, including all days and assignments.
// @Tags        Doctor
// @Produce     json
// @Security    BearerAuth
//
// @Param       id  path  int  true  "Plan ID"  minimum(1)
//
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Plan not found"
// @Router      /doctor/recovery-plan/{id} [delete]
func (h *Handlers) DeleteDoctorPlan(c *gin.Context) {
	id, okID := idParam(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "plan id must be a positive integer")
		return
	}

	if err := h.doctorSvc.DeletePlan(c.Request.Context(), userID(c), id); err != nil {
		failService(c, err)
		return
	}
	noContent(c)
}
