// Package handlers provides HTTP handler implementations for the public API.
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses. Business rules live in
// internal/services; persistence in internal/repo.
//
// This file wires the handler set and holds the small request helpers shared
// by every endpoint (identity extraction, ID parsing, pagination clamping).
package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/avasilev/go-recovery-backend/internal/http/middleware"
	"github.com/avasilev/go-recovery-backend/internal/repo"
	"github.com/avasilev/go-recovery-backend/internal/services"
	"github.com/avasilev/go-recovery-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// AccountService defines the account operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type AccountService interface {
	Register(ctx context.Context, username, email, password string) (*services.AuthResult, error)
	RegisterDoctor(ctx context.Context, username, email, password, secretKey string) (*services.AuthResult, error)
	Login(ctx context.Context, login, password string) (*services.AuthResult, error)
}

// InjuryService defines the injury-catalog operations consumed by handlers.
type InjuryService interface {
	List(ctx context.Context, offset, limit int) ([]services.InjuryInfo, int64, error)
	Get(ctx context.Context, id uint) (*services.InjuryInfo, error)
	Create(ctx context.Context, name, description, bodyPart string, exerciseIDs []uint) (*services.InjuryInfo, error)
	Update(ctx context.Context, id uint, name, description, bodyPart string, exerciseIDs []uint) (*services.InjuryInfo, error)
	Delete(ctx context.Context, id uint) (*services.InjuryInfo, error)
}

// ExerciseService defines the exercise-catalog operations consumed by handlers.
type ExerciseService interface {
	List(ctx context.Context, offset, limit int) ([]services.ExerciseInfo, int64, error)
	Get(ctx context.Context, id uint) (*services.ExerciseInfo, error)
	Create(ctx context.Context, name, description string, injuryIDs []uint) (*services.ExerciseInfo, error)
	Update(ctx context.Context, id uint, name, description string, injuryIDs []uint) (*services.ExerciseInfo, error)
	Delete(ctx context.Context, id uint) (*services.ExerciseInfo, error)
}

// PlanService defines the user-facing recovery-plan operations.
type PlanService interface {
	ListMine(ctx context.Context, userID string) ([]services.PlanInfo, error)
	GetMine(ctx context.Context, userID string, id uint) (*services.PlanInfo, error)
	Create(ctx context.Context, userID, name string) (*services.PlanInfo, error)
	AssignExercise(ctx context.Context, userID string, planID, exerciseID uint, dayNumber int, sets, reps, duration *int) (*services.PlanInfo, error)
	RemoveExercise(ctx context.Context, userID string, planID, exerciseID uint, dayNumber int) (*services.PlanInfo, error)
	DeleteMine(ctx context.Context, userID string, id uint) error
}

// UserInjuryService defines operations on the caller's own injury list.
type UserInjuryService interface {
	ListMine(ctx context.Context, userID string) ([]services.UserInjuryInfo, error)
	Assign(ctx context.Context, userID string, injuryID uint, severe bool) (*services.AssignedInjury, error)
	Unassign(ctx context.Context, userID string, injuryID uint) error
}

// DoctorService defines the doctor-role operations consumed by handlers.
type DoctorService interface {
	SeverePatients(ctx context.Context) ([]repo.PatientRow, error)
	AvailablePatients(ctx context.Context) ([]repo.PatientRow, error)
	MyPatients(ctx context.Context, doctorID string) ([]repo.PatientRow, error)
	AssignSelf(ctx context.Context, doctorID, userID string, injuryID uint) error
	UnassignSelf(ctx context.Context, doctorID, userID string, injuryID uint) error
	ListPlans(ctx context.Context, doctorID string) ([]services.PlanInfo, error)
	GetPlan(ctx context.Context, doctorID string, id uint) (*services.PlanInfo, error)
	CreatePlan(ctx context.Context, doctorID string, in services.PlanInput) (*services.PlanInfo, error)
	UpdatePlan(ctx context.Context, doctorID string, id uint, in services.PlanInput) (*services.PlanInfo, error)
	DeletePlan(ctx context.Context, doctorID string, id uint) error
}

// StatsService defines the reporting operations consumed by handlers.
type StatsService interface {
	InjuryHistory(ctx context.Context, userID string) ([]repo.HistoryRow, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints of the API. It depends on abstract
// service interfaces to keep transport concerns separate from business logic.
// DB and IdempotencyTTL back the Idempotency-Key replay support on plan
// creation.
type Handlers struct {
	accountSvc  AccountService
	injurySvc   InjuryService
	exerciseSvc ExerciseService
	planSvc     PlanService
	uiSvc       UserInjuryService
	doctorSvc   DoctorService
	statsSvc    StatsService

	db             *gorm.DB
	idempotencyTTL time.Duration
}

// New constructs a Handlers instance bound to the given services.
func New(
	accountSvc AccountService,
	injurySvc InjuryService,
	exerciseSvc ExerciseService,
	planSvc PlanService,
	uiSvc UserInjuryService,
	doctorSvc DoctorService,
	statsSvc StatsService,
	db *gorm.DB,
	idempotencyTTL time.Duration,
) *Handlers {
	return &Handlers{
		accountSvc:     accountSvc,
		injurySvc:      injurySvc,
		exerciseSvc:    exerciseSvc,
		planSvc:        planSvc,
		uiSvc:          uiSvc,
		doctorSvc:      doctorSvc,
		statsSvc:       statsSvc,
		db:             db,
		idempotencyTTL: idempotencyTTL,
	}
}

// userID extracts the authenticated user ID set by the auth middleware.
func userID(c *gin.Context) string {
	return middleware.UserID(c)
}

//
// Shared response shapes
//

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// newPagination computes the metadata for one result page.
func newPagination(page, pageSize int, total int64) Pagination {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
	}
}

//
// Helpers
//

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

// idParam parses a positive numeric path parameter. The bool result is false
// when the value is missing, non-numeric, or zero.
func idParam(c *gin.Context, name string) (uint, bool) {
	v := utils.AtoiDefault(c.Param(name), 0)
	if v < 1 {
		return 0, false
	}
	return uint(v), true
}
