package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/avasilev/go-recovery-backend/internal/auth"
	"github.com/avasilev/go-recovery-backend/internal/config"
	"github.com/avasilev/go-recovery-backend/internal/domain"
	"github.com/avasilev/go-recovery-backend/internal/services"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:router_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA foreign_keys=ON;")
	if err := db.AutoMigrate(
		&domain.AppUser{},
		&domain.Injury{},
		&domain.RecoveryExercise{},
		&domain.InjuryRecoveryExercise{},
		&domain.UserInjury{},
		&domain.UserInjuryHistory{},
		&domain.RecoveryPlan{},
		&domain.WorkoutDay{},
		&domain.RecoveryPlanExercise{},
		&domain.Idempotency{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	cfg := config.Config{
		GinMode: "test",
		Auth: config.AuthConfig{
			JWTSecret: "test-secret",
			TokenTTL:  time.Hour,
			DoctorKey: "doc-key",
		},
		RateRPS:        1000,
		RateBurst:      1000,
		IdempotencyTTL: time.Hour,
	}
	cfg.OTEL.ServiceName = "router-test"

	tokens := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	hasher := auth.NewPasswordHasher(4)

	r := gin.New()
	RegisterRoutes(r, db, tokens, hasher, cfg)
	return r
}

// doJSON issues a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

// registerAndLogin creates an account and returns its token.
func registerAndLogin(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/account/register", "", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "Passw0rd",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("register %s: %d %s", username, w.Code, w.Body.String())
	}
	var res services.AuthResult
	decodeJSON(t, w, &res)
	if res.Token == "" {
		t.Fatalf("register %s: empty token", username)
	}
	return res.Token
}

func registerDoctor(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/account/register/doctor", "", gin.H{
		"username":  username,
		"email":     username + "@example.com",
		"password":  "Passw0rd",
		"secretKey": "doc-key",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("register doctor %s: %d %s", username, w.Code, w.Body.String())
	}
	var res services.AuthResult
	decodeJSON(t, w, &res)
	return res.Token
}

func TestRouter_HealthAndFallbacks(t *testing.T) {
	r := newTestServer(t)

	if w := doJSON(t, r, http.MethodGet, "/health", "", nil); w.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/no-such-route", "", nil); w.Code != http.StatusNotFound {
		t.Fatalf("unknown route: expected 404, got %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodDelete, "/health", "", nil); w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("wrong method: expected 405, got %d", w.Code)
	}
}

func TestRouter_AuthRequired(t *testing.T) {
	r := newTestServer(t)

	for _, path := range []string{"/api/injury", "/api/recoveryplan", "/api/userinjury/user/injuries"} {
		if w := doJSON(t, r, http.MethodGet, path, "", nil); w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", path, w.Code)
		}
	}
}

func TestRouter_DoctorRoutesForbiddenForUsers(t *testing.T) {
	r := newTestServer(t)
	token := registerAndLogin(t, r, "plainuser")

	if w := doJSON(t, r, http.MethodGet, "/api/doctor/patients", token, nil); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for User role, got %d", w.Code)
	}
}

func TestRouter_CatalogLifecycle(t *testing.T) {
	r := newTestServer(t)
	token := registerAndLogin(t, r, "catalog-admin")

	// Create a recovery exercise.
	w := doJSON(t, r, http.MethodPost, "/api/recoveryexercise", token, gin.H{
		"name":        "Wrist Flexor Stretch",
		"description": "Gentle stretch for the wrist flexors",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create exercise: %d %s", w.Code, w.Body.String())
	}
	var ex services.ExerciseInfo
	decodeJSON(t, w, &ex)

	// Create an injury linked to the exercise.
	w = doJSON(t, r, http.MethodPost, "/api/injury", token, gin.H{
		"name":                "Wrist Strain",
		"description":         "Overuse strain of the wrist",
		"bodyPart":            "Wrist",
		"recoveryExerciseIds": []uint{ex.ID},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create injury: %d %s", w.Code, w.Body.String())
	}
	var inj services.InjuryInfo
	decodeJSON(t, w, &inj)
	if len(inj.RecoveryExercises) != 1 || inj.RecoveryExercises[0].ID != ex.ID {
		t.Fatalf("expected linked exercise, got %+v", inj.RecoveryExercises)
	}

	// An update with an unknown cross-reference is rejected whole and lists
	// the offending IDs; the existing link survives.
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/injury/%d", inj.ID), token, gin.H{
		"name":                "Wrist Strain",
		"description":         "Overuse strain of the wrist",
		"bodyPart":            "Wrist",
		"recoveryExerciseIds": []uint{9999},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid update: expected 400, got %d %s", w.Code, w.Body.String())
	}
	var envelope struct {
		Code string `json:"code"`
	}
	decodeJSON(t, w, &envelope)
	if envelope.Code != "invalid_ids" {
		t.Fatalf("expected code invalid_ids, got %q", envelope.Code)
	}

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/injury/%d", inj.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get injury: %d", w.Code)
	}
	decodeJSON(t, w, &inj)
	if len(inj.RecoveryExercises) != 1 || inj.RecoveryExercises[0].ID != ex.ID {
		t.Fatalf("expected prior link to survive rejected update, got %+v", inj.RecoveryExercises)
	}

	// Delete and confirm.
	if w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/injury/%d", inj.ID), token, nil); w.Code != http.StatusNoContent {
		t.Fatalf("delete injury: %d", w.Code)
	}
	if w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/injury/%d", inj.ID), token, nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}

func TestRouter_PlanLifecycle(t *testing.T) {
	r := newTestServer(t)
	token := registerAndLogin(t, r, "plan-user")

	w := doJSON(t, r, http.MethodPost, "/api/recoveryexercise", token, gin.H{
		"name": "Squat", "description": "Bodyweight squat",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create exercise: %d", w.Code)
	}
	var ex services.ExerciseInfo
	decodeJSON(t, w, &ex)

	w = doJSON(t, r, http.MethodPost, "/api/recoveryplan", token, gin.H{"name": "Week 1"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create plan: %d %s", w.Code, w.Body.String())
	}
	var plan services.PlanInfo
	decodeJSON(t, w, &plan)

	// Assign the exercise to day 1.
	w = doJSON(t, r, http.MethodPut,
		fmt.Sprintf("/api/recoveryplan/assign/%d/%d", ex.ID, plan.ID), token,
		gin.H{"dayNumber": 1, "sets": 3, "reps": 10})
	if w.Code != http.StatusOK {
		t.Fatalf("assign exercise: %d %s", w.Code, w.Body.String())
	}
	decodeJSON(t, w, &plan)
	if len(plan.WorkoutDays) != 1 || len(plan.WorkoutDays[0].Exercises) != 1 {
		t.Fatalf("expected one assignment, got %+v", plan.WorkoutDays)
	}

	// Unlinking the last exercise removes the day.
	w = doJSON(t, r, http.MethodPatch,
		fmt.Sprintf("/api/recoveryplan/unlink/%d/%d", ex.ID, plan.ID), token,
		gin.H{"dayNumber": 1})
	if w.Code != http.StatusOK {
		t.Fatalf("unlink exercise: %d %s", w.Code, w.Body.String())
	}
	decodeJSON(t, w, &plan)
	if len(plan.WorkoutDays) != 0 {
		t.Fatalf("expected no days after unlink, got %+v", plan.WorkoutDays)
	}

	// Plans are private to their owner.
	other := registerAndLogin(t, r, "other-user")
	if w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/recoveryplan/%d", plan.ID), other, nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign plan, got %d", w.Code)
	}

	if w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/recoveryplan/%d", plan.ID), token, nil); w.Code != http.StatusNoContent {
		t.Fatalf("delete plan: %d", w.Code)
	}
}

func TestRouter_IdempotentPlanCreation(t *testing.T) {
	r := newTestServer(t)
	token := registerAndLogin(t, r, "retry-user")

	post := func(key string) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(gin.H{"name": "Week 1"}); err != nil {
			t.Fatalf("encode: %v", err)
		}
		req := httptest.NewRequest(http.MethodPost, "/api/recoveryplan", &buf)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Idempotency-Key", key)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := post("retry-1")
	if w.Code != http.StatusCreated {
		t.Fatalf("first create: %d %s", w.Code, w.Body.String())
	}
	var created services.PlanInfo
	decodeJSON(t, w, &created)

	// The retry replays the stored result instead of creating a second plan.
	w = post("retry-1")
	if w.Code != http.StatusOK {
		t.Fatalf("replay: expected 200, got %d %s", w.Code, w.Body.String())
	}
	var replayed services.PlanInfo
	decodeJSON(t, w, &replayed)
	if replayed.ID != created.ID {
		t.Fatalf("replay returned a different plan: %d vs %d", replayed.ID, created.ID)
	}

	w = doJSON(t, r, http.MethodGet, "/api/recoveryplan", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list plans: %d", w.Code)
	}
	var plans []services.PlanInfo
	decodeJSON(t, w, &plans)
	if len(plans) != 1 {
		t.Fatalf("expected exactly one plan after retry, got %d", len(plans))
	}
}

func TestRouter_DoctorJourney(t *testing.T) {
	r := newTestServer(t)
	patient := registerAndLogin(t, r, "patient")
	doctor := registerDoctor(t, r, "doctor")

	// Catalog setup by the patient (any authenticated account may manage it).
	w := doJSON(t, r, http.MethodPost, "/api/recoveryexercise", patient, gin.H{
		"name": "Heel Slide", "description": "Knee mobility drill",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create exercise: %d", w.Code)
	}
	var ex services.ExerciseInfo
	decodeJSON(t, w, &ex)

	w = doJSON(t, r, http.MethodPost, "/api/injury", patient, gin.H{
		"name": "ACL Tear", "description": "Ligament rupture", "bodyPart": "Knee",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create injury: %d", w.Code)
	}
	var inj services.InjuryInfo
	decodeJSON(t, w, &inj)

	// The patient reports the injury as severe.
	w = doJSON(t, r, http.MethodPut, "/api/userinjury/assign", patient, gin.H{
		"injuryId": inj.ID, "isTooSevere": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("assign injury: %d %s", w.Code, w.Body.String())
	}

	// The doctor sees the severe case and claims it.
	w = doJSON(t, r, http.MethodGet, "/api/doctor/injuries", doctor, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("severe patients: %d %s", w.Code, w.Body.String())
	}
	var rows []struct {
		AppUserID string `json:"appUserId"`
		InjuryID  uint   `json:"injuryId"`
	}
	decodeJSON(t, w, &rows)
	if len(rows) != 1 {
		t.Fatalf("expected one severe patient, got %+v", rows)
	}

	w = doJSON(t, r, http.MethodPatch, "/api/doctor/assign-doctor", doctor, gin.H{
		"appUserId": rows[0].AppUserID, "injuryId": rows[0].InjuryID,
	})
	if w.Code != http.StatusNoContent {
		t.Fatalf("assign doctor: %d %s", w.Code, w.Body.String())
	}

	// Once linked, the doctor authors a plan for the patient.
	w = doJSON(t, r, http.MethodPost, "/api/doctor/recovery-plan", doctor, gin.H{
		"appUserId": rows[0].AppUserID,
		"name":      "Post-op week 1",
		"workoutDays": []gin.H{
			{"dayNumber": 1, "exercises": []gin.H{{"recoveryExerciseId": ex.ID, "sets": 2, "reps": 12}}},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("doctor create plan: %d %s", w.Code, w.Body.String())
	}
	var plan services.PlanInfo
	decodeJSON(t, w, &plan)
	if !plan.IsCreatedByDoctor {
		t.Fatalf("expected doctor-authored plan, got %+v", plan)
	}

	// The patient sees the plan among their own.
	w = doJSON(t, r, http.MethodGet, "/api/recoveryplan", patient, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("patient list plans: %d", w.Code)
	}
	var plans []services.PlanInfo
	decodeJSON(t, w, &plans)
	if len(plans) != 1 || plans[0].ID != plan.ID {
		t.Fatalf("expected patient to see the doctor's plan, got %+v", plans)
	}

	// Release the patient again.
	w = doJSON(t, r, http.MethodDelete, "/api/doctor/unassign-doctor", doctor, gin.H{
		"appUserId": rows[0].AppUserID, "injuryId": rows[0].InjuryID,
	})
	if w.Code != http.StatusNoContent {
		t.Fatalf("unassign doctor: %d %s", w.Code, w.Body.String())
	}
}

func TestRouter_InjuryHistoryReporting(t *testing.T) {
	r := newTestServer(t)
	token := registerAndLogin(t, r, "history-user")

	w := doJSON(t, r, http.MethodPost, "/api/injury", token, gin.H{
		"name": "Shin Splints", "description": "Overuse", "bodyPart": "Shin",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create injury: %d", w.Code)
	}
	var inj services.InjuryInfo
	decodeJSON(t, w, &inj)

	w = doJSON(t, r, http.MethodPut, "/api/userinjury/assign", token, gin.H{
		"injuryId": inj.ID, "isTooSevere": false,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("assign: %d %s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/userinjury/unlink/%d", inj.ID), token, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("unlink: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/statistics/user/injury-history", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("history: %d %s", w.Code, w.Body.String())
	}
	var hist []struct {
		InjuryID uint    `json:"injuryId"`
		EndDate  *string `json:"endDate"`
	}
	decodeJSON(t, w, &hist)
	if len(hist) != 1 || hist[0].InjuryID != inj.ID {
		t.Fatalf("expected one history row, got %+v", hist)
	}
	if hist[0].EndDate == nil {
		t.Fatalf("expected closed interval, got open")
	}
}
