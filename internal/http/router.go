// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// CORS, security headers, authentication, idempotency, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Authentication before idempotency so replay records are per-user
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/avasilev/go-recovery-backend/internal/auth"
	"github.com/avasilev/go-recovery-backend/internal/config"
	"github.com/avasilev/go-recovery-backend/internal/domain"
	"github.com/avasilev/go-recovery-backend/internal/http/handlers"
	"github.com/avasilev/go-recovery-backend/internal/http/middleware"
	"github.com/avasilev/go-recovery-backend/internal/repo"
	"github.com/avasilev/go-recovery-backend/internal/services"
)

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), rate limiting, CORS
// and security headers, health and metrics endpoints, and then mounts the
// public API under /api.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured request logs with query redaction
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. Rate limiter (per user/IP, bypass on idempotent replay)
//  8. CORS, gzip, and security headers
//
// Authentication runs per route group, and the idempotency validator sits
// inside the authenticated group, after RequireAuth, so replay records are
// scoped to the verified caller.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, tokens *auth.JWTService, hasher *auth.PasswordHasher, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging (sensitive query params are masked)
	r.Use(middleware.Logger())

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Token-bucket rate limiter per user/IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	r.Use(rl.Handler())

	// 8) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps tests and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderIdempotencyKey},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist (in addition to gin-contrib/cors).
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderIdempotencyKey},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Compress JSON responses for clients that accept it.
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Swagger UI (off by default; the OpenAPI document is registered by the docs package)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← db/auth
	accountSvc := &services.AccountService{
		DB:        db,
		Tokens:    tokens,
		Hasher:    hasher,
		DoctorKey: cfg.Auth.DoctorKey,
	}
	injurySvc := &services.InjuryService{DB: db}
	exerciseSvc := &services.ExerciseService{DB: db}
	planSvc := &services.PlanService{DB: db}
	uiSvc := &services.UserInjuryService{DB: db}
	doctorSvc := &services.DoctorService{DB: db}
	statsSvc := &services.StatsService{DB: db}

	h := handlers.New(accountSvc, injurySvc, exerciseSvc, planSvc, uiSvc, doctorSvc, statsSvc,
		db, cfg.IdempotencyTTL)

	// Public account endpoints (the only unauthenticated API surface)
	account := r.Group("/api/account")
	{
		account.POST("/register", h.Register)
		account.POST("/register/doctor", h.RegisterDoctor)
		account.POST("/login", h.Login)
	}

	// Authenticated API. Idempotency runs after RequireAuth so replay records
	// are keyed by the verified user rather than the raw connection.
	api := r.Group("/api")
	api.Use(middleware.RequireAuth(tokens))
	api.Use(middleware.IdempotencyValidator(
		middleware.IdempotencyOptions{MaxLen: 200},
		func(ctx context.Context, userID, scope, key string, now time.Time) (bool, error) {
			rec, err := repo.GetIdempotency(ctx, db, userID, scope, key, now)
			if err != nil || rec == nil {
				return false, nil
			}
			return true, nil
		},
	))
	{
		// Injury catalog
		api.GET("/injury", h.ListInjuries)
		api.GET("/injury/:id", h.GetInjury)
		api.POST("/injury", h.CreateInjury)
		api.PUT("/injury/:id", h.UpdateInjury)
		api.DELETE("/injury/:id", h.DeleteInjury)

		// Exercise catalog
		api.GET("/recoveryexercise", h.ListExercises)
		api.GET("/recoveryexercise/:id", h.GetExercise)
		api.POST("/recoveryexercise", h.CreateExercise)
		api.PUT("/recoveryexercise/:id", h.UpdateExercise)
		api.DELETE("/recoveryexercise/:id", h.DeleteExercise)

		// Own recovery plans
		api.GET("/recoveryplan", h.ListPlans)
		api.GET("/recoveryplan/:id", h.GetPlan)
		api.POST("/recoveryplan", h.CreatePlan)
		api.PUT("/recoveryplan/assign/:exerciseId/:planId", h.AssignExercise)
		api.PATCH("/recoveryplan/unlink/:exerciseId/:planId", h.UnlinkExercise)
		api.DELETE("/recoveryplan/:id", h.DeletePlan)

		// Own injuries
		api.GET("/userinjury/user/injuries", h.ListUserInjuries)
		api.PUT("/userinjury/assign", h.AssignInjury)
		api.PATCH("/userinjury/unlink/:injuryId", h.UnassignInjury)

		// Reporting
		api.GET("/statistics/user/injury-history", h.InjuryHistory)
	}

	// Doctor-only endpoints
	doctor := api.Group("/doctor")
	doctor.Use(middleware.RequireRole(domain.RoleDoctor))
	{
		doctor.GET("/injuries", h.SeverePatients)
		doctor.GET("/patients", h.MyPatients)
		doctor.GET("/patients/available", h.AvailablePatients)
		doctor.PATCH("/assign-doctor", h.AssignDoctor)
		doctor.DELETE("/unassign-doctor", h.UnassignDoctor)

		doctor.GET("/recovery-plans", h.ListDoctorPlans)
		doctor.GET("/recovery-plan/:id", h.GetDoctorPlan)
		doctor.POST("/recovery-plan", h.CreateDoctorPlan)
		doctor.PUT("/recovery-plan/:id", h.UpdateDoctorPlan)
		doctor.DELETE("/recovery-plan/:id", h.DeleteDoctorPlan)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
