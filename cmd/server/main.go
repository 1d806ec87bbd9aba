// Command server runs the recovery backend HTTP API.
//
// Startup sequence: load .env (best effort), parse configuration, configure
// logging and tracing, open the SQLite database, migrate and seed the catalog,
// optionally create the demo accounts, then serve HTTP with graceful shutdown.
//
// @title        Recovery Backend API
// @version      1.0
// @description  REST API for physical-rehabilitation data: injury and exercise catalogs, personal injury tracking, recovery plans, and doctor assignments.
// @BasePath     /api
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/avasilev/go-recovery-backend/docs"
	"github.com/avasilev/go-recovery-backend/internal/auth"
	"github.com/avasilev/go-recovery-backend/internal/config"
	"github.com/avasilev/go-recovery-backend/internal/domain"
	httpapi "github.com/avasilev/go-recovery-backend/internal/http"
	"github.com/avasilev/go-recovery-backend/internal/observability"
	"github.com/avasilev/go-recovery-backend/internal/repo"
	"github.com/avasilev/go-recovery-backend/internal/seed"
	"github.com/avasilev/go-recovery-backend/internal/sysutil"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// .env is optional; real deployments use the process environment.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	// Logging
	sysutil.SetLogLevel(cfg.LogLevel)
	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Tracing; APP_VERSION overrides the build-time stamp for container images.
	ver := sysutil.FirstNonEmpty(os.Getenv("APP_VERSION"), version)
	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, ver)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}
	defer func() {
		c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(c); err != nil {
			log.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	// Storage
	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database failed")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	if err := seed.Load(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("catalog seed failed")
	}

	tokens := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)

	if cfg.SeedDemoUsers {
		users := []seed.DemoUser{
			{Role: domain.RoleAdmin, Username: cfg.AdminUser.Username, Email: cfg.AdminUser.Email, Password: cfg.AdminUser.Password},
			{Role: domain.RoleDoctor, Username: cfg.DoctorUser.Username, Email: cfg.DoctorUser.Email, Password: cfg.DoctorUser.Password},
			{Role: domain.RoleUser, Username: cfg.RegularUser.Username, Email: cfg.RegularUser.Email, Password: cfg.RegularUser.Password},
		}
		if err := seed.EnsureUsers(ctx, db, hasher, users); err != nil {
			log.Fatal().Err(err).Msg("demo user seed failed")
		}
	}

	// HTTP
	r := gin.New()
	httpapi.RegisterRoutes(r, db, tokens, hasher, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", ver).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
