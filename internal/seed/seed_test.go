package seed

import (
	"context"
	"fmt"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/avasilev/go-recovery-backend/internal/auth"
	"github.com/avasilev/go-recovery-backend/internal/domain"
)

func newSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:seed_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.AppUser{},
		&domain.Injury{},
		&domain.RecoveryExercise{},
		&domain.InjuryRecoveryExercise{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestLoad_PopulatesEmptyCatalog(t *testing.T) {
	db := newSeedDB(t)
	ctx := context.Background()

	if err := Load(ctx, db); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	var exercises, injuries, links int64
	db.Model(&domain.RecoveryExercise{}).Count(&exercises)
	db.Model(&domain.Injury{}).Count(&injuries)
	db.Model(&domain.InjuryRecoveryExercise{}).Count(&links)
	if exercises != 50 || injuries != 30 || links != 60 {
		t.Fatalf("unexpected catalog counts: exercises=%d injuries=%d links=%d", exercises, injuries, links)
	}
}

func TestLoad_IsIdempotent(t *testing.T) {
	db := newSeedDB(t)
	ctx := context.Background()

	if err := Load(ctx, db); err != nil {
		t.Fatalf("first Load: %v", err)
	}
	if err := Load(ctx, db); err != nil {
		t.Fatalf("second Load: %v", err)
	}

	var injuries int64
	db.Model(&domain.Injury{}).Count(&injuries)
	if injuries != 30 {
		t.Fatalf("reload duplicated rows: %d injuries", injuries)
	}
}

func TestLoad_HealsPartialSeed(t *testing.T) {
	db := newSeedDB(t)
	ctx := context.Background()

	// A database with only exercises pre-loaded still gets the rest.
	if err := db.Create(&Exercises).Error; err != nil {
		t.Fatalf("preload exercises: %v", err)
	}
	if err := Load(ctx, db); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	var exercises, injuries int64
	db.Model(&domain.RecoveryExercise{}).Count(&exercises)
	db.Model(&domain.Injury{}).Count(&injuries)
	if exercises != 50 || injuries != 30 {
		t.Fatalf("partial seed not healed: exercises=%d injuries=%d", exercises, injuries)
	}
}

func TestCatalog_LinksReferenceSeededRows(t *testing.T) {
	exIDs := make(map[uint]struct{}, len(Exercises))
	for _, e := range Exercises {
		exIDs[e.ID] = struct{}{}
	}
	injIDs := make(map[uint]struct{}, len(Injuries))
	for _, i := range Injuries {
		injIDs[i.ID] = struct{}{}
	}
	for _, l := range Links {
		if _, ok := injIDs[l.InjuryID]; !ok {
			t.Fatalf("link references unknown injury %d", l.InjuryID)
		}
		if _, ok := exIDs[l.RecoveryExerciseID]; !ok {
			t.Fatalf("link references unknown exercise %d", l.RecoveryExerciseID)
		}
	}
}

func TestEnsureUsers(t *testing.T) {
	db := newSeedDB(t)
	ctx := context.Background()
	hasher := auth.NewPasswordHasher(4)

	users := []DemoUser{
		{Role: domain.RoleAdmin, Username: "admin", Email: "admin@example.com", Password: "Admin0pass"},
		{Role: domain.RoleDoctor, Username: "doc", Email: "doc@example.com", Password: "Doctor0pass"},
		{Role: domain.RoleUser, Username: "", Email: "skip@example.com", Password: "x"}, // incomplete, skipped
	}
	if err := EnsureUsers(ctx, db, hasher, users); err != nil {
		t.Fatalf("EnsureUsers failed: %v", err)
	}

	var n int64
	db.Model(&domain.AppUser{}).Count(&n)
	if n != 2 {
		t.Fatalf("expected 2 accounts, got %d", n)
	}

	// A second run does not duplicate existing accounts, even when the
	// configured casing differs.
	users[0].Username = "ADMIN"
	if err := EnsureUsers(ctx, db, hasher, users); err != nil {
		t.Fatalf("second EnsureUsers: %v", err)
	}
	db.Model(&domain.AppUser{}).Count(&n)
	if n != 2 {
		t.Fatalf("expected accounts unchanged, got %d", n)
	}

	var admin domain.AppUser
	if err := db.Where("username = ?", "admin").First(&admin).Error; err != nil {
		t.Fatalf("load admin: %v", err)
	}
	if admin.Role != domain.RoleAdmin || admin.PasswordHash == "Admin0pass" {
		t.Fatalf("unexpected admin row: %+v", admin)
	}
}
