package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/avasilev/go-recovery-backend/internal/domain"
)

func newUserInjuryDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:uisvc_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA foreign_keys=ON;")
	if err := db.AutoMigrate(
		&domain.Injury{},
		&domain.RecoveryExercise{},
		&domain.InjuryRecoveryExercise{},
		&domain.UserInjury{},
		&domain.UserInjuryHistory{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func seedInjury(t *testing.T, db *gorm.DB, id uint) {
	t.Helper()
	inj := &domain.Injury{ID: id, Name: fmt.Sprintf("injury-%d", id), Description: "d", BodyPart: "Knee"}
	if err := db.Create(inj).Error; err != nil {
		t.Fatalf("seed injury: %v", err)
	}
}

func TestUserInjury_Assign_UnknownInjury(t *testing.T) {
	db := newUserInjuryDB(t)
	svc := &UserInjuryService{DB: db}

	_, err := svc.Assign(context.Background(), "u1", 42, false)
	if !errors.Is(err, ErrInjuryNotFound) {
		t.Fatalf("expected ErrInjuryNotFound, got %v", err)
	}
}

func TestUserInjury_Assign_FirstTimeOpensOneHistoryRow(t *testing.T) {
	db := newUserInjuryDB(t)
	seedInjury(t, db, 3)
	svc := &UserInjuryService{DB: db}

	got, err := svc.Assign(context.Background(), "u1", 3, true)
	if err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	if got.InjuryID != 3 || !got.IsTooSevere {
		t.Fatalf("unexpected result: %+v", got)
	}

	var hist []domain.UserInjuryHistory
	if err := db.Where("app_user_id = ? AND injury_id = ?", "u1", 3).Find(&hist).Error; err != nil {
		t.Fatalf("load history: %v", err)
	}
	if len(hist) != 1 {
		t.Fatalf("expected exactly one history row, got %d", len(hist))
	}
	if hist[0].EndDate != nil {
		t.Fatalf("expected open interval, got end=%v", hist[0].EndDate)
	}
	if hist[0].StartDate.IsZero() || time.Since(hist[0].StartDate) > time.Minute {
		t.Fatalf("unexpected start date: %v", hist[0].StartDate)
	}
}

func TestUserInjury_Assign_RepeatUpdatesSeverityWithoutNewHistory(t *testing.T) {
	db := newUserInjuryDB(t)
	seedInjury(t, db, 3)
	svc := &UserInjuryService{DB: db}
	ctx := context.Background()

	if _, err := svc.Assign(ctx, "u1", 3, false); err != nil {
		t.Fatalf("first Assign: %v", err)
	}
	if _, err := svc.Assign(ctx, "u1", 3, true); err != nil {
		t.Fatalf("second Assign: %v", err)
	}

	var link domain.UserInjury
	if err := db.Where("app_user_id = ? AND injury_id = ?", "u1", 3).First(&link).Error; err != nil {
		t.Fatalf("load link: %v", err)
	}
	if !link.IsTooSevere {
		t.Fatalf("expected severity updated in place")
	}

	var links, hist int64
	db.Model(&domain.UserInjury{}).Count(&links)
	db.Model(&domain.UserInjuryHistory{}).Count(&hist)
	if links != 1 || hist != 1 {
		t.Fatalf("expected 1 link and 1 history row, got links=%d hist=%d", links, hist)
	}
}

func TestUserInjury_Unassign_ClosesLatestOpenInterval(t *testing.T) {
	db := newUserInjuryDB(t)
	seedInjury(t, db, 3)
	svc := &UserInjuryService{DB: db}
	ctx := context.Background()

	// A previously closed interval must stay untouched.
	closedEnd := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	old := &domain.UserInjuryHistory{
		AppUserID: "u1", InjuryID: 3,
		StartDate: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   &closedEnd,
	}
	if err := db.Create(old).Error; err != nil {
		t.Fatalf("seed closed interval: %v", err)
	}

	if _, err := svc.Assign(ctx, "u1", 3, false); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if err := svc.Unassign(ctx, "u1", 3); err != nil {
		t.Fatalf("Unassign: %v", err)
	}

	var hist []domain.UserInjuryHistory
	if err := db.Order("start_date asc").Find(&hist).Error; err != nil {
		t.Fatalf("load history: %v", err)
	}
	if len(hist) != 2 {
		t.Fatalf("expected 2 history rows, got %d", len(hist))
	}
	if hist[0].EndDate == nil || !hist[0].EndDate.Equal(closedEnd) {
		t.Fatalf("prior closed interval was modified: %+v", hist[0])
	}
	if hist[1].EndDate == nil {
		t.Fatalf("expected latest interval closed, still open: %+v", hist[1])
	}
	if hist[1].StartDate.After(*hist[1].EndDate) {
		t.Fatalf("start after end: %+v", hist[1])
	}
}

func TestUserInjury_Unassign_MissingLink(t *testing.T) {
	db := newUserInjuryDB(t)
	svc := &UserInjuryService{DB: db}

	err := svc.Unassign(context.Background(), "u1", 9)
	if !errors.Is(err, ErrUserInjuryNotFound) {
		t.Fatalf("expected ErrUserInjuryNotFound, got %v", err)
	}
}

func TestUserInjury_Unassign_NoOpenHistoryStillSucceeds(t *testing.T) {
	db := newUserInjuryDB(t)
	seedInjury(t, db, 3)
	svc := &UserInjuryService{DB: db}
	ctx := context.Background()

	// Create the link directly, without a history row.
	link := &domain.UserInjury{AppUserID: "u1", InjuryID: 3}
	if err := db.Create(link).Error; err != nil {
		t.Fatalf("seed link: %v", err)
	}

	if err := svc.Unassign(ctx, "u1", 3); err != nil {
		t.Fatalf("expected best-effort close to succeed, got %v", err)
	}
}

func TestUserInjury_ListMine(t *testing.T) {
	db := newUserInjuryDB(t)
	seedInjury(t, db, 3)
	if err := db.Create(&domain.RecoveryExercise{ID: 12, Name: "Wrist Flexor Stretch", Description: "d"}).Error; err != nil {
		t.Fatalf("seed exercise: %v", err)
	}
	if err := db.Create(&domain.InjuryRecoveryExercise{InjuryID: 3, RecoveryExerciseID: 12}).Error; err != nil {
		t.Fatalf("seed link: %v", err)
	}

	svc := &UserInjuryService{DB: db}
	ctx := context.Background()
	if _, err := svc.Assign(ctx, "u1", 3, true); err != nil {
		t.Fatalf("Assign: %v", err)
	}

	got, err := svc.ListMine(ctx, "u1")
	if err != nil {
		t.Fatalf("ListMine: %v", err)
	}
	if len(got) != 1 || got[0].InjuryID != 3 || !got[0].IsTooSevere {
		t.Fatalf("unexpected listing: %+v", got)
	}
	if len(got[0].RecoveryExercises) != 1 || got[0].RecoveryExercises[0].ID != 12 {
		t.Fatalf("expected recommended exercise 12, got %+v", got[0].RecoveryExercises)
	}
}
