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

	"github.com/avasilev/go-recovery-backend/internal/auth"
	"github.com/avasilev/go-recovery-backend/internal/domain"
)

func newAccountSvcDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:accountsvc_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA foreign_keys=ON;")
	if err := db.AutoMigrate(&domain.AppUser{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func newAccountSvc(t *testing.T) *AccountService {
	t.Helper()
	return &AccountService{
		DB:        newAccountSvcDB(t),
		Tokens:    auth.NewJWTService("test-secret", time.Hour),
		Hasher:    auth.NewPasswordHasher(4), // MinCost keeps the tests fast
		DoctorKey: "doc-key",
	}
}

func TestAccount_Register(t *testing.T) {
	svc := newAccountSvc(t)
	ctx := context.Background()

	got, err := svc.Register(ctx, "alice", "alice@example.com", "Passw0rd")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if got.Username != "alice" || got.Email != "alice@example.com" || got.Token == "" {
		t.Fatalf("unexpected result: %+v", got)
	}

	var user domain.AppUser
	if err := svc.DB.Where("username = ?", "alice").First(&user).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected User role, got %q", user.Role)
	}
	if user.PasswordHash == "Passw0rd" || user.PasswordHash == "" {
		t.Fatalf("password stored in the clear or empty")
	}
}

func TestAccount_Register_WeakPassword(t *testing.T) {
	svc := newAccountSvc(t)
	ctx := context.Background()

	for _, pw := range []string{"", "short", "alllower1", "ALLUPPER1", "NoDigits"} {
		if _, err := svc.Register(ctx, "bob", "bob@example.com", pw); !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("password %q: expected ErrWeakPassword, got %v", pw, err)
		}
	}
}

func TestAccount_Register_DuplicateIsCaseInsensitive(t *testing.T) {
	svc := newAccountSvc(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "alice@example.com", "Passw0rd"); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	if _, err := svc.Register(ctx, "ALICE", "other@example.com", "Passw0rd"); !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser for username, got %v", err)
	}
	if _, err := svc.Register(ctx, "carol", "Alice@Example.COM", "Passw0rd"); !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser for email, got %v", err)
	}
}

func TestAccount_Register_UniqueIndexClashIsDuplicate(t *testing.T) {
	svc := newAccountSvc(t)
	ctx := context.Background()

	// "İ" folds to "i" + combining dot in Go while SQLite's ASCII LOWER()
	// leaves it untouched, so the case-insensitive pre-check misses the
	// repeat and the unique index on the raw column has the last word.
	if _, err := svc.Register(ctx, "İstanbul", "first@example.com", "Passw0rd"); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := svc.Register(ctx, "İstanbul", "second@example.com", "Passw0rd"); !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser from the unique index, got %v", err)
	}
}

func TestAccount_RegisterDoctor(t *testing.T) {
	svc := newAccountSvc(t)
	ctx := context.Background()

	if _, err := svc.RegisterDoctor(ctx, "drno", "drno@example.com", "Passw0rd", "wrong"); !errors.Is(err, ErrInvalidDoctorKey) {
		t.Fatalf("expected ErrInvalidDoctorKey, got %v", err)
	}

	got, err := svc.RegisterDoctor(ctx, "drno", "drno@example.com", "Passw0rd", "doc-key")
	if err != nil {
		t.Fatalf("RegisterDoctor failed: %v", err)
	}
	if got.Token == "" {
		t.Fatalf("expected token, got none")
	}

	var user domain.AppUser
	if err := svc.DB.Where("username = ?", "drno").First(&user).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if user.Role != domain.RoleDoctor {
		t.Fatalf("expected Doctor role, got %q", user.Role)
	}
}

func TestAccount_RegisterDoctor_EmptyConfiguredKeyAlwaysFails(t *testing.T) {
	svc := newAccountSvc(t)
	svc.DoctorKey = ""

	// An unset key must not allow registration with an empty secret.
	if _, err := svc.RegisterDoctor(context.Background(), "drno", "drno@example.com", "Passw0rd", ""); !errors.Is(err, ErrInvalidDoctorKey) {
		t.Fatalf("expected ErrInvalidDoctorKey, got %v", err)
	}
}

func TestAccount_Login(t *testing.T) {
	svc := newAccountSvc(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "alice@example.com", "Passw0rd"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// By username, by email, and case-insensitively.
	for _, login := range []string{"alice", "alice@example.com", "ALICE", "Alice@Example.COM"} {
		got, err := svc.Login(ctx, login, "Passw0rd")
		if err != nil {
			t.Fatalf("Login(%q) failed: %v", login, err)
		}
		if got.Username != "alice" || got.Token == "" {
			t.Fatalf("Login(%q): unexpected result %+v", login, got)
		}
	}
}

func TestAccount_Login_InvalidCredentials(t *testing.T) {
	svc := newAccountSvc(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "alice@example.com", "Passw0rd"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := svc.Login(ctx, "alice", "WrongPass1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Login(ctx, "nobody", "Passw0rd"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown login, got %v", err)
	}
}
