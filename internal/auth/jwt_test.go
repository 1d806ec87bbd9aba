package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avasilev/go-recovery-backend/internal/domain"
)

func testUser() *domain.AppUser {
	return &domain.AppUser{
		ID:       "11111111-2222-3333-4444-555555555555",
		Username: "alice",
		Email:    "alice@example.com",
		Role:     domain.RoleUser,
	}
}

func TestJWT_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	token, err := svc.Generate(testUser())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("expected compact JWS, got %q", token)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.Subject != "11111111-2222-3333-4444-555555555555" {
		t.Fatalf("unexpected subject %q", claims.Subject)
	}
	if claims.Username != "alice" || claims.Email != "alice@example.com" || claims.Role != domain.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) > time.Hour {
		t.Fatalf("unexpected expiry: %v", claims.ExpiresAt)
	}
}

func TestJWT_Verify_WrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", time.Hour).Generate(testUser())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if _, err := NewJWTService("secret-b", time.Hour).Verify(token); err == nil {
		t.Fatalf("expected verification failure for wrong secret")
	}
}

func TestJWT_Verify_Expired(t *testing.T) {
	svc := NewJWTService("secret", -time.Minute)
	token, err := svc.Generate(testUser())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if _, err := svc.Verify(token); err == nil {
		t.Fatalf("expected verification failure for expired token")
	}
}

func TestJWT_Verify_RejectsNoneAlgorithm(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		Username: "alice",
		Role:     domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	if _, err := svc.Verify(token); err == nil {
		t.Fatalf("expected rejection of alg=none token")
	}
}

func TestJWT_Verify_RejectsUnknownRole(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	u := testUser()
	u.Role = domain.Role("Superuser")

	token, err := svc.Generate(u)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if _, err := svc.Verify(token); err == nil {
		t.Fatalf("expected rejection of unknown role claim")
	}
}

func TestJWT_Verify_Garbage(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	if _, err := svc.Verify("not-a-token"); err == nil {
		t.Fatalf("expected parse failure")
	}
}
