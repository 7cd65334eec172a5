package services

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

func TestGenerateAndExtractToken(t *testing.T) {
	svc := NewJWTService(newTestConfig())

	token, err := svc.GenerateToken(42, "admin")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := svc.ExtractClaims(token)
	if err != nil {
		t.Fatalf("ExtractClaims failed: %v", err)
	}
	if claims.AdminID != 42 {
		t.Errorf("got admin id %d, want 42", claims.AdminID)
	}
	if claims.Role != "admin" {
		t.Errorf("got role %q, want admin", claims.Role)
	}
	if claims.Issuer != "realtrust-http-service" {
		t.Errorf("unexpected issuer %q", claims.Issuer)
	}

	// Validity must follow the configured window.
	wantExpiry := time.Now().Add(168 * time.Hour)
	if diff := claims.ExpiresAt.Time.Sub(wantExpiry); diff < -time.Minute || diff > time.Minute {
		t.Errorf("expiry off by %v", diff)
	}
}

func TestExtractClaimsMalformedToken(t *testing.T) {
	svc := NewJWTService(newTestConfig())

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.ExtractClaims(token); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("token %q: expected ErrTokenInvalid, got %v", token, err)
		}
	}
}

func TestExtractClaimsWrongSignature(t *testing.T) {
	cfg := newTestConfig()
	svc := NewJWTService(cfg)

	otherCfg := newTestConfig()
	otherCfg.JWTSecretKey = "a-different-secret"
	other := NewJWTService(otherCfg)

	token, err := other.GenerateToken(1, "admin")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := svc.ExtractClaims(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for foreign signature, got %v", err)
	}
}

func TestExtractClaimsExpiredToken(t *testing.T) {
	cfg := newTestConfig()
	svc := NewJWTService(cfg)

	// Hand-sign a token that expired an hour ago with the same secret.
	claims := &AdminClaims{
		AdminID: 1,
		Role:    "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			Issuer:    "realtrust-http-service",
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecretKey))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := svc.ExtractClaims(expired); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for expired token, got %v", err)
	}
}
