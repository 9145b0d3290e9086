package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/employee-management-api/internal/auth"
	"github.com/employee-management-api/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateVerify_RoundTrip(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)

	token, err := tokens.Generate("alice")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	username, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("failed to verify token: %v", err)
	}
	if username != "alice" {
		t.Errorf("expected username 'alice', got '%s'", username)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	other := auth.NewTokenService("other", time.Hour)

	token, err := tokens.Generate("alice")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := other.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	tokens := auth.NewTokenService("secret", -time.Hour)

	token, err := tokens.Generate("alice")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := tokens.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_Garbage(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)

	if _, err := tokens.Verify("not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_UnsignedToken(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to build token: %v", err)
	}

	if _, err := tokens.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_MissingSubject(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)

	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := raw.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("failed to build token: %v", err)
	}

	if _, err := tokens.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
