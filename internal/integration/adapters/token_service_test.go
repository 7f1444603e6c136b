package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

func TestTokenService_ValidateAccessToken(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc := NewTokenService("test-secret", "identity")

	t.Run("accepts issued token", func(t *testing.T) {
		token, err := svc.IssueAccessToken(userID, "anna@example.com", time.Hour)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		claims, err := svc.ValidateAccessToken(ctx, token)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if claims.UserID != userID {
			t.Errorf("expected user %s, got %s", userID, claims.UserID)
		}
		if claims.Email != "anna@example.com" {
			t.Errorf("expected email anna@example.com, got %s", claims.Email)
		}
	})

	t.Run("rejects expired token", func(t *testing.T) {
		past := NewTokenService("test-secret", "identity")
		past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := past.IssueAccessToken(userID, "", time.Hour)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		_, err = svc.ValidateAccessToken(ctx, token)
		if !errors.Is(err, domainerror.ErrExpiredToken) {
			t.Errorf("expected ErrExpiredToken, got %v", err)
		}
	})

	sign := func(claims jwt.Claims, method jwt.SigningMethod, key any) string {
		token, err := jwt.NewWithClaims(method, claims).SignedString(key)
		if err != nil {
			t.Fatalf("failed to sign: %v", err)
		}
		return token
	}
	valid := jwt.RegisteredClaims{
		Subject:   userID.String(),
		Issuer:    "identity",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"wrong secret", sign(valid, jwt.SigningMethodHS256, []byte("other"))},
		{"wrong algorithm", sign(valid, jwt.SigningMethodHS512, []byte("test-secret"))},
		{"wrong issuer", sign(jwt.RegisteredClaims{Subject: userID.String(), Issuer: "elsewhere", ExpiresAt: valid.ExpiresAt}, jwt.SigningMethodHS256, []byte("test-secret"))},
		{"missing expiry", sign(jwt.RegisteredClaims{Subject: userID.String(), Issuer: "identity"}, jwt.SigningMethodHS256, []byte("test-secret"))},
		{"subject is not a uuid", sign(jwt.RegisteredClaims{Subject: "anna", Issuer: "identity", ExpiresAt: valid.ExpiresAt}, jwt.SigningMethodHS256, []byte("test-secret"))},
		{"refresh token", sign(CustomClaims{TokenType: "refresh", RegisteredClaims: valid}, jwt.SigningMethodHS256, []byte("test-secret"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateAccessToken(ctx, tt.token)
			if !errors.Is(err, domainerror.ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}
