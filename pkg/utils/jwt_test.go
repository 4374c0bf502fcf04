package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const secret = "test-secret"

func signToken(t *testing.T, userID string, key string, expiresAt time.Time) string {
	t.Helper()
	claims := JWTClaims{
		UserID: userID,
		Email:  "alice@example.com",
		Name:   "Alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestValidateToken(t *testing.T) {
	userID := uuid.New()
	valid := signToken(t, userID.String(), secret, time.Now().Add(time.Hour))

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"valid", valid, nil},
		{"valid with bearer prefix", "Bearer " + valid, nil},
		{"empty", "", ErrMissingToken},
		{"garbage", "not.a.token", ErrInvalidToken},
		{"wrong secret", signToken(t, userID.String(), "other-secret", time.Now().Add(time.Hour)), ErrInvalidToken},
		{"expired", signToken(t, userID.String(), secret, time.Now().Add(-time.Hour)), ErrExpiredToken},
		{"non-uuid subject", signToken(t, "42", secret, time.Now().Add(time.Hour)), ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userCtx, err := ValidateToken(tt.token, secret)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateToken() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if userCtx.ID != userID {
				t.Errorf("userCtx.ID = %v, want %v", userCtx.ID, userID)
			}
			if userCtx.Email != "alice@example.com" {
				t.Errorf("userCtx.Email = %q", userCtx.Email)
			}
		})
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"bearer token", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"empty header", "", ""},
		{"missing scheme", "abc.def.ghi", ""},
		{"wrong scheme", "Basic abc", ""},
		{"extra parts", "Bearer abc def", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractTokenFromHeader(tt.header); got != tt.want {
				t.Errorf("ExtractTokenFromHeader(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}
