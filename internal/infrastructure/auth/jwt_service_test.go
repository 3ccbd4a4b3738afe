package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/seabasket/seabasket-api/domain"
)

func newTestJWTService() domain.TokenService {
	return NewJWTService("test-secret", "v1", time.Hour, 15*time.Minute)
}

func TestJWTServiceImpl_UserTokenRoundTrip(t *testing.T) {
	svc := newTestJWTService()

	token, err := svc.GenerateUserToken(42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected user_id 42, got %d", claims.UserID)
	}
	if claims.Email != "" {
		t.Errorf("user tokens must not carry an email, got %q", claims.Email)
	}
	if claims.ExpiresAt <= time.Now().Unix() {
		t.Error("expected expiry in the future")
	}
}

func TestJWTServiceImpl_ResetTokenRoundTrip(t *testing.T) {
	svc := newTestJWTService()

	token, err := svc.GenerateResetToken("asha@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Email != "asha@example.com" {
		t.Errorf("expected email claim, got %q", claims.Email)
	}
	if claims.UserID != 0 {
		t.Errorf("reset tokens must not carry a user id, got %d", claims.UserID)
	}
}

func TestJWTServiceImpl_Validate_Rejections(t *testing.T) {
	svc := newTestJWTService()

	signedWith := func(key []byte, claims jwt.MapClaims) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
		if err != nil {
			t.Fatalf("failed to sign test token: %v", err)
		}
		return token
	}

	tests := []struct {
		name          string
		token         string
		expectedError error
	}{
		{
			name:          "garbage token",
			token:         "not-a-token",
			expectedError: domain.ErrTokenInvalid,
		},
		{
			name: "token signed with a different secret",
			token: signedWith([]byte("attacker-secret"), jwt.MapClaims{
				"user_id": 1,
				"exp":     time.Now().Add(time.Hour).Unix(),
			}),
			expectedError: domain.ErrTokenInvalid,
		},
		{
			name: "expired token",
			token: signedWith([]byte("test-secret_v1"), jwt.MapClaims{
				"user_id": 1,
				"exp":     time.Now().Add(-time.Hour).Unix(),
			}),
			expectedError: domain.ErrTokenExpired,
		},
		{
			name: "token without identity claims",
			token: signedWith([]byte("test-secret_v1"), jwt.MapClaims{
				"exp": time.Now().Add(time.Hour).Unix(),
			}),
			expectedError: domain.ErrTokenMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Validate(tt.token); !errors.Is(err, tt.expectedError) {
				t.Fatalf("expected %v, got %v", tt.expectedError, err)
			}
		})
	}
}

func TestJWTServiceImpl_VersionBumpInvalidatesTokens(t *testing.T) {
	v1 := NewJWTService("test-secret", "v1", time.Hour, time.Hour)
	v2 := NewJWTService("test-secret", "v2", time.Hour, time.Hour)

	token, err := v1.GenerateUserToken(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := v2.Validate(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected tokens from the old version to be rejected, got %v", err)
	}
}
