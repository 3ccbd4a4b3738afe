package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/seabasket/seabasket-api/domain"
	"github.com/seabasket/seabasket-api/internal/mocks"
)

func TestOTPServiceImpl_Send(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return &domain.User{ID: 1, Email: email}, nil
	}
	notifier := mocks.NewMockNotificationService()

	mr, client := newTestRedis(t)
	svc := NewOTPService(userRepo, notifier, client, OTPConfig{Length: 6, TTL: 5 * time.Minute})

	if err := svc.Send(context.Background(), "asha@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	code, err := mr.Get("otp:email:asha@example.com")
	if err != nil {
		t.Fatalf("expected code in redis: %v", err)
	}
	if len(code) != 6 {
		t.Errorf("expected 6-digit code, got %q", code)
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			t.Errorf("expected numeric code, got %q", code)
		}
	}

	email, ok := notifier.LastEmail()
	if !ok {
		t.Fatal("expected verification email")
	}
	if !strings.Contains(email.Body, code) {
		t.Error("email body must carry the generated code")
	}
}

func TestOTPServiceImpl_Send_UnknownUser(t *testing.T) {
	_, client := newTestRedis(t)
	svc := NewOTPService(mocks.NewMockUserRepository(), mocks.NewMockNotificationService(), client, OTPConfig{Length: 6, TTL: time.Minute})

	if err := svc.Send(context.Background(), "nobody@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestOTPServiceImpl_Send_EmailFailureDropsCode(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return &domain.User{ID: 1, Email: email}, nil
	}
	notifier := mocks.NewMockNotificationService()
	notifier.SendEmailFunc = func(to, subject, body string) error {
		return errors.New("smtp down")
	}

	mr, client := newTestRedis(t)
	svc := NewOTPService(userRepo, notifier, client, OTPConfig{Length: 6, TTL: time.Minute})

	if err := svc.Send(context.Background(), "asha@example.com"); err == nil {
		t.Fatal("expected error when email delivery fails")
	}
	if mr.Exists("otp:email:asha@example.com") {
		t.Error("undelivered code must not stay stored")
	}
}

func TestOTPServiceImpl_Send_LastWriteWins(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return &domain.User{ID: 1, Email: email}, nil
	}

	mr, client := newTestRedis(t)
	svc := NewOTPService(userRepo, mocks.NewMockNotificationService(), client, OTPConfig{Length: 6, TTL: time.Minute})

	if err := svc.Send(context.Background(), "asha@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Send(context.Background(), "asha@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The second send replaced the first code; the stored one is the
	// only code that verifies.
	second, _ := mr.Get("otp:email:asha@example.com")
	if err := svc.Verify(context.Background(), "asha@example.com", second); err != nil {
		t.Fatalf("latest code must verify: %v", err)
	}
}

func TestOTPServiceImpl_Verify(t *testing.T) {
	tests := []struct {
		name          string
		storedCode    string
		submitted     string
		expectedError error
		wantVerified  bool
	}{
		{
			name:         "matching code verifies and consumes",
			storedCode:   "123456",
			submitted:    "123456",
			wantVerified: true,
		},
		{
			name:          "wrong code leaves user unverified",
			storedCode:    "123456",
			submitted:     "654321",
			expectedError: domain.ErrOTPInvalid,
		},
		{
			name:          "no code on file",
			submitted:     "123456",
			expectedError: domain.ErrOTPNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verified := false
			userRepo := mocks.NewMockUserRepository()
			userRepo.MarkVerifiedFunc = func(ctx context.Context, email string) error {
				verified = true
				return nil
			}

			mr, client := newTestRedis(t)
			if tt.storedCode != "" {
				mr.Set("otp:email:asha@example.com", tt.storedCode)
			}
			svc := NewOTPService(userRepo, mocks.NewMockNotificationService(), client, OTPConfig{Length: 6, TTL: time.Minute})

			err := svc.Verify(context.Background(), "asha@example.com", tt.submitted)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected %v, got %v", tt.expectedError, err)
				}
				if verified {
					t.Error("user must stay unverified on failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !verified {
				t.Error("expected user to be marked verified")
			}
			if mr.Exists("otp:email:asha@example.com") {
				t.Error("code must be consumed on success")
			}

			// The consumed code cannot be replayed.
			if err := svc.Verify(context.Background(), "asha@example.com", tt.submitted); !errors.Is(err, domain.ErrOTPNotFound) {
				t.Errorf("expected ErrOTPNotFound on replay, got %v", err)
			}
		})
	}
}

func TestOTPServiceImpl_Verify_ExpiredCode(t *testing.T) {
	mr, client := newTestRedis(t)
	svc := NewOTPService(mocks.NewMockUserRepository(), mocks.NewMockNotificationService(), client, OTPConfig{Length: 6, TTL: time.Minute})

	mr.Set("otp:email:asha@example.com", "123456")
	mr.SetTTL("otp:email:asha@example.com", time.Minute)
	mr.FastForward(2 * time.Minute)

	if err := svc.Verify(context.Background(), "asha@example.com", "123456"); !errors.Is(err, domain.ErrOTPNotFound) {
		t.Fatalf("expected ErrOTPNotFound for expired code, got %v", err)
	}
}
