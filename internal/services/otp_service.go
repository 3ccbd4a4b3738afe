package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/seabasket/seabasket-api/domain"
)

// OTPServiceImpl implements domain.OTPService. Codes live in Redis
// keyed by email with a TTL; writing a new code replaces the old one,
// so there is a single active code per email.
type OTPServiceImpl struct {
	userRepo    domain.UserRepository
	notifier    domain.NotificationService
	redisClient *redis.Client
	config      OTPConfig
}

type OTPConfig struct {
	Length int
	TTL    time.Duration
}

// NewOTPService creates a new Redis-based OTP service
func NewOTPService(userRepo domain.UserRepository, notifier domain.NotificationService, redisClient *redis.Client, config OTPConfig) domain.OTPService {
	return &OTPServiceImpl{
		userRepo:    userRepo,
		notifier:    notifier,
		redisClient: redisClient,
		config:      config,
	}
}

func otpKey(email string) string {
	return "otp:email:" + email
}

// Send implements domain.OTPService
func (s *OTPServiceImpl) Send(ctx context.Context, email string) error {
	if _, err := s.userRepo.FindByEmail(ctx, email); err != nil {
		return err
	}

	code, err := s.generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate otp code: %w", err)
	}

	if err := s.redisClient.Set(ctx, otpKey(email), code, s.config.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store otp: %w", err)
	}

	body := fmt.Sprintf(
		"<h2>Verify your email address</h2>"+
			"<p>Enter the following code to verify your email address:</p>"+
			"<h2>%s</h2>"+
			"<p>The code is valid for %d minutes.</p>",
		code, int(s.config.TTL.Minutes()))
	if err := s.notifier.SendEmail(email, "Email verification", body); err != nil {
		// Drop the stored code so a failed delivery cannot be replayed.
		s.redisClient.Del(ctx, otpKey(email))
		return fmt.Errorf("failed to send otp email: %w", err)
	}
	return nil
}

// Verify implements domain.OTPService. A matching code marks the
// account verified and consumes the code; a second attempt with the
// same code then fails with ErrOTPNotFound.
func (s *OTPServiceImpl) Verify(ctx context.Context, email, code string) error {
	stored, err := s.redisClient.Get(ctx, otpKey(email)).Result()
	if err == redis.Nil {
		return domain.ErrOTPNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read otp: %w", err)
	}

	if stored != code {
		return domain.ErrOTPInvalid
	}

	if err := s.userRepo.MarkVerified(ctx, email); err != nil {
		return err
	}
	s.redisClient.Del(ctx, otpKey(email))
	return nil
}

// generateCode produces a cryptographically random numeric code
func (s *OTPServiceImpl) generateCode() (string, error) {
	digits := make([]byte, s.config.Length)
	for i := 0; i < s.config.Length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + num.Int64())
	}
	return string(digits), nil
}
