package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the immutable process configuration, loaded once at
// startup and passed to every component that needs it.
type Config struct {
	Port    string
	GinMode string

	DSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret    string
	TokenVersion string
	AccessTTL    time.Duration
	ResetTTL     time.Duration

	OTPLength int
	OTPTTL    time.Duration

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string

	TwilioSID    string
	TwilioToken  string
	TwilioNumber string

	StripeSecretKey  string
	StripeAPIURL     string
	StripeSuccessURL string
	StripeCancelURL  string

	CheckoutLockTTL time.Duration
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

// Load reads configuration from the environment (a .env file is
// honoured when present) and refuses to start the process when a
// required variable is absent.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:             env("PORT", "8080"),
		GinMode:          env("GIN_MODE", "release"),
		DSN:              buildDSN(),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		TokenVersion:     env("JWT_TOKEN_VERSION", "v1"),
		SMTPHost:         os.Getenv("SMTP_HOST"),
		SMTPUser:         os.Getenv("SMTP_USER"),
		SMTPPass:         os.Getenv("SMTP_PASS"),
		TwilioSID:        os.Getenv("TWILIO_SID"),
		TwilioToken:      os.Getenv("TWILIO_TOKEN"),
		TwilioNumber:     os.Getenv("TWILIO_NUMBER"),
		StripeSecretKey:  os.Getenv("STRIPE_SECRET_KEY"),
		StripeAPIURL:     env("STRIPE_API_URL", "https://api.stripe.com"),
		StripeSuccessURL: os.Getenv("STRIPE_SUCCESS_URL"),
		StripeCancelURL:  os.Getenv("STRIPE_CANCEL_URL"),
	}

	var err error
	if cfg.RedisDB, err = envInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.SMTPPort, err = envInt("SMTP_PORT", 587); err != nil {
		return nil, err
	}
	if cfg.OTPLength, err = envInt("OTP_LENGTH", 6); err != nil {
		return nil, err
	}
	if cfg.OTPTTL, err = envDuration("OTP_TTL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.AccessTTL, err = envDuration("JWT_ACCESS_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.ResetTTL, err = envDuration("JWT_RESET_TTL", 15*time.Minute); err != nil {
		return nil, err
	}
	if cfg.CheckoutLockTTL, err = envDuration("CHECKOUT_LOCK_TTL", 30*time.Second); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildDSN prefers DATABASE_URL and falls back to discrete DB_* parts
func buildDSN() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	host := os.Getenv("DB_HOST")
	if host == "" {
		return ""
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host,
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		env("DB_PORT", "5432"),
	)
}

func (c *Config) validate() error {
	required := map[string]string{
		"DATABASE_URL or DB_HOST": c.DSN,
		"REDIS_ADDR":              c.RedisAddr,
		"JWT_SECRET":              c.JWTSecret,
		"SMTP_HOST":               c.SMTPHost,
		"SMTP_USER":               c.SMTPUser,
		"SMTP_PASS":               c.SMTPPass,
		"TWILIO_SID":              c.TwilioSID,
		"TWILIO_TOKEN":            c.TwilioToken,
		"TWILIO_NUMBER":           c.TwilioNumber,
		"STRIPE_SECRET_KEY":       c.StripeSecretKey,
		"STRIPE_SUCCESS_URL":      c.StripeSuccessURL,
		"STRIPE_CANCEL_URL":       c.StripeCancelURL,
	}

	var missing []string
	for name, val := range required {
		if val == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}
