package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Port        string
	DatabaseURL string

	JWTSecret     string
	TokenIssuer   string
	PublicBaseURL string

	NotifyBaseURL string
	NotifyAPIKey  string

	BlobDir string

	// ScheduleUTCOffsetMinutes fixes the offset wall-clock booking times are
	// interpreted under.
	ScheduleUTCOffsetMinutes int

	ReminderInterval    time.Duration
	ReminderLookahead   time.Duration
	BookingExpiryGrace  time.Duration
	AttachmentRetention time.Duration
	ResponseTokenTTL    time.Duration

	CORSOrigins []string
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables win in deployment.
	_ = godotenv.Load()

	cfg := &Config{
		Environment:   envOr("ENV", "development"),
		Port:          envOr("PORT", "9090"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenIssuer:   envOr("TOKEN_ISSUER", "meeting-booking-backend"),
		PublicBaseURL: envOr("PUBLIC_BASE_URL", "http://localhost:9090"),
		NotifyBaseURL: os.Getenv("NOTIFY_BASE_URL"),
		NotifyAPIKey:  os.Getenv("NOTIFY_API_KEY"),
		BlobDir:       envOr("BLOB_DIR", "./blobs"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	var err error

	if cfg.ScheduleUTCOffsetMinutes, err = envInt("SCHEDULE_UTC_OFFSET_MINUTES", 0); err != nil {
		return nil, err
	}

	if cfg.ReminderInterval, err = envDuration("REMINDER_INTERVAL", time.Minute); err != nil {
		return nil, err
	}

	if cfg.ReminderLookahead, err = envDuration("REMINDER_LOOKAHEAD", 35*time.Minute); err != nil {
		return nil, err
	}

	if cfg.BookingExpiryGrace, err = envDuration("BOOKING_EXPIRY_GRACE", 2*time.Hour); err != nil {
		return nil, err
	}

	if cfg.AttachmentRetention, err = envDuration("ATTACHMENT_RETENTION", 30*24*time.Hour); err != nil {
		return nil, err
	}

	if cfg.ResponseTokenTTL, err = envDuration("RESPONSE_TOKEN_TTL", 72*time.Hour); err != nil {
		return nil, err
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = splitAndTrim(origins)
	} else {
		cfg.CORSOrigins = []string{"http://localhost:5173"}
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)

	if v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)

	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}

	return n, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)

	if v == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(v)

	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}

	return d, nil
}

func splitAndTrim(s string) []string {
	var out []string

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}

	return out
}
