package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/securepass/securepass-go/internal/crypto"
)

const devJWTSecret = "dev-secret-change-in-production"

type Config struct {
	Port        string
	Env         string
	DatabaseDSN string
	JWTSecret   string
	JWTExpiry   time.Duration

	// RedisAddr selects the Redis history store, either host:port or a
	// redis:// URL. Empty keeps history in memory.
	RedisAddr     string
	RedisPassword string
	HistorySize   int
	HistoryTTL    time.Duration

	RateLimitRPS   float64
	RateLimitBurst int

	DefaultLength int
	MaxLength     int
}

var ErrDevSecretInProduction = errors.New("JWT_SECRET must be set in production environment")

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DatabaseDSN: getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/securepass?parseTime=true"),
		JWTSecret:   getEnv("JWT_SECRET", devJWTSecret),
		JWTExpiry:   getDuration("JWT_EXPIRY", 24*time.Hour),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		HistorySize:   getInt("HISTORY_SIZE", 5),
		HistoryTTL:    getDuration("HISTORY_TTL", time.Hour),

		RateLimitRPS:   getFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getInt("RATE_LIMIT_BURST", 10),

		DefaultLength: getInt("DEFAULT_LENGTH", 12),
		MaxLength:     getInt("MAX_LENGTH", 128),
	}
}

// Validate rejects configurations that are unsafe to run.
func (c Config) Validate() error {
	if c.Env == "production" && c.JWTSecret == devJWTSecret {
		return ErrDevSecretInProduction
	}
	if c.DefaultLength < crypto.MinLength {
		return fmt.Errorf("DEFAULT_LENGTH must be at least %d", crypto.MinLength)
	}
	// MAX_LENGTH of 0 disables the upper bound.
	if c.MaxLength < 0 {
		return errors.New("MAX_LENGTH must not be negative")
	}
	if c.MaxLength > 0 && c.DefaultLength > c.MaxLength {
		return errors.New("DEFAULT_LENGTH exceeds MAX_LENGTH")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v)
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("invalid number in environment, using default", "key", key, "value", v)
		return fallback
	}
	return f
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", v)
		return fallback
	}
	return d
}
