package config

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

type Config struct {
	Port        string
	StoreDriver string
	SQLiteDSN   string
	SeedData    bool
	CORSOrigins []string

	ReminderPeriod    time.Duration
	ReminderThreshold time.Duration

	JWTSecret string
	JWTTTL    time.Duration

	Log LogConfig
}

type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Load reads .env (when present) into the environment and builds the config
// from it. Values already set in the environment win over the file.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	var errs []error

	cfg := &Config{
		Port:        getEnv("PORT", "4000"),
		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", DriverMemory)),
		SQLiteDSN:   getEnv("SQLITE_DSN", ""),
		SeedData:    getBool("SEED_DATA", true, &errs),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),

		ReminderPeriod:    getDuration("REMINDER_PERIOD", 10*time.Second, &errs),
		ReminderThreshold: getDuration("REMINDER_THRESHOLD", 60*time.Second, &errs),

		JWTSecret: getEnv("JWT_SECRET", "clinicdesk-dev-secret"),
		JWTTTL:    getDuration("JWT_TTL", 12*time.Hour, &errs),

		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			File:       getEnv("LOG_FILE", ""),
			MaxSizeMB:  getInt("LOG_MAX_SIZE_MB", 10, &errs),
			MaxBackups: getInt("LOG_MAX_BACKUPS", 3, &errs),
			MaxAgeDays: getInt("LOG_MAX_AGE_DAYS", 28, &errs),
		},
	}

	if err := cfg.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMemory, DriverSQLite:
	default:
		return fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", DriverMemory, DriverSQLite, c.StoreDriver)
	}
	if c.ReminderPeriod <= 0 {
		return errors.New("REMINDER_PERIOD must be positive")
	}
	if c.ReminderThreshold < 0 {
		return errors.New("REMINDER_THRESHOLD must not be negative")
	}
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	return nil
}

func (c *Config) Address() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getDuration(key string, fallback time.Duration, errs *[]error) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return d
}

func getInt(key string, fallback int, errs *[]error) int {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return n
}

func getBool(key string, fallback bool, errs *[]error) bool {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return b
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
