package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DSN          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	IPPattern    string
	Matcher      string
	LoadTimeout  time.Duration
	RetryBackoff time.Duration
	EnsureSchema bool

	LogLevel  string
	LogFormat string

	AuthEnabled   bool
	AuthIssuer    string
	AuthJWKSURL   string
	AuthAudience  string
	AuthWriteRole string
}

// LoadConfig reads the environment, after loading .env from the working
// directory when one exists.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		DSN:           os.Getenv("DB_CONN"),
		Port:          os.Getenv("PORT"),
		ReadTimeout:   3 * time.Second,
		WriteTimeout:  3 * time.Second,
		IPPattern:     os.Getenv("IP_REGEX"),
		Matcher:       os.Getenv("MATCHER"),
		LoadTimeout:   10 * time.Second,
		RetryBackoff:  5 * time.Second,
		LogLevel:      os.Getenv("LOG_LEVEL"),
		LogFormat:     os.Getenv("LOG_FORMAT"),
		AuthIssuer:    os.Getenv("AUTH_ISSUER"),
		AuthJWKSURL:   os.Getenv("AUTH_JWKS_URL"),
		AuthAudience:  os.Getenv("AUTH_AUDIENCE"),
		AuthWriteRole: os.Getenv("AUTH_WRITE_ROLE"),
	}

	if cfg.DSN == "" {
		return Config{}, fmt.Errorf("missing required environment variable: DB_CONN")
	}
	if cfg.Port == "" {
		cfg.Port = "4040"
	}

	var err error
	if cfg.LoadTimeout, err = durationEnv("LOAD_TIMEOUT", cfg.LoadTimeout); err != nil {
		return Config{}, err
	}
	if cfg.RetryBackoff, err = durationEnv("RELOAD_BACKOFF", cfg.RetryBackoff); err != nil {
		return Config{}, err
	}
	if cfg.EnsureSchema, err = boolEnv("ENSURE_SCHEMA", false); err != nil {
		return Config{}, err
	}
	if cfg.AuthEnabled, err = boolEnv("AUTH_ENABLED", false); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func boolEnv(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
