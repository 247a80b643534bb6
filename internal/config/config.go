// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultAPIURL = "http://localhost:8000/api/v1"

// Config holds all client configuration. The backend location and timeouts
// come from the environment; everything user-facing that must survive a
// restart (token, theme) lives in the state file, not here.
type Config struct {
	APIBaseURL string
	Timeout    time.Duration
	LogLevel   string
	LogFile    string
	// StateDir is where the persisted client state (state.json) lives.
	StateDir string
	// Theme overrides terminal background detection: "light", "dark" or "auto".
	Theme string
}

// Load reads configuration from a .env file (if present) and the environment.
func Load() (Config, error) {
	// Best effort: a missing .env is the normal case.
	_ = godotenv.Load()

	timeoutSecs := getEnvInt("REALWORLDED_TIMEOUT", 30)
	if timeoutSecs <= 0 {
		timeoutSecs = 30
	}

	stateDir := getEnv("REALWORLDED_STATE_DIR", "")
	if stateDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve state dir: %w", err)
		}
		stateDir = filepath.Join(base, "realworlded")
	}

	cfg := Config{
		APIBaseURL: strings.TrimRight(getEnv("REALWORLDED_API_URL", defaultAPIURL), "/"),
		Timeout:    time.Duration(timeoutSecs) * time.Second,
		LogLevel:   getEnv("REALWORLDED_LOG_LEVEL", "warn"),
		LogFile:    getEnv("REALWORLDED_LOG_FILE", ""),
		StateDir:   stateDir,
		Theme:      getEnv("REALWORLDED_THEME", "auto"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the fields that would otherwise fail far from their cause.
func (c Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("REALWORLDED_API_URL must not be empty")
	}
	switch strings.ToLower(c.Theme) {
	case "light", "dark", "auto":
	default:
		return fmt.Errorf("REALWORLDED_THEME must be light, dark or auto (got %q)", c.Theme)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
