package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("REALWORLDED_API_URL", "")
	t.Setenv("REALWORLDED_TIMEOUT", "")
	t.Setenv("REALWORLDED_THEME", "")
	t.Setenv("REALWORLDED_STATE_DIR", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/api/v1", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "auto", cfg.Theme)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("REALWORLDED_API_URL", "https://api.example.com/api/v1/")
	t.Setenv("REALWORLDED_TIMEOUT", "5")
	t.Setenv("REALWORLDED_THEME", "light")
	t.Setenv("REALWORLDED_STATE_DIR", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	// Trailing slash is trimmed so path joins stay predictable.
	assert.Equal(t, "https://api.example.com/api/v1", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "light", cfg.Theme)
}

func TestLoadBadTimeoutFallsBack(t *testing.T) {
	t.Setenv("REALWORLDED_TIMEOUT", "not-a-number")
	t.Setenv("REALWORLDED_STATE_DIR", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoadRejectsUnknownTheme(t *testing.T) {
	t.Setenv("REALWORLDED_THEME", "sepia")
	t.Setenv("REALWORLDED_STATE_DIR", t.TempDir())

	_, err := Load()
	assert.Error(t, err)
}
