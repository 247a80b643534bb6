package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"realworlded-cli/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConfigCommandReportsEffectiveSettings(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("REALWORLDED_STATE_DIR", dir)
	t.Setenv("REALWORLDED_API_URL", "http://api.test/api/v1")

	out, err := runCmd(t, "config")
	require.NoError(t, err)

	var resp struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "http://api.test/api/v1", resp.Data["api_url"])
	assert.Equal(t, dir, resp.Data["state_dir"])
	assert.Equal(t, false, resp.Data["logged_in"])
}

func TestLogoutClearsPersistedToken(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("REALWORLDED_STATE_DIR", dir)
	store.OpenStateFile(dir).SetToken("tok-demo")

	_, err := runCmd(t, "logout")
	require.NoError(t, err)

	assert.Empty(t, store.OpenStateFile(dir).Token())
}

func TestConfigThemePersists(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("REALWORLDED_STATE_DIR", dir)

	_, err := runCmd(t, "config", "theme", "light")
	require.NoError(t, err)
	assert.Equal(t, store.ThemeLight, store.OpenStateFile(dir).Theme())

	_, err = runCmd(t, "config", "theme", "neon")
	assert.Error(t, err)
}

func TestSignupRejectsShortPasswordWithoutNetwork(t *testing.T) {
	t.Setenv("REALWORLDED_STATE_DIR", t.TempDir())
	t.Setenv("REALWORLDED_API_URL", "http://127.0.0.1:1")

	_, err := runCmd(t, "signup",
		"--email", "a@b.c", "--username", "ab", "--password", "123")
	assert.Error(t, err)
}
