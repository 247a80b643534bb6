package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateFileRoundTrip(t *testing.T) {
	dir := t.TempDir()

	s := OpenStateFile(dir)
	assert.Empty(t, s.Token())
	assert.Empty(t, s.Theme())

	s.SetToken("tok-123")
	s.SetTheme(ThemeLight)

	// A fresh open must read back what was written.
	s2 := OpenStateFile(dir)
	assert.Equal(t, "tok-123", s2.Token())
	assert.Equal(t, ThemeLight, s2.Theme())
}

func TestStateFileClearToken(t *testing.T) {
	dir := t.TempDir()

	s := OpenStateFile(dir)
	s.SetToken("tok-123")
	s.SetToken("")

	s2 := OpenStateFile(dir)
	assert.Empty(t, s2.Token())
}

func TestStateFileCorruptReadsAsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "state.json"), []byte("{not json"), 0o600))

	s := OpenStateFile(dir)
	assert.Empty(t, s.Token())

	// Writing over the corrupt file must work.
	s.SetToken("tok-456")
	assert.Equal(t, "tok-456", OpenStateFile(dir).Token())
}

func TestStateFileMissingDirIsBestEffort(t *testing.T) {
	s := OpenStateFile("")
	s.SetToken("tok") // must not panic or create files
	assert.Equal(t, "tok", s.Token())
}
