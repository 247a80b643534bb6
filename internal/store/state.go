// Package store holds the client-side read model: in-memory state containers
// with named mutation methods, plus the small state file that survives a
// restart (token and theme only; everything else is re-fetched).
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

const stateFileName = "state.json"

// stateData is the on-disk shape. Intentionally tiny: persisting chat or
// session data locally is out of scope, so the file holds exactly the keys
// that must outlive the process.
type stateData struct {
	Version int    `json:"version"`
	Token   string `json:"token,omitempty"`
	Theme   string `json:"theme,omitempty"`
}

// StateFile is a best-effort persisted key-value store. Reads come from the
// in-memory copy; each mutation writes through to disk. A missing or corrupt
// file reads as empty defaults.
//
// The mutex exists because the HTTP client's 401 hook can fire from a request
// goroutine while the UI loop reads the token.
type StateFile struct {
	dir string

	mu   sync.Mutex
	data stateData
}

func OpenStateFile(dir string) *StateFile {
	s := &StateFile{dir: dir, data: stateData{Version: 1}}
	b, err := os.ReadFile(s.path())
	if err != nil {
		return s
	}
	var d stateData
	if err := json.Unmarshal(b, &d); err != nil {
		// Corrupted state is treated as missing.
		return s
	}
	if d.Version == 0 {
		d.Version = 1
	}
	s.data = d
	return s
}

func (s *StateFile) path() string { return filepath.Join(s.dir, stateFileName) }

func (s *StateFile) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Token
}

func (s *StateFile) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Token = token
	s.saveLocked()
}

func (s *StateFile) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Theme
}

func (s *StateFile) SetTheme(theme string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Theme = theme
	s.saveLocked()
}

func (s *StateFile) saveLocked() {
	if s.dir == "" {
		return
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return
	}
	b, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return
	}
	// Write-then-rename so a crash mid-write cannot corrupt the state file.
	tmp := s.path() + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return
	}
	_ = os.Rename(tmp, s.path())
}
