package store

import "realworlded-cli/internal/model"

// SessionStore caches the session list plus the session currently open in
// the chat view. The current session is a view onto the same record held in
// the list: Update and Remove touch both or neither.
type SessionStore struct {
	current  *model.Session
	sessions []model.Session
}

func NewSessionStore() *SessionStore { return &SessionStore{} }

func (s *SessionStore) SetCurrent(sess model.Session) {
	c := sess
	s.current = &c
}

func (s *SessionStore) ClearCurrent() { s.current = nil }

// Current returns a snapshot copy of the current session.
func (s *SessionStore) Current() (model.Session, bool) {
	if s.current == nil {
		return model.Session{}, false
	}
	return *s.current, true
}

func (s *SessionStore) SetSessions(list []model.Session) {
	s.sessions = append([]model.Session(nil), list...)
}

// AddSession prepends: the dashboard shows most-recent-first.
func (s *SessionStore) AddSession(sess model.Session) {
	s.sessions = append([]model.Session{sess}, s.sessions...)
}

// UpdateSession patches the list entry with the given id, and the current
// session when it has the same id. A non-matching id changes nothing.
func (s *SessionStore) UpdateSession(id int, patch model.SessionPatch) {
	if s.current != nil && s.current.ID == id {
		patch.Apply(s.current)
	}
	for i := range s.sessions {
		if s.sessions[i].ID == id {
			patch.Apply(&s.sessions[i])
		}
	}
}

// RemoveSession drops the first list entry with the given id and clears the
// current session iff it has that id.
func (s *SessionStore) RemoveSession(id int) {
	if s.current != nil && s.current.ID == id {
		s.current = nil
	}
	for i := range s.sessions {
		if s.sessions[i].ID == id {
			s.sessions = append(s.sessions[:i], s.sessions[i+1:]...)
			return
		}
	}
}

// Sessions returns a snapshot copy of the list.
func (s *SessionStore) Sessions() []model.Session {
	return append([]model.Session(nil), s.sessions...)
}
