package store

import "realworlded-cli/internal/model"

// AuthStore caches the authenticated user and token. The token is the one
// piece of state written through to the StateFile; the profile is rebuilt
// from the backend on the next start.
//
// Invariant: IsAuthenticated() is true iff both user and token are set.
type AuthStore struct {
	state *StateFile

	user  *model.User
	token string
}

// NewAuthStore picks up a previously persisted token, if any. The store
// starts unauthenticated either way: a token without a profile is only a
// candidate until /auth/me confirms it.
func NewAuthStore(state *StateFile) *AuthStore {
	return &AuthStore{state: state, token: state.Token()}
}

func (s *AuthStore) SetAuth(user *model.User, token string) {
	s.user = user
	s.token = token
	s.state.SetToken(token)
}

func (s *AuthStore) Logout() {
	s.user = nil
	s.token = ""
	s.state.SetToken("")
}

func (s *AuthStore) UpdateUser(user *model.User) {
	s.user = user
}

func (s *AuthStore) User() *model.User { return s.user }

func (s *AuthStore) Token() string { return s.token }

func (s *AuthStore) IsAuthenticated() bool {
	return s.user != nil && s.token != ""
}
