package store

import (
	"testing"

	"realworlded-cli/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestAuthStoreStartsUnauthenticatedWithPersistedToken(t *testing.T) {
	dir := t.TempDir()
	OpenStateFile(dir).SetToken("persisted")

	s := NewAuthStore(OpenStateFile(dir))
	assert.Equal(t, "persisted", s.Token())
	assert.Nil(t, s.User())
	// Token alone is not authentication; the profile has to be confirmed.
	assert.False(t, s.IsAuthenticated())
}

func TestAuthStoreSetAuthPersistsToken(t *testing.T) {
	dir := t.TempDir()
	s := NewAuthStore(OpenStateFile(dir))

	u := &model.User{ID: 1, Email: "demo@realworlded.com", Username: "demo"}
	s.SetAuth(u, "tok-abc")

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, u, s.User())
	assert.Equal(t, "tok-abc", OpenStateFile(dir).Token())
}

func TestAuthStoreLogoutClearsEverything(t *testing.T) {
	dir := t.TempDir()
	s := NewAuthStore(OpenStateFile(dir))
	s.SetAuth(&model.User{ID: 1}, "tok-abc")

	s.Logout()

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
	assert.Empty(t, s.Token())
	assert.Empty(t, OpenStateFile(dir).Token())
}

func TestAuthStoreUpdateUserKeepsToken(t *testing.T) {
	s := NewAuthStore(OpenStateFile(t.TempDir()))
	s.SetAuth(&model.User{ID: 1, Username: "old"}, "tok")

	s.UpdateUser(&model.User{ID: 1, Username: "new"})

	assert.Equal(t, "new", s.User().Username)
	assert.Equal(t, "tok", s.Token())
	assert.True(t, s.IsAuthenticated())
}
