package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"realworlded-cli/internal/api"
	"realworlded-cli/internal/config"
	"realworlded-cli/internal/model"
	"realworlded-cli/internal/store"

	"github.com/charmbracelet/x/ansi"
)

func newTestApp(t *testing.T) appModel {
	t.Helper()
	dir := t.TempDir()
	state := store.OpenStateFile(dir)

	st := Stores{
		Auth:     store.NewAuthStore(state),
		Sessions: store.NewSessionStore(),
		Chat:     store.NewChatStore(),
		Theme:    store.NewThemeStore(state),
	}

	cfg := config.Config{
		APIBaseURL: "http://127.0.0.1:1",
		Timeout:    time.Second,
		StateDir:   dir,
		Theme:      "auto",
	}
	c := api.NewClient(cfg.APIBaseURL, cfg.Timeout)
	c.TokenSource = state.Token

	m := newAppModel(cfg, api.New(c), st)
	m.width = 100
	m.height = 40
	m.resize()
	return m
}

func loggedIn(t *testing.T) appModel {
	t.Helper()
	m := newTestApp(t)
	m.st.Auth.SetAuth(&model.User{ID: 1, Email: "demo@realworlded.com", Username: "demo"}, "tok-demo")
	m.view = viewDashboard
	return m
}

func TestLoginFlowReachesDashboard(t *testing.T) {
	m := newTestApp(t)
	m.view = viewLogin

	// Token arrives; it is persisted before the profile call goes out.
	mAny, cmd := m.Update(loginTokenMsg{token: "tok-demo"})
	m2 := mAny.(appModel)
	if got := m2.st.Auth.Token(); got != "tok-demo" {
		t.Fatalf("token not stored, got %q", got)
	}
	if m2.st.Auth.IsAuthenticated() {
		t.Fatal("must not be authenticated before the profile is confirmed")
	}
	if cmd == nil {
		t.Fatal("expected profile fetch command")
	}

	mAny, _ = m2.Update(profileMsg{user: &model.User{ID: 1, Username: "demo"}, token: "tok-demo"})
	m3 := mAny.(appModel)
	if !m3.st.Auth.IsAuthenticated() {
		t.Fatal("expected authenticated after profile")
	}
	if m3.view != viewDashboard {
		t.Fatalf("expected dashboard, got %s", viewToString(m3.view))
	}
}

func TestLoginFailureShowsInlineError(t *testing.T) {
	m := newTestApp(t)
	m.view = viewLogin

	mAny, _ := m.Update(loginTokenMsg{err: &api.APIError{Status: 401, Detail: "Incorrect email or password"}})
	m2 := mAny.(appModel)

	if m2.view != viewLogin {
		t.Fatalf("expected to stay on login, got %s", viewToString(m2.view))
	}
	if m2.login.errText != "Incorrect email or password" {
		t.Fatalf("expected server detail, got %q", m2.login.errText)
	}
	if m2.st.Auth.Token() != "" {
		t.Fatal("failed login must not store a token")
	}

	plain := ansi.Strip(m2.View())
	if !strings.Contains(plain, "Incorrect email or password") {
		t.Fatal("error text not rendered")
	}
}

func TestExpiredAuthAnywhereLandsOnLogin(t *testing.T) {
	m := loggedIn(t)

	mAny, _ := m.Update(sessionsLoadedMsg{err: &api.APIError{Status: 401, Detail: "Could not validate credentials"}})
	m2 := mAny.(appModel)

	if m2.view != viewLogin {
		t.Fatalf("expected login, got %s", viewToString(m2.view))
	}
	if m2.st.Auth.IsAuthenticated() {
		t.Fatal("expected logged out")
	}
	if m2.st.Auth.Token() != "" {
		t.Fatal("token not cleared")
	}
	if !strings.Contains(m2.flash, "Session expired") {
		t.Fatalf("expected session-expired flash, got %q", m2.flash)
	}
}

func TestNonAuthErrorDoesNotLogOut(t *testing.T) {
	m := loggedIn(t)

	mAny, _ := m.Update(sessionsLoadedMsg{err: errors.New("connection refused")})
	m2 := mAny.(appModel)

	if m2.view != viewDashboard {
		t.Fatalf("expected to stay on dashboard, got %s", viewToString(m2.view))
	}
	if !m2.st.Auth.IsAuthenticated() {
		t.Fatal("transport error must not log out")
	}
}

func TestBootWithBadTokenStaysLoggedOut(t *testing.T) {
	m := newTestApp(t)
	m.st.Auth.SetAuth(nil, "stale")
	m.view = viewLanding

	mAny, _ := m.Update(bootMsg{err: &api.APIError{Status: 401}})
	m2 := mAny.(appModel)

	if m2.view != viewLanding {
		t.Fatalf("expected landing, got %s", viewToString(m2.view))
	}
	if m2.st.Auth.Token() != "" {
		t.Fatal("stale token not dropped")
	}
	if strings.Contains(m2.flash, "Session expired") {
		t.Fatal("boot rejection must not flash the expiry notice")
	}
}

func TestBootWithValidTokenOpensDashboard(t *testing.T) {
	m := newTestApp(t)
	m.st.Auth.SetAuth(nil, "tok-demo")
	m.view = viewLanding

	mAny, _ := m.Update(bootMsg{user: &model.User{ID: 1, Username: "demo"}})
	m2 := mAny.(appModel)

	if m2.view != viewDashboard {
		t.Fatalf("expected dashboard, got %s", viewToString(m2.view))
	}
	if !m2.st.Auth.IsAuthenticated() {
		t.Fatal("expected authenticated")
	}
}

func TestFlashExpiresOnlyForMatchingSeq(t *testing.T) {
	m := loggedIn(t)
	m = m.setFlash("first", false, nil)
	staleSeq := m.flashSeq
	m = m.setFlash("second", false, nil)

	mAny, _ := m.Update(flashDoneMsg{seq: staleSeq})
	m2 := mAny.(appModel)
	if m2.flash != "second" {
		t.Fatalf("stale timer cleared the newer flash: %q", m2.flash)
	}

	mAny, _ = m2.Update(flashDoneMsg{seq: m2.flashSeq})
	m3 := mAny.(appModel)
	if m3.flash != "" {
		t.Fatalf("expected cleared flash, got %q", m3.flash)
	}
}
