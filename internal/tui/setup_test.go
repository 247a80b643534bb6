package tui

import (
	"strings"
	"testing"

	"realworlded-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

func setupApp(t *testing.T, mode model.Mode) appModel {
	t.Helper()
	m := loggedIn(t)
	m.setup = newSetupState(mode)
	m.view = viewSessionSetup
	return m
}

func TestWizardBlocksUntilChoiceMade(t *testing.T) {
	m := setupApp(t, model.ModeEducation)

	mAny, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m2 := mAny.(appModel)
	if m2.setup.step != 1 {
		t.Fatalf("enter with no choice must not advance, step=%d", m2.setup.step)
	}

	mAny, _ = m2.Update(tea.KeyMsg{Type: tea.KeyDown})
	m3 := mAny.(appModel)
	mAny, _ = m3.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m4 := mAny.(appModel)
	if m4.setup.step != 2 {
		t.Fatalf("expected step 2 after choosing, got %d", m4.setup.step)
	}
	if m4.setup.subject != setupSubjects[0] {
		t.Fatalf("expected first subject committed, got %q", m4.setup.subject)
	}
}

func TestWizardEscStepsBackThenExits(t *testing.T) {
	m := setupApp(t, model.ModeEducation)
	m.setup.step = 2
	m.setup.subject = "Go"

	mAny, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m2 := mAny.(appModel)
	if m2.setup.step != 1 {
		t.Fatalf("esc should step back, got step %d", m2.setup.step)
	}
	if m2.setup.choices()[m2.setup.choice] != "Go" {
		t.Fatal("stepping back should restore the committed choice")
	}

	mAny, _ = m2.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m3 := mAny.(appModel)
	if m3.view != viewDashboard {
		t.Fatalf("esc on step 1 should exit to dashboard, got %s", viewToString(m3.view))
	}
}

func TestBusinessWizardRequiresIdea(t *testing.T) {
	m := setupApp(t, model.ModeBusiness)
	m.setup.step = 3
	m.setup.businessType = "SaaS"

	mAny, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m2 := mAny.(appModel)
	if m2.setup.busy {
		t.Fatal("empty business idea must not start a session")
	}
	if m2.flash == "" {
		t.Fatal("expected a hint about the missing idea")
	}
}

func TestEducationOpeningMessage(t *testing.T) {
	s := newSetupState(model.ModeEducation)
	s.subject = "Go"
	s.application = "Backend APIs"

	if got := s.openingMessage(); got != "I want to learn Go for Backend APIs." {
		t.Fatalf("unexpected opening message: %q", got)
	}

	s.idea.SetValue("a URL shortener")
	want := "I want to learn Go for Backend APIs. My project idea: a URL shortener"
	if got := s.openingMessage(); got != want {
		t.Fatalf("unexpected opening message: %q", got)
	}
}

func TestBusinessOpeningMessage(t *testing.T) {
	s := newSetupState(model.ModeBusiness)
	s.businessType = "Restaurant"
	s.idea.SetValue("a ramen bar")

	if got := s.openingMessage(); got != "I have a Restaurant business idea. a ramen bar" {
		t.Fatalf("unexpected opening message: %q", got)
	}

	s.location.SetValue("Oslo")
	want := "I have a Restaurant business idea in Oslo. a ramen bar"
	if got := s.openingMessage(); got != want {
		t.Fatalf("unexpected opening message: %q", got)
	}
}

func TestSessionStartFailureStaysInWizard(t *testing.T) {
	m := setupApp(t, model.ModeEducation)
	m.setup.step = 3
	m.setup.busy = true

	mAny, _ := m.Update(setupDoneMsg{err: errTest("backend down")})
	m2 := mAny.(appModel)

	if m2.view != viewSessionSetup {
		t.Fatalf("expected to stay in wizard, got %s", viewToString(m2.view))
	}
	if m2.setup.busy {
		t.Fatal("busy must clear on failure")
	}
	if m2.flash == "" {
		t.Fatal("expected failure flash")
	}
}

func TestSessionStartOpensChat(t *testing.T) {
	m := setupApp(t, model.ModeEducation)
	m.setup.busy = true
	sess := &model.Session{ID: 5, Mode: model.ModeEducation, Subject: "Go", Status: model.SessionActive}

	mAny, cmd := m.Update(setupDoneMsg{session: sess})
	m2 := mAny.(appModel)

	if m2.view != viewChat {
		t.Fatalf("expected chat, got %s", viewToString(m2.view))
	}
	if m2.chatUI.sessionID != 5 {
		t.Fatalf("chat bound to wrong session: %d", m2.chatUI.sessionID)
	}
	cur, ok := m2.st.Sessions.Current()
	if !ok || cur.ID != 5 {
		t.Fatal("new session not set as current")
	}
	if got := m2.st.Sessions.Sessions(); len(got) != 1 || got[0].ID != 5 {
		t.Fatal("new session not added to the list")
	}
	if cmd == nil {
		t.Fatal("expected chat load commands")
	}

	if strings.Contains(m2.View(), "Starting session") {
		t.Fatal("wizard chrome must be gone after the switch")
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }
