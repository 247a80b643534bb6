package tui

import (
	"context"
	"strings"

	"realworlded-cli/internal/api"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type signupState struct {
	inputs  []textinput.Model // email, username, full name, password
	focus   int
	errText string
	busy    bool
}

func newSignupState() signupState {
	mk := func(prompt, placeholder string) textinput.Model {
		in := textinput.New()
		in.Prompt = prompt
		in.Placeholder = placeholder
		in.CharLimit = 254
		return in
	}
	email := mk("Email     > ", "your@email.com")
	username := mk("Username  > ", "username")
	fullName := mk("Full name > ", "optional")
	password := mk("Password  > ", "min 6 characters")
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return signupState{inputs: []textinput.Model{email, username, fullName, password}}
}

func (s *signupState) focusCmd() tea.Cmd {
	s.focus = 0
	return s.inputs[0].Focus()
}

func (s *signupState) moveFocus(delta int) tea.Cmd {
	s.inputs[s.focus].Blur()
	s.focus = (s.focus + delta + len(s.inputs)) % len(s.inputs)
	return s.inputs[s.focus].Focus()
}

func (m appModel) updateSignup(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.signup.busy {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m.navigate(viewLanding)
		case "tab", "down":
			return m, m.signup.moveFocus(1)
		case "shift+tab", "up":
			return m, m.signup.moveFocus(-1)
		case "enter":
			if m.signup.focus < len(m.signup.inputs)-1 {
				return m, m.signup.moveFocus(1)
			}
			return m.submitSignup()
		}

	case signupDoneMsg:
		m.signup.busy = false
		if msg.err != nil {
			m.signup.errText = api.Detail(msg.err, "Sign up failed. Please try again.")
			return m, nil
		}
		m2, cmd := m.navigate(viewLogin)
		return m2.setFlash("Account created. Please log in.", false, &cmd), cmd
	}

	var cmd tea.Cmd
	m.signup.inputs[m.signup.focus], cmd = m.signup.inputs[m.signup.focus].Update(msg)
	return m, cmd
}

func (m appModel) submitSignup() (tea.Model, tea.Cmd) {
	req := api.SignupRequest{
		Email:    strings.TrimSpace(m.signup.inputs[0].Value()),
		Username: strings.TrimSpace(m.signup.inputs[1].Value()),
		FullName: strings.TrimSpace(m.signup.inputs[2].Value()),
		Password: m.signup.inputs[3].Value(),
	}
	if req.Email == "" || req.Username == "" || req.Password == "" {
		m.signup.errText = "Email, username and password are required."
		return m, nil
	}
	if len(req.Password) < 6 {
		m.signup.errText = "Password must be at least 6 characters."
		return m, nil
	}
	m.signup.busy = true
	m.signup.errText = ""

	a := m.api
	timeout := m.cfg.Timeout
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		_, err := a.Auth.Signup(ctx, req)
		return signupDoneMsg{err: err}
	}
}

func (m appModel) viewSignup() string {
	lines := []string{styleAccent().Render("Create your RealWorldEd account"), ""}
	for _, in := range m.signup.inputs {
		lines = append(lines, in.View())
	}
	if m.signup.errText != "" {
		lines = append(lines, "", styleError().Render(m.signup.errText))
	}
	if m.signup.busy {
		lines = append(lines, "", styleMuted().Render("Creating account..."))
	}
	return strings.Join(lines, "\n")
}
