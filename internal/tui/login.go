package tui

import (
	"context"
	"strings"

	"realworlded-cli/internal/api"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type loginState struct {
	email    textinput.Model
	password textinput.Model
	focus    int // 0 email, 1 password
	errText  string
	busy     bool
}

func newLoginState() loginState {
	email := textinput.New()
	email.Placeholder = "your@email.com"
	email.CharLimit = 254
	email.Prompt = "Email    > "

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.Prompt = "Password > "

	return loginState{email: email, password: password}
}

func (s *loginState) focusCmd() tea.Cmd {
	s.focus = 0
	return s.email.Focus()
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.login.busy {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m.navigate(viewLanding)
		case "tab", "shift+tab", "up", "down":
			if m.login.focus == 0 {
				m.login.focus = 1
				m.login.email.Blur()
				return m, m.login.password.Focus()
			}
			m.login.focus = 0
			m.login.password.Blur()
			return m, m.login.email.Focus()
		case "enter":
			if m.login.focus == 0 {
				m.login.focus = 1
				m.login.email.Blur()
				return m, m.login.password.Focus()
			}
			return m.submitLogin()
		}

	case loginTokenMsg:
		if msg.err != nil {
			m.login.busy = false
			m.login.errText = api.Detail(msg.err, "Login failed. Please check your credentials.")
			return m, nil
		}
		// Persist the token before fetching the profile: the profile call
		// itself authenticates with it.
		m.st.Auth.SetAuth(nil, msg.token)
		return m, m.fetchProfileCmd(msg.token)

	case profileMsg:
		m.login.busy = false
		if msg.err != nil {
			m.login.errText = api.Detail(msg.err, "Login failed. Please check your credentials.")
			return m, nil
		}
		m.st.Auth.SetAuth(msg.user, msg.token)
		return m.navigate(viewDashboard)
	}

	var cmd tea.Cmd
	if m.login.focus == 0 {
		m.login.email, cmd = m.login.email.Update(msg)
	} else {
		m.login.password, cmd = m.login.password.Update(msg)
	}
	return m, cmd
}

func (m appModel) submitLogin() (tea.Model, tea.Cmd) {
	email := strings.TrimSpace(m.login.email.Value())
	password := m.login.password.Value()
	if email == "" || password == "" {
		m.login.errText = "Email and password are required."
		return m, nil
	}
	m.login.busy = true
	m.login.errText = ""

	a := m.api
	timeout := m.cfg.Timeout
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		token, err := a.Auth.Login(ctx, email, password)
		return loginTokenMsg{token: token, err: err}
	}
}

func (m appModel) fetchProfileCmd(token string) tea.Cmd {
	a := m.api
	timeout := m.cfg.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		u, err := a.Auth.Me(ctx)
		return profileMsg{user: u, token: token, err: err}
	}
}

func (m appModel) viewLogin() string {
	lines := []string{
		styleAccent().Render("Welcome back to RealWorldEd"),
		"",
		m.login.email.View(),
		m.login.password.View(),
	}
	if m.login.errText != "" {
		lines = append(lines, "", styleError().Render(m.login.errText))
	}
	if m.login.busy {
		lines = append(lines, "", styleMuted().Render("Logging in..."))
	}
	lines = append(lines, "", styleMuted().Render("No account yet? esc, then s to sign up."))
	return strings.Join(lines, "\n")
}
