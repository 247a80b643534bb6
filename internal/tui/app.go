package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"realworlded-cli/internal/api"
	"realworlded-cli/internal/config"
	"realworlded-cli/internal/store"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Stores holds the state containers the app mutates. Handles are passed in
// explicitly; nothing in this package reaches for globals.
type Stores struct {
	Auth     *store.AuthStore
	Sessions *store.SessionStore
	Chat     *store.ChatStore
	Theme    *store.ThemeStore
}

type appModel struct {
	cfg config.Config
	api *api.API
	st  Stores

	width  int
	height int

	view view

	// flash is a transient one-line notice below the body (errors, hints).
	flash      string
	flashErr   bool
	flashSeq   int

	login   loginState
	signup  signupState
	dash    dashState
	setup   setupState
	chatUI  chatState
	reports reportsState
	detail  reportDetailState
}

func newAppModel(cfg config.Config, a *api.API, st Stores) appModel {
	m := appModel{cfg: cfg, api: a, st: st, view: viewLanding}
	m.login = newLoginState()
	m.signup = newSignupState()
	m.dash = newDashState()
	m.reports = newReportsState()
	return m
}

// Run starts the interactive TUI.
func Run(cfg config.Config, a *api.API, st Stores) error {
	applyColorProfilePreference()
	theme := st.Theme.Theme()
	if strings.EqualFold(cfg.Theme, "auto") {
		applyThemePreference(theme)
	} else {
		applyThemePreference(cfg.Theme)
	}

	m := newAppModel(cfg, a, st)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m appModel) Init() tea.Cmd {
	// A persisted token is only a candidate: validate it against the profile
	// endpoint before treating the user as logged in.
	if m.st.Auth.Token() != "" {
		return m.bootCmd()
	}
	return nil
}

func (m appModel) bootCmd() tea.Cmd {
	a := m.api
	timeout := m.cfg.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		u, err := a.Auth.Me(ctx)
		return bootMsg{user: u, err: err}
	}
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case flashDoneMsg:
		if msg.seq == m.flashSeq {
			m.flash = ""
		}
		return m, nil

	case bootMsg:
		if msg.err != nil {
			// Stale or rejected token; stay logged out. The 401 hook has
			// already cleared the persisted copy if that was the reason.
			m.st.Auth.Logout()
			return m, nil
		}
		m.st.Auth.SetAuth(msg.user, m.st.Auth.Token())
		return m.navigate(viewDashboard)
	}

	// Global 401 policy: any expired-auth result logs out and lands on the
	// login page, regardless of which page issued the request. Only an
	// established session can expire; rejected credentials during login or
	// boot are handled inline by their pages.
	if r, ok := msg.(apiResult); ok && api.IsUnauthorized(r.apiErr()) && m.st.Auth.IsAuthenticated() {
		m.st.Auth.Logout()
		m2, cmd := m.navigate(viewLogin)
		return m2.setFlash("Session expired. Please log in again.", true, &cmd), cmd
	}

	switch m.view {
	case viewLanding:
		return m.updateLanding(msg)
	case viewLogin:
		return m.updateLogin(msg)
	case viewSignup:
		return m.updateSignup(msg)
	case viewDashboard:
		return m.updateDashboard(msg)
	case viewSessionSetup:
		return m.updateSetup(msg)
	case viewChat:
		return m.updateChat(msg)
	case viewReports:
		return m.updateReports(msg)
	case viewReportDetail:
		return m.updateReportDetail(msg)
	default:
		return m, nil
	}
}

// navigate switches to target after the route guard has had its say, and
// runs the new page's on-enter work (load commands, input resets).
func (m appModel) navigate(target view) (appModel, tea.Cmd) {
	v := resolveView(target, m.st.Auth.IsAuthenticated())
	m.view = v
	m.flash = ""

	switch v {
	case viewLogin:
		m.login = newLoginState()
		return m, m.login.focusCmd()
	case viewSignup:
		m.signup = newSignupState()
		return m, m.signup.focusCmd()
	case viewDashboard:
		m.dash.loading = true
		m.resize()
		return m, m.loadSessionsCmd()
	case viewSessionSetup:
		return m, m.setup.focusCmd()
	case viewChat:
		m.st.Chat.ClearMessages()
		m.chatUI = newChatState(m.chatUI.sessionID)
		m.resize()
		return m, tea.Batch(
			m.loadSessionCmd(m.chatUI.sessionID),
			m.loadHistoryCmd(m.chatUI.sessionID),
			m.chatUI.focusCmd(),
		)
	case viewReports:
		m.reports.loading = true
		m.resize()
		return m, m.loadReportsCmd()
	case viewReportDetail:
		if m.detail.report == nil && m.detail.reportID != 0 {
			m.detail.loading = true
			return m, m.loadReportCmd(m.detail.reportID)
		}
		return m, nil
	default:
		return m, nil
	}
}

// setFlash shows a transient notice. The returned model carries the new
// flash; the timer command is appended to *cmd when one is given.
func (m appModel) setFlash(text string, isErr bool, cmd *tea.Cmd) appModel {
	m.flash = text
	m.flashErr = isErr
	m.flashSeq++
	seq := m.flashSeq
	timer := tea.Tick(4*time.Second, func(time.Time) tea.Msg { return flashDoneMsg{seq: seq} })
	if cmd == nil {
		return m
	}
	if *cmd == nil {
		*cmd = timer
	} else {
		*cmd = tea.Batch(*cmd, timer)
	}
	return m
}

func (m *appModel) resize() {
	h := m.height - 7 // header, footer, flash
	if h < 8 {
		h = 8
	}
	w := m.width
	if w < 40 {
		w = 40
	}
	m.dash.sessionList.SetSize(w, h-6)
	m.reports.list.SetSize(w, h-5)
	m.chatUI.resize(w, h)
}

func (m appModel) View() string {
	var who string
	if u := m.st.Auth.User(); u != nil {
		who = u.Username
	} else {
		who = "-"
	}
	header := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg).
		Render(fmt.Sprintf("RealWorldEd  %s  User=%s", viewToString(m.view), who))

	var body string
	switch m.view {
	case viewLanding:
		body = m.viewLanding()
	case viewLogin:
		body = m.viewLogin()
	case viewSignup:
		body = m.viewSignup()
	case viewDashboard:
		body = m.viewDashboard()
	case viewSessionSetup:
		body = m.viewSetup()
	case viewChat:
		body = m.viewChat()
	case viewReports:
		body = m.viewReports()
	case viewReportDetail:
		body = m.viewReportDetail()
	}

	flash := ""
	if m.flash != "" {
		if m.flashErr {
			flash = styleError().Render(m.flash)
		} else {
			flash = styleAccent().Render(m.flash)
		}
	}

	footer := styleMuted().Render(m.footerHint())
	parts := []string{header, body}
	if flash != "" {
		parts = append(parts, flash)
	}
	parts = append(parts, footer)
	return strings.Join(parts, "\n\n")
}

func (m appModel) footerHint() string {
	switch m.view {
	case viewLanding:
		return "l: login  s: sign up  q: quit"
	case viewLogin:
		return "tab: next field  enter: submit  esc: back  ctrl+c: quit"
	case viewSignup:
		return "tab: next field  enter: submit  esc: back  ctrl+c: quit"
	case viewDashboard:
		return "e: education  b: business  enter: open  x: delete  r: reports  t: theme  L: logout  q: quit"
	case viewSessionSetup:
		return "enter: next  esc: back  ctrl+c: quit"
	case viewChat:
		return "enter: send  ctrl+e: get evaluated  esc: dashboard  ctrl+c: quit"
	case viewReports:
		return "enter: open report  esc: dashboard  q: quit"
	case viewReportDetail:
		return "esc: back  q: quit"
	default:
		return "ctrl+c: quit"
	}
}

func newList(title string, items []list.Item) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	// We render our own chrome; keep the list minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	// ESC means "back" here, never quit.
	l.KeyMap.Quit.SetKeys("q")
	return l
}
