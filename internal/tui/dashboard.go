package tui

import (
	"context"
	"fmt"
	"strings"

	"realworlded-cli/internal/api"
	"realworlded-cli/internal/logger"
	"realworlded-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type dashState struct {
	sessionList list.Model
	loading     bool
}

func newDashState() dashState {
	return dashState{sessionList: newList("Sessions", nil)}
}

type sessionItem struct {
	session model.Session
}

func (it sessionItem) Title() string {
	icon := "🎓"
	if it.session.Mode == model.ModeBusiness {
		icon = "💼"
	}
	topic := it.session.Topic()
	if topic == "" {
		topic = "AI Simulation"
	}
	return fmt.Sprintf("%s %s", icon, topic)
}

func (it sessionItem) Description() string {
	return fmt.Sprintf("%s · %s · %s",
		it.session.Mode, it.session.Status, formatDate(it.session.CreatedAt))
}

func (it sessionItem) FilterValue() string { return it.Title() }

func (m appModel) loadSessionsCmd() tea.Cmd {
	a := m.api
	timeout := m.cfg.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		list, err := a.Sessions.List(ctx)
		return sessionsLoadedMsg{sessions: list, err: err}
	}
}

func (m appModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionsLoadedMsg:
		m.dash.loading = false
		if msg.err != nil {
			// Non-critical read: degrade to an empty list.
			logger.Warn("load sessions failed", "err", msg.err)
			m.st.Sessions.SetSessions(nil)
			m.refreshSessionList()
			return m, nil
		}
		m.st.Sessions.SetSessions(msg.sessions)
		m.refreshSessionList()
		return m, nil

	case sessionDeletedMsg:
		if msg.err != nil {
			var cmd tea.Cmd
			m = m.setFlash(api.Detail(msg.err, "Failed to delete session."), true, &cmd)
			return m, cmd
		}
		m.st.Sessions.RemoveSession(msg.id)
		m.refreshSessionList()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "e":
			m.setup = newSetupState(model.ModeEducation)
			return m.navigate(viewSessionSetup)
		case "b":
			m.setup = newSetupState(model.ModeBusiness)
			return m.navigate(viewSessionSetup)
		case "r":
			return m.navigate(viewReports)
		case "t":
			m.st.Theme.ToggleTheme()
			applyThemePreference(m.st.Theme.Theme())
			return m, nil
		case "L":
			m.st.Auth.Logout()
			return m.navigate(viewLogin)
		case "x", "delete":
			if it, ok := m.dash.sessionList.SelectedItem().(sessionItem); ok {
				return m, m.deleteSessionCmd(it.session.ID)
			}
			return m, nil
		case "enter":
			if it, ok := m.dash.sessionList.SelectedItem().(sessionItem); ok {
				m.st.Sessions.SetCurrent(it.session)
				m.chatUI.sessionID = it.session.ID
				return m.navigate(viewChat)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.dash.sessionList, cmd = m.dash.sessionList.Update(msg)
	return m, cmd
}

func (m appModel) deleteSessionCmd(id int) tea.Cmd {
	a := m.api
	timeout := m.cfg.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		err := a.Sessions.Delete(ctx, id)
		return sessionDeletedMsg{id: id, err: err}
	}
}

func (m *appModel) refreshSessionList() {
	var items []list.Item
	for _, s := range m.st.Sessions.Sessions() {
		items = append(items, sessionItem{session: s})
	}
	m.dash.sessionList.SetItems(items)
}

func (m appModel) viewDashboard() string {
	modes := lipgloss.JoinHorizontal(lipgloss.Top,
		modeCard("🎓 Education Mode", "Learn programming with an AI mentor", "e"),
		"  ",
		modeCard("💼 Business Mode", "Pitch ideas to AI investors", "b"),
	)

	var body string
	switch {
	case m.dash.loading:
		body = styleMuted().Render("Loading sessions...")
	case len(m.dash.sessionList.Items()) == 0:
		body = styleMuted().Render("No sessions yet. Start one above.")
	default:
		body = m.dash.sessionList.View()
	}

	return strings.Join([]string{modes, "", "Your sessions", body}, "\n")
}

func modeCard(title, desc, key string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(0, 1)
	inner := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(title),
		styleMuted().Render(desc),
		styleAccent().Render("press "+key),
	)
	return border.Render(inner)
}
