package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m appModel) updateLanding(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q":
		return m, tea.Quit
	case "l", "enter":
		return m.navigate(viewLogin)
	case "s":
		return m.navigate(viewSignup)
	case "d":
		// Guarded: lands on login unless a valid session was restored.
		return m.navigate(viewDashboard)
	}
	return m, nil
}

func (m appModel) viewLanding() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).
		Render("RealWorldEd — learn by doing, judged by AI")
	lines := []string{
		title,
		"",
		"Pick a mode, talk to the mentor or pitch the investors,",
		"and get a scored evaluation of how you did.",
		"",
		styleMuted().Render("🎓 Education — learn a language through a real project"),
		styleMuted().Render("💼 Business — pitch an idea to AI clients and investors"),
	}
	return strings.Join(lines, "\n")
}
