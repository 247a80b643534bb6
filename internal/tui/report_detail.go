package tui

import (
	"context"
	"fmt"
	"strings"

	"realworlded-cli/internal/api"
	"realworlded-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type reportDetailState struct {
	reportID int
	report   *model.Report
	loading  bool
}

func (m appModel) loadReportCmd(id int) tea.Cmd {
	a := m.api
	timeout := m.cfg.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		r, err := a.Evaluation.Report(ctx, id)
		return reportLoadedMsg{report: r, err: err}
	}
}

func (m appModel) updateReportDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportLoadedMsg:
		m.detail.loading = false
		if msg.err != nil {
			m2, cmd := m.navigate(viewReports)
			return m2.setFlash(api.Detail(msg.err, "Failed to load report."), true, &cmd), cmd
		}
		m.detail.report = msg.report
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "esc":
			m.detail.report = nil
			m.detail.reportID = 0
			return m.navigate(viewReports)
		}
	}
	return m, nil
}

func scoreLine(label string, score float64) string {
	filled := int(score)
	if filled < 0 {
		filled = 0
	}
	if filled > 10 {
		filled = 10
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
	return fmt.Sprintf("%-14s %s %s",
		label,
		lipgloss.NewStyle().Foreground(scoreColor(score)).Render(bar),
		lipgloss.NewStyle().Bold(true).Foreground(scoreColor(score)).Render(fmt.Sprintf("%.1f", score)))
}

func bulletList(items []string) string {
	if len(items) == 0 {
		return styleMuted().Render("  (none)")
	}
	var b strings.Builder
	for _, it := range items {
		b.WriteString("  • " + it + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m appModel) viewReportDetail() string {
	if m.detail.loading || m.detail.report == nil {
		return styleMuted().Render("Loading report...")
	}
	r := m.detail.report

	width := m.width - 4
	if width < 40 {
		width = 40
	}

	head := fmt.Sprintf("%s  %s",
		lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Evaluation Report #%d", r.ID)),
		styleMuted().Render(formatDate(r.CreatedAt)))

	scores := strings.Join([]string{
		scoreLine("Technical", r.TechnicalScore),
		scoreLine("Communication", r.CommunicationScore),
		scoreLine("Creativity", r.CreativityScore),
		scoreLine("Business", r.BusinessSenseScore),
		"",
		scoreLine("Overall", r.OverallScore),
	}, "\n")

	sections := []string{
		head,
		"",
		scores,
		"",
		lipgloss.NewStyle().Bold(true).Foreground(colorSuccess).Render("Strengths"),
		bulletList(r.Strengths),
		"",
		lipgloss.NewStyle().Bold(true).Foreground(colorWarn).Render("Areas to improve"),
		bulletList(r.Improvements),
	}
	if strings.TrimSpace(r.DetailedFeedback) != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Bold(true).Render("Detailed feedback"),
			renderMarkdown(r.DetailedFeedback, width))
	}
	return strings.Join(sections, "\n")
}
