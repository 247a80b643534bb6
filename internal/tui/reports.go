package tui

import (
	"context"
	"fmt"
	"strings"

	"realworlded-cli/internal/logger"
	"realworlded-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type reportsState struct {
	list    list.Model
	reports []model.Report
	loading bool
}

func newReportsState() reportsState {
	return reportsState{list: newList("Reports", nil)}
}

type reportItem struct {
	report model.Report
}

func (it reportItem) Title() string {
	return fmt.Sprintf("Report #%d  ·  overall %.1f", it.report.ID, it.report.OverallScore)
}

func (it reportItem) Description() string {
	return fmt.Sprintf("session %d · %s", it.report.SessionID, formatDate(it.report.CreatedAt))
}

func (it reportItem) FilterValue() string { return it.Title() }

// scoreAverages holds the per-dimension means across a set of reports.
type scoreAverages struct {
	Technical     float64
	Communication float64
	Creativity    float64
	BusinessSense float64
	Overall       float64
}

// reportAverages computes dimension means across reports. Ungraded
// dimensions count as zero, the same way the reports page of the web client
// averaged them.
func reportAverages(reports []model.Report) scoreAverages {
	if len(reports) == 0 {
		return scoreAverages{}
	}
	var avg scoreAverages
	for _, r := range reports {
		avg.Technical += r.TechnicalScore
		avg.Communication += r.CommunicationScore
		avg.Creativity += r.CreativityScore
		avg.BusinessSense += r.BusinessSenseScore
		avg.Overall += r.OverallScore
	}
	n := float64(len(reports))
	avg.Technical /= n
	avg.Communication /= n
	avg.Creativity /= n
	avg.BusinessSense /= n
	avg.Overall /= n
	return avg
}

func (m appModel) loadReportsCmd() tea.Cmd {
	a := m.api
	timeout := m.cfg.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		reports, err := a.Evaluation.Reports(ctx)
		return reportsLoadedMsg{reports: reports, err: err}
	}
}

func (m appModel) updateReports(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportsLoadedMsg:
		m.reports.loading = false
		if msg.err != nil {
			// Same read-degrade policy as the session list.
			logger.Warn("load reports failed", "err", msg.err)
			m.reports.reports = nil
		} else {
			m.reports.reports = msg.reports
		}
		var items []list.Item
		for _, r := range m.reports.reports {
			items = append(items, reportItem{report: r})
		}
		m.reports.list.SetItems(items)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "esc":
			return m.navigate(viewDashboard)
		case "enter":
			if it, ok := m.reports.list.SelectedItem().(reportItem); ok {
				r := it.report
				m.detail.report = &r
				m.detail.reportID = r.ID
				return m.navigate(viewReportDetail)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.reports.list, cmd = m.reports.list.Update(msg)
	return m, cmd
}

func (m appModel) viewReports() string {
	if m.reports.loading {
		return styleMuted().Render("Loading reports...")
	}
	if len(m.reports.reports) == 0 {
		return styleMuted().Render("No reports yet. Finish a session and get evaluated!")
	}

	avg := reportAverages(m.reports.reports)
	summary := lipgloss.JoinHorizontal(lipgloss.Top,
		avgCard("Technical", avg.Technical),
		"  ",
		avgCard("Communication", avg.Communication),
		"  ",
		avgCard("Creativity", avg.Creativity),
		"  ",
		avgCard("Business", avg.BusinessSense),
		"  ",
		avgCard("Overall", avg.Overall),
	)

	return strings.Join([]string{summary, "", m.reports.list.View()}, "\n")
}

func avgCard(label string, score float64) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorMuted).
		Padding(0, 1)
	inner := lipgloss.JoinVertical(lipgloss.Center,
		styleMuted().Render(label),
		lipgloss.NewStyle().Bold(true).Foreground(scoreColor(score)).Render(fmt.Sprintf("%.1f", score)),
	)
	return border.Render(inner)
}
