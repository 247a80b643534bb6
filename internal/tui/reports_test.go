package tui

import (
	"math"
	"testing"

	"realworlded-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestReportAverages(t *testing.T) {
	avg := reportAverages([]model.Report{
		{TechnicalScore: 8, CommunicationScore: 6, CreativityScore: 4, BusinessSenseScore: 2, OverallScore: 5},
		{TechnicalScore: 6, CommunicationScore: 8, CreativityScore: 6, BusinessSenseScore: 4, OverallScore: 6},
	})

	if !almostEqual(avg.Technical, 7) {
		t.Fatalf("technical avg = %v", avg.Technical)
	}
	if !almostEqual(avg.Communication, 7) {
		t.Fatalf("communication avg = %v", avg.Communication)
	}
	if !almostEqual(avg.Creativity, 5) {
		t.Fatalf("creativity avg = %v", avg.Creativity)
	}
	if !almostEqual(avg.BusinessSense, 3) {
		t.Fatalf("business avg = %v", avg.BusinessSense)
	}
	if !almostEqual(avg.Overall, 5.5) {
		t.Fatalf("overall avg = %v", avg.Overall)
	}
}

func TestReportAveragesEmpty(t *testing.T) {
	avg := reportAverages(nil)
	if avg != (scoreAverages{}) {
		t.Fatalf("expected zero averages, got %+v", avg)
	}
}

func TestReportAveragesCountNullScoresAsZero(t *testing.T) {
	// A report with ungraded (zero) dimensions still divides by the full
	// report count.
	avg := reportAverages([]model.Report{
		{TechnicalScore: 8},
		{TechnicalScore: 0},
	})
	if !almostEqual(avg.Technical, 4) {
		t.Fatalf("technical avg = %v", avg.Technical)
	}
}

func TestReportsLoadFailureDegradesToEmpty(t *testing.T) {
	m := loggedIn(t)
	m.view = viewReports
	m.reports.loading = true

	mAny, _ := m.Update(reportsLoadedMsg{err: errTest("boom")})
	m2 := mAny.(appModel)

	if m2.view != viewReports {
		t.Fatalf("read failure must not navigate, got %s", viewToString(m2.view))
	}
	if m2.reports.loading {
		t.Fatal("loading must clear")
	}
	if len(m2.reports.reports) != 0 {
		t.Fatal("expected empty reports")
	}
}

func TestReportsEnterOpensDetailWithoutRefetch(t *testing.T) {
	m := loggedIn(t)
	m.view = viewReports
	mAny, _ := m.Update(reportsLoadedMsg{reports: []model.Report{{ID: 3, SessionID: 42, OverallScore: 7}}})
	m2 := mAny.(appModel)

	mAny, cmd := m2.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m3 := mAny.(appModel)

	if m3.view != viewReportDetail {
		t.Fatalf("expected detail, got %s", viewToString(m3.view))
	}
	if m3.detail.report == nil || m3.detail.report.ID != 3 {
		t.Fatal("selected report not carried over")
	}
	if cmd != nil {
		t.Fatal("an already-loaded report must not be refetched")
	}
}

func TestReportDetailEscClearsSelection(t *testing.T) {
	m := loggedIn(t)
	m.view = viewReportDetail
	r := model.Report{ID: 3}
	m.detail.report = &r
	m.detail.reportID = 3

	mAny, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m2 := mAny.(appModel)

	if m2.view != viewReports {
		t.Fatalf("expected reports, got %s", viewToString(m2.view))
	}
	if m2.detail.report != nil || m2.detail.reportID != 0 {
		t.Fatal("selection must be cleared on the way out")
	}
}
