package tui

import "time"

// formatDate renders timestamps the way the dashboard and reports show them,
// in the viewer's local time.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("Jan 2, 2006 3:04 PM")
}
