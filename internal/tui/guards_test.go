package tui

import "testing"

func TestResolveView(t *testing.T) {
	cases := []struct {
		name   string
		target view
		authed bool
		want   view
	}{
		{"landing is always reachable", viewLanding, false, viewLanding},
		{"landing stays for authed users", viewLanding, true, viewLanding},
		{"login for guests", viewLogin, false, viewLogin},
		{"login bounces authed to dashboard", viewLogin, true, viewDashboard},
		{"signup bounces authed to dashboard", viewSignup, true, viewDashboard},
		{"dashboard needs auth", viewDashboard, false, viewLogin},
		{"dashboard for authed", viewDashboard, true, viewDashboard},
		{"setup needs auth", viewSessionSetup, false, viewLogin},
		{"chat needs auth", viewChat, false, viewLogin},
		{"reports needs auth", viewReports, false, viewLogin},
		{"report detail needs auth", viewReportDetail, false, viewLogin},
		{"out of range lands on landing", view(99), true, viewLanding},
		{"negative lands on landing", view(-1), false, viewLanding},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveView(tc.target, tc.authed); got != tc.want {
				t.Fatalf("resolveView(%s, %v) = %s, want %s",
					viewToString(tc.target), tc.authed, viewToString(got), viewToString(tc.want))
			}
		})
	}
}
