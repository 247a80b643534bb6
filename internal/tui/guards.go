package tui

// view identifies which page the app is showing.
type view int

const (
	viewLanding view = iota
	viewLogin
	viewSignup
	viewDashboard
	viewSessionSetup
	viewChat
	viewReports
	viewReportDetail
)

func viewToString(v view) string {
	switch v {
	case viewLanding:
		return "Landing"
	case viewLogin:
		return "Login"
	case viewSignup:
		return "Sign Up"
	case viewDashboard:
		return "Dashboard"
	case viewSessionSetup:
		return "New Session"
	case viewChat:
		return "Chat"
	case viewReports:
		return "Reports"
	case viewReportDetail:
		return "Report"
	default:
		return "?"
	}
}

// isProtected reports whether the view requires an authenticated user.
func isProtected(v view) bool {
	switch v {
	case viewDashboard, viewSessionSetup, viewChat, viewReports, viewReportDetail:
		return true
	default:
		return false
	}
}

// isPublicOnly reports whether the view is for logged-out users only.
func isPublicOnly(v view) bool {
	return v == viewLogin || v == viewSignup
}

// resolveView is the route guard: protected views bounce unauthenticated
// users to login, public-only views bounce authenticated users to the
// dashboard, and anything out of range lands on the landing page.
func resolveView(target view, authenticated bool) view {
	if target < viewLanding || target > viewReportDetail {
		return viewLanding
	}
	if isProtected(target) && !authenticated {
		return viewLogin
	}
	if isPublicOnly(target) && authenticated {
		return viewDashboard
	}
	return target
}
