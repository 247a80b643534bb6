package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The TUI must stay readable on both light and dark terminals, so colors are
// lipgloss.AdaptiveColor pairs and "faint" styling is only applied on dark
// backgrounds (faint text on light terminals often becomes illegible).
// The persisted theme preference ("dark"/"light") overrides background
// detection; REALWORLDED_THEME=auto falls back to terminal heuristics.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted    lipgloss.TerminalColor = ac("240", "243")
	colorAccent   lipgloss.TerminalColor = ac("27", "69") // blue
	colorAccentFg lipgloss.TerminalColor = ac("255", "235")

	colorError   lipgloss.TerminalColor = ac("160", "203")
	colorSuccess lipgloss.TerminalColor = ac("28", "42")
	colorWarn    lipgloss.TerminalColor = ac("130", "214")

	colorSurfaceFg lipgloss.TerminalColor = ac("235", "252")

	// Per-agent accents in the chat transcript.
	colorMentor    lipgloss.TerminalColor = ac("26", "75")  // blue
	colorClient    lipgloss.TerminalColor = ac("90", "135") // purple
	colorEvaluator lipgloss.TerminalColor = ac("28", "42")  // green
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleError() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorError)
}

func styleAccent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorAccent)
}

// scoreColor bands a report score: 8+ reads as good, 6+ as fine, the rest
// as needs-work. Matches the web client's banding.
func scoreColor(score float64) lipgloss.TerminalColor {
	switch {
	case score >= 8:
		return colorSuccess
	case score >= 6:
		return colorWarn
	default:
		return colorError
	}
}

// applyColorProfilePreference sets Lip Gloss's color profile. NO_COLOR wins;
// otherwise follow the terminal, nudged by COLORTERM/TERM when the detector
// under-reports (common on macOS Terminal.app).
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") && (profile == termenv.Ascii || profile == termenv.ANSI) {
		profile = termenv.ANSI256
	}
	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures background detection from the user's
// persisted theme. "auto" (or anything unknown) falls back to the COLORFGBG
// heuristic; if even that is absent, Lip Gloss's own probe stands.
func applyThemePreference(theme string) {
	switch strings.ToLower(strings.TrimSpace(theme)) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}

	// COLORFGBG is usually "fg;bg" (sometimes more segments); last segment
	// is the background color index.
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}
