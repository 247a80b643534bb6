package store

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// ThemeStore holds the UI theme preference. Persisted like the token so the
// choice survives a restart; defaults to dark.
type ThemeStore struct {
	state *StateFile
	theme string
}

func NewThemeStore(state *StateFile) *ThemeStore {
	t := state.Theme()
	if t != ThemeLight && t != ThemeDark {
		t = ThemeDark
	}
	return &ThemeStore{state: state, theme: t}
}

func (s *ThemeStore) Theme() string { return s.theme }

func (s *ThemeStore) SetTheme(theme string) {
	if theme != ThemeLight && theme != ThemeDark {
		return
	}
	s.theme = theme
	s.state.SetTheme(theme)
}

func (s *ThemeStore) ToggleTheme() {
	if s.theme == ThemeDark {
		s.SetTheme(ThemeLight)
		return
	}
	s.SetTheme(ThemeDark)
}
