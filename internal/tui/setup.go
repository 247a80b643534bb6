package tui

import (
	"context"
	"fmt"
	"strings"

	"realworlded-cli/internal/api"
	"realworlded-cli/internal/model"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	setupSubjects = []string{
		"C++", "Java", "Python", "JavaScript", "TypeScript", "Go", "Rust",
		"C#", "Ruby", "PHP", "Swift", "Kotlin", "Other",
	}
	setupApplications = []string{
		"Game Development", "Web Development", "Mobile Apps", "AI/ML",
		"Data Science", "Backend APIs", "Desktop Apps", "IoT",
		"Blockchain", "Cloud Computing", "DevOps", "Other",
	}
	setupBusinessTypes = []string{
		"Startup", "Restaurant", "E-commerce", "SaaS", "Retail Store",
		"Consulting", "Manufacturing", "Healthcare", "Education", "Other",
	}
)

// setupState is the linear three-step session wizard. Step advance is
// blocked until the step's required field is set; the final step creates the
// session, sends the synthesized opening message, and opens the chat.
type setupState struct {
	mode model.Mode
	step int // 1..3

	// choice is the cursor in the current pick list; -1 means nothing chosen
	// yet, which blocks advancing.
	choice int

	subject      string
	application  string
	businessType string
	location     textinput.Model
	idea         textarea.Model

	busy bool
}

func newSetupState(mode model.Mode) setupState {
	location := textinput.New()
	location.Prompt = "> "
	location.Placeholder = "e.g., New York, USA"
	location.CharLimit = 120

	idea := textarea.New()
	idea.ShowLineNumbers = false
	idea.SetHeight(5)
	if mode == model.ModeEducation {
		idea.Placeholder = "E.g., a 2D racing game with multiple levels and power-ups..."
	} else {
		idea.Placeholder = "E.g., a sustainable coffee shop with locally sourced ingredients..."
	}

	return setupState{mode: mode, step: 1, choice: -1, location: location, idea: idea}
}

func (s *setupState) focusCmd() tea.Cmd {
	switch {
	case s.mode == model.ModeBusiness && s.step == 2:
		return s.location.Focus()
	case s.step == 3:
		return s.idea.Focus()
	default:
		return nil
	}
}

func (s setupState) choices() []string {
	if s.mode == model.ModeEducation {
		if s.step == 1 {
			return setupSubjects
		}
		return setupApplications
	}
	return setupBusinessTypes
}

// stepComplete reports whether the current step's required field is filled.
func (s setupState) stepComplete() bool {
	switch {
	case s.step == 1, s.mode == model.ModeEducation && s.step == 2:
		return s.choice >= 0
	case s.mode == model.ModeBusiness && s.step == 2:
		return true // location is optional
	case s.mode == model.ModeEducation && s.step == 3:
		return true // project idea is optional
	default:
		return strings.TrimSpace(s.idea.Value()) != ""
	}
}

func (m appModel) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := &m.setup

	switch msg := msg.(type) {
	case setupDoneMsg:
		s.busy = false
		if msg.err != nil {
			var cmd tea.Cmd
			m = m.setFlash(api.Detail(msg.err, "Failed to start session."), true, &cmd)
			return m, cmd
		}
		m.st.Sessions.SetCurrent(*msg.session)
		m.st.Sessions.AddSession(*msg.session)
		m.chatUI.sessionID = msg.session.ID
		return m.navigate(viewChat)

	case tea.KeyMsg:
		if s.busy {
			return m, nil
		}
		onPicker := s.step == 1 || (s.mode == model.ModeEducation && s.step == 2)
		switch msg.String() {
		case "esc":
			if s.step == 1 {
				return m.navigate(viewDashboard)
			}
			s.step--
			s.restoreChoice()
			return m, s.focusCmd()
		case "up", "k":
			if onPicker {
				if s.choice > 0 {
					s.choice--
				} else if s.choice < 0 {
					s.choice = 0
				}
				return m, nil
			}
		case "down", "j":
			if onPicker {
				if s.choice < len(s.choices())-1 {
					s.choice++
				}
				return m, nil
			}
		case "enter":
			if onPicker || (s.mode == model.ModeBusiness && s.step == 2) {
				if !s.stepComplete() {
					return m, nil
				}
				s.commitChoice()
				s.step++
				s.restoreChoice()
				return m, s.focusCmd()
			}
			// Step 3: textarea wants enter for newlines; submission is ctrl+s.
		case "ctrl+s":
			if s.step == 3 {
				if !s.stepComplete() {
					var cmd tea.Cmd
					m = m.setFlash("Describe your business idea first.", true, &cmd)
					return m, cmd
				}
				s.commitChoice()
				s.busy = true
				return m, m.startSessionCmd(*s)
			}
		}
	}

	var cmd tea.Cmd
	switch {
	case m.setup.mode == model.ModeBusiness && m.setup.step == 2:
		m.setup.location, cmd = m.setup.location.Update(msg)
	case m.setup.step == 3:
		m.setup.idea, cmd = m.setup.idea.Update(msg)
	}
	return m, cmd
}

// commitChoice copies the picker cursor into the named field for the step.
func (s *setupState) commitChoice() {
	if s.choice < 0 {
		return
	}
	switch {
	case s.mode == model.ModeEducation && s.step == 1:
		s.subject = setupSubjects[s.choice]
	case s.mode == model.ModeEducation && s.step == 2:
		s.application = setupApplications[s.choice]
	case s.mode == model.ModeBusiness && s.step == 1:
		s.businessType = setupBusinessTypes[s.choice]
	}
}

// restoreChoice re-seeds the picker cursor when stepping back onto a pick
// step that already has a committed value.
func (s *setupState) restoreChoice() {
	s.choice = -1
	var want string
	switch {
	case s.mode == model.ModeEducation && s.step == 1:
		want = s.subject
	case s.mode == model.ModeEducation && s.step == 2:
		want = s.application
	case s.mode == model.ModeBusiness && s.step == 1:
		want = s.businessType
	default:
		return
	}
	for i, c := range s.choices() {
		if c == want {
			s.choice = i
			return
		}
	}
}

// openingMessage synthesizes the first chat message from the wizard fields.
func (s setupState) openingMessage() string {
	if s.mode == model.ModeEducation {
		msg := fmt.Sprintf("I want to learn %s for %s.", s.subject, s.application)
		if idea := strings.TrimSpace(s.idea.Value()); idea != "" {
			msg += " My project idea: " + idea
		}
		return msg
	}
	msg := fmt.Sprintf("I have a %s business idea", s.businessType)
	if loc := strings.TrimSpace(s.location.Value()); loc != "" {
		msg += " in " + loc
	}
	return msg + ". " + strings.TrimSpace(s.idea.Value())
}

// startSessionCmd creates the session and sends the opening message. These
// are two sequential calls with no atomicity: a failure after the create
// leaves an empty session behind, which is accepted (the dashboard shows it
// and it can be deleted by hand).
func (m appModel) startSessionCmd(s setupState) tea.Cmd {
	a := m.api
	timeout := m.cfg.Timeout

	req := api.CreateSessionRequest{Mode: s.mode}
	if s.mode == model.ModeEducation {
		req.Subject = s.subject
		req.Application = s.application
		req.ProjectIdea = strings.TrimSpace(s.idea.Value())
	} else {
		req.BusinessType = s.businessType
		req.Location = strings.TrimSpace(s.location.Value())
		req.BusinessIdea = strings.TrimSpace(s.idea.Value())
	}
	opening := s.openingMessage()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*timeout)
		defer cancel()
		sess, err := a.Sessions.Create(ctx, req)
		if err != nil {
			return setupDoneMsg{err: err}
		}
		if _, err := a.Chat.Send(ctx, sess.ID, opening); err != nil {
			return setupDoneMsg{err: err}
		}
		return setupDoneMsg{session: sess}
	}
}

func (m appModel) viewSetup() string {
	s := m.setup
	isEdu := s.mode == model.ModeEducation

	title := "💼 Business Mode"
	if isEdu {
		title = "🎓 Education Mode"
	}

	progress := make([]string, 0, 3)
	for i := 1; i <= 3; i++ {
		if i <= s.step {
			progress = append(progress, styleAccent().Render("●"))
		} else {
			progress = append(progress, styleMuted().Render("○"))
		}
	}
	head := fmt.Sprintf("%s  %s  Step %d/3",
		lipgloss.NewStyle().Bold(true).Render(title), strings.Join(progress, " "), s.step)

	var prompt, body string
	switch {
	case isEdu && s.step == 1:
		prompt = "What programming language do you want to learn?"
		body = s.viewPicker()
	case isEdu && s.step == 2:
		prompt = "Where will you apply this knowledge?"
		body = s.viewPicker()
	case isEdu:
		prompt = "Tell us about your project (optional). ctrl+s to start."
		body = s.idea.View()
	case s.step == 1:
		prompt = "What type of business do you want to pitch?"
		body = s.viewPicker()
	case s.step == 2:
		prompt = "Where is your business located?"
		body = s.location.View()
	default:
		prompt = "Describe your business idea. ctrl+s to start."
		body = s.idea.View()
	}

	lines := []string{head, "", prompt, "", body}
	if s.busy {
		lines = append(lines, "", styleMuted().Render("Starting session..."))
	}
	return strings.Join(lines, "\n")
}

func (s setupState) viewPicker() string {
	var b strings.Builder
	for i, c := range s.choices() {
		cursor := "  "
		line := c
		if i == s.choice {
			cursor = styleAccent().Render("> ")
			line = lipgloss.NewStyle().Bold(true).Render(c)
		}
		b.WriteString(cursor + line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
