package tui

import (
	"context"
	"fmt"
	"strings"

	"realworlded-cli/internal/api"
	"realworlded-cli/internal/logger"
	"realworlded-cli/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const chatSendFailedText = "Sorry, something went wrong. Please try again."

// minEvaluationMessages gates the evaluate action: with fewer messages in the
// transcript there is nothing meaningful to grade, and no request is made.
const minEvaluationMessages = 5

type chatState struct {
	sessionID int

	input textinput.Model
	vp    viewport.Model

	loadingSession bool
	loadingHistory bool
	evaluating     bool
}

func newChatState(sessionID int) chatState {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "Type your message..."
	input.CharLimit = 2000

	vp := viewport.New(0, 0)

	return chatState{
		sessionID:      sessionID,
		input:          input,
		vp:             vp,
		loadingSession: true,
		loadingHistory: true,
	}
}

func (s *chatState) focusCmd() tea.Cmd {
	return s.input.Focus()
}

func (s *chatState) resize(w, h int) {
	s.vp.Width = w
	vh := h - 4 // session line, input, spacing
	if vh < 4 {
		vh = 4
	}
	s.vp.Height = vh
	s.input.Width = w - 4
}

func (m appModel) loadSessionCmd(id int) tea.Cmd {
	a := m.api
	timeout := m.cfg.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		sess, err := a.Sessions.Get(ctx, id)
		return sessionLoadedMsg{sessionID: id, session: sess, err: err}
	}
}

func (m appModel) loadHistoryCmd(id int) tea.Cmd {
	a := m.api
	timeout := m.cfg.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		msgs, err := a.Chat.Messages(ctx, id)
		return historyLoadedMsg{sessionID: id, messages: msgs, err: err}
	}
}

func (m appModel) sendMessageCmd(id int, text string) tea.Cmd {
	a := m.api
	timeout := m.cfg.Timeout
	return func() tea.Msg {
		// Replies wait on the simulation backend; give them extra room.
		ctx, cancel := context.WithTimeout(context.Background(), 3*timeout)
		defer cancel()
		reply, err := a.Chat.Send(ctx, id, text)
		return chatReplyMsg{sessionID: id, reply: reply, err: err}
	}
}

// applySessionPatchCmd pushes a chat-delivered session_update to the backend
// and fetches the authoritative record back.
func (m appModel) applySessionPatchCmd(id int, patch model.SessionPatch) tea.Cmd {
	a := m.api
	timeout := m.cfg.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if _, err := a.Sessions.Update(ctx, id, patch); err != nil {
			return sessionPatchedMsg{sessionID: id, err: err}
		}
		sess, err := a.Sessions.Get(ctx, id)
		return sessionPatchedMsg{sessionID: id, session: sess, err: err}
	}
}

func (m appModel) evaluateCmd(id int) tea.Cmd {
	a := m.api
	timeout := m.cfg.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*timeout)
		defer cancel()
		res, err := a.Evaluation.Evaluate(ctx, id)
		return evaluationDoneMsg{sessionID: id, result: res, err: err}
	}
}

func (m appModel) updateChat(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := &m.chatUI

	switch msg := msg.(type) {
	case sessionLoadedMsg:
		if msg.sessionID != s.sessionID {
			return m, nil
		}
		s.loadingSession = false
		if msg.err != nil {
			// Without the session record the chat header and evaluation are
			// meaningless; bail back to the dashboard.
			m2, cmd := m.navigate(viewDashboard)
			return m2.setFlash(api.Detail(msg.err, "Failed to load session."), true, &cmd), cmd
		}
		m.st.Sessions.SetCurrent(*msg.session)
		return m, nil

	case historyLoadedMsg:
		if msg.sessionID != s.sessionID {
			return m, nil
		}
		s.loadingHistory = false
		if msg.err != nil {
			// Degrade to an empty transcript; sending still works.
			logger.Warn("history load failed", "session", msg.sessionID, "err", msg.err)
			m.st.Chat.SetMessages(nil)
		} else {
			m.st.Chat.SetMessages(msg.messages)
		}
		m.refreshTranscript(true)
		return m, nil

	case chatReplyMsg:
		if msg.sessionID != s.sessionID {
			return m, nil
		}
		m.st.Chat.SetTyping(false)
		if msg.err != nil {
			// The optimistic user message stays; mark the failure with exactly
			// one error-role line.
			m.st.Chat.AddMessage(model.NewLocalMessage(s.sessionID, model.RoleError, chatSendFailedText))
			m.refreshTranscript(true)
			return m, nil
		}
		agent := model.NewLocalMessage(s.sessionID, msg.reply.AgentType, msg.reply.Message)
		agent.AgentType = string(msg.reply.AgentType)
		m.st.Chat.AddMessage(agent)
		m.refreshTranscript(true)
		if msg.reply.SessionUpdate != nil {
			m.st.Sessions.UpdateSession(s.sessionID, *msg.reply.SessionUpdate)
			return m, m.applySessionPatchCmd(s.sessionID, *msg.reply.SessionUpdate)
		}
		return m, nil

	case sessionPatchedMsg:
		if msg.sessionID != s.sessionID {
			return m, nil
		}
		if msg.err != nil {
			// The local copy already carries the patch; the sync retries on
			// the next update.
			logger.Warn("session patch sync failed", "session", msg.sessionID, "err", msg.err)
			return m, nil
		}
		m.st.Sessions.SetCurrent(*msg.session)
		return m, nil

	case evaluationDoneMsg:
		if msg.sessionID != s.sessionID {
			return m, nil
		}
		s.evaluating = false
		if msg.err != nil {
			var cmd tea.Cmd
			m = m.setFlash(api.Detail(msg.err, "Evaluation failed. Please try again."), true, &cmd)
			return m, cmd
		}
		report := msg.result.Report
		m.detail.report = &report
		m.detail.reportID = report.ID
		return m.navigate(viewReportDetail)

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m.navigate(viewDashboard)
		case "enter":
			return m.submitMessage()
		case "ctrl+e":
			if s.evaluating || m.st.Chat.Typing() {
				return m, nil
			}
			if m.st.Chat.Len() < minEvaluationMessages {
				var cmd tea.Cmd
				m = m.setFlash("Continue the conversation to get evaluated!", false, &cmd)
				return m, cmd
			}
			s.evaluating = true
			return m, m.evaluateCmd(s.sessionID)
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.chatUI.input, cmd = m.chatUI.input.Update(msg)
	cmds = append(cmds, cmd)
	m.chatUI.vp, cmd = m.chatUI.vp.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// submitMessage performs the optimistic send: the user's message goes into
// the transcript immediately and is never rolled back, even if the request
// later fails.
func (m appModel) submitMessage() (tea.Model, tea.Cmd) {
	s := &m.chatUI
	text := strings.TrimSpace(s.input.Value())
	if text == "" || m.st.Chat.Typing() {
		return m, nil
	}
	s.input.Reset()
	m.st.Chat.AddMessage(model.NewLocalMessage(s.sessionID, model.RoleUser, text))
	m.st.Chat.SetTyping(true)
	m.refreshTranscript(true)
	return m, m.sendMessageCmd(s.sessionID, text)
}

// refreshTranscript re-renders the transcript into the viewport.
func (m *appModel) refreshTranscript(toBottom bool) {
	m.chatUI.vp.SetContent(m.renderTranscript())
	if toBottom {
		m.chatUI.vp.GotoBottom()
	}
}

func roleLabel(role model.Role) (string, lipgloss.TerminalColor) {
	switch role {
	case model.RoleUser:
		return "You", colorAccent
	case model.RoleMentor:
		return "Mentor", colorMentor
	case model.RoleClient:
		return "Client", colorClient
	case model.RoleEvaluator:
		return "Evaluator", colorEvaluator
	case model.RoleError:
		return "Error", colorError
	default:
		return string(role), colorMuted
	}
}

func (m appModel) renderTranscript() string {
	width := m.chatUI.vp.Width
	if width < 20 {
		width = 20
	}

	msgs := m.st.Chat.Messages()
	if len(msgs) == 0 {
		return styleMuted().Render("No messages yet. Say hello!")
	}

	var b strings.Builder
	for i, msg := range msgs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		label, color := roleLabel(msg.Role)
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(color).Render(label))
		b.WriteString("\n")
		switch msg.Role {
		case model.RoleUser:
			b.WriteString(msg.Content)
		case model.RoleError:
			b.WriteString(styleError().Render(msg.Content))
		default:
			b.WriteString(renderMarkdown(msg.Content, width-2))
		}
	}
	if m.st.Chat.Typing() {
		b.WriteString("\n\n")
		b.WriteString(styleMuted().Render("Thinking..."))
	}
	return b.String()
}

func (m appModel) viewChat() string {
	s := m.chatUI

	head := styleMuted().Render("Loading session...")
	if sess, ok := m.st.Sessions.Current(); ok {
		icon := "💼"
		if sess.Mode == model.ModeEducation {
			icon = "🎓"
		}
		head = fmt.Sprintf("%s %s  %s",
			icon,
			lipgloss.NewStyle().Bold(true).Render(sess.Topic()),
			styleMuted().Render(fmt.Sprintf("stage: %s  messages: %d", sess.CurrentStage, m.st.Chat.Len())))
	}

	body := s.vp.View()
	if s.loadingHistory {
		body = styleMuted().Render("Loading conversation...")
	}

	return strings.Join([]string{head, body, s.input.View()}, "\n\n")
}
