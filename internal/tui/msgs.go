package tui

import (
	"realworlded-cli/internal/api"
	"realworlded-cli/internal/model"
)

// apiResult is implemented by every message carrying the outcome of a
// backend call, so the Update loop can apply the expired-auth policy in one
// place before per-page handling.
type apiResult interface {
	apiErr() error
}

type flashDoneMsg struct {
	seq int
}

// bootMsg is the result of validating a persisted token on startup.
type bootMsg struct {
	user *model.User
	err  error
}

type loginTokenMsg struct {
	token string
	err   error
}

type profileMsg struct {
	user  *model.User
	token string
	err   error
}

type signupDoneMsg struct {
	err error
}

type sessionsLoadedMsg struct {
	sessions []model.Session
	err      error
}

type sessionDeletedMsg struct {
	id  int
	err error
}

// sessionLoadedMsg and the other chat messages carry the session they were
// issued for; results for a session the user has since left are discarded.
type sessionLoadedMsg struct {
	sessionID int
	session   *model.Session
	err       error
}

type historyLoadedMsg struct {
	sessionID int
	messages  []model.Message
	err       error
}

type chatReplyMsg struct {
	sessionID int
	reply     *api.ChatReply
	err       error
}

type sessionPatchedMsg struct {
	sessionID int
	session   *model.Session
	err       error
}

type setupDoneMsg struct {
	session *model.Session
	err     error
}

type evaluationDoneMsg struct {
	sessionID int
	result    *api.EvaluationResult
	err       error
}

type reportsLoadedMsg struct {
	reports []model.Report
	err     error
}

type reportLoadedMsg struct {
	report *model.Report
	err    error
}

func (m bootMsg) apiErr() error           { return m.err }
func (m loginTokenMsg) apiErr() error     { return m.err }
func (m profileMsg) apiErr() error        { return m.err }
func (m signupDoneMsg) apiErr() error     { return m.err }
func (m sessionsLoadedMsg) apiErr() error { return m.err }
func (m sessionDeletedMsg) apiErr() error { return m.err }
func (m sessionLoadedMsg) apiErr() error  { return m.err }
func (m historyLoadedMsg) apiErr() error  { return m.err }
func (m chatReplyMsg) apiErr() error      { return m.err }
func (m sessionPatchedMsg) apiErr() error { return m.err }
func (m setupDoneMsg) apiErr() error      { return m.err }
func (m evaluationDoneMsg) apiErr() error { return m.err }
func (m reportsLoadedMsg) apiErr() error  { return m.err }
func (m reportLoadedMsg) apiErr() error   { return m.err }
