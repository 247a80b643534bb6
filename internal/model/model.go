package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Mode string

const (
	ModeEducation Mode = "education"
	ModeBusiness  Mode = "business"
)

type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
	SessionPaused    SessionStatus = "paused"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleMentor    Role = "mentor"
	RoleClient    Role = "client"
	RoleEvaluator Role = "evaluator"
	// RoleError marks locally-synthesized failure messages; the backend never
	// produces this role.
	RoleError Role = "error"
)

type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Session struct {
	ID     int           `json:"id"`
	UserID int           `json:"user_id"`
	Mode   Mode          `json:"mode"`
	Status SessionStatus `json:"status"`

	// Education mode fields.
	Subject     string `json:"subject,omitempty"`
	Application string `json:"application,omitempty"`
	ProjectIdea string `json:"project_idea,omitempty"`

	// Business mode fields.
	BusinessType string `json:"business_type,omitempty"`
	Location     string `json:"location,omitempty"`
	BusinessIdea string `json:"business_idea,omitempty"`

	CurrentStage string     `json:"current_stage"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// Topic returns the human-facing subject line for a session: the subject in
// education mode, the business type in business mode.
func (s Session) Topic() string {
	if s.Mode == ModeBusiness {
		return s.BusinessType
	}
	return s.Subject
}

// SessionPatch is a partial session update. Nil fields are left untouched.
// The backend's chat endpoint returns patches in this shape (session_update),
// and the session store applies them locally in the same shape.
type SessionPatch struct {
	Status       *SessionStatus `json:"status,omitempty"`
	Subject      *string        `json:"subject,omitempty"`
	Application  *string        `json:"application,omitempty"`
	ProjectIdea  *string        `json:"project_idea,omitempty"`
	BusinessType *string        `json:"business_type,omitempty"`
	Location     *string        `json:"location,omitempty"`
	BusinessIdea *string        `json:"business_idea,omitempty"`
	CurrentStage *string        `json:"current_stage,omitempty"`
}

func (p SessionPatch) Apply(s *Session) {
	if s == nil {
		return
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.Subject != nil {
		s.Subject = *p.Subject
	}
	if p.Application != nil {
		s.Application = *p.Application
	}
	if p.ProjectIdea != nil {
		s.ProjectIdea = *p.ProjectIdea
	}
	if p.BusinessType != nil {
		s.BusinessType = *p.BusinessType
	}
	if p.Location != nil {
		s.Location = *p.Location
	}
	if p.BusinessIdea != nil {
		s.BusinessIdea = *p.BusinessIdea
	}
	if p.CurrentStage != nil {
		s.CurrentStage = *p.CurrentStage
	}
}

type Message struct {
	ID        int       `json:"id"`
	SessionID int       `json:"session_id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	AgentType string    `json:"agent_type,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// LocalID identifies messages created client-side (optimistic sends,
	// synthetic error messages) before the backend has assigned an ID.
	// Server IDs may collide with a locally-echoed message; both are kept,
	// so rendering keys on LocalID when present.
	LocalID string `json:"-"`
}

// NewLocalMessage builds a client-side message that was never (or not yet)
// seen by the backend.
func NewLocalMessage(sessionID int, role Role, content string) Message {
	return Message{
		SessionID: sessionID,
		Role:      role,
		Content:   strings.TrimSpace(content),
		LocalID:   uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
}

type Report struct {
	ID        int `json:"id"`
	UserID    int `json:"user_id"`
	SessionID int `json:"session_id"`

	// Scores are in [0,10]. The backend may return null for dimensions it
	// did not grade; those decode to zero.
	TechnicalScore     float64 `json:"technical_score"`
	CommunicationScore float64 `json:"communication_score"`
	CreativityScore    float64 `json:"creativity_score"`
	BusinessSenseScore float64 `json:"business_sense_score"`
	OverallScore       float64 `json:"overall_score"`

	Strengths        []string  `json:"strengths,omitempty"`
	Improvements     []string  `json:"improvements,omitempty"`
	DetailedFeedback string    `json:"detailed_feedback,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}
