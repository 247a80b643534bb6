package api

import (
	"context"
	"fmt"
	"net/http"

	"realworlded-cli/internal/model"
)

type SessionsAPI struct {
	c *Client
}

type CreateSessionRequest struct {
	Mode model.Mode `json:"mode"`

	Subject     string `json:"subject,omitempty"`
	Application string `json:"application,omitempty"`
	ProjectIdea string `json:"project_idea,omitempty"`

	BusinessType string `json:"business_type,omitempty"`
	Location     string `json:"location,omitempty"`
	BusinessIdea string `json:"business_idea,omitempty"`
}

func (s *SessionsAPI) Create(ctx context.Context, req CreateSessionRequest) (*model.Session, error) {
	var out model.Session
	if err := s.c.do(ctx, http.MethodPost, "/sessions/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SessionsAPI) List(ctx context.Context) ([]model.Session, error) {
	var out []model.Session
	if err := s.c.do(ctx, http.MethodGet, "/sessions/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SessionsAPI) Get(ctx context.Context, id int) (*model.Session, error) {
	var out model.Session
	if err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/sessions/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update applies a partial patch server-side and returns the updated record.
// The patch may come from user action or from a chat reply's session_update.
func (s *SessionsAPI) Update(ctx context.Context, id int, patch model.SessionPatch) (*model.Session, error) {
	var out model.Session
	if err := s.c.do(ctx, http.MethodPatch, fmt.Sprintf("/sessions/%d", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SessionsAPI) Delete(ctx context.Context, id int) error {
	return s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/sessions/%d", id), nil, nil)
}
