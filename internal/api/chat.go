package api

import (
	"context"
	"fmt"
	"net/http"

	"realworlded-cli/internal/model"
)

type ChatAPI struct {
	c *Client
}

// ChatReply is the backend's answer to one user message. SessionUpdate, when
// present, is a patch the caller is expected to apply via the sessions API.
type ChatReply struct {
	Message       string              `json:"message"`
	AgentType     model.Role          `json:"agent_type"`
	SessionUpdate *model.SessionPatch `json:"session_update,omitempty"`
}

func (c *ChatAPI) Send(ctx context.Context, sessionID int, message string) (*ChatReply, error) {
	body := struct {
		Message   string `json:"message"`
		SessionID int    `json:"session_id"`
	}{Message: message, SessionID: sessionID}

	var out ChatReply
	if err := c.c.do(ctx, http.MethodPost, "/chat/", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *ChatAPI) Messages(ctx context.Context, sessionID int) ([]model.Message, error) {
	var out []model.Message
	if err := c.c.do(ctx, http.MethodGet, fmt.Sprintf("/chat/%d/messages", sessionID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GenerateScenario asks the backend to produce an opening scenario for the
// session. The scenario text arrives through the normal message history.
func (c *ChatAPI) GenerateScenario(ctx context.Context, sessionID int) error {
	return c.c.do(ctx, http.MethodPost, fmt.Sprintf("/chat/scenario/%d", sessionID), nil, nil)
}
