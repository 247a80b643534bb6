package api

import (
	"context"
	"fmt"
	"net/http"

	"realworlded-cli/internal/model"
)

type EvaluationAPI struct {
	c *Client
}

type EvaluationResult struct {
	Report          model.Report `json:"report"`
	FeedbackMessage string       `json:"feedback_message"`
}

func (e *EvaluationAPI) Evaluate(ctx context.Context, sessionID int) (*EvaluationResult, error) {
	body := struct {
		SessionID int `json:"session_id"`
	}{SessionID: sessionID}

	var out EvaluationResult
	if err := e.c.do(ctx, http.MethodPost, "/evaluation/", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (e *EvaluationAPI) Reports(ctx context.Context) ([]model.Report, error) {
	var out []model.Report
	if err := e.c.do(ctx, http.MethodGet, "/evaluation/reports", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *EvaluationAPI) Report(ctx context.Context, id int) (*model.Report, error) {
	var out model.Report
	if err := e.c.do(ctx, http.MethodGet, fmt.Sprintf("/evaluation/reports/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (e *EvaluationAPI) SessionReport(ctx context.Context, sessionID int) (*model.Report, error) {
	var out model.Report
	if err := e.c.do(ctx, http.MethodGet, fmt.Sprintf("/evaluation/session/%d/report", sessionID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
