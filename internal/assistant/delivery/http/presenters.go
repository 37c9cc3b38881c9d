package http

import (
	"strings"

	"jarvis-assistant/internal/intent"
	"jarvis-assistant/internal/memory"
	"jarvis-assistant/internal/model"
	"jarvis-assistant/pkg/response"
)

// --- Request DTOs ---

type processReq struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
	Language  string `json:"language"`
	Execute   bool   `json:"execute"`
}

func (r *processReq) validate() error {
	r.Text = strings.TrimSpace(r.Text)
	if r.Text == "" {
		return errTextRequired
	}
	return nil
}

// ---

type textReq struct {
	Text string `json:"text"`
}

func (r *textReq) validate() error {
	r.Text = strings.TrimSpace(r.Text)
	if r.Text == "" {
		return errTextRequired
	}
	return nil
}

// ---

type historyReq struct {
	SessionID string `form:"-"`
	Limit     int    `form:"limit"`
}

func (r historyReq) validate() error {
	if r.Limit < 0 {
		return errInvalidLimit
	}
	return nil
}

// --- Response DTOs ---

type processResp struct {
	SessionID        string       `json:"session_id"`
	Result           model.Result `json:"result"`
	Executed         bool         `json:"executed"`
	ExecutorResponse *string      `json:"executor_response,omitempty"`
	Language         string       `json:"language"`
}

type classifyResp struct {
	Cleaned string       `json:"cleaned_text"`
	Warning string       `json:"warning,omitempty"`
	Score   intent.Score `json:"score"`
}

type resolveResp struct {
	Cleaned  string             `json:"cleaned_text"`
	Warning  string             `json:"warning,omitempty"`
	Decision model.TaskDecision `json:"decision"`
}

type exchangeResp struct {
	Role      model.Role        `json:"role"`
	Content   string            `json:"content"`
	Language  string            `json:"language,omitempty"`
	Intent    string            `json:"intent,omitempty"`
	Timestamp response.DateTime `json:"timestamp"`
}

type historyResp struct {
	SessionID string         `json:"session_id"`
	Exchanges []exchangeResp `json:"exchanges"`
	Stats     memory.Stats   `json:"stats"`
}

func (h *handler) newHistoryResp(id string, exchanges []model.Exchange, stats memory.Stats) historyResp {
	out := make([]exchangeResp, len(exchanges))
	for i, e := range exchanges {
		out[i] = exchangeResp{
			Role:      e.Role,
			Content:   e.Content,
			Language:  e.Language,
			Intent:    e.Intent,
			Timestamp: response.DateTime(e.Timestamp),
		}
	}
	return historyResp{
		SessionID: id,
		Exchanges: out,
		Stats:     stats,
	}
}
