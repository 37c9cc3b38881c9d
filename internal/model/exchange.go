package model

import "time"

// Role is the speaker of an exchange.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Exchange is one remembered turn of a conversation.
type Exchange struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id,omitempty"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Language  string    `json:"language,omitempty"`
	Intent    string    `json:"intent,omitempty"`
	Topic     string    `json:"topic,omitempty"`
	Action    Action    `json:"action,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
