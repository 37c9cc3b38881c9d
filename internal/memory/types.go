package memory

import (
	"context"
	"time"

	"jarvis-assistant/internal/model"
)

// Journal receives every exchange that enters the ring.
type Journal interface {
	Append(ctx context.Context, e model.Exchange) error
}

// Stats summarizes a conversation.
type Stats struct {
	TotalInteractions int           `json:"total_interactions"`
	MessagesInMemory  int           `json:"messages_in_memory"`
	SessionDuration   time.Duration `json:"session_duration"`
	SessionStart      time.Time     `json:"session_start"`
}

// AIMessage is the role/content pair handed to language models.
type AIMessage struct {
	Role    model.Role `json:"role"`
	Content string     `json:"content"`
}
