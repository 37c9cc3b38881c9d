package brain

import (
	"context"

	"jarvis-assistant/internal/model"
)

// Knowledge answers information requests.
type Knowledge interface {
	Explain(ctx context.Context, question, hint string) (string, error)
}

// Conversational is optionally implemented by a Knowledge backend that can
// answer a framed chat prompt without touching its topic tracking.
type Conversational interface {
	Converse(ctx context.Context, prompt string) (string, error)
}

// Memory receives every processed exchange.
type Memory interface {
	AddUserMessage(text, language, intent, topic string)
	AddAssistantMessage(text string, action model.Action, intent string)
	LastTopic() string
	LastIntent() string
}

// Picker chooses among acknowledgment variants. *rand.Rand satisfies it.
type Picker interface {
	Intn(n int) int
}
