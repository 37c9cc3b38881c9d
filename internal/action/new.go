package action

import (
	"context"

	"jarvis-assistant/internal/model"
	"jarvis-assistant/internal/vocab"
	"jarvis-assistant/pkg/log"
)

// Resolver maps an utterance to one concrete task with extracted entities.
type Resolver interface {
	Resolve(ctx context.Context, text string) model.TaskDecision
}

// RuleResolver evaluates an ordered rule cascade; the first matching rule wins.
type RuleResolver struct {
	store *vocab.Store
	l     log.Logger
}

var _ Resolver = (*RuleResolver)(nil)

// New creates a RuleResolver reading tables from store on every call.
func New(store *vocab.Store, l log.Logger) *RuleResolver {
	if store == nil {
		store = vocab.NewStore(nil)
	}
	return &RuleResolver{
		store: store,
		l:     l,
	}
}
