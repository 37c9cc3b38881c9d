package session

import (
	"context"

	"jarvis-assistant/internal/action"
	"jarvis-assistant/internal/brain"
	"jarvis-assistant/internal/executor"
	"jarvis-assistant/internal/intent"
	"jarvis-assistant/internal/knowledge"
	"jarvis-assistant/internal/memory"
	"jarvis-assistant/internal/sanitizer"
	"jarvis-assistant/internal/vocab"
	"jarvis-assistant/pkg/log"
)

// Builder creates sessions. Stateless collaborators are shared; memory,
// knowledge context and brain are per session.
type Builder interface {
	Build(ctx context.Context, id string) (*Session, error)
}

// Components are the shared parts every session is assembled from.
type Components struct {
	Sanitizer  sanitizer.Sanitizer
	Detector   intent.Detector
	Resolver   action.Resolver
	Vocab      *vocab.Store
	Generator  knowledge.Generator
	Knowledge  knowledge.Config
	Executor   *executor.TaskExecutor
	Journal    memory.Journal
	MemorySize int
	Language   string
	Logger     log.Logger
}

// DefaultBuilder wires Components into sessions.
type DefaultBuilder struct {
	c Components
}

var _ Builder = (*DefaultBuilder)(nil)

// NewBuilder fills in the default detector and resolver when missing.
func NewBuilder(c Components) *DefaultBuilder {
	if c.Logger == nil {
		c.Logger = log.NewNop()
	}
	if c.Vocab == nil {
		c.Vocab = vocab.NewStore(nil)
	}
	if c.Sanitizer == nil {
		c.Sanitizer = sanitizer.New(c.Logger, 0)
	}
	if c.Detector == nil {
		c.Detector = intent.New(c.Vocab, c.Logger)
	}
	if c.Resolver == nil {
		c.Resolver = action.New(c.Vocab, c.Logger)
	}
	return &DefaultBuilder{c: c}
}

func (b *DefaultBuilder) Build(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, ErrEmptyID
	}

	mem := memory.New(memory.Config{
		MaxHistory: b.c.MemorySize,
		SessionID:  id,
		Journal:    b.c.Journal,
		Logger:     b.c.Logger,
	})
	kn := knowledge.New(b.c.Generator, b.c.Knowledge, b.c.Logger)

	br, err := brain.New(brain.Deps{
		Sanitizer: b.c.Sanitizer,
		Detector:  b.c.Detector,
		Resolver:  b.c.Resolver,
		Knowledge: kn,
		Memory:    mem,
		Vocab:     b.c.Vocab,
		Logger:    b.c.Logger,

		DefaultLanguage: b.c.Language,
	})
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:        id,
		CreatedAt: mem.Stats().SessionStart,
		brain:     br,
		memory:    mem,
		reset:     kn.ClearContext,
	}
	if b.c.Executor != nil {
		s.executor = b.c.Executor.WithLanguage(mem)
	}
	return s, nil
}
