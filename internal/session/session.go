package session

import (
	"context"
	"sync"
	"time"

	"jarvis-assistant/internal/brain"
	"jarvis-assistant/internal/executor"
	"jarvis-assistant/internal/memory"
	"jarvis-assistant/internal/model"
)

// Session is one conversation: its own brain, memory and knowledge context.
// All methods serialize on the session mutex.
type Session struct {
	ID        string
	CreatedAt time.Time

	brain    brain.Brain
	memory   *memory.Ring
	executor executor.Executor
	reset    func()

	mu       sync.Mutex
	lastUsed time.Time
}

// Process classifies and routes one utterance.
func (s *Session) Process(ctx context.Context, text, language string) model.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUsed = time.Now()
	return s.brain.Process(ctx, text, language)
}

// Execute runs the task of a processed result. It returns nil when the
// session has no executor or the acknowledgment needs no replacement.
func (s *Session) Execute(ctx context.Context, d model.TaskDecision) (*string, error) {
	if s.executor == nil || d.Action.IsNone() {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.executor.Execute(ctx, d)
}

// History returns the last n exchanges, or all when n <= 0.
func (s *Session) History(n int) []model.Exchange {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.memory.History(n)
}

// Stats reports memory usage for the session.
func (s *Session) Stats() memory.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.memory.Stats()
}

// Language is the language last used or selected in this session.
func (s *Session) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.memory.LastLanguage()
}

// Reset clears the conversation and the knowledge topic.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.memory.Clear()
	if s.reset != nil {
		s.reset()
	}
}

// LastUsed is the time of the last processed utterance.
func (s *Session) LastUsed() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}
