package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"jarvis-assistant/pkg/log"
)

// Config configures a Registry. Zero values use the package defaults.
type Config struct {
	TTL         time.Duration
	MaxSessions int
	Builder     Builder
	Logger      log.Logger
}

// Registry holds live sessions. Idle sessions expire after TTL and the least
// recently used one is evicted when MaxSessions is reached.
type Registry struct {
	sessions *expirable.LRU[string, *Session]
	builder  Builder
	l        log.Logger
	mu       sync.Mutex
}

// NewRegistry creates an empty registry.
func NewRegistry(cfg Config) (*Registry, error) {
	if cfg.Builder == nil {
		return nil, ErrNilBuilder
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNop()
	}

	r := &Registry{builder: cfg.Builder, l: cfg.Logger}
	r.sessions = expirable.NewLRU[string, *Session](cfg.MaxSessions, r.evicted, cfg.TTL)
	return r, nil
}

// NewID returns a fresh session id.
func NewID() string {
	return uuid.NewString()
}

// Get returns the session for id, creating it on first use.
// Every call restarts the session's idle timer.
func (r *Registry) Get(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, ErrEmptyID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions.Get(id); ok {
		r.sessions.Add(id, s)
		return s, nil
	}

	s, err := r.builder.Build(ctx, id)
	if err != nil {
		return nil, err
	}
	r.sessions.Add(id, s)
	r.l.Debugf(ctx, "%s: created session %s", LogPrefixGet, id)
	return s, nil
}

// Peek returns an existing session without creating one or refreshing it.
func (r *Registry) Peek(id string) (*Session, bool) {
	return r.sessions.Peek(id)
}

// Delete drops a session. It reports whether the session existed.
func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions.Remove(id)
}

// Len is the number of live sessions.
func (r *Registry) Len() int {
	return r.sessions.Len()
}

func (r *Registry) evicted(id string, _ *Session) {
	r.l.Debugf(context.Background(), "%s: session %s evicted", LogPrefixEvict, id)
}
