package memory

import (
	"time"

	"jarvis-assistant/internal/model"
	"jarvis-assistant/pkg/log"
)

// Memory is the conversation store the brain writes to.
type Memory interface {
	AddUserMessage(text, language, intent, topic string)
	AddAssistantMessage(text string, action model.Action, intent string)
	LastTopic() string
	LastIntent() string
}

// Config configures a Ring.
type Config struct {
	MaxHistory int
	SessionID  string
	Journal    Journal
	Logger     log.Logger
}

// Ring keeps the last MaxHistory exchanges of one conversation.
// It is not safe for concurrent use; callers serialize access per session.
type Ring struct {
	maxHistory int
	sessionID  string
	journal    Journal
	l          log.Logger
	now        func() time.Time

	history           []model.Exchange
	lastTopic         string
	lastIntent        string
	lastLanguage      string
	totalInteractions int
	sessionStart      time.Time
}

var _ Memory = (*Ring)(nil)

// New creates an empty ring.
func New(cfg Config) *Ring {
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = DefaultMaxHistory
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNop()
	}
	r := &Ring{
		maxHistory:   cfg.MaxHistory,
		sessionID:    cfg.SessionID,
		journal:      cfg.Journal,
		l:            cfg.Logger,
		now:          time.Now,
		lastLanguage: DefaultLanguage,
	}
	r.sessionStart = r.now()
	return r
}
