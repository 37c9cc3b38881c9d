package executor

import (
	"context"
	"runtime"
	"time"

	"jarvis-assistant/internal/model"
	"jarvis-assistant/pkg/datemath"
	"jarvis-assistant/pkg/log"
)

// Executor carries out a resolved task.
// A nil reply means the brain's acknowledgment already says enough.
type Executor interface {
	Execute(ctx context.Context, d model.TaskDecision) (*string, error)
}

// Config wires a TaskExecutor. Language, DateMath, Now and GOOS are optional.
type Config struct {
	Launcher  Launcher
	Validator Validator
	Language  LanguageSetter
	DateMath  *datemath.Parser
	Now       func() time.Time
	GOOS      string
	Logger    log.Logger
}

// TaskExecutor is the default Executor.
type TaskExecutor struct {
	launcher  Launcher
	validator Validator
	language  LanguageSetter
	dateMath  *datemath.Parser
	now       func() time.Time
	goos      string
	l         log.Logger
}

var _ Executor = (*TaskExecutor)(nil)

// New creates a TaskExecutor.
func New(cfg Config) (*TaskExecutor, error) {
	if cfg.Launcher == nil {
		return nil, ErrNilLauncher
	}
	if cfg.Validator == nil {
		return nil, ErrNilSanitizer
	}
	if cfg.DateMath == nil {
		cfg.DateMath, _ = datemath.NewParser("UTC")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.GOOS == "" {
		cfg.GOOS = runtime.GOOS
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNop()
	}
	return &TaskExecutor{
		launcher:  cfg.Launcher,
		validator: cfg.Validator,
		language:  cfg.Language,
		dateMath:  cfg.DateMath,
		now:       cfg.Now,
		goos:      cfg.GOOS,
		l:         cfg.Logger,
	}, nil
}

// WithLanguage returns a copy of e that reports language switches to s.
func (e *TaskExecutor) WithLanguage(s LanguageSetter) *TaskExecutor {
	cp := *e
	cp.language = s
	return &cp
}
