package knowledge

import (
	"context"
	"sync"

	"jarvis-assistant/pkg/llmprovider"
	"jarvis-assistant/pkg/log"
)

// Generator is the text generation backend. *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Config tunes an Engine. Zero values use the package defaults.
type Config struct {
	SystemPrompt string
	Temperature  float64
	MaxTokens    int
}

// Engine answers questions and keeps the last explained topic for follow-ups.
type Engine struct {
	gen Generator
	l   log.Logger
	cfg Config

	mu        sync.Mutex
	lastTopic string
}

// New creates an Engine. gen may be nil, in which case every call fails with ErrNoProviders.
func New(gen Generator, cfg Config, l log.Logger) *Engine {
	if cfg.SystemPrompt == "" {
		cfg.SystemPrompt = DefaultSystemPrompt
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if l == nil {
		l = log.NewNop()
	}
	return &Engine{gen: gen, l: l, cfg: cfg}
}
