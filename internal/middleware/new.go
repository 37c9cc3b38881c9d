package middleware

import (
	"jarvis-assistant/internal/session"
	"jarvis-assistant/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *session.Limiter
}

// New creates the shared gin middlewares. A nil limiter disables rate limiting.
func New(l log.Logger, limiter *session.Limiter) Middleware {
	if l == nil {
		l = log.NewNop()
	}
	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
