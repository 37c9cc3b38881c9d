package http

import (
	"github.com/gin-gonic/gin"

	"jarvis-assistant/internal/action"
	"jarvis-assistant/internal/intent"
	"jarvis-assistant/internal/sanitizer"
	"jarvis-assistant/internal/session"
	"jarvis-assistant/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	Process(c *gin.Context)
	Classify(c *gin.Context)
	Resolve(c *gin.Context)
	History(c *gin.Context)
	DeleteSession(c *gin.Context)
}

// Config is the dependency bag passed to New().
type Config struct {
	Registry  *session.Registry
	Sanitizer sanitizer.Sanitizer
	Detector  intent.Detector
	Resolver  action.Resolver
}

type handler struct {
	l         log.Logger
	registry  *session.Registry
	sanitizer sanitizer.Sanitizer
	detector  intent.Detector
	resolver  action.Resolver
}

// New creates a new HTTP handler for the assistant domain.
func New(l log.Logger, cfg Config) Handler {
	return &handler{
		l:         l,
		registry:  cfg.Registry,
		sanitizer: cfg.Sanitizer,
		detector:  cfg.Detector,
		resolver:  cfg.Resolver,
	}
}
