package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	assistantHTTP "jarvis-assistant/internal/assistant/delivery/http"
	tgDelivery "jarvis-assistant/internal/assistant/delivery/telegram"
	"jarvis-assistant/internal/middleware"
	"jarvis-assistant/pkg/log"
)

// SessionCounter reports live sessions for the readiness probe.
type SessionCounter interface {
	Len() int
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	srv         *http.Server
	l           log.Logger
	port        int
	mode        string
	environment string

	mw       middleware.Middleware
	sessions SessionCounter

	// Assistant domain
	assistantHandler assistantHTTP.Handler
	telegramHandler  tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware
	Sessions   SessionCounter

	AssistantHandler assistantHTTP.Handler
	// Optional: nil when no bot token is configured.
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance and maps its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		mw:               cfg.Middleware,
		sessions:         cfg.Sessions,
		assistantHandler: cfg.AssistantHandler,
		telegramHandler:  cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the routed engine, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.assistantHandler == nil {
		return errors.New("assistant handler is required")
	}
	return nil
}
