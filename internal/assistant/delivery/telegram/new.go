package telegram

import (
	"github.com/gin-gonic/gin"

	"jarvis-assistant/internal/session"
	pkgLog "jarvis-assistant/pkg/log"
	pkgTelegram "jarvis-assistant/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l        pkgLog.Logger
	registry *session.Registry
	bot      *pkgTelegram.Bot
}

// New creates a new Telegram delivery handler. Each chat gets its own session.
func New(l pkgLog.Logger, registry *session.Registry, bot *pkgTelegram.Bot) Handler {
	return &handler{
		l:        l,
		registry: registry,
		bot:      bot,
	}
}
