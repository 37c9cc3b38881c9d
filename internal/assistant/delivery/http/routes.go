package http

import (
	"github.com/gin-gonic/gin"

	"jarvis-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route is rate limited per client IP.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit())

	rg.POST("/process", h.Process)
	rg.POST("/classify", h.Classify)
	rg.POST("/resolve", h.Resolve)

	sessions := rg.Group("/sessions")
	{
		sessions.GET("/:id/history", h.History)
		sessions.DELETE("/:id", h.DeleteSession)
	}
}
