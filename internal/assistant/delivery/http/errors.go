package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"jarvis-assistant/internal/session"
	"jarvis-assistant/pkg/response"
)

var (
	errInvalidRequest = errors.New("invalid request")
	errTextRequired   = errors.New("text is required")
	errBlockedInput   = errors.New("input blocked for security reasons")
	errInvalidLimit   = errors.New("limit must be a non-negative integer")
	errSessionMissing = errors.New("session not found")
)

// writeError translates delivery and session errors into HTTP responses.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errSessionMissing):
		response.NotFound(c, err.Error())
	case errors.Is(err, errInvalidRequest),
		errors.Is(err, errTextRequired),
		errors.Is(err, errBlockedInput),
		errors.Is(err, errInvalidLimit),
		errors.Is(err, session.ErrEmptyID):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
