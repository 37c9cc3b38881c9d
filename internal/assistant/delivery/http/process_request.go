package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"jarvis-assistant/internal/session"
)

// processProcessReq binds and validates the process request body.
// A missing session id starts a new session.
func (h *handler) processProcessReq(c *gin.Context) (processReq, error) {
	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %v", errInvalidRequest, err)
	}
	if req.SessionID == "" {
		req.SessionID = session.NewID()
	}
	return req, req.validate()
}

// processTextReq binds the text body and runs it through the sanitizer.
func (h *handler) processTextReq(c *gin.Context) (textReq, string, error) {
	var req textReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, "", fmt.Errorf("%w: %v", errInvalidRequest, err)
	}
	if err := req.validate(); err != nil {
		return req, "", err
	}

	res := h.sanitizer.Sanitize(req.Text)
	if !res.Safe {
		h.l.Warnf(c.Request.Context(), "%s: %s", LogPrefixSanitize, res.Warning)
		return req, "", errBlockedInput
	}
	req.Text = res.Cleaned
	return req, res.Warning, nil
}

// processHistoryReq binds the session id and optional limit.
func (h *handler) processHistoryReq(c *gin.Context) (historyReq, error) {
	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, fmt.Errorf("%w: %v", errInvalidRequest, err)
	}
	req.SessionID = c.Param("id")
	return req, req.validate()
}
