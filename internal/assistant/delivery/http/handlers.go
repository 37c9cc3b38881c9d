package http

import (
	"github.com/gin-gonic/gin"

	"jarvis-assistant/internal/model"
	"jarvis-assistant/pkg/log"
	"jarvis-assistant/pkg/response"
)

// Process godoc
// @Summary     Process an utterance
// @Description Classifies and routes one utterance within a session. With execute=true the resolved task is carried out.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body processReq true "Utterance"
// @Success     200 {object} processResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/assistant/process [POST]
func (h *handler) Process(c *gin.Context) {
	req, err := h.processProcessReq(c)
	if err != nil {
		h.writeError(c, err)
		return
	}
	ctx := log.WithSessionID(c.Request.Context(), req.SessionID)

	sess, err := h.registry.Get(ctx, req.SessionID)
	if err != nil {
		h.l.Errorf(ctx, "%s: registry.Get: %v", LogPrefixProcess, err)
		h.writeError(c, err)
		return
	}

	result := sess.Process(ctx, req.Text, req.Language)
	resp := processResp{
		SessionID: req.SessionID,
		Result:    result,
	}

	if req.Execute && result.Intent == model.DecisionTask && !result.Action.IsNone() {
		reply, err := sess.Execute(ctx, result.Decision())
		if err != nil {
			h.l.Warnf(ctx, "%s: %v", LogPrefixExecute, err)
		} else {
			resp.Executed = true
			resp.ExecutorResponse = reply
		}
	}
	resp.Language = sess.Language()

	response.OK(c, resp)
}

// Classify godoc
// @Summary     Classify an utterance
// @Description Returns the intent category and per-category scores without touching any session.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body textReq true "Utterance"
// @Success     200 {object} classifyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/assistant/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	req, warning, err := h.processTextReq(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, classifyResp{
		Cleaned: req.Text,
		Warning: warning,
		Score:   h.detector.Classify(c.Request.Context(), req.Text),
	})
}

// Resolve godoc
// @Summary     Resolve an utterance to a task
// @Description Runs the action resolver and returns the task decision without executing it.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body textReq true "Utterance"
// @Success     200 {object} resolveResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/assistant/resolve [POST]
func (h *handler) Resolve(c *gin.Context) {
	req, warning, err := h.processTextReq(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, resolveResp{
		Cleaned:  req.Text,
		Warning:  warning,
		Decision: h.resolver.Resolve(c.Request.Context(), req.Text),
	})
}

// History godoc
// @Summary     Session history
// @Description Returns the remembered exchanges of a live session, newest last.
// @Tags        Assistant
// @Produce     json
// @Param       id    path  string true  "Session ID"
// @Param       limit query int    false "Number of exchanges (default: all)"
// @Success     200 {object} historyResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/assistant/sessions/{id}/history [GET]
func (h *handler) History(c *gin.Context) {
	req, err := h.processHistoryReq(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	sess, ok := h.registry.Peek(req.SessionID)
	if !ok {
		h.writeError(c, errSessionMissing)
		return
	}

	response.OK(c, h.newHistoryResp(sess.ID, sess.History(req.Limit), sess.Stats()))
}

// DeleteSession godoc
// @Summary     End a session
// @Description Drops a session and its in-memory conversation.
// @Tags        Assistant
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/assistant/sessions/{id} [DELETE]
func (h *handler) DeleteSession(c *gin.Context) {
	if !h.registry.Delete(c.Param("id")) {
		h.writeError(c, errSessionMissing)
		return
	}
	response.OK(c, nil)
}
