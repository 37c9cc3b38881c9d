package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"jarvis-assistant/internal/model"
	pkgLog "jarvis-assistant/pkg/log"
	pkgResponse "jarvis-assistant/pkg/response"
	pkgTelegram "jarvis-assistant/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It answers 200 at once and handles the message in the background, since
// Telegram retries updates that are not acknowledged within a few seconds.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "%s: failed to parse update: %v", LogPrefixWebhook, err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (edited messages, channel posts, ...)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	go func() {
		bgCtx := pkgLog.WithTraceID(context.Background(), fmt.Sprintf("tg-%d", update.UpdateID))
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "%s: %v", LogPrefixProcess, err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, msgError)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	sessionID := fmt.Sprintf(sessionIDFmt, msg.Chat.ID)
	ctx = pkgLog.WithSessionID(ctx, sessionID)

	// ---- Built-in commands ----
	switch text {
	case commandStart:
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, msgStart, pkgTelegram.ParseModeMarkdown)
	case commandHelp:
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, msgHelp, pkgTelegram.ParseModeMarkdown)
	case commandReset:
		if sess, ok := h.registry.Peek(sessionID); ok {
			sess.Reset()
		}
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgReset)
	}

	if err := h.bot.SendChatAction(ctx, msg.Chat.ID, pkgTelegram.ChatActionTyping); err != nil {
		h.l.Warnf(ctx, "%s: failed to send typing action: %v", LogPrefixProcess, err)
	}

	sess, err := h.registry.Get(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("registry.Get: %w", err)
	}

	result := sess.Process(ctx, text, "")
	reply := result.Response

	if result.Intent == model.DecisionTask && !result.Action.IsNone() {
		out, err := sess.Execute(ctx, result.Decision())
		if err != nil {
			h.l.Warnf(ctx, "%s: execute %s: %v", LogPrefixProcess, result.Action, err)
		} else if out != nil {
			reply = *out
		}
	}

	return h.bot.SendMessage(ctx, msg.Chat.ID, reply)
}
