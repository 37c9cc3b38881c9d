package memory

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"jarvis-assistant/internal/model"
)

// AddUserMessage records a user turn. Non-empty language, intent and topic
// become the conversation's latest values.
func (r *Ring) AddUserMessage(text, language, intent, topic string) {
	r.push(model.Exchange{
		Role:     model.RoleUser,
		Content:  text,
		Language: language,
		Intent:   intent,
		Topic:    topic,
	})
	r.totalInteractions++

	if language != "" {
		r.lastLanguage = language
	}
	if intent != "" {
		r.lastIntent = intent
	}
	if topic != "" {
		r.lastTopic = topic
	}
}

// AddAssistantMessage records an assistant turn.
func (r *Ring) AddAssistantMessage(text string, action model.Action, intent string) {
	r.push(model.Exchange{
		Role:    model.RoleAssistant,
		Content: text,
		Action:  action,
		Intent:  intent,
	})
}

func (r *Ring) push(e model.Exchange) {
	e.ID = uuid.NewString()
	e.SessionID = r.sessionID
	e.Timestamp = r.now()

	r.history = append(r.history, e)
	if over := len(r.history) - r.maxHistory; over > 0 {
		r.history = append(r.history[:0:0], r.history[over:]...)
	}

	if r.journal == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), journalTimeout)
	defer cancel()
	if err := r.journal.Append(ctx, e); err != nil {
		r.l.Warnf(ctx, "%s: append %s: %v", LogPrefixJournal, e.ID, err)
	}
}

// History returns up to lastN most recent exchanges, oldest first.
// A non-positive lastN returns everything held.
func (r *Ring) History(lastN int) []model.Exchange {
	h := r.history
	if lastN > 0 && lastN < len(h) {
		h = h[len(h)-lastN:]
	}
	out := make([]model.Exchange, len(h))
	copy(out, h)
	return out
}

// ContextForAI returns the held exchanges as role/content pairs.
func (r *Ring) ContextForAI() []AIMessage {
	out := make([]AIMessage, 0, len(r.history))
	for _, e := range r.history {
		out = append(out, AIMessage{Role: e.Role, Content: e.Content})
	}
	return out
}

func (r *Ring) LastTopic() string  { return r.lastTopic }
func (r *Ring) LastIntent() string { return r.lastIntent }

// LastLanguage defaults to English until a user turn carries a language.
func (r *Ring) LastLanguage() string { return r.lastLanguage }

// SetLanguage overrides the remembered language, e.g. after a language switch.
func (r *Ring) SetLanguage(code string) {
	if code != "" {
		r.lastLanguage = code
	}
}

func (r *Ring) LastUserMessage() string      { return r.lastContent(model.RoleUser) }
func (r *Ring) LastAssistantMessage() string { return r.lastContent(model.RoleAssistant) }

func (r *Ring) lastContent(role model.Role) string {
	for i := len(r.history) - 1; i >= 0; i-- {
		if r.history[i].Role == role {
			return r.history[i].Content
		}
	}
	return ""
}

// HasRecentContext reports whether keyword appears, case-insensitively,
// in any of the last `within` exchanges.
func (r *Ring) HasRecentContext(keyword string, within int) bool {
	if keyword == "" {
		return false
	}
	if within <= 0 {
		within = DefaultRecentExchange
	}
	kw := strings.ToLower(keyword)
	for _, e := range r.History(within) {
		if strings.Contains(strings.ToLower(e.Content), kw) {
			return true
		}
	}
	return false
}

// Clear forgets the conversation and restarts the session clock.
func (r *Ring) Clear() {
	r.history = nil
	r.lastTopic = ""
	r.lastIntent = ""
	r.lastLanguage = DefaultLanguage
	r.totalInteractions = 0
	r.sessionStart = r.now()
}

func (r *Ring) Stats() Stats {
	return Stats{
		TotalInteractions: r.totalInteractions,
		MessagesInMemory:  len(r.history),
		SessionDuration:   r.now().Sub(r.sessionStart),
		SessionStart:      r.sessionStart,
	}
}
