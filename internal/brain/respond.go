package brain

import (
	"fmt"

	"jarvis-assistant/internal/model"
	"jarvis-assistant/internal/vocab"
)

// acknowledge builds the short spoken reply for a resolved task.
func (r *Router) acknowledge(d model.TaskDecision) string {
	switch d.Action {
	case model.ActionOpenApp:
		app, _ := d.Entities.Get(model.EntityAppName)
		return fmt.Sprintf(r.pick(openAppReplies), r.title.String(app))
	case model.ActionSearch:
		q, _ := d.Entities.Get(model.EntitySearchTerms)
		return fmt.Sprintf(r.pick(searchReplies), q)
	case model.ActionPlayYouTube:
		v, _ := d.Entities.Get(model.EntityVideoName)
		return fmt.Sprintf(r.pick(playReplies), v)
	case model.ActionSendMessage:
		contact, hasContact := d.Entities.Get(model.EntityContact)
		_, hasMessage := d.Entities.Get(model.EntityMessage)
		switch {
		case hasContact && hasMessage:
			return fmt.Sprintf(messageBothFmt, contact)
		case hasContact:
			return fmt.Sprintf(messageContactFmt, contact)
		}
		return messageBare
	case model.ActionSendEmail:
		return emailReply
	case model.ActionOrderFood:
		return foodReply
	case model.ActionTimeDate:
		// filled in by the executor
		return ""
	case model.ActionExit:
		return r.pick(exitReplies)
	}
	return r.pick(genericReplies)
}

func (r *Router) pick(variants []string) string {
	return variants[r.picker.Intn(len(variants))]
}

// cannedReply answers small talk without a knowledge backend.
func (r *Router) cannedReply(text string) string {
	conv := r.vocab.Current().Conversation
	tokens := vocab.Tokenize(text)
	for _, reply := range conv.Replies {
		for _, trigger := range reply.Triggers {
			if vocab.HasPhrase(tokens, trigger) {
				return reply.Reply
			}
		}
	}
	return conv.Default
}
