package brain

import (
	"context"
	"errors"
	"fmt"

	"jarvis-assistant/internal/intent"
	"jarvis-assistant/internal/model"
)

var errNoKnowledge = errors.New("brain: no knowledge backend")

// Process runs sanitize, classify, route and record for one utterance.
// It never fails; collaborator errors become canned responses.
func (r *Router) Process(ctx context.Context, text, language string) model.Result {
	if language == "" {
		language = r.lang
	}

	clean := r.sanitizer.Sanitize(text)
	if !clean.Safe {
		r.l.Warnf(ctx, "%s: blocked input: %s", LogPrefixProcess, clean.Warning)
		return model.Result{
			Intent:     model.DecisionBlocked,
			Response:   ResponseBlocked,
			Action:     model.ActionNone,
			Entities:   model.Entities{},
			Confidence: ConfidenceBlocked,
			Warning:    clean.Warning,
		}
	}
	if clean.Warning != "" {
		r.l.Warnf(ctx, "%s: %s", LogPrefixProcess, clean.Warning)
	}
	text = clean.Cleaned

	score := r.detector.Classify(ctx, text)
	r.l.Debugf(ctx, "%s: category=%s confidence=%.2f type=%s", LogPrefixProcess, score.Category, score.Confidence, score.Type())

	r.memory.AddUserMessage(text, language, string(score.Category), score.Type())

	var result model.Result
	switch score.Category {
	case model.IntentAction:
		result = r.actionRoute(ctx, text, score)
	case model.IntentInformation:
		result = r.infoRoute(ctx, text, score)
	case model.IntentConversation:
		result = r.convoRoute(ctx, text, score)
	case model.IntentExit:
		result = model.Result{
			Intent:     model.DecisionTask,
			Response:   ResponseExit,
			Action:     model.ActionExit,
			Entities:   model.Entities{},
			Confidence: ConfidenceExit,
		}
	default:
		r.l.Warnf(ctx, "%s: unrecognized category %q", LogPrefixProcess, score.Category)
		result = model.Result{
			Intent:     model.DecisionConversation,
			Response:   ResponseFallback,
			Entities:   model.Entities{},
			Confidence: ConfidenceFallback,
		}
	}
	result.Category = score.Category
	result.Warning = clean.Warning

	r.memory.AddAssistantMessage(result.Response, result.Action, string(result.Intent))
	return result
}

// actionRoute resolves the task locally. The knowledge backend is never consulted.
func (r *Router) actionRoute(ctx context.Context, text string, score intent.Score) model.Result {
	decision := r.resolver.Resolve(ctx, text)
	if decision.Action.IsNone() {
		r.l.Infof(ctx, "%s: no rule matched %q", LogPrefixAction, text)
	}
	return model.Result{
		Intent:     model.DecisionTask,
		Response:   r.acknowledge(decision),
		Action:     decision.Action,
		Parameters: decision.Parameters,
		Entities:   decision.Entities.Clone(),
		Confidence: score.Confidence,
	}
}

func (r *Router) infoRoute(ctx context.Context, text string, score intent.Score) model.Result {
	response := ResponseNoAnswer
	if answer, err := r.explain(ctx, text, r.memory.LastTopic()); err != nil {
		r.l.Errorf(ctx, "%s: knowledge failed: %v", LogPrefixInfo, err)
	} else {
		response = answer
	}
	return model.Result{
		Intent:     model.DecisionInformation,
		Response:   response,
		Entities:   model.Entities{},
		Confidence: score.Confidence,
	}
}

func (r *Router) convoRoute(ctx context.Context, text string, score intent.Score) model.Result {
	prompt := fmt.Sprintf(conversationPromptFmt, text)

	var (
		answer string
		err    error
	)
	if c, ok := r.knowledge.(Conversational); ok {
		answer, err = c.Converse(ctx, prompt)
	} else {
		answer, err = r.explain(ctx, prompt, "")
	}
	if err != nil {
		r.l.Warnf(ctx, "%s: falling back to canned reply: %v", LogPrefixConvo, err)
		answer = r.cannedReply(text)
	}

	return model.Result{
		Intent:     model.DecisionConversation,
		Response:   answer,
		Entities:   model.Entities{},
		Confidence: score.Confidence,
	}
}

func (r *Router) explain(ctx context.Context, question, hint string) (string, error) {
	if r.knowledge == nil {
		return "", errNoKnowledge
	}
	return r.knowledge.Explain(ctx, question, hint)
}
