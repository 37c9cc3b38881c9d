package intent

import (
	"context"
	"strings"

	"jarvis-assistant/internal/model"
	"jarvis-assistant/internal/vocab"
)

// Classify scores text and picks a category by ordered thresholds, not argmax.
// It is deterministic for a given text and vocabulary.
func (d *KeywordDetector) Classify(ctx context.Context, text string) Score {
	t := d.store.Current().Intent
	lower := strings.ToLower(text)
	fields := vocab.Fields(text)

	exit := exitScore(fields, t.Exit.Words())
	if exit > ExitThreshold {
		d.l.Debugf(ctx, "%s: exit score %.2f", LogPrefixClassify, exit)
		return Score{
			Category:   model.IntentExit,
			Confidence: exit,
			Scores:     map[model.IntentCategory]float64{model.IntentExit: exit},
			Details: map[string]string{
				DetailType:   TypeExit,
				DetailReason: ReasonExitKeyword,
			},
		}
	}

	action := actionVerbWeight*keywordScore(fields, t.Action.Words()) +
		actionAppWeight*keywordScore(fields, t.Apps.Words())
	for _, p := range t.CommandPatterns {
		if strings.Contains(lower, strings.ToLower(p)) {
			action += commandBonus
			break
		}
	}
	action = clamp(action)

	info := infoKeywordWeight * keywordScore(fields, t.Information.Words())
	if strings.Contains(text, "?") {
		info += questionMarkBonus
	}
	if d.copula.MatchString(lower) {
		info += copulaBonus
	}
	info = clamp(info)

	convo := keywordScore(fields, t.Conversation.Words())
	if len(fields) <= shortUtteranceMax {
		convo += shortUtteranceBonus
	}
	convo = clamp(convo)

	s := Score{
		Scores: map[model.IntentCategory]float64{
			model.IntentExit:         exit,
			model.IntentAction:       action,
			model.IntentInformation:  info,
			model.IntentConversation: convo,
		},
	}

	switch {
	case action >= ActionThreshold:
		s.Category, s.Confidence = model.IntentAction, action
		s.Details = map[string]string{DetailType: TypeSystemControl}
	case info > InformationThreshold:
		s.Category, s.Confidence = model.IntentInformation, info
		s.Details = map[string]string{DetailType: TypeKnowledgeRequest}
	case convo > ConversationThreshold:
		s.Category, s.Confidence = model.IntentConversation, convo
		s.Details = map[string]string{DetailType: TypeCasualChat}
	default:
		s.Category, s.Confidence = model.IntentInformation, FallbackConfidence
		s.Details = map[string]string{DetailType: TypeUnclearFallback}
	}

	d.l.Debugf(ctx, "%s: %s (%.2f) action=%.2f info=%.2f convo=%.2f",
		LogPrefixClassify, s.Category, s.Confidence, action, info, convo)
	return s
}

// keywordScore is min(0.3 * |fields ∩ keywords|, 1).
func keywordScore(fields []string, keywords []string) float64 {
	return clamp(keywordWeight * float64(vocab.CountMatches(fields, keywords)))
}

// exitScore treats a one-word utterance that is itself an exit keyword as certain,
// otherwise a bare "exit" would never clear the threshold. Trailing punctuation is
// ignored for that single word only.
func exitScore(fields []string, keywords []string) float64 {
	if len(fields) == 1 {
		word := vocab.TrimToken(fields[0])
		for _, kw := range keywords {
			if word == kw {
				return 1.0
			}
		}
	}
	return keywordScore(fields, keywords)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
