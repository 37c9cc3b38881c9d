package action

import (
	"context"
	"strings"

	"jarvis-assistant/internal/model"
	"jarvis-assistant/internal/vocab"
)

// rule returns ok=false to let the cascade continue.
type rule func(x Extractor, text, lower string) (model.TaskDecision, bool)

// rules is evaluated in priority order.
var rules = []rule{
	languageRule,
	mediaRule,
	musicContentRule,
	searchRule,
	openAppRule,
	messageRule,
	emailRule,
	foodRule,
	weatherRule,
	timeDateRule,
	exitRule,
}

// Resolve runs the cascade. Every decision carries the original text as parameters.query.
// When no rule matches, a conversation decision with no action is returned.
func (r *RuleResolver) Resolve(ctx context.Context, text string) model.TaskDecision {
	x := NewExtractor(&r.store.Current().Resolver)
	lower := strings.ToLower(strings.TrimSpace(text))

	for _, match := range rules {
		if d, ok := match(x, text, lower); ok {
			r.l.Debugf(ctx, "%s: %s (%.2f) entities=%d", LogPrefixResolve, d.Action, d.Confidence, len(d.Entities))
			return d
		}
	}

	r.l.Debugf(ctx, "%s: no rule matched", LogPrefixResolve)
	return model.TaskDecision{
		Intent:     model.DecisionConversation,
		Action:     model.ActionNone,
		Parameters: model.Parameters{Query: text},
		Entities:   model.Entities{},
		Confidence: ConfidenceDefault,
	}
}

func languageRule(x Extractor, text, lower string) (model.TaskDecision, bool) {
	if !x.t.LanguageSwitch.ContainsAny(lower) {
		return model.TaskDecision{}, false
	}
	code, ok := x.TargetLanguage(lower)
	if !ok {
		return model.TaskDecision{}, false
	}
	return model.NewTaskDecision(model.ActionChangeLanguage, text, ConfidenceChangeLanguage, model.Entities{
		model.EntityTargetLanguage: model.StrPtr(code),
	}), true
}

func mediaRule(x Extractor, text, lower string) (model.TaskDecision, bool) {
	if !x.t.Media.ContainsAny(lower) {
		return model.TaskDecision{}, false
	}
	return playDecision(x, text, ConfidenceMedia), true
}

func musicContentRule(x Extractor, text, lower string) (model.TaskDecision, bool) {
	if !x.t.PlayVerbs.ContainsAny(lower) || !x.HasMusicContent(lower) {
		return model.TaskDecision{}, false
	}
	return playDecision(x, text, ConfidenceMusicContent), true
}

func playDecision(x Extractor, text string, confidence float64) model.TaskDecision {
	return model.NewTaskDecision(model.ActionPlayYouTube, text, confidence, model.Entities{
		model.EntityVideoName: model.StrPtr(x.VideoName(text)),
	})
}

func searchRule(x Extractor, text, lower string) (model.TaskDecision, bool) {
	if !x.t.Search.ContainsAny(lower) {
		return model.TaskDecision{}, false
	}
	return model.NewTaskDecision(model.ActionSearch, text, ConfidenceSearch, model.Entities{
		model.EntitySearchTerms: model.StrPtr(x.SearchQuery(text)),
	}), true
}

// openAppRule only fires when a known application is named.
func openAppRule(x Extractor, text, lower string) (model.TaskDecision, bool) {
	if !x.t.Open.ContainsAny(lower) {
		return model.TaskDecision{}, false
	}
	app := x.AppName(lower)
	if app == PlaceholderApp {
		return model.TaskDecision{}, false
	}
	return model.NewTaskDecision(model.ActionOpenApp, text, ConfidenceOpenApp, model.Entities{
		model.EntityAppName: model.StrPtr(app),
	}), true
}

func messageRule(x Extractor, text, lower string) (model.TaskDecision, bool) {
	if !x.t.Message.ContainsAny(lower) {
		return model.TaskDecision{}, false
	}
	contact, message := x.ContactAndMessage(text)
	return model.NewTaskDecision(model.ActionSendMessage, text, ConfidenceMessage, model.Entities{
		model.EntityContact:   contact,
		model.EntityMessage:   message,
		model.EntityFullQuery: model.StrPtr(text),
	}), true
}

func emailRule(x Extractor, text, lower string) (model.TaskDecision, bool) {
	return keywordDecision(x.t.Email, model.ActionSendEmail, ConfidenceEmail, text, lower)
}

func foodRule(x Extractor, text, lower string) (model.TaskDecision, bool) {
	return keywordDecision(x.t.Food, model.ActionOrderFood, ConfidenceFood, text, lower)
}

func weatherRule(x Extractor, text, lower string) (model.TaskDecision, bool) {
	return keywordDecision(x.t.Weather, model.ActionGetWeather, ConfidenceWeather, text, lower)
}

func timeDateRule(x Extractor, text, lower string) (model.TaskDecision, bool) {
	return keywordDecision(x.t.TimeDate, model.ActionTimeDate, ConfidenceTimeDate, text, lower)
}

func exitRule(x Extractor, text, lower string) (model.TaskDecision, bool) {
	return keywordDecision(x.t.Exit, model.ActionExit, ConfidenceExit, text, lower)
}

func keywordDecision(k vocab.Keywords, a model.Action, confidence float64, text, lower string) (model.TaskDecision, bool) {
	if !k.ContainsAny(lower) {
		return model.TaskDecision{}, false
	}
	return model.NewTaskDecision(a, text, confidence, nil), true
}
