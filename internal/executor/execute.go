package executor

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"jarvis-assistant/internal/model"
	"jarvis-assistant/pkg/datemath"
)

// Execute runs the side effect of d and returns the reply to speak.
// Launch failures become replies; only an unknown action is an error.
func (e *TaskExecutor) Execute(ctx context.Context, d model.TaskDecision) (*string, error) {
	e.l.Infof(ctx, "%s: action=%s", LogPrefixExecute, d.Action)

	switch d.Action {
	case model.ActionChangeLanguage:
		return e.changeLanguage(ctx, d)
	case model.ActionOpenApp:
		return e.openApp(ctx, d)
	case model.ActionSearch:
		terms, _ := d.Entities.Get(model.EntitySearchTerms)
		if isPlaceholder(terms) {
			return reply(ReplyWhatToSearch)
		}
		return e.openURL(ctx, googleSearchURL+url.QueryEscape(terms))
	case model.ActionPlayYouTube:
		video, _ := d.Entities.Get(model.EntityVideoName)
		if isPlaceholder(video) {
			return reply(ReplyWhatToPlay)
		}
		return e.openURL(ctx, youtubeSearchURL+url.QueryEscape(video))
	case model.ActionSendMessage:
		return e.sendMessage(ctx, d)
	case model.ActionSendEmail:
		if r, _ := e.openURL(ctx, gmailComposeURL); r != nil {
			return r, nil
		}
		return reply(ReplyEmail)
	case model.ActionOrderFood:
		return e.orderFood(ctx, d)
	case model.ActionGetWeather:
		return reply(ReplyWeather)
	case model.ActionTimeDate:
		return reply(e.timeDate(d.Parameters.Query))
	case model.ActionExit:
		return reply(ReplyGoodbye)
	}

	e.l.Warnf(ctx, "%s: unknown action %q", LogPrefixExecute, d.Action)
	return nil, fmt.Errorf("%w: %q", ErrUnknownAction, d.Action)
}

func (e *TaskExecutor) changeLanguage(ctx context.Context, d model.TaskDecision) (*string, error) {
	code, ok := d.Entities.Get(model.EntityTargetLanguage)
	if !ok {
		code = "en"
	}
	if e.language == nil {
		e.l.Warnf(ctx, "%s: no language setter configured", LogPrefixExecute)
		return reply(ReplyLanguageFailed)
	}
	e.language.SetLanguage(code)

	name, ok := languageNames[code]
	if !ok {
		name = languageNames["en"]
	}
	return reply(fmt.Sprintf(ReplyLanguageChangedFmt, name))
}

func (e *TaskExecutor) openApp(ctx context.Context, d model.TaskDecision) (*string, error) {
	app, _ := d.Entities.Get(model.EntityAppName)
	app = strings.ToLower(strings.TrimSpace(app))
	if app == "" || app == placeholderApp {
		return reply(ReplyWhichApp)
	}

	argv, ok := appCommand(e.goos, app)
	if !ok {
		e.l.Warnf(ctx, "%s: no command for %q on %s", LogPrefixExecute, app, e.goos)
		return reply(fmt.Sprintf(ReplyUnknownAppFmt, app))
	}

	if safe, msg := e.validator.ValidateCommand(strings.Join(argv, " ")); !safe {
		e.l.Errorf(ctx, "%s: blocked command %q: %s", LogPrefixExecute, argv, msg)
		return reply(ReplyCommandBlocked)
	}

	if err := e.launcher.Run(ctx, argv); err != nil {
		e.l.Errorf(ctx, "%s: open %s: %v", LogPrefixExecute, app, err)
		return reply(fmt.Sprintf(ReplyAppFailedFmt, app))
	}
	return nil, nil
}

func (e *TaskExecutor) sendMessage(ctx context.Context, d model.TaskDecision) (*string, error) {
	contact, hasContact := d.Entities.Get(model.EntityContact)
	message, hasMessage := d.Entities.Get(model.EntityMessage)

	if !hasMessage {
		if r, _ := e.openURL(ctx, whatsAppWebURL); r != nil {
			return r, nil
		}
		if !hasContact {
			return reply(ReplyWhoToMessage)
		}
		return nil, nil
	}

	e.l.Debugf(ctx, "%s: message for %q", LogPrefixExecute, contact)
	return e.openURL(ctx, whatsAppSendURL+url.QueryEscape(message))
}

func (e *TaskExecutor) orderFood(ctx context.Context, d model.TaskDecision) (*string, error) {
	lower := strings.ToLower(d.Parameters.Query)

	target, answer := swiggyURL, ReplyFoodDefault
	switch {
	case strings.Contains(lower, "swiggy"):
		answer = ReplySwiggy
	case strings.Contains(lower, "zomato"):
		target, answer = zomatoURL, ReplyZomato
	}

	if r, _ := e.openURL(ctx, target); r != nil {
		return r, nil
	}
	return reply(answer)
}

// timeDate answers clock and calendar questions, including Hinglish
// relative days such as "kal" and "parso".
func (e *TaskExecutor) timeDate(query string) string {
	now := e.now().In(e.dateMath.Location())
	lower := strings.ToLower(query)

	if strings.Contains(lower, "time") || strings.Contains(lower, "samay") || strings.Contains(lower, "baje") {
		return fmt.Sprintf(ReplyTimeFmt, now.Format(timeLayout))
	}

	if phrase, ok := datemath.Detect(query); ok && !datemath.IsToday(phrase) {
		if day, err := e.dateMath.Parse(phrase, now); err == nil {
			return fmt.Sprintf(ReplyRelativeDateFmt, day.Format(dateLayout))
		}
	}

	for _, w := range []string{"date", "today", "aaj", "tarikh", "din"} {
		if strings.Contains(lower, w) {
			return fmt.Sprintf(ReplyTodayFmt, now.Format(dateLayout))
		}
	}
	return fmt.Sprintf(ReplyDateTimeFmt, now.Format(timeLayout), now.Format(dateLayout))
}

// openURL validates and opens target. A non-nil reply reports a failure.
func (e *TaskExecutor) openURL(ctx context.Context, target string) (*string, error) {
	if safe, msg := e.validator.SanitizeURL(target); !safe {
		e.l.Errorf(ctx, "%s: blocked url %q: %s", LogPrefixExecute, target, msg)
		return reply(ReplyURLBlocked)
	}
	if err := e.launcher.OpenURL(ctx, target); err != nil {
		e.l.Errorf(ctx, "%s: open url: %v", LogPrefixExecute, err)
		return reply(ReplyOpenFailed)
	}
	return nil, nil
}

func isPlaceholder(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || s == placeholderQuery
}

func reply(s string) (*string, error) {
	return &s, nil
}
