package action

import (
	"strings"
	"unicode"

	"jarvis-assistant/internal/model"
	"jarvis-assistant/internal/vocab"
)

// Extractor pulls entities out of utterances using one set of resolver tables.
// All methods are pure and never fail; misses yield a placeholder or nil.
type Extractor struct {
	t *vocab.ResolverTables
}

// NewExtractor binds an extractor to t, or to the defaults when t is nil.
func NewExtractor(t *vocab.ResolverTables) Extractor {
	if t == nil {
		t = &vocab.Default().Resolver
	}
	return Extractor{t: t}
}

// TargetLanguage returns the code of the first language named in text, in table order.
func (x Extractor) TargetLanguage(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, lang := range x.t.Languages {
		if strings.Contains(lower, strings.ToLower(lang.Name)) {
			return lang.Code, true
		}
	}
	return "", false
}

// AppName returns the first configured app key contained in text, lowercased.
func (x Extractor) AppName(text string) string {
	lower := strings.ToLower(text)
	for _, app := range x.t.Apps {
		key := strings.ToLower(strings.TrimSpace(app))
		if key != "" && strings.Contains(lower, key) {
			return key
		}
	}
	return PlaceholderApp
}

// HasMusicContent reports whether text mentions a song, artist or devotional term.
func (x Extractor) HasMusicContent(text string) bool {
	return x.t.MusicContent.ContainsAny(strings.ToLower(text))
}

// SearchQuery strips search verbs and connectors and returns the remaining words.
func (x Extractor) SearchQuery(text string) string {
	return x.strip(text, x.t.SearchStopWords.Words())
}

// VideoName strips play verbs, media nouns and filler words.
// If nothing remains, capitalized words after the first are tried as a proper-noun title.
func (x Extractor) VideoName(text string) string {
	words := strings.Fields(strings.ToLower(text))
	if kept := vocab.RemovePhrases(words, x.t.VideoStopWords.Words()); len(kept) > 0 {
		return strings.Join(kept, " ")
	}

	original := strings.Fields(text)
	var proper []string
	for i, w := range original {
		if i == 0 || len([]rune(w)) < capitalizedMinLen {
			continue
		}
		if r := []rune(w)[0]; unicode.IsUpper(r) {
			proper = append(proper, w)
		}
	}
	if len(proper) > 0 {
		return strings.Join(proper, " ")
	}
	return PlaceholderQuery
}

func (x Extractor) strip(text string, stop []string) string {
	words := strings.Fields(strings.ToLower(text))
	kept := vocab.RemovePhrases(words, stop)
	if len(kept) == 0 {
		return PlaceholderQuery
	}
	return strings.Join(kept, " ")
}

// ContactName returns the word following "to" or "ko", or nil.
func (x Extractor) ContactName(text string) *string {
	words := strings.Fields(strings.ToLower(text))
	for i, w := range words {
		if (w == wordTo || w == wordKo) && i+1 < len(words) {
			return model.StrPtr(vocab.TrimToken(words[i+1]))
		}
	}
	return nil
}

// ContactAndMessage recognizes three shapes, checked in order:
//
//	message to <contact> that <message>
//	<contact> ko message bhejo ki <message>
//	message [to] <contact> <message...>
//
// When none fits, the contact falls back to ContactName and the message is nil.
// Output is lowercased. Either value may be nil.
func (x Extractor) ContactAndMessage(text string) (contact, message *string) {
	words := strings.Fields(strings.ToLower(text))
	norm := make([]string, len(words))
	for i, w := range words {
		norm[i] = vocab.TrimToken(w)
	}

	if c, m, ok := toThatMessage(words, norm); ok {
		return c, m
	}
	if c, m, ok := x.koMessage(words, norm); ok {
		return c, m
	}
	if c, m, ok := messageFirst(words, norm); ok {
		return c, m
	}
	return x.ContactName(text), nil
}

// toThatMessage matches "to <contact> that <message>" for the first "to" followed by "that".
func toThatMessage(words, norm []string) (contact, message *string, ok bool) {
	for to := indexOf(norm, wordTo, 0); to >= 0; to = indexOf(norm, wordTo, to+1) {
		that := indexOf(norm, wordThat, to+1)
		if that < 0 {
			return nil, nil, false
		}
		if c := joinPtr(words[to+1 : that]); c != nil {
			return c, joinPtr(words[that+1:]), true
		}
	}
	return nil, nil, false
}

func (x Extractor) koMessage(words, norm []string) (contact, message *string, ok bool) {
	ko := indexOf(norm, wordKo, 0)
	if ko < 0 || (indexOf(norm, wordBhejo, 0) < 0 && indexOf(norm, wordMessage, 0) < 0) {
		return nil, nil, false
	}
	contact = joinPtr(vocab.RemovePhrases(words[:ko], x.t.ContactNoise.Words()))

	after := words[ko+1:]
	afterNorm := norm[ko+1:]
	if ki := indexOf(afterNorm, wordKi, 0); ki >= 0 {
		return contact, joinPtr(after[ki+1:]), true
	}
	if bhejo := indexOf(afterNorm, wordBhejo, 0); bhejo >= 0 {
		return contact, joinPtr(after[bhejo+1:]), true
	}
	return contact, joinPtr(vocab.RemovePhrases(after, x.t.MessageCommandNoun.Words())), true
}

// messageFirst reads the word after "message" as the contact, skipping a "to" or "ko" connector.
func messageFirst(words, norm []string) (contact, message *string, ok bool) {
	i := indexOf(norm, wordMessage, 0)
	if i < 0 {
		return nil, nil, false
	}
	i++
	if i < len(norm) && (norm[i] == wordTo || norm[i] == wordKo) {
		i++
	}
	if i >= len(words) || norm[i] == "" {
		return nil, nil, false
	}
	return model.StrPtr(norm[i]), joinPtr(words[i+1:]), true
}

func indexOf(words []string, target string, from int) int {
	for i := from; i < len(words); i++ {
		if words[i] == target {
			return i
		}
	}
	return -1
}

func joinPtr(words []string) *string {
	s := strings.TrimSpace(strings.Join(words, " "))
	if s == "" {
		return nil
	}
	return &s
}
