package intent

import (
	"context"
	"regexp"

	"jarvis-assistant/internal/vocab"
	"jarvis-assistant/pkg/log"
)

// Detector assigns one of the four intent categories to an utterance.
type Detector interface {
	Classify(ctx context.Context, text string) Score
}

// KeywordDetector scores utterances against the vocabulary tables.
type KeywordDetector struct {
	store  *vocab.Store
	copula *regexp.Regexp
	l      log.Logger
}

var _ Detector = (*KeywordDetector)(nil)

// New creates a KeywordDetector reading tables from store on every call.
func New(store *vocab.Store, l log.Logger) *KeywordDetector {
	if store == nil {
		store = vocab.NewStore(nil)
	}
	return &KeywordDetector{
		store:  store,
		copula: regexp.MustCompile(copulaPattern),
		l:      l,
	}
}
