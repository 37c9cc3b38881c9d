package brain

import (
	"context"
	"math/rand"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"jarvis-assistant/internal/action"
	"jarvis-assistant/internal/intent"
	"jarvis-assistant/internal/model"
	"jarvis-assistant/internal/sanitizer"
	"jarvis-assistant/internal/vocab"
	"jarvis-assistant/pkg/log"
)

// Brain turns one utterance into a Result.
type Brain interface {
	Process(ctx context.Context, text, language string) model.Result
}

// Deps are the collaborators of a Router. Only Sanitizer, Detector, Resolver and Memory are required.
type Deps struct {
	Sanitizer sanitizer.Sanitizer
	Detector  intent.Detector
	Resolver  action.Resolver
	Knowledge Knowledge
	Memory    Memory
	Vocab     *vocab.Store
	Picker    Picker
	Logger    log.Logger

	// DefaultLanguage tags utterances that arrive without a language.
	DefaultLanguage string
}

// Router is the default Brain. It is not safe for concurrent use.
type Router struct {
	sanitizer sanitizer.Sanitizer
	detector  intent.Detector
	resolver  action.Resolver
	knowledge Knowledge
	memory    Memory
	vocab     *vocab.Store
	picker    Picker
	title     cases.Caser
	lang      string
	l         log.Logger
}

var _ Brain = (*Router)(nil)

// New validates deps and creates a Router.
func New(deps Deps) (*Router, error) {
	switch {
	case deps.Sanitizer == nil:
		return nil, ErrNilSanitizer
	case deps.Detector == nil:
		return nil, ErrNilDetector
	case deps.Resolver == nil:
		return nil, ErrNilResolver
	case deps.Memory == nil:
		return nil, ErrNilMemory
	}

	if deps.Vocab == nil {
		deps.Vocab = vocab.NewStore(nil)
	}
	if deps.Picker == nil {
		deps.Picker = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if deps.Logger == nil {
		deps.Logger = log.NewNop()
	}
	if deps.DefaultLanguage == "" {
		deps.DefaultLanguage = DefaultLanguage
	}

	return &Router{
		sanitizer: deps.Sanitizer,
		detector:  deps.Detector,
		resolver:  deps.Resolver,
		knowledge: deps.Knowledge,
		memory:    deps.Memory,
		vocab:     deps.Vocab,
		picker:    deps.Picker,
		title:     cases.Title(language.English),
		lang:      deps.DefaultLanguage,
		l:         deps.Logger,
	}, nil
}
