package knowledge

import "errors"

var (
	// ErrNoProviders is returned when no generation backend is configured.
	ErrNoProviders = errors.New("knowledge: no providers configured")
	// ErrEmptyQuestion is returned for blank questions.
	ErrEmptyQuestion = errors.New("knowledge: empty question")
	// ErrEmptyAnswer is returned when the backend answers with blank text.
	ErrEmptyAnswer = errors.New("knowledge: empty answer")
)
