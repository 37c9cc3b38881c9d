package gemini

import "errors"

var (
	ErrMissingAPIKey = errors.New("gemini: API key is required")
	ErrNoCandidates  = errors.New("gemini: response has no candidates")
)
