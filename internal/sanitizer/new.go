package sanitizer

import (
	"regexp"

	"jarvis-assistant/pkg/log"
)

// Sanitizer validates and cleans raw utterances before classification.
type Sanitizer interface {
	Sanitize(text string) Result
	SanitizeURL(url string) (bool, string)
	SanitizeFilename(name string) (bool, string)
	ValidateCommand(command string) (bool, string)
}

// InputSanitizer is the regex backed Sanitizer.
type InputSanitizer struct {
	l         log.Logger
	maxLength int
	patterns  []*regexp.Regexp
}

var _ Sanitizer = (*InputSanitizer)(nil)

// New creates a sanitizer. A non-positive maxLength uses DefaultMaxLength.
func New(l log.Logger, maxLength int) *InputSanitizer {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return &InputSanitizer{
		l:         l,
		maxLength: maxLength,
		patterns:  compiledPatterns,
	}
}

var compiledPatterns = compilePatterns(dangerousPatterns)

func compilePatterns(raw []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(raw))
	for i, p := range raw {
		out[i] = regexp.MustCompile("(?i)" + p)
	}
	return out
}
