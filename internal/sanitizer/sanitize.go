package sanitizer

import (
	"context"
	"fmt"
	"strings"
)

// Sanitize rejects dangerous input and otherwise strips NUL bytes,
// truncates to the configured length and collapses whitespace.
func (s *InputSanitizer) Sanitize(text string) Result {
	if text == "" {
		return Result{Safe: true}
	}

	ctx := context.Background()
	for _, p := range s.patterns {
		if p.MatchString(text) {
			s.l.Warnf(ctx, "%s: security: dangerous pattern %q detected", LogPrefixSanitize, p.String())
			return Result{Safe: false, Cleaned: text, Warning: WarningDangerous}
		}
	}

	cleaned := strings.ReplaceAll(text, "\x00", "")

	var warning string
	if runes := []rune(cleaned); len(runes) > s.maxLength {
		s.l.Warnf(ctx, "%s: input too long (%d chars), truncating to %d", LogPrefixSanitize, len(runes), s.maxLength)
		cleaned = string(runes[:s.maxLength])
		warning = fmt.Sprintf(WarningTruncatedFmt, s.maxLength)
	}

	cleaned = strings.Join(strings.Fields(cleaned), " ")

	return Result{Safe: true, Cleaned: cleaned, Warning: warning}
}
