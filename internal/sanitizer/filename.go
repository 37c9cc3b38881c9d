package sanitizer

import (
	"context"
	"regexp"
	"strings"
)

var unsafeFilenameChars = regexp.MustCompile(`[<>:"|?*\x00-\x1f]`)

// SanitizeFilename returns a filesystem safe name. The bool is false when nothing usable remains.
func (s *InputSanitizer) SanitizeFilename(name string) (bool, string) {
	if name == "" {
		return false, ""
	}

	cleaned := strings.NewReplacer("/", "_", `\`, "_").Replace(name)
	cleaned = unsafeFilenameChars.ReplaceAllString(cleaned, "")
	cleaned = strings.Trim(cleaned, ". ")

	if _, reserved := reservedFilenames[strings.ToUpper(cleaned)]; reserved {
		s.l.Warnf(context.Background(), "%s: reserved filename %q", LogPrefixSanitizeFile, cleaned)
		cleaned = "file_" + cleaned
	}

	if runes := []rune(cleaned); len(runes) > MaxFilenameLength {
		cleaned = string(runes[:MaxFilenameLength])
	}

	return cleaned != "", cleaned
}
