package vocab

import (
	"strings"
	"unicode"
)

// Tokenize lowercases text and splits it on whitespace.
// Leading and trailing punctuation is trimmed from every token.
func Tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if t := TrimToken(f); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// TrimToken strips punctuation around a token but keeps inner apostrophes.
func TrimToken(token string) string {
	return strings.TrimFunc(token, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// HasPhrase reports whether phrase appears in tokens as a contiguous token sequence.
func HasPhrase(tokens []string, phrase string) bool {
	parts := strings.Fields(phrase)
	if len(parts) == 0 || len(parts) > len(tokens) {
		return false
	}
	for i := 0; i+len(parts) <= len(tokens); i++ {
		match := true
		for j, p := range parts {
			if tokens[i+j] != p {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// Fields lowercases text and splits it on whitespace. Punctuation stays attached.
func Fields(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

// CountMatches returns the size of the intersection between the field set and the keyword set.
// A multi-word keyword never equals a single field, so it never matches.
func CountMatches(fields []string, keywords []string) int {
	if len(fields) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}

	seen := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		if _, ok := set[kw]; ok {
			seen[kw] = struct{}{}
		}
	}
	return len(seen)
}

// RemovePhrases drops every occurrence of the given words and multi-word phrases from tokens.
// Comparison uses the punctuation-trimmed lowercase form, output keeps the original tokens.
func RemovePhrases(tokens []string, phrases []string) []string {
	single := make(map[string]struct{})
	var multi [][]string
	for _, p := range phrases {
		parts := strings.Fields(strings.ToLower(p))
		switch len(parts) {
		case 0:
		case 1:
			single[parts[0]] = struct{}{}
		default:
			multi = append(multi, parts)
		}
	}

	norm := make([]string, len(tokens))
	for i, t := range tokens {
		norm[i] = TrimToken(strings.ToLower(t))
	}

	drop := make([]bool, len(tokens))
	for _, parts := range multi {
		for i := 0; i+len(parts) <= len(norm); i++ {
			match := true
			for j, p := range parts {
				if norm[i+j] != p {
					match = false
					break
				}
			}
			if match {
				for j := range parts {
					drop[i+j] = true
				}
			}
		}
	}

	out := make([]string, 0, len(tokens))
	for i, t := range tokens {
		if drop[i] {
			continue
		}
		if _, ok := single[norm[i]]; ok {
			continue
		}
		out = append(out, t)
	}
	return out
}
