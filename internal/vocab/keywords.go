package vocab

import "strings"

// Words flattens the sets in order, lowercased and without duplicates.
func (k Keywords) Words() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, set := range k {
		for _, w := range set.Words {
			w = strings.ToLower(strings.TrimSpace(w))
			if w == "" {
				continue
			}
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	return out
}

// Locale returns the words registered for a single locale.
func (k Keywords) Locale(locale string) []string {
	var out []string
	for _, set := range k {
		if set.Locale == locale {
			out = append(out, set.Words...)
		}
	}
	return out
}

// ContainsAny reports whether any keyword occurs as a substring of the lowercased text.
func (k Keywords) ContainsAny(lower string) bool {
	for _, w := range k.Words() {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func en(words ...string) KeywordSet {
	return KeywordSet{Locale: LocaleEnglish, Words: words}
}

func hi(words ...string) KeywordSet {
	return KeywordSet{Locale: LocaleHinglish, Words: words}
}
