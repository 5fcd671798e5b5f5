package search

import "strings"

// ExclusionFilter rejects statements whose text contains any of a set of
// forbidden words. Matching is case-insensitive on whole words only, so
// an excluded word never fires on a longer token that merely contains it.
type ExclusionFilter struct {
	words map[string]bool
}

// NewExclusionFilter creates a filter for the given words. A nil or
// empty word list produces a filter that rejects nothing.
func NewExclusionFilter(words []string) *ExclusionFilter {
	f := &ExclusionFilter{words: make(map[string]bool, len(words))}
	for _, word := range words {
		cleaned := strings.ToLower(strings.TrimSpace(word))
		if cleaned != "" {
			f.words[cleaned] = true
		}
	}
	return f
}

// Rejects reports whether the text contains an excluded word.
func (f *ExclusionFilter) Rejects(text string) bool {
	if len(f.words) == 0 {
		return false
	}

	for _, word := range strings.Fields(text) {
		// Lowercase and trim punctuation
		cleaned := strings.ToLower(strings.Trim(word, ".,!?;:'\"-()[]{}"))
		if f.words[cleaned] {
			return true
		}
	}
	return false
}
