package compare

import (
	"context"
	"strings"

	"github.com/poiesic/retort/core"
)

// Stop words to filter out before comparing token sets
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "to": true, "of": true, "and": true, "in": true, "that": true,
	"have": true, "it": true, "for": true, "not": true, "on": true, "with": true,
	"as": true, "you": true, "do": true, "at": true, "this": true, "but": true,
	"by": true, "from": true,
}

// tokenizeAndFilter splits text into words, lowercases, trims punctuation, and removes stop words
func tokenizeAndFilter(text string) []string {
	words := strings.Fields(text)
	filtered := make([]string, 0, len(words))

	for _, word := range words {
		// Lowercase and trim punctuation
		cleaned := strings.ToLower(strings.Trim(word, ".,!?;:'\"-()[]{}"))

		// Skip stop words and empty strings
		if cleaned != "" && !stopWords[cleaned] {
			filtered = append(filtered, cleaned)
		}
	}

	return filtered
}

// Jaccard compares two statements by the overlap of their token sets
// after stop-word filtering: |A ∩ B| / |A ∪ B|. Statements with no
// usable tokens score 0 against everything.
func Jaccard(_ context.Context, a, b *core.Statement) (float64, error) {
	tokensA := tokenizeAndFilter(a.Text)
	tokensB := tokenizeAndFilter(b.Text)

	setA := make(map[string]bool, len(tokensA))
	for _, token := range tokensA {
		setA[token] = true
	}

	intersection := 0
	setB := make(map[string]bool, len(tokensB))
	for _, token := range tokensB {
		if setB[token] {
			continue
		}
		setB[token] = true
		if setA[token] {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0, nil
	}

	return float64(intersection) / float64(union), nil
}
