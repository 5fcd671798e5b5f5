package compare

import (
	"context"
	"strings"

	"github.com/poiesic/retort/core"
	"github.com/xrash/smetrics"
)

// Levenshtein compares two statements by normalized edit distance over
// their lowercased text. A distance of zero yields 1; a distance equal
// to the longer text's length yields 0.
func Levenshtein(_ context.Context, a, b *core.Statement) (float64, error) {
	x := strings.ToLower(a.Text)
	y := strings.ToLower(b.Text)

	longest := max(len(x), len(y))
	if longest == 0 {
		return 1, nil
	}

	distance := smetrics.WagnerFischer(x, y, 1, 1, 1)
	return 1 - float64(distance)/float64(longest), nil
}

// JaroWinkler compares two statements using Jaro-Winkler similarity over
// their lowercased text, which favors strings sharing a common prefix.
func JaroWinkler(_ context.Context, a, b *core.Statement) (float64, error) {
	x := strings.ToLower(a.Text)
	y := strings.ToLower(b.Text)

	if x == "" && y == "" {
		return 1, nil
	}

	return smetrics.JaroWinkler(x, y, 0.7, 4), nil
}
