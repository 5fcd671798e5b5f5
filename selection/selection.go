package selection

import (
	"errors"
	"math/rand/v2"

	"github.com/poiesic/retort/core"
)

// ErrNoCandidates is returned when a selection function is invoked with
// an empty candidate list.
var ErrNoCandidates = errors.New("no candidates to select from")

// Func picks one statement from a list of scored response candidates.
// The candidates are the statements known to answer the matched input,
// all carrying the match score; the function decides which of them to
// say. Implementations must not mutate the candidate list.
type Func func(candidates []*core.MatchResult) (*core.Statement, error)

// First returns the first candidate. This is the default selection
// method: deterministic and stable for a stable corpus order.
func First(candidates []*core.MatchResult) (*core.Statement, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	return candidates[0].Statement, nil
}

// Random returns a uniformly random candidate, which keeps repeated
// conversations from sounding scripted.
func Random(candidates []*core.MatchResult) (*core.Statement, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	return candidates[rand.IntN(len(candidates))].Statement, nil
}

// MostFrequent returns the candidate whose text occurs most often in the
// list. The corpus records one statement per observed utterance, so a
// response seen many times accumulates duplicate candidates here. Ties
// go to the earliest candidate.
func MostFrequent(candidates []*core.MatchResult) (*core.Statement, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	counts := make(map[string]int, len(candidates))
	for _, candidate := range candidates {
		counts[candidate.Statement.Text]++
	}

	best := candidates[0].Statement
	bestCount := counts[best.Text]
	for _, candidate := range candidates[1:] {
		if counts[candidate.Statement.Text] > bestCount {
			best = candidate.Statement
			bestCount = counts[best.Text]
		}
	}

	return best, nil
}
