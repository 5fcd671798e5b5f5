package search

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"

	"github.com/poiesic/retort/compare"
	"github.com/poiesic/retort/core"
)

const (
	// DefaultThreshold is the similarity at which searching stops early.
	DefaultThreshold = 0.95

	// DefaultPageSize bounds how many statements are held in memory at once.
	DefaultPageSize = 1000
)

var (
	// ErrSourceRequired is returned when a search is constructed without a corpus source.
	ErrSourceRequired = errors.New("statement source required")

	// ErrComparatorRequired is returned when a search is constructed without a comparison function.
	ErrComparatorRequired = errors.New("comparator required")

	// ErrInvalidThreshold is returned for thresholds outside [0, 1].
	ErrInvalidThreshold = errors.New("threshold must be between 0 and 1")

	// ErrInvalidPageSize is returned for page sizes below 1.
	ErrInvalidPageSize = errors.New("page size must be positive")
)

// Source provides the candidate corpus as a lazy sequence of pages, each
// holding at most pageSize statements. Iteration must be resumable and
// one-directional; no ordering is required beyond every statement being
// eventually visited if iteration is not stopped.
type Source interface {
	Pages(ctx context.Context, pageSize int) iter.Seq2[[]*core.Statement, error]
}

// TextSearch finds the statement in a corpus most similar to an input.
// A TextSearch is immutable after construction and safe for concurrent
// use as long as its comparator is.
type TextSearch struct {
	source     Source
	comparator compare.Func
	exclusion  *ExclusionFilter
	threshold  float64
	pageSize   int
	monitor    Monitor
	logger     *slog.Logger
}

// Option configures a TextSearch.
type Option func(*TextSearch) error

// WithThreshold sets the similarity at which the search halts early.
// Default is DefaultThreshold.
func WithThreshold(threshold float64) Option {
	return func(t *TextSearch) error {
		if threshold < 0 || threshold > 1 {
			return fmt.Errorf("%w: %v", ErrInvalidThreshold, threshold)
		}
		t.threshold = threshold
		return nil
	}
}

// WithPageSize sets how many statements are loaded per page.
// Default is DefaultPageSize.
func WithPageSize(pageSize int) Option {
	return func(t *TextSearch) error {
		if pageSize < 1 {
			return fmt.Errorf("%w: %d", ErrInvalidPageSize, pageSize)
		}
		t.pageSize = pageSize
		return nil
	}
}

// WithExcludedWords sets words that disqualify a statement from being
// returned. Default is none.
func WithExcludedWords(words []string) Option {
	return func(t *TextSearch) error {
		t.exclusion = NewExclusionFilter(words)
		return nil
	}
}

// WithMonitor sets an observer for search progress.
// Default is a no-op monitor.
func WithMonitor(monitor Monitor) Option {
	return func(t *TextSearch) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		t.monitor = monitor
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(t *TextSearch) error {
		if logger == nil {
			logger = slog.Default()
		}
		t.logger = logger
		return nil
	}
}

// NewTextSearch creates a search over the given corpus source using the
// given comparison function.
func NewTextSearch(source Source, comparator compare.Func, opts ...Option) (*TextSearch, error) {
	if source == nil {
		return nil, ErrSourceRequired
	}
	if comparator == nil {
		return nil, ErrComparatorRequired
	}

	t := &TextSearch{
		source:     source,
		comparator: comparator,
		exclusion:  NewExclusionFilter(nil),
		threshold:  DefaultThreshold,
		pageSize:   DefaultPageSize,
		monitor:    &noopMonitor{},
		logger:     slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// FindBestMatch returns the admissible statement most similar to the
// input, or nil if the corpus is empty or every candidate was excluded.
// The scan stops as soon as a candidate scores at or above the threshold;
// no further pages are fetched after that.
//
// Cancellation is checked between pages. A cancelled search returns the
// best match found so far together with the context's error, so callers
// can keep partial progress if they want it.
//
// Comparison failures are not retried; they propagate to the caller with
// the offending statement's ID attached.
func (t *TextSearch) FindBestMatch(ctx context.Context, input *core.Statement) (*core.MatchResult, error) {
	t.monitor.Start(input)

	var best *core.MatchResult
	for page, err := range t.source.Pages(ctx, t.pageSize) {
		// Cancellation wins over source errors so partial progress survives.
		if ctxErr := ctx.Err(); ctxErr != nil {
			t.logger.Debug("search cancelled", "found", best != nil)
			return best, ctxErr
		}
		if err != nil {
			return nil, err
		}
		t.monitor.PageLoaded(len(page))

		for _, statement := range page {
			if t.exclusion.Rejects(statement.Text) {
				t.monitor.Excluded(statement)
				continue
			}

			score, err := t.comparator(ctx, input, statement)
			if err != nil {
				return nil, fmt.Errorf("comparing statement %d: %w", statement.Id, err)
			}

			if best == nil || score > best.Score {
				best = &core.MatchResult{Statement: statement, Score: score}
				t.monitor.NewBest(best)
			}

			// Inclusive: a score exactly at the threshold halts the scan.
			if best.Score >= t.threshold {
				t.monitor.ThresholdReached(best)
				t.monitor.Finish(best)
				return best, nil
			}
		}
	}

	t.monitor.Finish(best)
	return best, nil
}
