package logic

import (
	"fmt"
	"log/slog"

	"github.com/poiesic/retort/compare"
	"github.com/poiesic/retort/search"
	"github.com/poiesic/retort/selection"
)

// Config is the resolved, immutable configuration held by an adapter
// for its lifetime.
type Config struct {
	// Comparator scores the similarity of two statements.
	// Default is compare.Levenshtein.
	Comparator compare.Func

	// Selector picks one response from the scored candidates.
	// Default is selection.First.
	Selector selection.Func

	// MaximumSimilarityThreshold is the similarity at which the corpus
	// search halts early. Default is search.DefaultThreshold.
	MaximumSimilarityThreshold float64

	// ExcludedWords disqualify any statement containing one of them
	// from being returned. Default is none.
	ExcludedWords []string

	// SearchPageSize bounds how many statements are loaded into memory
	// at a time while searching. Default is search.DefaultPageSize.
	SearchPageSize int
}

// settings accumulates options before resolution; names are resolved
// once, after every option has been applied.
type settings struct {
	resolver       *Resolver
	comparator     compare.Func
	comparatorName string
	selector       selection.Func
	selectorName   string
	threshold      float64
	excludedWords  []string
	pageSize       int
	monitor        search.Monitor
	logger         *slog.Logger
}

// Option configures an adapter.
type Option func(*settings) error

// WithResolver sets the resolver used for name-based strategy options.
// Default is NewResolver().
func WithResolver(resolver *Resolver) Option {
	return func(s *settings) error {
		if resolver == nil {
			return fmt.Errorf("%w: nil resolver", ErrConfiguration)
		}
		s.resolver = resolver
		return nil
	}
}

// WithComparator sets the statement comparison function directly.
func WithComparator(f compare.Func) Option {
	return func(s *settings) error {
		if f == nil {
			return fmt.Errorf("%w: nil comparison function", ErrConfiguration)
		}
		s.comparator = f
		s.comparatorName = ""
		return nil
	}
}

// WithComparatorName sets the statement comparison function by
// registered name, resolved at construction time.
func WithComparatorName(name string) Option {
	return func(s *settings) error {
		s.comparator = nil
		s.comparatorName = name
		return nil
	}
}

// WithSelector sets the response selection method directly.
func WithSelector(f selection.Func) Option {
	return func(s *settings) error {
		if f == nil {
			return fmt.Errorf("%w: nil selection method", ErrConfiguration)
		}
		s.selector = f
		s.selectorName = ""
		return nil
	}
}

// WithSelectorName sets the response selection method by registered
// name, resolved at construction time.
func WithSelectorName(name string) Option {
	return func(s *settings) error {
		s.selector = nil
		s.selectorName = name
		return nil
	}
}

// WithMaximumSimilarityThreshold sets the similarity at which searching
// stops early.
func WithMaximumSimilarityThreshold(threshold float64) Option {
	return func(s *settings) error {
		if threshold < 0 || threshold > 1 {
			return fmt.Errorf("%w: similarity threshold %v outside [0, 1]", ErrConfiguration, threshold)
		}
		s.threshold = threshold
		return nil
	}
}

// WithExcludedWords sets words the adapter must never say.
func WithExcludedWords(words ...string) Option {
	return func(s *settings) error {
		s.excludedWords = words
		return nil
	}
}

// WithSearchPageSize sets how many statements are loaded per page
// while searching.
func WithSearchPageSize(pageSize int) Option {
	return func(s *settings) error {
		if pageSize < 1 {
			return fmt.Errorf("%w: search page size %d must be positive", ErrConfiguration, pageSize)
		}
		s.pageSize = pageSize
		return nil
	}
}

// WithSearchMonitor sets an observer for search progress.
func WithSearchMonitor(monitor search.Monitor) Option {
	return func(s *settings) error {
		s.monitor = monitor
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

func newSettings(opts []Option) (*settings, error) {
	s := &settings{
		threshold: search.DefaultThreshold,
		pageSize:  search.DefaultPageSize,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if s.resolver == nil {
		s.resolver = NewResolver()
	}
	return s, nil
}

// config resolves names and defaults into an immutable Config.
func (s *settings) config() (Config, error) {
	cfg := Config{
		Comparator:                 s.comparator,
		Selector:                   s.selector,
		MaximumSimilarityThreshold: s.threshold,
		ExcludedWords:              s.excludedWords,
		SearchPageSize:             s.pageSize,
	}

	if cfg.Comparator == nil {
		name := s.comparatorName
		if name == "" {
			name = ComparatorLevenshtein
		}
		comparator, err := s.resolver.ResolveComparator(name)
		if err != nil {
			return Config{}, err
		}
		cfg.Comparator = comparator
	}

	if cfg.Selector == nil {
		name := s.selectorName
		if name == "" {
			name = SelectorFirst
		}
		selector, err := s.resolver.ResolveSelector(name)
		if err != nil {
			return Config{}, err
		}
		cfg.Selector = selector
	}

	return cfg, nil
}
