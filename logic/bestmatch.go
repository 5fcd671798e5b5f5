package logic

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/retort/core"
	"github.com/poiesic/retort/search"
	"github.com/poiesic/retort/storage"
)

// BestMatch answers an input by finding the stored statement most
// similar to it and replying with one of the responses recorded for
// that statement. Confidence is the similarity of the match.
type BestMatch struct {
	BaseAdapter
	repository storage.StatementRepository
	search     *search.TextSearch
	logger     *slog.Logger
}

var _ Adapter = (*BestMatch)(nil)

// NewBestMatch creates a best-match adapter over the given corpus.
func NewBestMatch(repository storage.StatementRepository, opts ...Option) (*BestMatch, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}

	s, err := newSettings(opts)
	if err != nil {
		return nil, err
	}
	cfg, err := s.config()
	if err != nil {
		return nil, err
	}

	searchOpts := []search.Option{
		search.WithThreshold(cfg.MaximumSimilarityThreshold),
		search.WithPageSize(cfg.SearchPageSize),
		search.WithExcludedWords(cfg.ExcludedWords),
		search.WithLogger(s.logger),
	}
	if s.monitor != nil {
		searchOpts = append(searchOpts, search.WithMonitor(s.monitor))
	}

	textSearch, err := search.NewTextSearch(repository, cfg.Comparator, searchOpts...)
	if err != nil {
		return nil, err
	}

	return &BestMatch{
		BaseAdapter: BaseAdapter{Config: cfg},
		repository:  repository,
		search:      textSearch,
		logger:      s.logger,
	}, nil
}

// CanProcess rejects statements without any searchable text.
func (b *BestMatch) CanProcess(ctx context.Context, statement *core.Statement) bool {
	return statement != nil && strings.TrimSpace(statement.Text) != ""
}

// Process searches the corpus for the closest match to the input and
// selects among the responses known for it. A nil result means the
// corpus held no admissible match or no recorded response.
func (b *BestMatch) Process(ctx context.Context, statement *core.Statement) (*Result, error) {
	match, err := b.search.FindBestMatch(ctx, statement)
	if err != nil {
		return nil, err
	}
	if match == nil {
		b.logger.Debug("no admissible match found", "input", statement.Text)
		return nil, nil
	}

	responses, err := b.repository.GetResponsesTo(ctx, match.Statement.Text)
	if err != nil {
		return nil, err
	}
	if len(responses) == 0 {
		b.logger.Debug("match has no recorded responses",
			"match", match.Statement.Text, "score", match.Score)
		return nil, nil
	}

	candidates := make([]*core.MatchResult, 0, len(responses))
	for _, response := range responses {
		candidates = append(candidates, &core.MatchResult{
			Statement: response,
			Score:     match.Score,
		})
	}

	response, err := b.Config.Selector(candidates)
	if err != nil {
		return nil, err
	}

	b.logger.Debug("selected response",
		"input", statement.Text,
		"match", match.Statement.Text,
		"response", response.Text,
		"confidence", match.Score)

	return &Result{Response: response, Confidence: match.Score}, nil
}

// Name identifies the adapter in logs.
func (b *BestMatch) Name() string {
	return "BestMatch"
}
