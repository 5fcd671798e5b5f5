package training

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/poiesic/retort/core"
	"github.com/poiesic/retort/storage"
)

var (
	// ErrRepositoryRequired is returned when a trainer is constructed
	// without a statement repository.
	ErrRepositoryRequired = errors.New("statement repository required")

	// ErrEmptyConversation is returned when a conversation holds no statements.
	ErrEmptyConversation = errors.New("conversation must contain at least one statement")
)

// ListTrainer teaches the corpus from ordered conversations: each
// statement is recorded as a response to the one before it.
type ListTrainer struct {
	repository   storage.StatementRepository
	conversation string
	logger       *slog.Logger
}

// Option configures a trainer.
type Option func(*ListTrainer) error

// WithConversation tags trained statements with a conversation name.
// Default is "training".
func WithConversation(name string) Option {
	return func(t *ListTrainer) error {
		t.conversation = name
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(t *ListTrainer) error {
		if logger == nil {
			logger = slog.Default()
		}
		t.logger = logger
		return nil
	}
}

// NewListTrainer creates a trainer writing to the given repository.
func NewListTrainer(repository storage.StatementRepository, opts ...Option) (*ListTrainer, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}

	t := &ListTrainer{
		repository:   repository,
		conversation: "training",
		logger:       slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Train records a conversation. Statement i becomes a known response to
// statement i-1; the first statement responds to nothing.
func (t *ListTrainer) Train(ctx context.Context, conversation ...string) error {
	if len(conversation) == 0 {
		return ErrEmptyConversation
	}

	statements := make([]*core.Statement, 0, len(conversation))
	previous := ""
	for _, text := range conversation {
		statements = append(statements, &core.Statement{
			Text:         text,
			InResponseTo: previous,
			Conversation: t.conversation,
		})
		previous = text
	}

	if _, err := t.repository.AddStatements(ctx, statements...); err != nil {
		return err
	}

	t.logger.Debug("trained conversation", "statements", len(statements))
	return nil
}

// corpusFile is the on-disk corpus format: a list of conversations.
type corpusFile struct {
	Conversations [][]string `json:"conversations"`
}

// CorpusTrainer loads conversations from JSON corpus files.
type CorpusTrainer struct {
	trainer *ListTrainer
}

// NewCorpusTrainer creates a corpus trainer writing to the given repository.
func NewCorpusTrainer(repository storage.StatementRepository, opts ...Option) (*CorpusTrainer, error) {
	trainer, err := NewListTrainer(repository, opts...)
	if err != nil {
		return nil, err
	}
	return &CorpusTrainer{trainer: trainer}, nil
}

// TrainFromFile trains every conversation in a JSON corpus file.
func (t *CorpusTrainer) TrainFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading corpus %s: %w", path, err)
	}

	var corpus corpusFile
	if err := json.Unmarshal(data, &corpus); err != nil {
		return fmt.Errorf("parsing corpus %s: %w", path, err)
	}

	for _, conversation := range corpus.Conversations {
		if err := t.trainer.Train(ctx, conversation...); err != nil {
			return err
		}
	}

	t.trainer.logger.Info("trained corpus file",
		"path", path, "conversations", len(corpus.Conversations))
	return nil
}
