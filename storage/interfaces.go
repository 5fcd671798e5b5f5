package storage

import (
	"context"
	"iter"

	"github.com/poiesic/retort/core"
)

// StatementRepository provides operations for managing the statement
// corpus. Implementations must be thread-safe and support concurrent
// access.
type StatementRepository interface {
	// AddStatements adds one or more statements to storage.
	// IDs are derived from content, so re-adding an identical statement
	// overwrites the existing record rather than duplicating it.
	// Sets CreatedAt if not already set.
	// Returns the statements with IDs and timestamps populated.
	AddStatements(ctx context.Context, statements ...*core.Statement) ([]*core.Statement, error)

	// GetStatement retrieves a single statement by ID.
	// Returns ErrNotFound if the statement doesn't exist.
	GetStatement(ctx context.Context, id core.ID) (*core.Statement, error)

	// GetResponsesTo retrieves the statements recorded as responses to
	// the given text, in insertion-index order. Returns an empty slice
	// when nothing is known to answer the text.
	GetResponsesTo(ctx context.Context, text string) ([]*core.Statement, error)

	// RemoveStatement removes a statement and its response index entry.
	// Returns ErrNotFound if the statement doesn't exist.
	RemoveStatement(ctx context.Context, id core.ID) error

	// Count returns the number of statements in the corpus.
	Count(ctx context.Context) (int, error)

	// Pages iterates the corpus as a lazy sequence of pages of at most
	// pageSize statements each. Iteration is resumable and
	// one-directional; order is stable for an unchanged corpus.
	Pages(ctx context.Context, pageSize int) iter.Seq2[[]*core.Statement, error]

	// Close closes the repository and releases resources.
	Close() error
}
