package badger

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/retort/core"
	"github.com/poiesic/retort/storage"
)

// StatementRepository implements storage.StatementRepository using BadgerDB.
type StatementRepository struct {
	backend *Backend
	logger  *slog.Logger
}

var _ storage.StatementRepository = (*StatementRepository)(nil)

// NewStatementRepository creates a statement repository on the given backend.
func NewStatementRepository(backend *Backend) (*StatementRepository, error) {
	if backend == nil {
		return nil, errors.New("backend required")
	}
	return &StatementRepository{
		backend: backend,
		logger:  slog.Default(),
	}, nil
}

// Close releases repository resources. The backend is closed separately.
func (r *StatementRepository) Close() error {
	return nil
}

// AddStatements adds one or more statements to storage.
// IDs are derived from content, so re-adding an identical statement
// overwrites the existing record rather than duplicating it.
func (r *StatementRepository) AddStatements(ctx context.Context, statements ...*core.Statement) ([]*core.Statement, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	now := time.Now().UTC()
	for _, statement := range statements {
		if err := core.ValidateStatement(statement); err != nil {
			return nil, err
		}
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, statement := range statements {
			if statement.CreatedAt.IsZero() {
				statement.CreatedAt = now
			}
			if statement.Id == 0 {
				statement.Id = statement.ContentID()
			}

			if err := tx.Set(makeStatementKey(statement.Id), storage.MarshalStatement(statement)); err != nil {
				return err
			}

			if statement.InResponseTo != "" {
				promptID := core.IDFromContent(statement.InResponseTo)
				if err := tx.Set(makeResponseKey(promptID, statement.Id), nil); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}

	return statements, nil
}

// GetStatement retrieves a single statement by ID.
func (r *StatementRepository) GetStatement(ctx context.Context, id core.ID) (*core.Statement, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var statement *core.Statement
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeStatementKey(id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: id %d", storage.ErrNotFound, id)
			}
			return err
		}
		return item.Value(func(val []byte) error {
			statement, err = storage.UnmarshalStatement(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}

	return statement, nil
}

// GetResponsesTo retrieves the statements recorded as responses to the
// given text.
func (r *StatementRepository) GetResponsesTo(ctx context.Context, text string) ([]*core.Statement, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	promptID := core.IDFromContent(text)
	var responses []*core.Statement

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialResponseKey(promptID)
		it := tx.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			statementID := statementIDFromResponseKey(it.Item().Key())

			item, err := tx.Get(makeStatementKey(statementID))
			if err != nil {
				if errors.Is(err, badger.ErrKeyNotFound) {
					// Stale index entry; the statement was removed.
					r.logger.Warn("response index points at missing statement", "id", statementID)
					continue
				}
				return err
			}

			if err := item.Value(func(val []byte) error {
				statement, err := storage.UnmarshalStatement(val)
				if err != nil {
					return err
				}
				responses = append(responses, statement)
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	return responses, nil
}

// RemoveStatement removes a statement and its response index entry.
func (r *StatementRepository) RemoveStatement(ctx context.Context, id core.ID) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	statement, err := r.GetStatement(ctx, id)
	if err != nil {
		return err
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete(makeStatementKey(id)); err != nil {
			return err
		}
		if statement.InResponseTo != "" {
			promptID := core.IDFromContent(statement.InResponseTo)
			if err := tx.Delete(makeResponseKey(promptID, id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// Count returns the number of statements in the corpus.
func (r *StatementRepository) Count(ctx context.Context) (int, error) {
	if r.backend.IsClosed() {
		return 0, storage.ErrStorageClosed
	}

	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(statementPrefix + ":")
		opts.PrefetchValues = false
		it := tx.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// Pages iterates the corpus as a lazy sequence of pages. Each page is
// read in its own transaction and iteration resumes from the last key
// seen, so memory use is bounded by pageSize regardless of corpus size.
func (r *StatementRepository) Pages(ctx context.Context, pageSize int) iter.Seq2[[]*core.Statement, error] {
	return func(yield func([]*core.Statement, error) bool) {
		if pageSize < 1 {
			yield(nil, fmt.Errorf("%w: page size %d", storage.ErrInvalidQuery, pageSize))
			return
		}

		prefix := []byte(statementPrefix + ":")
		var resumeKey []byte

		for {
			if r.backend.IsClosed() {
				yield(nil, storage.ErrStorageClosed)
				return
			}
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}

			page := make([]*core.Statement, 0, pageSize)
			err := r.backend.WithTx(func(tx *badger.Txn) error {
				opts := badger.DefaultIteratorOptions
				opts.Prefix = prefix
				it := tx.NewIterator(opts)
				defer it.Close()

				if resumeKey == nil {
					it.Rewind()
				} else {
					it.Seek(resumeKey)
				}

				for ; it.Valid() && len(page) < pageSize; it.Next() {
					item := it.Item()
					if err := item.Value(func(val []byte) error {
						statement, err := storage.UnmarshalStatement(val)
						if err != nil {
							return err
						}
						page = append(page, statement)
						return nil
					}); err != nil {
						return err
					}
					// Resume strictly after this key on the next page.
					resumeKey = append(item.KeyCopy(nil), 0)
				}
				return nil
			}, false)
			if err != nil {
				yield(nil, err)
				return
			}

			if len(page) == 0 {
				return
			}
			if !yield(page, nil) {
				return
			}
			if len(page) < pageSize {
				return
			}
		}
	}
}
