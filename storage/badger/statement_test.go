package badger

import (
	"context"
	"testing"

	"github.com/poiesic/retort/core"
	"github.com/poiesic/retort/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) storage.StatementRepository {
	t.Helper()
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func TestAddAndGetStatement(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	added, err := repo.AddStatements(ctx, &core.Statement{
		Text:         "hello there",
		InResponseTo: "hi",
	})
	require.NoError(t, err)
	require.Len(t, added, 1)
	assert.NotZero(t, added[0].Id)
	assert.False(t, added[0].CreatedAt.IsZero())

	got, err := repo.GetStatement(ctx, added[0].Id)
	require.NoError(t, err)
	assert.Equal(t, "hello there", got.Text)
	assert.Equal(t, "hi", got.InResponseTo)
}

func TestAddStatements_Validation(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.AddStatements(context.Background(), &core.Statement{})
	assert.ErrorIs(t, err, core.ErrInvalidStatement)
}

func TestAddStatements_ContentDeduplication(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddStatements(ctx, &core.Statement{Text: "hello", InResponseTo: "hi"})
	require.NoError(t, err)
	_, err = repo.AddStatements(ctx, &core.Statement{Text: "hello", InResponseTo: "hi"})
	require.NoError(t, err)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGetStatement_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetStatement(context.Background(), core.ID(12345))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetResponsesTo(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddStatements(ctx,
		&core.Statement{Text: "hi there", InResponseTo: "hello"},
		&core.Statement{Text: "hey", InResponseTo: "hello"},
		&core.Statement{Text: "not bad", InResponseTo: "how are you"},
		&core.Statement{Text: "hello"},
	)
	require.NoError(t, err)

	t.Run("returns all responses to a prompt", func(t *testing.T) {
		responses, err := repo.GetResponsesTo(ctx, "hello")
		require.NoError(t, err)
		require.Len(t, responses, 2)

		texts := []string{responses[0].Text, responses[1].Text}
		assert.ElementsMatch(t, []string{"hi there", "hey"}, texts)
	})

	t.Run("unknown prompt yields empty slice", func(t *testing.T) {
		responses, err := repo.GetResponsesTo(ctx, "goodbye")
		require.NoError(t, err)
		assert.Empty(t, responses)
	})
}

func TestRemoveStatement(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	added, err := repo.AddStatements(ctx, &core.Statement{Text: "hi there", InResponseTo: "hello"})
	require.NoError(t, err)

	require.NoError(t, repo.RemoveStatement(ctx, added[0].Id))

	_, err = repo.GetStatement(ctx, added[0].Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	responses, err := repo.GetResponsesTo(ctx, "hello")
	require.NoError(t, err)
	assert.Empty(t, responses)

	t.Run("removing again reports not found", func(t *testing.T) {
		err := repo.RemoveStatement(ctx, added[0].Id)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestPages(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	texts := []string{"one", "two", "three", "four", "five"}
	for _, text := range texts {
		_, err := repo.AddStatements(ctx, &core.Statement{Text: text})
		require.NoError(t, err)
	}

	collect := func(pageSize int) ([][]*core.Statement, []string) {
		var pages [][]*core.Statement
		var seen []string
		for page, err := range repo.Pages(ctx, pageSize) {
			require.NoError(t, err)
			pages = append(pages, page)
			for _, statement := range page {
				seen = append(seen, statement.Text)
			}
		}
		return pages, seen
	}

	t.Run("pages are bounded by page size", func(t *testing.T) {
		pages, seen := collect(2)
		assert.Len(t, pages, 3)
		for _, page := range pages[:2] {
			assert.Len(t, page, 2)
		}
		assert.Len(t, pages[2], 1)
		assert.ElementsMatch(t, texts, seen)
	})

	t.Run("every statement visited once regardless of page size", func(t *testing.T) {
		_, small := collect(1)
		_, large := collect(1000)
		assert.Equal(t, small, large)
		assert.ElementsMatch(t, texts, small)
	})

	t.Run("consumer can stop early", func(t *testing.T) {
		pagesSeen := 0
		for _, err := range repo.Pages(ctx, 1) {
			require.NoError(t, err)
			pagesSeen++
			if pagesSeen == 2 {
				break
			}
		}
		assert.Equal(t, 2, pagesSeen)
	})

	t.Run("cancelled context surfaces the error", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		var lastErr error
		for _, err := range repo.Pages(cancelled, 1) {
			lastErr = err
		}
		assert.ErrorIs(t, lastErr, context.Canceled)
	})

	t.Run("invalid page size", func(t *testing.T) {
		var lastErr error
		for _, err := range repo.Pages(ctx, 0) {
			lastErr = err
		}
		assert.ErrorIs(t, lastErr, storage.ErrInvalidQuery)
	})
}

func TestPages_EmptyCorpus(t *testing.T) {
	repo := newTestRepo(t)

	pages := 0
	for _, err := range repo.Pages(context.Background(), 10) {
		require.NoError(t, err)
		pages++
	}
	assert.Equal(t, 0, pages)
}
