package training

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/retort/storage"
	"github.com/poiesic/retort/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) storage.StatementRepository {
	t.Helper()
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func TestNewListTrainer(t *testing.T) {
	t.Run("requires a repository", func(t *testing.T) {
		_, err := NewListTrainer(nil)
		assert.ErrorIs(t, err, ErrRepositoryRequired)
	})

	t.Run("valid construction", func(t *testing.T) {
		trainer, err := NewListTrainer(newTestRepo(t), WithConversation("greetings"))
		require.NoError(t, err)
		assert.NotNil(t, trainer)
	})
}

func TestListTrainer_Train(t *testing.T) {
	ctx := context.Background()

	t.Run("pairs each statement with its predecessor", func(t *testing.T) {
		repo := newTestRepo(t)
		trainer, err := NewListTrainer(repo)
		require.NoError(t, err)

		require.NoError(t, trainer.Train(ctx, "hello", "hi there", "how are you"))

		responses, err := repo.GetResponsesTo(ctx, "hello")
		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.Equal(t, "hi there", responses[0].Text)

		responses, err = repo.GetResponsesTo(ctx, "hi there")
		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.Equal(t, "how are you", responses[0].Text)
	})

	t.Run("empty conversation rejected", func(t *testing.T) {
		trainer, err := NewListTrainer(newTestRepo(t))
		require.NoError(t, err)
		assert.ErrorIs(t, trainer.Train(ctx), ErrEmptyConversation)
	})

	t.Run("conversation tag applied", func(t *testing.T) {
		repo := newTestRepo(t)
		trainer, err := NewListTrainer(repo, WithConversation("greetings"))
		require.NoError(t, err)

		require.NoError(t, trainer.Train(ctx, "hello", "hi"))

		responses, err := repo.GetResponsesTo(ctx, "hello")
		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.Equal(t, "greetings", responses[0].Conversation)
	})
}

func TestCorpusTrainer(t *testing.T) {
	ctx := context.Background()

	t.Run("trains every conversation in the file", func(t *testing.T) {
		repo := newTestRepo(t)
		trainer, err := NewCorpusTrainer(repo)
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "corpus.json")
		corpus := `{"conversations": [
			["hello", "hi there"],
			["good morning", "morning to you"]
		]}`
		require.NoError(t, os.WriteFile(path, []byte(corpus), 0644))

		require.NoError(t, trainer.TrainFromFile(ctx, path))

		responses, err := repo.GetResponsesTo(ctx, "hello")
		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.Equal(t, "hi there", responses[0].Text)

		responses, err = repo.GetResponsesTo(ctx, "good morning")
		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.Equal(t, "morning to you", responses[0].Text)
	})

	t.Run("missing file", func(t *testing.T) {
		trainer, err := NewCorpusTrainer(newTestRepo(t))
		require.NoError(t, err)
		assert.Error(t, trainer.TrainFromFile(ctx, "/does/not/exist.json"))
	})

	t.Run("malformed file", func(t *testing.T) {
		trainer, err := NewCorpusTrainer(newTestRepo(t))
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))
		assert.Error(t, trainer.TrainFromFile(ctx, path))
	})
}
