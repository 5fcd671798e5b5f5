package compare

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/retort/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stmt(text string) *core.Statement {
	return &core.Statement{Text: text}
}

func TestLevenshtein(t *testing.T) {
	ctx := context.Background()

	t.Run("identical text", func(t *testing.T) {
		score, err := Levenshtein(ctx, stmt("hello"), stmt("hello"))
		require.NoError(t, err)
		assert.Equal(t, 1.0, score)
	})

	t.Run("case insensitive", func(t *testing.T) {
		score, err := Levenshtein(ctx, stmt("Hello"), stmt("hello"))
		require.NoError(t, err)
		assert.Equal(t, 1.0, score)
	})

	t.Run("one substitution in five characters", func(t *testing.T) {
		score, err := Levenshtein(ctx, stmt("hellp"), stmt("hello"))
		require.NoError(t, err)
		assert.InDelta(t, 0.8, score, 0.0001)
	})

	t.Run("nothing in common", func(t *testing.T) {
		score, err := Levenshtein(ctx, stmt("abc"), stmt("xyz"))
		require.NoError(t, err)
		assert.Equal(t, 0.0, score)
	})

	t.Run("empty against non-empty", func(t *testing.T) {
		score, err := Levenshtein(ctx, stmt(""), stmt("hello"))
		require.NoError(t, err)
		assert.Equal(t, 0.0, score)
	})
}

func TestJaroWinkler(t *testing.T) {
	ctx := context.Background()

	t.Run("identical text", func(t *testing.T) {
		score, err := JaroWinkler(ctx, stmt("hello"), stmt("hello"))
		require.NoError(t, err)
		assert.Equal(t, 1.0, score)
	})

	t.Run("similar prefix scores high", func(t *testing.T) {
		score, err := JaroWinkler(ctx, stmt("hello there"), stmt("hello where"))
		require.NoError(t, err)
		assert.Greater(t, score, 0.8)
		assert.LessOrEqual(t, score, 1.0)
	})

	t.Run("dissimilar text scores low", func(t *testing.T) {
		score, err := JaroWinkler(ctx, stmt("abc"), stmt("xyz"))
		require.NoError(t, err)
		assert.Less(t, score, 0.5)
	})
}

func TestJaccard(t *testing.T) {
	ctx := context.Background()

	t.Run("identical token sets", func(t *testing.T) {
		score, err := Jaccard(ctx, stmt("green apples taste good"), stmt("good apples taste green"))
		require.NoError(t, err)
		assert.Equal(t, 1.0, score)
	})

	t.Run("stop words and punctuation ignored", func(t *testing.T) {
		score, err := Jaccard(ctx, stmt("The weather, it is nice!"), stmt("weather nice"))
		require.NoError(t, err)
		assert.Equal(t, 1.0, score)
	})

	t.Run("partial overlap", func(t *testing.T) {
		score, err := Jaccard(ctx, stmt("red green"), stmt("red blue"))
		require.NoError(t, err)
		assert.InDelta(t, 1.0/3.0, score, 0.0001)
	})

	t.Run("only stop words", func(t *testing.T) {
		score, err := Jaccard(ctx, stmt("it is the"), stmt("it is the"))
		require.NoError(t, err)
		assert.Equal(t, 0.0, score)
	})
}

// fakeEmbedder returns canned vectors and counts calls.
type fakeEmbedder struct {
	vectors map[string][]float32
	calls   int
	err     error
}

func (f *fakeEmbedder) EmbedText(_ context.Context, text string) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.vectors[text], nil
}

func TestEmbeddingComparator(t *testing.T) {
	ctx := context.Background()

	t.Run("requires an embedder", func(t *testing.T) {
		_, err := NewEmbeddingComparator(nil)
		assert.ErrorIs(t, err, ErrEmbedderRequired)
	})

	t.Run("identical vectors score 1", func(t *testing.T) {
		embedder := &fakeEmbedder{vectors: map[string][]float32{
			"hello": {1, 0},
			"hi":    {1, 0},
		}}
		comparator, err := NewEmbeddingComparator(embedder)
		require.NoError(t, err)

		score, err := comparator.Compare(ctx, stmt("hello"), stmt("hi"))
		require.NoError(t, err)
		assert.InDelta(t, 1.0, score, 0.0001)
	})

	t.Run("opposite vectors score 0", func(t *testing.T) {
		embedder := &fakeEmbedder{vectors: map[string][]float32{
			"hello": {1, 0},
			"bye":   {-1, 0},
		}}
		comparator, err := NewEmbeddingComparator(embedder)
		require.NoError(t, err)

		score, err := comparator.Compare(ctx, stmt("hello"), stmt("bye"))
		require.NoError(t, err)
		assert.InDelta(t, 0.0, score, 0.0001)
	})

	t.Run("orthogonal vectors score 0.5", func(t *testing.T) {
		embedder := &fakeEmbedder{vectors: map[string][]float32{
			"hello": {1, 0},
			"tree":  {0, 1},
		}}
		comparator, err := NewEmbeddingComparator(embedder)
		require.NoError(t, err)

		score, err := comparator.Compare(ctx, stmt("hello"), stmt("tree"))
		require.NoError(t, err)
		assert.InDelta(t, 0.5, score, 0.0001)
	})

	t.Run("embeddings are cached per text", func(t *testing.T) {
		embedder := &fakeEmbedder{vectors: map[string][]float32{
			"hello": {1, 0},
			"hi":    {0, 1},
		}}
		comparator, err := NewEmbeddingComparator(embedder)
		require.NoError(t, err)

		_, err = comparator.Compare(ctx, stmt("hello"), stmt("hi"))
		require.NoError(t, err)
		_, err = comparator.Compare(ctx, stmt("hello"), stmt("hi"))
		require.NoError(t, err)
		assert.Equal(t, 2, embedder.calls)
	})

	t.Run("embedder failures propagate", func(t *testing.T) {
		wantErr := errors.New("service unavailable")
		embedder := &fakeEmbedder{err: wantErr}
		comparator, err := NewEmbeddingComparator(embedder)
		require.NoError(t, err)

		_, err = comparator.Compare(ctx, stmt("hello"), stmt("hi"))
		assert.ErrorIs(t, err, wantErr)
	})
}

func TestNormalizeVector(t *testing.T) {
	normalized := NormalizeVector([]float32{3, 4})
	assert.InDelta(t, 0.6, float64(normalized[0]), 0.0001)
	assert.InDelta(t, 0.8, float64(normalized[1]), 0.0001)

	zero := NormalizeVector([]float32{0, 0})
	assert.Equal(t, []float32{0, 0}, zero)
}
