package compare

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sync"

	"github.com/poiesic/retort/core"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

// ErrEmbedderRequired is returned when an embedding comparator is
// constructed without an embedder.
var ErrEmbedderRequired = errors.New("embedder required")

// Embedder generates vector embeddings from text.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

// EmbeddingComparator scores statements by the cosine similarity of
// their text embeddings. Embeddings are cached per text, so repeated
// comparisons against the same corpus statement hit the embedding
// service only once per search lifetime.
type EmbeddingComparator struct {
	embedder Embedder
	logger   *slog.Logger

	mu    sync.RWMutex
	cache map[string][]float32
}

// EmbeddingOption configures an EmbeddingComparator.
type EmbeddingOption func(*EmbeddingComparator) error

// WithEmbeddingLogger sets a custom logger.
// Default is slog.Default().
func WithEmbeddingLogger(logger *slog.Logger) EmbeddingOption {
	return func(c *EmbeddingComparator) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// NewEmbeddingComparator creates a comparator backed by the given embedder.
func NewEmbeddingComparator(embedder Embedder, opts ...EmbeddingOption) (*EmbeddingComparator, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	c := &EmbeddingComparator{
		embedder: embedder,
		logger:   slog.Default(),
		cache:    make(map[string][]float32),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Compare implements Func. Failures from the embedding service propagate
// to the caller unmodified.
func (c *EmbeddingComparator) Compare(ctx context.Context, a, b *core.Statement) (float64, error) {
	va, err := c.embed(ctx, a.Text)
	if err != nil {
		return 0, err
	}
	vb, err := c.embed(ctx, b.Text)
	if err != nil {
		return 0, err
	}

	// Normalized vectors make cosine similarity a plain dot product.
	similarity := float64(dotProduct(va, vb))

	// Cosine lands in [-1, 1]; fold it into the score range.
	score := (similarity + 1) / 2
	return math.Min(1, math.Max(0, score)), nil
}

func (c *EmbeddingComparator) embed(ctx context.Context, text string) ([]float32, error) {
	c.mu.RLock()
	vector, ok := c.cache[text]
	c.mu.RUnlock()
	if ok {
		return vector, nil
	}

	c.logger.Debug("generating embedding", "length", len(text))
	vector, err := c.embedder.EmbedText(ctx, text)
	if err != nil {
		c.logger.Error("failed to generate embedding", "err", err)
		return nil, err
	}
	vector = NormalizeVector(vector)

	c.mu.Lock()
	c.cache[text] = vector
	c.mu.Unlock()
	return vector, nil
}

// openAIEmbedder adapts a langchaingo embedder to the Embedder interface.
type openAIEmbedder struct {
	embedder embeddings.Embedder
}

// NewOpenAIEmbedder creates an Embedder using an OpenAI-compatible
// embedding API.
//
// Use "none" as the token for local services that don't require
// authentication.
func NewOpenAIEmbedder(host, model string) (Embedder, error) {
	client, err := openai.New(
		openai.WithBaseURL(host),
		openai.WithToken("none"),
		openai.WithEmbeddingModel(model),
	)
	if err != nil {
		return nil, err
	}

	embedder, err := embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, err
	}

	return &openAIEmbedder{embedder: embedder}, nil
}

// EmbedText generates a vector embedding for a single text string.
func (e *openAIEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	vectors, err := e.embedder.EmbedDocuments(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		return []float32{}, nil
	}
	return vectors[0], nil
}

// NormalizeVector scales a vector to unit length. Zero vectors are
// returned unchanged.
func NormalizeVector(vector []float32) []float32 {
	var sum float64
	for _, v := range vector {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return vector
	}

	norm := float32(math.Sqrt(sum))
	normalized := make([]float32, len(vector))
	for i, v := range vector {
		normalized[i] = v / norm
	}
	return normalized
}

// dotProduct calculates the dot product of two vectors.
func dotProduct(a, b []float32) float32 {
	var sum float32
	minLen := min(len(a), len(b))
	for i := 0; i < minLen; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
