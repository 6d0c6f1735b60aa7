// Package embedding provides text-to-vector clients with stable output
// dimensionality. The scoring engine treats the produced vectors as opaque
// fixed-length embeddings.
package embedding

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel is the embedding model used when none is configured.
const DefaultModel = "text-embedding-004"

// Client produces fixed-length embedding vectors for text. Implementations
// must return the same dimensionality across calls.
type Client interface {
	// Embed returns the embedding vector for a single text. Empty or
	// whitespace-only text yields a zero vector of the model dimension.
	Embed(ctx context.Context, text string) ([]float64, error)
	// EmbedBatch returns one vector per input text, in input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, error)
	// Dimension returns the length of vectors produced by this client.
	Dimension() int
	// Close releases any resources held by the client.
	Close() error
}

// GeminiEmbedder implements Client backed by the Gemini embedding API.
type GeminiEmbedder struct {
	client    *genai.Client
	model     string
	dimension int
}

// NewGeminiEmbedder creates an embedder for the given model. The model
// dimension is probed with a single embedding call at construction so
// empty-text inputs can be answered locally with a zero vector.
func NewGeminiEmbedder(ctx context.Context, apiKey, model string) (*GeminiEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	e := &GeminiEmbedder{client: client, model: model}

	probe, err := e.embed(ctx, "dimension probe")
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to probe embedding dimension: %w", err)
	}
	e.dimension = len(probe)

	return e, nil
}

// Embed returns the embedding vector for text.
func (e *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	if strings.TrimSpace(text) == "" {
		return make([]float64, e.dimension), nil
	}
	return e.embed(ctx, text)
}

// EmbedBatch embeds multiple texts in one API round trip. Empty texts are
// answered with zero vectors without being sent to the API.
func (e *GeminiEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	vectors := make([][]float64, len(texts))

	em := e.client.EmbeddingModel(e.model)
	batch := em.NewBatch()
	indexes := make([]int, 0, len(texts))
	for i, text := range texts {
		if strings.TrimSpace(text) == "" {
			vectors[i] = make([]float64, e.dimension)
			continue
		}
		batch.AddContent(genai.Text(text))
		indexes = append(indexes, i)
	}

	if len(indexes) == 0 {
		return vectors, nil
	}

	res, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("failed to embed batch: %w", err)
	}
	if len(res.Embeddings) != len(indexes) {
		return nil, fmt.Errorf("embedding count mismatch: got %d, want %d", len(res.Embeddings), len(indexes))
	}

	for j, emb := range res.Embeddings {
		vectors[indexes[j]] = toFloat64(emb.Values)
	}
	return vectors, nil
}

// Dimension returns the probed model dimension.
func (e *GeminiEmbedder) Dimension() int {
	return e.dimension
}

// Close releases the underlying API client.
func (e *GeminiEmbedder) Close() error {
	return e.client.Close()
}

func (e *GeminiEmbedder) embed(ctx context.Context, text string) ([]float64, error) {
	em := e.client.EmbeddingModel(e.model)
	res, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("failed to embed content: %w", err)
	}
	if res.Embedding == nil {
		return nil, fmt.Errorf("embedding response contained no vector")
	}
	return toFloat64(res.Embedding.Values), nil
}

func toFloat64(values []float32) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
