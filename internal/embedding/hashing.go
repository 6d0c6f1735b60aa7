package embedding

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
)

// HashingEmbedder is a deterministic, offline Client that maps tokens into
// a fixed-length vector by feature hashing. It is no substitute for a
// learned embedding model, but it keeps the scoring pipeline fully
// functional without API access and gives tests a stable vector source.
type HashingEmbedder struct {
	dimension int
}

// NewHashingEmbedder creates a hashing embedder with the given dimension.
func NewHashingEmbedder(dimension int) *HashingEmbedder {
	if dimension <= 0 {
		dimension = 256
	}
	return &HashingEmbedder{dimension: dimension}
}

// Embed maps text to a normalized token-frequency vector. Empty text
// yields a zero vector.
func (e *HashingEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	vector := make([]float64, e.dimension)

	for _, token := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		_, _ = h.Write([]byte(token))
		vector[int(h.Sum32())%e.dimension]++
	}

	norm := 0.0
	for _, v := range vector {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vector {
			vector[i] /= norm
		}
	}
	return vector, nil
}

// EmbedBatch embeds each text independently.
func (e *HashingEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	vectors := make([][]float64, len(texts))
	for i, text := range texts {
		v, err := e.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		vectors[i] = v
	}
	return vectors, nil
}

// Dimension returns the configured vector length.
func (e *HashingEmbedder) Dimension() int {
	return e.dimension
}

// Close is a no-op.
func (e *HashingEmbedder) Close() error {
	return nil
}
