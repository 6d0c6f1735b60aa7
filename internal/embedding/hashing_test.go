package embedding

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashingEmbedder_Deterministic(t *testing.T) {
	e := NewHashingEmbedder(64)

	a, err := e.Embed(context.Background(), "python developer with django experience")
	require.NoError(t, err)
	b, err := e.Embed(context.Background(), "python developer with django experience")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestHashingEmbedder_EmptyTextYieldsZeroVector(t *testing.T) {
	e := NewHashingEmbedder(32)

	v, err := e.Embed(context.Background(), "")
	require.NoError(t, err)

	for _, x := range v {
		assert.Zero(t, x)
	}
}

func TestHashingEmbedder_UnitNorm(t *testing.T) {
	e := NewHashingEmbedder(128)

	v, err := e.Embed(context.Background(), "go rust kubernetes docker terraform")
	require.NoError(t, err)

	norm := 0.0
	for _, x := range v {
		norm += x * x
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9)
}

func TestHashingEmbedder_SimilarTextsCloserThanDifferent(t *testing.T) {
	e := NewHashingEmbedder(256)
	ctx := context.Background()

	a, err := e.Embed(ctx, "senior python backend engineer")
	require.NoError(t, err)
	b, err := e.Embed(ctx, "python backend developer")
	require.NoError(t, err)
	c, err := e.Embed(ctx, "oil painting and watercolor landscapes")
	require.NoError(t, err)

	assert.Greater(t, dot(a, b), dot(a, c))
}

func TestHashingEmbedder_EmbedBatch(t *testing.T) {
	e := NewHashingEmbedder(32)

	vectors, err := e.EmbedBatch(context.Background(), []string{"python", "", "java"})
	require.NoError(t, err)
	require.Len(t, vectors, 3)

	for _, v := range vectors {
		assert.Len(t, v, 32)
	}
}

func TestHashingEmbedder_DefaultDimension(t *testing.T) {
	e := NewHashingEmbedder(0)
	assert.Equal(t, 256, e.Dimension())
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
