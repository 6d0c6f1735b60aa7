package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVocabulary_ContainsDefaults(t *testing.T) {
	vocab := NewVocabulary()

	for _, skill := range []string{"python", "javascript", "react", "django", "postgresql", "aws", "docker"} {
		assert.True(t, vocab.Contains(skill), "default vocabulary should contain %q", skill)
	}
	assert.False(t, vocab.Contains("underwater basket weaving"))
}

func TestNewVocabulary_CustomEntries(t *testing.T) {
	vocab := NewVocabulary("Erlang", "  ClickHouse ", "")

	assert.True(t, vocab.Contains("erlang"))
	assert.True(t, vocab.Contains("clickhouse"))
	assert.Equal(t, NewVocabulary().Len()+2, vocab.Len())
}

func TestVocabulary_ContainsNormalizesLookup(t *testing.T) {
	vocab := NewVocabulary()

	assert.True(t, vocab.Contains("Python"))
	assert.True(t, vocab.Contains("JS"), "alias should resolve before lookup")
	assert.True(t, vocab.Contains("Node.js"))
}

func TestVocabulary_EntriesSorted(t *testing.T) {
	vocab := NewVocabulary()
	entries := vocab.Entries()

	require.NotEmpty(t, entries)
	for i := 1; i < len(entries); i++ {
		assert.LessOrEqual(t, entries[i-1], entries[i])
	}
	for _, e := range entries {
		assert.NotEmpty(t, e)
		assert.Equal(t, e, Normalize(e))
	}
}
