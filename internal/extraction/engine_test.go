package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/skills"
)

func newTestEngine(annotator Annotator) *Engine {
	return NewEngine(skills.NewVocabulary(), annotator)
}

func TestExtract_SkillsSection(t *testing.T) {
	engine := newTestEngine(nil)

	got := engine.Extract("Skills: Python, JavaScript, React, Django, PostgreSQL, AWS, Docker")

	for _, want := range []string{"python", "javascript", "react", "django", "postgresql", "aws", "docker"} {
		assert.Contains(t, got, want)
	}
}

func TestExtract_SortedAndDeduplicated(t *testing.T) {
	engine := newTestEngine(nil)

	// "python" appears via keyword scan, section scan, and context scan.
	text := "Skills: Python. Experienced in Python. Python developer."
	got := engine.Extract(text)

	count := 0
	for _, s := range got {
		if s == "python" {
			count++
		}
	}
	assert.Equal(t, 1, count)

	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1], got[i], "result must be alphabetically sorted")
	}
}

func TestExtract_Deterministic(t *testing.T) {
	engine := newTestEngine(nil)
	text := "Proficient in Go, Python and Kubernetes. Skills: Docker; Terraform | Linux"

	first := engine.Extract(text)
	second := engine.Extract(text)

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestExtract_WordBoundaries(t *testing.T) {
	engine := NewEngine(skills.NewVocabulary(), nil)

	got := engine.Extract("Built frontends in JavaScript.")

	assert.Contains(t, got, "javascript")
	assert.NotContains(t, got, "java", "java must not match inside javascript")
}

func TestExtract_CaseInsensitive(t *testing.T) {
	engine := newTestEngine(nil)

	got := engine.Extract("PYTHON and dOcKeR experience")

	assert.Contains(t, got, "python")
	assert.Contains(t, got, "docker")
}

func TestExtract_EmptyInput(t *testing.T) {
	engine := newTestEngine(nil)

	assert.Empty(t, engine.Extract(""))
	assert.Empty(t, engine.Extract("   \n\t  "))
}

func TestExtract_ContextPatterns(t *testing.T) {
	engine := newTestEngine(nil)

	got := engine.Extract("Hands-on experience with Kubernetes and strong background in Python")

	assert.Contains(t, got, "kubernetes")
	assert.Contains(t, got, "python")
}

// fakeAnnotator is a stub annotation capability for tests.
type fakeAnnotator struct {
	entities    []string
	nounPhrases []string
}

func (f *fakeAnnotator) Entities(string) []string    { return f.entities }
func (f *fakeAnnotator) NounPhrases(string) []string { return f.nounPhrases }

func TestExtract_AnnotatorContributes(t *testing.T) {
	annotator := &fakeAnnotator{
		entities:    []string{"TensorFlow"},
		nounPhrases: []string{"machine learning"},
	}
	engine := newTestEngine(annotator)

	got := engine.Extract("worked on various projects")

	assert.Contains(t, got, "tensorflow")
	assert.Contains(t, got, "machine learning")
}

func TestExtract_NoAnnotatorDegradesGracefully(t *testing.T) {
	engine := newTestEngine(nil)

	got := engine.Extract("Skills: Python")

	assert.Contains(t, got, "python")
}

func TestExtract_UnknownAnnotationsIgnored(t *testing.T) {
	annotator := &fakeAnnotator{entities: []string{"Acme Corp", "San Francisco"}}
	engine := newTestEngine(annotator)

	got := engine.Extract("plain text")

	assert.Empty(t, got)
}
