package screening

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/embedding"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/types"
)

const sampleResume = `Jane Doe
jane@example.com

Senior engineer with 6 years of experience.

Skills: Python, Django, PostgreSQL, Docker`

const sampleJob = `Backend Engineer

Requirements:
- Python
- Django
- AWS

Nice to have:
- Kubernetes`

func newTestScreener(t *testing.T) *Screener {
	t.Helper()
	s, err := NewScreener(Options{Embedder: embedding.NewHashingEmbedder(64)})
	require.NoError(t, err)
	return s
}

func TestBuildCandidateProfile(t *testing.T) {
	s := newTestScreener(t)

	profile, err := s.BuildCandidateProfile(context.Background(), "Jane Doe", sampleResume)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", profile.Name)
	assert.NotEqual(t, "", profile.ID.String())
	assert.Equal(t, []string{"django", "docker", "postgresql", "python"}, profile.Skills)
	assert.Equal(t, 6.0, profile.ExperienceYears)
	assert.Len(t, profile.Embedding, 64)
}

func TestBuildTargetProfile_SplitsRequirements(t *testing.T) {
	s := newTestScreener(t)

	target, err := s.BuildTargetProfile(context.Background(), "Backend Engineer", sampleJob, nil)
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer", target.Title)
	assert.Equal(t, []string{"aws", "django", "python"}, target.RequiredSkills)
	assert.Equal(t, []string{"kubernetes"}, target.PreferredSkills)
	assert.Nil(t, target.RequiredExperienceYears)
	assert.Len(t, target.Embedding, 64)
}

func TestScreen_RanksCandidates(t *testing.T) {
	s := newTestScreener(t)
	ctx := context.Background()

	strong, err := s.BuildCandidateProfile(ctx, "Strong",
		"8 years of experience. Skills: Python, Django, AWS, Kubernetes")
	require.NoError(t, err)
	weak, err := s.BuildCandidateProfile(ctx, "Weak",
		"1 year role 2024 - 2025. Skills: Photoshop")
	require.NoError(t, err)

	target, err := s.BuildTargetProfile(ctx, "Backend Engineer", sampleJob, nil)
	require.NoError(t, err)

	results, err := s.Screen(ctx, []*types.CandidateProfile{weak, strong}, target)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "Strong", results[0].CandidateName)
	assert.Equal(t, 1, results[0].Rank)
	assert.Equal(t, "Weak", results[1].CandidateName)
	assert.Equal(t, 2, results[1].Rank)
	assert.Greater(t, results[0].OverallScore, results[1].OverallScore)
}

func TestScreen_EmptyCandidateList(t *testing.T) {
	s := newTestScreener(t)

	target, err := s.BuildTargetProfile(context.Background(), "Any", sampleJob, nil)
	require.NoError(t, err)

	results, err := s.Screen(context.Background(), nil, target)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestScreen_NilTarget(t *testing.T) {
	s := newTestScreener(t)

	_, err := s.Screen(context.Background(), nil, nil)
	assert.Error(t, err)
}

func TestScreen_ManyCandidatesDeterministic(t *testing.T) {
	s := newTestScreener(t)
	ctx := context.Background()

	var candidates []*types.CandidateProfile
	resumes := []string{
		"Skills: Python, Django, AWS",
		"Skills: Python, Django",
		"Skills: Python",
		"Skills: Excel",
	}
	for i, text := range resumes {
		p, err := s.BuildCandidateProfile(ctx, string(rune('A'+i)), text)
		require.NoError(t, err)
		candidates = append(candidates, p)
	}

	target, err := s.BuildTargetProfile(ctx, "Backend Engineer", sampleJob, nil)
	require.NoError(t, err)

	first, err := s.Screen(ctx, candidates, target)
	require.NoError(t, err)
	second, err := s.Screen(ctx, candidates, target)
	require.NoError(t, err)

	require.Len(t, first, len(candidates))
	for i := range first {
		assert.Equal(t, first[i].CandidateName, second[i].CandidateName)
		assert.Equal(t, i+1, first[i].Rank)
	}
}

func TestNewScreener_NoEmbedder(t *testing.T) {
	s, err := NewScreener(Options{})
	require.NoError(t, err)

	profile, err := s.BuildCandidateProfile(context.Background(), "X", "Skills: Python")
	require.NoError(t, err)
	assert.Nil(t, profile.Embedding)
}

func TestNewScreener_InvalidWeights(t *testing.T) {
	_, err := NewScreener(Options{Weights: &scoring.Weights{}})
	assert.Error(t, err)
}

func TestNewScreener_CustomSkills(t *testing.T) {
	s, err := NewScreener(Options{CustomSkills: []string{"Quantum Computing"}})
	require.NoError(t, err)

	found := s.Engine().Extract("Research in quantum computing applications.")
	assert.Contains(t, found, "quantum computing")
}
