// Package screening provides the high-level orchestration for the
// candidate screening process: building profiles from raw text, scoring
// each candidate against a target role, and ranking the results.
package screening

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/embedding"
	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

// DefaultConcurrency bounds how many candidates are scored in parallel.
const DefaultConcurrency = 8

// Options configures a Screener.
type Options struct {
	Weights      *scoring.Weights      // nil uses DefaultWeights
	CustomSkills []string              // merged into the built-in vocabulary
	Annotator    extraction.Annotator  // optional, enables annotation-based extraction
	Embedder     embedding.Client      // nil disables semantic similarity (zero vectors)
	Concurrency  int                   // <= 0 uses DefaultConcurrency
}

// Screener ties the extraction, embedding, scoring, and ranking stages
// together.
type Screener struct {
	engine      *extraction.Engine
	embedder    embedding.Client
	scorer      *scoring.Scorer
	concurrency int
}

// NewScreener builds a Screener from the given options.
func NewScreener(opts Options) (*Screener, error) {
	weights := scoring.DefaultWeights()
	if opts.Weights != nil {
		weights = *opts.Weights
	}
	scorer, err := scoring.NewScorer(weights)
	if err != nil {
		return nil, fmt.Errorf("invalid scoring weights: %w", err)
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	vocab := skills.NewVocabulary(opts.CustomSkills...)
	return &Screener{
		engine:      extraction.NewEngine(vocab, opts.Annotator),
		embedder:    opts.Embedder,
		scorer:      scorer,
		concurrency: concurrency,
	}, nil
}

// Engine exposes the extraction engine for direct skill extraction.
func (s *Screener) Engine() *extraction.Engine {
	return s.engine
}

// BuildCandidateProfile turns raw resume text into a scored-ready
// profile: cleaned text, extracted skills, estimated experience, and an
// embedding of the full resume.
func (s *Screener) BuildCandidateProfile(ctx context.Context, name, resumeText string) (*types.CandidateProfile, error) {
	cleaned := ingestion.CleanText(resumeText)

	profile := &types.CandidateProfile{
		ID:              uuid.New(),
		Name:            name,
		Skills:          s.engine.Extract(cleaned),
		ExperienceYears: ingestion.EstimateExperienceYears(cleaned),
	}

	vector, err := s.embed(ctx, cleaned)
	if err != nil {
		return nil, fmt.Errorf("embedding resume for %q: %w", name, err)
	}
	profile.Embedding = vector

	return profile, nil
}

// BuildTargetProfile turns a job description into a target profile with
// required and preferred skills split out. requiredYears may be nil when
// the role has no explicit experience requirement.
func (s *Screener) BuildTargetProfile(ctx context.Context, title, description string, requiredYears *float64) (*types.TargetProfile, error) {
	cleaned := ingestion.CleanText(description)
	reqs := s.engine.SplitRequirements(cleaned)

	target := &types.TargetProfile{
		ID:                      uuid.New(),
		Title:                   title,
		RequiredSkills:          reqs.Required,
		PreferredSkills:         reqs.Preferred,
		RequiredExperienceYears: requiredYears,
	}

	vector, err := s.embed(ctx, cleaned)
	if err != nil {
		return nil, fmt.Errorf("embedding job description %q: %w", title, err)
	}
	target.Embedding = vector

	return target, nil
}

// Screen scores every candidate against the target concurrently and
// returns the ranked results, best first. Candidate order in the input
// does not affect the outcome beyond tie-breaking, which preserves input
// order.
func (s *Screener) Screen(ctx context.Context, candidates []*types.CandidateProfile, target *types.TargetProfile) ([]*types.ScoringResult, error) {
	if target == nil {
		return nil, fmt.Errorf("target profile is required")
	}

	results := make([]*types.ScoringResult, len(candidates))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, candidate := range candidates {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			result, err := s.scorer.Score(candidate, target)
			if err != nil {
				return fmt.Errorf("scoring candidate %q: %w", candidate.Name, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return ranking.Rank(results), nil
}

func (s *Screener) embed(ctx context.Context, text string) ([]float64, error) {
	if s.embedder == nil {
		return nil, nil
	}
	return s.embedder.Embed(ctx, text)
}
