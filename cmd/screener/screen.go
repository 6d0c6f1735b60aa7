package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/embedding"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/screening"
	"github.com/jonathan/resume-screener/internal/types"
	"github.com/spf13/cobra"
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Screen resume files against a job posting",
	Long: `Score and rank one or more resume files against a job posting.

The job posting comes from a text file or URL. Without a Gemini API key the
semantic similarity signal falls back to a deterministic local embedding.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runScreen,
}

var (
	screenConfigPath    string
	screenJob           string
	screenJobURL        string
	screenTitle         string
	screenRequiredYears float64
	screenResumes       []string
	screenAPIKey        string
	screenThreshold     float64
	screenTopK          int
	screenCustomSkills  []string
	screenVerbose       bool
)

func init() {
	screenCmd.Flags().StringVar(&screenConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	screenCmd.Flags().StringVarP(&screenJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	screenCmd.Flags().StringVar(&screenJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	screenCmd.Flags().StringVar(&screenTitle, "title", "", "Job title (optional, shown in output)")
	screenCmd.Flags().Float64Var(&screenRequiredYears, "required-years", 0, "Years of experience the role requires (0 means no requirement)")
	screenCmd.Flags().StringArrayVarP(&screenResumes, "resume", "r", nil, "Path to resume text file (repeatable, required)")
	screenCmd.Flags().Float64Var(&screenThreshold, "threshold", 0, "Minimum overall score to include a candidate (0.0-1.0)")
	screenCmd.Flags().IntVar(&screenTopK, "top-k", 0, "Only show the k best candidates (0 shows all)")
	screenCmd.Flags().StringSliceVar(&screenCustomSkills, "skill", nil, "Additional skill to recognize (repeatable)")
	screenCmd.Flags().BoolVarP(&screenVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	screenCmd.Flags().StringVar(&screenAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(screenCmd)
}

func runScreen(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if screenConfigPath != "" {
		loadedCfg, err := config.LoadConfig(screenConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if screenVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", screenConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = screenAPIKey
	}
	if cmd.Flags().Changed("threshold") {
		cfg.SimilarityThreshold = screenThreshold
	}
	if len(screenCustomSkills) > 0 {
		cfg.CustomSkills = append(cfg.CustomSkills, screenCustomSkills...)
	}
	cfg = cfg.MergeWithDefaults(config.DefaultConfig())

	// Step 3: Validate required inputs
	if screenJob == "" && screenJobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided")
	}
	if screenJob != "" && screenJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}
	if len(screenResumes) == 0 {
		return fmt.Errorf("at least one --resume is required")
	}
	if cfg.SimilarityThreshold < 0 || cfg.SimilarityThreshold > 1 {
		return fmt.Errorf("--threshold must be between 0.0 and 1.0")
	}

	// Step 4: API key handling. Without one, fall back to a local
	// deterministic embedder so the semantic signal still contributes.
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	var embedder embedding.Client
	if cfg.APIKey != "" {
		gemini, err := embedding.NewGeminiEmbedder(ctx, cfg.APIKey, cfg.EmbeddingModel)
		if err != nil {
			return fmt.Errorf("failed to create embedding client: %w", err)
		}
		embedder = gemini
	} else {
		if screenVerbose {
			_, _ = fmt.Fprintln(os.Stdout, "No API key provided; using local hashing embedder")
		}
		embedder = embedding.NewHashingEmbedder(0)
	}
	defer embedder.Close()

	scr, err := screening.NewScreener(screening.Options{
		Weights:      cfg.Weights,
		CustomSkills: cfg.CustomSkills,
		Embedder:     embedder,
		Concurrency:  cfg.Concurrency,
	})
	if err != nil {
		return err
	}

	// Step 5: Build the target profile from the job posting
	var jobText string
	if screenJob != "" {
		jobText, err = ingestion.IngestFromFile(screenJob)
		if err != nil {
			return fmt.Errorf("failed to ingest job posting: %w", err)
		}
	} else {
		jobText, err = ingestion.IngestFromURL(ctx, screenJobURL, nil)
		if err != nil {
			return fmt.Errorf("failed to fetch job posting: %w", err)
		}
	}

	var requiredYears *float64
	if cmd.Flags().Changed("required-years") {
		requiredYears = &screenRequiredYears
	}
	target, err := scr.BuildTargetProfile(ctx, screenTitle, jobText, requiredYears)
	if err != nil {
		return fmt.Errorf("failed to build target profile: %w", err)
	}

	// Step 6: Build candidate profiles from the resume files
	candidates := make([]*types.CandidateProfile, 0, len(screenResumes))
	for _, path := range screenResumes {
		text, err := ingestion.IngestFromFile(path)
		if err != nil {
			return fmt.Errorf("failed to ingest resume %s: %w", path, err)
		}
		profile, err := scr.BuildCandidateProfile(ctx, candidateName(path), text)
		if err != nil {
			return fmt.Errorf("failed to build profile for %s: %w", path, err)
		}
		candidates = append(candidates, profile)
	}

	// Step 7: Score, rank, and print
	results, err := scr.Screen(ctx, candidates, target)
	if err != nil {
		return fmt.Errorf("screening failed: %w", err)
	}
	if cfg.SimilarityThreshold > 0 {
		results = ranking.FilterByThreshold(results, cfg.SimilarityThreshold)
	}
	if screenTopK > 0 {
		results = ranking.TopK(results, screenTopK)
	}

	printer := observability.NewPrinter(os.Stdout)
	if screenVerbose {
		printer.PrintTargetProfile(target)
	}
	printer.PrintResults(results)

	return nil
}

// candidateName derives a display name from a resume file path.
func candidateName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
