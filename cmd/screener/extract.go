package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/screening"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract skills from a resume or job posting",
	Long:  "Extract normalized skills from a text file or URL and print them grouped by category.",
	RunE:  runExtract,
}

var (
	extractTextFile     string
	extractURL          string
	extractCustomSkills []string
	extractRequirements bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractTextFile, "text-file", "t", "", "Path to text file (mutually exclusive with --url)")
	extractCmd.Flags().StringVarP(&extractURL, "url", "u", "", "URL to fetch text from (mutually exclusive with --text-file)")
	extractCmd.Flags().StringSliceVar(&extractCustomSkills, "skill", nil, "Additional skill to recognize (repeatable)")
	extractCmd.Flags().BoolVar(&extractRequirements, "requirements", false, "Also split skills into required and preferred sections")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	if extractTextFile == "" && extractURL == "" {
		return fmt.Errorf("either --text-file or --url must be provided")
	}
	if extractTextFile != "" && extractURL != "" {
		return fmt.Errorf("--text-file and --url are mutually exclusive; provide only one")
	}

	ctx := context.Background()

	var text string
	var err error
	if extractTextFile != "" {
		text, err = ingestion.IngestFromFile(extractTextFile)
		if err != nil {
			return fmt.Errorf("failed to ingest from file: %w", err)
		}
	} else {
		text, err = ingestion.IngestFromURL(ctx, extractURL, nil)
		if err != nil {
			return fmt.Errorf("failed to ingest from URL: %w", err)
		}
	}

	scr, err := screening.NewScreener(screening.Options{CustomSkills: extractCustomSkills})
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintExtractedSkills(scr.Engine().Extract(text))

	if extractRequirements {
		reqs := scr.Engine().SplitRequirements(text)
		fmt.Fprintf(os.Stdout, "Required:  %v\n", reqs.Required)
		fmt.Fprintf(os.Stdout, "Preferred: %v\n", reqs.Preferred)
	}

	return nil
}
