// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintExtractedSkills outputs extracted skills grouped by category.
func (p *Printer) PrintExtractedSkills(skillList []string) {
	if len(skillList) == 0 {
		p.printBox("EXTRACTED SKILLS", "(none found)")
		return
	}

	categorized := skills.Categorize(skillList)

	// Stable category order for output
	categories := make([]string, 0, len(categorized))
	for category := range categorized {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total: %d\n", len(skillList)))
	for _, category := range categories {
		sb.WriteString(fmt.Sprintf("\n%s:\n", category))
		for _, skill := range categorized[category] {
			sb.WriteString(fmt.Sprintf("  • %s\n", skill))
		}
	}

	p.printBox("EXTRACTED SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTargetProfile outputs a summary of the job's extracted requirements.
func (p *Printer) PrintTargetProfile(target *types.TargetProfile) {
	if target == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:  %s\n", target.Title))
	if target.RequiredExperienceYears != nil {
		sb.WriteString(fmt.Sprintf("Experience:  %.1f years\n", *target.RequiredExperienceYears))
	}

	if len(target.RequiredSkills) > 0 {
		sb.WriteString("\nRequired:\n")
		writeSkillList(&sb, target.RequiredSkills, maxItemsToShow)
	}
	if len(target.PreferredSkills) > 0 {
		sb.WriteString("\nPreferred:\n")
		writeSkillList(&sb, target.PreferredSkills, 3)
	}

	p.printBox("TARGET PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResults outputs the ranked screening results with score breakdowns.
func (p *Printer) PrintResults(results []*types.ScoringResult) {
	if len(results) == 0 {
		p.printBox("SCREENING RESULTS", "(no candidates)")
		return
	}

	var sb strings.Builder
	for i, result := range results {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("#%d  %s  (%.1f%%)\n", result.Rank, result.CandidateName, result.OverallScore*100))
		sb.WriteString(fmt.Sprintf("    skills %.1f%%  semantic %.1f%%  experience %.1f%%\n",
			result.SkillMatchScore*100, result.SemanticSimilarityScore*100, result.ExperienceScore*100))
		sb.WriteString(fmt.Sprintf("    %s\n", ranking.Explain(result)))
	}

	p.printBox("SCREENING RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}

func writeSkillList(sb *strings.Builder, skillList []string, limit int) {
	count := min(len(skillList), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", skillList[i]))
	}
	if len(skillList) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skillList)-limit))
	}
}
