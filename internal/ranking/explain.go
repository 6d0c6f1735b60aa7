package ranking

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// maxExplainedSkills caps how many matched skills an explanation lists.
const maxExplainedSkills = 5

// Explain produces a deterministic, bucketed rationale for a scoring
// result. It is purely descriptive and has no effect on any score.
func Explain(result *types.ScoringResult) string {
	parts := make([]string, 0, 4)

	skillPct := result.SkillMatchScore * 100
	switch {
	case skillPct >= 80:
		parts = append(parts, fmt.Sprintf("Excellent skill match (%.0f%%)", skillPct))
	case skillPct >= 60:
		parts = append(parts, fmt.Sprintf("Good skill match (%.0f%%)", skillPct))
	case skillPct >= 40:
		parts = append(parts, fmt.Sprintf("Moderate skill match (%.0f%%)", skillPct))
	default:
		parts = append(parts, fmt.Sprintf("Limited skill match (%.0f%%)", skillPct))
	}

	semanticPct := result.SemanticSimilarityScore * 100
	switch {
	case semanticPct >= 75:
		parts = append(parts, fmt.Sprintf("Strong semantic alignment (%.0f%%)", semanticPct))
	case semanticPct >= 50:
		parts = append(parts, fmt.Sprintf("Moderate semantic alignment (%.0f%%)", semanticPct))
	default:
		parts = append(parts, fmt.Sprintf("Weak semantic alignment (%.0f%%)", semanticPct))
	}

	expPct := result.ExperienceScore * 100
	switch {
	case expPct >= 100:
		parts = append(parts, "Meets or exceeds experience requirements")
	case expPct >= 75:
		parts = append(parts, "Close to experience requirements")
	default:
		parts = append(parts, "Below experience requirements")
	}

	if len(result.MatchedSkills) > 0 {
		shown := result.MatchedSkills
		extra := 0
		if len(shown) > maxExplainedSkills {
			extra = len(shown) - maxExplainedSkills
			shown = shown[:maxExplainedSkills]
		}
		skillList := strings.Join(shown, ", ")
		if extra > 0 {
			skillList += fmt.Sprintf(" (+%d more)", extra)
		}
		parts = append(parts, "Matched skills: "+skillList)
	}

	return strings.Join(parts, " | ")
}
