package extraction

import (
	"regexp"
	"sort"

	"github.com/jonathan/resume-screener/internal/types"
)

// requiredPatterns capture spans following headers that signal hard
// requirements. Spans end at a sentence boundary, a blank line, or the
// end of the text, so list-style sections stay separate.
var requiredPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:required|must\s+have|mandatory|essential)[:\s]+([\s\S]+?)(?:\.\s|\n\s*\n|$)`),
	regexp.MustCompile(`(?i)requirements?[:\s]+([\s\S]+?)(?:\.\s|\n\s*\n|$)`),
}

// preferredPatterns capture spans following headers that signal
// nice-to-have skills.
var preferredPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:preferred|nice\s+to\s+have|bonus|desired)[:\s]+([\s\S]+?)(?:\.\s|\n\s*\n|$)`),
	regexp.MustCompile(`(?i)(?:plus|advantage)[:\s]+([\s\S]+?)(?:\.\s|\n\s*\n|$)`),
}

// SplitRequirements partitions the skills in a job description into
// required and preferred sets based on the surrounding header. When the
// text contains neither class of header, the entire extracted skill set is
// classified as required; that fallback is the intended default semantics
// for postings without an explicit requirements section.
func (e *Engine) SplitRequirements(text string) types.Requirements {
	required := make(map[string]struct{})
	preferred := make(map[string]struct{})

	for _, pattern := range requiredPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			e.scanKeywords(match[1], required)
		}
	}
	for _, pattern := range preferredPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			e.scanKeywords(match[1], preferred)
		}
	}

	if len(required) == 0 && len(preferred) == 0 {
		return types.Requirements{
			Required:  e.Extract(text),
			Preferred: []string{},
		}
	}

	return types.Requirements{
		Required:  sortedSet(required),
		Preferred: sortedSet(preferred),
	}
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for skill := range set {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}
