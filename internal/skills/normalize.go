package skills

import (
	"regexp"
	"strings"
)

// disallowedChars matches everything outside word characters, whitespace,
// '+' and '#'. '+' and '#' survive so "c++" and "c#" stay intact.
var disallowedChars = regexp.MustCompile(`[^\w\s+#]`)

var whitespaceRun = regexp.MustCompile(`\s+`)

// aliases maps cleaned surface forms to their canonical skill identifier.
// Keys must already be in cleaned form (lower-case, disallowed characters
// stripped) so that resolution stays idempotent.
var aliases = map[string]string{
	"js":          "javascript",
	"ts":          "typescript",
	"py":          "python",
	"cpp":         "c++",
	"csharp":      "c#",
	"golang":      "go",
	"node":        "nodejs",
	"nodejs":      "nodejs",
	"reactjs":     "react",
	"vuejs":       "vue",
	"angularjs":   "angular",
	"k8s":         "kubernetes",
	"postgres":    "postgresql",
	"cicd":        "ci/cd",
	"scikitlearn": "scikit-learn",
}

// Normalize converts a raw skill string to its canonical form: lower-cased,
// trimmed, stripped of characters outside [word, whitespace, +, #], then
// resolved through the alias map. Unknown inputs pass through cleaned.
// Normalize is total and idempotent.
func Normalize(raw string) string {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	cleaned = disallowedChars.ReplaceAllString(cleaned, "")
	cleaned = whitespaceRun.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	if canonical, ok := aliases[cleaned]; ok {
		return canonical
	}
	return cleaned
}

// NormalizeAll normalizes and deduplicates a list of skills, preserving the
// order of first occurrence. Entries that normalize to the empty string are
// dropped.
func NormalizeAll(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, s := range raw {
		normalized := Normalize(s)
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	return out
}
