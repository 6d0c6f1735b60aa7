// Package extraction derives canonical skill sets from unstructured resume
// and job description text. Four independent strategies (keyword scan,
// section scan, context-pattern scan, and an optional annotation scan) run
// over the same input and their results are unioned.
package extraction

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/skills"
)

// Engine extracts skills from text against a fixed vocabulary. The
// vocabulary and annotator are supplied at construction and never mutated,
// so a single Engine is safe for concurrent use.
type Engine struct {
	vocab           *skills.Vocabulary
	annotator       Annotator
	keywordPatterns map[string]*regexp.Regexp
}

// NewEngine creates an extraction engine for the given vocabulary.
// annotator may be nil; the annotation strategy then contributes nothing.
func NewEngine(vocab *skills.Vocabulary, annotator Annotator) *Engine {
	entries := vocab.Entries()
	patterns := make(map[string]*regexp.Regexp, len(entries))
	for _, entry := range entries {
		patterns[entry] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(entry) + `\b`)
	}
	return &Engine{
		vocab:           vocab,
		annotator:       annotator,
		keywordPatterns: patterns,
	}
}

// Extract returns the alphabetically sorted, deduplicated set of canonical
// skills found in text. Empty or whitespace-only input yields an empty set.
func (e *Engine) Extract(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	found := make(map[string]struct{})
	e.scanKeywords(text, found)
	e.scanSections(text, found)
	e.scanContextPatterns(text, found)
	e.scanAnnotations(text, found)

	result := make([]string, 0, len(found))
	for skill := range found {
		result = append(result, skill)
	}
	sort.Strings(result)
	return result
}

// scanKeywords matches every vocabulary entry against the full text using
// case-insensitive word-boundary patterns, so "java" does not match inside
// "javascript".
func (e *Engine) scanKeywords(text string, found map[string]struct{}) {
	for skill, pattern := range e.keywordPatterns {
		if pattern.MatchString(text) {
			found[skill] = struct{}{}
		}
	}
}

// checkToken adds the canonical form of token to found when the vocabulary
// knows it, first as a whole phrase and then word by word. Single words
// shorter than three characters are skipped to avoid noise matches; the
// keyword scan still catches short entries like "go" on its own.
func (e *Engine) checkToken(token string, found map[string]struct{}) {
	phrase := skills.Normalize(token)
	if phrase == "" {
		return
	}
	if e.vocab.Contains(phrase) {
		found[phrase] = struct{}{}
	}
	for _, word := range strings.Fields(phrase) {
		if len(word) <= 2 {
			continue
		}
		normalized := skills.Normalize(word)
		if e.vocab.Contains(normalized) {
			found[normalized] = struct{}{}
		}
	}
}
