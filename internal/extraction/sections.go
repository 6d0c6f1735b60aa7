package extraction

import "regexp"

// sectionPatterns capture the text following a skills-style header up to a
// sentence boundary.
var sectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:technical\s+)?skills?(?:\s+and\s+technologies)?[:\s]+([^.]+)`),
	regexp.MustCompile(`(?i)(?:core\s+)?competencies[:\s]+([^.]+)`),
	regexp.MustCompile(`(?i)technologies[:\s]+([^.]+)`),
	regexp.MustCompile(`(?i)expertise[:\s]+([^.]+)`),
	regexp.MustCompile(`(?i)proficient\s+in[:\s]+([^.]+)`),
	regexp.MustCompile(`(?i)experienced\s+(?:in|with)[:\s]+([^.]+)`),
}

// sectionDelimiters split a captured section span into candidate tokens.
var sectionDelimiters = regexp.MustCompile(`[,;|•\n\t]`)

// scanSections extracts skills from dedicated skills sections. Each
// captured span is split on common delimiters and every token is checked
// against the vocabulary as a whole phrase and word by word.
func (e *Engine) scanSections(text string, found map[string]struct{}) {
	for _, pattern := range sectionPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			for _, token := range sectionDelimiters.Split(match[1], -1) {
				e.checkToken(token, found)
			}
		}
	}
}
