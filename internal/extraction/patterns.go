package extraction

import "regexp"

// contextPatterns capture the object of phrases that commonly introduce
// skills ("experienced in X", "hands-on with X", "knowledge of X").
var contextPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:proficient|skilled|experienced|expert)\s+(?:in|with)\s+([^,.]+)`),
	regexp.MustCompile(`(?i)(?:knowledge|understanding)\s+of\s+([^,.]+)`),
	regexp.MustCompile(`(?i)(?:working\s+)?(?:experience|exposure)\s+(?:with|in)\s+([^,.]+)`),
	regexp.MustCompile(`(?i)strong\s+(?:background|foundation)\s+in\s+([^,.]+)`),
	regexp.MustCompile(`(?i)hands-on\s+(?:experience\s+)?(?:with|in)\s+([^,.]+)`),
}

// contextDelimiters split a captured object into individual tokens.
// Unlike section spans, whitespace also delimits here, so only single
// words and known aliases survive the vocabulary check.
var contextDelimiters = regexp.MustCompile(`[,;|•\n\t\s]+`)

// scanContextPatterns extracts skills referenced by contextual phrases.
func (e *Engine) scanContextPatterns(text string, found map[string]struct{}) {
	for _, pattern := range contextPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			for _, token := range contextDelimiters.Split(match[1], -1) {
				e.checkToken(token, found)
			}
		}
	}
}
