package ingestion

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ContactInfo holds contact details pulled from resume text. Fields are
// empty when the resume does not mention them.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

var (
	emailPattern    = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phonePattern    = regexp.MustCompile(`(?:\+?\d{1,2}[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[A-Za-z0-9_\-]+`)
	githubPattern   = regexp.MustCompile(`(?i)github\.com/[A-Za-z0-9_\-]+`)
)

// ExtractContactInfo scans resume text for email, phone number, and
// profile links. The first occurrence of each wins.
func ExtractContactInfo(text string) ContactInfo {
	info := ContactInfo{
		Email:    emailPattern.FindString(text),
		LinkedIn: strings.ToLower(linkedinPattern.FindString(text)),
		GitHub:   strings.ToLower(githubPattern.FindString(text)),
	}

	// Phone matching runs last and skips candidates that are part of a
	// URL or email, since the loose digit pattern would match those too.
	for _, match := range phonePattern.FindAllStringIndex(text, -1) {
		candidate := text[match[0]:match[1]]
		if strings.Contains(info.Email, candidate) {
			continue
		}
		info.Phone = strings.TrimSpace(candidate)
		break
	}

	return info
}

var (
	explicitYearsPattern = regexp.MustCompile(`(?i)(\d{1,2})\+?\s*years?\s+(?:of\s+)?(?:professional\s+|industry\s+|work\s+)?experience`)
	yearRangePattern     = regexp.MustCompile(`(?i)\b(19\d{2}|20\d{2})\s*(?:-|–|—|to)\s*(19\d{2}|20\d{2}|present|current|now)\b`)
)

// EstimateExperienceYears infers total years of experience from resume
// text. An explicit statement such as "7 years of experience" takes
// precedence. Otherwise employment date ranges are summed, with
// "present" resolved against the current year. Returns 0 when nothing
// is found.
func EstimateExperienceYears(text string) float64 {
	if m := explicitYearsPattern.FindStringSubmatch(text); m != nil {
		years, err := strconv.Atoi(m[1])
		if err == nil && years > 0 {
			return float64(years)
		}
	}

	currentYear := time.Now().Year()
	total := 0
	for _, m := range yearRangePattern.FindAllStringSubmatch(text, -1) {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		end := currentYear
		if m[2] != "" && m[2][0] >= '0' && m[2][0] <= '9' {
			end, err = strconv.Atoi(m[2])
			if err != nil {
				continue
			}
		}
		if end >= start && end <= currentYear {
			total += end - start
		}
	}
	return float64(total)
}
