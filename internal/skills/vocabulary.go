// Package skills provides the canonical skill vocabulary, name normalization,
// and categorization used by the extraction and scoring engines.
package skills

import "sort"

// defaultSkills is the built-in skill dictionary covering common technical
// and professional competencies.
var defaultSkills = []string{
	// Programming languages
	"python", "java", "javascript", "typescript", "c++", "c#", "ruby", "go", "rust",
	"php", "swift", "kotlin", "scala", "r", "matlab", "sql", "html", "css",

	// Frameworks and libraries
	"react", "angular", "vue", "django", "flask", "spring", "nodejs", "express",
	"tensorflow", "pytorch", "keras", "pandas", "numpy", "scikit-learn",

	// Databases
	"mysql", "postgresql", "mongodb", "redis", "cassandra", "oracle", "sqlite",
	"dynamodb", "elasticsearch",

	// Cloud and DevOps
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "ci/cd", "terraform",
	"ansible", "git", "github", "gitlab",

	// Data science and ML
	"machine learning", "deep learning", "nlp", "computer vision", "data analysis",
	"data science", "statistics", "data visualization", "tableau", "power bi",

	// Soft skills
	"leadership", "communication", "teamwork", "problem solving", "critical thinking",
	"project management", "agile", "scrum", "collaboration",

	// Other technical
	"api", "rest", "graphql", "microservices", "testing", "debugging",
	"linux", "unix", "shell scripting", "networking", "security",
}

// Vocabulary is an immutable set of canonical skill identifiers.
// All entries are lower-case and trimmed. Construct with NewVocabulary;
// a Vocabulary is safe for concurrent reads after construction.
type Vocabulary struct {
	entries map[string]struct{}
}

// NewVocabulary builds a vocabulary from the default skill dictionary plus
// any custom entries. Custom entries are normalized before insertion;
// entries that normalize to the empty string are skipped.
func NewVocabulary(custom ...string) *Vocabulary {
	entries := make(map[string]struct{}, len(defaultSkills)+len(custom))
	for _, s := range defaultSkills {
		entries[s] = struct{}{}
	}
	for _, s := range custom {
		normalized := Normalize(s)
		if normalized == "" {
			continue
		}
		entries[normalized] = struct{}{}
	}
	return &Vocabulary{entries: entries}
}

// Contains reports whether the normalized form of skill is in the vocabulary.
func (v *Vocabulary) Contains(skill string) bool {
	_, ok := v.entries[Normalize(skill)]
	return ok
}

// Len returns the number of canonical entries.
func (v *Vocabulary) Len() int {
	return len(v.entries)
}

// Entries returns the canonical skill identifiers in alphabetical order.
func (v *Vocabulary) Entries() []string {
	out := make([]string, 0, len(v.entries))
	for s := range v.entries {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
