package skills

// Category bucket names used by Categorize.
const (
	CategoryLanguages  = "languages"
	CategoryFrameworks = "frameworks"
	CategoryDatabases  = "databases"
	CategoryCloud      = "cloud"
	CategoryTooling    = "tooling"
	CategorySoftSkills = "soft_skills"
	CategoryOther      = "other"
)

var categoryMembers = map[string][]string{
	CategoryLanguages: {
		"python", "java", "javascript", "typescript", "c++", "c#",
		"ruby", "go", "rust", "php", "swift", "kotlin", "scala", "r",
	},
	CategoryFrameworks: {
		"react", "angular", "vue", "django", "flask", "spring",
		"nodejs", "express", "tensorflow", "pytorch", "keras",
	},
	CategoryDatabases: {
		"mysql", "postgresql", "mongodb", "redis", "cassandra",
		"oracle", "sqlite", "dynamodb", "elasticsearch",
	},
	CategoryCloud: {
		"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "ansible",
	},
	CategoryTooling: {
		"git", "github", "gitlab", "jenkins", "ci/cd", "linux", "unix",
	},
	CategorySoftSkills: {
		"leadership", "communication", "teamwork", "problem solving",
		"critical thinking", "project management", "agile", "scrum",
	},
}

// categoryOrder fixes the iteration order so Categorize assigns each skill
// to the first bucket that claims it.
var categoryOrder = []string{
	CategoryLanguages,
	CategoryFrameworks,
	CategoryDatabases,
	CategoryCloud,
	CategoryTooling,
	CategorySoftSkills,
}

var categoryIndex = buildCategoryIndex()

func buildCategoryIndex() map[string]string {
	index := make(map[string]string)
	for _, category := range categoryOrder {
		for _, skill := range categoryMembers[category] {
			if _, ok := index[skill]; !ok {
				index[skill] = category
			}
		}
	}
	return index
}

// Categorize partitions skills into named buckets via fixed membership
// tables. Skills that belong to no bucket land in "other". Empty buckets
// are omitted from the result. Input order is preserved within each bucket.
func Categorize(skillList []string) map[string][]string {
	result := make(map[string][]string)
	for _, skill := range skillList {
		normalized := Normalize(skill)
		category, ok := categoryIndex[normalized]
		if !ok {
			category = CategoryOther
		}
		result[category] = append(result[category], normalized)
	}
	return result
}
