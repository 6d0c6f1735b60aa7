package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContactInfo_AllFields(t *testing.T) {
	text := `Jane Doe
jane.doe@example.com | (555) 123-4567
linkedin.com/in/janedoe | github.com/janedoe`

	info := ExtractContactInfo(text)

	assert.Equal(t, "jane.doe@example.com", info.Email)
	assert.Equal(t, "(555) 123-4567", info.Phone)
	assert.Equal(t, "linkedin.com/in/janedoe", info.LinkedIn)
	assert.Equal(t, "github.com/janedoe", info.GitHub)
}

func TestExtractContactInfo_MissingFields(t *testing.T) {
	info := ExtractContactInfo("Experienced engineer with a focus on backend systems.")

	assert.Empty(t, info.Email)
	assert.Empty(t, info.Phone)
	assert.Empty(t, info.LinkedIn)
	assert.Empty(t, info.GitHub)
}

func TestExtractContactInfo_InternationalPhone(t *testing.T) {
	info := ExtractContactInfo("Call me at +1 415-555-0132.")
	assert.Equal(t, "+1 415-555-0132", info.Phone)
}

func TestEstimateExperienceYears_ExplicitStatement(t *testing.T) {
	years := EstimateExperienceYears("Senior engineer with 7 years of experience in Python.")
	assert.Equal(t, 7.0, years)
}

func TestEstimateExperienceYears_ExplicitPlusSuffix(t *testing.T) {
	years := EstimateExperienceYears("10+ years of professional experience building services.")
	assert.Equal(t, 10.0, years)
}

func TestEstimateExperienceYears_ExplicitWinsOverRanges(t *testing.T) {
	text := "5 years of experience.\nAcme Corp 2010 - 2020"
	assert.Equal(t, 5.0, EstimateExperienceYears(text))
}

func TestEstimateExperienceYears_SumsDateRanges(t *testing.T) {
	text := `Software Engineer, Acme, 2015 - 2018
Senior Engineer, Globex, 2018 to 2022`
	assert.Equal(t, 7.0, EstimateExperienceYears(text))
}

func TestEstimateExperienceYears_PresentRange(t *testing.T) {
	years := EstimateExperienceYears("Engineer, Initech, 2020 - present")
	assert.GreaterOrEqual(t, years, 5.0)
}

func TestEstimateExperienceYears_NoSignal(t *testing.T) {
	assert.Equal(t, 0.0, EstimateExperienceYears("Passionate about software."))
}
