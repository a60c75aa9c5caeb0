package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_CommaSeparatedList(t *testing.T) {
	text := `Skills
Python, JavaScript, Docker`

	result := NewExtractor(nil).Extract(text)

	assert.ElementsMatch(t, []string{"Python", "JavaScript", "Docker"}, result)
}

func TestExtract_HeaderLineSkipped(t *testing.T) {
	text := `Technical Skills
Python`

	result := NewExtractor(nil).Extract(text)

	assert.Equal(t, []string{"Python"}, result)
}

func TestExtract_CategoryOrderInFlattenedResult(t *testing.T) {
	text := `Skills
Leadership, Python, Web Development, Docker, Underwater Basket Weaving`

	result := NewExtractor(nil).Extract(text)

	// technical, programming, soft, tools, other
	assert.Equal(t, []string{
		"Web Development", "Python", "Leadership", "Docker", "Underwater Basket Weaving",
	}, result)
}

func TestExtract_CaseSensitiveDeduplication(t *testing.T) {
	text := `Skills
Python, python, Python`

	result := NewExtractor(nil).Extract(text)

	assert.Equal(t, []string{"Python", "python"}, result)
}

func TestExtract_SingleRuneTokensDropped(t *testing.T) {
	text := `Skills
Python, R, C, Go`

	result := NewExtractor(nil).Extract(text)

	assert.NotContains(t, result, "R")
	assert.NotContains(t, result, "C")
	assert.Contains(t, result, "Go")
}

func TestExtract_MixedSeparators(t *testing.T) {
	text := `Skills
Python; Docker | Git • Leadership`

	result := NewExtractor(nil).Extract(text)

	assert.ElementsMatch(t, []string{"Python", "Docker", "Git", "Leadership"}, result)
}

func TestExtract_SectionEndsAtNextHeader(t *testing.T) {
	text := `Skills
Python
Education
MIT`

	result := NewExtractor(nil).Extract(text)

	assert.Equal(t, []string{"Python"}, result)
}

func TestExtract_NoSkills(t *testing.T) {
	result := NewExtractor(nil).Extract("")

	assert.Empty(t, result)
}

func TestClassify_PriorityOrder(t *testing.T) {
	c := DefaultClassifier()

	assert.Equal(t, CategoryProgramming, c.Classify("Python"))
	assert.Equal(t, CategoryTools, c.Classify("Docker"))
	assert.Equal(t, CategorySoft, c.Classify("Leadership"))
	assert.Equal(t, CategoryTechnical, c.Classify("REST API design"))
	assert.Equal(t, CategoryOther, c.Classify("Juggling"))
}

func TestClassify_TechnicalIsSubstringMatch(t *testing.T) {
	c := DefaultClassifier()

	assert.Equal(t, CategoryTechnical, c.Classify("cloud architecture"))
	assert.Equal(t, CategoryTechnical, c.Classify("Mobile Development"))
}
