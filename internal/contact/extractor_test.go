package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestExtract_FullContactBlock(t *testing.T) {
	text := `John Smith
john.smith@email.com
(555) 123-4567
123 Main Street
linkedin.com/in/johnsmith
github.com/johnsmith`

	info := NewExtractor(nil).Extract(text)

	assert.Equal(t, "John Smith", info.Name)
	assert.Equal(t, "john.smith@email.com", info.Email)
	assert.Equal(t, "(555) 123-4567", info.Phone)
	assert.Equal(t, "123 Main Street", info.Address)
	assert.Equal(t, "linkedin.com/in/johnsmith", info.LinkedIn)
	assert.Equal(t, "github.com/johnsmith", info.GitHub)
}

func TestExtract_EmptyInput(t *testing.T) {
	info := NewExtractor(nil).Extract("")

	assert.Equal(t, types.ContactInfo{}, info)
	assert.True(t, info.IsEmpty())
}

func TestExtract_FirstEmailWins(t *testing.T) {
	text := "first@email.com and second@email.com"

	info := NewExtractor(nil).Extract(text)

	assert.Equal(t, "first@email.com", info.Email)
}

func TestExtract_PhonePatternOrder(t *testing.T) {
	// The North-American pattern is tried before the international one.
	info := NewExtractor(nil).Extract("Call me at 555-123-4567")

	assert.Equal(t, "555-123-4567", info.Phone)
}

func TestExtract_InternationalPhone(t *testing.T) {
	info := NewExtractor(nil).Extract("Phone: +1 415 555 2671")

	assert.NotEmpty(t, info.Phone)
}

func TestExtract_LinkedInCaseInsensitive(t *testing.T) {
	info := NewExtractor(nil).Extract("Profile: LinkedIn.com/in/Jane-Doe")

	assert.Equal(t, "LinkedIn.com/in/Jane-Doe", info.LinkedIn)
}

func TestFindName_SkipsDisqualifiedLines(t *testing.T) {
	// Email and numbered lines cannot be names even when capitalized.
	text := `John.Smith@email.com
42 Wallaby Way
Jane Doe`

	info := NewExtractor(nil).Extract(text)

	assert.Equal(t, "Jane Doe", info.Name)
}

func TestFindName_RequiresTwoToFourWords(t *testing.T) {
	text := "Madonna\nOne Two Three Four Five\nJohn Smith"

	info := NewExtractor(nil).Extract(text)

	assert.Equal(t, "John Smith", info.Name)
}

func TestFindName_RequiresCapitalizedWords(t *testing.T) {
	text := "john smith\nJane Doe"

	info := NewExtractor(nil).Extract(text)

	assert.Equal(t, "Jane Doe", info.Name)
}

func TestFindName_OnlyScansTopOfText(t *testing.T) {
	var lines string
	for i := 0; i < 12; i++ {
		lines += "lowercase filler line\n"
	}
	lines += "John Smith\n"

	info := NewExtractor(nil).Extract(lines)

	assert.Empty(t, info.Name)
}

func TestExtract_CityStateZipAddress(t *testing.T) {
	info := NewExtractor(nil).Extract("Based in Springfield, Illinois 62704")

	assert.Contains(t, info.Address, "62704")
}

func TestExtract_Idempotent(t *testing.T) {
	text := "John Smith\njohn@email.com\n(555) 123-4567"
	e := NewExtractor(nil)

	first := e.Extract(text)
	second := e.Extract(text)

	assert.Equal(t, first, second)
}
