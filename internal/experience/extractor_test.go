package experience

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_CompanyPositionDurationBullets(t *testing.T) {
	text := `Experience
Senior Engineer
TechCorp Inc
2020 - 2023
• Led a team of 5 engineers
• Shipped three major releases`

	entries := NewExtractor(nil).Extract(text)

	require.Len(t, entries, 1)
	assert.Equal(t, "TechCorp Inc", entries[0].Company)
	assert.Equal(t, "Senior Engineer", entries[0].Position)
	assert.Equal(t, "2020 - 2023", entries[0].Duration)
	assert.Equal(t, []string{"• Led a team of 5 engineers", "• Shipped three major releases"}, entries[0].Achievements)
	assert.Equal(t, "• Led a team of 5 engineers\n• Shipped three major releases", entries[0].Description)
}

func TestExtract_FinalEntryFlushedAtEndOfScan(t *testing.T) {
	text := `Experience
First Corp
• Did the first thing
Second Corp
• Did the second thing`

	entries := NewExtractor(nil).Extract(text)

	require.Len(t, entries, 2)
	assert.Equal(t, "First Corp", entries[0].Company)
	assert.Equal(t, "Second Corp", entries[1].Company)
	assert.Equal(t, []string{"• Did the second thing"}, entries[1].Achievements)
}

func TestExtract_HeaderlessSection(t *testing.T) {
	// Without any section header the whole text is scanned.
	text := `Acme Corp
Managed a team of 5.
• Increased revenue 20%`

	entries := NewExtractor(nil).Extract(text)

	require.Len(t, entries, 1)
	assert.Equal(t, "Acme Corp", entries[0].Company)
	assert.Equal(t, []string{"• Increased revenue 20%"}, entries[0].Achievements)
}

func TestExtract_DateLineIsNotPosition(t *testing.T) {
	text := `Experience
2018 - 2020
TechCorp Inc
• Built things`

	entries := NewExtractor(nil).Extract(text)

	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Position)
}

func TestExtract_BulletsBeforeFirstCompanyIgnored(t *testing.T) {
	text := `Experience
• Orphan bullet
TechCorp Inc`

	entries := NewExtractor(nil).Extract(text)

	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Achievements)
}

func TestExtract_OpenEndedDuration(t *testing.T) {
	text := `Experience
TechCorp Inc
Jan 2021 - Present
• Still there`

	entries := NewExtractor(nil).Extract(text)

	require.Len(t, entries, 1)
	assert.Equal(t, "Jan 2021 - Present", entries[0].Duration)
}

func TestExtract_NoExperience(t *testing.T) {
	entries := NewExtractor(nil).Extract("Just a plain sentence about nothing.")

	assert.Empty(t, entries)
}

func TestExtract_DashSeparatedCompanyRole(t *testing.T) {
	text := `Experience
Initech - Software Developer
• Fixed the printer`

	entries := NewExtractor(nil).Extract(text)

	require.Len(t, entries, 1)
	assert.Equal(t, "Initech - Software Developer", entries[0].Company)
}
