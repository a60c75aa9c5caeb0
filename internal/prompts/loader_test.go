package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ExistingPrompt(t *testing.T) {
	prompt, err := Get("crew.json", "analyze")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.UserInfo}}")
	assert.Contains(t, prompt, "{{.Role}}")
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("crew.json", "nonexistent")
	assert.Error(t, err)
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("missing.json", "analyze")
	assert.Error(t, err)
}

func TestFormat_ReplacesPlaceholders(t *testing.T) {
	result := Format("Hello {{.Name}}, target: {{.Role}}", map[string]string{
		"Name": "Jane",
		"Role": "Engineer",
	})
	assert.Equal(t, "Hello Jane, target: Engineer", result)
}

func TestFormat_LeavesUnknownPlaceholders(t *testing.T) {
	result := Format("{{.Known}} and {{.Unknown}}", map[string]string{"Known": "x"})
	assert.Equal(t, "x and {{.Unknown}}", result)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("crew.json", "definitely-not-a-key")
	})
}
