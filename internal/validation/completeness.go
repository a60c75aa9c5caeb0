// Package validation provides deterministic checks of generated resume
// content.
package validation

import "strings"

// requiredSections lists the section keywords a complete resume must
// mention, matched case-insensitively.
var requiredSections = []string{"contact", "summary", "experience", "skills", "education"}

// MissingSections returns the required sections that the resume content does
// not mention. An empty result means the content is complete.
func MissingSections(content string) []string {
	contentLower := strings.ToLower(content)

	var missing []string
	for _, section := range requiredSections {
		if !strings.Contains(contentLower, section) {
			missing = append(missing, section)
		}
	}
	return missing
}

// IsComplete reports whether the resume content mentions every required
// section.
func IsComplete(content string) bool {
	return len(MissingSections(content)) == 0
}
