// Package types provides type definitions for structured data used throughout the resume-builder system.
package types

import "strings"

// ContactInfo holds contact details extracted from raw career text.
// Every field is best-effort: an empty string means the value was not found.
type ContactInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

// IsEmpty reports whether no contact field was extracted.
func (c ContactInfo) IsEmpty() bool {
	return c.Name == "" && c.Email == "" && c.Phone == "" &&
		c.Address == "" && c.LinkedIn == "" && c.GitHub == ""
}

// ExperienceEntry represents one work-experience record scanned out of an
// experience section. Entries keep source order; achievements keep their
// leading bullet markers until render time.
type ExperienceEntry struct {
	Company      string   `json:"company"`
	Position     string   `json:"position,omitempty"`
	Duration     string   `json:"duration,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
	Description  string   `json:"description,omitempty"`
}

// AddAchievement appends a bullet line to the entry, keeping Description as
// the newline-joined concatenation of all achievement lines.
func (e *ExperienceEntry) AddAchievement(line string) {
	e.Achievements = append(e.Achievements, line)
	if e.Description == "" {
		e.Description = line
	} else {
		e.Description += "\n" + line
	}
}

// EducationEntry represents one education record. Location is reserved and
// currently never populated by extraction. Description carries the raw
// source line that triggered the match.
type EducationEntry struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
	GPA         string `json:"gpa,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

// Analysis bundles the outputs of the four extractors for a single input
// text. It is the structured payload handed to the writing stage of the
// crew and to the fallback assembler.
type Analysis struct {
	Contact    ContactInfo       `json:"contact"`
	Experience []ExperienceEntry `json:"experience"`
	Skills     []string          `json:"skills"`
	Education  []EducationEntry  `json:"education"`
}

// CleanBullet strips leading bullet markers and surrounding whitespace from
// an achievement line for rendering.
func CleanBullet(line string) string {
	return strings.Trim(line, "•-* \t")
}
