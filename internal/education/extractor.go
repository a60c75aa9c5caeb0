// Package education segments the education section of raw career text and
// parses degree, institution, year and GPA records.
package education

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/sections"
	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultVocabulary returns the ordered header table for locating the
// education section.
func DefaultVocabulary() sections.Vocabulary {
	return sections.Vocabulary{
		Headers: []string{
			"education", "academic background", "qualifications", "degrees",
			"academic qualifications", "educational background",
		},
		Next: []string{"experience", "skills", "projects", "certifications"},
	}
}

// Patterns holds the ordered trigger tables for education scanning.
type Patterns struct {
	// Degree patterns are tried in listed order; the first match wins and
	// opens a new entry, flushing the previous one.
	Degree []*regexp.Regexp
	// Institution patterns set the institution on the open entry, or open a
	// new one when none is open.
	Institution []*regexp.Regexp
	Year        *regexp.Regexp
	GPA         *regexp.Regexp
}

// DefaultPatterns returns the standard education trigger tables.
func DefaultPatterns() Patterns {
	return Patterns{
		Degree: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:bachelor|master|phd|doctorate|associate|diploma|certificate)(?:\s+of\s+(?:science|arts|engineering|business|fine arts))?(?:\s+in\s+[\w\s]+)?`),
			regexp.MustCompile(`(?i)\bb\.[sa]\.(?:\s+in\s+[\w\s]+)?`),
			regexp.MustCompile(`(?i)\bm\.[sa]\.(?:\s+in\s+[\w\s]+)?`),
			regexp.MustCompile(`(?i)\bph\.?d\.?\b(?:\s+in\s+[\w\s]+)?`),
			regexp.MustCompile(`(?i)\b(?:bs|ba|ms|ma|mba|phd)\b(?:\s+in\s+[\w\s]+)?`),
		},
		Institution: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:university|college|institute|school)\s+of\s+[\w\s]+`),
			regexp.MustCompile(`(?i)[\w\s]+(?:university|college|institute|school)`),
			regexp.MustCompile(`(?i)[\w\s]+(?:tech|technological|polytechnic)`),
		},
		Year: regexp.MustCompile(`(?:19|20)\d{2}`),
		GPA:  regexp.MustCompile(`(?i)gpa:?\s*(\d+\.?\d*)`),
	}
}

// Extractor parses education entries out of raw text with an open-record
// line scan. Extraction is best-effort and never fails.
type Extractor struct {
	vocab    sections.Vocabulary
	patterns Patterns
	events   observability.Sink
}

// NewExtractor creates an Extractor with the default vocabulary and
// trigger tables.
func NewExtractor(sink observability.Sink) *Extractor {
	return NewExtractorWithTables(DefaultVocabulary(), DefaultPatterns(), sink)
}

// NewExtractorWithTables creates an Extractor with custom tables.
func NewExtractorWithTables(vocab sections.Vocabulary, patterns Patterns, sink observability.Sink) *Extractor {
	return &Extractor{
		vocab:    vocab,
		patterns: patterns,
		events:   observability.OrNop(sink),
	}
}

// Extract locates the education section and scans it line by line. A degree
// match opens a new entry; an institution match sets the open entry or opens
// one; year and GPA matches fill in the open entry. Several signals on the
// same line all apply to the same entry, and the final open entry is always
// flushed at end of scan. On an internal fault the event is reported and an
// empty slice is returned.
func (e *Extractor) Extract(text string) (entries []types.EducationEntry) {
	defer func() {
		if r := recover(); r != nil {
			e.events.Event("education", fmt.Sprintf("recovered from extraction fault: %v", r))
			entries = nil
		}
	}()

	section := e.vocab.Locate(text)

	var current *types.EducationEntry
	for _, raw := range strings.Split(section, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		for _, pattern := range e.patterns.Degree {
			match := pattern.FindString(line)
			if match == "" {
				continue
			}

			if current != nil {
				entries = append(entries, *current)
			}
			current = &types.EducationEntry{
				Degree:      match,
				Description: line,
			}
			break
		}

		for _, pattern := range e.patterns.Institution {
			match := pattern.FindString(line)
			if match == "" {
				continue
			}

			if current != nil {
				current.Institution = match
			} else {
				current = &types.EducationEntry{
					Institution: match,
					Description: line,
				}
			}
			break
		}

		if year := e.patterns.Year.FindString(line); year != "" && current != nil {
			current.Year = year
		}

		if gpa := e.patterns.GPA.FindStringSubmatch(line); gpa != nil && current != nil {
			current.GPA = gpa[1]
		}
	}

	if current != nil {
		entries = append(entries, *current)
	}

	return entries
}
