// Package experience segments the work-experience section of raw career
// text and parses it into structured entries.
package experience

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/sections"
	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultVocabulary returns the ordered header table for locating the
// experience section.
func DefaultVocabulary() sections.Vocabulary {
	return sections.Vocabulary{
		Headers: []string{
			"work experience", "professional experience", "employment history",
			"career history", "employment", "experience", "work history",
			"professional background", "career",
		},
		Next: []string{"education", "skills", "projects", "certifications", "awards"},
	}
}

// Patterns holds the ordered line-trigger tables for experience scanning.
type Patterns struct {
	// Company patterns are tried in listed order per line; the first match
	// wins and opens a new entry.
	Company []*regexp.Regexp
	// Date matches a month/year range or an open-ended "year - Present".
	Date *regexp.Regexp
	// Year detects a 4-digit year, used to rule out date lines as positions.
	Year *regexp.Regexp
}

// DefaultPatterns returns the standard experience trigger tables.
func DefaultPatterns() Patterns {
	const months = `(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)?`
	return Patterns{
		Company: []*regexp.Regexp{
			regexp.MustCompile(`(?i)at\s+[A-Za-z][A-Za-z\s&.,]+(?:Inc|Corp|LLC|Ltd|Company|Co\.|Technologies|Tech|Solutions|Systems|Group|Associates|Partners)`),
			regexp.MustCompile(`(?i)[A-Za-z][A-Za-z\s&.,]+(?:Inc|Corp|LLC|Ltd|Company|Co\.|Technologies|Tech|Solutions|Systems|Group|Associates|Partners)`),
			regexp.MustCompile(`(?i)[A-Za-z][A-Za-z\s&.,]+\s*-\s*[A-Za-z][A-Za-z\s]+`),
		},
		Date: regexp.MustCompile(`(?i)` + months + `\s*\d{4}\s*[-–]\s*` + months + `\s*\d{4}|` + months + `\s*\d{4}\s*[-–]\s*Present`),
		Year: regexp.MustCompile(`\d{4}`),
	}
}

// Extractor parses work-experience entries out of raw text with an
// open-record line scan. Extraction is best-effort and never fails.
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

// Extract locates the experience section and scans it line by line. A line
// matching a company pattern closes the currently open entry and opens a new
// one; date lines set the open entry's duration; bullet lines accumulate as
// achievements. The final open entry is always flushed at end of scan. On an
// internal fault the event is reported and an empty slice is returned.
func (e *Extractor) Extract(text string) (entries []types.ExperienceEntry) {
	defer func() {
		if r := recover(); r != nil {
			e.events.Event("experience", fmt.Sprintf("recovered from extraction fault: %v", r))
			entries = nil
		}
	}()

	section := e.vocab.Locate(text)
	lines := strings.Split(section, "\n")

	var current *types.ExperienceEntry
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		for _, pattern := range e.patterns.Company {
			if !pattern.MatchString(line) {
				continue
			}

			if current != nil {
				entries = append(entries, *current)
			}
			current = &types.ExperienceEntry{Company: line}

			// The immediately preceding line is the position, unless it
			// carries a year (then it is a date line).
			if i > 0 {
				prev := strings.TrimSpace(lines[i-1])
				if prev != "" && !e.patterns.Year.MatchString(prev) {
					current.Position = prev
				}
			}
			break
		}

		if e.patterns.Date.MatchString(line) && current != nil {
			current.Duration = line
		}

		if isBullet(line) && current != nil {
			current.AddAchievement(line)
		}
	}

	if current != nil {
		entries = append(entries, *current)
	}

	return entries
}

func isBullet(line string) bool {
	return strings.HasPrefix(line, "•") ||
		strings.HasPrefix(line, "-") ||
		strings.HasPrefix(line, "*")
}
