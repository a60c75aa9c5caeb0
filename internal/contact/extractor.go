// Package contact extracts contact information from raw career text using
// ordered regex pattern tables.
package contact

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/types"
)

// maxNameScanLines is how many non-empty lines at the top of the text are
// considered when looking for the candidate's name.
const maxNameScanLines = 10

// Patterns holds the ordered pattern tables used for contact extraction.
// Ordered slices are matched first-pattern-wins: an earlier pattern takes
// priority even if a later pattern would also match.
type Patterns struct {
	Email    *regexp.Regexp
	Phone    []*regexp.Regexp
	LinkedIn *regexp.Regexp
	GitHub   *regexp.Regexp
	Address  []*regexp.Regexp

	// NameDisqualifier rejects lines that cannot be a person's name.
	NameDisqualifier *regexp.Regexp
}

// DefaultPatterns returns the standard contact pattern tables.
func DefaultPatterns() Patterns {
	return Patterns{
		Email: regexp.MustCompile(`(?i)[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`),
		Phone: []*regexp.Regexp{
			// North-American style with optional country code
			regexp.MustCompile(`(\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
			// Looser international variant
			regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3,4}\)?[-.\s]?\d{3,4}[-.\s]?\d{4}`),
			// Bare digit run
			regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\d{10,14}`),
		},
		LinkedIn: regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`),
		GitHub:   regexp.MustCompile(`(?i)github\.com/[\w-]+`),
		Address: []*regexp.Regexp{
			// Street number followed by a street-type suffix
			regexp.MustCompile(`(?i)\d+\s+[A-Za-z\s]+(?:Street|St|Avenue|Ave|Road|Rd|Drive|Dr|Lane|Ln|Boulevard|Blvd)`),
			// "City, State 12345"
			regexp.MustCompile(`[A-Za-z\s]+,\s*[A-Za-z\s]+\s+\d{5}`),
		},
		NameDisqualifier: regexp.MustCompile(`[@\d]|\.com|\.org|\.net`),
	}
}

// Extractor finds name, email, phone, address, LinkedIn and GitHub handles
// in raw text. Extraction is best-effort and never fails.
type Extractor struct {
	patterns Patterns
	events   observability.Sink
}

// NewExtractor creates an Extractor with the default pattern tables.
func NewExtractor(sink observability.Sink) *Extractor {
	return NewExtractorWithPatterns(DefaultPatterns(), sink)
}

// NewExtractorWithPatterns creates an Extractor with custom pattern tables.
func NewExtractorWithPatterns(patterns Patterns, sink observability.Sink) *Extractor {
	return &Extractor{
		patterns: patterns,
		events:   observability.OrNop(sink),
	}
}

// Extract scans text for contact details. Missing fields stay empty; on an
// internal fault the event is reported and an all-empty ContactInfo is
// returned.
func (e *Extractor) Extract(text string) (info types.ContactInfo) {
	defer func() {
		if r := recover(); r != nil {
			e.events.Event("contact", fmt.Sprintf("recovered from extraction fault: %v", r))
			info = types.ContactInfo{}
		}
	}()

	info.Email = e.patterns.Email.FindString(text)

	for _, pattern := range e.patterns.Phone {
		if match := pattern.FindString(text); match != "" {
			info.Phone = match
			break
		}
	}

	info.LinkedIn = e.patterns.LinkedIn.FindString(text)
	info.GitHub = e.patterns.GitHub.FindString(text)
	info.Name = e.findName(text)

	for _, pattern := range e.patterns.Address {
		if match := pattern.FindString(text); match != "" {
			info.Address = match
			break
		}
	}

	return info
}

// findName scans at most the first maxNameScanLines non-empty lines for a
// line of 2-4 capitalized words with no digits, addresses or domains.
func (e *Extractor) findName(text string) string {
	scanned := 0
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		scanned++
		if scanned > maxNameScanLines {
			break
		}

		if e.patterns.NameDisqualifier.MatchString(line) {
			continue
		}

		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}

		if allWordsCapitalized(words) {
			return line
		}
	}

	return ""
}

func allWordsCapitalized(words []string) bool {
	for _, word := range words {
		runes := []rune(word)
		if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
			return false
		}
	}
	return true
}
