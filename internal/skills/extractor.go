// Package skills segments the skills section of raw career text, tokenizes
// it and categorizes skill tokens against fixed vocabularies.
package skills

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/sections"
)

// Category names for classified skills.
const (
	CategoryTechnical   = "technical"
	CategoryProgramming = "programming"
	CategorySoft        = "soft"
	CategoryTools       = "tools"
	CategoryOther       = "other"
)

// categoryOrder fixes the flattening order of the result buckets.
var categoryOrder = []string{
	CategoryTechnical, CategoryProgramming, CategorySoft, CategoryTools, CategoryOther,
}

// tokenSplitter separates candidate skill tokens within a line.
var tokenSplitter = regexp.MustCompile(`[,;|•·\n]`)

// DefaultVocabulary returns the ordered header table for locating the
// skills section.
func DefaultVocabulary() sections.Vocabulary {
	return sections.Vocabulary{
		Headers: []string{
			"skills", "technical skills", "core competencies", "technologies",
			"programming languages", "tools", "software", "expertise",
			"proficiencies", "qualifications",
		},
		Next: []string{"experience", "education", "projects", "certifications"},
	}
}

// Classifier categorizes skill tokens. Lists are matched lower-cased, in
// fixed priority order: programming, then tools, then soft, then a substring
// check against technical domain keywords; everything else is "other".
type Classifier struct {
	Programming []string
	Tools       []string
	Soft        []string
	Technical   []string
}

// DefaultClassifier returns the standard skill vocabularies.
func DefaultClassifier() Classifier {
	return Classifier{
		Programming: []string{
			"python", "javascript", "java", "c++", "c#", "c", "ruby", "php",
			"go", "rust", "swift", "kotlin", "scala", "r", "matlab", "sql",
			"html", "css", "typescript", "dart", "perl", "bash", "powershell",
		},
		Tools: []string{
			"react", "angular", "vue", "django", "flask", "spring", "nodejs",
			"express", "laravel", "rails", "docker", "kubernetes", "aws",
			"azure", "gcp", "git", "jenkins", "terraform", "ansible",
		},
		Soft: []string{
			"leadership", "communication", "teamwork", "problem solving",
			"analytical", "creative", "adaptable", "organized", "detail-oriented",
			"collaborative", "innovative", "strategic", "mentoring",
		},
		Technical: []string{"web", "mobile", "database", "cloud", "api"},
	}
}

// Classify returns the category for a single skill token.
func (c Classifier) Classify(token string) string {
	lower := strings.ToLower(token)

	if containsExact(c.Programming, lower) {
		return CategoryProgramming
	}
	if containsExact(c.Tools, lower) {
		return CategoryTools
	}
	if containsExact(c.Soft, lower) {
		return CategorySoft
	}
	for _, keyword := range c.Technical {
		if strings.Contains(lower, keyword) {
			return CategoryTechnical
		}
	}
	return CategoryOther
}

func containsExact(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

// Extractor collects the flattened, de-duplicated skill set from raw text.
// Extraction is best-effort and never fails.
type Extractor struct {
	vocab      sections.Vocabulary
	classifier Classifier
	events     observability.Sink
}

// NewExtractor creates an Extractor with the default vocabulary and
// classifier tables.
func NewExtractor(sink observability.Sink) *Extractor {
	return NewExtractorWithTables(DefaultVocabulary(), DefaultClassifier(), sink)
}

// NewExtractorWithTables creates an Extractor with custom tables.
func NewExtractorWithTables(vocab sections.Vocabulary, classifier Classifier, sink observability.Sink) *Extractor {
	return &Extractor{
		vocab:      vocab,
		classifier: classifier,
		events:     observability.OrNop(sink),
	}
}

// Extract locates the skills section, splits non-header lines into tokens
// and returns the union of all category buckets. De-duplication is
// case-sensitive, so differently cased duplicates of the same skill both
// survive. On an internal fault the event is reported and an empty slice is
// returned.
func (e *Extractor) Extract(text string) (skills []string) {
	defer func() {
		if r := recover(); r != nil {
			e.events.Event("skills", fmt.Sprintf("recovered from extraction fault: %v", r))
			skills = nil
		}
	}()

	section := e.vocab.Locate(text)

	buckets := make(map[string][]string)
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || e.vocab.ContainsHeader(line) {
			continue
		}

		for _, token := range tokenSplitter.Split(line, -1) {
			token = strings.TrimSpace(token)
			if utf8.RuneCountInString(token) <= 1 {
				continue
			}
			category := e.classifier.Classify(token)
			buckets[category] = append(buckets[category], token)
		}
	}

	seen := make(map[string]struct{})
	for _, category := range categoryOrder {
		for _, token := range buckets[category] {
			if _, dup := seen[token]; dup {
				continue
			}
			seen[token] = struct{}{}
			skills = append(skills, token)
		}
	}

	return skills
}
