// Package fallback assembles a plain-text resume directly from the
// heuristic extractors, used when the LLM crew fails or is unavailable.
package fallback

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/contact"
	"github.com/jonathan/resume-builder/internal/education"
	"github.com/jonathan/resume-builder/internal/experience"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/skills"
	"github.com/jonathan/resume-builder/internal/summary"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	bannerWidth    = 60
	underlineWidth = 30

	// skillsPerRow controls how many skills render on one bullet-joined row.
	skillsPerRow = 4
	// maxAchievements caps the bullet lines rendered per experience entry.
	maxAchievements = 3
)

// Assembler renders a fully formatted plain-text resume from extractor
// output. It never raises to its caller: on an internal failure it returns
// a diagnostic block embedding the original input text.
type Assembler struct {
	contact    *contact.Extractor
	experience *experience.Extractor
	skills     *skills.Extractor
	education  *education.Extractor
	summary    *summary.Generator
	events     observability.Sink
}

// NewAssembler creates an Assembler backed by the default extractors.
func NewAssembler(sink observability.Sink) *Assembler {
	return &Assembler{
		contact:    contact.NewExtractor(sink),
		experience: experience.NewExtractor(sink),
		skills:     skills.NewExtractor(sink),
		education:  education.NewExtractor(sink),
		summary:    summary.NewGenerator(sink),
		events:     observability.OrNop(sink),
	}
}

// Assemble runs all extractors over text and renders the fallback resume.
// Sections with no data are omitted entirely.
func (a *Assembler) Assemble(text, targetRole string) (resume string) {
	defer func() {
		if r := recover(); r != nil {
			a.events.Event("fallback", fmt.Sprintf("recovered from assembly fault: %v", r))
			resume = diagnosticBlock(fmt.Sprintf("%v", r), text)
		}
	}()

	analysis := types.Analysis{
		Contact:    a.contact.Extract(text),
		Experience: a.experience.Extract(text),
		Skills:     a.skills.Extract(text),
		Education:  a.education.Extract(text),
	}
	professionalSummary := a.summary.Generate(text, targetRole, nil)

	return Render(analysis, professionalSummary)
}

// Render produces the fixed-order plain-text document from an analysis and
// a professional summary.
func Render(analysis types.Analysis, professionalSummary string) string {
	var lines []string
	banner := strings.Repeat("=", bannerWidth)
	underline := strings.Repeat("-", underlineWidth)

	lines = append(lines, banner)
	if analysis.Contact.Name != "" {
		lines = append(lines, "  "+analysis.Contact.Name)
	}
	lines = append(lines, banner)

	var contactParts []string
	if analysis.Contact.Email != "" {
		contactParts = append(contactParts, "Email: "+analysis.Contact.Email)
	}
	if analysis.Contact.Phone != "" {
		contactParts = append(contactParts, "Phone: "+analysis.Contact.Phone)
	}
	if len(contactParts) > 0 {
		lines = append(lines, strings.Join(contactParts, " | "))
	}
	if analysis.Contact.LinkedIn != "" {
		lines = append(lines, "LinkedIn: "+analysis.Contact.LinkedIn)
	}
	if analysis.Contact.GitHub != "" {
		lines = append(lines, "GitHub: "+analysis.Contact.GitHub)
	}
	lines = append(lines, "")

	lines = append(lines, "PROFESSIONAL SUMMARY", underline, professionalSummary, "")

	if len(analysis.Skills) > 0 {
		lines = append(lines, "SKILLS", underline)
		for start := 0; start < len(analysis.Skills); start += skillsPerRow {
			end := min(start+skillsPerRow, len(analysis.Skills))
			lines = append(lines, strings.Join(analysis.Skills[start:end], " • "))
		}
		lines = append(lines, "")
	}

	if len(analysis.Experience) > 0 {
		lines = append(lines, "WORK EXPERIENCE", underline)
		for _, entry := range analysis.Experience {
			switch {
			case entry.Position != "" && entry.Company != "":
				lines = append(lines, entry.Position+" | "+entry.Company)
			case entry.Company != "":
				lines = append(lines, entry.Company)
			}
			if entry.Duration != "" {
				lines = append(lines, "Duration: "+entry.Duration)
			}
			limit := min(len(entry.Achievements), maxAchievements)
			for _, achievement := range entry.Achievements[:limit] {
				lines = append(lines, "  • "+types.CleanBullet(achievement))
			}
			lines = append(lines, "")
		}
	}

	if len(analysis.Education) > 0 {
		lines = append(lines, "EDUCATION", underline)
		for _, entry := range analysis.Education {
			var eduParts []string
			if entry.Degree != "" {
				eduParts = append(eduParts, entry.Degree)
			}
			if entry.Institution != "" {
				eduParts = append(eduParts, entry.Institution)
			}
			if len(eduParts) > 0 {
				lines = append(lines, strings.Join(eduParts, " | "))
			}
			if entry.Year != "" {
				lines = append(lines, "Year: "+entry.Year)
			}
			if entry.GPA != "" {
				lines = append(lines, "GPA: "+entry.GPA)
			}
			lines = append(lines, "")
		}
	}

	return strings.Join(lines, "\n")
}

// diagnosticBlock formats the degraded output: the failure reason plus a
// verbatim echo of the raw input, so the caller always receives something
// usable for manual recovery.
func diagnosticBlock(reason, rawInput string) string {
	return fmt.Sprintf(`RESUME GENERATION ERROR
=======================

An error occurred while assembling your resume: %s

Raw user information provided:
%s
`, reason, rawInput)
}
