// Package summary composes a synthetic professional-summary sentence from
// extracted career data and a target role.
package summary

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/education"
	"github.com/jonathan/resume-builder/internal/experience"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/skills"
	"github.com/jonathan/resume-builder/internal/types"
)

// Tier is an experience-level bucket used to select summary phrasing.
type Tier string

// Experience-level tiers in ascending order.
const (
	TierEntry     Tier = "Entry-level"
	TierJunior    Tier = "Junior"
	TierMid       Tier = "Mid-level"
	TierSenior    Tier = "Senior"
	TierExecutive Tier = "Executive"
)

// TierForYears maps accumulated years of experience to a tier.
func TierForYears(years int) Tier {
	switch {
	case years == 0:
		return TierEntry
	case years <= 3:
		return TierJunior
	case years <= 7:
		return TierMid
	case years <= 12:
		return TierSenior
	default:
		return TierExecutive
	}
}

// roleCategory pairs a role keyword with the skill keywords considered
// relevant for that kind of role. Categories are matched in listed order
// against the lower-cased target role; the first matching key wins.
type roleCategory struct {
	key      string
	keywords []string
}

var roleCategories = []roleCategory{
	{"software", []string{"python", "javascript", "java", "react", "nodejs", "sql", "git", "aws"}},
	{"data", []string{"python", "sql", "machine learning", "analytics", "statistics", "pandas", "numpy"}},
	{"marketing", []string{"digital marketing", "seo", "social media", "analytics", "content creation"}},
	{"product", []string{"product management", "agile", "scrum", "user experience", "analytics"}},
	{"sales", []string{"sales", "crm", "negotiation", "communication", "relationship building"}},
	{"design", []string{"ui/ux", "figma", "adobe", "prototyping", "user research"}},
	{"finance", []string{"financial analysis", "excel", "modeling", "accounting", "budgeting"}},
	{"project", []string{"project management", "agile", "scrum", "leadership", "communication"}},
}

var (
	yearPattern       = regexp.MustCompile(`(?:19|20)\d{2}`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Generator composes professional summaries. Generation is best-effort and
// never fails: on an internal fault a generic sentence referencing the
// target role is returned.
type Generator struct {
	experience *experience.Extractor
	skills     *skills.Extractor
	education  *education.Extractor
	events     observability.Sink
	now        func() time.Time
}

// NewGenerator creates a Generator backed by the default extractors.
func NewGenerator(sink observability.Sink) *Generator {
	return &Generator{
		experience: experience.NewExtractor(sink),
		skills:     skills.NewExtractor(sink),
		education:  education.NewExtractor(sink),
		events:     observability.OrNop(sink),
		now:        time.Now,
	}
}

// WithClock overrides the clock used to resolve open-ended "Present"
// durations. Intended for tests.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Generate runs the extractors over text and composes the summary for the
// target role. When yearsExperience is nil, years are derived by summing the
// span of each entry's duration; overlapping concurrent roles are counted
// twice (known limitation, kept for parity with the documented behavior).
func (g *Generator) Generate(text, targetRole string, yearsExperience *int) (result string) {
	defer func() {
		if r := recover(); r != nil {
			g.events.Event("summary", fmt.Sprintf("recovered from generation fault: %v", r))
			result = GenericSummary(targetRole)
		}
	}()

	skillSet := g.skills.Extract(text)
	entries := g.experience.Extract(text)
	educationEntries := g.education.Extract(text)

	years := 0
	if yearsExperience != nil {
		years = *yearsExperience
	} else {
		years = g.deriveYears(entries)
	}
	tier := TierForYears(years)

	relevant := relevantSkills(skillSet, targetRole)

	var sb strings.Builder
	sb.WriteString(openingSentence(tier, targetRole, years))
	sb.WriteString(".")
	sb.WriteString(skillsSentence(relevant))
	sb.WriteString(achievementsSentence(entries))
	sb.WriteString(educationSentence(educationEntries))
	sb.WriteString(" ")
	sb.WriteString(valueProposition(tier))

	return strings.TrimSpace(whitespacePattern.ReplaceAllString(sb.String(), " "))
}

// GenericSummary is the degraded output used when composition faults.
func GenericSummary(targetRole string) string {
	return fmt.Sprintf("Professional with experience in %s seeking to leverage skills and expertise to drive organizational success.", targetRole)
}

// deriveYears sums the last-minus-first year of each entry's duration. Only
// durations carrying at least two 4-digit years count; a duration mentioning
// "present" resolves the pair's end year to the current year.
func (g *Generator) deriveYears(entries []types.ExperienceEntry) int {
	currentYear := g.now().Year()

	years := 0
	for _, entry := range entries {
		if entry.Duration == "" {
			continue
		}
		found := yearPattern.FindAllString(entry.Duration, -1)
		if len(found) < 2 {
			continue
		}
		start, _ := strconv.Atoi(found[0])
		end, _ := strconv.Atoi(found[len(found)-1])
		if strings.Contains(strings.ToLower(entry.Duration), "present") {
			end = currentYear
		}
		years += end - start
	}
	return years
}

// relevantSkills filters the extracted skills by the role's category
// keywords, falling back to the first six extracted skills when no category
// matches or nothing survives the filter.
func relevantSkills(skillSet []string, targetRole string) []string {
	roleLower := strings.ToLower(targetRole)

	var relevant []string
	for _, category := range roleCategories {
		if !strings.Contains(roleLower, category.key) {
			continue
		}
		for _, skill := range skillSet {
			skillLower := strings.ToLower(skill)
			for _, keyword := range category.keywords {
				if strings.Contains(skillLower, keyword) {
					relevant = append(relevant, skill)
					break
				}
			}
		}
		break
	}

	if len(relevant) == 0 {
		if len(skillSet) > 6 {
			return skillSet[:6]
		}
		return skillSet
	}
	return relevant
}

func openingSentence(tier Tier, targetRole string, years int) string {
	switch tier {
	case TierEntry:
		return fmt.Sprintf("Recent graduate and aspiring %s with strong foundational knowledge", targetRole)
	case TierJunior:
		return fmt.Sprintf("Motivated %s with %d years of experience", targetRole, years)
	case TierMid:
		return fmt.Sprintf("Experienced %s with %d years of proven expertise", targetRole, years)
	case TierSenior:
		return fmt.Sprintf("Senior %s with %d+ years of comprehensive experience", targetRole, years)
	case TierExecutive:
		return fmt.Sprintf("Executive-level %s with %d+ years of strategic leadership", targetRole, years)
	default:
		return fmt.Sprintf("Skilled %s with extensive experience", targetRole)
	}
}

func skillsSentence(relevant []string) string {
	if len(relevant) == 0 {
		return ""
	}
	top := relevant
	if len(top) > 5 {
		top = top[:5]
	}
	if len(top) == 1 {
		return fmt.Sprintf(" Skilled in %s.", top[0])
	}
	return fmt.Sprintf(" Proficient in %s, and %s.", strings.Join(top[:len(top)-1], ", "), top[len(top)-1])
}

// achievementsSentence renders up to two recent achievements, one from each
// of the first two experience entries, lower-cased with bullet markers
// stripped.
func achievementsSentence(entries []types.ExperienceEntry) string {
	var recent []string
	limit := min(len(entries), 2)
	for _, entry := range entries[:limit] {
		if len(entry.Achievements) > 0 {
			recent = append(recent, strings.ToLower(types.CleanBullet(entry.Achievements[0])))
		}
	}

	if len(recent) == 0 {
		return ""
	}
	sentence := fmt.Sprintf(" Demonstrated success in %s", recent[0])
	if len(recent) > 1 {
		sentence += fmt.Sprintf(" and %s", recent[1])
	}
	return sentence + "."
}

func educationSentence(entries []types.EducationEntry) string {
	if len(entries) == 0 {
		return ""
	}
	top := entries[0]
	if top.Degree == "" || top.Institution == "" {
		return ""
	}
	return fmt.Sprintf(" Holds %s from %s.", top.Degree, top.Institution)
}

func valueProposition(tier Tier) string {
	switch tier {
	case TierEntry:
		return "Eager to contribute fresh perspectives and technical skills to drive innovation and growth."
	case TierJunior:
		return "Committed to delivering high-quality results and contributing to team success."
	case TierMid:
		return "Proven ability to lead projects and mentor junior team members while delivering measurable results."
	case TierSenior:
		return "Expert in driving strategic initiatives and leading cross-functional teams to achieve organizational goals."
	case TierExecutive:
		return "Visionary leader with a track record of transforming organizations and driving sustainable growth."
	default:
		return "Dedicated to delivering exceptional results and driving continuous improvement."
	}
}
