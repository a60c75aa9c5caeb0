package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintContactInfo outputs a human-readable summary of extracted contact details.
func (p *Printer) PrintContactInfo(contact types.ContactInfo) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", orDash(contact.Name)))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", orDash(contact.Email)))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", orDash(contact.Phone)))
	sb.WriteString(fmt.Sprintf("Address:  %s\n", orDash(contact.Address)))
	sb.WriteString(fmt.Sprintf("LinkedIn: %s\n", orDash(contact.LinkedIn)))
	sb.WriteString(fmt.Sprintf("GitHub:   %s", orDash(contact.GitHub)))

	p.printBox("CONTACT INFO", sb.String())
}

// PrintExperience outputs the extracted experience entries with their bullet counts.
func (p *Printer) PrintExperience(entries []types.ExperienceEntry) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder

	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := entries[i]
		sb.WriteString(fmt.Sprintf("• %s", entry.Company))
		if entry.Position != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", entry.Position))
		}
		sb.WriteString("\n")
		if entry.Duration != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", entry.Duration))
		}
		sb.WriteString(fmt.Sprintf("  %d achievement(s)\n", len(entry.Achievements)))
	}
	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(entries)-maxItemsToShow))
	}

	p.printBox("WORK EXPERIENCE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkills outputs the flattened skill set.
func (p *Printer) PrintSkills(skills []string) {
	if len(skills) == 0 {
		return
	}

	var sb strings.Builder

	count := min(len(skills), maxItemsToShow*2)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("• %s\n", skills[i]))
	}
	if len(skills) > count {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(skills)-count))
	}

	p.printBox("SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEducation outputs the extracted education entries.
func (p *Printer) PrintEducation(entries []types.EducationEntry) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder

	for _, entry := range entries {
		sb.WriteString(fmt.Sprintf("• %s", orDash(entry.Degree)))
		if entry.Institution != "" {
			sb.WriteString(fmt.Sprintf(", %s", entry.Institution))
		}
		if entry.Year != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", entry.Year))
		}
		sb.WriteString("\n")
	}

	p.printBox("EDUCATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummary outputs the generated professional summary.
func (p *Printer) PrintSummary(summary string) {
	p.printBox("PROFESSIONAL SUMMARY", summary)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
