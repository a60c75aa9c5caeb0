package fallback

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

const careerText = `John Smith
john@email.com
(555) 123-4567
linkedin.com/in/johnsmith

Experience
Software Engineer
TechCorp Inc
2020 - 2023
• Led a team of 5 engineers
• Shipped three major releases
• Cut build times in half
• Rewrote the billing system

Skills
Python, JavaScript, Docker, Git, Leadership

Education
Bachelor of Science in Computer Science
Stanford University
2020
GPA: 3.8`

func TestAssemble_FullResume(t *testing.T) {
	resume := NewAssembler(nil).Assemble(careerText, "Software Engineer")

	assert.Contains(t, resume, strings.Repeat("=", 60))
	assert.Contains(t, resume, "  John Smith")
	assert.Contains(t, resume, "Email: john@email.com | Phone: (555) 123-4567")
	assert.Contains(t, resume, "LinkedIn: linkedin.com/in/johnsmith")
	assert.Contains(t, resume, "PROFESSIONAL SUMMARY")
	assert.Contains(t, resume, "SKILLS")
	assert.Contains(t, resume, "WORK EXPERIENCE")
	assert.Contains(t, resume, "Software Engineer | TechCorp Inc")
	assert.Contains(t, resume, "Duration: 2020 - 2023")
	assert.Contains(t, resume, "EDUCATION")
	assert.Contains(t, resume, "Bachelor of Science in Computer Science | Stanford University")
	assert.Contains(t, resume, "Year: 2020")
	assert.Contains(t, resume, "GPA: 3.8")
}

func TestAssemble_AchievementsCappedAtThree(t *testing.T) {
	resume := NewAssembler(nil).Assemble(careerText, "Software Engineer")

	assert.Contains(t, resume, "  • Led a team of 5 engineers")
	assert.Contains(t, resume, "  • Shipped three major releases")
	assert.Contains(t, resume, "  • Cut build times in half")
	assert.NotContains(t, resume, "Rewrote the billing system")
}

func TestAssemble_EmptyInputStillProducesDocument(t *testing.T) {
	resume := NewAssembler(nil).Assemble("", "Software Engineer")

	assert.Contains(t, resume, "PROFESSIONAL SUMMARY")
	assert.NotContains(t, resume, "WORK EXPERIENCE")
	assert.NotContains(t, resume, "EDUCATION")
}

func TestAssemble_Idempotent(t *testing.T) {
	a := NewAssembler(nil)

	first := a.Assemble(careerText, "Software Engineer")
	second := a.Assemble(careerText, "Software Engineer")

	assert.Equal(t, first, second)
}

func TestRender_SkillsRowsOfFour(t *testing.T) {
	analysis := types.Analysis{
		Skills: []string{"A1", "B2", "C3", "D4", "E5"},
	}

	resume := Render(analysis, "A summary.")

	assert.Contains(t, resume, "A1 • B2 • C3 • D4")
	assert.Contains(t, resume, "\nE5\n")
}

func TestRender_CompanyWithoutPosition(t *testing.T) {
	analysis := types.Analysis{
		Experience: []types.ExperienceEntry{{Company: "Acme Corp"}},
	}

	resume := Render(analysis, "A summary.")

	require.Contains(t, resume, "WORK EXPERIENCE")
	assert.Contains(t, resume, "\nAcme Corp\n")
	assert.NotContains(t, resume, "| Acme Corp")
}

func TestRender_BulletMarkersStripped(t *testing.T) {
	analysis := types.Analysis{
		Experience: []types.ExperienceEntry{{
			Company:      "Acme Corp",
			Achievements: []string{"- Dashed achievement", "* Starred achievement"},
		}},
	}

	resume := Render(analysis, "A summary.")

	assert.Contains(t, resume, "  • Dashed achievement")
	assert.Contains(t, resume, "  • Starred achievement")
}

func TestDiagnosticBlock_EmbedsRawInput(t *testing.T) {
	block := diagnosticBlock("something broke", "raw career text")

	assert.Contains(t, block, "RESUME GENERATION ERROR")
	assert.Contains(t, block, "something broke")
	assert.Contains(t, block, "raw career text")
}
