package crew

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/llm"
)

const validAnalysisJSON = `{
	"contact": {"name": "John Smith", "email": "john@email.com", "phone": "", "address": "", "linkedin": "", "github": ""},
	"experience": [{"company": "TechCorp Inc", "position": "Engineer"}],
	"skills": ["Python"],
	"education": []
}`

const completeResume = `CONTACT
John Smith

SUMMARY
An experienced engineer.

EXPERIENCE
TechCorp Inc

SKILLS
Python

EDUCATION
Stanford`

// stubClient scripts the LLM stages for tests.
type stubClient struct {
	jsonResponse string
	jsonErr      error

	contentResponses []string
	contentErr       error
	contentCalls     int
}

func (s *stubClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	if s.contentErr != nil {
		return "", s.contentErr
	}
	if s.contentCalls >= len(s.contentResponses) {
		return "", errors.New("unexpected GenerateContent call")
	}
	response := s.contentResponses[s.contentCalls]
	s.contentCalls++
	return response, nil
}

func (s *stubClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return s.jsonResponse, s.jsonErr
}

func (s *stubClient) Close() error { return nil }

const userInfo = `John Smith
john@email.com

Experience
TechCorp Inc
• Built things

Skills
Python`

func TestRun_NilClientUsesFallback(t *testing.T) {
	result := Run(context.Background(), RunOptions{
		UserInfo:   userInfo,
		TargetRole: "Software Engineer",
	})

	assert.Equal(t, SourceFallback, result.Source)
	assert.Equal(t, "no LLM client configured", result.FallbackReason)
	assert.Contains(t, result.Resume, "John Smith")
}

func TestRun_AllStagesSucceed(t *testing.T) {
	client := &stubClient{
		jsonResponse:     validAnalysisJSON,
		contentResponses: []string{"draft resume content", completeResume},
	}

	result := Run(context.Background(), RunOptions{
		UserInfo:   userInfo,
		TargetRole: "Software Engineer",
		Client:     client,
	})

	assert.Equal(t, SourceCrew, result.Source)
	assert.Equal(t, completeResume, result.Resume)
	assert.Empty(t, result.FallbackReason)
	assert.Empty(t, result.MissingSections)
}

func TestRun_ReportsMissingSections(t *testing.T) {
	client := &stubClient{
		jsonResponse:     validAnalysisJSON,
		contentResponses: []string{"draft", "Summary and skills and experience only"},
	}

	result := Run(context.Background(), RunOptions{
		UserInfo: userInfo,
		Client:   client,
	})

	assert.Equal(t, SourceCrew, result.Source)
	assert.ElementsMatch(t, []string{"contact", "education"}, result.MissingSections)
}

func TestRun_AnalyzeFailureDegradesToFallback(t *testing.T) {
	client := &stubClient{jsonErr: errors.New("quota exceeded")}

	result := Run(context.Background(), RunOptions{
		UserInfo: userInfo,
		Client:   client,
	})

	assert.Equal(t, SourceFallback, result.Source)
	assert.Contains(t, result.FallbackReason, "analyze stage failed")
	assert.Contains(t, result.Resume, "John Smith")
}

func TestRun_SchemaViolationDegradesToFallback(t *testing.T) {
	client := &stubClient{jsonResponse: `{"contact": {}, "unexpected": true}`}

	result := Run(context.Background(), RunOptions{
		UserInfo: userInfo,
		Client:   client,
	})

	assert.Equal(t, SourceFallback, result.Source)
	assert.Contains(t, result.FallbackReason, "analyze stage failed")
}

func TestRun_EmptyWriteOutputDegradesToFallback(t *testing.T) {
	client := &stubClient{
		jsonResponse:     validAnalysisJSON,
		contentResponses: []string{"   ", "unused"},
	}

	result := Run(context.Background(), RunOptions{
		UserInfo: userInfo,
		Client:   client,
	})

	assert.Equal(t, SourceFallback, result.Source)
	assert.Contains(t, result.FallbackReason, "write stage failed")
}

func TestRun_FormatFailureDegradesToFallback(t *testing.T) {
	client := &stubClient{
		jsonResponse:     validAnalysisJSON,
		contentResponses: []string{"draft resume content", ""},
	}

	result := Run(context.Background(), RunOptions{
		UserInfo: userInfo,
		Client:   client,
	})

	assert.Equal(t, SourceFallback, result.Source)
	assert.Contains(t, result.FallbackReason, "format stage failed")
}

func TestRun_EmptyTargetRoleDefaultsToProfessional(t *testing.T) {
	result := Run(context.Background(), RunOptions{UserInfo: "Skills\nPython"})

	assert.Equal(t, SourceFallback, result.Source)
	assert.Contains(t, result.Resume, "aspiring Professional")
}

func TestRun_NeverReturnsEmptyResume(t *testing.T) {
	result := Run(context.Background(), RunOptions{UserInfo: ""})

	assert.NotEmpty(t, result.Resume)
}

func TestExtractAnalysis_PopulatesAllFields(t *testing.T) {
	analysis := ExtractAnalysis(context.Background(), userInfo, nil)

	assert.Equal(t, "John Smith", analysis.Contact.Name)
	require.Len(t, analysis.Experience, 1)
	assert.Equal(t, "TechCorp Inc", analysis.Experience[0].Company)
	assert.Equal(t, []string{"Python"}, analysis.Skills)
	assert.Empty(t, analysis.Education)
}
