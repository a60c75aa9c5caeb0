// Package crew orchestrates the multi-stage LLM resume generation process:
// a content-analysis stage, a writing stage and a formatting stage run
// sequentially over an LLM client, degrading to the heuristic fallback
// assembler whenever any stage fails.
package crew

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/contact"
	"github.com/jonathan/resume-builder/internal/education"
	"github.com/jonathan/resume-builder/internal/experience"
	"github.com/jonathan/resume-builder/internal/fallback"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/prompts"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/skills"
	"github.com/jonathan/resume-builder/internal/summary"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/validation"
)

// Generation sources reported in Result.Source.
const (
	SourceCrew     = "crew"
	SourceFallback = "fallback"
)

// DefaultTargetRole substitutes for an omitted target role, so prompts and
// summary phrasing never render an empty role name.
const DefaultTargetRole = "Professional"

// RunOptions holds configuration for one generation run.
type RunOptions struct {
	UserInfo   string
	TargetRole string

	// Client runs the LLM stages. When nil, generation goes straight to the
	// fallback assembler.
	Client llm.Client

	// Sink receives diagnostic events; nil means events are discarded.
	Sink observability.Sink
}

// Result is the outcome of a generation run. Resume is always non-empty.
type Result struct {
	Resume string
	Source string

	// FallbackReason explains the degradation when Source is "fallback".
	FallbackReason string

	// MissingSections lists required resume sections the crew output did
	// not mention. Informational only.
	MissingSections []string
}

// Run generates a resume for the given career text and target role. It
// never fails: when the crew stages error out for any reason, the heuristic
// fallback assembler produces the result instead.
func Run(ctx context.Context, opts RunOptions) Result {
	sink := observability.OrNop(opts.Sink)

	if opts.TargetRole == "" {
		opts.TargetRole = DefaultTargetRole
	}

	if opts.Client == nil {
		return runFallback(sink, opts, "no LLM client configured")
	}

	content, err := runStages(ctx, opts, sink)
	if err != nil {
		sink.Event("crew", fmt.Sprintf("degrading to fallback: %v", err))
		return runFallback(sink, opts, err.Error())
	}

	return Result{
		Resume:          content,
		Source:          SourceCrew,
		MissingSections: validation.MissingSections(content),
	}
}

func runFallback(sink observability.Sink, opts RunOptions, reason string) Result {
	assembler := fallback.NewAssembler(sink)
	return Result{
		Resume:         assembler.Assemble(opts.UserInfo, opts.TargetRole),
		Source:         SourceFallback,
		FallbackReason: reason,
	}
}

// runStages executes the analyze, write and format stages in sequence.
func runStages(ctx context.Context, opts RunOptions, sink observability.Sink) (string, error) {
	analysis := ExtractAnalysis(ctx, opts.UserInfo, sink)
	professionalSummary := summary.NewGenerator(sink).Generate(opts.UserInfo, opts.TargetRole, nil)

	refined, err := runAnalyzeStage(ctx, opts, analysis)
	if err != nil {
		return "", err
	}

	content, err := runWriteStage(ctx, opts, refined, professionalSummary)
	if err != nil {
		return "", err
	}

	formatted, err := runFormatStage(ctx, opts, content)
	if err != nil {
		return "", err
	}

	return formatted, nil
}

// ExtractAnalysis runs the four extractors over text. The extractors are
// pure functions of the text, so they run concurrently.
func ExtractAnalysis(ctx context.Context, text string, sink observability.Sink) types.Analysis {
	var analysis types.Analysis

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		analysis.Contact = contact.NewExtractor(sink).Extract(text)
		return nil
	})
	g.Go(func() error {
		analysis.Experience = experience.NewExtractor(sink).Extract(text)
		return nil
	})
	g.Go(func() error {
		analysis.Skills = skills.NewExtractor(sink).Extract(text)
		return nil
	})
	g.Go(func() error {
		analysis.Education = education.NewExtractor(sink).Extract(text)
		return nil
	})
	_ = g.Wait() // extractors never fail

	return analysis
}

// runAnalyzeStage asks the LLM to refine the heuristic extraction. The JSON
// response must conform to the analysis schema; anything else is a stage
// fault.
func runAnalyzeStage(ctx context.Context, opts RunOptions, heuristic types.Analysis) (types.Analysis, error) {
	extractionJSON, err := json.MarshalIndent(heuristic, "", "  ")
	if err != nil {
		return types.Analysis{}, &StageError{Stage: "analyze", Cause: err}
	}

	prompt := prompts.Format(prompts.MustGet("crew.json", "analyze"), map[string]string{
		"Role":       opts.TargetRole,
		"UserInfo":   opts.UserInfo,
		"Extraction": string(extractionJSON),
	})

	response, err := opts.Client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return types.Analysis{}, &StageError{Stage: "analyze", Cause: err}
	}

	if err := schemas.ValidateAnalysis(response); err != nil {
		return types.Analysis{}, &StageError{Stage: "analyze", Cause: err}
	}

	var refined types.Analysis
	if err := json.Unmarshal([]byte(response), &refined); err != nil {
		return types.Analysis{}, &StageError{Stage: "analyze", Cause: err}
	}

	return refined, nil
}

// runWriteStage turns the refined analysis into resume content.
func runWriteStage(ctx context.Context, opts RunOptions, analysis types.Analysis, professionalSummary string) (string, error) {
	analysisJSON, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return "", &StageError{Stage: "write", Cause: err}
	}

	prompt := prompts.Format(prompts.MustGet("crew.json", "write"), map[string]string{
		"Role":     opts.TargetRole,
		"Analysis": string(analysisJSON),
		"Summary":  professionalSummary,
	})

	content, err := opts.Client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return "", &StageError{Stage: "write", Cause: err}
	}
	if strings.TrimSpace(content) == "" {
		return "", &StageError{Stage: "write", Cause: fmt.Errorf("empty resume content")}
	}

	return content, nil
}

// runFormatStage cleans up the final document layout.
func runFormatStage(ctx context.Context, opts RunOptions, content string) (string, error) {
	prompt := prompts.Format(prompts.MustGet("crew.json", "format"), map[string]string{
		"Content": content,
	})

	formatted, err := opts.Client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return "", &StageError{Stage: "format", Cause: err}
	}
	if strings.TrimSpace(formatted) == "" {
		return "", &StageError{Stage: "format", Cause: fmt.Errorf("empty formatted content")}
	}

	return formatted, nil
}
