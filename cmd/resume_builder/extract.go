package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/crew"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/summary"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Run heuristic extraction without generating a resume",
	Long: `Runs the contact, experience, skills and education extractors plus the
summary generator over the input and prints what they found. No LLM calls
are made; this shows exactly what the fallback assembler would work with.`,
	RunE: runExtract,
}

var (
	extractInput   string
	extractRole    string
	extractVerbose bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractInput, "input", "i", "", "Path to career information text file (use '-' for stdin)")
	extractCmd.Flags().StringVarP(&extractRole, "role", "r", "", "Target job role")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print diagnostic events")
	_ = extractCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	userInfo, err := readInput(extractInput)
	if err != nil {
		return err
	}

	sink := observability.Sink(observability.NopSink{})
	if extractVerbose {
		sink = observability.LogSink{}
	}

	role := extractRole
	if role == "" {
		role = crew.DefaultTargetRole
	}

	analysis := crew.ExtractAnalysis(context.Background(), userInfo, sink)
	professionalSummary := summary.NewGenerator(sink).Generate(userInfo, role, nil)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintContactInfo(analysis.Contact)
	printer.PrintExperience(analysis.Experience)
	printer.PrintSkills(analysis.Skills)
	printer.PrintEducation(analysis.Education)
	printer.PrintSummary(professionalSummary)

	fmt.Printf("\nExtracted %d experience entries, %d skills, %d education entries\n",
		len(analysis.Experience), len(analysis.Skills), len(analysis.Education))

	return nil
}
