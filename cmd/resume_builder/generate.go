package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/crew"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/observability"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a resume from career information",
	Long: `Reads unstructured career information and generates a formatted resume.

When an API key is available the multi-stage LLM process runs; otherwise the
deterministic heuristic assembler produces the resume. Configuration can be
loaded from a JSON file using --config; command-line arguments override
config file values.`,
	RunE: runGenerate,
}

var (
	genConfigPath string
	genInput      string
	genOutput     string
	genRole       string
	genAPIKey     string
	genVerbose    bool
)

func init() {
	generateCmd.Flags().StringVar(&genConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	generateCmd.Flags().StringVarP(&genInput, "input", "i", "", "Path to career information text file (use '-' for stdin)")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Path to write the resume to (default: stdout)")
	generateCmd.Flags().StringVarP(&genRole, "role", "r", "", "Target job role")
	generateCmd.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	generateCmd.Flags().StringVar(&genAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(cmd, genConfigPath)
	if err != nil {
		return err
	}

	if cfg.Input == "" {
		return fmt.Errorf("--input is required (or 'input' in the config file)")
	}

	userInfo, err := readInput(cfg.Input)
	if err != nil {
		return err
	}

	sink := observability.Sink(observability.NopSink{})
	if cfg.Verbose {
		sink = observability.LogSink{}
	}

	var client llm.Client
	if cfg.APIKey != "" {
		client, err = llm.NewClient(ctx, llmConfig(cfg), cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer client.Close()
	} else if cfg.Verbose {
		fmt.Fprintln(os.Stderr, "No API key found; using heuristic fallback assembly")
	}

	result := crew.Run(ctx, crew.RunOptions{
		UserInfo:   userInfo,
		TargetRole: cfg.Role,
		Client:     client,
		Sink:       sink,
	})

	if cfg.Verbose && result.Source == crew.SourceFallback {
		fmt.Fprintf(os.Stderr, "Fallback assembly used: %s\n", result.FallbackReason)
	}
	if cfg.Verbose && len(result.MissingSections) > 0 {
		fmt.Fprintf(os.Stderr, "Warning: resume is missing sections: %v\n", result.MissingSections)
	}

	return writeOutput(cfg.Output, result.Resume)
}

// loadMergedConfig loads the optional config file and applies CLI overrides.
// Flags that were explicitly set take priority over config file values.
func loadMergedConfig(cmd *cobra.Command, path string) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("input") {
		cfg.Input = genInput
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = genOutput
	}
	if cmd.Flags().Changed("role") {
		cfg.Role = genRole
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = genAPIKey
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = genVerbose
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		APIKey: os.Getenv("GEMINI_API_KEY"),
	})

	return cfg, nil
}

// llmConfig builds the LLM configuration, applying the optional model
// override for the standard tier.
func llmConfig(cfg config.Config) *llm.Config {
	llmCfg := llm.DefaultConfig()
	if cfg.Model != "" {
		llmCfg.Models[llm.TierStandard] = cfg.Model
	}
	return llmCfg
}

// readInput reads the career information file; "-" means stdin.
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file %s: %w", path, err)
	}
	return string(data), nil
}

// writeOutput writes the resume to the output path, or stdout when empty.
func writeOutput(path, resume string) error {
	if path == "" {
		fmt.Println(resume)
		return nil
	}

	if err := os.WriteFile(path, []byte(resume), 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	fmt.Printf("Resume written to %s\n", path)
	return nil
}
