package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/server"
)

var (
	servePort    int
	serveVerbose bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes resume generation over REST endpoints.

Without a GEMINI_API_KEY in the environment the server still runs; every
generation request uses the heuristic fallback assembler.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print diagnostic events")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := server.Config{
		Port:    servePort,
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		Verbose: serveVerbose,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
