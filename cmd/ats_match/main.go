// Package main provides the entry point for the ATS match analyzer CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/ats-match/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "ats_match",
	Short: "ATS resume match analyzer",
	Long:  "Scores resumes against job descriptions the way applicant tracking systems do, with skill gap analysis and improvement suggestions, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveConfig loads the optional config file, overlays environment
// variables and returns the result with defaults applied.
func resolveConfig(path string) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	cfg.FromEnv()
	cfg = cfg.MergeWithDefaults(config.Config{
		InferenceTimeoutSeconds: config.DefaultInferenceTimeoutSeconds,
		InferenceMaxRetries:     config.DefaultInferenceMaxRetries,
		ListenAddr:              config.DefaultListenAddr,
	})
	return cfg, nil
}
