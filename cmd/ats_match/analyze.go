package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/ats-match/internal/analyzer"
	"github.com/jonathan/ats-match/internal/config"
	"github.com/jonathan/ats-match/internal/ingestion"
	"github.com/jonathan/ats-match/internal/llm"
	"github.com/jonathan/ats-match/internal/logger"
	"github.com/jonathan/ats-match/internal/schemas"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a job description",
	Long: `Runs a one-shot match analysis and prints the result as JSON.

The job description can be given as a text file with --job or fetched from a
posting URL with --job-url. Configuration can be loaded from a JSON file
using --config; command-line arguments override config file values.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath string
	analyzeResume     string
	analyzeJob        string
	analyzeJobURL     string
	analyzeUseBrowser bool
	analyzeVerbose    bool
	analyzeJSONLogs   bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume text file")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")
	analyzeCmd.Flags().BoolVar(&analyzeJSONLogs, "json-logs", false, "Emit logs as JSON")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(analyzeConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("resume") {
		cfg.Resume = analyzeResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = analyzeJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = analyzeJobURL
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = analyzeUseBrowser
	}
	cfg.Verbose = cfg.Verbose || analyzeVerbose
	cfg.JSONLogs = cfg.JSONLogs || analyzeJSONLogs
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required")
	}
	resumeData, err := os.ReadFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}
	resumeText := ingestion.CleanText(string(resumeData))

	jobText, err := loadJobText(ctx, cfg.Job, cfg.JobURL, cfg.UseBrowser, log)
	if err != nil {
		return err
	}

	matchAnalyzer := analyzer.New(buildClassifier(cfg), analyzer.WithLogger(log))
	result, err := matchAnalyzer.Analyze(ctx, resumeText, jobText)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	if err := schemas.ValidateAnalysisResult(data); err != nil {
		log.Warn("result failed schema validation", zap.Error(err))
	}

	fmt.Println(string(data))
	return nil
}

// loadJobText reads the job description from a file or ingests it from a
// posting URL. Exactly one source must be given.
func loadJobText(ctx context.Context, jobPath, jobURL string, useBrowser bool, log *zap.Logger) (string, error) {
	switch {
	case jobPath != "":
		data, err := os.ReadFile(jobPath)
		if err != nil {
			return "", fmt.Errorf("failed to read job posting: %w", err)
		}
		return ingestion.CleanText(string(data)), nil
	case jobURL != "":
		text, err := ingestion.FromURL(ctx, jobURL, ingestion.URLOptions{
			UseBrowser: useBrowser,
			Logger:     log,
		})
		if err != nil {
			return "", fmt.Errorf("failed to ingest job posting: %w", err)
		}
		return text, nil
	default:
		return "", fmt.Errorf("--job or --job-url is required")
	}
}

// buildClassifier returns the remote zero-shot classifier when an inference
// endpoint is configured, or nil to run fully local.
func buildClassifier(cfg config.Config) llm.Classifier {
	if cfg.InferenceURL == "" {
		return nil
	}
	return llm.NewInferenceClient(cfg.InferenceURL, cfg.InferenceAPIKey,
		llm.WithMaxAttempts(cfg.InferenceMaxRetries),
		llm.WithAttemptTimeout(time.Duration(cfg.InferenceTimeoutSeconds)*time.Second))
}
