package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/ats-match/internal/ingestion"
	"github.com/jonathan/ats-match/internal/llm"
	"github.com/jonathan/ats-match/internal/logger"
	"github.com/jonathan/ats-match/internal/rewrite"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite",
	Short: "Rewrite a resume to better match a job description",
	Long: `Produces an improved version of the resume for the given job posting
and prints it to stdout.

With GEMINI_API_KEY set the rewrite uses the generation model; otherwise the
missing skills are appended locally.`,
	RunE: runRewriteCmd,
}

var (
	rewriteConfigPath string
	rewriteResume     string
	rewriteJob        string
	rewriteJobURL     string
	rewriteUseBrowser bool
	rewriteVerbose    bool
)

func init() {
	rewriteCmd.Flags().StringVar(&rewriteConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rewriteCmd.Flags().StringVarP(&rewriteResume, "resume", "r", "", "Path to resume text file")
	rewriteCmd.Flags().StringVarP(&rewriteJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	rewriteCmd.Flags().StringVar(&rewriteJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	rewriteCmd.Flags().BoolVar(&rewriteUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	rewriteCmd.Flags().BoolVarP(&rewriteVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(rewriteCmd)
}

func runRewriteCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(rewriteConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("resume") {
		cfg.Resume = rewriteResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = rewriteJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = rewriteJobURL
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = rewriteUseBrowser
	}
	cfg.Verbose = cfg.Verbose || rewriteVerbose
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

	var generator llm.Generator
	if cfg.GeminiAPIKey != "" {
		generator, err = llm.NewGenerator(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
		if err != nil {
			return fmt.Errorf("failed to create generator: %w", err)
		}
		defer func() { _ = generator.Close() }()
	}

	rewriter := rewrite.NewRewriter(generator, rewrite.WithLogger(log))
	improved, provenance, err := rewriter.Improve(ctx, resumeText, jobText)
	if err != nil {
		return fmt.Errorf("rewrite failed: %w", err)
	}

	log.Debug("rewrite complete", zap.String("provenance", string(provenance)))
	fmt.Println(improved)
	return nil
}
