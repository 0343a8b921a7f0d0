package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/ats-match/internal/analyzer"
	"github.com/jonathan/ats-match/internal/config"
	"github.com/jonathan/ats-match/internal/db"
	"github.com/jonathan/ats-match/internal/llm"
	"github.com/jonathan/ats-match/internal/logger"
	"github.com/jonathan/ats-match/internal/rewrite"
	"github.com/jonathan/ats-match/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes REST endpoints for match analysis,
document storage and resume rewriting.

JWT_SECRET must be set for session cookies. DATABASE_URL enables persistence;
without it the document and stored-analysis endpoints return 503.`,
	RunE: runServe,
}

var (
	serveConfigPath string
	serveAddr       string
	serveUseBrowser bool
	serveVerbose    bool
	serveJSONLogs   bool
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (defaults to LISTEN_ADDR or :8080)")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print detailed debug information")
	serveCmd.Flags().BoolVar(&serveJSONLogs, "json-logs", false, "Emit logs as JSON")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.ListenAddr = serveAddr
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = serveUseBrowser
	}
	cfg.Verbose = cfg.Verbose || serveVerbose
	cfg.JSONLogs = cfg.JSONLogs || serveJSONLogs
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return fmt.Errorf("failed to create JWT config: %w", err)
	}

	var database *db.DB
	if cfg.DatabaseURL != "" {
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	} else {
		log.Warn("no database configured, persistence endpoints disabled")
	}

	analyzerOpts := []analyzer.Option{analyzer.WithLogger(log)}
	if database != nil {
		analyzerOpts = append(analyzerOpts, analyzer.WithStore(database))
	}
	matchAnalyzer := analyzer.New(buildClassifier(cfg), analyzerOpts...)

	var generator llm.Generator
	if cfg.GeminiAPIKey != "" {
		generator, err = llm.NewGenerator(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
		if err != nil {
			return fmt.Errorf("failed to create generator: %w", err)
		}
		defer func() { _ = generator.Close() }()
	} else {
		log.Info("no generation API key, rewrite runs locally")
	}
	rewriter := rewrite.NewRewriter(generator, rewrite.WithLogger(log))

	srv, err := server.New(server.Config{
		Addr:       cfg.ListenAddr,
		JWT:        jwtConfig,
		UseBrowser: cfg.UseBrowser,
	}, matchAnalyzer, rewriter, database, log)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	log.Info("configuration resolved",
		zap.String("addr", cfg.ListenAddr),
		zap.Bool("database", database != nil),
		zap.Bool("remote_inference", cfg.InferenceURL != ""),
		zap.Bool("generation", generator != nil))

	return srv.Start()
}
