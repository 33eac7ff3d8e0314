package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/passforge/passforge/internal/config"
	"github.com/passforge/passforge/internal/database"
	"github.com/passforge/passforge/internal/log"
	"github.com/passforge/passforge/internal/model"
	"github.com/passforge/passforge/internal/pipeline"
	"github.com/passforge/passforge/internal/report"
	"github.com/passforge/passforge/internal/wordlist"
	"github.com/spf13/cobra"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [password...]",
		Short: "Analyze password strength",
		Long: `Analyze scores one or more passwords and reports their strength.

Each password is checked against:
- zxcvbn pattern matching (dictionary words, keyboard walks, dates, repeats)
- An embedded breached-password list
- Character-class entropy estimation with crack-time scenarios per attacker

Hints passed with --user-inputs are treated as an attacker-known dictionary,
so passwords derived from personal information score accordingly lower.

Plaintext passwords never appear in logs, reports, or the history database.

Examples:
  # Analyze a single password
  passforge analyze 'Tr0ub4dor&3'

  # Analyze with personal hints treated as known to the attacker
  passforge analyze --user-inputs fluffy,1987 'Fluffy1987!'

  # Analyze a newline-delimited file of passwords concurrently
  passforge analyze --list passwords.txt

  # Output a JSON report
  passforge analyze --json 'Tr0ub4dor&3'

  # Write a Markdown report to a file
  passforge analyze --markdown -o report.md 'Tr0ub4dor&3'`,
		Args: cobra.ArbitraryArgs,
		RunE: runAnalyzeCmd,
	}

	// Input flags
	cmd.Flags().StringP("list", "l", "",
		"Newline-delimited file of passwords to analyze")
	cmd.Flags().StringSliceP("user-inputs", "u", nil,
		"Personal hints treated as an attacker-known dictionary")

	// Batch analysis flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent analyses for --list files")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	// Persistence flags
	cmd.Flags().Bool("no-save", false,
		"Do not record analysis metadata in the history database")

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildAnalyzeConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging with secret masking
	logger := log.NewSecureLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runAnalyze(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildAnalyzeConfig creates a Config from cobra command flags.
func buildAnalyzeConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.PasswordFile, err = cmd.Flags().GetString("list")
	if err != nil {
		return nil, err
	}

	cfg.UserInputs, err = cmd.Flags().GetStringSlice("user-inputs")
	if err != nil {
		return nil, err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.OutputFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	noSave, err := cmd.Flags().GetBool("no-save")
	if err != nil {
		return nil, err
	}
	cfg.SaveToDB = !noSave
	cfg.DBDir = config.XDGDataDir()

	cfg.Verbose = getVerboseFlag(cmd)

	// Positional arguments are the passwords
	cfg.Passwords = args

	return cfg, nil
}

// runAnalyze executes the analysis.
func runAnalyze(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	passwords := cfg.Passwords

	// Append passwords from the list file
	if cfg.PasswordFile != "" {
		fromFile, err := wordlist.Load(cfg.PasswordFile)
		if err != nil {
			return fmt.Errorf("failed to read password list: %w", err)
		}
		passwords = append(passwords, fromFile...)
	}

	if len(passwords) == 0 {
		return fmt.Errorf("no passwords provided (pass them as arguments or use --list)")
	}

	logger.Info("starting analysis",
		"count", len(passwords),
		"batchSize", cfg.BatchSize,
		"saveToDB", cfg.SaveToDB,
	)

	// Open history database if saving is enabled
	var db *database.HistoryDB
	if cfg.SaveToDB {
		var err error
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			logger.Warn("history database unavailable, results will not be saved", "error", err)
			db = nil
		} else {
			defer db.Close()
			logger.Info("database opened", "dir", cfg.DBDir)
		}
	}

	if len(passwords) > 1 && cfg.BatchSize > 1 {
		return runBatchAnalyze(ctx, cfg, passwords, db, logger)
	}

	return runSequentialAnalyze(ctx, cfg, passwords, db, logger)
}

// runSequentialAnalyze analyzes passwords one at a time. The report
// destination is opened once so multiple reports append to the same
// file instead of truncating each other.
func runSequentialAnalyze(ctx context.Context, cfg *config.Config, passwords []string, db *database.HistoryDB, logger *slog.Logger) error {
	output, closeFn, err := openReportOutput(cfg.OutputFile)
	if err != nil {
		return err
	}
	defer closeFn()

	for _, password := range passwords {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		p := pipeline.DefaultPipeline(pipeline.WithLogger(logger))
		analysisReport := model.NewAnalysisReport(password, cfg.UserInputs)

		startTime := time.Now()
		if err := p.Execute(ctx, analysisReport); err != nil {
			logger.Error("analysis failed", "digest", analysisReport.PasswordDigest, "error", err)
			fmt.Fprintf(os.Stderr, "Analysis error: %v\n", err)
			continue
		}
		logger.Debug("analysis completed",
			"digest", analysisReport.PasswordDigest,
			"elapsed", time.Since(startTime).Round(time.Millisecond),
		)

		if err := outputAnalysisReport(cfg, output, analysisReport); err != nil {
			logger.Error("report failed", "digest", analysisReport.PasswordDigest, "error", err)
		}

		if err := saveAnalysisReport(ctx, db, analysisReport, logger); err != nil {
			logger.Error("failed to save analysis", "digest", analysisReport.PasswordDigest, "error", err)
		}
	}

	return nil
}

// runBatchAnalyze analyzes multiple passwords concurrently using BatchProcessor.
func runBatchAnalyze(ctx context.Context, cfg *config.Config, passwords []string, db *database.HistoryDB, logger *slog.Logger) error {
	fmt.Fprintf(os.Stderr, "Analyzing %d passwords (concurrency: %d)...\n", len(passwords), cfg.BatchSize)

	startTime := time.Now()

	bp := pipeline.NewBatchProcessor(
		func() *pipeline.Pipeline {
			return pipeline.DefaultPipeline(pipeline.WithLogger(logger))
		},
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)

	reports, err := bp.ProcessBatch(ctx, passwords, cfg.UserInputs)
	if err != nil {
		return err
	}

	for _, analysisReport := range reports {
		if saveErr := saveAnalysisReport(ctx, db, analysisReport, logger); saveErr != nil {
			logger.Error("failed to save analysis", "digest", analysisReport.PasswordDigest, "error", saveErr)
		}
	}

	fmt.Fprintf(os.Stderr, "Batch analysis completed in %s\n\n", time.Since(startTime).Round(time.Millisecond))

	return outputBatchReports(cfg, reports)
}

// outputBatchReports writes batch results in the requested format.
func outputBatchReports(cfg *config.Config, reports []*model.AnalysisReport) error {
	output, closeFn, err := openReportOutput(cfg.OutputFile)
	if err != nil {
		return err
	}
	defer closeFn()

	switch {
	case cfg.JSONReport:
		writer := report.NewBatchJSONWriter(output, getVersion(), report.WithPrettyPrint())
		_, err = writer.WriteBatch(reports)
		return err
	case cfg.MarkdownReport:
		writer := report.NewMarkdownWriter(output)
		for _, r := range reports {
			if _, err := writer.WriteAnalysis(r); err != nil {
				return err
			}
		}
		return nil
	default:
		// Compact one-line summaries keep batch output readable.
		for i, r := range reports {
			fmt.Fprintf(output, "[%d/%d] %s  score %d/4  %-11s  entropy %.1f bits\n",
				i+1, len(reports),
				truncateDigest(r.PasswordDigest),
				r.Score,
				r.StrengthLabel,
				r.EntropyBits,
			)
		}
		return nil
	}
}

// outputAnalysisReport writes one analysis report to output in the
// requested format.
func outputAnalysisReport(cfg *config.Config, output io.Writer, analysisReport *model.AnalysisReport) error {
	var writer report.Writer
	switch {
	case cfg.JSONReport:
		writer = report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(output)
	default:
		writer = report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}

	_, err := writer.WriteAnalysis(analysisReport)
	return err
}

// openReportOutput returns the report destination and a close function.
// An empty path means stdout, which must not be closed.
func openReportOutput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Reports may reveal password structure, so owner-only permissions.
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// saveAnalysisReport saves the analysis to the history database if enabled.
// If db is nil, this function is a no-op.
func saveAnalysisReport(ctx context.Context, db *database.HistoryDB, analysisReport *model.AnalysisReport, logger *slog.Logger) error {
	if db == nil {
		return nil
	}

	if _, err := db.SaveAnalysis(ctx, analysisReport); err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}

	logger.Debug("analysis saved to history", "digest", analysisReport.PasswordDigest)
	return nil
}
