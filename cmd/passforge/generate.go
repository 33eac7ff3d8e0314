package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/passforge/passforge/internal/config"
	"github.com/passforge/passforge/internal/database"
	"github.com/passforge/passforge/internal/log"
	"github.com/passforge/passforge/internal/model"
	"github.com/passforge/passforge/internal/report"
	"github.com/passforge/passforge/internal/wordlist"
	"github.com/spf13/cobra"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <hint> [hint...]",
		Short: "Generate a wordlist from personal hints",
		Long: `Generate produces a candidate-password wordlist from personal hints
(names, pets, birth years, hobbies) for authorized security testing.

Hints are tokenized, expanded through case and leetspeak variants, combined
with separators, and decorated with years and common suffixes. The result
is deduplicated, sorted by length then alphabetically, and capped.

Only run metadata (rule settings, counts, output checksum) is recorded in
history; the hints themselves are never stored.

Examples:
  # Generate with all rules enabled, print to stdout
  passforge generate fluffy rex 1987

  # Write to a file and record the run
  passforge generate -o wordlist.txt fluffy rex 1987

  # Append specific years and disable leetspeak
  passforge generate --years 2023,2024 --no-leet fluffy rex

  # Use a rule profile from the config file
  passforge generate --profile thorough fluffy rex

  # Limit combination depth and output size
  passforge generate --max-combo 2 --max-words 10000 fluffy rex`,
		Args: cobra.MinimumNArgs(1),
		RunE: runGenerateCmd,
	}

	// Rule flags
	cmd.Flags().Bool("no-case", false,
		"Disable case-variant expansion")
	cmd.Flags().Bool("no-leet", false,
		"Disable leetspeak substitution")
	cmd.Flags().Bool("no-suffixes", false,
		"Disable common-suffix appending")
	cmd.Flags().StringSliceP("years", "y", nil,
		"Years to append and prepend to combined tokens")
	cmd.Flags().StringSliceP("separators", "s", nil,
		"Separators joining tokens (default \"\", \".\", \"-\", \"_\")")
	cmd.Flags().Int("max-combo", config.DefaultMaxCombo,
		"Maximum number of tokens combined into one entry")
	cmd.Flags().Int("max-words", config.DefaultMaxWords,
		"Cap on the generated wordlist size (0 = unlimited)")

	// Profile flags
	cmd.Flags().StringP("profile", "p", "",
		"Named rule profile from the configuration file")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .passforge in current or home directory)")

	// Output flags
	cmd.Flags().StringP("output", "o", "",
		"Write the wordlist to this file instead of stdout")
	cmd.Flags().BoolP("json", "j", false,
		"Output the run summary as JSON (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output the run summary as Markdown (mutually exclusive with --json)")

	// Persistence flags
	cmd.Flags().Bool("no-save", false,
		"Do not record the generation run in the history database")

	return cmd
}

// runGenerateCmd executes the generate command.
func runGenerateCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildGenerateConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewSecureLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runGenerate(ctx, cmd, cfg, logger)
}

// buildGenerateConfig creates a Config from cobra command flags.
func buildGenerateConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	noCase, err := cmd.Flags().GetBool("no-case")
	if err != nil {
		return nil, err
	}
	cfg.CaseVariants = !noCase

	noLeet, err := cmd.Flags().GetBool("no-leet")
	if err != nil {
		return nil, err
	}
	cfg.Leetspeak = !noLeet

	noSuffixes, err := cmd.Flags().GetBool("no-suffixes")
	if err != nil {
		return nil, err
	}
	cfg.Suffixes = !noSuffixes

	cfg.Years, err = cmd.Flags().GetStringSlice("years")
	if err != nil {
		return nil, err
	}

	cfg.Separators, err = cmd.Flags().GetStringSlice("separators")
	if err != nil {
		return nil, err
	}

	cfg.MaxCombo, err = cmd.Flags().GetInt("max-combo")
	if err != nil {
		return nil, err
	}

	cfg.MaxWords, err = cmd.Flags().GetInt("max-words")
	if err != nil {
		return nil, err
	}

	cfg.Profile, err = cmd.Flags().GetString("profile")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load rule profiles from the config file.
	// If the user explicitly specified a config file path, error if missing.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.Profiles, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	} else {
		cfg.Profiles = &config.File{
			Profiles: make(map[string]config.Profile),
		}
	}

	if cfg.Profile != "" && !cfg.Profiles.HasProfile(cfg.Profile) {
		return nil, fmt.Errorf("%w: %s", config.ErrUnknownProfile, cfg.Profile)
	}

	cfg.OutputFile, err = cmd.Flags().GetString("output")
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

	noSave, err := cmd.Flags().GetBool("no-save")
	if err != nil {
		return nil, err
	}
	cfg.SaveToDB = !noSave
	cfg.DBDir = config.XDGDataDir()

	cfg.Verbose = getVerboseFlag(cmd)

	cfg.Hints = args

	return cfg, nil
}

// buildGenerateOptions resolves the final rule set from defaults, the
// selected profile, and explicit flags. Flags the user set on the command
// line win over profile values.
func buildGenerateOptions(cmd *cobra.Command, cfg *config.Config) wordlist.Options {
	opts := wordlist.Options{
		CaseVariants: cfg.CaseVariants,
		Leetspeak:    cfg.Leetspeak,
		Suffixes:     cfg.Suffixes,
		Years:        cfg.Years,
		Separators:   cfg.Separators,
		MaxCombo:     cfg.MaxCombo,
		MaxWords:     cfg.MaxWords,
	}
	if len(opts.Separators) == 0 {
		opts.Separators = wordlist.DefaultSeparators
	}

	if cfg.Profile == "" {
		return opts
	}

	profile := cfg.Profiles.GetProfile(cfg.Profile)

	if profile.Case != nil && !cmd.Flags().Changed("no-case") {
		opts.CaseVariants = *profile.Case
	}
	if profile.Leet != nil && !cmd.Flags().Changed("no-leet") {
		opts.Leetspeak = *profile.Leet
	}
	if profile.Suffixes != nil && !cmd.Flags().Changed("no-suffixes") {
		opts.Suffixes = *profile.Suffixes
	}
	if len(profile.Years) > 0 && !cmd.Flags().Changed("years") {
		opts.Years = profile.Years
	}
	if len(profile.Separators) > 0 && !cmd.Flags().Changed("separators") {
		opts.Separators = profile.Separators
	}
	if profile.MaxCombo != 0 && !cmd.Flags().Changed("max-combo") {
		opts.MaxCombo = profile.MaxCombo
	}
	if profile.MaxWords != 0 && !cmd.Flags().Changed("max-words") {
		opts.MaxWords = profile.MaxWords
	}

	return opts
}

// runGenerate executes the wordlist generation.
func runGenerate(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	opts := buildGenerateOptions(cmd, cfg)

	hintCount := 0
	for _, hint := range cfg.Hints {
		if hint != "" {
			hintCount++
		}
	}

	logger.Info("starting wordlist generation",
		"hintCount", hintCount,
		"maxCombo", opts.MaxCombo,
		"maxWords", opts.MaxWords,
	)

	startTime := time.Now()
	result := wordlist.Generate(cfg.Hints, opts)
	elapsed := time.Since(startTime)

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	genReport := &model.GenerationReport{
		RunID:         uuid.NewString(),
		DateGenerated: startTime,
		HintCount:     hintCount,
		EntryCount:    len(result.Entries),
		Truncated:     result.Truncated,
		Rules: model.RuleSummary{
			CaseVariants: opts.CaseVariants,
			Leetspeak:    opts.Leetspeak,
			Suffixes:     opts.Suffixes,
			Years:        opts.Years,
			Separators:   opts.Separators,
			MaxCombo:     opts.MaxCombo,
			MaxWords:     opts.MaxWords,
		},
		Elapsed: elapsed,
	}

	if cfg.OutputFile != "" {
		checksum, err := wordlist.Export(cfg.OutputFile, result.Entries)
		if err != nil {
			return fmt.Errorf("failed to export wordlist: %w", err)
		}
		genReport.OutputPath = cfg.OutputFile
		genReport.Checksum = checksum

		if err := outputGenerationReport(cfg, genReport); err != nil {
			return err
		}
	} else {
		// Entries go to stdout for piping into other tools; the summary
		// stays on stderr so it never pollutes the wordlist.
		for _, entry := range result.Entries {
			fmt.Fprintln(os.Stdout, entry)
		}
		logger.Info("wordlist generated",
			"entries", genReport.EntryCount,
			"truncated", genReport.Truncated,
			"elapsed", elapsed.Round(time.Millisecond),
		)
	}

	if cfg.SaveToDB {
		if err := saveGenerationRun(ctx, cfg, genReport, logger); err != nil {
			logger.Error("failed to save generation run", "runId", genReport.RunID, "error", err)
		}
	}

	return nil
}

// outputGenerationReport outputs the run summary in the requested format.
func outputGenerationReport(cfg *config.Config, genReport *model.GenerationReport) error {
	var writer report.Writer
	switch {
	case cfg.JSONReport:
		writer = report.NewJSONWriter(os.Stdout, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(os.Stdout)
	default:
		writer = report.NewSimpleWriter(os.Stdout)
	}

	_, err := writer.WriteGeneration(genReport)
	return err
}

// saveGenerationRun records the run metadata in the history database.
func saveGenerationRun(ctx context.Context, cfg *config.Config, genReport *model.GenerationReport, logger *slog.Logger) error {
	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.SaveGenerationRun(ctx, genReport); err != nil {
		return err
	}

	logger.Debug("generation run saved to history", "runId", genReport.RunID)
	return nil
}
