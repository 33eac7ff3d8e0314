package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/passforge/passforge/internal/config"
	"github.com/passforge/passforge/internal/database"
	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the history command.
// This command inspects past analyses and generation runs stored in the
// history database.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past analyses and wordlist generation runs",
		Long: `History displays stored analysis results and wordlist generation runs.

The history database holds only derived data: SHA3-256 digests, scores,
rule settings, counts, and checksums. Plaintext passwords and hints are
never stored, so listings cannot be used to recover either.

Examples:
  # List recent analyses
  passforge history

  # List recent wordlist generation runs
  passforge history --runs

  # Show all analyses for a specific password digest
  passforge history --digest a1b2c3d4e5f60718

  # Show a generation run by its ID
  passforge history --run-id 11111111-2222-3333-4444-555555555555

  # Limit output and emit JSON
  passforge history -n 5 --json`,
		RunE: runHistoryCmd,
	}

	cmd.Flags().BoolP("runs", "r", false,
		"List wordlist generation runs instead of analyses")
	cmd.Flags().StringP("digest", "d", "",
		"Show all analyses for the given password digest prefix")
	cmd.Flags().String("run-id", "",
		"Show a single generation run by its ID")
	cmd.Flags().IntP("limit", "n", 20,
		"Maximum number of entries to show (0 = all)")
	cmd.Flags().BoolP("json", "j", false,
		"Output in JSON format")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	runs, err := cmd.Flags().GetBool("runs")
	if err != nil {
		return err
	}
	digest, err := cmd.Flags().GetString("digest")
	if err != nil {
		return err
	}
	runID, err := cmd.Flags().GetString("run-id")
	if err != nil {
		return err
	}
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	// Open read-only: a missing database just means no history yet.
	db, err := database.Open(config.XDGDataDir(), database.Options{CreateIfNotExists: false, EnableWAL: true})
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), "No history recorded yet.")
		return nil //nolint:nilerr // An absent database is an empty history, not a failure
	}
	defer db.Close()

	ctx := context.Background()

	switch {
	case runID != "":
		return showGenerationRun(ctx, cmd, db, runID, asJSON)
	case runs:
		return listGenerationRuns(ctx, cmd, db, limit, asJSON)
	case digest != "":
		return showAnalysesForDigest(ctx, cmd, db, digest, asJSON)
	default:
		return listAnalyses(ctx, cmd, db, limit, asJSON)
	}
}

// listAnalyses prints recent analysis metadata.
func listAnalyses(ctx context.Context, cmd *cobra.Command, db *database.HistoryDB, limit int, asJSON bool) error {
	entries, err := db.ListAnalyses(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to list analyses: %w", err)
	}

	if asJSON {
		return writeHistoryJSON(cmd, entries)
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No analyses recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "%-6s %-18s %-8s %-6s %-12s %-8s %s\n",
		"ID", "DIGEST", "LENGTH", "SCORE", "STRENGTH", "COMMON", "ANALYZED")
	fmt.Fprintln(out, strings.Repeat("-", 84))
	for _, e := range entries {
		fmt.Fprintf(out, "%-6d %-18s %-8d %-6d %-12s %-8s %s\n",
			e.ID,
			truncateDigest(e.PasswordDigest),
			e.PasswordLength,
			e.Score,
			e.Strength,
			yesNoText(e.CommonPassword),
			formatHistoryTime(e.Timestamp),
		)
	}
	return nil
}

// showAnalysesForDigest prints every stored analysis matching a digest.
// A prefix of at least 8 characters is accepted so users can paste the
// truncated digests shown in reports.
func showAnalysesForDigest(ctx context.Context, cmd *cobra.Command, db *database.HistoryDB, digest string, asJSON bool) error {
	if len(digest) < 8 {
		return fmt.Errorf("digest prefix too short: need at least 8 characters, got %d", len(digest))
	}

	// Resolve a prefix to the full digest via the metadata listing.
	entries, err := db.ListAnalyses(ctx, 0)
	if err != nil {
		return fmt.Errorf("failed to list analyses: %w", err)
	}

	full := ""
	for _, e := range entries {
		if strings.HasPrefix(e.PasswordDigest, digest) {
			if full != "" && full != e.PasswordDigest {
				return fmt.Errorf("digest prefix %q is ambiguous, provide more characters", digest)
			}
			full = e.PasswordDigest
		}
	}
	if full == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "No analyses found for digest %q.\n", digest)
		return nil
	}

	reports, err := db.GetAnalysisHistory(ctx, full)
	if err != nil {
		return fmt.Errorf("failed to get analysis history: %w", err)
	}

	if asJSON {
		return writeHistoryJSON(cmd, reports)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Digest: %s\n\n", full)
	for i, r := range reports {
		fmt.Fprintf(out, "[%d] %s  score %d/4  %-11s  entropy %.1f bits\n",
			i+1,
			formatHistoryTime(r.DateAnalyzed),
			r.Score,
			r.StrengthLabel,
			r.EntropyBits,
		)
		if r.Warning != "" {
			fmt.Fprintf(out, "    warning: %s\n", r.Warning)
		}
	}
	return nil
}

// listGenerationRuns prints recent generation runs.
func listGenerationRuns(ctx context.Context, cmd *cobra.Command, db *database.HistoryDB, limit int, asJSON bool) error {
	runs, err := db.ListGenerationRuns(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to list generation runs: %w", err)
	}

	if asJSON {
		return writeHistoryJSON(cmd, runs)
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No generation runs recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "%-38s %-7s %-9s %-10s %s\n",
		"RUN ID", "HINTS", "ENTRIES", "TRUNCATED", "GENERATED")
	fmt.Fprintln(out, strings.Repeat("-", 90))
	for _, r := range runs {
		fmt.Fprintf(out, "%-38s %-7d %-9d %-10s %s\n",
			r.RunID,
			r.HintCount,
			r.EntryCount,
			yesNoText(r.Truncated),
			formatHistoryTime(r.DateGenerated),
		)
	}
	return nil
}

// showGenerationRun prints a single generation run in detail.
func showGenerationRun(ctx context.Context, cmd *cobra.Command, db *database.HistoryDB, runID string, asJSON bool) error {
	run, err := db.GetGenerationRun(ctx, runID)
	if err != nil {
		return fmt.Errorf("failed to get generation run: %w", err)
	}
	if run == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "No generation run found with ID %q.\n", runID)
		return nil
	}

	if asJSON {
		return writeHistoryJSON(cmd, run)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run ID:     %s\n", run.RunID)
	fmt.Fprintf(out, "Generated:  %s\n", formatHistoryTime(run.DateGenerated))
	fmt.Fprintf(out, "Hints:      %d\n", run.HintCount)
	fmt.Fprintf(out, "Entries:    %d\n", run.EntryCount)
	fmt.Fprintf(out, "Truncated:  %s\n", yesNoText(run.Truncated))
	if run.OutputPath != "" {
		fmt.Fprintf(out, "Output:     %s\n", run.OutputPath)
	}
	if run.Checksum != "" {
		fmt.Fprintf(out, "SHA3-256:   %s\n", run.Checksum)
	}
	fmt.Fprintf(out, "Rules:      case=%t leet=%t suffixes=%t maxCombo=%d maxWords=%d\n",
		run.Rules.CaseVariants,
		run.Rules.Leetspeak,
		run.Rules.Suffixes,
		run.Rules.MaxCombo,
		run.Rules.MaxWords,
	)
	if len(run.Rules.Years) > 0 {
		fmt.Fprintf(out, "Years:      %s\n", strings.Join(run.Rules.Years, ", "))
	}
	return nil
}

// writeHistoryJSON emits any history value as pretty-printed JSON.
func writeHistoryJSON(cmd *cobra.Command, v interface{}) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// truncateDigest shortens a digest for table display.
func truncateDigest(digest string) string {
	if len(digest) <= 16 {
		return digest
	}
	return digest[:16]
}

// yesNoText maps a flag to display text.
func yesNoText(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// formatHistoryTime renders a timestamp, with a placeholder for the zero
// value that unparseable database timestamps produce.
func formatHistoryTime(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.Format("2006-01-02 15:04:05")
}
