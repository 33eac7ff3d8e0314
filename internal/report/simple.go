package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/passforge/passforge/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with a strength meter and
// clear section formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// showEmpty controls whether sections with no content are shown.
	showEmpty bool

	// verbose enables additional detail in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowEmpty configures the writer to show empty sections.
func WithShowEmpty(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showEmpty = show
	}
}

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		showEmpty:  false,
		verbose:    false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// WriteAnalysis outputs the analysis report in human-readable format.
func (w *SimpleWriter) WriteAnalysis(report *model.AnalysisReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeStrength(&sb, report)
	w.writeComposition(&sb, report)
	w.writeCrackTimes(&sb, report)
	w.writeAdvice(&sb, report)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with analysis information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.AnalysisReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                    PASSWORD STRENGTH REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Password Digest: %s\n", shortDigest(report.PasswordDigest)))
	sb.WriteString(fmt.Sprintf("Length:          %d characters\n", report.PasswordLength))
	sb.WriteString(fmt.Sprintf("Analyzed:        %s\n", report.DateAnalyzed.Format("2006-01-02 15:04:05 MST")))

	if report.ErrorMessage != "" {
		sb.WriteString(fmt.Sprintf("Status:          ERROR - %s\n", report.ErrorMessage))
	} else {
		sb.WriteString("Status:          Complete\n")
	}

	sb.WriteString("\n")
}

// writeStrength writes the score and strength meter section.
func (w *SimpleWriter) writeStrength(sb *strings.Builder, report *model.AnalysisReport) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("STRENGTH\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  Score:    %d / 4  %s\n", report.Score, strengthMeter(report.Score)))
	sb.WriteString(fmt.Sprintf("  Rating:   %s\n", report.StrengthLabel))
	sb.WriteString(fmt.Sprintf("  Entropy:  %.1f bits (pattern-based)\n", report.EntropyBits))

	if w.verbose {
		sb.WriteString(fmt.Sprintf("  Entropy:  %.1f bits (character-class heuristic)\n", report.FallbackEntropyBits))
	}

	if report.CommonPassword {
		sb.WriteString("  [!] Found in breached-password list\n")
	}
	if report.UserInputMatch {
		sb.WriteString("  [!] Contains personal hint material\n")
	}

	sb.WriteString("\n")
}

// writeComposition writes the character-class breakdown.
func (w *SimpleWriter) writeComposition(sb *strings.Builder, report *model.AnalysisReport) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("COMPOSITION\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  Lowercase: %d\n", report.Classes.Lower))
	sb.WriteString(fmt.Sprintf("  Uppercase: %d\n", report.Classes.Upper))
	sb.WriteString(fmt.Sprintf("  Digits:    %d\n", report.Classes.Digits))
	sb.WriteString(fmt.Sprintf("  Symbols:   %d\n", report.Classes.Symbols))
	sb.WriteString(fmt.Sprintf("  Diversity: %d of 4 character classes\n", report.Classes.Diversity()))
	sb.WriteString("\n")
}

// writeCrackTimes writes the crack-time estimates per attack scenario.
func (w *SimpleWriter) writeCrackTimes(sb *strings.Builder, report *model.AnalysisReport) {
	if len(report.CrackTimes) == 0 && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("CRACK TIME ESTIMATES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if len(report.CrackTimes) == 0 {
		sb.WriteString("  No estimates available\n")
	} else {
		for _, ct := range report.CrackTimes {
			sb.WriteString(fmt.Sprintf("  %-24s %s\n", ct.Scenario+":", ct.Display))
		}
	}
	sb.WriteString("\n")
}

// writeAdvice writes the warning and improvement suggestions.
func (w *SimpleWriter) writeAdvice(sb *strings.Builder, report *model.AnalysisReport) {
	if report.Warning == "" && len(report.Suggestions) == 0 && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("ADVICE\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if report.Warning != "" {
		sb.WriteString(fmt.Sprintf("  [!] %s\n\n", report.Warning))
	}

	if len(report.Suggestions) == 0 {
		sb.WriteString("  No suggestions. This password looks solid.\n")
	} else {
		for _, s := range report.Suggestions {
			sb.WriteString(fmt.Sprintf("  * %s\n", s))
		}
	}
	sb.WriteString("\n")
}

// WriteGeneration outputs the generation run summary in human-readable format.
func (w *SimpleWriter) WriteGeneration(report *model.GenerationReport) (int, error) {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                    WORDLIST GENERATION SUMMARY\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Run ID:     %s\n", report.RunID))
	sb.WriteString(fmt.Sprintf("Generated:  %s\n", report.DateGenerated.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Hints:      %d\n", report.HintCount))
	sb.WriteString(fmt.Sprintf("Entries:    %d\n", report.EntryCount))
	if report.Truncated {
		sb.WriteString(fmt.Sprintf("Truncated:  yes (capped at %d entries)\n", report.Rules.MaxWords))
	}
	if report.OutputPath != "" {
		sb.WriteString(fmt.Sprintf("Output:     %s\n", report.OutputPath))
	}
	if report.Checksum != "" {
		sb.WriteString(fmt.Sprintf("SHA3-256:   %s\n", report.Checksum))
	}
	sb.WriteString(fmt.Sprintf("Elapsed:    %s\n", report.Elapsed.Round(time.Millisecond)))
	sb.WriteString("\n")

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("RULES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  Case variants: %s\n", enabledText(report.Rules.CaseVariants)))
	sb.WriteString(fmt.Sprintf("  Leetspeak:     %s\n", enabledText(report.Rules.Leetspeak)))
	sb.WriteString(fmt.Sprintf("  Suffixes:      %s\n", enabledText(report.Rules.Suffixes)))
	if len(report.Rules.Years) > 0 {
		sb.WriteString(fmt.Sprintf("  Years:         %s\n", strings.Join(report.Rules.Years, ", ")))
	}
	sb.WriteString(fmt.Sprintf("  Separators:    %s\n", formatSeparators(report.Rules.Separators)))
	sb.WriteString(fmt.Sprintf("  Max combo:     %d\n", report.Rules.MaxCombo))
	if report.Rules.MaxWords > 0 {
		sb.WriteString(fmt.Sprintf("  Max words:     %d\n", report.Rules.MaxWords))
	}
	sb.WriteString("\n")

	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by passforge\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}

// strengthMeter renders a 4-segment bar for the score.
func strengthMeter(score int) string {
	if score < 0 {
		score = 0
	}
	if score > 4 {
		score = 4
	}
	return "[" + strings.Repeat("#", score) + strings.Repeat("-", 4-score) + "]"
}

// shortDigest returns a truncated digest for display. Full digests are 64
// hex characters; the first 16 are enough to identify an entry visually.
func shortDigest(digest string) string {
	if len(digest) <= 16 {
		return digest
	}
	return digest[:16] + "..."
}

// enabledText maps a rule flag to display text.
func enabledText(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}

// formatSeparators renders the separator list with the empty string shown
// as a placeholder.
func formatSeparators(separators []string) string {
	parts := make([]string, 0, len(separators))
	for _, sep := range separators {
		if sep == "" {
			parts = append(parts, "(none)")
			continue
		}
		parts = append(parts, `"`+sep+`"`)
	}
	return strings.Join(parts, ", ")
}
