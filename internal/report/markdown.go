package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/nao1215/markdown"
	"github.com/passforge/passforge/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// WriteAnalysis outputs the analysis report in Markdown format.
func (w *MarkdownWriter) WriteAnalysis(report *model.AnalysisReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeAnalysisHeader(md, report)
	w.writeStrength(md, report)
	w.writeComposition(md, report)
	w.writeCrackTimes(md, report)
	w.writeAdvice(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeAnalysisHeader writes the report header with analysis information.
func (w *MarkdownWriter) writeAnalysisHeader(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H1("Password Strength Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Password Digest", "`" + shortDigest(report.PasswordDigest) + "`"},
			{"Length", strconv.Itoa(report.PasswordLength) + " characters"},
			{"Analyzed", report.DateAnalyzed.Format("2006-01-02 15:04:05 MST")},
			{"Status", w.getStatusText(report)},
		},
	})
	md.PlainText("")
}

// getStatusText returns the status text based on report state.
func (w *MarkdownWriter) getStatusText(report *model.AnalysisReport) string {
	if report.ErrorMessage != "" {
		return "❌ Error - " + report.ErrorMessage
	}
	return "✅ Complete"
}

// writeStrength writes the score section with an alert matched to the
// strength band.
func (w *MarkdownWriter) writeStrength(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H2("Strength")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Score", fmt.Sprintf("%d / 4", report.Score)},
			{"Rating", "**" + report.StrengthLabel + "**"},
			{"Entropy (pattern-based)", fmt.Sprintf("%.1f bits", report.EntropyBits)},
			{"Entropy (heuristic)", fmt.Sprintf("%.1f bits", report.FallbackEntropyBits)},
			{"Breached list", yesNo(report.CommonPassword)},
			{"Hint material", yesNo(report.UserInputMatch)},
		},
	})
	md.PlainText("")

	w.writeAlert(md, report)
}

// writeAlert writes an appropriate alert based on the strength band.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.AnalysisReport) {
	switch report.Strength {
	case model.StrengthVeryWeak:
		md.Cautionf("This password offers essentially no protection. Replace it before using it anywhere.")
	case model.StrengthWeak:
		md.Warningf("This password resists only casual guessing. A determined attacker cracks it quickly.")
	case model.StrengthFair:
		md.Importantf("This password is adequate for low-value accounts but should not guard anything important.")
	case model.StrengthStrong:
		md.Note("This password holds up against most attacks. The suggestions below would harden it further.")
	case model.StrengthVeryStrong:
		md.Tip("This password resists offline cracking with modern hardware.")
	}
	md.PlainText("")
}

// writeComposition writes the character-class breakdown.
func (w *MarkdownWriter) writeComposition(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H2("Composition")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Class", "Count"},
		Rows: [][]string{
			{"Lowercase", strconv.Itoa(report.Classes.Lower)},
			{"Uppercase", strconv.Itoa(report.Classes.Upper)},
			{"Digits", strconv.Itoa(report.Classes.Digits)},
			{"Symbols", strconv.Itoa(report.Classes.Symbols)},
			{"**Diversity**", fmt.Sprintf("**%d of 4**", report.Classes.Diversity())},
		},
	})
	md.PlainText("")
}

// writeCrackTimes writes crack-time estimates per attack scenario.
func (w *MarkdownWriter) writeCrackTimes(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H2("Crack Time Estimates")
	md.PlainText("")

	if len(report.CrackTimes) == 0 {
		md.PlainText("No estimates available.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(report.CrackTimes))
	for i, ct := range report.CrackTimes {
		rows[i] = []string{
			ct.Scenario,
			formatGuessRate(ct.GuessesPerSecond),
			ct.Display,
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Scenario", "Guesses/sec", "Estimated Time"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeAdvice writes the warning and improvement suggestions.
func (w *MarkdownWriter) writeAdvice(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H2("Advice")
	md.PlainText("")

	if report.Warning != "" {
		md.Warningf("%s", report.Warning)
		md.PlainText("")
	}

	if len(report.Suggestions) == 0 {
		md.PlainText("No suggestions. This password looks solid.")
		md.PlainText("")
		return
	}

	md.BulletList(report.Suggestions...)
	md.PlainText("")
}

// WriteGeneration outputs the generation run summary in Markdown format.
func (w *MarkdownWriter) WriteGeneration(report *model.GenerationReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Wordlist Generation Summary")
	md.PlainText("")

	rows := [][]string{
		{"Run ID", "`" + report.RunID + "`"},
		{"Generated", report.DateGenerated.Format("2006-01-02 15:04:05 MST")},
		{"Hints", strconv.Itoa(report.HintCount)},
		{"Entries", strconv.Itoa(report.EntryCount)},
		{"Truncated", yesNo(report.Truncated)},
		{"Elapsed", report.Elapsed.Round(time.Millisecond).String()},
	}
	if report.OutputPath != "" {
		rows = append(rows, []string{"Output", "`" + report.OutputPath + "`"})
	}
	if report.Checksum != "" {
		rows = append(rows, []string{"SHA3-256", "`" + report.Checksum + "`"})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")

	md.H2("Rules")
	md.PlainText("")

	ruleRows := [][]string{
		{"Case variants", enabledText(report.Rules.CaseVariants)},
		{"Leetspeak", enabledText(report.Rules.Leetspeak)},
		{"Suffixes", enabledText(report.Rules.Suffixes)},
		{"Separators", formatSeparators(report.Rules.Separators)},
		{"Max combo", strconv.Itoa(report.Rules.MaxCombo)},
	}
	if len(report.Rules.Years) > 0 {
		ruleRows = append(ruleRows, []string{"Years", strings.Join(report.Rules.Years, ", ")})
	}
	if report.Rules.MaxWords > 0 {
		ruleRows = append(ruleRows, []string{"Max words", strconv.Itoa(report.Rules.MaxWords)})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Rule", "Setting"},
		Rows:   ruleRows,
	})
	md.PlainText("")

	if report.Truncated {
		md.Warningf("The wordlist was capped at %d entries. Raise the max-words limit or reduce hints for full coverage.", report.Rules.MaxWords)
		md.PlainText("")
	}

	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by passforge*")
}

// yesNo maps a flag to display text.
func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// formatGuessRate renders an attacker guess rate compactly.
func formatGuessRate(rate float64) string {
	switch {
	case rate >= 1e9:
		return fmt.Sprintf("%.0fB", rate/1e9)
	case rate >= 1e6:
		return fmt.Sprintf("%.0fM", rate/1e6)
	case rate >= 1e3:
		return fmt.Sprintf("%.0fK", rate/1e3)
	default:
		return fmt.Sprintf("%.2g", rate)
	}
}
