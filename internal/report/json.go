package report

import (
	"encoding/json"
	"io"

	"github.com/passforge/passforge/internal/model"
)

// JSONWriter outputs reports in JSON format.
// This format is designed for tool integration and programmatic processing.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library because:
// 1. It's part of the standard library (no extra dependencies)
// 2. It's sufficient for our needs
// 3. It provides consistent behavior across Go versions
//
// The AnalysisReport excludes the plaintext password from serialization,
// so JSON output is always safe to redirect to files or pipelines.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = ""
		w.indentString = "  "
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter:   newBaseWriter(output),
		indent:       false,
		indentPrefix: "",
		indentString: "",
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// WriteAnalysis outputs the analysis report in JSON format.
func (w *JSONWriter) WriteAnalysis(report *model.AnalysisReport) (int, error) {
	return w.writeJSON(report)
}

// WriteGeneration outputs the generation summary in JSON format.
func (w *JSONWriter) WriteGeneration(report *model.GenerationReport) (int, error) {
	return w.writeJSON(report)
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v interface{}) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}

// BatchJSONReport wraps a set of analysis reports with run metadata.
// This is used when analyzing multiple passwords in one invocation.
//
// Design decision: We wrap the reports rather than emitting a bare array
// because this allows us to add output-specific fields without polluting
// the core data structure.
type BatchJSONReport struct {
	// Version is the passforge version that generated this report.
	Version string `json:"version"`

	// Count is the number of analyses in the batch.
	Count int `json:"count"`

	// Reports are the individual analysis results, in input order.
	Reports []*model.AnalysisReport `json:"reports"`
}

// NewBatchJSONReport creates a BatchJSONReport wrapper with version information.
func NewBatchJSONReport(reports []*model.AnalysisReport, version string) *BatchJSONReport {
	return &BatchJSONReport{
		Version: version,
		Count:   len(reports),
		Reports: reports,
	}
}

// BatchJSONWriter outputs batches of analyses with a metadata wrapper.
type BatchJSONWriter struct {
	*JSONWriter

	// version is the passforge version string.
	version string
}

// NewBatchJSONWriter creates a writer for batch reports with metadata.
func NewBatchJSONWriter(output io.Writer, version string, opts ...JSONWriterOption) *BatchJSONWriter {
	return &BatchJSONWriter{
		JSONWriter: NewJSONWriter(output, opts...),
		version:    version,
	}
}

// WriteBatch outputs the batch wrapped with metadata.
func (w *BatchJSONWriter) WriteBatch(reports []*model.AnalysisReport) (int, error) {
	return w.writeJSON(NewBatchJSONReport(reports, w.version))
}
