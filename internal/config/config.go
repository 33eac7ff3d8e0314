package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultBatchSize of 10 concurrent analyses keeps batch runs fast
	// without starving the machine; zxcvbn matching is CPU-bound.
	DefaultBatchSize = 10

	// DefaultMaxCombo is the default maximum number of hint tokens
	// combined into a single wordlist entry.
	DefaultMaxCombo = 3

	// DefaultMaxWords caps generated wordlists. 50000 entries cover the
	// realistic output of a personal hint set while keeping files small
	// enough to preview.
	DefaultMaxWords = 50000

	// AppName is the application name used for XDG directory paths.
	AppName = "passforge"
)

// Config holds all configuration options for passforge.
// This struct is populated from CLI flags and passed through the
// application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., AnalyzeConfig, GenerateConfig) for simplicity. The number of
// options is manageable, and the two commands share the report and
// persistence options.
type Config struct {
	// Passwords are the positional passwords to analyze.
	Passwords []string

	// PasswordFile is a newline-delimited file of passwords for batch analysis.
	PasswordFile string

	// UserInputs are hint strings passed to the scorer as an
	// attacker-known dictionary during analysis.
	UserInputs []string

	// Hints are the personal hint strings driving wordlist generation.
	Hints []string

	// Profile selects a named rule profile from the config file.
	// Empty means flags and defaults apply directly.
	Profile string

	// CaseVariants enables the case-variant generation rule.
	CaseVariants bool

	// Leetspeak enables the leetspeak substitution rule.
	Leetspeak bool

	// Suffixes enables the common-suffix rule.
	Suffixes bool

	// Years are appended and prepended to combined tokens.
	Years []string

	// Separators join tokens during combination.
	Separators []string

	// MaxCombo is the maximum number of tokens per combined entry.
	MaxCombo int

	// MaxWords caps the generated wordlist size. Zero means unlimited.
	MaxWords int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// BatchSize is the number of concurrent analyses when processing a
	// password file.
	BatchSize int

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .passforge in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// Profiles holds rule profiles loaded from the config file.
	Profiles *File

	// JSONReport enables JSON report output.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// OutputFile is the destination for reports or generated wordlists.
	// When empty, output goes to stdout.
	OutputFile string

	// SaveToDB indicates whether to record run metadata in the history
	// database. No plaintext password or hint is ever stored.
	SaveToDB bool

	// DBDir is the directory of the SQLite history database.
	// Defaults to the XDG data directory.
	DBDir string
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero (batch size, combo
// and word limits). This also serves as documentation of the defaults.
func NewConfig() *Config {
	return &Config{
		BatchSize: DefaultBatchSize,
		MaxCombo:  DefaultMaxCombo,
		MaxWords:  DefaultMaxWords,
	}
}

// XDGDataDir returns the XDG data directory for passforge.
// On Linux: ~/.local/share/passforge
// On macOS: ~/Library/Application Support/passforge
// On Windows: %LOCALAPPDATA%\passforge
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for passforge.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific sentinel error describing what is invalid.
//
// We return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.MaxCombo < 1 {
		return ErrInvalidMaxCombo
	}

	if c.MaxWords < 0 {
		return ErrInvalidMaxWords
	}

	return nil
}
