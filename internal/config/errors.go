package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and the profile loader.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances at each call site. This allows callers to
// use errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrInvalidBatchSize is returned when the batch size is not positive.
	// A batch size of zero would mean no concurrent analyses at all.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidMaxCombo is returned when the combination limit is below one.
	// At least one token per entry is required for generation to produce output.
	ErrInvalidMaxCombo = errors.New("invalid max combo: must be at least 1")

	// ErrInvalidMaxWords is returned when the wordlist cap is negative.
	// Use 0 for an uncapped wordlist.
	ErrInvalidMaxWords = errors.New("invalid max words: must be non-negative")

	// ErrUnknownProfile is returned when --profile names a profile that
	// does not exist in the configuration file.
	ErrUnknownProfile = errors.New("unknown profile: not defined in configuration file")
)
