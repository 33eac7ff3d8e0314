package model

import "time"

// RuleSummary records which transformation rules were enabled for a
// wordlist generation run. Stored with the run metadata so past runs can
// be reproduced from history.
type RuleSummary struct {
	// CaseVariants enables lower/upper/capitalize/title variants.
	CaseVariants bool `json:"caseVariants"`

	// Leetspeak enables character substitution expansion (a->4, e->3, ...).
	Leetspeak bool `json:"leetspeak"`

	// Suffixes enables appending the common-suffix list.
	Suffixes bool `json:"suffixes"`

	// Years are the year strings appended to combined tokens.
	Years []string `json:"years,omitempty"`

	// Separators are the join strings used for token combination.
	Separators []string `json:"separators"`

	// MaxCombo is the maximum number of tokens combined into one entry.
	MaxCombo int `json:"maxCombo"`

	// MaxWords caps the final wordlist size. Zero means unlimited.
	MaxWords int `json:"maxWords"`
}

// GenerationReport holds the metadata of a single wordlist generation run.
// The generated entries themselves are not part of the report; they live in
// the exported file (or stdout). Only shape and provenance are recorded.
type GenerationReport struct {
	// RunID uniquely identifies the generation run.
	RunID string `json:"runId"`

	// DateGenerated is the time the run started.
	DateGenerated time.Time `json:"dateGenerated"`

	// HintCount is the number of non-empty input hints.
	HintCount int `json:"hintCount"`

	// EntryCount is the number of unique wordlist entries produced.
	EntryCount int `json:"entryCount"`

	// Truncated is true when MaxWords cut the result short.
	Truncated bool `json:"truncated"`

	// Rules records the enabled transformation rules.
	Rules RuleSummary `json:"rules"`

	// OutputPath is the export destination, empty when written to stdout.
	OutputPath string `json:"outputPath,omitempty"`

	// Checksum is the hex-encoded SHA3-256 digest of the exported file
	// content. Empty when no file was written.
	Checksum string `json:"checksum,omitempty"`

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration `json:"elapsedNs"`
}
