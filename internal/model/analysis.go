package model

import (
	"time"
)

// CharacterClasses summarizes the character composition of a password.
// Counts are rune-based so multi-byte characters are counted once.
type CharacterClasses struct {
	// Lower is the number of lowercase letters.
	Lower int `json:"lower"`

	// Upper is the number of uppercase letters.
	Upper int `json:"upper"`

	// Digits is the number of decimal digits.
	Digits int `json:"digits"`

	// Symbols is the number of characters outside the other three classes.
	Symbols int `json:"symbols"`
}

// Diversity returns the number of distinct character classes present.
// The result is in the range 0-4 and holds constant under length changes
// that only repeat existing classes.
func (c CharacterClasses) Diversity() int {
	diversity := 0
	if c.Lower > 0 {
		diversity++
	}
	if c.Upper > 0 {
		diversity++
	}
	if c.Digits > 0 {
		diversity++
	}
	if c.Symbols > 0 {
		diversity++
	}
	return diversity
}

// CrackTimeEstimate is the estimated time to crack a password under a
// specific attack scenario.
type CrackTimeEstimate struct {
	// Scenario describes the attack model (e.g., "online throttled").
	Scenario string `json:"scenario"`

	// GuessesPerSecond is the assumed attacker guess rate for the scenario.
	GuessesPerSecond float64 `json:"guessesPerSecond"`

	// Display is the human-readable duration (e.g., "3 hours", "centuries").
	Display string `json:"display"`
}

// AnalysisReport holds the result of analyzing a single password.
// Once the analysis pipeline completes and Scrub is called, the report is
// treated as immutable.
//
// Design decision: The plaintext password travels inside the report while
// pipeline steps run because steps need it as input, but it is excluded
// from JSON output and blanked by Scrub before the report leaves the
// pipeline. Only the SHA3-256 digest is retained for correlating repeat
// analyses of the same password in history.
type AnalysisReport struct {
	// Password is the plaintext under analysis. Never serialized and
	// blanked by Scrub once all pipeline steps have run.
	Password string `json:"-"`

	// PasswordLength is the rune count of the analyzed password.
	PasswordLength int `json:"passwordLength"`

	// PasswordDigest is the hex-encoded SHA3-256 digest of the password.
	PasswordDigest string `json:"passwordDigest"`

	// UserInputs are hint strings treated as an attacker-known dictionary.
	// zxcvbn penalizes passwords derived from these values.
	UserInputs []string `json:"-"`

	// Score is the zxcvbn score from 0 (worst) to 4 (best).
	Score int `json:"score"`

	// Strength is the qualitative band corresponding to Score.
	Strength Strength `json:"-"`

	// StrengthLabel is the human-readable form of Strength for serialization.
	StrengthLabel string `json:"strength"`

	// EntropyBits is the entropy estimate from zxcvbn pattern matching.
	EntropyBits float64 `json:"entropyBits"`

	// FallbackEntropyBits is the character-class/length heuristic estimate.
	// It is always computed, even when zxcvbn scoring succeeds, because the
	// two estimates diverging is itself useful signal (pattern-heavy
	// passwords look strong to the naive formula).
	FallbackEntropyBits float64 `json:"fallbackEntropyBits"`

	// CrackTimes are estimated crack durations per attack scenario.
	CrackTimes []CrackTimeEstimate `json:"crackTimes"`

	// Classes summarizes the character composition.
	Classes CharacterClasses `json:"classes"`

	// CommonPassword is true when the password appears in the embedded
	// breached-password list.
	CommonPassword bool `json:"commonPassword"`

	// UserInputMatch is true when the password contains one of the
	// user-supplied hint strings.
	UserInputMatch bool `json:"userInputMatch"`

	// Warning is the single most important problem found, empty if none.
	Warning string `json:"warning,omitempty"`

	// Suggestions are human-readable improvement recommendations.
	Suggestions []string `json:"suggestions,omitempty"`

	// PerformedSteps records which pipeline steps ran, in order.
	PerformedSteps []string `json:"performedSteps"`

	// DateAnalyzed is the time the analysis started.
	DateAnalyzed time.Time `json:"dateAnalyzed"`

	// Error holds the first step error, if any. Not serialized directly.
	Error error `json:"-"`

	// ErrorMessage is the string form of Error for serialization.
	ErrorMessage string `json:"error,omitempty"`
}

// NewAnalysisReport creates a report for the given password and hint set.
// The digest and length fields are filled by the pipeline's scoring steps.
func NewAnalysisReport(password string, userInputs []string) *AnalysisReport {
	return &AnalysisReport{
		Password:       password,
		UserInputs:     userInputs,
		PasswordLength: len([]rune(password)),
		DateAnalyzed:   time.Now(),
	}
}

// Scrub removes the plaintext password and hint material from the report.
// Called by the pipeline after the last step so the report can be logged,
// serialized, and persisted without leaking secrets.
func (r *AnalysisReport) Scrub() {
	r.Password = ""
	r.UserInputs = nil
}

// AddSuggestion appends a suggestion, skipping duplicates.
func (r *AnalysisReport) AddSuggestion(suggestion string) {
	for _, s := range r.Suggestions {
		if s == suggestion {
			return
		}
	}
	r.Suggestions = append(r.Suggestions, suggestion)
}
