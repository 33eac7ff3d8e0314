package pipeline

import (
	"context"
	"strings"
	"unicode"

	"github.com/passforge/passforge/internal/model"
	"github.com/passforge/passforge/internal/scorer"
)

// minRecommendedLength is the length below which a suggestion to lengthen
// the password is always emitted.
const minRecommendedLength = 12

// lowEntropyThreshold in bits. Below this, offline cracking with a fast
// hash finishes within hours, which warrants a warning of its own.
const lowEntropyThreshold = 40

// CompositionStep records the password digest and character-class summary.
// It runs first because later steps read the class counts.
type CompositionStep struct{}

// Name returns the step name.
func (s *CompositionStep) Name() string { return "composition" }

// Do computes the digest and class counts.
func (s *CompositionStep) Do(_ context.Context, report *model.AnalysisReport) error {
	report.PasswordDigest = scorer.Digest(report.Password)
	report.Classes = scorer.Classes(report.Password)
	return nil
}

// CommonPasswordStep checks the password against the embedded
// breached-password list.
type CommonPasswordStep struct{}

// Name returns the step name.
func (s *CommonPasswordStep) Name() string { return "common-password" }

// Do flags membership in the common-password list.
func (s *CommonPasswordStep) Do(_ context.Context, report *model.AnalysisReport) error {
	report.CommonPassword = scorer.IsCommon(report.Password)
	return nil
}

// ZxcvbnStep runs zxcvbn pattern-matching and sets the score.
type ZxcvbnStep struct{}

// Name returns the step name.
func (s *ZxcvbnStep) Name() string { return "zxcvbn" }

// Do scores the password. User inputs act as an attacker-known dictionary.
// A common-password hit forces the score to 0 regardless of what pattern
// matching concluded.
func (s *ZxcvbnStep) Do(_ context.Context, report *model.AnalysisReport) error {
	result := scorer.Score(report.Password, report.UserInputs)
	report.Score = result.Score
	report.EntropyBits = result.EntropyBits

	report.UserInputMatch = matchesUserInput(report.Password, report.UserInputs)

	if report.CommonPassword {
		report.Score = 0
	}

	report.Strength = model.StrengthFromScore(report.Score)
	report.StrengthLabel = report.Strength.String()
	return nil
}

// matchesUserInput reports whether the password contains any hint of at
// least three characters, case-insensitively. Shorter hints match too
// often to be meaningful.
func matchesUserInput(password string, userInputs []string) bool {
	lower := strings.ToLower(password)
	for _, input := range userInputs {
		input = strings.ToLower(strings.TrimSpace(input))
		if len(input) >= 3 && strings.Contains(lower, input) {
			return true
		}
	}
	return false
}

// EntropyStep computes the character-class entropy heuristic and derives
// crack-time estimates for the standard attack scenarios.
type EntropyStep struct{}

// Name returns the step name.
func (s *EntropyStep) Name() string { return "entropy" }

// Do fills the fallback entropy and crack times. Crack times use the
// zxcvbn estimate when available because it accounts for patterns; the
// naive formula dramatically overestimates dictionary-based passwords.
func (s *EntropyStep) Do(_ context.Context, report *model.AnalysisReport) error {
	report.FallbackEntropyBits = scorer.FallbackEntropy(report.Password)

	effective := report.EntropyBits
	if effective <= 0 {
		effective = report.FallbackEntropyBits
	}
	report.CrackTimes = scorer.CrackTimeEstimates(effective)
	return nil
}

// SuggestStep builds the warning and improvement suggestions from the
// findings accumulated by earlier steps.
type SuggestStep struct{}

// Name returns the step name.
func (s *SuggestStep) Name() string { return "suggest" }

// Do derives user-facing messaging. The first applicable warning in
// severity order wins; suggestions accumulate.
func (s *SuggestStep) Do(_ context.Context, report *model.AnalysisReport) error {
	addAdvice := func(key string) {
		advice, ok := model.AdviceFor(key)
		if !ok {
			return
		}
		if report.Warning == "" && advice.Warning != "" {
			report.Warning = advice.Warning
		}
		if advice.Suggestion != "" {
			report.AddSuggestion(advice.Suggestion)
		}
	}

	if report.CommonPassword {
		addAdvice("common_password")
	}
	if report.UserInputMatch {
		addAdvice("user_input_match")
	}
	if report.PasswordLength < minRecommendedLength {
		addAdvice("short_length")
	}

	if report.Classes.Lower == 0 {
		addAdvice("no_lowercase")
	}
	if report.Classes.Upper == 0 {
		addAdvice("no_uppercase")
	}
	if report.Classes.Digits == 0 {
		addAdvice("no_digits")
	}
	if report.Classes.Symbols == 0 {
		addAdvice("no_symbols")
	}

	if hasPredictableCasing(report.Password) {
		addAdvice("predictable_casing")
	}
	if hasTrailingDigits(report.Password) {
		addAdvice("trailing_digits")
	}

	effective := report.EntropyBits
	if effective <= 0 {
		effective = report.FallbackEntropyBits
	}
	if report.PasswordLength > 0 && effective < lowEntropyThreshold {
		addAdvice("low_entropy")
	}

	return nil
}

// hasPredictableCasing reports the classic pattern of a single uppercase
// first letter with everything else lowercase.
func hasPredictableCasing(password string) bool {
	runes := []rune(password)
	if len(runes) < 2 || !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if unicode.IsUpper(r) {
			return false
		}
	}
	// At least one more letter must exist for casing to matter.
	for _, r := range runes[1:] {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}

// hasTrailingDigits reports a letter-body followed only by digits, the
// most common "word plus number" construction.
func hasTrailingDigits(password string) bool {
	runes := []rune(password)
	if len(runes) < 2 || !unicode.IsDigit(runes[len(runes)-1]) {
		return false
	}

	// Walk back over the digit run; something non-digit must precede it.
	i := len(runes) - 1
	for i >= 0 && unicode.IsDigit(runes[i]) {
		i--
	}
	return i >= 0
}
