package scorer

import (
	"strings"
	"testing"
)

// TestScoreEmptyPassword verifies that an empty password is valid input
// and yields the lowest possible score rather than an error.
func TestScoreEmptyPassword(t *testing.T) {
	t.Parallel()

	result := Score("", nil)
	if result.Score != 0 {
		t.Errorf("expected score 0 for empty password, got %d", result.Score)
	}
	if result.CrackTimeDisplay != "instant" {
		t.Errorf("expected instant crack time for empty password, got %q", result.CrackTimeDisplay)
	}
}

// TestScoreRange verifies scores stay in the documented 0-4 range across
// a spread of password qualities.
func TestScoreRange(t *testing.T) {
	t.Parallel()

	passwords := []string{
		"a",
		"password",
		"Max2020",
		"tr0ub4dor&3",
		"correct horse battery staple",
		"xkvqjwpzmtrd!7Qf",
	}

	for _, pw := range passwords {
		result := Score(pw, nil)
		if result.Score < 0 || result.Score > 4 {
			t.Errorf("Score(%q) = %d, want 0-4", pw, result.Score)
		}
	}
}

// TestScoreMonotonicInLength verifies the scoring property that score is
// non-decreasing in length while character-class diversity is constant.
// Random-looking lowercase strings are used so pattern matching does not
// interfere with the length effect.
func TestScoreMonotonicInLength(t *testing.T) {
	t.Parallel()

	chain := []string{"xkvq", "xkvqjwpz", "xkvqjwpzmtrd", "xkvqjwpzmtrdbghn"}

	prev := -1
	for _, pw := range chain {
		result := Score(pw, nil)
		if result.Score < prev {
			t.Errorf("score decreased with length: Score(%q) = %d, previous %d", pw, result.Score, prev)
		}
		prev = result.Score
	}
}

// TestScorePenalizesUserInputs verifies that hint-derived passwords score
// no better than the same analysis without the hint dictionary.
func TestScorePenalizesUserInputs(t *testing.T) {
	t.Parallel()

	const pw = "fluffywhiskers"

	withHints := Score(pw, []string{"fluffywhiskers"})
	withoutHints := Score(pw, nil)

	if withHints.Score > withoutHints.Score {
		t.Errorf("hint dictionary increased score: with=%d without=%d",
			withHints.Score, withoutHints.Score)
	}
}

// TestDigest verifies digest shape and determinism.
func TestDigest(t *testing.T) {
	t.Parallel()

	t.Run("is 64 hex characters", func(t *testing.T) {
		t.Parallel()
		digest := Digest("hunter2")
		if len(digest) != 64 {
			t.Errorf("expected 64-character digest, got %d", len(digest))
		}
		if strings.ToLower(digest) != digest {
			t.Error("expected lowercase hex digest")
		}
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()
		if Digest("hunter2") != Digest("hunter2") {
			t.Error("expected identical digests for identical input")
		}
	})

	t.Run("differs across inputs", func(t *testing.T) {
		t.Parallel()
		if Digest("hunter2") == Digest("hunter3") {
			t.Error("expected different digests for different input")
		}
	})
}

// TestIsCommon verifies the embedded breached-password lookup.
func TestIsCommon(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"top breached password", "123456", true},
		{"dictionary classic", "password", true},
		{"case-insensitive match", "PASSWORD", true},
		{"mixed case match", "LetMeIn", true},
		{"random string", "xkvqjwpzmtrd", false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsCommon(tt.password); got != tt.want {
				t.Errorf("IsCommon(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}
