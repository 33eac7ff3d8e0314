package model

import (
	"encoding/json"
	"strings"
	"testing"
)

// TestCharacterClassesDiversity verifies class counting per composition.
func TestCharacterClassesDiversity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		classes CharacterClasses
		want    int
	}{
		{"empty", CharacterClasses{}, 0},
		{"lowercase only", CharacterClasses{Lower: 8}, 1},
		{"lower and digits", CharacterClasses{Lower: 5, Digits: 3}, 2},
		{"three classes", CharacterClasses{Lower: 4, Upper: 1, Digits: 2}, 3},
		{"all classes", CharacterClasses{Lower: 4, Upper: 2, Digits: 2, Symbols: 1}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.classes.Diversity(); got != tt.want {
				t.Errorf("Diversity() = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestNewAnalysisReport verifies initial report state.
func TestNewAnalysisReport(t *testing.T) {
	t.Parallel()

	report := NewAnalysisReport("correct horse", []string{"horse"})

	if report.Password != "correct horse" {
		t.Errorf("expected password to be retained until Scrub, got %q", report.Password)
	}
	if report.PasswordLength != 13 {
		t.Errorf("expected PasswordLength 13, got %d", report.PasswordLength)
	}
	if report.DateAnalyzed.IsZero() {
		t.Error("expected DateAnalyzed to be set")
	}
}

// TestAnalysisReportScrub verifies that Scrub removes secret material.
func TestAnalysisReportScrub(t *testing.T) {
	t.Parallel()

	report := NewAnalysisReport("hunter2", []string{"hunter"})
	report.Scrub()

	if report.Password != "" {
		t.Error("expected password to be blanked after Scrub")
	}
	if report.UserInputs != nil {
		t.Error("expected user inputs to be cleared after Scrub")
	}
	// Non-secret fields survive scrubbing
	if report.PasswordLength != 7 {
		t.Errorf("expected PasswordLength to survive Scrub, got %d", report.PasswordLength)
	}
}

// TestAnalysisReportJSONOmitsPassword verifies the plaintext never appears
// in serialized output, regardless of whether Scrub was called.
func TestAnalysisReportJSONOmitsPassword(t *testing.T) {
	t.Parallel()

	report := NewAnalysisReport("sup3r-s3cret!", []string{"secret-hint"})
	report.Score = 2

	data, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(string(data), "sup3r-s3cret!") {
		t.Error("plaintext password leaked into JSON output")
	}
	if strings.Contains(string(data), "secret-hint") {
		t.Error("user input leaked into JSON output")
	}
}

// TestAddSuggestionDeduplicates verifies duplicate suggestions are dropped.
func TestAddSuggestionDeduplicates(t *testing.T) {
	t.Parallel()

	report := NewAnalysisReport("abc", nil)
	report.AddSuggestion("add digits")
	report.AddSuggestion("increase length")
	report.AddSuggestion("add digits")

	if len(report.Suggestions) != 2 {
		t.Errorf("expected 2 suggestions, got %d: %v", len(report.Suggestions), report.Suggestions)
	}
}

// TestAdviceFor verifies catalog lookup behavior.
func TestAdviceFor(t *testing.T) {
	t.Parallel()

	t.Run("known key returns advice", func(t *testing.T) {
		t.Parallel()
		advice, ok := AdviceFor("common_password")
		if !ok {
			t.Fatal("expected common_password to be in the catalog")
		}
		if advice.Suggestion == "" {
			t.Error("expected non-empty suggestion")
		}
	})

	t.Run("unknown key returns false", func(t *testing.T) {
		t.Parallel()
		if _, ok := AdviceFor("definitely_not_a_key"); ok {
			t.Error("expected lookup of unknown key to fail")
		}
	})
}
