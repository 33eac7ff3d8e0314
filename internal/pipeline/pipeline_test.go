package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/passforge/passforge/internal/model"
)

// failingStep is a test step that always fails.
type failingStep struct{}

func (s *failingStep) Name() string { return "failing" }
func (s *failingStep) Do(_ context.Context, _ *model.AnalysisReport) error {
	return errors.New("step exploded")
}

// TestDefaultPipelineOrder verifies the standard step sequence.
func TestDefaultPipelineOrder(t *testing.T) {
	t.Parallel()

	p := DefaultPipeline()

	want := []string{"composition", "common-password", "zxcvbn", "entropy", "suggest"}
	got := p.StepNames()

	if len(got) != len(want) {
		t.Fatalf("expected %d steps, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

// TestExecuteCommonPassword verifies that a breached password scores 0
// with a warning, regardless of composition.
func TestExecuteCommonPassword(t *testing.T) {
	t.Parallel()

	report := model.NewAnalysisReport("password", nil)
	if err := DefaultPipeline().Execute(context.Background(), report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !report.CommonPassword {
		t.Error("expected common-password flag")
	}
	if report.Score != 0 {
		t.Errorf("expected forced score 0, got %d", report.Score)
	}
	if report.Strength != model.StrengthVeryWeak {
		t.Errorf("expected VERY WEAK strength, got %v", report.Strength)
	}
	if report.Warning == "" {
		t.Error("expected a warning for a breached password")
	}
}

// TestExecuteStrongPassword verifies a full report for a high-quality
// password: positive score, crack times, digest, no plaintext left behind.
func TestExecuteStrongPassword(t *testing.T) {
	t.Parallel()

	const pw = "kV9#mQz!2wXr@7Lp"

	report := model.NewAnalysisReport(pw, nil)
	if err := DefaultPipeline().Execute(context.Background(), report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Score < 3 {
		t.Errorf("expected score >= 3 for a random 16-char password, got %d", report.Score)
	}
	if len(report.CrackTimes) != 4 {
		t.Errorf("expected 4 crack-time scenarios, got %d", len(report.CrackTimes))
	}
	if len(report.PasswordDigest) != 64 {
		t.Errorf("expected 64-char digest, got %d chars", len(report.PasswordDigest))
	}
	if report.Classes.Diversity() != 4 {
		t.Errorf("expected 4 character classes, got %d", report.Classes.Diversity())
	}
	if report.Password != "" {
		t.Error("expected password scrubbed after pipeline execution")
	}
}

// TestExecuteEmptyPassword verifies empty input is valid and trivially weak.
func TestExecuteEmptyPassword(t *testing.T) {
	t.Parallel()

	report := model.NewAnalysisReport("", nil)
	if err := DefaultPipeline().Execute(context.Background(), report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Score != 0 {
		t.Errorf("expected score 0 for empty password, got %d", report.Score)
	}
	if report.ErrorMessage != "" {
		t.Errorf("expected no error for empty password, got %q", report.ErrorMessage)
	}
}

// TestExecuteUserInputMatch verifies hint-derived passwords are flagged.
func TestExecuteUserInputMatch(t *testing.T) {
	t.Parallel()

	report := model.NewAnalysisReport("Fluffy2020!", []string{"fluffy", "2020"})
	if err := DefaultPipeline().Execute(context.Background(), report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !report.UserInputMatch {
		t.Error("expected user-input match flag")
	}
	if len(report.Suggestions) == 0 {
		t.Error("expected suggestions for a hint-derived password")
	}
}

// TestExecuteCancellation verifies context cancellation aborts the pipeline.
func TestExecuteCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := model.NewAnalysisReport("whatever", nil)
	err := DefaultPipeline().Execute(ctx, report)

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if report.Password != "" {
		t.Error("expected password scrubbed even on cancellation")
	}
}

// TestExecuteStopOnError verifies default fail-fast behavior.
func TestExecuteStopOnError(t *testing.T) {
	t.Parallel()

	p := New()
	p.AddSteps(&failingStep{}, &CompositionStep{})

	report := model.NewAnalysisReport("abc", nil)
	err := p.Execute(context.Background(), report)

	if err == nil {
		t.Fatal("expected error from failing step")
	}
	if report.PasswordDigest != "" {
		t.Error("expected later steps skipped after failure")
	}
	if report.ErrorMessage == "" {
		t.Error("expected error recorded in report")
	}
}

// TestExecuteContinueOnError verifies that the option lets later steps run.
func TestExecuteContinueOnError(t *testing.T) {
	t.Parallel()

	p := New(WithContinueOnError(true))
	p.AddSteps(&failingStep{}, &CompositionStep{})

	report := model.NewAnalysisReport("abc", nil)
	if err := p.Execute(context.Background(), report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.PasswordDigest == "" {
		t.Error("expected composition step to run after failure")
	}
}
