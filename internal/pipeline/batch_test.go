package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/passforge/passforge/internal/model"
)

// TestProcessBatchOrder verifies reports come back in input order under
// concurrency.
func TestProcessBatchOrder(t *testing.T) {
	t.Parallel()

	passwords := []string{
		"password",
		"kV9#mQz!2wXr@7Lp",
		"",
		"Fluffy2020!",
		"letmein",
	}

	bp := NewBatchProcessor(func() *Pipeline { return DefaultPipeline() }, WithConcurrency(3))

	reports, err := bp.ProcessBatch(context.Background(), passwords, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(reports) != len(passwords) {
		t.Fatalf("expected %d reports, got %d", len(passwords), len(reports))
	}
	for i, report := range reports {
		if report == nil {
			t.Fatalf("report %d is nil", i)
		}
		if report.PasswordLength != len([]rune(passwords[i])) {
			t.Errorf("report %d out of order: length %d, want %d", i, report.PasswordLength, len([]rune(passwords[i])))
		}
		if report.Password != "" {
			t.Errorf("report %d retained the plaintext password", i)
		}
	}

	if reports[0].Score != 0 {
		t.Errorf("expected score 0 for breached password, got %d", reports[0].Score)
	}
	if reports[1].Score < 3 {
		t.Errorf("expected score >= 3 for strong password, got %d", reports[1].Score)
	}
}

// TestProcessBatchSharedUserInputs verifies hints apply to every password.
func TestProcessBatchSharedUserInputs(t *testing.T) {
	t.Parallel()

	bp := NewBatchProcessor(func() *Pipeline { return DefaultPipeline() })

	reports, err := bp.ProcessBatch(context.Background(), []string{"rex2019!", "kV9#mQz!2w"}, []string{"rex"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reports[0].UserInputMatch {
		t.Error("expected first password flagged for hint match")
	}
	if reports[1].UserInputMatch {
		t.Error("expected second password unflagged")
	}
}

// TestProcessBatchWithCallback verifies the callback fires once per
// password with the matching index.
func TestProcessBatchWithCallback(t *testing.T) {
	t.Parallel()

	passwords := []string{"one1", "two22", "three333"}

	var mu sync.Mutex
	seen := make(map[int]int)

	bp := NewBatchProcessor(func() *Pipeline { return DefaultPipeline() })

	err := bp.ProcessBatchWithCallback(context.Background(), passwords, nil, func(report *model.AnalysisReport, index int) {
		mu.Lock()
		defer mu.Unlock()
		seen[index] = report.PasswordLength
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(seen) != len(passwords) {
		t.Fatalf("expected %d callback invocations, got %d", len(passwords), len(seen))
	}
	for i, pw := range passwords {
		if seen[i] != len(pw) {
			t.Errorf("callback index %d saw length %d, want %d", i, seen[i], len(pw))
		}
	}
}

// TestProcessBatchCancellation verifies a cancelled context surfaces as an
// error.
func TestProcessBatchCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	bp := NewBatchProcessor(func() *Pipeline { return DefaultPipeline() })

	_, err := bp.ProcessBatch(ctx, []string{"a", "b", "c"}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

// TestProcessBatchEmpty verifies an empty batch is a no-op.
func TestProcessBatchEmpty(t *testing.T) {
	t.Parallel()

	bp := NewBatchProcessor(func() *Pipeline { return DefaultPipeline() })

	reports, err := bp.ProcessBatch(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reports) != 0 {
		t.Errorf("expected no reports, got %d", len(reports))
	}
}
