package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestNewGenerateCmd tests the generate command creation.
func TestNewGenerateCmd(t *testing.T) {
	t.Parallel()

	cmd := NewGenerateCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "generate <hint> [hint...]" {
			t.Errorf("expected use 'generate <hint> [hint...]', got %q", cmd.Use)
		}
	})

	t.Run("has expected flags", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{
			"no-case", "no-leet", "no-suffixes", "years", "separators",
			"max-combo", "max-words", "profile", "config", "output",
			"json", "markdown", "no-save",
		} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected flag %q", name)
			}
		}
	})
}

// TestBuildGenerateConfig tests config construction from flags.
func TestBuildGenerateConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults enable all rules", func(t *testing.T) {
		t.Parallel()

		cmd := NewGenerateCmd()
		cfg, err := buildGenerateConfig(cmd, []string{"fluffy", "rex"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !cfg.CaseVariants || !cfg.Leetspeak || !cfg.Suffixes {
			t.Error("expected all rules enabled by default")
		}
		if len(cfg.Hints) != 2 {
			t.Errorf("expected 2 hints, got %v", cfg.Hints)
		}
	})

	t.Run("negative flags disable rules", func(t *testing.T) {
		t.Parallel()

		cmd := NewGenerateCmd()
		for _, flag := range []string{"no-case", "no-leet", "no-suffixes"} {
			if err := cmd.Flags().Set(flag, "true"); err != nil {
				t.Fatal(err)
			}
		}

		cfg, err := buildGenerateConfig(cmd, []string{"fluffy"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.CaseVariants || cfg.Leetspeak || cfg.Suffixes {
			t.Error("expected all rules disabled")
		}
	})

	t.Run("explicit missing config file errors", func(t *testing.T) {
		t.Parallel()

		cmd := NewGenerateCmd()
		if err := cmd.Flags().Set("config", filepath.Join(t.TempDir(), "missing.yaml")); err != nil {
			t.Fatal(err)
		}

		_, err := buildGenerateConfig(cmd, []string{"fluffy"})
		if err == nil {
			t.Error("expected error for missing explicit config file")
		}
	})

	t.Run("unknown profile errors", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), "conf.yaml")
		content := "profiles:\n  quick:\n    leet: false\n"
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		cmd := NewGenerateCmd()
		if err := cmd.Flags().Set("config", configPath); err != nil {
			t.Fatal(err)
		}
		if err := cmd.Flags().Set("profile", "nonexistent"); err != nil {
			t.Fatal(err)
		}

		_, err := buildGenerateConfig(cmd, []string{"fluffy"})
		if err == nil {
			t.Error("expected error for unknown profile")
		}
	})
}

// TestBuildGenerateOptions tests flag/profile precedence.
func TestBuildGenerateOptions(t *testing.T) {
	t.Parallel()

	t.Run("profile values apply when flags untouched", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), "conf.yaml")
		content := "profiles:\n  quick:\n    leet: false\n    maxCombo: 2\n"
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		cmd := NewGenerateCmd()
		if err := cmd.Flags().Set("config", configPath); err != nil {
			t.Fatal(err)
		}
		if err := cmd.Flags().Set("profile", "quick"); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildGenerateConfig(cmd, []string{"fluffy"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		opts := buildGenerateOptions(cmd, cfg)
		if opts.Leetspeak {
			t.Error("expected profile to disable leetspeak")
		}
		if opts.MaxCombo != 2 {
			t.Errorf("expected profile maxCombo 2, got %d", opts.MaxCombo)
		}
		if !opts.CaseVariants {
			t.Error("expected case variants to keep default")
		}
	})

	t.Run("explicit flag beats profile", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), "conf.yaml")
		content := "profiles:\n  quick:\n    maxCombo: 2\n"
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		cmd := NewGenerateCmd()
		if err := cmd.Flags().Set("config", configPath); err != nil {
			t.Fatal(err)
		}
		if err := cmd.Flags().Set("profile", "quick"); err != nil {
			t.Fatal(err)
		}
		if err := cmd.Flags().Set("max-combo", "1"); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildGenerateConfig(cmd, []string{"fluffy"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		opts := buildGenerateOptions(cmd, cfg)
		if opts.MaxCombo != 1 {
			t.Errorf("expected flag maxCombo 1 to win, got %d", opts.MaxCombo)
		}
	})
}

// TestRunGenerateCmd exercises the command end to end without the database.
func TestRunGenerateCmd(t *testing.T) {
	t.Run("exports wordlist file", func(t *testing.T) {
		outputPath := filepath.Join(t.TempDir(), "wordlist.txt")

		cmd := NewGenerateCmd()
		cmd.SetArgs([]string{"--no-save", "--no-suffixes", "--max-combo", "2", "-o", outputPath, "Max", "2020"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatalf("failed to read wordlist: %v", err)
		}

		entries := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(entries) == 0 {
			t.Fatal("expected non-empty wordlist")
		}

		set := make(map[string]bool, len(entries))
		for _, e := range entries {
			set[e] = true
		}
		for _, want := range []string{"max2020", "Max2020", "m4x2020", "2020max"} {
			if !set[want] {
				t.Errorf("expected entry %q in wordlist", want)
			}
		}

		// Owner-only permissions on generated attack material.
		info, err := os.Stat(outputPath)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm() != 0600 {
			t.Errorf("expected 0600 permissions, got %v", info.Mode().Perm())
		}
	})

	t.Run("requires at least one hint", func(t *testing.T) {
		cmd := NewGenerateCmd()
		cmd.SetArgs([]string{"--no-save"})

		if err := cmd.Execute(); err == nil {
			t.Error("expected error without hints")
		}
	})
}
