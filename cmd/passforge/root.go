// Package main provides the entry point for the passforge CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for passforge.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passforge",
		Short: "Password strength auditing and hint-based wordlist generation",
		Long: `Passforge audits password strength and generates targeted wordlists
from personal hints (names, pets, dates) for authorized security testing.

Analysis combines zxcvbn pattern matching, a breached-password list, and
character-class entropy estimation. Plaintext passwords never reach logs,
reports, or the history database; only SHA3-256 digests are retained.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
