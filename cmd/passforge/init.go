package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

//go:embed templates/passforge.yaml
var configTemplate embed.FS

// configFileName is the default configuration file name.
const configFileName = ".passforge"

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new passforge configuration file",
		Long: `Init creates a new .passforge configuration file in the current directory.

The generated file includes:
- Commented defaults for every generation rule
- Example profiles ("quick" and "thorough")
- Documentation for all available options

Examples:
  # Create .passforge in current directory
  passforge init

  # Create config file at a specific path
  passforge init -o myconfig.yaml

  # Force overwrite existing file
  passforge init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", configFileName,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := configTemplate.ReadFile("templates/passforge.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(cmd.OutOrStdout(), "\nEdit this file to configure generation rules such as:")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Named rule profiles (quick, thorough)")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Years and separators for token combination")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Combination depth and wordlist size caps")

	return nil
}
