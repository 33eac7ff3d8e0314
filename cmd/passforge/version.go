package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version information injected at build time via ldflags. When a value is
// empty the binary was built without ldflags (go install, go run) and the
// module build info is consulted instead.
var (
	version = ""
	commit  = ""
	date    = ""
)

// buildSetting looks up a key in the embedded VCS build settings.
func buildSetting(key string) (string, bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value, true
		}
	}
	return "", false
}

// getVersion resolves the version: ldflags, then module build info,
// then "(devel)".
func getVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}

// getCommit resolves the commit hash, shortened to 7 characters when it
// comes from the embedded vcs.revision.
func getCommit() string {
	if commit != "" {
		return commit
	}
	if rev, ok := buildSetting("vcs.revision"); ok {
		if len(rev) > 7 {
			rev = rev[:7]
		}
		return rev
	}
	return "unknown"
}

// getDate resolves the build timestamp from ldflags or vcs.time.
func getDate() string {
	if date != "" {
		return date
	}
	if ts, ok := buildSetting("vcs.time"); ok {
		return ts
	}
	return "unknown"
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash, and build date of passforge.`,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "passforge version %s\n", getVersion())
			fmt.Fprintf(out, "  commit: %s\n", getCommit())
			fmt.Fprintf(out, "  built:  %s\n", getDate())
		},
	}
}
