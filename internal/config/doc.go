// Package config provides configuration structures and utilities for
// passforge. It defines the options for password analysis and wordlist
// generation, the YAML profile file format, and XDG directory helpers.
package config
