// Package database provides SQLite-based storage for analysis history and
// wordlist generation runs.
//
// The database never stores plaintext passwords or hint strings. Analyses
// are keyed by the SHA3-256 digest of the password, and generation runs
// keep only rule metadata, counts, and output checksums. This makes the
// history file safe to back up or sync without exposing secrets.
//
// The package uses modernc.org/sqlite, a pure Go SQLite implementation,
// avoiding CGO dependencies for easier cross-compilation.
package database
