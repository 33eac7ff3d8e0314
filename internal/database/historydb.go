package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/passforge/passforge/internal/model"
)

// ErrUnscrubbedReport is returned when a report still carrying plaintext
// material is handed to the database.
var ErrUnscrubbedReport = errors.New("refusing to store report containing plaintext password")

// HistoryDB provides SQLite-based storage for analysis results and
// wordlist generation runs.
//
// Design decision: We use a single database file for both analyses and
// generation runs rather than separate files per concern. This keeps the
// data directory simple and lets the history command present both in one
// query session.
type HistoryDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a HistoryDB at the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, "passforge.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating new
	// files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer; a single pooled connection avoids
	// SQLITE_BUSY under concurrent saves.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Close closes the database connection.
func (hdb *HistoryDB) Close() error {
	return hdb.db.Close()
}

// Path returns the path of the underlying database file.
func (hdb *HistoryDB) Path() string {
	return hdb.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (hdb *HistoryDB) createTables() error {
	schema := `
	-- Analyses store the result of each password strength check.
	-- Passwords are identified by SHA3-256 digest only.
	CREATE TABLE IF NOT EXISTS analyses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		password_digest TEXT NOT NULL,
		password_length INTEGER NOT NULL,
		score INTEGER NOT NULL,
		strength TEXT NOT NULL,
		entropy_bits REAL,
		common_password INTEGER DEFAULT 0,
		user_input_match INTEGER DEFAULT 0,
		report_json TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_analyses_digest ON analyses(password_digest);
	CREATE INDEX IF NOT EXISTS idx_analyses_timestamp ON analyses(timestamp);

	-- Generation runs store wordlist run metadata, never the entries.
	CREATE TABLE IF NOT EXISTS generation_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL UNIQUE,
		hint_count INTEGER NOT NULL,
		entry_count INTEGER NOT NULL,
		truncated INTEGER DEFAULT 0,
		output_path TEXT,
		checksum TEXT,
		report_json TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_runs_run_id ON generation_runs(run_id);
	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON generation_runs(timestamp);
	`

	_, err := hdb.db.ExecContext(context.Background(), schema)
	return err
}

// SaveAnalysis stores a completed analysis report.
// The report must already be scrubbed; a report still carrying its
// plaintext password is rejected with ErrUnscrubbedReport.
func (hdb *HistoryDB) SaveAnalysis(ctx context.Context, report *model.AnalysisReport) (int64, error) {
	if report.Password != "" || len(report.UserInputs) != 0 {
		return 0, ErrUnscrubbedReport
	}

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize report: %w", err)
	}

	query := `
	INSERT INTO analyses (password_digest, password_length, score, strength, entropy_bits, common_password, user_input_match, report_json)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := hdb.db.ExecContext(ctx, query,
		report.PasswordDigest,
		report.PasswordLength,
		report.Score,
		report.StrengthLabel,
		report.EntropyBits,
		boolToInt(report.CommonPassword),
		boolToInt(report.UserInputMatch),
		string(reportJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save analysis: %w", err)
	}

	return result.LastInsertId()
}

// GetLatestAnalysis retrieves the most recent analysis for a password digest.
// Returns nil without error when no analysis exists.
func (hdb *HistoryDB) GetLatestAnalysis(ctx context.Context, digest string) (*model.AnalysisReport, error) {
	query := `
	SELECT report_json FROM analyses
	WHERE password_digest = ?
	ORDER BY timestamp DESC, id DESC
	LIMIT 1
	`

	var reportJSON string
	err := hdb.db.QueryRowContext(ctx, query, digest).Scan(&reportJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	var report model.AnalysisReport
	if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}

	return &report, nil
}

// GetAnalysisHistory retrieves all analyses for a password digest,
// newest first.
func (hdb *HistoryDB) GetAnalysisHistory(ctx context.Context, digest string) ([]*model.AnalysisReport, error) {
	query := `
	SELECT report_json FROM analyses
	WHERE password_digest = ?
	ORDER BY timestamp DESC, id DESC
	`

	rows, err := hdb.db.QueryContext(ctx, query, digest)
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis history: %w", err)
	}
	defer rows.Close()

	var reports []*model.AnalysisReport
	for rows.Next() {
		var reportJSON string
		if err := rows.Scan(&reportJSON); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}

		var report model.AnalysisReport
		if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
			continue // Skip malformed reports
		}
		reports = append(reports, &report)
	}

	return reports, rows.Err()
}

// AnalysisMetadata contains summary information about a stored analysis.
// This is used for displaying history without loading full reports.
type AnalysisMetadata struct {
	// ID is the unique identifier of the analysis in the database.
	ID int64

	// PasswordDigest identifies the analyzed password.
	PasswordDigest string

	// PasswordLength is the rune count of the analyzed password.
	PasswordLength int

	// Score is the 0-4 strength score.
	Score int

	// Strength is the qualitative strength label.
	Strength string

	// CommonPassword is true when the password was in the breached list.
	CommonPassword bool

	// Timestamp is when the analysis was performed.
	Timestamp time.Time
}

// ListAnalyses retrieves metadata for stored analyses, newest first.
// A limit of 0 returns all rows.
func (hdb *HistoryDB) ListAnalyses(ctx context.Context, limit int) ([]AnalysisMetadata, error) {
	query := `
	SELECT id, password_digest, password_length, score, strength, common_password, timestamp
	FROM analyses
	ORDER BY timestamp DESC, id DESC
	`
	args := make([]interface{}, 0, 1)
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := hdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var results []AnalysisMetadata
	for rows.Next() {
		var meta AnalysisMetadata
		var common int
		var timestamp string

		if err := rows.Scan(&meta.ID, &meta.PasswordDigest, &meta.PasswordLength, &meta.Score, &meta.Strength, &common, &timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan metadata: %w", err)
		}

		meta.CommonPassword = common != 0
		meta.Timestamp = parseTimestamp(timestamp)
		results = append(results, meta)
	}

	return results, rows.Err()
}

// SaveGenerationRun stores the metadata of a wordlist generation run.
func (hdb *HistoryDB) SaveGenerationRun(ctx context.Context, report *model.GenerationReport) error {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to serialize generation report: %w", err)
	}

	query := `
	INSERT INTO generation_runs (run_id, hint_count, entry_count, truncated, output_path, checksum, report_json)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = hdb.db.ExecContext(ctx, query,
		report.RunID,
		report.HintCount,
		report.EntryCount,
		boolToInt(report.Truncated),
		report.OutputPath,
		report.Checksum,
		string(reportJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to save generation run: %w", err)
	}

	return nil
}

// GetGenerationRun retrieves a generation run by its run ID.
// Returns nil without error when no run exists.
func (hdb *HistoryDB) GetGenerationRun(ctx context.Context, runID string) (*model.GenerationReport, error) {
	query := `
	SELECT report_json FROM generation_runs
	WHERE run_id = ?
	`

	var reportJSON string
	err := hdb.db.QueryRowContext(ctx, query, runID).Scan(&reportJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get generation run: %w", err)
	}

	var report model.GenerationReport
	if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
		return nil, fmt.Errorf("failed to parse generation report: %w", err)
	}

	return &report, nil
}

// ListGenerationRuns retrieves stored generation runs, newest first.
// A limit of 0 returns all rows.
func (hdb *HistoryDB) ListGenerationRuns(ctx context.Context, limit int) ([]*model.GenerationReport, error) {
	query := `
	SELECT report_json FROM generation_runs
	ORDER BY timestamp DESC, id DESC
	`
	args := make([]interface{}, 0, 1)
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := hdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list generation runs: %w", err)
	}
	defer rows.Close()

	var reports []*model.GenerationReport
	for rows.Next() {
		var reportJSON string
		if err := rows.Scan(&reportJSON); err != nil {
			return nil, fmt.Errorf("failed to scan generation run: %w", err)
		}

		var report model.GenerationReport
		if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
			continue // Skip malformed reports
		}
		reports = append(reports, &report)
	}

	return reports, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// SQLite may return timestamps in different formats depending on configuration.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
