// Package pipeline orchestrates password analysis as a sequence of steps.
//
// Each step examines the password and records its findings on the shared
// AnalysisReport: character composition, common-password membership,
// zxcvbn scoring, entropy estimation, and suggestion building. Steps run
// in a fixed order because later steps read what earlier ones wrote.
//
// The BatchProcessor runs the pipeline concurrently over a list of
// passwords, bounded by a concurrency limit, for batch file analysis.
package pipeline
