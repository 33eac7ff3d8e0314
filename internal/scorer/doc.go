// Package scorer implements password strength estimation.
//
// The primary estimate comes from zxcvbn pattern matching, which recognizes
// dictionary words, keyboard walks, dates, and repeats. A character-class
// entropy heuristic is always computed alongside it. The package also checks
// passwords against an embedded list of commonly breached passwords.
//
// All functions are pure: no I/O, no global mutable state.
package scorer
