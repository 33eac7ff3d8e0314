// Package wordlist generates candidate-password wordlists from personal
// hints (names, pets, dates) by applying bounded string transformation
// rules: case variants, leetspeak substitution, token combination, year
// append/prepend, and common suffixes.
//
// Generation is deterministic: the same hints and options always produce
// the same entries in the same order (sorted by length, then
// lexicographically). Uniqueness is enforced within a run.
package wordlist
