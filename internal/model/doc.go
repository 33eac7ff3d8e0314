// Package model defines the core data structures shared across passforge.
// It contains the strength analysis report, wordlist generation metadata,
// and the advice catalog used to build improvement suggestions.
package model
