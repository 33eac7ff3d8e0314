// Package main provides the entry point for the passforge CLI.
//
// Passforge audits password strength and generates personal-hint wordlists
// for authorized penetration testing and self-assessment.
//
// Usage:
//
//	passforge analyze <password>
//	passforge generate <hint> [hint...]
//
// See --help for all available options.
package main

// main is the entry point for passforge.
func main() {
	Execute()
}
