package model

// Advice contains the human-readable messaging for a weakness type.
type Advice struct {
	// Warning is the short problem statement shown once per report.
	Warning string

	// Suggestion is the actionable recommendation.
	Suggestion string
}

// adviceCatalog maps weakness keys to their messaging.
// This centralized mapping keeps wording consistent across the text, JSON,
// and Markdown report formats.
//
// Design decision: We use a map rather than embedding messages at each
// detection site because:
// 1. It provides a single source of truth for user-facing wording
// 2. It allows updating messages without touching analysis logic
// 3. It makes it easy to review all messaging in one place
var adviceCatalog = map[string]Advice{
	"common_password": {
		Warning:    "This password appears in published breach lists and will be among the first guesses in any attack.",
		Suggestion: "Choose a password that does not appear in common-password lists.",
	},
	"user_input_match": {
		Warning:    "This password is derived from personal information an attacker can easily discover.",
		Suggestion: "Avoid names, pets, and dates connected to you; attackers try those first.",
	},
	"short_length": {
		Warning:    "Short passwords fall quickly to brute force regardless of character mix.",
		Suggestion: "Use at least 12 characters; length helps more than complexity.",
	},
	"no_lowercase": {
		Suggestion: "Add lowercase letters to enlarge the search space.",
	},
	"no_uppercase": {
		Suggestion: "Add uppercase letters to enlarge the search space.",
	},
	"no_digits": {
		Suggestion: "Add digits to enlarge the search space.",
	},
	"no_symbols": {
		Suggestion: "Add symbols (e.g., !, #, %) to enlarge the search space.",
	},
	"predictable_casing": {
		Suggestion: "Capitalizing only the first letter is a predictable pattern; mix case elsewhere.",
	},
	"trailing_digits": {
		Suggestion: "Digits appended at the end are a predictable pattern; place them mid-word instead.",
	},
	"low_entropy": {
		Warning:    "The estimated entropy is low enough for offline cracking within hours.",
		Suggestion: "Consider a passphrase of several unrelated words instead.",
	},
}

// AdviceFor returns the advice for a weakness key.
// The second return value is false when the key is unknown.
func AdviceFor(key string) (Advice, bool) {
	advice, ok := adviceCatalog[key]
	return advice, ok
}
