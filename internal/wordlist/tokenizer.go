package wordlist

import (
	"strings"
	"unicode"
)

// SplitTokens splits a hint at digit/non-digit boundaries, keeping both
// sides. "Max2020" becomes ["Max", "2020"], so a combined hint still
// contributes its name and year parts independently.
func SplitTokens(hint string) []string {
	var tokens []string
	var buf strings.Builder
	lastDigit := false

	for i, r := range hint {
		isDigit := unicode.IsDigit(r)
		if i > 0 && isDigit != lastDigit {
			tokens = append(tokens, buf.String())
			buf.Reset()
		}
		buf.WriteRune(r)
		lastDigit = isDigit
	}
	if buf.Len() > 0 {
		tokens = append(tokens, buf.String())
	}
	return tokens
}

// baseTokens collects the deduplicated token set for a hint list: each
// trimmed hint itself plus its digit-boundary fragments. Empty hints are
// skipped.
func baseTokens(hints []string) map[string]struct{} {
	base := make(map[string]struct{})
	for _, hint := range hints {
		hint = strings.TrimSpace(hint)
		if hint == "" {
			continue
		}
		base[hint] = struct{}{}
		for _, token := range SplitTokens(hint) {
			if token != "" {
				base[token] = struct{}{}
			}
		}
	}
	return base
}
