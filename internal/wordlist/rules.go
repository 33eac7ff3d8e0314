package wordlist

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// leetMap defines the substitution alternatives per letter. Each letter
// maps to itself plus its visually similar digit/symbol replacements, so
// the cartesian expansion always includes the unmodified word.
var leetMap = map[rune][]rune{
	'a': {'a', '@', '4'},
	'e': {'e', '3'},
	'i': {'i', '1', '!'},
	'o': {'o', '0'},
	's': {'s', '5', '$'},
	't': {'t', '7'},
}

// CommonSuffixes are appended to combined tokens when the suffix rule is
// enabled. The list mirrors what leaked-credential corpora show users
// actually append: punctuation, short digit runs, and recent years.
var CommonSuffixes = []string{
	"!", "@", "#", "1", "12", "123", "1234",
	"2020", "2021", "2022", "2023", "2024", "2025",
	".", "*", "00",
}

// DefaultSeparators are the join strings used for token combination.
var DefaultSeparators = []string{"", ".", "-", "_"}

// titleCaser is shared; cases.Caser is not safe for concurrent use, but
// generation is single-threaded per run.
var titleCaser = cases.Title(language.English)

// caseVariants returns the deduplicated case forms of a word: the original,
// lowercase, uppercase, capitalized, and title case.
func caseVariants(word string) []string {
	seen := make(map[string]struct{}, 5)
	var variants []string
	for _, v := range []string{
		word,
		strings.ToLower(word),
		strings.ToUpper(word),
		capitalize(word),
		titleCaser.String(word),
	} {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		variants = append(variants, v)
	}
	return variants
}

// capitalize uppercases the first rune and lowercases the rest.
func capitalize(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	first := unicode.ToUpper(runes[0])
	return string(first) + strings.ToLower(string(runes[1:]))
}

// leetVariants expands a word into all leetspeak substitution combinations.
// Substitution candidates are looked up case-insensitively, but
// non-substituted letters keep their original case.
func leetVariants(word string) []string {
	variants := []string{""}
	for _, r := range word {
		alternatives, ok := leetMap[unicode.ToLower(r)]
		if !ok {
			alternatives = []rune{r}
		} else if !unicode.IsLower(r) {
			// Keep the original rune as the first alternative so
			// uppercase letters survive unsubstituted.
			alternatives = append([]rune{r}, alternatives[1:]...)
		}

		next := make([]string, 0, len(variants)*len(alternatives))
		for _, prefix := range variants {
			for _, alt := range alternatives {
				next = append(next, prefix+string(alt))
			}
		}
		variants = next
	}
	return variants
}
