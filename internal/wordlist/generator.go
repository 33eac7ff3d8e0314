package wordlist

import (
	"sort"
	"strings"
)

// Default generation limits. The combination stage is factorial in the
// token count, so both a result cap and a hard in-flight bound exist.
const (
	// DefaultMaxCombo is the default maximum number of tokens combined
	// into a single entry. Three keeps runs sub-second for typical hint
	// counts while still producing name+pet+year style candidates.
	DefaultMaxCombo = 3

	// DefaultMaxWords is the default cap on the final wordlist size.
	DefaultMaxWords = 50000
)

// safetyLimit bounds the in-memory candidate set during combination.
// Permutation stops adding combinations beyond it; the final sort and
// MaxWords truncation still make output deterministic because
// candidates are produced in a fixed order. Variable so tests can lower it.
var safetyLimit = 1 << 20

// Options configures which transformation rules run and their bounds.
type Options struct {
	// CaseVariants expands each token into lower/upper/capitalized/title forms.
	CaseVariants bool

	// Leetspeak expands tokens into all leet substitution combinations.
	Leetspeak bool

	// Suffixes appends each entry of CommonSuffixes to combined tokens.
	Suffixes bool

	// Years are appended and prepended to combined tokens.
	Years []string

	// Separators join tokens during combination. Nil means DefaultSeparators.
	Separators []string

	// MaxCombo is the maximum number of tokens per combination.
	// Values below 1 are treated as 1.
	MaxCombo int

	// MaxWords caps the final result. Zero or negative means DefaultMaxWords
	// is NOT applied; use Options from DefaultOptions for the default cap.
	MaxWords int
}

// DefaultOptions returns the options used when no flags or profile
// override them: all rules enabled, standard separators and limits.
func DefaultOptions() Options {
	return Options{
		CaseVariants: true,
		Leetspeak:    true,
		Suffixes:     true,
		Separators:   DefaultSeparators,
		MaxCombo:     DefaultMaxCombo,
		MaxWords:     DefaultMaxWords,
	}
}

// Result holds the generated wordlist.
type Result struct {
	// Entries are unique candidate passwords sorted by (length, lexicographic).
	Entries []string

	// Truncated is true when MaxWords or the safety limit cut generation short.
	Truncated bool
}

// Generate produces the candidate wordlist for the given hints.
// An empty or all-blank hint list yields an empty result, not an error.
//
// Stage order matches the transformation model: tokenize, per-token case
// and leet expansion, token combination, year append/prepend, suffix
// append, dedupe, sort, cap.
func Generate(hints []string, opts Options) Result {
	if opts.MaxCombo < 1 {
		opts.MaxCombo = 1
	}
	separators := opts.Separators
	if separators == nil {
		separators = DefaultSeparators
	}

	base := baseTokens(hints)
	if len(base) == 0 {
		return Result{Entries: []string{}}
	}

	// Per-token expansion.
	expanded := make(map[string]struct{})
	for token := range base {
		variants := []string{token}
		if opts.CaseVariants {
			variants = caseVariants(token)
		}
		for _, variant := range variants {
			if opts.Leetspeak {
				for _, leet := range leetVariants(variant) {
					expanded[leet] = struct{}{}
				}
			} else {
				expanded[variant] = struct{}{}
			}
		}
	}

	// Combination works over a sorted slice so output is deterministic.
	tokens := sortedKeys(expanded)
	combined, hitLimit := combineTokens(tokens, opts.MaxCombo, separators)

	withYears := applyYears(combined, opts.Years)

	final := withYears
	if opts.Suffixes {
		final = applySuffixes(withYears, CommonSuffixes)
	}

	entries := sortedKeys(final)
	sort.Slice(entries, func(i, j int) bool {
		if len(entries[i]) != len(entries[j]) {
			return len(entries[i]) < len(entries[j])
		}
		return entries[i] < entries[j]
	})

	truncated := hitLimit
	if opts.MaxWords > 0 && len(entries) > opts.MaxWords {
		entries = entries[:opts.MaxWords]
		truncated = true
	}

	return Result{Entries: entries, Truncated: truncated}
}

// combineTokens joins permutations of up to maxCombo distinct tokens with
// each separator. The second return reports whether the safety limit cut
// permutation short, which is the only stage that can actually drop
// candidates before the MaxWords cap.
func combineTokens(tokens []string, maxCombo int, separators []string) (map[string]struct{}, bool) {
	combos := make(map[string]struct{})
	if maxCombo > len(tokens) {
		maxCombo = len(tokens)
	}

	used := make([]bool, len(tokens))
	current := make([]string, 0, maxCombo)
	hitLimit := false

	var permute func()
	permute = func() {
		if len(combos) >= safetyLimit {
			hitLimit = true
			return
		}
		if len(current) > 0 {
			for _, sep := range separators {
				combos[strings.Join(current, sep)] = struct{}{}
			}
		}
		if len(current) == maxCombo {
			return
		}
		for i, token := range tokens {
			if len(combos) >= safetyLimit {
				hitLimit = true
				return
			}
			if used[i] {
				continue
			}
			used[i] = true
			current = append(current, token)
			permute()
			current = current[:len(current)-1]
			used[i] = false
		}
	}
	permute()

	return combos, hitLimit
}

// applyYears adds year-appended and year-prepended variants alongside the
// originals. With no years configured the input set is returned unchanged.
func applyYears(words map[string]struct{}, years []string) map[string]struct{} {
	if len(years) == 0 {
		return words
	}

	out := make(map[string]struct{}, len(words)*(1+2*len(years)))
	for word := range words {
		out[word] = struct{}{}
		for _, year := range years {
			out[word+year] = struct{}{}
			out[year+word] = struct{}{}
		}
	}
	return out
}

// applySuffixes adds suffix-appended variants alongside the originals.
func applySuffixes(words map[string]struct{}, suffixes []string) map[string]struct{} {
	out := make(map[string]struct{}, len(words)*(1+len(suffixes)))
	for word := range words {
		out[word] = struct{}{}
		for _, suffix := range suffixes {
			out[word+suffix] = struct{}{}
		}
	}
	return out
}

// sortedKeys returns the map keys in lexicographic order.
func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
