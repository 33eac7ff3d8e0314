package scorer

import (
	_ "embed"
	"strings"
	"sync"
)

//go:embed common_passwords.txt
var commonPasswordsRaw string

// commonPasswords holds the embedded breached-password list, lowercased for
// case-insensitive lookup. Parsed lazily on first use.
var (
	commonPasswords     map[string]struct{}
	commonPasswordsOnce sync.Once
)

func loadCommonPasswords() {
	lines := strings.Split(commonPasswordsRaw, "\n")
	commonPasswords = make(map[string]struct{}, len(lines))
	for _, line := range lines {
		pw := strings.TrimSpace(line)
		if pw == "" {
			continue
		}
		commonPasswords[strings.ToLower(pw)] = struct{}{}
	}
}

// IsCommon reports whether the password appears in the embedded
// common-password list. Matching is case-insensitive because attackers try
// case variants of list entries as a matter of course.
func IsCommon(password string) bool {
	commonPasswordsOnce.Do(loadCommonPasswords)
	_, found := commonPasswords[strings.ToLower(password)]
	return found
}
