package scorer

import (
	"encoding/hex"

	zxcvbn "github.com/ccojocar/zxcvbn-go"
	"golang.org/x/crypto/sha3"
)

// Result holds the zxcvbn scoring output for a single password.
type Result struct {
	// Score is the zxcvbn score from 0 (worst) to 4 (best).
	Score int

	// EntropyBits is the pattern-aware entropy estimate.
	EntropyBits float64

	// CrackTimeSeconds is zxcvbn's single-scenario crack time estimate.
	CrackTimeSeconds float64

	// CrackTimeDisplay is the human-readable form of CrackTimeSeconds.
	CrackTimeDisplay string
}

// Score runs zxcvbn pattern matching against the password.
// userInputs are treated as an attacker-known dictionary: passwords built
// from them are penalized heavily. An empty password scores 0.
func Score(password string, userInputs []string) Result {
	if password == "" {
		return Result{Score: 0, CrackTimeDisplay: "instant"}
	}

	match := zxcvbn.PasswordStrength(password, userInputs)
	return Result{
		Score:            match.Score,
		EntropyBits:      match.Entropy,
		CrackTimeSeconds: match.CrackTime,
		CrackTimeDisplay: match.CrackTimeDisplay,
	}
}

// Digest returns the hex-encoded SHA3-256 digest of the password.
// History storage keys analyses by this digest so repeat analyses of the
// same password correlate without the plaintext ever being persisted.
func Digest(password string) string {
	sum := sha3.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
