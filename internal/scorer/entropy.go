package scorer

import (
	"fmt"
	"math"
	"unicode"

	"github.com/passforge/passforge/internal/model"
)

// Character pool sizes used by the entropy heuristic.
// The symbol pool size matches the printable ASCII symbols, the same
// assumption most password meters make.
const (
	lowerPoolSize  = 26
	upperPoolSize  = 26
	digitPoolSize  = 10
	symbolPoolSize = 33
)

// Attack scenario guess rates in guesses per second.
// Rates follow the original zxcvbn paper's scenarios: a rate-limited web
// login, an unthrottled web login, offline cracking of a slow hash
// (bcrypt/argon2), and offline cracking of a fast hash (MD5/SHA1 on GPUs).
const (
	rateOnlineThrottled   = 100.0 / 3600.0
	rateOnlineUnthrottled = 10.0
	rateOfflineSlowHash   = 1e4
	rateOfflineFastHash   = 1e10
)

// Classes counts the character classes present in the password.
func Classes(password string) model.CharacterClasses {
	var classes model.CharacterClasses
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			classes.Lower++
		case unicode.IsUpper(r):
			classes.Upper++
		case unicode.IsDigit(r):
			classes.Digits++
		default:
			classes.Symbols++
		}
	}
	return classes
}

// FallbackEntropy estimates entropy in bits from character-class diversity
// and length: log2(poolSize^length). It ignores patterns entirely, so it
// overestimates for dictionary-based passwords; the analysis report carries
// both this and the zxcvbn estimate for that reason.
//
// The estimate is monotonically non-decreasing in length when class
// diversity is held constant.
func FallbackEntropy(password string) float64 {
	if password == "" {
		return 0
	}

	classes := Classes(password)
	pool := 0
	if classes.Lower > 0 {
		pool += lowerPoolSize
	}
	if classes.Upper > 0 {
		pool += upperPoolSize
	}
	if classes.Digits > 0 {
		pool += digitPoolSize
	}
	if classes.Symbols > 0 {
		pool += symbolPoolSize
	}

	length := float64(len([]rune(password)))
	return length * math.Log2(float64(pool))
}

// CrackTimeEstimates derives crack durations for the standard attack
// scenarios from an entropy estimate. On average an attacker searches half
// the space, hence the 2^(bits-1) guess count.
func CrackTimeEstimates(entropyBits float64) []model.CrackTimeEstimate {
	guesses := math.Pow(2, math.Max(entropyBits-1, 0))

	scenarios := []struct {
		name string
		rate float64
	}{
		{"online throttled (100/hour)", rateOnlineThrottled},
		{"online unthrottled (10/sec)", rateOnlineUnthrottled},
		{"offline slow hash (10k/sec)", rateOfflineSlowHash},
		{"offline fast hash (10B/sec)", rateOfflineFastHash},
	}

	estimates := make([]model.CrackTimeEstimate, 0, len(scenarios))
	for _, s := range scenarios {
		estimates = append(estimates, model.CrackTimeEstimate{
			Scenario:         s.name,
			GuessesPerSecond: s.rate,
			Display:          DisplayDuration(guesses / s.rate),
		})
	}
	return estimates
}

// DisplayDuration converts a duration in seconds to a rough human-readable
// string. Precision is deliberately coarse; crack-time estimates are order
// of magnitude figures, not measurements.
func DisplayDuration(seconds float64) string {
	const (
		minute  = 60
		hour    = 60 * minute
		day     = 24 * hour
		month   = 31 * day
		year    = 365 * day
		century = 100 * year
	)

	switch {
	case seconds < 1:
		return "instant"
	case seconds < minute:
		return fmt.Sprintf("%d seconds", int(seconds))
	case seconds < hour:
		return fmt.Sprintf("%d minutes", int(seconds/minute))
	case seconds < day:
		return fmt.Sprintf("%d hours", int(seconds/hour))
	case seconds < month:
		return fmt.Sprintf("%d days", int(seconds/day))
	case seconds < year:
		return fmt.Sprintf("%d months", int(seconds/month))
	case seconds < century:
		return fmt.Sprintf("%d years", int(seconds/year))
	default:
		return "centuries"
	}
}
