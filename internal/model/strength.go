package model

// Strength represents the qualitative strength band of a password.
// Bands correspond one-to-one with zxcvbn scores (0-4), so converting
// between the numeric score and the band is lossless.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. The String() method provides
// human-readable output when needed.
type Strength int

const (
	// StrengthVeryWeak indicates passwords crackable almost instantly.
	// Examples: dictionary words, common passwords, very short strings.
	StrengthVeryWeak Strength = iota

	// StrengthWeak indicates passwords that resist only casual guessing.
	// Examples: a word with a single digit appended, short leetspeak variants.
	StrengthWeak

	// StrengthFair indicates passwords that survive online attacks but
	// fall quickly to offline cracking.
	StrengthFair

	// StrengthStrong indicates passwords that require significant offline
	// cracking effort.
	StrengthStrong

	// StrengthVeryStrong indicates passwords that are impractical to crack
	// with current hardware.
	StrengthVeryStrong
)

// String returns a human-readable representation of the strength band.
func (s Strength) String() string {
	switch s {
	case StrengthVeryWeak:
		return "VERY WEAK"
	case StrengthWeak:
		return "WEAK"
	case StrengthFair:
		return "FAIR"
	case StrengthStrong:
		return "STRONG"
	case StrengthVeryStrong:
		return "VERY STRONG"
	default:
		return "UNKNOWN"
	}
}

// StrengthFromScore converts a zxcvbn score (0-4) to a Strength band.
// Out-of-range scores are clamped to the nearest band so that callers
// never receive an invalid value.
func StrengthFromScore(score int) Strength {
	if score < 0 {
		return StrengthVeryWeak
	}
	if score > 4 {
		return StrengthVeryStrong
	}
	return Strength(score)
}
