package config

// Profile holds a named set of wordlist generation rules.
// This allows keeping rule presets (e.g., "quick", "thorough") in the
// configuration file instead of repeating flags.
//
// Boolean fields are pointers so an absent key can be distinguished from
// an explicit false; only set keys override the defaults.
type Profile struct {
	// Case enables case-variant expansion.
	Case *bool `yaml:"case,omitempty"`

	// Leet enables leetspeak substitution.
	Leet *bool `yaml:"leet,omitempty"`

	// Suffixes enables common-suffix appending.
	Suffixes *bool `yaml:"suffixes,omitempty"`

	// Years are year strings for append/prepend expansion.
	Years []string `yaml:"years,omitempty"`

	// Separators are the token join strings.
	Separators []string `yaml:"separators,omitempty"`

	// MaxCombo overrides the maximum tokens per combined entry.
	// If zero, the global default is used.
	MaxCombo int `yaml:"maxCombo,omitempty"`

	// MaxWords overrides the wordlist size cap.
	// If zero, the global default is used.
	MaxWords int `yaml:"maxWords,omitempty"`
}

// File represents the structure of the .passforge configuration file.
type File struct {
	// Profiles maps profile names to their rule settings.
	Profiles map[string]Profile `yaml:"profiles,omitempty"`

	// Defaults contains settings applied to every run unless overridden
	// by the selected profile.
	Defaults Profile `yaml:"defaults,omitempty"`
}

// GetProfile returns the merged configuration for a named profile.
// It starts from the defaults and overrides them with the profile's set
// fields. An unknown name returns just the defaults; callers that need to
// distinguish use HasProfile.
func (cf *File) GetProfile(name string) Profile {
	result := cf.Defaults

	profile, ok := cf.Profiles[name]
	if !ok {
		return result
	}

	if profile.Case != nil {
		result.Case = profile.Case
	}
	if profile.Leet != nil {
		result.Leet = profile.Leet
	}
	if profile.Suffixes != nil {
		result.Suffixes = profile.Suffixes
	}
	if len(profile.Years) > 0 {
		result.Years = profile.Years
	}
	if len(profile.Separators) > 0 {
		result.Separators = profile.Separators
	}
	if profile.MaxCombo != 0 {
		result.MaxCombo = profile.MaxCombo
	}
	if profile.MaxWords != 0 {
		result.MaxWords = profile.MaxWords
	}

	return result
}

// HasProfile reports whether a profile with the given name is defined.
func (cf *File) HasProfile(name string) bool {
	_, ok := cf.Profiles[name]
	return ok
}
