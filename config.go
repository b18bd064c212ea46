package substr

// Config controls how a Finder reports matches and how much work a single
// call may do.
//
// Example:
//
//	cfg := substr.DefaultConfig()
//	cfg.Overlapping = false // count like strings.Count
//	cfg.MaxWork = 1 << 30   // reject n·k above ~1e9 before scanning
//	f, err := substr.NewFinder("needle", cfg)
type Config struct {
	// Overlapping reports matches that start inside an earlier reported
	// match. When false, the scan resumes after the end of each reported
	// match.
	// Default: true
	Overlapping bool

	// MaxWork bounds len(subject)·len(pattern) for a single call. Calls
	// above the bound fail with ErrInputTooLarge without scanning.
	// Zero disables the bound.
	// Default: 0
	MaxWork int64
}

// DefaultConfig returns the configuration used by the package-level
// functions: overlapping matches, no work bound.
func DefaultConfig() Config {
	return Config{
		Overlapping: true,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.MaxWork < 0 {
		return &ConfigError{
			Field:   "MaxWork",
			Message: "must not be negative",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "substr: invalid config: " + e.Field + ": " + e.Message
}
