package reviewer

// Config tunes the review call.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard review settings. Temperature runs
// cool so verdicts stay consistent across runs.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.3,
	}
}
