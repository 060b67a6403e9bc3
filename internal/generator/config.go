package generator

// Config tunes the generation call.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard generation settings. Temperature
// runs warm so explanations and distractors stay varied.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}
