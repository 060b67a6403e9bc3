package llm

const defaultGroqBaseURL = "https://api.groq.com/openai/v1"

// GroqProvider targets the Groq API, which is OpenAI-compatible, so the
// underlying SDK is reused with a different base URL.
type GroqProvider struct {
	*OpenAIProvider
}

// NewGroqProvider creates a provider targeting the Groq API.
func NewGroqProvider(cfg GroqConfig) (*GroqProvider, error) {
	if cfg.APIKey == "" {
		return nil, &ErrConfiguration{Provider: "groq", Missing: "API key"}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGroqBaseURL
	}

	inner := newOpenAICompatible(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: baseURL,
	})

	return &GroqProvider{OpenAIProvider: inner}, nil
}
