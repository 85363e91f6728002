// Package llm provides the chat-completion client used for critique, skill
// extraction and recommendations, with interchangeable providers.
package llm

import "time"

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGroq is Groq's OpenAI-compatible chat completion API
	ProviderGroq Provider = "groq"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Default models and endpoints
const (
	DefaultGroqModel   = "llama-3.3-70b-versatile"
	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultGroqBaseURL = "https://api.groq.com/openai/v1"
	DefaultTimeout     = 60 * time.Second
)

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Model    string
	// BaseURL overrides the provider endpoint; only used by Groq.
	BaseURL string
	// Timeout bounds a single completion request.
	Timeout time.Duration
}

// DefaultConfig returns the default configuration (Groq)
func DefaultConfig() *Config {
	return DefaultGroqConfig()
}

// DefaultGroqConfig returns the default Groq configuration
func DefaultGroqConfig() *Config {
	return &Config{
		Provider: ProviderGroq,
		Model:    DefaultGroqModel,
		BaseURL:  DefaultGroqBaseURL,
		Timeout:  DefaultTimeout,
	}
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    DefaultGeminiModel,
		Timeout:  DefaultTimeout,
	}
}

// ConfigFor returns the default configuration for a provider name.
// Unknown names fall back to Groq.
func ConfigFor(provider string) *Config {
	if Provider(provider) == ProviderGemini {
		return DefaultGeminiConfig()
	}
	return DefaultGroqConfig()
}

// WithModel returns a copy of the config using model.
// An empty model leaves the config unchanged.
func (c *Config) WithModel(model string) *Config {
	newConfig := *c
	if model != "" {
		newConfig.Model = model
	}
	return &newConfig
}

func (c *Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}
