package llm

import (
	"context"
	"fmt"
)

// Role is the author of a chat message
type Role string

// Chat roles
const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is one entry of a chat completion request
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Request is a single-turn chat completion request
type Request struct {
	Messages    []Message
	Temperature float32
	// MaxTokens bounds the reply length; zero leaves it to the provider.
	MaxTokens int
}

// NewRequest builds a request with a system instruction and one user prompt
func NewRequest(system, prompt string, temperature float32, maxTokens int) Request {
	return Request{
		Messages: []Message{
			{Role: RoleSystem, Content: system},
			{Role: RoleUser, Content: prompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
}

// Client is an abstraction over LLM providers
type Client interface {
	// Complete returns the text of the first choice, or an *UpstreamError
	Complete(ctx context.Context, req Request) (string, error)
	// GetModel returns the model identifier requests are sent to
	GetModel() string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	case ProviderGroq:
		return NewGroqClient(config, apiKey)
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", config.Provider)
	}
}

// UnavailableClient stands in when no API key is configured.
// Every completion fails with an *UpstreamError so callers take their fallback path.
type UnavailableClient struct {
	Provider Provider
	Reason   string
}

// Complete always fails
func (c *UnavailableClient) Complete(_ context.Context, _ Request) (string, error) {
	return "", &UpstreamError{Provider: c.Provider, Message: c.Reason}
}

// GetModel returns an empty model name
func (c *UnavailableClient) GetModel() string {
	return ""
}

// Close is a no-op
func (c *UnavailableClient) Close() error {
	return nil
}
