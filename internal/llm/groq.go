package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/resume-critiquer/internal/fetch"
)

// GroqClient implements Client for Groq's OpenAI-compatible chat completions API
type GroqClient struct {
	apiKey string
	config *Config
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NewGroqClient creates a new Groq client
func NewGroqClient(config *Config, apiKey string) (*GroqClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultGroqConfig()
	}
	return &GroqClient{apiKey: apiKey, config: config}, nil
}

// Complete sends the request and returns the first choice's content
func (c *GroqClient) Complete(ctx context.Context, req Request) (string, error) {
	baseURL := c.config.BaseURL
	if baseURL == "" {
		baseURL = DefaultGroqBaseURL
	}

	body := chatRequest{
		Model:       c.config.Model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	opts := &fetch.Options{
		Timeout: c.config.timeout(),
		Headers: map[string]string{"Authorization": "Bearer " + c.apiKey},
	}

	var resp chatResponse
	result, err := fetch.PostJSON(ctx, strings.TrimRight(baseURL, "/")+"/chat/completions", body, opts, &resp)
	if err != nil {
		var fetchErr *fetch.Error
		if errors.As(err, &fetchErr) && result != nil {
			// Error bodies carry the provider's explanation
			var errBody chatResponse
			if json.Unmarshal(result.Body, &errBody) == nil && errBody.Error != nil && errBody.Error.Message != "" {
				return "", &UpstreamError{Provider: ProviderGroq, Message: errBody.Error.Message, Cause: err}
			}
		}
		return "", &UpstreamError{Provider: ProviderGroq, Message: "request failed", Cause: err}
	}

	if resp.Error != nil && resp.Error.Message != "" {
		return "", &UpstreamError{Provider: ProviderGroq, Message: resp.Error.Message}
	}
	if len(resp.Choices) == 0 {
		return "", &UpstreamError{Provider: ProviderGroq, Message: "no choices in response"}
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", &UpstreamError{Provider: ProviderGroq, Message: "empty content in response"}
	}
	return content, nil
}

// GetModel returns the configured model name
func (c *GroqClient) GetModel() string {
	return c.config.Model
}

// Close is a no-op; the client holds no connections of its own
func (c *GroqClient) Close() error {
	return nil
}
