package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-critiquer/internal/jobsource"
	"github.com/jonathan/resume-critiquer/internal/llm"
)

// Environment variable names
const (
	EnvGroqAPIKey   = "GROQ_API_KEY"
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvLLMProvider  = "LLM_PROVIDER"
	EnvLLMModel     = "LLM_MODEL"
	EnvRapidAPIKey  = "RAPIDAPI_KEY"
	EnvAdzunaAppID  = "ADZUNA_APP_ID"
	EnvAdzunaAppKey = "ADZUNA_APP_KEY"
)

// AI key placeholders from the example .env file
const (
	GroqAPIKeyPlaceholder   = "your_groq_api_key_here"
	GeminiAPIKeyPlaceholder = "your_gemini_api_key_here"
)

// Credentials holds the secrets read from the environment.
type Credentials struct {
	GroqAPIKey   string
	GeminiAPIKey string
	Provider     string
	Model        string
	RapidAPIKey  string
	AdzunaAppID  string
	AdzunaAppKey string
}

// FromEnv reads credentials from the process environment.
func FromEnv() Credentials {
	return fromLookup(os.Getenv)
}

func fromLookup(getenv func(string) string) Credentials {
	get := func(key string) string { return strings.TrimSpace(getenv(key)) }
	return Credentials{
		GroqAPIKey:   get(EnvGroqAPIKey),
		GeminiAPIKey: get(EnvGeminiAPIKey),
		Provider:     strings.ToLower(get(EnvLLMProvider)),
		Model:        get(EnvLLMModel),
		RapidAPIKey:  get(EnvRapidAPIKey),
		AdzunaAppID:  get(EnvAdzunaAppID),
		AdzunaAppKey: get(EnvAdzunaAppKey),
	}
}

// Sources returns the job sources in priority order: JSearch, then Adzuna.
// Sources without credentials are included and report Configured() == false.
func (c *Config) Sources() []jobsource.Source {
	return []jobsource.Source{
		jobsource.NewJSearch(c.Credentials.RapidAPIKey),
		jobsource.NewAdzuna(c.Credentials.AdzunaAppID, c.Credentials.AdzunaAppKey),
	}
}

// provider resolves the provider: environment first, then the file.
func (c *Config) provider() string {
	if c.Credentials.Provider != "" {
		return c.Credentials.Provider
	}
	return c.Provider
}

// LLMConfig builds the model configuration for the selected provider.
func (c *Config) LLMConfig() *llm.Config {
	model := c.Model
	if c.Credentials.Model != "" {
		model = c.Credentials.Model
	}
	return llm.ConfigFor(c.provider()).WithModel(model)
}

// LLMAPIKey returns the usable key for the selected provider, or "".
func (c *Config) LLMAPIKey() string {
	if llm.Provider(c.provider()) == llm.ProviderGemini {
		if jobsource.CredentialSet(c.Credentials.GeminiAPIKey, GeminiAPIKeyPlaceholder) {
			return c.Credentials.GeminiAPIKey
		}
		return ""
	}
	if jobsource.CredentialSet(c.Credentials.GroqAPIKey, GroqAPIKeyPlaceholder) {
		return c.Credentials.GroqAPIKey
	}
	return ""
}

// NewLLMClient creates the AI client. Without a usable key it returns an
// *llm.UnavailableClient so every AI step takes its fallback path.
func (c *Config) NewLLMClient(ctx context.Context) (llm.Client, error) {
	llmConfig := c.LLMConfig()
	key := c.LLMAPIKey()
	if key == "" {
		return &llm.UnavailableClient{
			Provider: llmConfig.Provider,
			Reason:   fmt.Sprintf("%s API key not configured", llmConfig.Provider),
		}, nil
	}
	return llm.NewClient(ctx, llmConfig, key)
}
