package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-critiquer/internal/jobsource"
	"github.com/jonathan/resume-critiquer/internal/llm"
	"github.com/jonathan/resume-critiquer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, `{
		"location": "Austin, TX",
		"count": 30,
		"job_type": "Contract",
		"model": "llama-3.1-8b-instant",
		"port": 9090,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "Austin, TX", cfg.Location)
	assert.Equal(t, 30, cfg.Count)
	assert.Equal(t, "Contract", cfg.JobType)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.Model)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{ invalid json }`))
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		field string
	}{
		{name: "zero config is valid", cfg: Config{}},
		{name: "defaults are valid", cfg: Defaults()},
		{name: "count too low", cfg: Config{Count: 5}, field: "count"},
		{name: "count too high", cfg: Config{Count: 51}, field: "count"},
		{name: "unknown job type", cfg: Config{JobType: "Temp"}, field: "job_type"},
		{name: "unknown provider", cfg: Config{Provider: "openai"}, field: "provider"},
		{name: "bad port", cfg: Config{Port: 70000}, field: "port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.field, cfgErr.Field)
			assert.Contains(t, err.Error(), "config error")
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{Location: "Remote", Count: 40}

	merged := cfg.MergeWithDefaults(Defaults())
	assert.Equal(t, "Remote", merged.Location)
	assert.Equal(t, 40, merged.Count)
	assert.Equal(t, "Any", merged.JobType)
	assert.Equal(t, "groq", merged.Provider)
	assert.Equal(t, DefaultPort, merged.Port)

	// The receiver is not modified
	assert.Empty(t, cfg.JobType)
}

func TestLoad_WithoutFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, types.DefaultLocation, cfg.Location)
	assert.Equal(t, types.DefaultCount, cfg.Count)
}

func TestLoad_InvalidFile(t *testing.T) {
	_, err := Load(writeConfig(t, `{"count": 100}`))

	var cfgErr *ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestLoad_ReadsCredentialsFromEnv(t *testing.T) {
	t.Setenv(EnvRapidAPIKey, "rapid-key")
	t.Setenv(EnvLLMProvider, "Gemini")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "rapid-key", cfg.Credentials.RapidAPIKey)
	assert.Equal(t, "gemini", cfg.Credentials.Provider)
}

func TestQuery(t *testing.T) {
	cfg := Config{Location: "Remote", Count: 30, JobType: "part-time"}

	q := cfg.Query("Go")
	assert.Equal(t, "Go", q.Term)
	assert.Equal(t, "Remote", q.Location)
	assert.Equal(t, 30, q.Count)
	assert.Equal(t, types.JobTypePartTime, q.JobType)

	q = (&Config{}).Query("Go")
	assert.Equal(t, types.NewJobQuery("Go"), q)
}

func TestSources_Order(t *testing.T) {
	cfg := &Config{Credentials: Credentials{RapidAPIKey: "k"}}

	sources := cfg.Sources()
	require.Len(t, sources, 2)
	assert.Equal(t, jobsource.JSearchName, sources[0].Name())
	assert.Equal(t, jobsource.AdzunaName, sources[1].Name())
	assert.True(t, sources[0].Configured())
	assert.False(t, sources[1].Configured())
}

func TestSources_PlaceholdersAreUnconfigured(t *testing.T) {
	cfg := &Config{Credentials: Credentials{
		RapidAPIKey:  jobsource.RapidAPIKeyPlaceholder,
		AdzunaAppID:  jobsource.AdzunaAppIDPlaceholder,
		AdzunaAppKey: "real-key",
	}}

	for _, src := range cfg.Sources() {
		assert.False(t, src.Configured(), src.Name())
	}
}

func TestLLMConfig(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, llm.ProviderGroq, cfg.LLMConfig().Provider)
	assert.Equal(t, llm.DefaultGroqModel, cfg.LLMConfig().Model)

	cfg.Model = "file-model"
	assert.Equal(t, "file-model", cfg.LLMConfig().Model)

	cfg.Credentials = Credentials{Provider: "gemini", Model: "env-model"}
	assert.Equal(t, llm.ProviderGemini, cfg.LLMConfig().Provider)
	assert.Equal(t, "env-model", cfg.LLMConfig().Model)
}

func TestLLMAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		creds    Credentials
		expected string
	}{
		{name: "groq key", creds: Credentials{GroqAPIKey: "gsk"}, expected: "gsk"},
		{name: "groq placeholder", creds: Credentials{GroqAPIKey: GroqAPIKeyPlaceholder}, expected: ""},
		{name: "gemini selected", creds: Credentials{Provider: "gemini", GroqAPIKey: "gsk", GeminiAPIKey: "gem"}, expected: "gem"},
		{name: "gemini without key", creds: Credentials{Provider: "gemini", GroqAPIKey: "gsk"}, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			cfg.Credentials = tt.creds
			assert.Equal(t, tt.expected, cfg.LLMAPIKey())
		})
	}
}

func TestNewLLMClient_NoKeyIsUnavailable(t *testing.T) {
	cfg := Defaults()

	client, err := cfg.NewLLMClient(context.Background())
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), llm.NewRequest("s", "p", 0.5, 10))
	var upstream *llm.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Contains(t, upstream.Error(), "API key not configured")
}

func TestNewLLMClient_Groq(t *testing.T) {
	cfg := Defaults()
	cfg.Credentials = Credentials{GroqAPIKey: "gsk"}

	client, err := cfg.NewLLMClient(context.Background())
	require.NoError(t, err)
	defer client.Close()
	assert.Equal(t, llm.DefaultGroqModel, client.GetModel())
}

func TestFromLookup(t *testing.T) {
	env := map[string]string{
		EnvGroqAPIKey:   "  gsk  ",
		EnvLLMProvider:  "GROQ",
		EnvAdzunaAppID:  "id",
		EnvAdzunaAppKey: "key",
	}

	creds := fromLookup(func(k string) string { return env[k] })
	assert.Equal(t, "gsk", creds.GroqAPIKey)
	assert.Equal(t, "groq", creds.Provider)
	assert.Equal(t, "id", creds.AdzunaAppID)
	assert.Empty(t, creds.RapidAPIKey)
}
