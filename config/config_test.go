package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roundtable-ai/roundtable/core"
)

const sampleYAML = `provider: ollama
maxTurns: 4
topic: "the history of computing"
output: out.json
participants:
  - name: Historian
    model: llama3.2:latest
    persona: You are a historian.
    sampling:
      temperature: 0.7
      topP: 0.9
      maxTokens: 150
  - name: Skeptic
    model: gemma3:1b
    persona: You are a skeptic.
    sampling:
      temperature: 0.9
      topP: 0.9
      maxTokens: 100
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roundtable.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, ProviderOllama, cfg.Provider)
	assert.Equal(t, 4, cfg.MaxTurns)
	assert.Equal(t, "the history of computing", cfg.Topic)
	require.Len(t, cfg.Participants, 2)
	assert.Equal(t, "Historian", cfg.Participants[0].Name)
	assert.Equal(t, 0.9, cfg.Participants[1].Sampling.Temperature)

	roster, err := cfg.Roster()
	require.NoError(t, err)
	assert.Equal(t, 2, roster.Len())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	var cfgErr *core.ConfigError
	require.True(t, errors.As(err, &cfgErr))
}

func TestValidate_Rejections(t *testing.T) {
	base := func() *Config {
		cfg, err := Load(writeConfig(t, sampleYAML))
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown provider", func(c *Config) { c.Provider = "gemini" }},
		{"missing provider", func(c *Config) { c.Provider = "" }},
		{"zero maxTurns", func(c *Config) { c.MaxTurns = 0 }},
		{"negative maxTurns", func(c *Config) { c.MaxTurns = -3 }},
		{"empty topic", func(c *Config) { c.Topic = "" }},
		{"no participants", func(c *Config) { c.Participants = nil }},
		{"participant without model", func(c *Config) { c.Participants[0].Model = "" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			var cfgErr *core.ConfigError
			assert.True(t, errors.As(err, &cfgErr), "expected ConfigError, got %T", err)
		})
	}
}

func TestCredentials_PerProvider(t *testing.T) {
	env := map[string]string{}
	getenv := func(k string) string { return env[k] }

	openaiCfg := &Config{Provider: ProviderOpenAI}
	_, _, err := openaiCfg.Credentials(getenv)
	require.Error(t, err, "openai without key must fail before the run starts")

	env["OPENAI_API_KEY"] = "sk-test"
	key, _, err := openaiCfg.Credentials(getenv)
	require.NoError(t, err)
	assert.Equal(t, "sk-test", key)

	anthropicCfg := &Config{Provider: ProviderAnthropic}
	_, _, err = anthropicCfg.Credentials(getenv)
	require.Error(t, err)

	ollamaCfg := &Config{Provider: ProviderOllama}
	key, baseURL, err := ollamaCfg.Credentials(getenv)
	require.NoError(t, err, "ollama needs no credential")
	assert.Equal(t, "ollama", key)
	assert.Equal(t, DefaultOllamaBaseURL, baseURL)

	ollamaCfg.OllamaBaseURL = "http://box:11434/v1"
	_, baseURL, err = ollamaCfg.Credentials(getenv)
	require.NoError(t, err)
	assert.Equal(t, "http://box:11434/v1", baseURL)
}

func TestDefaults_AreValid(t *testing.T) {
	require.NoError(t, Default().Validate())
	require.NoError(t, DefaultOllama().Validate())

	assert.Equal(t, ProviderOllama, DefaultOllama().Provider)
	assert.Equal(t, 20, DefaultOllama().MaxTurns)
}
