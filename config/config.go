// Package config loads and validates conversation run configuration: which
// provider backs the run, the participant roster with per-speaker sampling
// parameters, the turn limit, the opening topic and the transcript output
// path. Configuration comes from a YAML file (or the built-in defaults);
// credentials come from the environment and are checked before the run
// starts.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roundtable-ai/roundtable/core"
)

// ProviderKind selects the completion backend for a run. The choice is made
// once at startup; the orchestration loop never branches on it.
type ProviderKind string

const (
	// ProviderOpenAI uses the hosted OpenAI API.
	ProviderOpenAI ProviderKind = "openai"
	// ProviderAnthropic uses the hosted Anthropic API.
	ProviderAnthropic ProviderKind = "anthropic"
	// ProviderOllama uses a local Ollama server through its OpenAI-compatible
	// endpoint.
	ProviderOllama ProviderKind = "ollama"
)

// DefaultOllamaBaseURL is Ollama's OpenAI-compatible endpoint.
const DefaultOllamaBaseURL = "http://localhost:11434/v1"

// ParticipantConfig declares one roster member.
type ParticipantConfig struct {
	Name     string              `yaml:"name"`
	Model    string              `yaml:"model"`
	Persona  string              `yaml:"persona"`
	Sampling core.SamplingConfig `yaml:"sampling"`
}

// Config is the full declaration of a conversation run.
type Config struct {
	Provider      ProviderKind        `yaml:"provider"`
	MaxTurns      int                 `yaml:"maxTurns"`
	Topic         string              `yaml:"topic"`
	Output        string              `yaml:"output"`
	OllamaBaseURL string              `yaml:"ollamaBaseURL,omitempty"`
	Participants  []ParticipantConfig `yaml:"participants"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &core.ConfigError{Field: "config", Reason: fmt.Sprintf("read %s: %v", path, err)}
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &core.ConfigError{Field: "config", Reason: fmt.Sprintf("parse %s: %v", path, err)}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the run declaration for configuration errors. Every
// problem found here would otherwise surface mid-run, so all of them are
// fatal before the first turn.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI, ProviderAnthropic, ProviderOllama:
	case "":
		return &core.ConfigError{Field: "provider", Reason: "provider is required (openai, anthropic or ollama)"}
	default:
		return &core.ConfigError{Field: "provider", Reason: fmt.Sprintf("unknown provider %q", c.Provider)}
	}
	if c.MaxTurns <= 0 {
		return &core.ConfigError{Field: "maxTurns", Reason: fmt.Sprintf("must be positive, got %d", c.MaxTurns)}
	}
	if c.Topic == "" {
		return &core.ConfigError{Field: "topic", Reason: "an initial topic is required"}
	}
	if _, err := c.Roster(); err != nil {
		return err
	}
	return nil
}

// Roster builds the validated speaking lineup from the declared participants.
func (c *Config) Roster() (*core.Roster, error) {
	participants := make([]core.Participant, len(c.Participants))
	for i, p := range c.Participants {
		participants[i] = core.Participant{
			Name:     p.Name,
			Model:    p.Model,
			Persona:  p.Persona,
			Sampling: p.Sampling,
		}
	}
	return core.NewRoster(participants...)
}

// Credentials resolves the API key and base URL for the configured provider
// from the environment. getenv is injectable for tests; pass os.Getenv in
// production. A missing required credential is a configuration error
// surfaced before the run starts.
func (c *Config) Credentials(getenv func(string) string) (apiKey, baseURL string, err error) {
	switch c.Provider {
	case ProviderOpenAI:
		apiKey = getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return "", "", &core.ConfigError{Field: "OPENAI_API_KEY", Reason: "required for the openai provider"}
		}
	case ProviderAnthropic:
		apiKey = getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return "", "", &core.ConfigError{Field: "ANTHROPIC_API_KEY", Reason: "required for the anthropic provider"}
		}
	case ProviderOllama:
		// Ollama requires a key header but never checks it.
		apiKey = "ollama"
		baseURL = c.OllamaBaseURL
		if baseURL == "" {
			baseURL = DefaultOllamaBaseURL
		}
	default:
		return "", "", &core.ConfigError{Field: "provider", Reason: fmt.Sprintf("unknown provider %q", c.Provider)}
	}
	return apiKey, baseURL, nil
}
