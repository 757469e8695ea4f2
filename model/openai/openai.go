// Package openai provides an implementation of model.Provider using the
// OpenAI Chat Completions API. Because the request shape is the de-facto
// standard for self-hosted model servers, the same adapter also fronts any
// OpenAI-compatible endpoint (Ollama, vLLM, llama.cpp) via WithBaseURL.
package openai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/roundtable-ai/roundtable/model"
)

// Options configure the OpenAI provider adapter.
type Options struct {
	// APIKey overrides the OPENAI_API_KEY environment variable.
	APIKey string
	// BaseURL points the client at an OpenAI-compatible endpoint. Leave empty
	// for the hosted API.
	BaseURL string
	// ProviderName labels Info() output; defaults to "openai" and is usually
	// set to "ollama" when fronting a local server.
	ProviderName string
}

// WithBaseURL points the adapter at an OpenAI-compatible endpoint such as
// Ollama's http://localhost:11434/v1.
func WithBaseURL(url string) func(o *Options) {
	return func(o *Options) { o.BaseURL = url }
}

// WithAPIKey sets an explicit API key instead of the environment default.
func WithAPIKey(key string) func(o *Options) {
	return func(o *Options) { o.APIKey = key }
}

// WithProviderName overrides the provider label reported by Info().
func WithProviderName(name string) func(o *Options) {
	return func(o *Options) { o.ProviderName = name }
}

// Provider wraps the OpenAI Chat Completions API behind the generic
// model.Provider interface.
type Provider struct {
	client *openai.Client
	opts   Options
}

// NewProvider creates a new OpenAI provider using the official client.
func NewProvider(optFns ...func(o *Options)) *Provider {
	opts := Options{ProviderName: "openai"}
	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(opts.BaseURL))
	}

	client := openai.NewClient(clientOpts...)
	return &Provider{client: &client, opts: opts}
}

// NewProviderFromClient creates a provider from an existing client.
func NewProviderFromClient(client *openai.Client, optFns ...func(o *Options)) *Provider {
	opts := Options{ProviderName: "openai"}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Provider{client: client, opts: opts}
}

// Complete implements model.Provider. The request's sampling configuration is
// applied per call, so participants backed by the same endpoint keep their
// individual temperature, top_p and length limits.
func (p *Provider) Complete(ctx context.Context, req model.Request) (*model.Response, error) {
	params := openai.ChatCompletionNewParams{
		Model:               req.Model,
		Messages:            buildMessages(req.Messages),
		Temperature:         openai.Float(req.Sampling.Temperature),
		TopP:                openai.Float(req.Sampling.TopP),
		MaxCompletionTokens: openai.Int(req.Sampling.MaxTokens),
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai api returned no choices for model %s", req.Model)
	}

	choice := resp.Choices[0]
	out := &model.Response{
		Text:         choice.Message.Content,
		FinishReason: string(choice.FinishReason),
	}
	if resp.Usage.TotalTokens > 0 {
		out.Usage = &model.TokenUsage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		}
	}
	return out, nil
}

// buildMessages converts normalized messages into OpenAI chat messages.
func buildMessages(messages []model.Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case model.RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}

// Info returns metadata describing this provider implementation.
func (p *Provider) Info() model.Info {
	return model.Info{Provider: p.opts.ProviderName, BaseURL: p.opts.BaseURL}
}
