package provider

import (
	"context"
	"errors"

	"github.com/newsgenie-ai/newsgenie/config"
	openai_provider "github.com/newsgenie-ai/newsgenie/provider/openai"
)

// Message is one role-tagged entry in a completion request.
type Message = openai_provider.Message

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Provider is the opaque text-completion boundary: an ordered sequence of
// role-tagged messages in, plain text out.
type Provider interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// NewProvider creates a completion client based on the provided configuration
func NewProvider(cfg config.LLMConfig) (Provider, error) {
	switch cfg.Provider {
	case "openai":
		if cfg.APIKey == "" {
			return nil, errors.New("llm.api_key not set")
		}
		return openai_provider.NewClient(
			cfg.APIKey,
			cfg.BaseURL,
			cfg.Model,
			cfg.Temperature,
			cfg.MaxTokens,
			cfg.Timeout,
		), nil
	case "anthropic":
		return nil, errors.New("anthropic client not implemented yet")
	case "gemini":
		return nil, errors.New("gemini client not implemented yet")
	default:
		return nil, errors.New("unsupported LLM provider")
	}
}
