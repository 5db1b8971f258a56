package provider

import (
	"context"
	"errors"
	"os"

	"github.com/mohammad-safakhou/outfitter/config"
	openai_provider "github.com/mohammad-safakhou/outfitter/provider/openai"
)

// Client represents different LLM providers
type Client string

const (
	OpenAI    Client = "openai"
	Anthropic Client = "anthropic"
)

// Provider is the language-understanding capability the interpreter
// delegates to. Responses are expected to be JSON text; parsing and
// validation stay on the caller's side.
type Provider interface {
	Generate(ctx context.Context, system, user string) (string, error)
	GenerateWithImage(ctx context.Context, system, user, imageB64 string) (string, error)
}

// NewProvider creates a new LLM client based on the provided configuration
func NewProvider(cfg config.LLMConfig) (Provider, error) {
	switch Client(cfg.Provider) {
	case OpenAI:
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
		if apiKey == "" {
			return nil, errors.New("OPENAI_API_KEY not set")
		}
		return openai_provider.NewOpenAIClient(
			apiKey,
			cfg.BaseURL,
			cfg.Model,
			cfg.Temperature,
			cfg.MaxTokens,
			cfg.Timeout,
		), nil
	case Anthropic:
		return nil, errors.New("anthropic client not implemented yet")
	default:
		return nil, errors.New("unsupported LLM provider")
	}
}
