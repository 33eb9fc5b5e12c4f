package llm

import (
	"fmt"
	"net/http"
)

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// openRouterHeaders attribute requests to finecheck on the OpenRouter
// dashboard.
var openRouterHeaders = http.Header{
	"X-Title":      {"finecheck"},
	"Http-Referer": {"https://github.com/abhisek/finecheck"},
}

// OpenRouterProvider reuses the OpenAI client against OpenRouter's
// compatible endpoint.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	inner, err := newOpenAIProviderRaw(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: baseURL,
	}, openRouterHeaders)
	if err != nil {
		return nil, err
	}
	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}

// Name reports the vendor label used in request events.
func (p *OpenRouterProvider) Name() string { return "openrouter" }
