package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("FINECHECK_LLM_PROVIDER", "openrouter")
	t.Setenv("FINECHECK_OPENROUTER_API_KEY", "sk-or")
	t.Setenv("FINECHECK_OPENROUTER_MODEL", "openai/gpt-4o")
	t.Setenv("FINECHECK_LLM_TIMEOUT", "45s")

	cfg := ConfigFromEnv()
	assert.Equal(t, "openrouter", cfg.Provider)
	assert.Equal(t, "sk-or", cfg.OpenRouter.APIKey)
	assert.Equal(t, "openai/gpt-4o", cfg.OpenRouter.Model)
	assert.Equal(t, 45*time.Second, cfg.Timeout)
	assert.True(t, cfg.HasKey())
	require.NoError(t, cfg.Validate())
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("FINECHECK_LLM_PROVIDER", "")
	t.Setenv("FINECHECK_OPENAI_API_KEY", "")
	t.Setenv("FINECHECK_LLM_TIMEOUT", "not-a-duration")

	cfg := ConfigFromEnv()
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.False(t, cfg.HasKey())
	assert.ErrorContains(t, cfg.Validate(), "FINECHECK_OPENAI_API_KEY")
}

func TestDiscoverConfig(t *testing.T) {
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	_, ok := DiscoverConfig()
	assert.False(t, ok)

	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	cfg, ok := DiscoverConfig()
	require.True(t, ok)
	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, "sk-ant", cfg.Anthropic.APIKey)

	// Gemini outranks Anthropic.
	t.Setenv("GEMINI_API_KEY", "g-key")
	cfg, ok = DiscoverConfig()
	require.True(t, ok)
	assert.Equal(t, "gemini", cfg.Provider)
}

func TestNewProvider_UnknownProvider(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Provider: "carrier-pigeon"}, nil)
	assert.ErrorContains(t, err, "unknown LLM provider")
}

func TestNewProvider_MissingKey(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Provider: "openrouter"}, nil)
	assert.ErrorContains(t, err, "openrouter")
}

func TestNewProvider_OpenRouterWrapped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openrouter"
	cfg.OpenRouter.APIKey = "sk-or"
	p, err := NewProvider(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &TimeoutProvider{}, p)
	assert.Equal(t, cfg.OpenRouter.Model, p.ModelID())
	assert.Equal(t, "openrouter", ProviderName(p))
}

func TestWithTimeout(t *testing.T) {
	mock := NewMockProvider()
	assert.Same(t, Provider(mock), WithTimeout(mock, 0))

	slow := &blockingProvider{}
	p := WithTimeout(slow, 20*time.Millisecond)
	_, err := p.Generate(context.Background(), Request{})
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }

func TestResponseText(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{"### Result\ncorrect", "### Result\ncorrect"},
		{`"quoted text"`, "quoted text"},
		{`{"arguments":[]}`, `{"arguments":[]}`},
		{"", ""},
	}
	for _, tt := range tests {
		r := &Response{Content: []byte(tt.content)}
		assert.Equal(t, tt.want, r.Text())
	}
	var nilResp *Response
	assert.Equal(t, "", nilResp.Text())
}

func TestIsProviderError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{&ErrRateLimit{}, true},
		{fmt.Errorf("wrapped: %w", &ErrInvalidResponse{}), true},
		{&ErrProviderUnavailable{}, true},
		{&ErrMaxTokensExceeded{}, true},
		{&ErrAuthentication{}, true},
		{errors.New("disk full"), false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := IsProviderError(tt.err); got != tt.want {
			t.Errorf("IsProviderError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
