package llm

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/finecheck/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingProvider_RecordsEvents(t *testing.T) {
	s, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage("### Result\ncorrect"), Usage: Usage{InputTokens: 12, OutputTokens: 3}},
		MockResponse{Err: &ErrRateLimit{}},
	)
	p := WithLogging(mock, s.EventRepo())

	ctx := WithPurpose(context.Background(), PurposeFineAnalysis)
	req := Request{
		System:   "You are a legal assistant.",
		Messages: []Message{{Role: RoleUser, Content: "Fine Report #123456"}},
	}
	_, err = p.Generate(ctx, req)
	require.NoError(t, err)
	_, err = p.Generate(ctx, req)
	require.Error(t, err)

	events, err := s.EventRepo().QueryLLMEvents(context.Background(), store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)

	failed, ok := events[0], events[1]
	assert.False(t, failed.Success)
	assert.Contains(t, failed.ErrorMessage, "rate limited")

	assert.True(t, ok.Success)
	assert.Equal(t, "mock", ok.Provider)
	assert.Equal(t, PurposeFineAnalysis, ok.Purpose)
	assert.Equal(t, 12, ok.InputTokens)
	assert.Equal(t, "### Result\ncorrect", ok.ResponseBody)
	assert.True(t, strings.HasPrefix(ok.RequestBody, "[system]\nYou are a legal assistant."))
	assert.Contains(t, ok.RequestBody, "[user]\nFine Report #123456")
}

func TestProviderName(t *testing.T) {
	or, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "k", Model: "m"})
	require.NoError(t, err)
	oa, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-4o"})
	require.NoError(t, err)

	assert.Equal(t, "openrouter", ProviderName(or))
	assert.Equal(t, "openai", ProviderName(oa))
	assert.Equal(t, "mock", ProviderName(NewMockProvider()))
	assert.Equal(t, "blocking", ProviderName(blockingProvider{}))
}
