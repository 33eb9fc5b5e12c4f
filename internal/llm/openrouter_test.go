package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenRouterProvider_RequiresKey(t *testing.T) {
	_, err := NewOpenRouterProvider(OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"})
	require.Error(t, err)
}

func TestOpenRouterProvider_SendsAttributionAndReturnsText(t *testing.T) {
	var gotTitle, gotReferer, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTitle = r.Header.Get("X-Title")
		gotReferer = r.Header.Get("HTTP-Referer")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":     "gen-1",
			"object": "chat.completion",
			"model":  "anthropic/claude-3-haiku",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": "Summary: the sign was hidden.\n\nResult: correct"},
				"finish_reason": "stop",
			}},
			"usage": map[string]any{"prompt_tokens": 80, "completion_tokens": 20, "total_tokens": 100},
		})
	}))
	t.Cleanup(srv.Close)

	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-or-test",
		Model:   "anthropic/claude-3-haiku",
		BaseURL: srv.URL + "/api/v1",
	})
	require.NoError(t, err)
	assert.Equal(t, "anthropic/claude-3-haiku", p.ModelID())
	assert.Equal(t, "openrouter", ProviderName(p))

	resp, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "Fine Report #77"}},
		MaxTokens: 1000,
	})
	require.NoError(t, err)

	assert.Equal(t, "finecheck", gotTitle)
	assert.NotEmpty(t, gotReferer)
	assert.Equal(t, "/api/v1/chat/completions", gotPath)
	assert.Equal(t, "Summary: the sign was hidden.\n\nResult: correct", resp.Text())
	assert.True(t, json.Valid(resp.Content))
	assert.Equal(t, 100, resp.Usage.TotalTokens)
}
