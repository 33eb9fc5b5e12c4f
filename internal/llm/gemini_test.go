package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	assert.Equal(t, "gemini-2.0-flash", resolveModel("gemini-flash", geminiModels))
	assert.Equal(t, "gemini-2.0-pro", resolveModel("gemini-pro", geminiModels))
	assert.Equal(t, "gemini-2.5-flash", resolveModel("gemini-2.5-flash", geminiModels))
	assert.Equal(t, "gemini", (&GeminiProvider{}).Name())
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"arguments": map[string]any{
				"type":        "array",
				"description": "One argument per item",
				"minItems":    1,
				"items":       map[string]any{"type": "string"},
			},
			"result": map[string]any{"type": "string", "enum": []string{"correct", "partially", "incorrect"}},
			"amount": map[string]any{"type": "number"},
		},
		"required":             []any{"arguments"},
		"additionalProperties": false,
	}

	schema := buildGeminiSchema(def)

	assert.Equal(t, genai.TypeObject, schema.Type)
	require.Len(t, schema.Properties, 3)
	args := schema.Properties["arguments"]
	assert.Equal(t, genai.TypeArray, args.Type)
	assert.Equal(t, "One argument per item", args.Description)
	assert.Equal(t, genai.TypeString, args.Items.Type)
	assert.Equal(t, []string{"correct", "partially", "incorrect"}, schema.Properties["result"].Enum)
	assert.Equal(t, genai.TypeNumber, schema.Properties["amount"].Type)
	assert.Equal(t, []string{"arguments"}, schema.Required)
}

func TestMapGeminiStopReason(t *testing.T) {
	candidate := func(reason genai.FinishReason) *genai.GenerateContentResponse {
		return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{FinishReason: reason}}}
	}

	stop, err := mapGeminiStopReason(candidate("STOP"))
	require.NoError(t, err)
	assert.Equal(t, "end", stop)

	stop, err = mapGeminiStopReason(candidate("MAX_TOKENS"))
	require.NoError(t, err)
	assert.Equal(t, "max_tokens", stop)

	var inv *ErrInvalidResponse
	_, err = mapGeminiStopReason(candidate("SAFETY"))
	assert.True(t, errors.As(err, &inv))

	_, err = mapGeminiStopReason(&genai.GenerateContentResponse{})
	assert.True(t, errors.As(err, &inv))

	_, err = mapGeminiStopReason(&genai.GenerateContentResponse{
		PromptFeedback: &genai.GenerateContentResponsePromptFeedback{BlockReason: "SAFETY"},
	})
	assert.True(t, errors.As(err, &inv))
}
