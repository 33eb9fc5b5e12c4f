package llm

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fineSummarySchema = &Schema{
	Name:        "fine-summary",
	Description: "A parsed fine",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"report_number": map[string]any{"type": "string"},
			"amount":        map[string]any{"type": "integer", "minimum": 0},
			"result":        map[string]any{"type": "string", "enum": []string{"correct", "partially", "incorrect"}},
			"fine": map[string]any{
				"type":       "object",
				"properties": map[string]any{"officer": map[string]any{"type": "string"}},
				"required":   []string{"officer"},
			},
		},
		"required": []string{"report_number", "amount"},
	},
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{"complete", `{"report_number":"123456","amount":250,"result":"correct"}`, true},
		{"optional fields absent", `{"report_number":"123456","amount":250}`, true},
		{"nested object", `{"report_number":"1","amount":0,"fine":{"officer":"Cohen"}}`, true},
		{"missing required", `{"report_number":"123456"}`, false},
		{"wrong type", `{"report_number":"123456","amount":"250"}`, false},
		{"fractional integer", `{"report_number":"123456","amount":2.5}`, false},
		{"below minimum", `{"report_number":"123456","amount":-1}`, false},
		{"outside enum", `{"report_number":"1","amount":10,"result":"maybe"}`, false},
		{"nested required", `{"report_number":"1","amount":0,"fine":{}}`, false},
		{"malformed", `{"report_number":`, false},
		{"empty", ``, false},
		{"whitespace", "  \n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(fineSummarySchema, json.RawMessage(tt.raw))
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var inv *ErrInvalidResponse
			require.True(t, errors.As(err, &inv), "got %v", err)
			assert.Equal(t, tt.raw, string(inv.Content))
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	assert.NoError(t, validateResponse(nil, json.RawMessage(`not json`)))

	var nilSchema *Schema
	assert.NoError(t, nilSchema.Validate(json.RawMessage(`not json`)))
}

func TestValidateResponse_SameNameDifferentSchemas(t *testing.T) {
	strict := &Schema{Name: "shared", Definition: map[string]any{
		"type":     "object",
		"required": []string{"arguments"},
	}}
	loose := &Schema{Name: "shared", Definition: map[string]any{"type": "object"}}

	assert.Error(t, strict.Validate(json.RawMessage(`{}`)))
	assert.NoError(t, loose.Validate(json.RawMessage(`{}`)))
}
