package verdict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeyPoints(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "heading section ends at next heading",
			text: "### Key Points\n1. Point A\n2. Point B\n\n### Recommendation\n- not a key point",
			want: []string{"Point A", "Point B"},
		},
		{
			name: "level two heading",
			text: "## Key Points\n- First\n- Second\n## Result\ncorrect",
			want: []string{"First", "Second"},
		},
		{
			name: "label form stops at recommendation",
			text: "Key Points:\n• Wrong plate\n• No signage\nRecommendation: contest it",
			want: []string{"Wrong plate", "No signage"},
		},
		{
			name: "bold labels",
			text: "### Key Points\n1. **Signage:** The sign was hidden.\n2) **Timing**: Issued after hours.\n* **Bold only**",
			want: []string{"Signage: The sign was hidden.", "Timing: Issued after hours.", "Bold only"},
		},
		{
			name: "hebrew heading",
			text: "### נקודות מפתח\n1. טעות ברישום\n2. חסרים פרטים\n### המלצה\nלערער",
			want: []string{"טעות ברישום", "חסרים פרטים"},
		},
		{
			name: "fallback to lists anywhere",
			text: "Intro line.\n\n- alpha\n- beta\n\nClosing words.",
			want: []string{"alpha", "beta"},
		},
		{
			name: "fallback continuation and dedent",
			text: "Notes:\n  - first item\n    continues here\n  - second item\nplain prose",
			want: []string{"first item continues here", "second item"},
		},
		{
			name: "no lists",
			text: "Nothing structured here at all.",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractKeyPoints(tt.text))
		})
	}
}

func TestExtractRecommendation(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "heading",
			text: "### Recommendation\nDo X.",
			want: "Do X.",
		},
		{
			name: "short first paragraph joins the second",
			text: "### Recommendation\nContest it.\n\nFile the appeal within 30 days of the notice.\n\nThird paragraph.",
			want: "Contest it. File the appeal within 30 days of the notice.",
		},
		{
			name: "long first paragraph stands alone",
			text: "## Recommendation\nFile an appeal with the municipality citing the missing signage photos.\n\nSecond paragraph.",
			want: "File an appeal with the municipality citing the missing signage photos.",
		},
		{
			name: "label stops at result label",
			text: "Recommendation: Pay the fine before the due date. Result: incorrect",
			want: "Pay the fine before the due date.",
		},
		{
			name: "empty label reads following lines",
			text: "Recommendation:\n\nSubmit the photos\nwith the appeal form.\n\nOther text.",
			want: "Submit the photos with the appeal form.",
		},
		{
			name: "hebrew label",
			text: "המלצה: לערער על הדוח\n\nתוצאה: נכון",
			want: "לערער על הדוח",
		},
		{
			name: "tail cue fallback",
			text: "Line one.\nLine two.\nWe recommend paying promptly.",
			want: "Line one. Line two. We recommend paying promptly.",
		},
		{
			name: "nothing",
			text: "Just facts.\nNo advice.",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractRecommendation(tt.text))
		})
	}
}

func TestExtractSummary(t *testing.T) {
	text := "Summary: The fine lacks the officer badge.\nIt was issued late.\n\nKey Points:\n- a"
	assert.Equal(t, "The fine lacks the officer badge.\nIt was issued late.", ExtractSummary(text))

	assert.Equal(t, "plain text", ExtractSummary("  plain text \n"))
	assert.Equal(t, "סקירה", ExtractSummary("### סיכום\nסקירה\n### נקודות מפתח\n- א"))
}

func TestExtraction_Idempotent(t *testing.T) {
	text := "### Key Points\n1. **Signage:** hidden\n- second\n\n### Recommendation\nContest.\n\nUse the form."
	kp1, kp2 := ExtractKeyPoints(text), ExtractKeyPoints(text)
	assert.Equal(t, kp1, kp2)
	assert.Equal(t, ExtractRecommendation(text), ExtractRecommendation(text))
	assert.Equal(t, ExtractSummary(text), ExtractSummary(text))
}

func TestExtraction_CRLF(t *testing.T) {
	text := "### Key Points\r\n1. A\r\n2. B\r\n\r\n### Recommendation\r\nDo X."
	assert.Equal(t, []string{"A", "B"}, ExtractKeyPoints(text))
	assert.Equal(t, "Do X.", ExtractRecommendation(text))
}
