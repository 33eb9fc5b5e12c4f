package render

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/finecheck/internal/analysis"
	"github.com/abhisek/finecheck/internal/letters"
	"github.com/abhisek/finecheck/internal/ui/theme"
	"github.com/abhisek/finecheck/internal/verdict"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		c    verdict.Category
		l    verdict.Locale
		want string
	}{
		{verdict.CategoryFavorable, verdict.LocaleEnglish, "In your favor"},
		{verdict.CategoryPartial, verdict.LocaleEnglish, "Partially in your favor"},
		{verdict.CategoryUnfavorable, verdict.LocaleEnglish, "Not in your favor"},
		{verdict.CategoryFavorable, verdict.LocaleHebrew, "לטובתך"},
		{verdict.CategoryPartial, "he-IL", "לטובתך באופן חלקי"},
		{verdict.CategoryUnfavorable, verdict.LocaleHebrew, "לא לטובתך"},
		{"", "fr", "Partially in your favor"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Title(tt.c, tt.l))
	}
}

func TestCategoryColor(t *testing.T) {
	assert.Equal(t, theme.Success, CategoryColor(verdict.CategoryFavorable))
	assert.Equal(t, theme.Warning, CategoryColor(verdict.CategoryPartial))
	assert.Equal(t, theme.Error, CategoryColor(verdict.CategoryUnfavorable))
}

func TestVerdictCard(t *testing.T) {
	v := verdict.Verdict{
		Category:       verdict.CategoryFavorable,
		KeyPoints:      []string{"No signage", "Wrong plate"},
		Recommendation: "Contest it.",
		Locale:         verdict.LocaleEnglish,
		Trace:          verdict.Match{Pass: verdict.PassLabel, Terms: []string{"correct"}},
	}

	out := ansi.Strip(Verdict(v, Options{Width: 60}))
	assert.Contains(t, out, "In your favor")
	assert.Contains(t, out, "Key points")
	assert.Contains(t, out, "• No signage")
	assert.Contains(t, out, "• Wrong plate")
	assert.Contains(t, out, "Contest it.")
	assert.NotContains(t, out, "Decided by")

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 60)
	}

	traced := ansi.Strip(Verdict(v, Options{Trace: true}))
	assert.Contains(t, traced, `Decided by: label ["correct"]`)
}

func TestVerdictCard_NoKeyPoints(t *testing.T) {
	v := verdict.Verdict{Category: verdict.CategoryPartial, Recommendation: "אנא עיין בפרטי הקנס שלך.", Locale: verdict.LocaleHebrew}
	out := ansi.Strip(Verdict(v, Options{}))
	assert.Contains(t, out, "לטובתך באופן חלקי")
	assert.NotContains(t, out, "נקודות מפתח")
	assert.Contains(t, out, "המלצה")
}

func TestAnalysisCard(t *testing.T) {
	a := &analysis.Analysis{
		ReportNumber: "TA-1",
		Locale:       verdict.LocaleEnglish,
		Summary:      "Short summary.",
		Model:        "gpt-4o",
		Cached:       true,
		CreatedAt:    time.Date(2024, 1, 2, 3, 4, 0, 0, time.Local),
		Verdict:      verdict.Verdict{Category: verdict.CategoryUnfavorable, Recommendation: "Pay it."},
	}
	out := ansi.Strip(Analysis(a, Options{}))
	assert.Contains(t, out, "Not in your favor")
	assert.Contains(t, out, "Short summary.")
	assert.Contains(t, out, "report TA-1 · gpt-4o · cached 2024-01-02 03:04")
}

func TestLetter(t *testing.T) {
	out := ansi.Strip(Letter(&letters.Letter{ReportNumber: "9", Mode: letters.ModeArguments, Body: "• one"}))
	assert.True(t, strings.HasPrefix(out, "Arguments to contest · 9\n\n• one"))

	he := ansi.Strip(Letter(&letters.Letter{ReportNumber: "9", Mode: letters.ModeFullLetter, Locale: verdict.LocaleHebrew, Body: "שלום"}))
	assert.Contains(t, he, "בקשת ביטול · 9")
}
