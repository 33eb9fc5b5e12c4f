package verdict

import (
	"fmt"
	"strings"
)

// Category is the outcome of classifying an analysis document.
type Category string

const (
	CategoryFavorable   Category = "favorable"
	CategoryPartial     Category = "partial"
	CategoryUnfavorable Category = "unfavorable"
)

// Categories lists every category in pass-check order.
var Categories = []Category{CategoryFavorable, CategoryUnfavorable, CategoryPartial}

// Legacy returns the result keyword LLM prompts ask for
// ("correct", "partially", "incorrect").
func (c Category) Legacy() string {
	switch c {
	case CategoryFavorable:
		return "correct"
	case CategoryUnfavorable:
		return "incorrect"
	default:
		return "partially"
	}
}

// ParseCategory accepts both the category names and the legacy result keywords.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "favorable", "correct":
		return CategoryFavorable, nil
	case "partial", "partially":
		return CategoryPartial, nil
	case "unfavorable", "incorrect":
		return CategoryUnfavorable, nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Locale selects default strings for a verdict.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleHebrew  Locale = "he"
)

// ParseLocale normalises a locale tag. "he", "he-IL" and "iw" map to Hebrew;
// everything else maps to English.
func ParseLocale(s string) Locale {
	tag := strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(tag, "-_"); i >= 0 {
		tag = tag[:i]
	}
	switch tag {
	case "he", "iw":
		return LocaleHebrew
	}
	return LocaleEnglish
}

// Verdict is the structured result of classifying one analysis document.
// A Verdict is a value: it is computed once and not modified afterwards.
type Verdict struct {
	Category       Category `json:"category"`
	KeyPoints      []string `json:"key_points"`
	Recommendation string   `json:"recommendation"`
	Locale         Locale   `json:"locale"`
	Trace          Match    `json:"trace"`
}

// Match records which pass decided the category and what it matched on.
type Match struct {
	Pass     string   `json:"pass"`
	Terms    []string `json:"terms,omitempty"`
	Positive float64  `json:"positive,omitempty"`
	Negative float64  `json:"negative,omitempty"`
	Strength string   `json:"strength,omitempty"`
}

func (m Match) String() string {
	var b strings.Builder
	b.WriteString(m.Pass)
	if len(m.Terms) > 0 {
		fmt.Fprintf(&b, " %q", m.Terms)
	}
	if m.Pass == PassSentiment {
		fmt.Fprintf(&b, " positive=%.2f negative=%.2f", m.Positive, m.Negative)
		if m.Strength != "" {
			b.WriteString(" " + m.Strength)
		}
	}
	return b.String()
}
