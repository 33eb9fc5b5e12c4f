// Package render draws verdicts, analyses and letters for the terminal.
package render

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/finecheck/internal/analysis"
	"github.com/abhisek/finecheck/internal/letters"
	"github.com/abhisek/finecheck/internal/ui/theme"
	"github.com/abhisek/finecheck/internal/verdict"
)

// DefaultWidth is the card width when the caller does not pick one.
const DefaultWidth = 72

var titles = map[verdict.Locale]map[verdict.Category]string{
	verdict.LocaleEnglish: {
		verdict.CategoryFavorable:   "In your favor",
		verdict.CategoryPartial:     "Partially in your favor",
		verdict.CategoryUnfavorable: "Not in your favor",
	},
	verdict.LocaleHebrew: {
		verdict.CategoryFavorable:   "לטובתך",
		verdict.CategoryPartial:     "לטובתך באופן חלקי",
		verdict.CategoryUnfavorable: "לא לטובתך",
	},
}

var labels = map[verdict.Locale]struct {
	summary, keyPoints, recommendation, trace string
}{
	verdict.LocaleEnglish: {"Summary", "Key points", "Recommendation", "Decided by"},
	verdict.LocaleHebrew:  {"סיכום", "נקודות מפתח", "המלצה", "הוכרע על ידי"},
}

// Title returns the localized heading of a category.
func Title(c verdict.Category, l verdict.Locale) string {
	t, ok := titles[verdict.ParseLocale(string(l))]
	if !ok {
		t = titles[verdict.LocaleEnglish]
	}
	if s, ok := t[c]; ok {
		return s
	}
	return t[verdict.CategoryPartial]
}

// CategoryColor maps a category to its status colour.
func CategoryColor(c verdict.Category) color.Color {
	switch c {
	case verdict.CategoryFavorable:
		return theme.Success
	case verdict.CategoryUnfavorable:
		return theme.Error
	default:
		return theme.Warning
	}
}

// Options tunes a card.
type Options struct {
	Width   int
	Trace   bool
	Summary string
}

// Verdict draws a verdict card.
func Verdict(v verdict.Verdict, opts Options) string {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	locale := verdict.ParseLocale(string(v.Locale))
	lbl := labels[locale]
	accent := CategoryColor(v.Category)
	inner := width - 4

	var sections []string
	sections = append(sections, lipgloss.NewStyle().
		Bold(true).
		Foreground(accent).
		Render(Title(v.Category, locale)))

	if opts.Summary != "" {
		sections = append(sections, "",
			theme.Label.Render(lbl.summary),
			theme.Body.Width(inner).Render(opts.Summary))
	}

	if len(v.KeyPoints) > 0 {
		sections = append(sections, "", theme.Label.Render(lbl.keyPoints))
		item := theme.Body.Width(inner - 2)
		for _, kp := range v.KeyPoints {
			sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top,
				lipgloss.NewStyle().Foreground(accent).Render("• "),
				item.Render(kp)))
		}
	}

	sections = append(sections, "",
		theme.Label.Render(lbl.recommendation),
		theme.Body.Width(inner).Render(v.Recommendation))

	if opts.Trace {
		sections = append(sections, "", theme.Hint.Width(inner).Render(lbl.trace+": "+v.Trace.String()))
	}

	return theme.Card.
		BorderForeground(accent).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// Analysis draws an analysis with its summary, followed by a provenance line.
func Analysis(a *analysis.Analysis, opts Options) string {
	opts.Summary = a.Summary
	v := a.Verdict
	v.Locale = a.Locale

	var source string
	if a.Cached {
		source = fmt.Sprintf("report %s · %s · cached %s", a.ReportNumber, a.Model, a.CreatedAt.Local().Format("2006-01-02 15:04"))
	} else {
		source = fmt.Sprintf("report %s · %s", a.ReportNumber, a.Model)
	}
	return Verdict(v, opts) + "\n" + theme.Hint.Render(source)
}

// Letter draws a drafted letter under a heading.
func Letter(l *letters.Letter) string {
	heading := "Cancellation request"
	if l.Mode == letters.ModeArguments {
		heading = "Arguments to contest"
	}
	if l.Locale == verdict.LocaleHebrew {
		heading = "בקשת ביטול"
		if l.Mode == letters.ModeArguments {
			heading = "טיעונים לערעור"
		}
	}
	var b strings.Builder
	b.WriteString(theme.Heading.Render(fmt.Sprintf("%s · %s", heading, l.ReportNumber)))
	b.WriteString("\n\n")
	b.WriteString(l.Body)
	b.WriteString("\n")
	return b.String()
}
