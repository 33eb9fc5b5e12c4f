package verdict

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	listMarker = regexp.MustCompile(`^(?:\d+[.)]|[-•*])\s+`)
	boldLabel  = regexp.MustCompile(`^\*\*([^*]+?)\*\*\s*(.*)$`)
)

// Extractor pulls key points, the recommendation and the summary out of an
// analysis document. It holds only compiled patterns and is safe for
// concurrent use.
type Extractor struct {
	lex      Lexicon
	sections *sections
	short    int
}

// NewExtractor compiles the section patterns of lex.
func NewExtractor(lex Lexicon, tuning Tuning) *Extractor {
	tuning = tuning.withDefaults()
	return &Extractor{lex: lex, sections: compileSections(lex), short: tuning.ShortParagraph}
}

// KeyPoints returns the items of the key points section, or of any list in
// the document when there is no such section.
func (e *Extractor) KeyPoints(text string) []string {
	doc := NewDocument(text)
	if sec, ok := e.sections.keyPoints.find(doc.Text); ok {
		if items := sectionItems(sec.Body); len(items) > 0 {
			return items
		}
	}
	return scanLists(doc.Lines)
}

// Recommendation returns the recommendation section, or the closing lines
// when they read like advice. Empty when neither is present.
func (e *Extractor) Recommendation(text string) string {
	doc := NewDocument(text)
	if sec, ok := e.sections.recommendation.find(doc.Text); ok {
		if body := strings.TrimSpace(sec.Body); body != "" {
			return e.firstParagraphs(body)
		}
		if sec.Heading {
			return ""
		}
		return e.followingLines(doc.Text[sec.Start:])
	}

	tail := strings.TrimSpace(strings.Join(doc.Tail(3), " "))
	if tail != "" {
		lower := strings.ToLower(tail)
		if _, ok := firstContained(lower, e.lex.RecommendationCues); ok {
			return tail
		}
	}
	return ""
}

// Summary returns the summary section, or the whole trimmed text.
func (e *Extractor) Summary(text string) string {
	doc := NewDocument(text)
	if sec, ok := e.sections.summary.find(doc.Text); ok {
		if body := strings.TrimSpace(sec.Body); body != "" {
			return body
		}
	}
	return strings.TrimSpace(doc.Text)
}

// firstParagraphs returns the first paragraph, joined with the second when
// the first is too short to stand alone.
func (e *Extractor) firstParagraphs(body string) string {
	var paras []string
	for _, p := range strings.Split(body, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			paras = append(paras, p)
		}
	}
	if len(paras) == 0 {
		return ""
	}
	if utf8.RuneCountInString(paras[0]) < e.short && len(paras) > 1 {
		return paras[0] + " " + paras[1]
	}
	return paras[0]
}

// followingLines reads the lines after an empty "Recommendation:" label up
// to the first blank line after content, a heading or a result label.
func (e *Extractor) followingLines(rest string) string {
	var parts []string
	for _, line := range strings.Split(rest, "\n") {
		if e.sections.recommendationStop.MatchString(line) {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			if len(parts) > 0 {
				break
			}
			continue
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, " ")
}

// listItem reports whether line is a list item and returns its indentation
// and cleaned content.
func listItem(line string) (indent int, content string, ok bool) {
	trimmed := strings.TrimLeft(line, " \t")
	loc := listMarker.FindStringIndex(trimmed)
	if loc == nil {
		return 0, "", false
	}
	indent = len(line) - len(trimmed)
	return indent, cleanItem(trimmed[loc[1]:]), true
}

// cleanItem strips bold markers. "**Label:** content" becomes "Label: content".
func cleanItem(s string) string {
	s = strings.TrimSpace(s)
	if m := boldLabel.FindStringSubmatch(s); m != nil {
		label := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(m[1]), ":"))
		rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(m[2]), ":"))
		switch {
		case rest == "":
			s = label
		case label == "":
			s = rest
		default:
			s = label + ": " + rest
		}
	}
	return strings.TrimSpace(strings.ReplaceAll(s, "**", ""))
}

func sectionItems(body string) []string {
	var items []string
	for _, line := range strings.Split(body, "\n") {
		if _, content, ok := listItem(line); ok && content != "" {
			items = append(items, content)
		}
	}
	return items
}

// scanLists collects list items from anywhere in the document. While a list
// is open, a line indented deeper than its marker continues the previous
// item; a blank line or a dedent closes the list.
func scanLists(lines []string) []string {
	var (
		items  []string
		inList bool
		indent int
	)
	for _, line := range lines {
		if ind, content, ok := listItem(line); ok {
			if !inList || ind <= indent {
				inList = true
				indent = ind
			}
			if content != "" {
				items = append(items, content)
			}
			continue
		}

		trimmed := strings.TrimSpace(line)
		if !inList {
			continue
		}
		lead := len(line) - len(strings.TrimLeft(line, " \t"))
		switch {
		case trimmed == "" || lead < indent:
			inList = false
		case lead > indent && len(items) > 0:
			items[len(items)-1] += " " + cleanItem(trimmed)
		default:
			inList = false
		}
	}
	return items
}
