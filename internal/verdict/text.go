package verdict

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Document is an analysis text prepared for the passes. Line endings are
// normalised to "\n" and a lowercase copy is kept alongside the original.
type Document struct {
	Text  string
	Lower string
	Lines []string
}

// NewDocument prepares text for classification.
func NewDocument(text string) *Document {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return &Document{
		Text:  text,
		Lower: strings.ToLower(text),
		Lines: strings.Split(text, "\n"),
	}
}

// Empty reports whether the document has no visible content.
func (d *Document) Empty() bool {
	return strings.TrimSpace(d.Text) == ""
}

// Paragraphs splits on blank lines. Empty paragraphs are kept so the last
// element is always the text after the final blank line.
func (d *Document) Paragraphs() []string {
	return strings.Split(d.Text, "\n\n")
}

// Tail returns the last n lines.
func (d *Document) Tail(n int) []string {
	if n <= 0 || n >= len(d.Lines) {
		return d.Lines
	}
	return d.Lines[len(d.Lines)-n:]
}

// firstContained returns the first term that occurs in s as a substring.
func firstContained(s string, terms []string) (string, bool) {
	for _, t := range terms {
		if t != "" && strings.Contains(s, strings.ToLower(t)) {
			return t, true
		}
	}
	return "", false
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}

// countWord counts non-overlapping occurrences of term in s that sit on word
// boundaries. Unlike regexp's \b this treats letters of every script as word
// characters, so Hebrew terms get the same treatment as English ones.
func countWord(s, term string) int {
	if term == "" {
		return 0
	}
	term = strings.ToLower(term)
	n := 0
	for i := 0; i <= len(s)-len(term); {
		j := strings.Index(s[i:], term)
		if j < 0 {
			break
		}
		start := i + j
		end := start + len(term)
		if boundaryBefore(s, start) && boundaryAfter(s, end) {
			n++
			i = end
			continue
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		i = start + size
	}
	return n
}

func containsWord(s, term string) bool {
	return countWord(s, term) > 0
}

func anyWord(s string, terms []string) bool {
	for _, t := range terms {
		if containsWord(s, t) {
			return true
		}
	}
	return false
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

// splitSentences splits on runs of '.', '!' and '?' and drops blank pieces.
func splitSentences(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	out := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}
