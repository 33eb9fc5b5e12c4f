package verdict

import (
	"strings"
)

// Pass names, as recorded in Match.Pass.
const (
	PassEmpty         = "empty"
	PassLabel         = "label"
	PassTerminal      = "terminal"
	PassTailWindow    = "tail-window"
	PassSection       = "section"
	PassPhraseLibrary = "phrase-library"
	PassSentiment     = "sentiment"
)

// Pass is one heuristic of the classification chain.
// Returns ok=false when the heuristic has nothing to say about the document.
type Pass interface {
	Name() string
	Classify(doc *Document) (Category, Match, bool)
}

// DefaultPasses returns the passes in priority order. Explicit structure wins
// over keyword density, and the sentiment pass always decides last.
func DefaultPasses(lex Lexicon, tuning Tuning) []Pass {
	return []Pass{
		&LabelPass{Lexicon: lex},
		&TerminalPass{Lexicon: lex},
		&TailWindowPass{Lexicon: lex, Window: tuning.TailWindow},
		&SectionPass{Lexicon: lex, sections: compileSections(lex)},
		&PhraseLibraryPass{Lexicon: lex},
		&SentimentPass{Lexicon: lex, Tuning: tuning},
	}
}

// RunPasses executes passes in order and returns the first decision.
// With no decision at all the document is Partial.
func RunPasses(passes []Pass, doc *Document) (Category, Match) {
	for _, p := range passes {
		if cat, m, ok := p.Classify(doc); ok {
			if m.Pass == "" {
				m.Pass = p.Name()
			}
			return cat, m
		}
	}
	return CategoryPartial, Match{}
}

// matchGroups tests s against the negated-favorable guard and then the phrase
// groups in Categories order. First hit wins.
func matchGroups(s string, negated []string, groups Phrases) (Category, string, bool) {
	if t, ok := firstContained(s, negated); ok {
		return CategoryUnfavorable, t, true
	}
	for _, c := range Categories {
		if t, ok := firstContained(s, groups.For(c)); ok {
			return c, t, true
		}
	}
	return "", "", false
}

// LabelPass reads an explicit "Result: value" line.
type LabelPass struct {
	Lexicon Lexicon
}

func (p *LabelPass) Name() string { return PassLabel }

func (p *LabelPass) Classify(doc *Document) (Category, Match, bool) {
	line, ok := p.resultLine(doc)
	if !ok {
		return "", Match{}, false
	}
	// Value is the text between the first and second colon.
	parts := strings.SplitN(line, ":", 3)
	if len(parts) < 2 {
		return "", Match{}, false
	}
	value := strings.TrimSpace(parts[1])
	if value == "" {
		return "", Match{}, false
	}
	cat, term, ok := matchGroups(value, p.Lexicon.NegatedFavorable, p.Lexicon.Label)
	if !ok {
		return "", Match{}, false
	}
	return cat, Match{Pass: PassLabel, Terms: []string{term}}, true
}

func (p *LabelPass) resultLine(doc *Document) (string, bool) {
	for _, line := range strings.Split(doc.Lower, "\n") {
		for _, h := range p.Lexicon.ResultHeadings {
			h = strings.ToLower(h)
			if strings.Contains(line, h+":") || strings.Contains(line, h+" :") {
				return line, true
			}
		}
	}
	return "", false
}

// TerminalPass reads a document whose last paragraph is a single result word.
type TerminalPass struct {
	Lexicon Lexicon
}

func (p *TerminalPass) Name() string { return PassTerminal }

func (p *TerminalPass) Classify(doc *Document) (Category, Match, bool) {
	paras := doc.Paragraphs()
	var last string
	for i := len(paras) - 1; i >= 0; i-- {
		if s := strings.TrimSpace(paras[i]); s != "" {
			last = strings.ToLower(s)
			break
		}
	}
	if last == "" {
		return "", Match{}, false
	}
	for _, c := range Categories {
		for _, t := range p.Lexicon.Terminal.For(c) {
			if last == strings.ToLower(t) {
				return c, Match{Pass: PassTerminal, Terms: []string{t}}, true
			}
		}
	}
	return "", Match{}, false
}

// TailWindowPass counts conclusive keywords in the last lines, where LLM
// analyses usually state their conclusion.
type TailWindowPass struct {
	Lexicon Lexicon
	Window  int
}

func (p *TailWindowPass) Name() string { return PassTailWindow }

func (p *TailWindowPass) Classify(doc *Document) (Category, Match, bool) {
	tail := strings.ToLower(strings.Join(doc.Tail(p.Window), " "))

	counts := make(map[Category]int, len(Categories))
	hits := make(map[Category][]string, len(Categories))
	for _, c := range Categories {
		for _, t := range p.Lexicon.Tail.For(c) {
			if n := countWord(tail, t); n > 0 {
				counts[c] += n
				hits[c] = append(hits[c], t)
			}
		}
	}

	fav, unfav, part := counts[CategoryFavorable], counts[CategoryUnfavorable], counts[CategoryPartial]
	var cat Category
	switch {
	case fav > 0 && unfav < fav && part < fav:
		cat = CategoryFavorable
	case unfav > 0 && unfav > part:
		cat = CategoryUnfavorable
	case part > 0:
		cat = CategoryPartial
	default:
		return "", Match{}, false
	}
	return cat, Match{Pass: PassTailWindow, Terms: hits[cat]}, true
}

// SectionPass reads a "Result" section and falls back to a small word score
// over its body.
type SectionPass struct {
	Lexicon  Lexicon
	sections *sections
}

func (p *SectionPass) Name() string { return PassSection }

func (p *SectionPass) Classify(doc *Document) (Category, Match, bool) {
	secs := p.sections
	if secs == nil {
		secs = compileSections(p.Lexicon)
	}
	sec, ok := secs.result.find(doc.Text)
	if !ok {
		return "", Match{}, false
	}
	body := strings.ToLower(strings.TrimSpace(sec.Body))
	if body == "" {
		return "", Match{}, false
	}

	if cat, term, ok := matchGroups(body, p.Lexicon.NegatedFavorable, p.Lexicon.Section); ok {
		return cat, Match{Pass: PassSection, Terms: []string{term}}, true
	}

	var pos, neg []string
	for _, w := range p.Lexicon.SectionPositive {
		if strings.Contains(body, strings.ToLower(w)) {
			pos = append(pos, w)
		}
	}
	for _, w := range p.Lexicon.SectionNegative {
		if strings.Contains(body, strings.ToLower(w)) {
			neg = append(neg, w)
		}
	}
	m := Match{Pass: PassSection, Positive: float64(len(pos)), Negative: float64(len(neg))}
	switch {
	case len(pos) > len(neg):
		m.Terms = pos
		return CategoryFavorable, m, true
	case len(neg) > len(pos):
		m.Terms = neg
		return CategoryUnfavorable, m, true
	}
	return "", Match{}, false
}

// PhraseLibraryPass searches the whole document for curated phrases.
type PhraseLibraryPass struct {
	Lexicon Lexicon
}

func (p *PhraseLibraryPass) Name() string { return PassPhraseLibrary }

func (p *PhraseLibraryPass) Classify(doc *Document) (Category, Match, bool) {
	for _, c := range Categories {
		if t, ok := firstContained(doc.Lower, p.Lexicon.Library.For(c)); ok {
			return c, Match{Pass: PassPhraseLibrary, Terms: []string{t}}, true
		}
	}
	return "", Match{}, false
}
