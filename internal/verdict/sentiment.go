package verdict

import (
	"strings"
)

// Score is the weighted sentiment of a document.
type Score struct {
	Positive float64
	Negative float64
	Terms    []string
}

// Diff returns Positive - Negative.
func (s Score) Diff() float64 { return s.Positive - s.Negative }

// SentimentPass scores every sentence against the weighted term tables and
// always returns a category.
type SentimentPass struct {
	Lexicon Lexicon
	Tuning  Tuning
}

func (p *SentimentPass) Name() string { return PassSentiment }

func (p *SentimentPass) Classify(doc *Document) (Category, Match, bool) {
	s := p.Score(doc)
	cat, strength := p.Decide(s.Diff())
	m := Match{
		Pass:     PassSentiment,
		Terms:    s.Terms,
		Positive: s.Positive,
		Negative: s.Negative,
		Strength: strength,
	}
	return cat, m, true
}

// Signal strengths reported by Decide.
const (
	StrengthStrong   = "strong"
	StrengthModerate = "moderate"
)

// Decide maps a score difference to a category and the strength of the
// signal. Differences within the moderate threshold are Partial.
func (p *SentimentPass) Decide(diff float64) (Category, string) {
	t := p.Tuning.withDefaults()
	switch {
	case diff > t.Strong:
		return CategoryFavorable, StrengthStrong
	case diff < -t.Strong:
		return CategoryUnfavorable, StrengthStrong
	case diff > t.Moderate:
		return CategoryFavorable, StrengthModerate
	case diff < -t.Moderate:
		return CategoryUnfavorable, StrengthModerate
	}
	return CategoryPartial, ""
}

// Score sums the strongest positive and strongest negative term of each
// non-neutral sentence, adjusted for negation and hedging.
func (p *SentimentPass) Score(doc *Document) Score {
	t := p.Tuning.withDefaults()
	var s Score
	for _, sentence := range splitSentences(doc.Lower) {
		if p.neutral(sentence) {
			continue
		}
		negated := anyWord(sentence, p.Lexicon.Negations)
		hedged := anyWord(sentence, p.Lexicon.Qualifiers)

		if term, w, ok := strongest(sentence, p.Lexicon.Positive); ok {
			s.Positive += w * p.modifier(term, negated, hedged, t)
			s.Terms = append(s.Terms, term)
		}
		if term, w, ok := strongest(sentence, p.Lexicon.Negative); ok {
			s.Negative += w * p.modifier(term, negated, hedged, t)
			s.Terms = append(s.Terms, term)
		}
	}
	return s
}

func (p *SentimentPass) neutral(sentence string) bool {
	for _, pair := range p.Lexicon.NeutralContexts {
		if len(pair) < 2 {
			continue
		}
		if strings.Contains(sentence, strings.ToLower(pair[0])) && strings.Contains(sentence, strings.ToLower(pair[1])) {
			return true
		}
	}
	return false
}

// modifier returns the factor applied to a matched term's weight. A term
// that already carries a negation ("no grounds") is not flipped again.
func (p *SentimentPass) modifier(term string, negated, hedged bool, t Tuning) float64 {
	m := 1.0
	if negated && !p.embedsNegation(term) {
		m = t.NegationFactor
	}
	if hedged {
		m *= t.QualifierFactor
	}
	return m
}

func (p *SentimentPass) embedsNegation(term string) bool {
	return anyWord(strings.ToLower(term), p.Lexicon.Negations)
}

// strongest returns the first term of a strongest-first table found in s.
func strongest(s string, terms []WeightedTerm) (string, float64, bool) {
	for _, t := range terms {
		if t.Term != "" && strings.Contains(s, strings.ToLower(t.Term)) {
			return t.Term, t.Weight, true
		}
	}
	return "", 0, false
}
