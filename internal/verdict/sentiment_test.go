package verdict

import (
	"math"
	"testing"
)

func englishSentiment() *SentimentPass {
	return &SentimentPass{Lexicon: english, Tuning: DefaultTuning()}
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestSentiment_StrongestTermOnly(t *testing.T) {
	p := englishSentiment()
	// "strong grounds" (3) and "grounds" (2) both match; only the strongest counts.
	s := p.Score(NewDocument("This is a strong grounds for appeal"))
	if !approx(s.Positive, 3) {
		t.Errorf("positive = %v, want 3", s.Positive)
	}
	if !approx(s.Negative, 0) {
		t.Errorf("negative = %v, want 0", s.Negative)
	}
}

func TestSentiment_NegationInversion(t *testing.T) {
	p := englishSentiment()
	plain := p.Score(NewDocument("This is a strong grounds for appeal"))
	negated := p.Score(NewDocument("This is not a strong grounds for appeal"))

	if !approx(negated.Positive, -1.5) {
		t.Errorf("negated positive = %v, want -1.5", negated.Positive)
	}
	if cat, _ := p.Decide(plain.Diff()); cat != CategoryFavorable {
		t.Errorf("plain decided %q, want favorable", cat)
	}
	if cat, _ := p.Decide(negated.Diff()); cat == CategoryFavorable {
		t.Errorf("negated sentence should not be favorable")
	}
}

func TestSentiment_NegationInsideTermNotFlipped(t *testing.T) {
	p := englishSentiment()
	s := p.Score(NewDocument("There are no grounds here"))
	if !approx(s.Negative, 3) {
		t.Errorf("negative = %v, want 3 (term already negated)", s.Negative)
	}
	if !approx(s.Positive, -1) {
		t.Errorf("positive = %v, want -1 (grounds under negation)", s.Positive)
	}
}

func TestSentiment_Qualifier(t *testing.T) {
	p := englishSentiment()
	s := p.Score(NewDocument("You might have a clear error to point at"))
	if !approx(s.Positive, 3*0.7) {
		t.Errorf("positive = %v, want %v", s.Positive, 3*0.7)
	}
}

func TestSentiment_NegationNeedsWordBoundary(t *testing.T) {
	p := englishSentiment()
	// "nothing" and "notice" must not count as "no"/"not".
	s := p.Score(NewDocument("Nothing in the notice hides the clear error"))
	if !approx(s.Positive, 3) {
		t.Errorf("positive = %v, want 3", s.Positive)
	}
}

func TestSentiment_NeutralContextSkipped(t *testing.T) {
	p := englishSentiment()
	s := p.Score(NewDocument("The officer badge number is valid. "))
	if s.Positive != 0 || s.Negative != 0 {
		t.Errorf("neutral sentence scored %v/%v", s.Positive, s.Negative)
	}
}

func TestSentiment_HebrewNegation(t *testing.T) {
	p := &SentimentPass{Lexicon: hebrew, Tuning: DefaultTuning()}
	s := p.Score(NewDocument("לא מומלץ לערער"))
	if !approx(s.Positive, -1.5) {
		t.Errorf("positive = %v, want -1.5", s.Positive)
	}
}

func TestSentiment_Decide(t *testing.T) {
	p := englishSentiment()
	tests := []struct {
		diff     float64
		want     Category
		strength string
	}{
		{9, CategoryFavorable, StrengthStrong},
		{3.5, CategoryFavorable, StrengthStrong},
		{3, CategoryFavorable, StrengthModerate},
		{2, CategoryFavorable, StrengthModerate},
		{1.5, CategoryPartial, ""},
		{0, CategoryPartial, ""},
		{-1.5, CategoryPartial, ""},
		{-2, CategoryUnfavorable, StrengthModerate},
		{-11, CategoryUnfavorable, StrengthStrong},
	}
	for _, tt := range tests {
		cat, strength := p.Decide(tt.diff)
		if cat != tt.want || strength != tt.strength {
			t.Errorf("Decide(%v) = %q/%q, want %q/%q", tt.diff, cat, strength, tt.want, tt.strength)
		}
	}
}

func TestSentiment_ConfigurableThresholds(t *testing.T) {
	p := &SentimentPass{Lexicon: english, Tuning: Tuning{Strong: 10, Moderate: 5}}
	if cat, _ := p.Decide(4); cat != CategoryPartial {
		t.Errorf("Decide(4) with moderate=5 = %q, want partial", cat)
	}
	if cat, _ := p.Decide(6); cat != CategoryFavorable {
		t.Errorf("Decide(6) with moderate=5 = %q, want favorable", cat)
	}
}

func TestSentiment_AlwaysDecides(t *testing.T) {
	p := englishSentiment()
	_, m, ok := p.Classify(NewDocument("nothing to see"))
	if !ok {
		t.Fatal("sentiment pass must always decide")
	}
	if m.Pass != PassSentiment {
		t.Errorf("pass = %q", m.Pass)
	}
}
