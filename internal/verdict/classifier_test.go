package verdict

import (
	"strings"
	"sync"
	"testing"
)

func TestClassify_EmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\n\t\n"} {
		v := Classify(in, LocaleEnglish)
		if v.Category != CategoryPartial {
			t.Errorf("Classify(%q) category = %q, want partial", in, v.Category)
		}
		if len(v.KeyPoints) != 0 {
			t.Errorf("Classify(%q) key points = %v, want none", in, v.KeyPoints)
		}
		if v.Recommendation != "Please review the details of your fine." {
			t.Errorf("Classify(%q) recommendation = %q", in, v.Recommendation)
		}
		if v.Trace.Pass != PassEmpty {
			t.Errorf("Classify(%q) pass = %q, want %q", in, v.Trace.Pass, PassEmpty)
		}
	}
}

func TestClassify_EmptyInputHebrewDefault(t *testing.T) {
	v := Classify("", LocaleHebrew)
	if v.Recommendation != "אנא עיין בפרטי הקנס שלך." {
		t.Errorf("got recommendation %q", v.Recommendation)
	}
	if v.Locale != LocaleHebrew {
		t.Errorf("got locale %q, want he", v.Locale)
	}
}

func TestClassify_Totality(t *testing.T) {
	inputs := []string{
		"x",
		"?!.",
		"### Result\n",
		"Result:",
		strings.Repeat("valid appeal ", 200),
		"תוצאה",
		"\r\n\r\n\r\n",
	}
	for _, in := range inputs {
		v := Classify(in, "fr")
		switch v.Category {
		case CategoryFavorable, CategoryPartial, CategoryUnfavorable:
		default:
			t.Errorf("Classify(%q) returned category %q", in, v.Category)
		}
		if v.Locale != LocaleEnglish {
			t.Errorf("unknown locale should normalise to en, got %q", v.Locale)
		}
	}
}

func TestClassify_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Category
		pass string
	}{
		{
			name: "explicit result label",
			text: "The ticket lists the wrong street.\nSummary text goes here.\nResult: correct",
			want: CategoryFavorable,
			pass: PassLabel,
		},
		{
			name: "terminal single word",
			text: "The evidence is mixed and the officer's notes are unclear.\n\npartially",
			want: CategoryPartial,
			pass: PassTerminal,
		},
		{
			name: "neutral text falls back to partial",
			text: "The sky is blue. Cars drive on roads. The weather was mild. Lunch was served at noon. Everyone went home.",
			want: CategoryPartial,
			pass: PassSentiment,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Classify(tt.text, LocaleEnglish)
			if v.Category != tt.want {
				t.Errorf("category = %q, want %q (trace %s)", v.Category, tt.want, v.Trace)
			}
			if v.Trace.Pass != tt.pass {
				t.Errorf("pass = %q, want %q", v.Trace.Pass, tt.pass)
			}
		})
	}
}

func TestClassify_StructuredDocument(t *testing.T) {
	text := "### Key Points\n1. Point A\n2. Point B\n\n### Recommendation\nDo X."
	v := Classify(text, LocaleEnglish)
	if len(v.KeyPoints) != 2 || v.KeyPoints[0] != "Point A" || v.KeyPoints[1] != "Point B" {
		t.Errorf("key points = %q, want [Point A Point B]", v.KeyPoints)
	}
	if v.Recommendation != "Do X." {
		t.Errorf("recommendation = %q, want %q", v.Recommendation, "Do X.")
	}
}

func TestClassify_NeutralTextHasNoKeyPoints(t *testing.T) {
	v := Classify("The sky is blue. Cars drive on roads. The weather was mild. Lunch was served at noon. Everyone went home.", LocaleEnglish)
	if v.KeyPoints == nil || len(v.KeyPoints) != 0 {
		t.Errorf("key points = %#v, want empty non-nil slice", v.KeyPoints)
	}
	if v.Recommendation != "Please review the details of your fine." {
		t.Errorf("recommendation = %q, want the default", v.Recommendation)
	}
}

func TestClassify_LabelPrecedence(t *testing.T) {
	// Body full of negative language; the explicit label still wins.
	text := "The fine was properly issued. No grounds exist. You should pay.\nResult: correct\nMore notes."
	v := Classify(text, LocaleEnglish)
	if v.Category != CategoryFavorable {
		t.Errorf("category = %q, want favorable (trace %s)", v.Category, v.Trace)
	}
	if v.Trace.Pass != PassLabel {
		t.Errorf("pass = %q, want label", v.Trace.Pass)
	}
}

func TestClassify_NegatedLabel(t *testing.T) {
	v := Classify("Analysis follows.\nResult: incorrect", LocaleEnglish)
	if v.Category != CategoryUnfavorable {
		t.Errorf("category = %q, want unfavorable (trace %s)", v.Category, v.Trace)
	}
}

func TestClassify_TerminalOverridesTail(t *testing.T) {
	// Tail words lean favorable but the last paragraph is a bare verdict.
	text := "You could dismiss this or overturn it.\n\nincorrect"
	v := Classify(text, LocaleEnglish)
	if v.Category != CategoryUnfavorable {
		t.Errorf("category = %q, want unfavorable (trace %s)", v.Category, v.Trace)
	}
	if v.Trace.Pass != PassTerminal {
		t.Errorf("pass = %q, want terminal", v.Trace.Pass)
	}
}

func TestClassify_PhraseLibraryShortCircuit(t *testing.T) {
	v := Classify("You have grounds to contest this fine.", LocaleEnglish)
	if v.Category != CategoryFavorable {
		t.Errorf("category = %q, want favorable", v.Category)
	}
	if v.Trace.Pass != PassPhraseLibrary {
		t.Errorf("pass = %q, want phrase-library (trace %s)", v.Trace.Pass, v.Trace)
	}
}

func TestClassify_SentimentSymmetry(t *testing.T) {
	pos := Classify("There is a clear error here. We would definitely contest this. There is a high likelihood of success.", LocaleEnglish)
	if pos.Category != CategoryFavorable || pos.Trace.Pass != PassSentiment {
		t.Errorf("positive text: got %q via %s", pos.Category, pos.Trace)
	}
	neg := Classify("There are no grounds here. The appeal will not succeed. There was no error.", LocaleEnglish)
	if neg.Category != CategoryUnfavorable || neg.Trace.Pass != PassSentiment {
		t.Errorf("negative text: got %q via %s", neg.Category, neg.Trace)
	}
}

func TestClassify_BilingualParity(t *testing.T) {
	tests := []struct {
		text string
		want Category
	}{
		{"תוצאה: correct", CategoryFavorable},
		{"תוצאה: עילה", CategoryFavorable},
		{"Result: עילה", CategoryFavorable},
		{"תוצאה: לא נכון", CategoryUnfavorable},
		{"תוצאה: חלקי", CategoryPartial},
	}
	for _, tt := range tests {
		for _, loc := range []Locale{LocaleEnglish, LocaleHebrew} {
			v := Classify(tt.text, loc)
			if v.Category != tt.want {
				t.Errorf("Classify(%q, %s) = %q, want %q", tt.text, loc, v.Category, tt.want)
			}
		}
	}
}

func TestClassify_LocaleOnlyChangesDefaults(t *testing.T) {
	text := "The ticket shows the wrong plate.\n\n### Result\nIn your favor"
	en := Classify(text, LocaleEnglish)
	he := Classify(text, LocaleHebrew)
	if en.Category != he.Category {
		t.Errorf("categories differ by locale: en=%q he=%q", en.Category, he.Category)
	}
	if en.Recommendation == he.Recommendation {
		t.Errorf("expected locale-specific default recommendations, both %q", en.Recommendation)
	}
}

func TestClassifier_ConcurrentUse(t *testing.T) {
	c := New()
	texts := []string{
		"Result: correct",
		"There are no grounds here. The appeal will not succeed.",
		"### Key Points\n- A\n- B",
	}
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			text := texts[i%len(texts)]
			first := c.Classify(text, LocaleEnglish)
			second := c.Classify(text, LocaleEnglish)
			if first.Category != second.Category {
				t.Errorf("classification of %q not stable", text)
			}
		}(i)
	}
	wg.Wait()
}

func TestNew_WithLexicon(t *testing.T) {
	c := New(WithLexicon(Lexicon{
		Library: Phrases{Unfavorable: []string{"camera footage is conclusive"}},
	}))
	v := c.Classify("The camera footage is conclusive.", LocaleEnglish)
	if v.Category != CategoryUnfavorable {
		t.Errorf("category = %q, want unfavorable (trace %s)", v.Category, v.Trace)
	}
}

func TestNew_TuningLexiconOverridesDefault(t *testing.T) {
	c := New(WithTuning(Tuning{
		Lexicons: map[string]Lexicon{
			"he": {DefaultRecommendation: "בדוק את הדוח."},
		},
	}))
	if got := c.DefaultRecommendation(LocaleHebrew); got != "בדוק את הדוח." {
		t.Errorf("hebrew default = %q", got)
	}
	if got := c.DefaultRecommendation(LocaleEnglish); got != "Please review the details of your fine." {
		t.Errorf("english default = %q", got)
	}
}

func TestParseLocale(t *testing.T) {
	tests := map[string]Locale{
		"he":    LocaleHebrew,
		"he-IL": LocaleHebrew,
		"iw":    LocaleHebrew,
		"HE_il": LocaleHebrew,
		"en":    LocaleEnglish,
		"en-US": LocaleEnglish,
		"":      LocaleEnglish,
		"fr":    LocaleEnglish,
	}
	for in, want := range tests {
		if got := ParseLocale(in); got != want {
			t.Errorf("ParseLocale(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseCategory(t *testing.T) {
	for in, want := range map[string]Category{
		"correct":     CategoryFavorable,
		"favorable":   CategoryFavorable,
		"Partially":   CategoryPartial,
		"incorrect":   CategoryUnfavorable,
		"unfavorable": CategoryUnfavorable,
	} {
		got, err := ParseCategory(in)
		if err != nil || got != want {
			t.Errorf("ParseCategory(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseCategory("maybe"); err == nil {
		t.Error("expected error for unknown category")
	}
	if CategoryFavorable.Legacy() != "correct" || CategoryPartial.Legacy() != "partially" || CategoryUnfavorable.Legacy() != "incorrect" {
		t.Error("legacy names do not round trip")
	}
}
