package verdict

// Phrases holds one phrase list per category.
type Phrases struct {
	Favorable   []string `yaml:"favorable"`
	Unfavorable []string `yaml:"unfavorable"`
	Partial     []string `yaml:"partial"`
}

// For returns the list for a category.
func (p Phrases) For(c Category) []string {
	switch c {
	case CategoryFavorable:
		return p.Favorable
	case CategoryUnfavorable:
		return p.Unfavorable
	default:
		return p.Partial
	}
}

func (p Phrases) merge(o Phrases) Phrases {
	return Phrases{
		Favorable:   appendUnique(p.Favorable, o.Favorable...),
		Unfavorable: appendUnique(p.Unfavorable, o.Unfavorable...),
		Partial:     appendUnique(p.Partial, o.Partial...),
	}
}

// WeightedTerm is a sentiment term and its weight (1 weak, 2 medium, 3 strong).
type WeightedTerm struct {
	Term   string  `yaml:"term"`
	Weight float64 `yaml:"weight"`
}

// Lexicon is the keyword data for one language. Classification logic never
// branches on language; it runs over the merge of all registered lexicons.
type Lexicon struct {
	Locale Locale `yaml:"locale"`

	// Section names, matched case-insensitively as "## Name", "### Name" or "Name:".
	ResultHeadings         []string `yaml:"result_headings"`
	KeyPointsHeadings      []string `yaml:"key_points_headings"`
	RecommendationHeadings []string `yaml:"recommendation_headings"`
	SummaryHeadings        []string `yaml:"summary_headings"`

	// Negated forms of favorable keywords ("incorrect" contains "correct").
	// A hit here is read as unfavorable before the favorable group is tried.
	NegatedFavorable []string `yaml:"negated_favorable"`

	Label    Phrases `yaml:"label"`
	Terminal Phrases `yaml:"terminal"`
	Tail     Phrases `yaml:"tail"`
	Section  Phrases `yaml:"section"`
	Library  Phrases `yaml:"library"`

	SectionPositive []string `yaml:"section_positive"`
	SectionNegative []string `yaml:"section_negative"`

	Positive        []WeightedTerm `yaml:"positive"`
	Negative        []WeightedTerm `yaml:"negative"`
	Negations       []string       `yaml:"negations"`
	Qualifiers      []string       `yaml:"qualifiers"`
	NeutralContexts [][]string     `yaml:"neutral_contexts"`

	RecommendationCues    []string `yaml:"recommendation_cues"`
	DefaultRecommendation string   `yaml:"default_recommendation"`
}

// Merge folds o into a copy of l. List entries keep their first-seen order.
func (l Lexicon) Merge(o Lexicon) Lexicon {
	out := l
	out.ResultHeadings = appendUnique(l.ResultHeadings, o.ResultHeadings...)
	out.KeyPointsHeadings = appendUnique(l.KeyPointsHeadings, o.KeyPointsHeadings...)
	out.RecommendationHeadings = appendUnique(l.RecommendationHeadings, o.RecommendationHeadings...)
	out.SummaryHeadings = appendUnique(l.SummaryHeadings, o.SummaryHeadings...)
	out.NegatedFavorable = appendUnique(l.NegatedFavorable, o.NegatedFavorable...)
	out.Label = l.Label.merge(o.Label)
	out.Terminal = l.Terminal.merge(o.Terminal)
	out.Tail = l.Tail.merge(o.Tail)
	out.Section = l.Section.merge(o.Section)
	out.Library = l.Library.merge(o.Library)
	out.SectionPositive = appendUnique(l.SectionPositive, o.SectionPositive...)
	out.SectionNegative = appendUnique(l.SectionNegative, o.SectionNegative...)
	out.Positive = mergeWeighted(l.Positive, o.Positive)
	out.Negative = mergeWeighted(l.Negative, o.Negative)
	out.Negations = appendUnique(l.Negations, o.Negations...)
	out.Qualifiers = appendUnique(l.Qualifiers, o.Qualifiers...)
	out.NeutralContexts = append(append([][]string(nil), l.NeutralContexts...), o.NeutralContexts...)
	out.RecommendationCues = appendUnique(l.RecommendationCues, o.RecommendationCues...)
	return out
}

func appendUnique(dst []string, src ...string) []string {
	out := append([]string(nil), dst...)
	seen := make(map[string]bool, len(out)+len(src))
	for _, s := range out {
		seen[s] = true
	}
	for _, s := range src {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// mergeWeighted appends the terms of b to a and re-sorts strongest first,
// keeping insertion order among equal weights.
func mergeWeighted(a, b []WeightedTerm) []WeightedTerm {
	out := make([]WeightedTerm, 0, len(a)+len(b))
	seen := make(map[string]bool, len(a)+len(b))
	for _, t := range append(append([]WeightedTerm(nil), a...), b...) {
		if t.Term == "" || seen[t.Term] {
			continue
		}
		seen[t.Term] = true
		out = append(out, t)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Weight > out[j-1].Weight; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// builtin holds the lexicons shipped with the package, keyed by locale.
var builtin = map[Locale]Lexicon{
	LocaleEnglish: english,
	LocaleHebrew:  hebrew,
}

// BuiltinLexicon returns the shipped lexicon for a locale.
func BuiltinLexicon(l Locale) (Lexicon, bool) {
	lex, ok := builtin[l]
	return lex, ok
}

var english = Lexicon{
	Locale:                 LocaleEnglish,
	ResultHeadings:         []string{"result"},
	KeyPointsHeadings:      []string{"key points"},
	RecommendationHeadings: []string{"recommendation"},
	SummaryHeadings:        []string{"summary"},
	NegatedFavorable:       []string{"incorrect", "not in favor", "not correct"},

	Label: Phrases{
		Favorable:   []string{"correct", "in favor", "grounds", "appeal"},
		Unfavorable: []string{"incorrect", "valid", "legitimate", "should pay", "uphold"},
		Partial:     []string{"partial", "some merit", "compromise"},
	},
	Terminal: Phrases{
		Favorable:   []string{"correct"},
		Unfavorable: []string{"incorrect"},
		Partial:     []string{"partially"},
	},
	Tail: Phrases{
		Favorable: []string{
			"correct", "in favor", "favorable", "approve", "cancel", "dismiss",
			"overturn", "should contest", "recommend contesting", "successful appeal",
		},
		Unfavorable: []string{
			"incorrect", "not in favor", "unfavorable", "uphold", "maintain", "valid",
			"proper", "legitimate", "should pay", "recommend paying", "unlikely to succeed",
		},
		Partial: []string{
			"partially", "partial", "some merit", "compromise", "reduce", "reduction",
			"negotiate", "limited grounds",
		},
	},
	Section: Phrases{
		Favorable:   []string{"correct", "in favor", "grounds", "should contest", "appeal"},
		Unfavorable: []string{"incorrect", "not in favor", "valid fine", "legitimate", "lawful"},
		Partial:     []string{"partially", "partial", "some merit", "compromise"},
	},
	SectionPositive: []string{"recommend", "appeal", "contest", "grounds", "argue"},
	SectionNegative: []string{"pay", "valid", "legitimate", "properly"},

	Library: Phrases{
		Favorable: []string{
			"grounds to contest", "appears to be incorrectly issued", "strong case",
			"valid grounds", "strong grounds", "good chance", "likely to succeed",
			"improperly issued", "incorrectly issued", "procedural error", "technical error",
			"recommend appealing", "recommendable to appeal", "recommend contesting",
			"overturned", "cancelled", "canceled", "refunded", "dismiss", "dismissal",
			"overruled", "incorrect citation", "wrong citation", "error in citation",
			"error in fine", "mistake on ticket", "citation error", "dismiss the fine",
			"grounds for dismissal", "grounds to dismiss", "grounds to overturn",
			"technical issue", "factual issue",
		},
		Unfavorable: []string{
			"appears to be valid", "unlikely to succeed", "evidence supports the violation",
			"properly issued", "valid ticket", "legitimate fine", "evidence clearly shows",
			"no legal basis", "no justification", "no merit", "no valid reason",
			"fine is proper", "fine is correct", "pay the fine", "accept the penalty",
			"accept the fine", "valid citation", "evidence confirms", "evidence supports",
			"evidence validates",
		},
		Partial: []string{
			"partial grounds", "some merit", "could argue", "might have a case",
			"may have grounds", "uncertain outcome", "mixed evidence", "limited options",
			"possible but unlikely", "minor issues", "reduce the fine", "negotiate a settlement",
		},
	},

	Positive: []WeightedTerm{
		{"strong grounds", 3}, {"clear error", 3}, {"definitely contest", 3}, {"clear violation", 3},
		{"recommend contesting", 3}, {"should contest", 3}, {"grounds to appeal", 3},
		{"successful appeal", 3}, {"high likelihood", 3},
		{"grounds", 2}, {"appeal", 2}, {"contest", 2}, {"error in", 2}, {"mistake in", 2},
		{"may succeed", 2}, {"can argue", 2}, {"justify contesting", 2}, {"valid reason", 2},
		{"possible", 1}, {"challenge", 1}, {"argue", 1}, {"consider appealing", 1},
		{"option to contest", 1},
	},
	Negative: []WeightedTerm{
		{"no grounds", 3}, {"clearly valid", 3}, {"no basis", 3}, {"properly issued", 3},
		{"correctly issued", 3}, {"no error", 3}, {"no mistake", 3}, {"should pay", 3},
		{"pay the fine", 3}, {"will not succeed", 3},
		{"unlikely", 2}, {"valid", 2}, {"legitimate", 2}, {"lawful", 2}, {"properly", 2},
		{"correctly", 2}, {"limited chance", 2},
		{"difficult", 1}, {"challenging", 1},
	},
	Negations: []string{
		"not", "no", "isn't", "don't", "wouldn't", "couldn't", "won't", "can't", "never",
	},
	Qualifiers: []string{"may", "might", "perhaps", "possibly", "sometimes"},
	NeutralContexts: [][]string{
		{"officer", "name"}, {"officer", "badge"}, {"badge", "number"},
		{"missing", "information"}, {"details", "missing"},
		{"fine", "number"}, {"date", "issue"},
		{"appeal process", "procedure"},
	},

	RecommendationCues:    []string{"recommend", "suggestion", "advised"},
	DefaultRecommendation: "Please review the details of your fine.",
}

var hebrew = Lexicon{
	Locale:                 LocaleHebrew,
	ResultHeadings:         []string{"תוצאה"},
	KeyPointsHeadings:      []string{"נקודות מפתח"},
	RecommendationHeadings: []string{"המלצה"},
	SummaryHeadings:        []string{"סיכום"},
	NegatedFavorable:       []string{"לא נכון", "לא לטובת"},

	Label: Phrases{
		Favorable:   []string{"נכון", "לטובת", "עילה", "לערער"},
		Unfavorable: []string{"תקף", "חוקי", "לשלם"},
		Partial:     []string{"חלקי"},
	},
	Terminal: Phrases{
		Favorable:   []string{"נכון"},
		Unfavorable: []string{"לא נכון"},
		Partial:     []string{"חלקית"},
	},
	Tail: Phrases{
		Favorable:   []string{"לטובתך", "לבטל", "מומלץ לערער", "ערעור מוצלח"},
		Unfavorable: []string{"לא לטובתך", "תקף", "חוקי", "מומלץ לשלם", "סיכוי נמוך"},
		Partial:     []string{"חלקית", "חלקי", "פשרה", "הפחתה", "להפחית"},
	},
	Section: Phrases{
		Favorable:   []string{"לטובת", "עילה", "ערעור"},
		Unfavorable: []string{"תקף", "חוקי", "לא לטובת"},
		Partial:     []string{"חלקית"},
	},
	SectionPositive: []string{"לערער", "עילה", "לטעון"},
	SectionNegative: []string{"לשלם", "תקף", "חוקי"},

	Library: Phrases{
		Favorable: []string{
			"יש לך עילה", "טעות בדוח", "יש בסיס לערעור", "לטובתך",
			"יש מקום לבחון את תקפות הקנס", "לבטל את הקנס", "עילה לערעור", "סיכוי גבוה",
			"לערער", "מומלץ לערער", "בסיס לביטול", "ניתן לבטל", "טעות בדו״ח", "טעות ברישום",
			"ביטול הדוח", "כדאי לערער", "סיבה מוצדקת לערעור",
		},
		Unfavorable: []string{
			"הדוח תקף", "אין עילה", "הראיות תומכות", "סיכוי נמוך", "לשלם את הקנס",
			"אין סיבה לערער", "אין הצדקה", "אין בסיס", "הדוח תקין", "אין טעות",
			"אין בסיס לערעור", "ראיות מאששות", "קנס תקף",
		},
		Partial: []string{
			"עילה חלקית", "אפשרות מסוימת", "סיכוי בינוני", "יש אפשרות", "להפחית את הקנס",
			"ראיות מעורבות", "תוצאה לא ודאית", "סיכוי מוגבל",
		},
	},

	Positive: []WeightedTerm{
		{"עילה חזקה", 3}, {"מומלץ לערער", 3}, {"סיכוי גבוה", 3}, {"טעות ברורה", 3},
		{"עילה", 2}, {"ערעור", 2}, {"כדאי לערער", 2}, {"אפשר לערער", 2}, {"לטובתך", 2},
		{"אפשרי", 1}, {"אפשרות", 1}, {"לבחון", 1}, {"לשקול", 1}, {"ניתן לנסות", 1},
	},
	Negative: []WeightedTerm{
		{"אין עילה", 3}, {"הדוח תקף", 3}, {"אין טעות", 3}, {"מומלץ לשלם", 3}, {"אין סיכוי", 3},
		{"תקף", 2}, {"חוקי", 2}, {"כדאי לשלם", 2}, {"סיכוי נמוך", 2}, {"קטן הסיכוי", 2},
		{"תשלום", 1}, {"קשה", 1}, {"מאתגר", 1},
	},
	Negations:  []string{"אין", "לא", "אינו", "אל"},
	Qualifiers: []string{"אולי", "יתכן", "ייתכן", "לפעמים"},
	NeutralContexts: [][]string{
		{"השוטר", "שם"}, {"השוטר", "פרטי"}, {"תג", "מספר"}, {"חסרים", "פרטים"},
		{"מספר", "דוח"}, {"תאריך", "הנפקה"},
		{"הגשת ערעור", "תהליך"},
	},

	RecommendationCues:    []string{"המלצה", "מומלץ", "כדאי"},
	DefaultRecommendation: "אנא עיין בפרטי הקנס שלך.",
}
