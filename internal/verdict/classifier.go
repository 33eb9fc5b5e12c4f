package verdict

import (
	"sort"
	"strings"
	"sync"
)

// Classifier turns analysis text into a Verdict. It is immutable after New
// and safe for concurrent use.
type Classifier struct {
	lexicon   Lexicon
	tuning    Tuning
	passes    []Pass
	extractor *Extractor
	defaults  map[Locale]string
}

// Option configures a Classifier.
type Option func(*options)

type options struct {
	tuning Tuning
	extra  []Lexicon
}

// WithTuning replaces the default constants. Unset fields keep their defaults.
func WithTuning(t Tuning) Option {
	return func(o *options) { o.tuning = t }
}

// WithLexicon adds keyword data on top of the builtin lexicons.
func WithLexicon(lex Lexicon) Option {
	return func(o *options) { o.extra = append(o.extra, lex) }
}

// New builds a classifier over the union of every builtin lexicon plus any
// lexicons given in options or in the tuning.
func New(opts ...Option) *Classifier {
	o := options{tuning: DefaultTuning()}
	for _, opt := range opts {
		opt(&o)
	}
	tuning := o.tuning.withDefaults()

	c := &Classifier{tuning: tuning, defaults: make(map[Locale]string)}

	// English first so its terms lead each list; the rest in a stable order.
	locales := make([]Locale, 0, len(builtin))
	for l := range builtin {
		locales = append(locales, l)
	}
	sort.Slice(locales, func(i, j int) bool {
		if locales[i] == LocaleEnglish || locales[j] == LocaleEnglish {
			return locales[i] == LocaleEnglish
		}
		return locales[i] < locales[j]
	})

	var merged Lexicon
	add := func(lex Lexicon) {
		merged = merged.Merge(lex)
		if lex.DefaultRecommendation != "" && lex.Locale != "" {
			c.defaults[ParseLocale(string(lex.Locale))] = lex.DefaultRecommendation
		}
	}
	for _, l := range locales {
		add(builtin[l])
	}

	tags := make([]string, 0, len(tuning.Lexicons))
	for tag := range tuning.Lexicons {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	for _, tag := range tags {
		lex := tuning.Lexicons[tag]
		if lex.Locale == "" {
			lex.Locale = ParseLocale(tag)
		}
		add(lex)
	}
	for _, lex := range o.extra {
		add(lex)
	}
	merged.Locale = ""
	merged.DefaultRecommendation = ""

	c.lexicon = merged
	c.passes = DefaultPasses(merged, tuning)
	c.extractor = NewExtractor(merged, tuning)
	return c
}

var defaultClassifier = sync.OnceValue(func() *Classifier { return New() })

// Default returns a shared classifier with the builtin lexicons and tuning.
func Default() *Classifier { return defaultClassifier() }

// Passes returns the classification chain in order.
func (c *Classifier) Passes() []Pass { return c.passes }

// Tuning returns the effective constants.
func (c *Classifier) Tuning() Tuning { return c.tuning }

// DefaultRecommendation is the placeholder used when a document has no
// recommendation.
func (c *Classifier) DefaultRecommendation(l Locale) string {
	if s, ok := c.defaults[l]; ok {
		return s
	}
	return c.defaults[LocaleEnglish]
}

// Category runs the pass chain only.
func (c *Classifier) Category(text string) (Category, Match) {
	doc := NewDocument(text)
	if doc.Empty() {
		return CategoryPartial, Match{Pass: PassEmpty}
	}
	return RunPasses(c.passes, doc)
}

// Classify returns the verdict for text. The category is always set.
func (c *Classifier) Classify(text string, locale Locale) Verdict {
	locale = ParseLocale(string(locale))
	v := Verdict{
		Category:       CategoryPartial,
		KeyPoints:      []string{},
		Recommendation: c.DefaultRecommendation(locale),
		Locale:         locale,
		Trace:          Match{Pass: PassEmpty},
	}
	if strings.TrimSpace(text) == "" {
		return v
	}

	v.Category, v.Trace = c.Category(text)
	if kp := c.extractor.KeyPoints(text); len(kp) > 0 {
		v.KeyPoints = kp
	}
	if rec := c.extractor.Recommendation(text); rec != "" {
		v.Recommendation = rec
	}
	return v
}

// ExtractKeyPoints returns the key points of text.
func (c *Classifier) ExtractKeyPoints(text string) []string {
	return c.extractor.KeyPoints(text)
}

// ExtractRecommendation returns the recommendation of text, or "".
func (c *Classifier) ExtractRecommendation(text string) string {
	return c.extractor.Recommendation(text)
}

// ExtractSummary returns the summary section of text, or the trimmed text.
func (c *Classifier) ExtractSummary(text string) string {
	return c.extractor.Summary(text)
}

// Classify classifies text with the default classifier.
func Classify(text string, locale Locale) Verdict {
	return Default().Classify(text, locale)
}

// ExtractKeyPoints uses the default classifier.
func ExtractKeyPoints(text string) []string { return Default().ExtractKeyPoints(text) }

// ExtractRecommendation uses the default classifier.
func ExtractRecommendation(text string) string { return Default().ExtractRecommendation(text) }

// ExtractSummary uses the default classifier.
func ExtractSummary(text string) string { return Default().ExtractSummary(text) }
