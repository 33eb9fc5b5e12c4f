package verdict

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// TuningVersion is the tuning file format this package reads.
const TuningVersion = "v1.0.0"

// Tuning holds the empirically chosen constants of the sentiment pass and the
// tail window. The defaults reproduce the shipped behaviour; a tuning file can
// override any of them and add extra lexicon entries.
type Tuning struct {
	Version string `yaml:"version"`

	// Score differences above Strong (or below -Strong) are strong signals;
	// above Moderate they still decide the category.
	Strong   float64 `yaml:"strong_threshold"`
	Moderate float64 `yaml:"moderate_threshold"`

	NegationFactor  float64 `yaml:"negation_factor"`
	QualifierFactor float64 `yaml:"qualifier_factor"`

	TailWindow     int `yaml:"tail_window"`
	ShortParagraph int `yaml:"short_paragraph"`

	// Lexicons are merged over the builtin tables, keyed by locale tag.
	Lexicons map[string]Lexicon `yaml:"lexicons"`
}

// DefaultTuning returns the shipped constants.
func DefaultTuning() Tuning {
	return Tuning{
		Version:         TuningVersion,
		Strong:          3,
		Moderate:        1.5,
		NegationFactor:  -0.5,
		QualifierFactor: 0.7,
		TailWindow:      7,
		ShortParagraph:  50,
	}
}

// withDefaults fills unset fields from DefaultTuning.
func (t Tuning) withDefaults() Tuning {
	d := DefaultTuning()
	if t.Version == "" {
		t.Version = d.Version
	}
	if t.Strong == 0 {
		t.Strong = d.Strong
	}
	if t.Moderate == 0 {
		t.Moderate = d.Moderate
	}
	if t.NegationFactor == 0 {
		t.NegationFactor = d.NegationFactor
	}
	if t.QualifierFactor == 0 {
		t.QualifierFactor = d.QualifierFactor
	}
	if t.TailWindow <= 0 {
		t.TailWindow = d.TailWindow
	}
	if t.ShortParagraph <= 0 {
		t.ShortParagraph = d.ShortParagraph
	}
	return t
}

// Validate checks the version and threshold ordering.
func (t Tuning) Validate() error {
	v := t.Version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("tuning: invalid version %q", t.Version)
	}
	if semver.Major(v) != semver.Major(TuningVersion) {
		return fmt.Errorf("tuning: unsupported version %s (want %s.x)", t.Version, semver.Major(TuningVersion))
	}
	if t.Moderate < 0 || t.Strong < t.Moderate {
		return fmt.Errorf("tuning: thresholds must satisfy 0 <= moderate (%.2f) <= strong (%.2f)", t.Moderate, t.Strong)
	}
	return nil
}

// ParseTuning decodes a YAML tuning document. Missing fields take defaults.
func ParseTuning(data []byte) (Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("tuning: parse: %w", err)
	}
	t = t.withDefaults()
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// LoadTuning reads a tuning file from disk.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("tuning: read %s: %w", path, err)
	}
	return ParseTuning(data)
}
