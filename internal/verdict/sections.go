package verdict

import (
	"regexp"
	"strings"
)

var nextHeading = regexp.MustCompile(`(?m)^[ \t]*#`)

// section is a located block of a document.
type section struct {
	Body    string
	Start   int  // offset of the body in the searched text
	Heading bool // "## Name" form rather than "Name:"
}

// sectionSpec finds a named section either as a Markdown heading
// ("## Name" / "### Name") or as a label ("Name:"). A heading body runs to
// the next heading. A label body runs to the first stop pattern and, when
// cutAtBlank is set, to the first blank line.
type sectionSpec struct {
	heading    *regexp.Regexp
	label      *regexp.Regexp
	stops      []*regexp.Regexp
	cutAtBlank bool
}

func alternation(names []string) string {
	quoted := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			quoted = append(quoted, regexp.QuoteMeta(n))
		}
	}
	if len(quoted) == 0 {
		// Matches nothing.
		return `[^\x00-\x{10FFFF}]`
	}
	return strings.Join(quoted, "|")
}

func headingPattern(names []string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)^[ \t]*#{2,3}[ \t]*\**[ \t]*(?:` + alternation(names) + `)[ \t]*\**[ \t]*(?::[ \t]*\**[ \t]*(.*?))?[ \t]*$`)
}

func labelPattern(names []string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:` + alternation(names) + `)[ \t]*:`)
}

// stopPattern matches either form of the named sections.
func stopPattern(names []string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)(?:^[ \t]*#{1,3}[ \t]*(?:` + alternation(names) + `))|(?:(?:` + alternation(names) + `)[ \t]*:)`)
}

func newSectionSpec(names []string, cutAtBlank bool, stops ...[]string) *sectionSpec {
	s := &sectionSpec{
		heading:    headingPattern(names),
		label:      labelPattern(names),
		cutAtBlank: cutAtBlank,
	}
	for _, st := range stops {
		s.stops = append(s.stops, stopPattern(st))
	}
	return s
}

func (s *sectionSpec) find(text string) (section, bool) {
	if loc := s.heading.FindStringSubmatchIndex(text); loc != nil {
		var inline string
		if loc[2] >= 0 {
			inline = strings.TrimSpace(strings.Trim(text[loc[2]:loc[3]], "*"))
		}
		rest := text[loc[1]:]
		if m := nextHeading.FindStringIndex(rest); m != nil {
			rest = rest[:m[0]]
		}
		if inline != "" {
			rest = inline + "\n" + rest
		}
		return section{Body: rest, Start: loc[1], Heading: true}, true
	}

	if loc := s.label.FindStringIndex(text); loc != nil {
		rest := text[loc[1]:]
		end := len(rest)
		if s.cutAtBlank {
			if i := strings.Index(rest, "\n\n"); i >= 0 {
				end = i
			}
		}
		for _, stop := range s.stops {
			if m := stop.FindStringIndex(rest[:end]); m != nil {
				end = m[0]
			}
		}
		return section{Body: rest[:end], Start: loc[1]}, true
	}

	return section{}, false
}

// sections groups the section finders compiled from a lexicon.
type sections struct {
	result         *sectionSpec
	keyPoints      *sectionSpec
	recommendation *sectionSpec
	summary        *sectionSpec

	// recommendationStop ends a recommendation read line by line.
	recommendationStop *regexp.Regexp
}

func compileSections(lex Lexicon) *sections {
	return &sections{
		result:    newSectionSpec(lex.ResultHeadings, true),
		keyPoints: newSectionSpec(lex.KeyPointsHeadings, true, lex.RecommendationHeadings),
		recommendation: newSectionSpec(lex.RecommendationHeadings, true,
			lex.ResultHeadings),
		summary: newSectionSpec(lex.SummaryHeadings, false,
			lex.KeyPointsHeadings, lex.RecommendationHeadings, lex.ResultHeadings),
		recommendationStop: regexp.MustCompile(`(?im)^[ \t]*###|(?:` + alternation(lex.ResultHeadings) + `)[ \t]*:`),
	}
}
