package deck

import (
	"regexp"
	"strings"
)

// boldRE matches one paired bold span, non-greedy so that adjacent spans on
// the same line stay separate. It never crosses line boundaries.
var boldRE = regexp.MustCompile(`\*\*.*?\*\*`)

// SplitSpans splits s on paired double-asterisk markers into alternating
// plain and bold runs. Unpaired markers are literal text, never an error.
// Empty runs are dropped; whitespace-only plain runs are kept so that
// concatenating the run texts reproduces s with paired markers removed.
//
// This is the single splitter used for titles, bullets, and text lines.
func SplitSpans(s string) []Span {
	locs := boldRE.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		if s == "" {
			return nil
		}
		return []Span{{Text: s}}
	}

	spans := make([]Span, 0, 2*len(locs)+1)
	prev := 0
	for _, loc := range locs {
		if loc[0] > prev {
			spans = append(spans, Span{Text: s[prev:loc[0]]})
		}
		if inner := s[loc[0]+2 : loc[1]-2]; inner != "" {
			spans = append(spans, Span{Text: inner, Bold: true})
		}
		prev = loc[1]
	}
	if prev < len(s) {
		spans = append(spans, Span{Text: s[prev:]})
	}
	return spans
}

// PlainText returns s with all paired bold markers removed.
func PlainText(s string) string {
	spans := SplitSpans(s)
	if len(spans) == 1 && !spans[0].Bold {
		return spans[0].Text
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, sp := range spans {
		b.WriteString(sp.Text)
	}
	return b.String()
}
