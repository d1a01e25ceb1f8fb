// Package deck defines the slide deck model and the markdown parser that
// produces it.
//
// A deck source is a constrained markdown subset: level-2 headings of the
// form "## Slide <N>: <title>" open slides, a standalone "---" line or the
// next heading closes them, and slide bodies hold bold sub-headings
// ("### **...**"), list bullets ("-" or "*"), fenced code blocks (discarded)
// and free-standing text lines. Double-asterisk emphasis spans survive
// parsing as raw markers and are split into runs by [SplitSpans] at render
// time.
//
// Parsing is best-effort and never fails: malformed input degrades to an
// empty or partial deck, with diagnostics collected in [Deck.Warnings].
package deck

import "fmt"

// ItemKind classifies one parsed unit of a slide body.
type ItemKind string

const (
	// KindSection is a bold sub-heading line ("### **Label**").
	KindSection ItemKind = "section"
	// KindBullet is a list entry ("- text" or "* text").
	KindBullet ItemKind = "bullet"
	// KindText is a free-standing paragraph line.
	KindText ItemKind = "text"
)

// ContentItem is one parsed unit of a slide's body. The kind is fixed by the
// leading-token pattern at parse time and never reclassified afterward.
//
// For sections, Text holds the label with heading and bold markers already
// stripped. For bullets and text, Text keeps raw emphasis markers so that
// sinks can split them into runs with [SplitSpans].
type ContentItem struct {
	Kind ItemKind `json:"kind"`
	Text string   `json:"text"`
}

// Span is a run of text that is either plain or emphasized (bold).
// Concatenating the Text fields of the spans produced from a string
// reproduces that string with all paired bold markers removed.
type Span struct {
	Text string `json:"text"`
	Bold bool   `json:"bold,omitempty"`
}

// Slide is one page of the output deck.
//
// Number is taken verbatim from the slide heading; the parser performs no
// contiguity or uniqueness validation, and source order is preserved
// regardless of the numbers. Title keeps raw emphasis markers.
type Slide struct {
	Number  int           `json:"number"`
	Title   string        `json:"title"`
	Content []ContentItem `json:"content,omitempty"`
}

// Meta is optional deck metadata from a YAML frontmatter block.
type Meta struct {
	Title   string `json:"title,omitempty" yaml:"title"`
	Author  string `json:"author,omitempty" yaml:"author"`
	Date    string `json:"date,omitempty" yaml:"date"`
	Subject string `json:"subject,omitempty" yaml:"subject"`
}

// IsZero reports whether no metadata field is set.
func (m Meta) IsZero() bool {
	return m == Meta{}
}

// Warning is a non-fatal parse diagnostic. Line is 1-based and refers to the
// original source, or 0 when no single line applies.
type Warning struct {
	Line    int    `json:"line,omitempty"`
	Message string `json:"message"`
}

// String formats the warning for logs.
func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("line %d: %s", w.Line, w.Message)
	}
	return w.Message
}

// Deck is a fully parsed source document: metadata, ordered slides, and any
// diagnostics collected along the way.
type Deck struct {
	Meta     Meta      `json:"meta,omitempty"`
	Slides   []Slide   `json:"slides"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// Slide returns the first slide carrying the given number. Duplicate numbers
// are legal in the model; lookups resolve to the earliest occurrence.
func (d Deck) Slide(number int) (Slide, bool) {
	for _, s := range d.Slides {
		if s.Number == number {
			return s, true
		}
	}
	return Slide{}, false
}

// ItemCount returns the total number of content items across all slides.
func (d Deck) ItemCount() int {
	n := 0
	for _, s := range d.Slides {
		n += len(s.Content)
	}
	return n
}

// DisplayTitle returns the metadata title when present, otherwise the first
// slide's title with emphasis markers removed, otherwise an empty string.
func (d Deck) DisplayTitle() string {
	if d.Meta.Title != "" {
		return d.Meta.Title
	}
	if len(d.Slides) > 0 {
		return PlainText(d.Slides[0].Title)
	}
	return ""
}
