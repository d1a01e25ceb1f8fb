// Package text renders a planned deck as a plain terminal outline.
//
// The outline is one block per slide: a header line with the slide number,
// template tag, and title, followed by the indented content items and the
// first line of any placeholder instruction. It is the cheapest way to see
// what the planner decided without opening an artifact.
//
// Emphasis markers are stripped by default; [WithSpans] re-marks bold runs
// with single asterisks instead. [WithWidth] wraps body lines with a
// hanging indent.
package text

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/deck"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/plan"
)

// Option configures text rendering via [Render].
type Option func(*renderer)

type renderer struct {
	spans bool
	width int
}

// WithSpans marks bold runs with single asterisks instead of stripping the
// emphasis markers.
func WithSpans() Option { return func(r *renderer) { r.spans = true } }

// WithWidth wraps content lines at the given column with a hanging indent.
// Zero or negative disables wrapping.
func WithWidth(w int) Option { return func(r *renderer) { r.width = w } }

func newRenderer(opts ...Option) renderer {
	r := renderer{width: 80}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Render produces the outline for a planned deck.
func Render(d deck.Deck, plans []plan.LayoutPlan, opts ...Option) []byte {
	r := newRenderer(opts...)

	var buf bytes.Buffer
	if title := d.DisplayTitle(); title != "" {
		fmt.Fprintf(&buf, "Deck: %s\n", title)
	}
	if d.Meta.Author != "" {
		fmt.Fprintf(&buf, "Author: %s\n", d.Meta.Author)
	}
	fmt.Fprintf(&buf, "Slides: %d\n", len(plans))

	// Pad the number and template columns so titles line up.
	numWidth := 1
	tmplWidth := 1
	for _, p := range plans {
		if w := len(fmt.Sprint(p.Slide.Number)); w > numWidth {
			numWidth = w
		}
		if w := len(p.Template); w > tmplWidth {
			tmplWidth = w
		}
	}

	for _, p := range plans {
		buf.WriteByte('\n')
		r.writeSlide(&buf, p, numWidth, tmplWidth)
	}
	return buf.Bytes()
}

func (r renderer) writeSlide(buf *bytes.Buffer, p plan.LayoutPlan, numWidth, tmplWidth int) {
	fmt.Fprintf(buf, "Slide %*d  %-*s  %s\n",
		numWidth, p.Slide.Number,
		tmplWidth+2, "["+string(p.Template)+"]",
		r.text(p.Slide.Title))

	for _, item := range p.Slide.Content {
		switch item.Kind {
		case deck.KindSection:
			r.writeWrapped(buf, "  ", "", r.text(item.Text))
		case deck.KindBullet:
			r.writeWrapped(buf, "    - ", "      ", r.text(item.Text))
		default:
			r.writeWrapped(buf, "    ", "    ", r.text(item.Text))
		}
	}

	if p.Placeholder != "" {
		first, _, _ := strings.Cut(p.Placeholder, "\n")
		r.writeWrapped(buf, "    > ", "      ", first)
	}
}

// text renders a raw string according to the span mode.
func (r renderer) text(s string) string {
	if !r.spans {
		return deck.PlainText(s)
	}
	var b strings.Builder
	for _, span := range deck.SplitSpans(s) {
		if span.Bold {
			b.WriteString("*")
			b.WriteString(span.Text)
			b.WriteString("*")
		} else {
			b.WriteString(span.Text)
		}
	}
	return b.String()
}

// writeWrapped emits prefix+s wrapped at the renderer width; continuation
// lines start with cont. An empty cont reuses spaces the width of prefix.
func (r renderer) writeWrapped(buf *bytes.Buffer, prefix, cont, s string) {
	if cont == "" {
		cont = strings.Repeat(" ", len(prefix))
	}
	if r.width <= 0 || len(prefix)+len(s) <= r.width {
		buf.WriteString(prefix)
		buf.WriteString(s)
		buf.WriteByte('\n')
		return
	}

	avail := r.width - len(prefix)
	if avail < 1 {
		avail = 1
	}
	line := prefix
	used := 0
	for _, word := range strings.Fields(s) {
		if used > 0 && used+1+len(word) > avail {
			buf.WriteString(line)
			buf.WriteByte('\n')
			line = cont
			avail = r.width - len(cont)
			if avail < 1 {
				avail = 1
			}
			used = 0
		}
		if used > 0 {
			line += " "
			used++
		}
		line += word
		used += len(word)
	}
	buf.WriteString(line)
	buf.WriteByte('\n')
}
