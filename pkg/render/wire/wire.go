// Package wire renders layout plans as SVG wireframes.
//
// A wireframe draws every region of a plan as a positioned rectangle on a
// 10 x 7.5 in page (96 px per inch): the title and body with their real
// text, the rule bar and placeholder box with the theme fills, and a small
// kind label on each text region. It is the visual twin of the text
// outline, used by the preview server and render -f svg.
//
// [RenderSVG] draws one slide; [RenderDeckSVG] stacks every plan into a
// vertical strip. The SVG is hand-built into a buffer; there is nothing to
// fail, so both return bytes directly.
package wire

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/deck"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/plan"
)

const (
	pxPerInch = 96.0
	ptToPx    = 96.0 / 72.0

	pageW = plan.PageWidth * pxPerInch
	pageH = plan.PageHeight * pxPerInch

	// Vertical gap between pages in a deck strip.
	stripGap = 24.0

	lineHeight = 1.5
)

// Option configures wireframe rendering.
type Option func(*renderer)

type renderer struct {
	scale  float64
	labels bool
	theme  plan.Theme
}

// WithScale multiplies the rendered pixel size. The viewBox is unchanged,
// so coordinates stay in page pixels.
func WithScale(s float64) Option { return func(r *renderer) { r.scale = s } }

// WithoutLabels drops the region kind labels for clean thumbnails.
func WithoutLabels() Option { return func(r *renderer) { r.labels = false } }

func newRenderer(opts ...Option) renderer {
	r := renderer{scale: 1, labels: true, theme: plan.DefaultTheme()}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG draws one plan as a single wireframe page.
func RenderSVG(p plan.LayoutPlan, opts ...Option) []byte {
	r := newRenderer(opts...)

	var buf bytes.Buffer
	r.openSVG(&buf, pageH)
	r.writePage(&buf, p, 0)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// RenderDeckSVG draws every plan as a vertical strip, one page per slide in
// presentation order. Zero plans yield one empty page.
func RenderDeckSVG(d deck.Deck, plans []plan.LayoutPlan, opts ...Option) []byte {
	r := newRenderer(opts...)

	total := pageH
	if n := len(plans); n > 0 {
		total = float64(n)*pageH + float64(n-1)*stripGap
	}

	var buf bytes.Buffer
	r.openSVG(&buf, total)
	if title := d.DisplayTitle(); title != "" {
		fmt.Fprintf(&buf, "<title>%s</title>\n", escape(title))
	}
	for i, p := range plans {
		r.writePage(&buf, p, float64(i)*(pageH+stripGap))
	}
	if len(plans) == 0 {
		r.writeFrame(&buf, 0)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r renderer) openSVG(buf *bytes.Buffer, height float64) {
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.0f" width="%.0f" height="%.0f" font-family="Helvetica, Arial, sans-serif">`+"\n",
		pageW, height, pageW*r.scale, height*r.scale)
}

// writeFrame draws the page background and edge.
func (r renderer) writeFrame(buf *bytes.Buffer, top float64) {
	fmt.Fprintf(buf, `<rect x="0" y="%.1f" width="%.0f" height="%.0f" fill="#%s" stroke="#C8C8C8"/>`+"\n",
		top, pageW, pageH, r.theme.Background)
}

// writePage draws one plan at the given vertical offset.
func (r renderer) writePage(buf *bytes.Buffer, p plan.LayoutPlan, top float64) {
	r.writeFrame(buf, top)

	for _, region := range p.Regions {
		x := region.X * pxPerInch
		y := top + region.Y*pxPerInch
		w := region.W * pxPerInch
		h := region.H * pxPerInch

		switch region.Kind {
		case plan.RegionTitle:
			r.writeLabel(buf, region.Kind, x, y, w, h)
			r.writeSpanText(buf, x, y+h*0.65, r.theme.Title, deck.SplitSpans(p.Slide.Title))
		case plan.RegionRule:
			fmt.Fprintf(buf, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#%s"/>`+"\n",
				x, y, w, h, r.theme.RuleFill)
		case plan.RegionBody:
			r.writeLabel(buf, region.Kind, x, y, w, h)
			r.writeBody(buf, p.Slide.Content, x, y, h)
		case plan.RegionPlaceholder:
			box := r.theme.PlaceholderBox(p.Template)
			fmt.Fprintf(buf, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#%s" stroke="#%s" stroke-width="%.1f"/>`+"\n",
				x, y, w, h, box.Fill, box.BorderColor, float64(box.BorderPt)*ptToPx)
			r.writePlaceholder(buf, p.Placeholder, box.Note, x+w/2, y, h)
		case plan.RegionFooter:
			r.writeText(buf, x+w, y+h*0.8, r.theme.Footer, "end", fmt.Sprint(p.Slide.Number))
		}
	}
}

// writeLabel outlines a text region and tags it with its kind.
func (r renderer) writeLabel(buf *bytes.Buffer, kind plan.RegionKind, x, y, w, h float64) {
	if !r.labels {
		return
	}
	fmt.Fprintf(buf, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#C8C8C8" stroke-dasharray="4 3"/>`+"\n",
		x, y, w, h)
	fmt.Fprintf(buf, `<text x="%.1f" y="%.1f" font-size="8" fill="#969696">%s</text>`+"\n",
		x+3, y+10, strings.ToUpper(string(kind)))
}

func (r renderer) writeBody(buf *bytes.Buffer, items []deck.ContentItem, x, y, h float64) {
	cursor := y
	bottom := y + h
	for _, item := range items {
		style := r.theme.ItemStyle(item.Kind)
		lh := float64(style.SizePt) * ptToPx * lineHeight
		if cursor+lh > bottom {
			break
		}
		cursor += lh

		indent := x
		spans := deck.SplitSpans(item.Text)
		if item.Kind == deck.KindBullet {
			indent += 16
			spans = append([]deck.Span{{Text: "- "}}, spans...)
		}
		r.writeSpanText(buf, indent, cursor, style, spans)
	}
}

func (r renderer) writePlaceholder(buf *bytes.Buffer, text string, note plan.TextStyle, cx, y, h float64) {
	lh := float64(note.SizePt) * ptToPx * lineHeight
	cursor := y + lh
	bottom := y + h
	for _, line := range strings.Split(text, "\n") {
		if cursor > bottom {
			break
		}
		if line != "" {
			r.writeText(buf, cx, cursor, note, "middle", line)
		}
		cursor += lh
	}
}

// writeSpanText emits one text element with a tspan per bold run.
func (r renderer) writeSpanText(buf *bytes.Buffer, x, y float64, style plan.TextStyle, spans []deck.Span) {
	fmt.Fprintf(buf, `<text x="%.1f" y="%.1f" font-size="%.1f" fill="#%s"%s>`,
		x, y, float64(style.SizePt)*ptToPx, style.Color, styleAttrs(style))
	for _, span := range spans {
		if span.Bold && !style.Bold {
			fmt.Fprintf(buf, `<tspan font-weight="bold">%s</tspan>`, escape(span.Text))
		} else {
			buf.WriteString(escape(span.Text))
		}
	}
	buf.WriteString("</text>\n")
}

func (r renderer) writeText(buf *bytes.Buffer, x, y float64, style plan.TextStyle, anchor, s string) {
	fmt.Fprintf(buf, `<text x="%.1f" y="%.1f" font-size="%.1f" fill="#%s"%s text-anchor="%s">%s</text>`+"\n",
		x, y, float64(style.SizePt)*ptToPx, style.Color, styleAttrs(style), anchor, escape(s))
}

func styleAttrs(style plan.TextStyle) string {
	var b strings.Builder
	if style.Bold {
		b.WriteString(` font-weight="bold"`)
	}
	if style.Italic {
		b.WriteString(` font-style="italic"`)
	}
	return b.String()
}

func escape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
