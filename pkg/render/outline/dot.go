package outline

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/deck"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/errors"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/plan"
)

// Option configures deck map generation.
type Option func(*renderer)

type renderer struct {
	clusters  bool
	wrapWidth int
	theme     plan.Theme
}

// WithClusters groups slides of the same template into labeled clusters.
func WithClusters() Option { return func(r *renderer) { r.clusters = true } }

// WithWrap sets the node label wrap width in characters. Zero or negative
// disables wrapping.
func WithWrap(w int) Option { return func(r *renderer) { r.wrapWidth = w } }

func newRenderer(opts ...Option) renderer {
	r := renderer{wrapWidth: 18, theme: plan.DefaultTheme()}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// ToDOT converts planned slides to Graphviz DOT format: one node per slide
// labeled with its number and title, filled by template, edges chaining
// presentation order. The resulting DOT can be rendered with [RenderSVG] or
// [RenderPNG].
//
// Node IDs follow deck position (s1, s2, ...) so duplicate slide numbers
// stay distinct nodes.
func ToDOT(d deck.Deck, plans []plan.LayoutPlan, opts ...Option) []byte {
	r := newRenderer(opts...)

	var buf bytes.Buffer
	buf.WriteString("digraph deck {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if title := d.DisplayTitle(); title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", title)
		buf.WriteString("  labelloc=t;\n")
	}
	fmt.Fprintf(&buf, "  fontcolor=\"#%s\";\n", r.theme.Title.Color)
	fmt.Fprintf(&buf, "  node [shape=box, style=\"rounded,filled\", color=\"#C8C8C8\", fontcolor=\"#%s\", fontsize=12, margin=\"0.2,0.1\"];\n", r.theme.Title.Color)
	fmt.Fprintf(&buf, "  edge [color=\"#%s\"];\n", r.theme.Footer.Color)
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	if r.clusters {
		r.writeClusters(&buf, plans)
	} else {
		for i, p := range plans {
			r.writeNode(&buf, "  ", nodeID(i), p)
		}
	}

	buf.WriteString("\n")
	for i := 1; i < len(plans); i++ {
		fmt.Fprintf(&buf, "  %q -> %q;\n", nodeID(i-1), nodeID(i))
	}

	buf.WriteString("}\n")
	return buf.Bytes()
}

func (r renderer) writeClusters(buf *bytes.Buffer, plans []plan.LayoutPlan) {
	for _, tmpl := range []plan.Template{plan.TemplateDiagram, plan.TemplateSplitShot, plan.TemplateFullText} {
		var members []int
		for i, p := range plans {
			if p.Template == tmpl {
				members = append(members, i)
			}
		}
		if len(members) == 0 {
			continue
		}

		fmt.Fprintf(buf, "  subgraph %q {\n", "cluster_"+strings.ReplaceAll(string(tmpl), "-", "_"))
		fmt.Fprintf(buf, "    label=%q;\n", string(tmpl))
		buf.WriteString("    color=\"#C8C8C8\";\n")
		for _, i := range members {
			r.writeNode(buf, "    ", nodeID(i), plans[i])
		}
		buf.WriteString("  }\n")
	}
}

func (r renderer) writeNode(buf *bytes.Buffer, indent, id string, p plan.LayoutPlan) {
	fmt.Fprintf(buf, "%s%q [label=%q, fillcolor=%q];\n", indent, id, r.nodeLabel(p.Slide), r.fill(p.Template))
}

func (r renderer) nodeLabel(s deck.Slide) string {
	title := deck.PlainText(s.Title)
	if title == "" {
		return strconv.Itoa(s.Number)
	}
	return wrap(fmt.Sprintf("%d. %s", s.Number, title), r.wrapWidth)
}

func (r renderer) fill(tmpl plan.Template) string {
	switch tmpl {
	case plan.TemplateDiagram:
		return "#" + r.theme.DiagramBox.Fill
	case plan.TemplateSplitShot:
		return "#" + r.theme.ScreenshotBox.Fill
	default:
		return "#" + r.theme.Background
	}
}

func nodeID(i int) string {
	return fmt.Sprintf("s%d", i+1)
}

// wrap breaks s into lines of at most width characters at word boundaries.
// Words longer than width stay on their own line.
func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}

	var lines []string
	line := ""
	for _, word := range strings.Fields(s) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// RenderSVG renders a DOT deck map to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot []byte) ([]byte, error) {
	out, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders a DOT deck map to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot []byte) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot []byte, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(dot)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "render %s", format)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz svg element to a clean one with a
// zero-origin viewBox and explicit pixel dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
