package pptx

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/deck"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/plan"
)

// algn maps theme alignment to the PML paragraph alignment attribute.
var algn = map[plan.Align]string{
	plan.AlignLeft:   "l",
	plan.AlignCenter: "ctr",
	plan.AlignRight:  "r",
}

// paragraph is one a:p element: a style applied to emphasis spans.
// Span-level bold is OR-ed onto the style's weight.
type paragraph struct {
	style plan.TextStyle
	spans []deck.Span
}

// textBox collects everything one p:sp shape needs.
type textBox struct {
	id       int
	name     string
	region   plan.Region
	fill     string // solid fill color, empty for none
	border   string // border color, empty for no border
	borderPt int
	paras    []paragraph
}

// slideXML renders one layout plan as a complete slide part.
func slideXML(p plan.LayoutPlan, th plan.Theme) []byte {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	buf.WriteString(`<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">` + "\n")
	buf.WriteString("  <p:cSld>\n")
	fmt.Fprintf(&buf, `    <p:bg><p:bgPr><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:effectLst/></p:bgPr></p:bg>`+"\n", th.Background)
	buf.WriteString("    <p:spTree>\n")
	buf.WriteString("      <p:nvGrpSpPr>\n")
	buf.WriteString(`        <p:cNvPr id="1" name=""/>` + "\n")
	buf.WriteString("        <p:cNvGrpSpPr/>\n")
	buf.WriteString("        <p:nvPr/>\n")
	buf.WriteString("      </p:nvGrpSpPr>\n")
	buf.WriteString("      <p:grpSpPr/>\n")

	// Shape IDs start after the group shape.
	id := 2
	for _, region := range p.Regions {
		writeSP(&buf, shapeFor(region, p, th, id))
		id++
	}

	buf.WriteString("    </p:spTree>\n")
	buf.WriteString("  </p:cSld>\n")
	buf.WriteString("  <p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>\n")
	buf.WriteString("</p:sld>\n")
	return buf.Bytes()
}

// shapeFor builds the shape for one plan region.
func shapeFor(region plan.Region, p plan.LayoutPlan, th plan.Theme, id int) textBox {
	switch region.Kind {
	case plan.RegionTitle:
		return textBox{
			id:     id,
			name:   "Title",
			region: region,
			paras:  []paragraph{{style: th.Title, spans: deck.SplitSpans(p.Slide.Title)}},
		}
	case plan.RegionRule:
		return textBox{id: id, name: "Title Rule", region: region, fill: th.RuleFill}
	case plan.RegionBody:
		return textBox{id: id, name: "Body", region: region, paras: bodyParagraphs(p.Slide.Content, th)}
	case plan.RegionPlaceholder:
		box := th.PlaceholderBox(p.Template)
		name := "Screenshot Placeholder"
		if p.Template == plan.TemplateDiagram {
			name = "Diagram Placeholder"
		}
		return textBox{
			id:       id,
			name:     name,
			region:   region,
			fill:     box.Fill,
			border:   box.BorderColor,
			borderPt: box.BorderPt,
			paras:    placeholderParagraphs(p.Placeholder, box.Note),
		}
	default: // footer
		number := strconv.Itoa(p.Slide.Number)
		return textBox{
			id:     id,
			name:   "Slide Number",
			region: region,
			paras:  []paragraph{{style: th.Footer, spans: []deck.Span{{Text: number}}}},
		}
	}
}

// bodyParagraphs maps content items to styled paragraphs, one per item.
func bodyParagraphs(items []deck.ContentItem, th plan.Theme) []paragraph {
	paras := make([]paragraph, 0, len(items))
	for _, item := range items {
		paras = append(paras, paragraph{
			style: th.ItemStyle(item.Kind),
			spans: deck.SplitSpans(item.Text),
		})
	}
	return paras
}

// placeholderParagraphs renders the instruction text line by line; blank
// lines become empty paragraphs so the vertical rhythm survives.
func placeholderParagraphs(text string, note plan.TextStyle) []paragraph {
	lines := strings.Split(text, "\n")
	paras := make([]paragraph, 0, len(lines))
	for _, line := range lines {
		para := paragraph{style: note}
		if line != "" {
			para.spans = []deck.Span{{Text: line}}
		}
		paras = append(paras, para)
	}
	return paras
}

func writeSP(buf *bytes.Buffer, b textBox) {
	x, y, cx, cy := regionEMU(b.region)

	buf.WriteString("      <p:sp>\n")
	buf.WriteString("        <p:nvSpPr>\n")
	fmt.Fprintf(buf, `          <p:cNvPr id="%d" name="%s"/>`+"\n", b.id, esc(b.name))
	buf.WriteString("          <p:cNvSpPr/>\n")
	buf.WriteString("          <p:nvPr/>\n")
	buf.WriteString("        </p:nvSpPr>\n")
	buf.WriteString("        <p:spPr>\n")
	fmt.Fprintf(buf, `          <a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`+"\n", x, y, cx, cy)
	buf.WriteString(`          <a:prstGeom prst="rect"><a:avLst/></a:prstGeom>` + "\n")
	if b.fill != "" {
		fmt.Fprintf(buf, `          <a:solidFill><a:srgbClr val="%s"/></a:solidFill>`+"\n", b.fill)
	}
	if b.border != "" {
		fmt.Fprintf(buf, `          <a:ln w="%d"><a:solidFill><a:srgbClr val="%s"/></a:solidFill></a:ln>`+"\n", b.borderPt*emuPerPoint, b.border)
	} else {
		buf.WriteString("          <a:ln><a:noFill/></a:ln>\n")
	}
	buf.WriteString("        </p:spPr>\n")
	buf.WriteString("        <p:txBody>\n")
	buf.WriteString(`          <a:bodyPr wrap="square"/>` + "\n")
	buf.WriteString("          <a:lstStyle/>\n")
	if len(b.paras) == 0 {
		buf.WriteString("          <a:p/>\n")
	}
	for _, para := range b.paras {
		writeParagraph(buf, para)
	}
	buf.WriteString("        </p:txBody>\n")
	buf.WriteString("      </p:sp>\n")
}

func writeParagraph(buf *bytes.Buffer, para paragraph) {
	buf.WriteString("          <a:p>\n")
	fmt.Fprintf(buf, `            <a:pPr algn="%s">`, algn[para.style.Align])
	if para.style.SpaceBefore > 0 {
		fmt.Fprintf(buf, `<a:spcBef><a:spcPts val="%d"/></a:spcBef>`, para.style.SpaceBefore*100)
	}
	if para.style.SpaceAfter > 0 {
		fmt.Fprintf(buf, `<a:spcAft><a:spcPts val="%d"/></a:spcAft>`, para.style.SpaceAfter*100)
	}
	buf.WriteString("</a:pPr>\n")
	for _, span := range para.spans {
		writeRun(buf, para.style, span)
	}
	buf.WriteString("          </a:p>\n")
}

func writeRun(buf *bytes.Buffer, style plan.TextStyle, span deck.Span) {
	buf.WriteString("            <a:r>\n")
	fmt.Fprintf(buf, `              <a:rPr lang="en-US" sz="%d"`, style.SizePt*100)
	if style.Bold || span.Bold {
		buf.WriteString(` b="1"`)
	}
	if style.Italic {
		buf.WriteString(` i="1"`)
	}
	fmt.Fprintf(buf, ` dirty="0"><a:solidFill><a:srgbClr val="%s"/></a:solidFill></a:rPr>`+"\n", style.Color)
	fmt.Fprintf(buf, "              <a:t>%s</a:t>\n", esc(span.Text))
	buf.WriteString("            </a:r>\n")
}
