package plan

import "github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/deck"

// Align names horizontal text alignment within a region.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// TextStyle describes one class of text. Colors are 6-digit hex without a
// leading '#' (the form PPTX wants; SVG sinks prepend it). Sizes and
// paragraph spacing are in points.
type TextStyle struct {
	SizePt      int    `json:"size_pt"`
	Color       string `json:"color"`
	Bold        bool   `json:"bold,omitempty"`
	Italic      bool   `json:"italic,omitempty"`
	Align       Align  `json:"align"`
	SpaceBefore int    `json:"space_before,omitempty"`
	SpaceAfter  int    `json:"space_after,omitempty"`
}

// BoxStyle describes a filled, bordered placeholder rectangle and the note
// text inside it.
type BoxStyle struct {
	Fill        string    `json:"fill"`
	BorderColor string    `json:"border_color"`
	BorderPt    int       `json:"border_pt"`
	Note        TextStyle `json:"note"`
}

// Theme is the fixed visual theme shared by every sink. Styling beyond it
// is out of scope, so sinks take a Theme value rather than style options.
type Theme struct {
	Background string `json:"background"`
	RuleFill   string `json:"rule_fill"`

	Title   TextStyle `json:"title"`
	Section TextStyle `json:"section"`
	Bullet  TextStyle `json:"bullet"`
	Text    TextStyle `json:"text"`
	Footer  TextStyle `json:"footer"`

	DiagramBox    BoxStyle `json:"diagram_box"`
	ScreenshotBox BoxStyle `json:"screenshot_box"`
}

// DefaultTheme returns the stock theme.
func DefaultTheme() Theme {
	return Theme{
		Background: "FFFFFF",
		RuleFill:   "003366",
		Title:      TextStyle{SizePt: 28, Color: "003366", Bold: true, Align: AlignLeft},
		Section:    TextStyle{SizePt: 18, Color: "003366", Bold: true, Align: AlignLeft, SpaceAfter: 6},
		Bullet:     TextStyle{SizePt: 14, Color: "000000", Align: AlignLeft, SpaceBefore: 3},
		Text:       TextStyle{SizePt: 12, Color: "646464", Align: AlignLeft, SpaceAfter: 3},
		Footer:     TextStyle{SizePt: 10, Color: "969696", Align: AlignRight},
		DiagramBox: BoxStyle{
			Fill:        "FAFAFA",
			BorderColor: "C8C8C8",
			BorderPt:    2,
			Note:        TextStyle{SizePt: 12, Color: "969696", Italic: true, Align: AlignCenter},
		},
		ScreenshotBox: BoxStyle{
			Fill:        "F5F5F5",
			BorderColor: "C8C8C8",
			BorderPt:    2,
			Note:        TextStyle{SizePt: 12, Color: "808080", Italic: true, Align: AlignCenter},
		},
	}
}

// ItemStyle maps a content item kind to its text style.
func (t Theme) ItemStyle(kind deck.ItemKind) TextStyle {
	switch kind {
	case deck.KindSection:
		return t.Section
	case deck.KindBullet:
		return t.Bullet
	default:
		return t.Text
	}
}

// PlaceholderBox maps a template to its placeholder box style. Full-text
// plans have no placeholder; callers only ask for templates that do.
func (t Theme) PlaceholderBox(tmpl Template) BoxStyle {
	if tmpl == TemplateDiagram {
		return t.DiagramBox
	}
	return t.ScreenshotBox
}
