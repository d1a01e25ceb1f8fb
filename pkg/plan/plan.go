// Package plan decides which layout template each slide receives and
// produces the positioned regions a presentation sink materializes.
//
// Template selection is driven by injected [Tables] (slide-number sets, a
// keyword list, and canned placeholder instruction strings) rather than
// embedded constants, so the decision logic is independently testable and
// the tables swappable per deck. [DefaultTables] carries the stock values;
// [LoadTables] overrides them from a TOML file.
//
// All geometry lives in a fixed 10 x 7.5 inch page space. Planning is a
// pure function of slide number and title: the same slide and tables always
// yield the same plan, and every slide resolves to exactly one template.
package plan

import "github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/deck"

// Template tags the three layout shapes a slide can receive.
type Template string

const (
	// TemplateDiagram reserves a bordered diagram placeholder above a
	// shortened content region.
	TemplateDiagram Template = "diagram"
	// TemplateSplitShot puts content on the left and a bordered screenshot
	// placeholder on the right.
	TemplateSplitShot Template = "split-screenshot"
	// TemplateFullText gives the whole content region to the slide body.
	TemplateFullText Template = "full-text"
)

// RegionKind names the role of one positioned rectangle.
type RegionKind string

const (
	RegionTitle       RegionKind = "title"
	RegionRule        RegionKind = "rule"
	RegionBody        RegionKind = "body"
	RegionPlaceholder RegionKind = "placeholder"
	RegionFooter      RegionKind = "footer"
)

// Region is a positioned rectangle in page space, in inches.
type Region struct {
	Kind RegionKind `json:"kind"`
	X    float64    `json:"x"`
	Y    float64    `json:"y"`
	W    float64    `json:"w"`
	H    float64    `json:"h"`
}

// Page dimensions in inches.
const (
	PageWidth  = 10.0
	PageHeight = 7.5
)

// Shared band geometry, identical across templates.
const (
	titleLeft   = 0.5
	titleTop    = 0.2
	titleWidth  = 9.0
	titleHeight = 0.9

	ruleTop    = 1.0
	ruleHeight = 0.05

	contentLeft   = 0.7
	contentTop    = 1.3
	contentWidth  = 8.6
	contentHeight = 5.0

	footerLeft   = 9.2
	footerTop    = 7.0
	footerWidth  = 0.5
	footerHeight = 0.3
)

// Template-specific geometry.
const (
	diagramLeft       = contentLeft + 0.5
	diagramWidth      = contentWidth - 1.0
	diagramHeight     = 3.5
	diagramBodyTop    = contentTop + 3.8
	diagramBodyHeight = 2.8

	splitBodyWidth   = 4.0
	screenshotLeft   = 5.3
	screenshotTop    = contentTop + 0.2
	screenshotWidth  = 4.0
	screenshotHeight = 3.5
)

// LayoutPlan is the planner's output for one slide: the template choice,
// the positioned regions, and the placeholder instruction text (empty for
// the full-text template). The slide passes through unmodified.
type LayoutPlan struct {
	Slide       deck.Slide `json:"slide"`
	Template    Template   `json:"template"`
	Regions     []Region   `json:"regions"`
	Placeholder string     `json:"placeholder,omitempty"`
}

// Region returns the first region of the given kind.
func (p LayoutPlan) Region(kind RegionKind) (Region, bool) {
	for _, r := range p.Regions {
		if r.Kind == kind {
			return r, true
		}
	}
	return Region{}, false
}

// sharedRegions returns the bands every template carries.
func sharedRegions() []Region {
	return []Region{
		{Kind: RegionTitle, X: titleLeft, Y: titleTop, W: titleWidth, H: titleHeight},
		{Kind: RegionRule, X: titleLeft, Y: ruleTop, W: titleWidth, H: ruleHeight},
		{Kind: RegionFooter, X: footerLeft, Y: footerTop, W: footerWidth, H: footerHeight},
	}
}

func diagramRegions() []Region {
	return append(sharedRegions(),
		Region{Kind: RegionPlaceholder, X: diagramLeft, Y: contentTop, W: diagramWidth, H: diagramHeight},
		Region{Kind: RegionBody, X: contentLeft, Y: diagramBodyTop, W: contentWidth, H: diagramBodyHeight},
	)
}

func splitShotRegions() []Region {
	return append(sharedRegions(),
		Region{Kind: RegionBody, X: contentLeft, Y: contentTop, W: splitBodyWidth, H: contentHeight},
		Region{Kind: RegionPlaceholder, X: screenshotLeft, Y: screenshotTop, W: screenshotWidth, H: screenshotHeight},
	)
}

func fullTextRegions() []Region {
	return append(sharedRegions(),
		Region{Kind: RegionBody, X: contentLeft, Y: contentTop, W: contentWidth, H: contentHeight},
	)
}
