package plan

import "github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/deck"

// Planner turns slides into layout plans using its injected tables.
// The zero Planner works and plans every slide as full-text; use
// [NewPlanner] for the stock configuration.
type Planner struct {
	Tables Tables
}

// NewPlanner returns a Planner carrying [DefaultTables].
func NewPlanner() *Planner {
	return &Planner{Tables: DefaultTables()}
}

// Plan decides the template for one slide and positions its regions.
// The decision reads only the slide number and title, first match wins:
//
//  1. number in DiagramSlides → diagram
//  2. title matches a keyword and number in ScreenshotSlides → split-screenshot
//  3. otherwise → full-text
//
// Plan is a pure function of (number, title) for fixed tables: the same
// slide always yields the same plan, and every slide resolves to exactly
// one template. The slide's content passes through unmodified.
func (p *Planner) Plan(slide deck.Slide) LayoutPlan {
	switch {
	case p.Tables.DiagramSlides[slide.Number]:
		return LayoutPlan{
			Slide:       slide,
			Template:    TemplateDiagram,
			Regions:     diagramRegions(),
			Placeholder: p.Tables.DiagramInstruction(slide.Number, slide.Title),
		}
	case p.Tables.KeywordMatch(slide.Title) && p.Tables.ScreenshotSlides[slide.Number]:
		return LayoutPlan{
			Slide:       slide,
			Template:    TemplateSplitShot,
			Regions:     splitShotRegions(),
			Placeholder: p.Tables.ScreenshotInstruction(slide.Number, slide.Title),
		}
	default:
		return LayoutPlan{
			Slide:    slide,
			Template: TemplateFullText,
			Regions:  fullTextRegions(),
		}
	}
}

// PlanDeck maps [Planner.Plan] over every slide in presentation order.
// An empty deck yields an empty plan list.
func (p *Planner) PlanDeck(d deck.Deck) []LayoutPlan {
	plans := make([]LayoutPlan, 0, len(d.Slides))
	for _, slide := range d.Slides {
		plans = append(plans, p.Plan(slide))
	}
	return plans
}
