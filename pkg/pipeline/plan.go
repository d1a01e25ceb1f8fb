package pipeline

import (
	"context"
	"time"

	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/deck"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/observability"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/plan"
)

// Plan chooses a layout template and positions regions for every slide.
func (r *Runner) Plan(ctx context.Context, d deck.Deck, opts Options) ([]plan.LayoutPlan, error) {
	r.applyLogger(&opts)
	opts.SetRenderDefaults()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, err := planner(opts)
	if err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnPlanStart(ctx, len(d.Slides))

	start := time.Now()
	plans := p.PlanDeck(d)
	hooks.OnPlanComplete(ctx, time.Since(start), nil)

	return plans, nil
}

// planner builds the slide planner for a run. Table overrides load first;
// NoPlaceholders then zeroes the tables, and zero tables plan every slide
// as full-text.
func planner(opts Options) (*plan.Planner, error) {
	p := plan.NewPlanner()
	if opts.TablesPath != "" {
		tables, err := plan.LoadTables(opts.TablesPath)
		if err != nil {
			return nil, err
		}
		p.Tables = tables
	}
	if opts.NoPlaceholders {
		p.Tables = plan.Tables{}
	}
	return p, nil
}
