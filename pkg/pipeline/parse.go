package pipeline

import (
	"context"
	"time"

	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/deck"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/observability"
)

// Parse turns markdown source into a slide model.
//
// Parsing is best effort: malformed constructs degrade to plain text and
// surface as warnings on the returned deck, not as errors. The error return
// is reserved for context cancellation.
func (r *Runner) Parse(ctx context.Context, src []byte, opts Options) (deck.Deck, error) {
	r.applyLogger(&opts)
	opts.SetRenderDefaults()

	if err := ctx.Err(); err != nil {
		return deck.Deck{}, err
	}

	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, opts.Source)

	start := time.Now()
	d := deck.Parse(src)
	hooks.OnParseComplete(ctx, opts.Source, len(d.Slides), time.Since(start), nil)

	for _, w := range d.Warnings {
		opts.Logger.Warn("parse warning",
			"source", opts.Source,
			"line", w.Line,
			"msg", w.Message)
	}
	if len(d.Slides) == 0 {
		opts.Logger.Warn("no slides found", "source", opts.Source)
	}

	return d, nil
}
