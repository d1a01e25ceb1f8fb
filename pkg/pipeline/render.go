package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/deck"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/errors"
	pkgio "github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/io"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/observability"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/plan"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/render/pptx"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/render/text"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/render/wire"
)

// Render produces artifact bytes for a planned deck in the requested format.
func (r *Runner) Render(ctx context.Context, d deck.Deck, plans []plan.LayoutPlan, opts Options) ([]byte, error) {
	r.applyLogger(&opts)
	opts.SetRenderDefaults()
	if err := ValidateFormat(opts.Format); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Format)

	start := time.Now()
	data, err := renderArtifact(d, plans, opts)
	hooks.OnRenderComplete(ctx, opts.Format, len(data), time.Since(start), err)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "render %s", opts.Format)
	}

	return data, nil
}

// renderArtifact dispatches to the sink for the requested format.
func renderArtifact(d deck.Deck, plans []plan.LayoutPlan, opts Options) ([]byte, error) {
	switch opts.Format {
	case FormatPPTX:
		return pptx.Render(d, plans, buildPPTXOptions(opts)...)
	case FormatJSON:
		var buf bytes.Buffer
		doc := pkgio.PlanDocument{Meta: d.Meta, Plans: plans}
		if err := pkgio.WritePlans(doc, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatText:
		return text.Render(d, plans), nil
	case FormatSVG:
		return wire.RenderDeckSVG(d, plans), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", opts.Format)
	}
}

// buildPPTXOptions builds PPTX sink options from pipeline options.
func buildPPTXOptions(opts Options) []pptx.Option {
	var pptxOpts []pptx.Option
	if opts.Author != "" {
		pptxOpts = append(pptxOpts, pptx.WithAuthor(opts.Author))
	}
	return pptxOpts
}
