// Package render groups the output sinks that turn a planned deck into
// artifacts.
//
// # Overview
//
// Every sink consumes the same inputs, a [deck.Deck] and its layout plans,
// and produces one artifact format:
//
//   - [pptx]: PowerPoint export (OOXML package)
//   - [wire]: per-slide wireframe SVGs for the preview server
//   - [text]: plain-text rendering for terminals and diffs
//   - [outline]: deck structure maps via Graphviz (DOT, SVG, PNG)
//
// Sinks never mutate their inputs and never consult the planner tables; the
// plan carries everything they need, so rendering the same plan twice yields
// the same artifact.
//
// # PPTX Export
//
// The [pptx] subpackage writes the presentation ZIP directly:
//
//	data, err := pptx.Render(d, plans, pptx.WithAuthor("Jane Doe"))
//
// # Wireframes
//
// The [wire] subpackage renders one SVG per layout plan. The preview server
// serves these as slide thumbnails:
//
//	svg := wire.RenderSVG(plans[0])
//
// # Deck Maps
//
// The [outline] subpackage renders the deck's slide flow as a directed
// graph. DOT generation is pure; SVG and PNG rasterization run Graphviz
// in-process:
//
//	dot := outline.ToDOT(d, plans, outline.WithClusters())
//	svg, err := outline.RenderSVG(ctx, dot)
//
// [pptx]: github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/render/pptx
// [wire]: github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/render/wire
// [text]: github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/render/text
// [outline]: github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/render/outline
package render
