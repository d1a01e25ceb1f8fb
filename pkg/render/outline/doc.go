// Package outline renders a deck map: the planned slides as a Graphviz
// diagram.
//
// # Overview
//
// The deck map shows one box per slide, filled by layout template, with
// edges chaining presentation order. It is a planning aid: one glance shows
// where the diagram and screenshot slides fall in the deck.
//
// # Usage
//
// Convert planned slides to DOT, then render in-process:
//
//	dot := outline.ToDOT(d, plans)
//	svg, err := outline.RenderSVG(ctx, dot)
//
// For PNG output:
//
//	png, err := outline.RenderPNG(ctx, dot)
//
// # Options
//
//   - [WithClusters]: group slides of the same template into labeled
//     clusters.
//   - [WithWrap]: change the node label wrap width.
//
// # DOT Format
//
// [ToDOT] produces plain Graphviz DOT source that can be rendered via
// [RenderSVG] or [RenderPNG], saved for external Graphviz tools, or
// customized before rendering. Layout is top-to-bottom (rankdir=TB) with
// rounded box nodes.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG and
// PNG rendering; no external Graphviz installation is required.
package outline
