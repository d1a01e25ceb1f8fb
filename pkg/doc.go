// Package pkg provides the core libraries for Slidesmith deck generation.
//
// # Overview
//
// Slidesmith turns structured outline markdown into presentation decks. The
// pkg directory is organized into four main areas:
//
//  1. [deck] / [plan] - Domain logic (parsing, layout planning)
//  2. [render] - Output sinks (PPTX, wireframe SVG, text, deck map)
//  3. [pipeline] / [cache] - Orchestration and artifact caching
//  4. [io] / [source] - Interchange formats and source discovery
//
// # Architecture
//
// The typical data flow through Slidesmith:
//
//	Outline Markdown
//	       ↓
//	   [deck] package (parse slides + metadata)
//	       ↓
//	   [plan] package (template decision + placeholders)
//	       ↓
//	   [render] package (sinks)
//	       ↓
//	PPTX/SVG/text/JSON output
//
// # Quick Start
//
// Parse an outline and render a PowerPoint deck:
//
//	import (
//	    "github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/deck"
//	    "github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/plan"
//	    "github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/render/pptx"
//	)
//
//	// 1. Parse the outline
//	d := deck.Parse(src)
//
//	// 2. Plan per-slide layouts
//	plans := plan.NewPlanner().PlanDeck(d)
//
//	// 3. Render to PPTX
//	data, err := pptx.Render(d, plans)
//
// # Main Packages
//
// ## Domain Logic
//
// [deck] - The slide deck model and the markdown parser that produces it.
// Parsing is best-effort and never fails; malformed input degrades to a
// partial deck with diagnostics in Deck.Warnings.
//
// [plan] - The layout planner. Assigns each slide one of three templates
// (diagram, split-screenshot, full-text) driven by [plan.Tables], which can
// be overridden per deck from a TOML file.
//
// ## Rendering
//
// [render/pptx] - PowerPoint export. Writes the OOXML presentation package
// (a ZIP of XML parts) directly, with no external office dependency.
//
// [render/wire] - Per-slide wireframe SVGs used by the preview server.
//
// [render/text] - Plain-text rendering for terminals and diffs.
//
// [render/outline] - Deck structure maps as Graphviz DOT, SVG, or PNG.
//
// ## Orchestration
//
// [pipeline] - The parse → plan → render pipeline shared by all CLI commands
// and the preview server. Caches rendered artifacts by content hash so
// repeated generation of an unchanged deck skips the render stage.
//
// [cache] - Content-addressed file cache with TTL expiry backing the
// pipeline, plus the key derivation scheme.
//
// ## Interchange and Sources
//
// [io] - JSON interchange for parsed decks and plan documents, so parse,
// plan, and render can run as separate invocations.
//
// [source/local] - Resolves deck sources: a markdown file path, or a
// directory to discover one in.
//
// ## Supporting Packages
//
// [errors] - Coded errors shared across the module, plus input validation.
//
// [observability] - Optional hooks for pipeline and cache instrumentation.
//
// [buildinfo] - Version metadata stamped at build time.
//
// # Common Workflows
//
// Load planner tables from TOML and plan with them:
//
//	tables, _ := plan.LoadTables("tables.toml")
//	plans := (&plan.Planner{Tables: tables}).PlanDeck(d)
//
// Round-trip a deck through the JSON interchange:
//
//	_ = io.WriteDeckFile(d, "talk.deck.json")
//	d2, _ := io.ReadDeckFile("talk.deck.json")
//
// Render a deck map:
//
//	dot := outline.ToDOT(d, plans)
//	svg, err := outline.RenderSVG(ctx, dot)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/deck/...      # Specific package
//	go test -run Example        # Examples only
//
// [deck]: https://pkg.go.dev/github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/deck
// [plan]: https://pkg.go.dev/github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/plan
// [render]: https://pkg.go.dev/github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/render
// [render/pptx]: https://pkg.go.dev/github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/render/pptx
// [render/wire]: https://pkg.go.dev/github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/render/wire
// [render/text]: https://pkg.go.dev/github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/render/text
// [render/outline]: https://pkg.go.dev/github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/render/outline
// [pipeline]: https://pkg.go.dev/github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/cache
// [io]: https://pkg.go.dev/github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/io
// [source]: https://pkg.go.dev/github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/source
// [source/local]: https://pkg.go.dev/github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/source/local
// [errors]: https://pkg.go.dev/github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/errors
// [observability]: https://pkg.go.dev/github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/buildinfo
package pkg
