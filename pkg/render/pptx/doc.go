// Package pptx writes layout plans as a PowerPoint (OOXML) package.
//
// # Overview
//
// This is the canonical durable sink: it materializes a deck and its layout
// plans into a self-contained .pptx file that PowerPoint, Keynote, and
// LibreOffice open without repair prompts. The package is assembled from
// scratch as a zip archive of hand-built XML parts, so there is no external
// tool or template dependency.
//
// # Package Parts
//
// The writer emits the minimal part set a conforming presentation needs:
//
//   - [Content_Types].xml and the package relationships
//   - docProps/core.xml and app.xml (deck metadata)
//   - ppt/presentation.xml with a 10 x 7.5 in slide size
//   - one slide master, one blank layout, one theme
//   - ppt/slides/slideN.xml per layout plan, in presentation order
//
// # Slide Content
//
// Each slide renders its plan's regions: a title text box (emphasis spans
// honored), the title underline bar, the body text box with one paragraph
// per content item styled by kind, the bordered placeholder box with its
// literal instruction text, and the slide-number footer. All geometry comes
// from the plan's regions, converted to EMU (914400 per inch); all colors
// and font sizes come from the fixed theme.
//
// # Usage
//
//	var buf bytes.Buffer
//	err := pptx.Write(&buf, d, plans,
//	    pptx.WithAuthor("Jane Doe"),
//	    pptx.WithCreated(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)),
//	)
//
// [Render] is the []byte convenience form. WithCreated pins the docProps
// timestamps, which keeps output byte-identical across runs for caching and
// tests; without it the current time is stamped.
package pptx
