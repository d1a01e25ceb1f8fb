// Package io provides JSON import and export for decks and layout plans.
//
// # Overview
//
// This package serializes the outputs of the parse and plan stages so they
// can be chained across separate command invocations:
//
//   - parse writes a deck file; plan reads it
//   - plan writes a plan file; render reads it
//   - external tools can produce or consume either format
//
// # Deck Format (*.deck.json)
//
// A deck file is the parsed document: metadata, slides, and warnings.
//
//	{
//	  "meta": {"title": "My Deck", "author": "..."},
//	  "slides": [
//	    {
//	      "number": 2,
//	      "title": "**Architecture** Overview",
//	      "content": [
//	        {"kind": "section", "text": "Pipeline"},
//	        {"kind": "bullet", "text": "**four** stages"}
//	      ]
//	    }
//	  ],
//	  "warnings": [{"line": 12, "message": "unterminated code fence"}]
//	}
//
// Titles and bullet text keep their ** emphasis markers; splitting into
// spans happens at render time.
//
// # Plan Format (*.plan.json)
//
// A plan file bundles the deck metadata with one layout plan per slide, in
// presentation order. Each plan embeds its slide, so a plan file alone is
// enough to render.
//
//	{
//	  "meta": {"title": "My Deck"},
//	  "plans": [
//	    {
//	      "slide": {"number": 2, "title": "...", "content": [...]},
//	      "template": "diagram",
//	      "regions": [{"kind": "title", "x": 0.5, "y": 0.2, "w": 9, "h": 0.9}],
//	      "placeholder": "[ARCHITECTURE DIAGRAM PLACEHOLDER]..."
//	    }
//	  ]
//	}
//
// # Import and Export
//
// Use [ReadDeck] / [ReadPlans] to decode from any io.Reader, or
// [ReadDeckFile] / [ReadPlanFile] for file paths. [WriteDeck] / [WritePlans]
// encode to any io.Writer; [WriteDeckFile] / [WritePlanFile] write files.
// Output is pretty-printed and stable, so artifacts diff cleanly.
//
// Reading validates only what rendering needs: plan templates must name one
// of the known layouts. Slide numbers pass through unvalidated, matching
// the parser's contract.
package io
