package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/deck"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/plan"
)

var knownTemplates = map[plan.Template]bool{
	plan.TemplateDiagram:   true,
	plan.TemplateSplitShot: true,
	plan.TemplateFullText:  true,
}

// ReadDeck decodes a JSON deck from r.
//
// The input must be the format written by [WriteDeck]: a "meta" object, a
// "slides" array, and an optional "warnings" array. Slide numbers are taken
// as-is; like the parser, ReadDeck never validates contiguity or
// uniqueness.
//
// The returned deck is independent of r and can be used freely after
// ReadDeck returns. ReadDeck does not close r.
func ReadDeck(r io.Reader) (deck.Deck, error) {
	var d deck.Deck
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return deck.Deck{}, fmt.Errorf("decode deck: %w", err)
	}
	return d, nil
}

// ReadDeckFile reads a JSON deck file at path.
//
// ReadDeckFile opens the file, decodes it using [ReadDeck], and closes the
// file. Errors wrap the underlying cause with the file path for context.
func ReadDeckFile(path string) (deck.Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return deck.Deck{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadDeck(f)
}

// ReadPlans decodes a JSON plan document from r.
//
// The input must be the format written by [WritePlans]. Every plan's
// template must name one of the known layouts (diagram, split-screenshot,
// full-text); anything else is a structural error, since a renderer has no
// geometry for it.
//
// ReadPlans does not close r.
func ReadPlans(r io.Reader) (PlanDocument, error) {
	var doc PlanDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return PlanDocument{}, fmt.Errorf("decode plans: %w", err)
	}

	for i, p := range doc.Plans {
		if !knownTemplates[p.Template] {
			return PlanDocument{}, fmt.Errorf("plan %d (slide %d): unknown template %q", i, p.Slide.Number, p.Template)
		}
	}

	return doc, nil
}

// ReadPlanFile reads a JSON plan document file at path.
//
// ReadPlanFile opens the file, decodes it using [ReadPlans], and closes the
// file. Errors wrap the underlying cause with the file path for context.
func ReadPlanFile(path string) (PlanDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return PlanDocument{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadPlans(f)
}
