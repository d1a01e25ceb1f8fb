package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/deck"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/plan"
)

// PlanDocument bundles the deck metadata with one layout plan per slide.
// Each plan embeds its slide, so the document alone is enough to render.
type PlanDocument struct {
	Meta  deck.Meta         `json:"meta"`
	Plans []plan.LayoutPlan `json:"plans"`
}

// Deck reassembles the deck model from the document: the stored metadata
// plus the slide embedded in each plan, in document order. Parse warnings
// are not part of the document and come back empty.
func (doc PlanDocument) Deck() deck.Deck {
	d := deck.Deck{Meta: doc.Meta}
	for _, p := range doc.Plans {
		d.Slides = append(d.Slides, p.Slide)
	}
	return d
}

// WriteDeck encodes a deck as pretty-printed JSON and writes it to w.
// The output can be re-imported with [ReadDeck] for round-trip processing.
func WriteDeck(d deck.Deck, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode deck: %w", err)
	}
	return nil
}

// WriteDeckFile writes a deck to a JSON file at path.
// This is a convenience wrapper around [WriteDeck] for file-based output.
func WriteDeckFile(d deck.Deck, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteDeck(d, f)
}

// WritePlans encodes a plan document as pretty-printed JSON and writes it
// to w. The output can be re-imported with [ReadPlans].
func WritePlans(doc PlanDocument, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode plans: %w", err)
	}
	return nil
}

// WritePlanFile writes a plan document to a JSON file at path.
// This is a convenience wrapper around [WritePlans] for file-based output.
func WritePlanFile(doc PlanDocument, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WritePlans(doc, f)
}
