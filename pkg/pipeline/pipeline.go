// Package pipeline provides the core deck generation pipeline for Slidesmith.
//
// This package implements the complete parse → plan → render pipeline that
// can be used by CLI, preview server, and TUI components. By centralizing
// this logic, we ensure consistent behavior across all entry points and
// avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Turn constrained markdown into a slide model (pkg/deck)
//  2. Plan: Choose a layout template and regions per slide (pkg/plan)
//  3. Render: Produce artifact bytes in the requested format (pkg/render)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Source: "slides.md",
//	    Format: pipeline.FormatPPTX,
//	}
//	result, err := runner.Execute(ctx, src, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	artifact := result.Artifact
//
// Run individual stages:
//
//	// Parse only
//	d, err := runner.Parse(ctx, src, opts)
//
//	// Plan an existing deck
//	plans, err := runner.Plan(ctx, d, opts)
//
//	// Render existing plans
//	artifact, err := runner.Render(ctx, d, plans, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/cache"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/deck"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/errors"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/plan"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, Server, and TUI
// =============================================================================

// Format constants for output formats.
const (
	FormatPPTX = "pptx"
	FormatJSON = "json"
	FormatText = "text"
	FormatSVG  = "svg"
)

// DefaultFormat is the default artifact format.
const DefaultFormat = FormatPPTX

// DefaultSource labels markdown that was handed over as bytes rather than
// read from a file.
const DefaultSource = "inline"

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPPTX: true,
	FormatJSON: true,
	FormatText: true,
	FormatSVG:  true,
}

// FormatNames lists the supported formats in stable order for flag help
// and error messages.
func FormatNames() []string {
	return []string{FormatJSON, FormatPPTX, FormatSVG, FormatText}
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the deck generation pipeline.
// This struct supports JSON serialization for preview server requests.
type Options struct {
	// Source labels the markdown origin (path, or "inline") for logs and
	// stage hooks. The source bytes themselves are passed in separately.
	Source string `json:"source,omitempty"`

	// Plan options
	TablesPath     string `json:"tables_path,omitempty"`     // TOML planner table overrides
	NoPlaceholders bool   `json:"no_placeholders,omitempty"` // Plan every slide as full-text
	Refresh        bool   `json:"refresh,omitempty"`         // Bypass the artifact cache

	// Render options
	Format string `json:"format,omitempty"`
	Author string `json:"author,omitempty"` // PPTX document author override

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Deck is the parsed slide model, including parse warnings.
	Deck deck.Deck

	// DeckHash is the content hash of the markdown source.
	DeckHash string

	// Plans holds one layout plan per slide in presentation order.
	Plans []plan.LayoutPlan

	// Artifact contains the rendered output bytes.
	Artifact []byte

	// Format is the artifact format that was rendered.
	Format string

	// RunID uniquely identifies this pipeline run in logs.
	RunID string

	// CacheHit reports whether the artifact came from the cache.
	CacheHit bool

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SlideCount int
	ItemCount  int
	ParseTime  time.Duration
	PlanTime   time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	return errors.ValidateFormat(format, FormatNames()...)
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetRenderDefaults()
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.Source == "" {
		o.Source = DefaultSource
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ArtifactKeyOpts returns cache key options for the artifact. Every option
// that changes the rendered bytes participates in the key.
func (o *Options) ArtifactKeyOpts() cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:         o.Format,
		Author:         o.Author,
		NoPlaceholders: o.NoPlaceholders,
	}
}
