package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/cache"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/errors"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/observability"
)

// Runner encapsulates pipeline execution with artifact caching.
// CLI, preview server, and TUI all use this to avoid duplicating
// caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete parse → plan → render pipeline with caching.
//
// Parsing and planning always run: they are cheap, and the preview surfaces
// need the deck and plans even on a cache hit. Only the render stage is
// skipped when the artifact cache already holds the output.
func (r *Runner) Execute(ctx context.Context, src []byte, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		DeckHash: cache.Hash(src),
		Format:   opts.Format,
		RunID:    uuid.NewString(),
	}

	// Stage 1: Parse
	parseStart := time.Now()
	d, err := r.Parse(ctx, src, opts)
	if err != nil {
		return nil, err
	}
	result.Deck = d
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.SlideCount = len(d.Slides)
	result.Stats.ItemCount = d.ItemCount()

	r.Logger.Info("parsed deck",
		"run", result.RunID,
		"source", opts.Source,
		"slides", len(d.Slides),
		"warnings", len(d.Warnings),
		"duration", result.Stats.ParseTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Plan
	planStart := time.Now()
	plans, err := r.Plan(ctx, d, opts)
	if err != nil {
		return nil, err
	}
	result.Plans = plans
	result.Stats.PlanTime = time.Since(planStart)

	r.Logger.Info("planned layouts",
		"run", result.RunID,
		"slides", len(plans),
		"duration", result.Stats.PlanTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Try the artifact cache before rendering (unless refresh requested).
	key, err := r.artifactKey(src, opts)
	if err != nil {
		return nil, err
	}
	hooks := observability.Cache()
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			hooks.OnCacheHit(ctx, "artifact")
			result.Artifact = data
			result.CacheHit = true

			r.Logger.Info("artifact cache hit",
				"run", result.RunID,
				"format", opts.Format,
				"bytes", len(data))
			return result, nil
		}
	}
	hooks.OnCacheMiss(ctx, "artifact")

	// Stage 3: Render
	renderStart := time.Now()
	artifact, err := r.Render(ctx, d, plans, opts)
	if err != nil {
		return nil, err
	}
	result.Artifact = artifact
	result.Stats.RenderTime = time.Since(renderStart)

	if err := r.Cache.Set(ctx, key, artifact, cache.TTLArtifact); err == nil {
		hooks.OnCacheSet(ctx, "artifact", len(artifact))
	}

	r.Logger.Info("rendered artifact",
		"run", result.RunID,
		"format", opts.Format,
		"bytes", len(artifact),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// artifactKey derives the cache key for the rendered artifact. The key
// chains the source hash through the plan inputs, so edits to the markdown,
// the planner tables, or any byte-shaping option all miss the cache.
func (r *Runner) artifactKey(src []byte, opts Options) (string, error) {
	deckKey := r.Keyer.DeckKey(src)

	tablesHash := "default"
	if opts.TablesPath != "" {
		data, err := os.ReadFile(opts.TablesPath)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "read tables %s", opts.TablesPath)
		}
		tablesHash = cache.Hash(data)
	}
	planKey := r.Keyer.PlanKey(deckKey, tablesHash)

	return r.Keyer.ArtifactKey(planKey, opts.ArtifactKeyOpts()), nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
