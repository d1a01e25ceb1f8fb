// Package cache provides the artifact cache behind the generate pipeline.
//
// Rendering a deck is deterministic: the same markdown, tables, and render
// options always produce the same artifact bytes. The cache exploits that
// with content-addressed keys, so repeated generate runs skip the render
// stage entirely.
//
// [FileCache] stores entries under the user cache directory for CLI usage;
// [NullCache] disables caching (--no-cache). Keys come from a [Keyer] so
// embedding contexts can namespace them (see [ScopedKeyer]).
package cache

import (
	"context"
	"time"
)

// TTLArtifact bounds rendered artifact entries. Keys are content addressed,
// so a TTL can never cause stale hits; it only limits how long unused
// entries linger on disk.
const TTLArtifact = 30 * 24 * time.Hour

// Cache stores rendered artifacts and intermediate pipeline products.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means the entry never expires;
	// content-addressed keys make stale hits impossible anyway.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Keyer derives cache keys for the pipeline stages.
type Keyer interface {
	// DeckKey keys a parsed deck by its markdown source bytes.
	DeckKey(source []byte) string

	// PlanKey keys a layout plan set by the deck and tables that produced it.
	PlanKey(deckHash, tablesHash string) string

	// ArtifactKey keys a rendered artifact by its plan inputs and the render
	// options that shape the output bytes.
	ArtifactKey(planHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render options that change artifact bytes.
// Every field participates in the key hash.
type ArtifactKeyOpts struct {
	Format         string `json:"format"`
	Author         string `json:"author,omitempty"`
	NoPlaceholders bool   `json:"no_placeholders,omitempty"`
}

// DefaultKeyer derives keys by hashing the identifying parts.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// DeckKey generates a key for a parsed deck.
func (k *DefaultKeyer) DeckKey(source []byte) string {
	return "deck:" + Hash(source)
}

// PlanKey generates a key for a plan set.
func (k *DefaultKeyer) PlanKey(deckHash, tablesHash string) string {
	return hashKey("plan", deckHash, tablesHash)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", planHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
