package cache

// ScopedKeyer wraps a Keyer with a prefix so separate contexts sharing one
// cache directory stay isolated, e.g. a preview server handling several
// decks at once.
//
// Example usage:
//
//	// Per-deck keys inside a shared cache
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "deck:talk:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// DeckKey generates a prefixed key for a parsed deck.
func (k *ScopedKeyer) DeckKey(source []byte) string {
	return k.prefix + k.inner.DeckKey(source)
}

// PlanKey generates a prefixed key for a plan set.
func (k *ScopedKeyer) PlanKey(deckHash, tablesHash string) string {
	return k.prefix + k.inner.PlanKey(deckHash, tablesHash)
}

// ArtifactKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(planHash, opts)
}
