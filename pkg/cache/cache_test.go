package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Miss before Set
	_, hit, err := c.Get(ctx, "artifact:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("Get should miss before Set")
	}

	// Roundtrip
	if err := c.Set(ctx, "artifact:abc", []byte("pptx bytes"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "artifact:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("Get should hit after Set")
	}
	if string(data) != "pptx bytes" {
		t.Errorf("Get = %q, want %q", data, "pptx bytes")
	}

	// Overwrite
	if err := c.Set(ctx, "artifact:abc", []byte("new bytes"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, _, _ = c.Get(ctx, "artifact:abc")
	if string(data) != "new bytes" {
		t.Errorf("Get after overwrite = %q, want %q", data, "new bytes")
	}

	// Delete, including a second delete of the now-missing key
	if err := c.Delete(ctx, "artifact:abc"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "artifact:abc"); hit {
		t.Error("Get should miss after Delete")
	}
	if err := c.Delete(ctx, "artifact:abc"); err != nil {
		t.Errorf("Delete of missing key should be nil, got %v", err)
	}
}

func TestFileCacheTTL(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Nanosecond); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, hit, err := c.Get(ctx, "key"); err != nil || hit {
		t.Errorf("expired entry: hit=%v err=%v, want miss", hit, err)
	}

	// Zero TTL never expires.
	if err := c.Set(ctx, "forever", []byte("value"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("zero-TTL entry should not expire")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Hand-write garbage where the entry file would live.
	fc := c.(*FileCache)
	path := fc.path("key")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	// Corrupt entries read as a miss, not an error.
	if _, hit, err := c.Get(ctx, "key"); err != nil || hit {
		t.Errorf("corrupt entry: hit=%v err=%v, want silent miss", hit, err)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	// DeckKey is the source hash under a fixed prefix
	src := []byte("## Slide 1: Intro\n")
	deckKey := k.DeckKey(src)
	if deckKey != "deck:"+Hash(src) {
		t.Errorf("DeckKey unexpected: %s", deckKey)
	}

	// PlanKey should include the tables hash
	pk1 := k.PlanKey("deckhash", "tables1")
	pk2 := k.PlanKey("deckhash", "tables2")
	if pk1 == pk2 {
		t.Error("Different tables hashes should produce different plan keys")
	}
	if !strings.HasPrefix(pk1, "plan:") {
		t.Errorf("PlanKey missing prefix: %s", pk1)
	}

	// ArtifactKey should include options in hash
	ak1 := k.ArtifactKey("planhash", ArtifactKeyOpts{Format: "pptx"})
	ak2 := k.ArtifactKey("planhash", ArtifactKeyOpts{Format: "svg"})
	if ak1 == ak2 {
		t.Error("Different ArtifactKeyOpts should produce different keys")
	}
	if ak1 != k.ArtifactKey("planhash", ArtifactKeyOpts{Format: "pptx"}) {
		t.Error("ArtifactKey should be deterministic")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "deck:talk:")

	// All keys should be prefixed
	src := []byte("source")
	if got, want := scoped.DeckKey(src), "deck:talk:"+inner.DeckKey(src); got != want {
		t.Errorf("ScopedKeyer DeckKey = %s, want %s", got, want)
	}
	if !strings.HasPrefix(scoped.PlanKey("d", "t"), "deck:talk:plan:") {
		t.Errorf("ScopedKeyer PlanKey should be prefixed: %s", scoped.PlanKey("d", "t"))
	}
	if !strings.HasPrefix(scoped.ArtifactKey("p", ArtifactKeyOpts{}), "deck:talk:artifact:") {
		t.Errorf("ScopedKeyer ArtifactKey should be prefixed: %s", scoped.ArtifactKey("p", ArtifactKeyOpts{}))
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Should use DefaultKeyer when inner is nil
	scoped := NewScopedKeyer(nil, "prefix:")
	key := scoped.DeckKey([]byte("source"))
	if !strings.HasPrefix(key, "prefix:deck:") {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}
