package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// clearCacheEnv unsets the cache-related environment variables for the
// duration of a test so defaults can be observed.
func clearCacheEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{cacheDirEnv, "XDG_CACHE_HOME"} {
		old, had := os.LookupEnv(key)
		os.Unsetenv(key)
		t.Cleanup(func() {
			if had {
				os.Setenv(key, old)
			}
		})
	}
}

func TestCacheDir(t *testing.T) {
	clearCacheEnv(t)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	if dir == "" {
		t.Error("cacheDir() returned empty string")
	}

	home, _ := os.UserHomeDir()
	if !strings.HasPrefix(dir, home) {
		t.Errorf("cacheDir() = %q, should be under home %q", dir, home)
	}

	if !strings.HasSuffix(dir, appName) {
		t.Errorf("cacheDir() = %q, should end with %q", dir, appName)
	}

	if !strings.Contains(dir, ".cache") {
		t.Errorf("cacheDir() = %q, should contain '.cache'", dir)
	}
}

func TestCacheDirStructure(t *testing.T) {
	clearCacheEnv(t)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cache", appName)
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
}

func TestCacheDirXDG(t *testing.T) {
	clearCacheEnv(t)
	t.Setenv("XDG_CACHE_HOME", "/tmp/custom-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	expected := filepath.Join("/tmp/custom-cache", appName)
	if dir != expected {
		t.Errorf("cacheDir() with XDG_CACHE_HOME = %q, want %q", dir, expected)
	}
}

func TestCacheDirEnvOverride(t *testing.T) {
	clearCacheEnv(t)
	t.Setenv("XDG_CACHE_HOME", "/tmp/custom-cache")
	t.Setenv(cacheDirEnv, "/tmp/slidesmith-override")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	// The explicit override wins over XDG and is used verbatim.
	if dir != "/tmp/slidesmith-override" {
		t.Errorf("cacheDir() with %s = %q, want %q", cacheDirEnv, dir, "/tmp/slidesmith-override")
	}
}

func TestDerivedOutput(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		suffix string
		want   string
	}{
		{"markdown to pptx", "talk.md", ".pptx", "talk.pptx"},
		{"deck json to plan json", "talk.deck.json", ".plan.json", "talk.plan.json"},
		{"plan json to pptx", "talk.plan.json", ".pptx", "talk.pptx"},
		{"plan json to svg", "dir/talk.plan.json", ".svg", "dir/talk.svg"},
		{"no extension", "talk", ".svg", "talk.svg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := derivedOutput(tt.input, tt.suffix); got != tt.want {
				t.Errorf("derivedOutput(%q, %q) = %q, want %q", tt.input, tt.suffix, got, tt.want)
			}
		})
	}
}

func TestArtifactExt(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"pptx", ".pptx"},
		{"json", ".plan.json"},
		{"text", ".txt"},
		{"svg", ".svg"},
	}

	for _, tt := range tests {
		if got := artifactExt(tt.format); got != tt.want {
			t.Errorf("artifactExt(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}
