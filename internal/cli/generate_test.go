package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/errors"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/pipeline"
)

const testDeckSource = `---
title: CLI Test Deck
author: Test Author
---

## Slide 2: **Architecture** Overview

### Pipeline

- **Parser**: staged
- Planner

---

## Slide 3: Roadmap

Ship the preview server.
`

// writeTestDeck writes the shared deck fixture under dir and returns its path.
func writeTestDeck(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(testDeckSource), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// testCLI returns a CLI that logs nowhere.
func testCLI() *CLI {
	return New(io.Discard, log.ErrorLevel)
}

// execute runs the root command with args, as a shell invocation would.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	root := testCLI().RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func TestGenerateCommand(t *testing.T) {
	t.Setenv(cacheDirEnv, t.TempDir())
	dir := t.TempDir()
	src := writeTestDeck(t, dir, "talk.md")

	if err := execute(t, "generate", src); err != nil {
		t.Fatalf("generate: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "talk.pptx"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Error("pptx output should start with zip magic")
	}
}

func TestGenerateCommandSVG(t *testing.T) {
	t.Setenv(cacheDirEnv, t.TempDir())
	dir := t.TempDir()
	src := writeTestDeck(t, dir, "talk.md")
	out := filepath.Join(dir, "frames.svg")

	if err := execute(t, "generate", src, "-f", "svg", "-o", out); err != nil {
		t.Fatalf("generate -f svg: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("<svg")) {
		t.Error("svg output should start with an svg element")
	}
}

func TestGenerateDirectoryDiscovery(t *testing.T) {
	t.Setenv(cacheDirEnv, t.TempDir())
	dir := t.TempDir()
	writeTestDeck(t, dir, "slides.md")

	if err := execute(t, "generate", dir, "--no-cache"); err != nil {
		t.Fatalf("generate from directory: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "slides.pptx")); err != nil {
		t.Errorf("expected discovered output slides.pptx: %v", err)
	}
}

func TestGenerateCachesArtifact(t *testing.T) {
	cacheRoot := t.TempDir()
	t.Setenv(cacheDirEnv, cacheRoot)
	dir := t.TempDir()
	src := writeTestDeck(t, dir, "talk.md")

	if err := execute(t, "generate", src); err != nil {
		t.Fatalf("generate: %v", err)
	}

	count, _ := cacheUsage(cacheRoot)
	if count == 0 {
		t.Error("cache directory should hold the rendered artifact")
	}

	// Second run serves from cache and still writes the output file.
	if err := os.Remove(filepath.Join(dir, "talk.pptx")); err != nil {
		t.Fatalf("remove output: %v", err)
	}
	if err := execute(t, "generate", src); err != nil {
		t.Fatalf("second generate: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "talk.pptx")); err != nil {
		t.Errorf("cached run should still write output: %v", err)
	}
}

func TestRunGenerateInvalidFormat(t *testing.T) {
	dir := t.TempDir()
	src := writeTestDeck(t, dir, "talk.md")

	c := testCLI()
	err := c.runGenerate(context.Background(), src, pipeline.Options{Format: "docx"}, "", true)
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
	}
}

func TestRunGenerateMissingSource(t *testing.T) {
	c := testCLI()
	err := c.runGenerate(context.Background(), filepath.Join(t.TempDir(), "absent.md"), pipeline.Options{Format: pipeline.FormatPPTX}, "", true)
	if err == nil {
		t.Fatal("expected error for missing source")
	}
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}
