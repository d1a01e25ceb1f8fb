package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/pipeline"
)

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// writeArtifact writes rendered artifact bytes to path.
func writeArtifact(data []byte, path string) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}
	return nil
}

// artifactExt maps a pipeline format to its output file extension.
func artifactExt(format string) string {
	switch format {
	case pipeline.FormatPPTX:
		return ".pptx"
	case pipeline.FormatJSON:
		return ".plan.json"
	case pipeline.FormatText:
		return ".txt"
	case pipeline.FormatSVG:
		return ".svg"
	}
	return "." + format
}

// derivedOutput builds an output path from the input path by swapping the
// extension for suffix. "talk.md" with suffix ".pptx" becomes "talk.pptx".
func derivedOutput(input, suffix string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	// Interchange files carry two extensions (talk.deck.json, talk.plan.json);
	// strip the second so render output does not become talk.plan.pptx.
	base = strings.TrimSuffix(base, ".deck")
	base = strings.TrimSuffix(base, ".plan")
	return base + suffix
}
