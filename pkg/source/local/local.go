// Package local discovers deck markdown sources on the filesystem.
//
// CLI commands accept either a markdown file or a directory. For a
// directory, discovery tries a list of well-known deck filenames first and
// falls back to scanning for any markdown file that contains a slide
// heading.
package local

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/errors"
)

// WellKnownNames are tried first, in order, when discovering a deck in a
// directory.
var WellKnownNames = []string{
	"slides.md",
	"presentation.md",
	"PROJECT_PRESENTATION.md",
	"PRESENTATION_OUTLINE.md",
	"deck.md",
}

// headingRE matches a slide heading anywhere in a file. It mirrors the
// parser's heading rule so discovery and parsing agree on what a deck is.
var headingRE = regexp.MustCompile(`(?m)^## Slide (\d+): (.+)$`)

// FindDeckSource locates the deck markdown inside dir. Well-known names win
// over content scanning; the scan visits markdown files in lexical order and
// picks the first one containing a slide heading.
func FindDeckSource(dir string) (string, error) {
	for _, name := range WellKnownNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, nil
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "read dir %s", dir)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".md") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if headingRE.Match(data) {
			return path, nil
		}
	}

	return "", errors.New(errors.ErrCodeNoDeckSource, "no deck source in %s", dir)
}

// Resolve turns a CLI path argument into a concrete markdown file. A file
// passes through unchanged; a directory is searched with FindDeckSource; an
// empty path means the working directory.
func Resolve(path string) (string, error) {
	if path == "" {
		path = "."
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "stat %s", path)
	}
	if info.IsDir() {
		return FindDeckSource(path)
	}
	return path, nil
}
