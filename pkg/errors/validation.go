package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateOutputPath validates a destination file path for safety.
//
// The validation rules are intentionally conservative:
//   - No empty paths
//   - No control characters or null bytes
//   - Maximum length of 500 characters
//   - No trailing path separator (outputs are files, not directories)
//
// Existence and writability are checked later by the OS call that creates
// the file.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "output path must name a file, not a directory")
	}

	return nil
}

// ValidateFormat validates an output format name against the allowed set.
func ValidateFormat(format string, allowed ...string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "output format cannot be empty")
	}

	for _, a := range allowed {
		if format == a {
			return nil
		}
	}

	return New(ErrCodeInvalidFormat, "unknown output format %q (supported: %s)",
		format, strings.Join(allowed, ", "))
}

// addrRegex matches listen addresses of the form "host:port" or ":port".
var addrRegex = regexp.MustCompile(`^[A-Za-z0-9.\-]*:\d{1,5}$`)

// ValidateAddr validates a TCP listen address for the preview server.
func ValidateAddr(addr string) error {
	if addr == "" {
		return New(ErrCodeInvalidAddr, "listen address cannot be empty")
	}

	if !addrRegex.MatchString(addr) {
		return New(ErrCodeInvalidAddr, "invalid listen address %q (want host:port or :port)", addr)
	}

	return nil
}

// ValidateSlideNumber validates a slide number from planner configuration.
// Slide numbers come from hand-edited TOML, so zero and negative values are
// rejected early instead of silently never matching.
func ValidateSlideNumber(n int) error {
	if n <= 0 {
		return New(ErrCodeInvalidConfig, "slide number must be positive, got %d", n)
	}
	return nil
}
