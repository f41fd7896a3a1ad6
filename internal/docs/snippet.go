package docs

import (
	"fmt"
	"os"
	"strings"
)

// Snippet markers, written as ordinary comments in the example sources.
const (
	MarkerStart = "// docs:snippet:start"
	MarkerEnd   = "// docs:snippet:end"
)

// fallbackLines bounds the truncated fallback when markers are absent.
const fallbackLines = 30

// placeholder is emitted when the source file itself is missing.
const placeholder = "// Source not available yet. See the repository for the full listing."

// ExtractSection returns the region between the snippet markers, with the
// marker lines themselves removed. The second return is false when either
// marker is missing.
func ExtractSection(src string) (string, bool) {
	start := strings.Index(src, MarkerStart)
	if start == -1 {
		return "", false
	}
	rest := src[start:]
	nl := strings.IndexByte(rest, '\n')
	if nl == -1 {
		return "", false
	}
	rest = rest[nl+1:]

	end := strings.Index(rest, MarkerEnd)
	if end == -1 {
		return "", false
	}
	section := rest[:end]

	// Drop the trailing partial line holding the end marker's indentation.
	if idx := strings.LastIndexByte(section, '\n'); idx != -1 {
		section = section[:idx+1]
	}
	return strings.TrimRight(section, "\n"), true
}

// truncate returns the first fallbackLines lines of src, marking the cut.
func truncate(src string) string {
	lines := strings.Split(src, "\n")
	if len(lines) <= fallbackLines {
		return strings.TrimRight(src, "\n")
	}
	kept := strings.Join(lines[:fallbackLines], "\n")
	return kept + "\n// ... truncated ..."
}

// Snippet reads the source file at path and extracts its snippet region.
// Missing files yield a placeholder, missing markers yield a truncated
// listing; both cases add a warning instead of failing, so a single absent
// source never aborts documentation generation.
func Snippet(path string) (string, []string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return placeholder, []string{fmt.Sprintf("source file %s not found", path)}
	}

	section, ok := ExtractSection(string(data))
	if !ok {
		return truncate(string(data)), []string{fmt.Sprintf("no snippet markers in %s, using truncated listing", path)}
	}
	return section, nil
}
