package docs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtractSection(t *testing.T) {
	src := strings.Join([]string{
		"import stuff;",
		MarkerStart,
		"contract FHECounter {",
		"    euint32 private _count;",
		"}",
		MarkerEnd,
		"trailing",
	}, "\n")

	section, ok := ExtractSection(src)
	if !ok {
		t.Fatal("expected markers to be found")
	}
	if strings.Contains(section, "import stuff") || strings.Contains(section, "trailing") {
		t.Errorf("section leaked content outside the markers: %q", section)
	}
	if strings.Contains(section, MarkerStart) || strings.Contains(section, MarkerEnd) {
		t.Errorf("section contains marker lines: %q", section)
	}
	if !strings.Contains(section, "euint32 private _count;") {
		t.Errorf("section missing body: %q", section)
	}
}

func TestExtractSectionMissingMarkers(t *testing.T) {
	if _, ok := ExtractSection("no markers here"); ok {
		t.Error("expected miss when markers are absent")
	}
	if _, ok := ExtractSection(MarkerStart + "\nbody without end"); ok {
		t.Error("expected miss when end marker is absent")
	}
}

func TestSnippetMissingFile(t *testing.T) {
	snippet, warnings := Snippet(filepath.Join(t.TempDir(), "nope.sol"))
	if snippet != placeholder {
		t.Errorf("snippet = %q, want placeholder", snippet)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "not found") {
		t.Errorf("warnings = %v", warnings)
	}
}

func TestSnippetFallbackTruncates(t *testing.T) {
	var lines []string
	for i := 0; i < fallbackLines*2; i++ {
		lines = append(lines, "line")
	}
	path := filepath.Join(t.TempDir(), "long.sol")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		t.Fatal(err)
	}

	snippet, warnings := Snippet(path)
	if !strings.Contains(snippet, "truncated") {
		t.Error("fallback should mark the truncation")
	}
	if got := strings.Count(snippet, "line"); got != fallbackLines {
		t.Errorf("fallback kept %d lines, want %d", got, fallbackLines)
	}
	if len(warnings) != 1 {
		t.Errorf("warnings = %v", warnings)
	}
}

func TestSnippetWithMarkers(t *testing.T) {
	content := "header\n" + MarkerStart + "\nthe good part\n" + MarkerEnd + "\n"
	path := filepath.Join(t.TempDir(), "src.sol")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	snippet, warnings := Snippet(path)
	if snippet != "the good part" {
		t.Errorf("snippet = %q", snippet)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}
