package docs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/HettieJacobson/Real-Privacy-Trading/internal/registry"
)

// writeSource creates a marked source file under root at rel.
func writeSource(t *testing.T, root, rel, body string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	content := "// preamble\n" + MarkerStart + "\n" + body + "\n" + MarkerEnd + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestGeneratePageWithSources(t *testing.T) {
	sourceDir := t.TempDir()
	outDir := t.TempDir()

	topic, ok := registry.DocTopics.Lookup("fhe-counter")
	if !ok {
		t.Fatal("fhe-counter topic must be registered")
	}
	writeSource(t, sourceDir, topic.ContractFile, "contract FHECounter {}")
	writeSource(t, sourceDir, topic.TestFile, `describe("FHECounter", () => {});`)

	result, err := GeneratePage(topic, Options{OutputDir: outDir, SourceDir: sourceDir})
	if err != nil {
		t.Fatalf("GeneratePage() error: %v", err)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}

	page := readPage(t, outDir, "fhe-counter.md")
	if !strings.Contains(page, "# FHE Counter") {
		t.Error("page missing title")
	}
	if !strings.Contains(page, "contract FHECounter {}") {
		t.Error("page missing contract snippet")
	}
	if !strings.Contains(page, `describe("FHECounter", () => {});`) {
		t.Error("page missing test snippet")
	}
	if strings.Contains(page, MarkerStart) {
		t.Error("page leaked snippet markers")
	}
}

func TestGeneratePageMissingSourcesDegrades(t *testing.T) {
	outDir := t.TempDir()

	topic, _ := registry.DocTopics.Lookup("fhe-add")
	result, err := GeneratePage(topic, Options{OutputDir: outDir, SourceDir: t.TempDir()})
	if err != nil {
		t.Fatalf("GeneratePage() error: %v", err)
	}

	// One warning per missing source file, but the page is still written.
	if len(result.Warnings) != 2 {
		t.Errorf("warnings = %v, want 2", result.Warnings)
	}
	page := readPage(t, outDir, "fhe-add.md")
	if !strings.Contains(page, "Source not available") {
		t.Error("page missing placeholder for absent sources")
	}
}

func TestGenerateAllCompleteness(t *testing.T) {
	outDir := t.TempDir()

	result, err := GenerateAll(Options{OutputDir: outDir, SourceDir: t.TempDir()})
	if err != nil {
		t.Fatalf("GenerateAll() error: %v", err)
	}

	// Exactly one page per topic plus the index.
	wantFiles := registry.DocTopics.Len() + 1
	if len(result.Files) != wantFiles {
		t.Errorf("generated %d files, want %d", len(result.Files), wantFiles)
	}
	for _, key := range registry.DocTopics.Keys() {
		if _, err := os.Stat(filepath.Join(outDir, PageFile(key))); err != nil {
			t.Errorf("missing page for %s: %v", key, err)
		}
	}
	if result.Files[len(result.Files)-1] != IndexFile {
		t.Errorf("index should be written last, got %v", result.Files)
	}
}

func TestIndexLinksEveryTopicInOrder(t *testing.T) {
	outDir := t.TempDir()

	if _, err := GenerateAll(Options{OutputDir: outDir, SourceDir: t.TempDir()}); err != nil {
		t.Fatalf("GenerateAll() error: %v", err)
	}

	index := readPage(t, outDir, IndexFile)
	lastPos := -1
	for _, key := range registry.DocTopics.Keys() {
		link := "(" + PageFile(key) + ")"
		pos := strings.Index(index, link)
		if pos == -1 {
			t.Errorf("index missing link to %s", key)
			continue
		}
		if pos < lastPos {
			t.Errorf("index link for %s out of registry order", key)
		}
		lastPos = pos
	}
}

func readPage(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	return string(data)
}
