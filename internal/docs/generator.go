package docs

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/HettieJacobson/Real-Privacy-Trading/internal/registry"
)

//go:embed templates
var templateFS embed.FS

// IndexFile is the name of the aggregated index written by GenerateAll.
const IndexFile = "README.md"

// Options configures a documentation run.
type Options struct {
	OutputDir string // where pages are written
	SourceDir string // root the topic contract/test paths resolve against
}

// Result holds the outcome of a documentation run.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// pageData is the template payload for one documentation page.
type pageData struct {
	registry.DocTopic
	ContractSnippet string
	TestSnippet     string
}

// chapterData groups index entries under one chapter heading.
type chapterData struct {
	Name   string
	Topics []registry.DocTopic
}

// PageFile returns the output file name for a topic key.
func PageFile(key string) string {
	return key + ".md"
}

// GeneratePage renders the page for one topic into opts.OutputDir,
// overwriting any existing file.
func GeneratePage(topic registry.DocTopic, opts Options) (*Result, error) {
	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", opts.OutputDir, err)
	}

	result := &Result{OutputDir: opts.OutputDir}

	data := pageData{DocTopic: topic}
	var warnings []string
	data.ContractSnippet, warnings = Snippet(filepath.Join(opts.SourceDir, topic.ContractFile))
	result.Warnings = append(result.Warnings, warnings...)
	data.TestSnippet, warnings = Snippet(filepath.Join(opts.SourceDir, topic.TestFile))
	result.Warnings = append(result.Warnings, warnings...)

	content, err := render("templates/page.md.tmpl", data)
	if err != nil {
		return nil, err
	}

	outPath := filepath.Join(opts.OutputDir, PageFile(topic.Key))
	if err := os.WriteFile(outPath, content, 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", outPath, err)
	}
	result.Files = append(result.Files, PageFile(topic.Key))

	return result, nil
}

// GenerateAll renders every topic page in table order, then the index. A
// failing topic aborts the batch; pages already written stay on disk.
func GenerateAll(opts Options) (*Result, error) {
	result := &Result{OutputDir: opts.OutputDir}

	for _, topic := range registry.DocTopics.All() {
		page, err := GeneratePage(topic, opts)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", topic.Key, err)
		}
		result.Files = append(result.Files, page.Files...)
		result.Warnings = append(result.Warnings, page.Warnings...)
	}

	if err := writeIndex(opts); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, IndexFile)

	return result, nil
}

// writeIndex renders the aggregated index linking every page, grouped by
// chapter in first-appearance order.
func writeIndex(opts Options) error {
	var chapters []chapterData
	byName := make(map[string]int)
	for _, topic := range registry.DocTopics.All() {
		idx, ok := byName[topic.Chapter]
		if !ok {
			idx = len(chapters)
			byName[topic.Chapter] = idx
			chapters = append(chapters, chapterData{Name: topic.Chapter})
		}
		chapters[idx].Topics = append(chapters[idx].Topics, topic)
	}

	content, err := render("templates/index.md.tmpl", chapters)
	if err != nil {
		return err
	}

	outPath := filepath.Join(opts.OutputDir, IndexFile)
	if err := os.WriteFile(outPath, content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}

// render executes one embedded template.
func render(path string, data any) ([]byte, error) {
	tmplBytes, err := templateFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}

	tmpl, err := template.New(filepath.Base(path)).Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", path, err)
	}
	return buf.Bytes(), nil
}
