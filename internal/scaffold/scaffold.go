package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/HettieJacobson/Real-Privacy-Trading/internal/manifest"
)

//go:embed scaffolds
var scaffoldFS embed.FS

// Kind selects a template set.
type Kind string

const (
	KindExample  Kind = "example"
	KindCategory Kind = "category"
)

// subdirs is the fixed directory tree created under every output root.
var subdirs = []string{"contracts", "test", "deploy", "scripts"}

// fileSpec maps one template to its output path. Order is the write order,
// kept fixed so console progress is deterministic.
type fileSpec struct {
	tmpl string // path under scaffolds/<kind>/, empty for the manifest
	out  string // path relative to the output root
}

var fileSets = map[Kind][]fileSpec{
	KindExample: {
		{out: "package.json"},
		{tmpl: "README.md.tmpl", out: "README.md"},
		{tmpl: "gitignore.tmpl", out: ".gitignore"},
		{tmpl: "hardhat.config.ts.tmpl", out: "hardhat.config.ts"},
	},
	KindCategory: {
		{out: "package.json"},
		{tmpl: "README.md.tmpl", out: "README.md"},
		{tmpl: "gitignore.tmpl", out: ".gitignore"},
		{tmpl: "hardhat.config.ts.tmpl", out: "hardhat.config.ts"},
		{tmpl: "tsconfig.json.tmpl", out: "tsconfig.json"},
		{tmpl: "contracts/FHECounter.sol.tmpl", out: "contracts/FHECounter.sol"},
		{tmpl: "test/FHECounter.ts.tmpl", out: "test/FHECounter.ts"},
	},
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// EnsureTree idempotently creates the fixed subdirectories under root.
// Pre-existing directories are left untouched.
func EnsureTree(root string) error {
	for _, d := range subdirs {
		dir := filepath.Join(root, d)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	return nil
}

// Generate renders the template set for kind into outputDir, overwriting any
// existing files. The caller must have validated the Config against the
// registry first; Generate itself performs no registry checks.
func Generate(kind Kind, data *Data, outputDir string) (*Result, error) {
	specs, ok := fileSets[kind]
	if !ok {
		return nil, fmt.Errorf("unknown template set %q", kind)
	}

	if err := EnsureTree(outputDir); err != nil {
		return nil, err
	}

	result := &Result{OutputDir: outputDir}

	for _, spec := range specs {
		var content []byte
		var err error
		if spec.tmpl == "" {
			content, err = renderManifest(data)
		} else {
			content, err = renderTemplate(kind, spec.tmpl, data)
		}
		if err != nil {
			return nil, err
		}

		outPath := filepath.Join(outputDir, spec.out)
		if err := os.WriteFile(outPath, content, 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}
		result.Files = append(result.Files, spec.out)
	}

	// Validate the generated manifest against the embedded JSON schema.
	// Violations are warnings: the files are already on disk and the user
	// can fix them by hand.
	manifestPath := filepath.Join(outputDir, "package.json")
	valResult, valErr := manifest.ValidateFile(manifestPath)
	if valErr != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not validate manifest: %v", valErr))
	} else if !valResult.Valid {
		for _, issue := range valResult.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			result.Warnings = append(result.Warnings, msg)
		}
	}

	return result, nil
}

// renderManifest builds and serializes the package.json for data.
func renderManifest(data *Data) ([]byte, error) {
	m := manifest.New(data.Key, data.Description, data.Author)
	return manifest.Render(m)
}

// renderTemplate executes one embedded template against data.
func renderTemplate(kind Kind, name string, data *Data) ([]byte, error) {
	tmplPath := "scaffolds/" + string(kind) + "/" + name
	tmplBytes, err := scaffoldFS.ReadFile(tmplPath)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", tmplPath, err)
	}

	tmpl, err := template.New(name).Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
