package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/HettieJacobson/Real-Privacy-Trading/internal/versions"
)

// New builds the manifest for a generated project. name becomes the npm
// package name, description is embedded verbatim, and the devDependency pins
// come from the compiled-in version table.
func New(name, description, author string) *PackageManifest {
	pins := versions.Get()

	deps := make(map[string]string, len(pins.NPM))
	for pkg, rng := range pins.NPM {
		deps[pkg] = rng
	}

	scripts := make(map[string]string, len(defaultScripts))
	for k, v := range defaultScripts {
		scripts[k] = v
	}

	engines := make(map[string]string, len(defaultEngines))
	for k, v := range defaultEngines {
		engines[k] = v
	}

	return &PackageManifest{
		Name:            name,
		Version:         "0.1.0",
		Description:     description,
		License:         License,
		Author:          author,
		Private:         true,
		Scripts:         scripts,
		DevDependencies: deps,
		Engines:         engines,
	}
}

// Render serializes a manifest as indented JSON with a trailing newline.
func Render(m *PackageManifest) ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling manifest: %w", err)
	}
	return append(data, '\n'), nil
}

// Parse reads a generated package.json back into a PackageManifest.
func Parse(path string) (*PackageManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	var m PackageManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}
