// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package and rebuild; Go's //go:embed
// bakes the values into the binary so the generator stays network-free.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	GitHubRepo  string `yaml:"github_repo"`
	DocsBaseURL string `yaml:"docs_base_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "fhevm-scaffold",
			DisplayName: "FHEVM Example Hub",
			Description: "Scaffolding and documentation generator for FHEVM Solidity examples",
			HomeDir:     ".fhevm-scaffold",
			EnvPrefix:   "FHEVM",
			GoModule:    "github.com/HettieJacobson/Real-Privacy-Trading",
			GitHubRepo:  "HettieJacobson/Real-Privacy-Trading",
			DocsBaseURL: "https://docs.zama.ai/protocol",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "fhevm-scaffold").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".fhevm-scaffold").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "FHEVM").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// DocsBaseURL returns the base URL for the FHEVM protocol documentation.
// Interpolated into generated READMEs, never fetched.
func DocsBaseURL() string { load(); return defaults.DocsBaseURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "FHEVM_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
