package scaffold

import (
	"time"

	"github.com/HettieJacobson/Real-Privacy-Trading/internal/branding"
	"github.com/HettieJacobson/Real-Privacy-Trading/internal/registry"
	"github.com/HettieJacobson/Real-Privacy-Trading/internal/versions"
)

// Data holds all template variables available to scaffold templates.
type Data struct {
	Key         string // e.g., "fhe-counter"
	Title       string // e.g., "FHE Counter"
	Description string
	Difficulty  string
	Concepts    []string
	Examples    []string // category member keys; empty for standalone examples
	Author      string   // may be empty

	SolcVersion string // e.g., "0.8.24"
	EVMVersion  string // e.g., "cancun"
	DocsBaseURL string

	// IncludeSepolia controls whether the hardhat config gets the public
	// testnet entry alongside the local sandbox network.
	IncludeSepolia bool

	Year int
}

// NewExampleData builds the template data for a standalone example project.
func NewExampleData(e registry.Example, author string) *Data {
	pins := versions.Get()
	return &Data{
		Key:         e.Key,
		Title:       e.Title,
		Description: e.Description,
		Difficulty:  string(e.Difficulty),
		Concepts:    e.Concepts,
		Author:      author,
		SolcVersion: pins.SolcVersion,
		EVMVersion:  pins.EVMVersion,
		DocsBaseURL: branding.DocsBaseURL(),
		Year:        time.Now().Year(),
	}
}

// NewCategoryData builds the template data for a category project. Category
// projects are the root-level variant, so they get the public testnet entry.
func NewCategoryData(c registry.Category, author string) *Data {
	pins := versions.Get()
	return &Data{
		Key:            c.Key,
		Title:          c.Title,
		Description:    c.Description,
		Difficulty:     string(c.Difficulty),
		Concepts:       c.Concepts,
		Examples:       c.Examples,
		Author:         author,
		SolcVersion:    pins.SolcVersion,
		EVMVersion:     pins.EVMVersion,
		DocsBaseURL:    branding.DocsBaseURL(),
		IncludeSepolia: true,
		Year:           time.Now().Year(),
	}
}
