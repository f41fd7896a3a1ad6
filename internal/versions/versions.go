// Package versions holds the dependency version pins stamped into generated
// projects. The pins live in an embedded versions.yaml and are compiled into
// the binary; they are never resolved against a live package registry.
package versions

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

//go:embed versions.yaml
var rawVersions []byte

var (
	once sync.Once
	pins Pins
)

// Pins is the full set of version constants used by the template renderer.
type Pins struct {
	// Solidity toolchain.
	SolcVersion string `yaml:"solc_version"`
	EVMVersion  string `yaml:"evm_version"`

	// npm devDependencies written into generated package.json files.
	// Keys are package names, values are semver ranges.
	NPM map[string]string `yaml:"npm"`
}

func load() {
	once.Do(func() {
		// Hard defaults so the renderer works even if the embedded
		// file goes missing in a fork.
		pins = Pins{
			SolcVersion: "0.8.24",
			EVMVersion:  "cancun",
			NPM: map[string]string{
				"@fhevm/solidity":                        "^0.7.0",
				"@fhevm/hardhat-plugin":                  "^0.0.1-6",
				"@nomicfoundation/hardhat-chai-matchers": "^2.0.8",
				"@nomicfoundation/hardhat-ethers":        "^3.0.8",
				"@typechain/ethers-v6":                   "^0.5.1",
				"@typechain/hardhat":                     "^9.1.0",
				"@types/chai":                            "^4.3.20",
				"@types/mocha":                           "^10.0.10",
				"@types/node":                            "^20.17.30",
				"chai":                                   "^4.5.0",
				"ethers":                                 "^6.14.0",
				"hardhat":                                "^2.24.3",
				"hardhat-deploy":                         "^0.12.4",
				"mocha":                                  "^11.1.0",
				"ts-node":                                "^10.9.2",
				"typechain":                              "^8.3.2",
				"typescript":                             "^5.8.3",
			},
		}
		_ = yaml.Unmarshal(rawVersions, &pins)
	})
}

// Get returns the compiled-in version pins.
func Get() Pins {
	load()
	return pins
}

// NPMPin returns the pinned range for a single npm package, or "" if unknown.
func NPMPin(name string) string {
	load()
	return pins.NPM[name]
}

// SortedNPM returns the npm pins as name/range pairs sorted by package name,
// so generated manifests are byte-identical across runs.
func SortedNPM() []Pin {
	load()
	out := make([]Pin, 0, len(pins.NPM))
	for name, rng := range pins.NPM {
		out = append(out, Pin{Name: name, Range: rng})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Pin is one npm package pin.
type Pin struct {
	Name  string
	Range string
}

// Check verifies every pin parses as a semver constraint and the solc version
// as a plain semver version. It returns one message per invalid pin; an empty
// slice means all pins are well-formed.
func Check() []string {
	load()
	var problems []string

	if _, err := semver.NewVersion(strings.TrimPrefix(pins.SolcVersion, "v")); err != nil {
		problems = append(problems, fmt.Sprintf("solc_version %q is not valid semver: %v", pins.SolcVersion, err))
	}

	for _, p := range SortedNPM() {
		if _, err := semver.NewConstraint(p.Range); err != nil {
			problems = append(problems, fmt.Sprintf("npm pin %s %q is not a valid semver range: %v", p.Name, p.Range, err))
		}
	}
	return problems
}
