package manifest

// License is the fixed license identifier written into every generated
// manifest, matching the FHEVM Solidity library's own license.
const License = "BSD-3-Clause-Clear"

// PackageManifest is the npm package descriptor generated for scaffolded
// projects. Maps marshal with sorted keys, so rendered output is
// byte-identical across runs.
type PackageManifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description"`
	License         string            `json:"license"`
	Author          string            `json:"author,omitempty"`
	Private         bool              `json:"private"`
	Scripts         map[string]string `json:"scripts"`
	DevDependencies map[string]string `json:"devDependencies"`
	Engines         map[string]string `json:"engines,omitempty"`
}

// defaultScripts are the fixed script entries every generated project gets.
var defaultScripts = map[string]string{
	"compile":  "hardhat compile",
	"test":     "hardhat test",
	"deploy":   "hardhat deploy",
	"coverage": "hardhat coverage",
	"lint":     "eslint .",
	"clean":    "hardhat clean && rm -rf artifacts cache coverage typechain-types",
}

// defaultEngines pins the Node version range for generated projects.
var defaultEngines = map[string]string{
	"node": ">=20.0.0",
}
