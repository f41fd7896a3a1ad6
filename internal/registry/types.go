package registry

// Difficulty labels how much FHEVM experience an example assumes. It only
// affects generated prose, never generator logic.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Example describes one standalone example project.
type Example struct {
	Key         string     // kebab-case registry key and default artifact name
	Title       string     // human-readable display name
	Description string     // one paragraph, embedded verbatim into the README
	Difficulty  Difficulty
	Concepts    []string // rendered as a bullet list in the README
}

// Category describes a multi-example category project.
type Category struct {
	Key         string
	Title       string
	Description string
	Difficulty  Difficulty
	Concepts    []string
	// Examples lists the example keys belonging to this category. The
	// generator interpolates them into prose without checking them against
	// the example table; `doctor` reports dangling keys.
	Examples []string
}

// DocTopic describes one generated documentation page.
type DocTopic struct {
	Key         string
	Title       string
	Description string
	Difficulty  Difficulty
	// ContractFile and TestFile are paths relative to the docs source
	// directory. They are named in the generated markdown regardless of
	// whether they exist; snippet extraction checks existence and degrades
	// to a placeholder when they are missing.
	ContractFile string
	TestFile     string
	// Chapter groups topics in the generated index.
	Chapter string
}
