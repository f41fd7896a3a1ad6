package cli

import (
	"fmt"

	"github.com/HettieJacobson/Real-Privacy-Trading/internal/registry"
	"github.com/HettieJacobson/Real-Privacy-Trading/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	exampleListOnly bool
	exampleAuthor   string
)

func init() {
	exampleCmd.Flags().BoolVar(&exampleListOnly, "list", false, "List all registered examples and exit")
	exampleCmd.Flags().StringVar(&exampleAuthor, "author", "", "Author string for the generated manifest")
	rootCmd.AddCommand(exampleCmd)
}

var exampleCmd = &cobra.Command{
	Use:   "example [name] [output-dir]",
	Short: "Generate a standalone example project",
	Long: `Generate one example project from the compiled-in example table.

With no name argument, an interactive picker lists the registered examples.
Existing files at the output path are overwritten.

Examples:
  fhevm-scaffold example fhe-counter
  fhevm-scaffold example fhe-counter ./out/counter
  fhevm-scaffold example --list`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if exampleListOnly {
			return printExamples(cmd)
		}

		name, err := pickKey(args, "example", registry.Examples.Keys())
		if err != nil {
			return err
		}

		ex, ok := registry.Examples.Lookup(name)
		if !ok {
			return unknownKeyErr(cmd, "example", name, registry.Examples.Keys())
		}

		outDir := resolveOutputDir(args, name)
		fmt.Fprintf(cmd.OutOrStdout(), "Scaffolding example %s into %s\n", name, outDir)

		data := scaffold.NewExampleData(ex, resolveAuthor(exampleAuthor))
		result, err := scaffold.Generate(scaffold.KindExample, data, outDir)
		if err != nil {
			return err
		}

		printResult(cmd, "example", result)
		fmt.Fprintln(cmd.OutOrStdout(), "\nNext steps:")
		fmt.Fprintln(cmd.OutOrStdout(), "  1. cd into the project and run 'npm install'")
		fmt.Fprintln(cmd.OutOrStdout(), "  2. Add your contract under contracts/ and its test under test/")
		fmt.Fprintln(cmd.OutOrStdout(), "  3. Run 'npx hardhat test'")
		return nil
	},
}
