package cli

import (
	"fmt"

	"github.com/HettieJacobson/Real-Privacy-Trading/internal/registry"
	"github.com/HettieJacobson/Real-Privacy-Trading/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	categoryListOnly bool
	categoryAuthor   string
)

func init() {
	categoryCmd.Flags().BoolVar(&categoryListOnly, "list", false, "List all registered categories and exit")
	categoryCmd.Flags().StringVar(&categoryAuthor, "author", "", "Author string for the generated manifest")
	rootCmd.AddCommand(categoryCmd)
}

var categoryCmd = &cobra.Command{
	Use:   "category [name] [output-dir]",
	Short: "Generate a multi-example category project",
	Long: `Generate a category project holding several related examples. On top of the
standalone-example layout, category projects get a tsconfig, a sepolia network
entry, and a sample encrypted counter with its test.

Examples:
  fhevm-scaffold category basics
  fhevm-scaffold category confidential-trading ./out/trading
  fhevm-scaffold category --list`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if categoryListOnly {
			return printCategories(cmd)
		}

		name, err := pickKey(args, "category", registry.Categories.Keys())
		if err != nil {
			return err
		}

		cat, ok := registry.Categories.Lookup(name)
		if !ok {
			return unknownKeyErr(cmd, "category", name, registry.Categories.Keys())
		}

		outDir := resolveOutputDir(args, name)
		fmt.Fprintf(cmd.OutOrStdout(), "Scaffolding category %s into %s\n", name, outDir)

		data := scaffold.NewCategoryData(cat, resolveAuthor(categoryAuthor))
		result, err := scaffold.Generate(scaffold.KindCategory, data, outDir)
		if err != nil {
			return err
		}

		printResult(cmd, "category", result)
		fmt.Fprintln(cmd.OutOrStdout(), "\nNext steps:")
		fmt.Fprintln(cmd.OutOrStdout(), "  1. cd into the project and run 'npm install'")
		fmt.Fprintln(cmd.OutOrStdout(), "  2. Run 'npx hardhat test' to exercise the sample counter")
		fmt.Fprintf(cmd.OutOrStdout(), "  3. Add one contract per example: %v\n", cat.Examples)
		return nil
	},
}
