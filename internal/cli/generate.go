package cli

import (
	"fmt"
	"path/filepath"

	"github.com/HettieJacobson/Real-Privacy-Trading/internal/config"
	"github.com/HettieJacobson/Real-Privacy-Trading/internal/scaffold"
	"github.com/spf13/cobra"
)

// unknownKeyErr reports an unregistered name. The full valid key list goes to
// stderr so the user can re-invoke without a separate --list call.
func unknownKeyErr(cmd *cobra.Command, kind, name string, valid []string) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Unknown %s %q. Valid %ss:\n", kind, name, kind)
	for _, k := range valid {
		fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", k)
	}
	return fmt.Errorf("unknown %s %q", kind, name)
}

// resolveOutputDir picks the output root: explicit positional argument first,
// then the configured output_dir joined with the name, then ./<name>.
func resolveOutputDir(args []string, name string) string {
	if len(args) >= 2 {
		return args[1]
	}
	if root := config.Get(config.KeyOutputDir); root != "" {
		return filepath.Join(root, name)
	}
	return filepath.Join(".", name)
}

// resolveAuthor picks the manifest author: flag value first, then config.
func resolveAuthor(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return config.Get(config.KeyAuthor)
}

// printResult reports generated files and any warnings.
func printResult(cmd *cobra.Command, kind string, result *scaffold.Result) {
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s at %s/\n", kind, result.OutputDir)
	for _, f := range result.Files {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", f)
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "\nWarnings:")
		for _, w := range result.Warnings {
			fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", w)
		}
	}
}
