package cli

import (
	"fmt"
	"os"

	"github.com/HettieJacobson/Real-Privacy-Trading/internal/branding"
	"github.com/HettieJacobson/Real-Privacy-Trading/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` stamps out new FHEVM example projects and generates the
hub's markdown documentation from compiled-in configuration tables. It never
touches the network: every template, version pin, and registry entry is baked
into the binary.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed here once; cobra's own reporting is silenced.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
