package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "tally",
		Short:   "Plain-text double-entry bookkeeping",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAccountsCommand())
	rootCmd.AddCommand(newPostCommand())
	rootCmd.AddCommand(newBalancesCommand())
	rootCmd.AddCommand(newTrialBalanceCommand())
	rootCmd.AddCommand(newVerifyCommand())
	rootCmd.AddCommand(newImportCommand())

	return rootCmd
}
