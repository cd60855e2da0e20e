package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/chart"
	"github.com/tally-dev/tally/internal/journal"
)

func newVerifyCommand() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every journal file against the books invariants",
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(repoDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			accounts, err := chart.Load(absDir)
			if err != nil {
				return err
			}

			verrs, err := journal.NewService(absDir, accounts).Verify()
			if err != nil {
				return err
			}
			if len(verrs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "OK: all journal files pass")
				return nil
			}

			for _, ve := range verrs {
				fmt.Fprintln(cmd.OutOrStdout(), ve.Error())
			}
			return fmt.Errorf("%d invariant violation(s)", len(verrs))
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "books repository directory")
	return cmd
}
