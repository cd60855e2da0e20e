package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/chart"
	"github.com/tally-dev/tally/internal/journal"
	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/report"
)

func newAccountsCommand() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List the chart of accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(repoDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			accounts, err := chart.Load(absDir)
			if err != nil {
				return err
			}
			for _, a := range accounts.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", a.Number, a.Name, a.Type)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "books repository directory")
	return cmd
}

func newBalancesCommand() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "balances",
		Short: "Show every account's balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(repoDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			l, err := loadLedger(absDir)
			if err != nil {
				return err
			}
			return report.WriteBalances(cmd.OutOrStdout(), l)
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "books repository directory")
	return cmd
}

func newTrialBalanceCommand() *cobra.Command {
	var repoDir string
	var dateStr string

	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Compute and print a trial balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(repoDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			date, err := time.Parse(flagDateFormat, dateStr)
			if err != nil {
				return fmt.Errorf("parsing --date: %w", err)
			}

			l, err := loadLedger(absDir)
			if err != nil {
				return err
			}
			tb, err := ledger.NewTrialBalance(l, date)
			if err != nil {
				return err
			}
			return report.WriteTrialBalance(cmd.OutOrStdout(), tb)
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "books repository directory")
	cmd.Flags().StringVar(&dateStr, "date", time.Now().Format(flagDateFormat), "report date (YYYY-MM-DD)")
	return cmd
}

func loadLedger(repoRoot string) (*ledger.Ledger, error) {
	accounts, err := chart.Load(repoRoot)
	if err != nil {
		return nil, err
	}
	return journal.NewService(repoRoot, accounts).LoadLedger()
}
