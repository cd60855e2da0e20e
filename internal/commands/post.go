package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/chart"
	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/gitops"
	"github.com/tally-dev/tally/internal/journal"
	"github.com/tally-dev/tally/internal/ledger"
)

const flagDateFormat = "2006-01-02"

func newPostCommand() *cobra.Command {
	var repoDir string
	var dateStr string
	var debitAccount int
	var creditAccount int
	var amountStr string
	var description string
	var reference string

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Record a double-entry transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(repoDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			date, err := time.Parse(flagDateFormat, dateStr)
			if err != nil {
				return fmt.Errorf("parsing --date: %w", err)
			}

			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("parsing --amount: %w", err)
			}

			entryID, err := runPost(absDir, postParams{
				Date:          date,
				Description:   description,
				Reference:     reference,
				DebitAccount:  debitAccount,
				CreditAccount: creditAccount,
				Amount:        amount,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Posted %s\n", entryID)
			return nil
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "books repository directory")
	cmd.Flags().StringVar(&dateStr, "date", time.Now().Format(flagDateFormat), "transaction date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&debitAccount, "debit", 0, "account number to debit (required)")
	cmd.Flags().IntVar(&creditAccount, "credit", 0, "account number to credit (required)")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount (required)")
	cmd.Flags().StringVar(&description, "description", "", "transaction description (required)")
	cmd.Flags().StringVar(&reference, "reference", "", "external reference")
	_ = cmd.MarkFlagRequired("debit")
	_ = cmd.MarkFlagRequired("credit")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}

type postParams struct {
	Date          time.Time
	Description   string
	Reference     string
	DebitAccount  int
	CreditAccount int
	Amount        decimal.Decimal
}

func runPost(repoRoot string, params postParams) (string, error) {
	cfg, err := config.Load(filepath.Join(repoRoot, config.FileName))
	if err != nil {
		return "", err
	}

	accounts, err := chart.Load(repoRoot)
	if err != nil {
		return "", err
	}

	debitAcct, ok := accounts.Get(params.DebitAccount)
	if !ok {
		return "", fmt.Errorf("unknown debit account %d", params.DebitAccount)
	}
	creditAcct, ok := accounts.Get(params.CreditAccount)
	if !ok {
		return "", fmt.Errorf("unknown credit account %d", params.CreditAccount)
	}

	tx, err := ledger.NewTransaction(params.Description, params.Date, []ledger.PostingSpec{
		{Account: debitAcct, Side: ledger.SideDebit, Amount: params.Amount},
		{Account: creditAcct, Side: ledger.SideCredit, Amount: params.Amount},
	}, params.Reference)
	if err != nil {
		return "", err
	}

	svc := journal.NewService(repoRoot, accounts)
	entryID, err := svc.Append(tx)
	if err != nil {
		return "", err
	}

	if cfg.Git.AutoCommit && gitops.IsRepo(repoRoot) {
		msg := fmt.Sprintf("books: %s (%s)", params.Description, entryID)
		year, month := params.Date.Year(), int(params.Date.Month())
		journalPath := filepath.Join(fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month), "journal.csv")
		if _, err := gitops.Commit(repoRoot, msg, cfg.Git.AuthorName, cfg.Git.AuthorEmail, journalPath); err != nil {
			return "", fmt.Errorf("committing entry: %w", err)
		}
	}

	return entryID, nil
}
