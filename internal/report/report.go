// Package report renders ledger projections as plain text. Formatting lives
// here, not in the ledger package; nothing in this package can change what
// the numbers are, only how they look.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/ledger"
)

const dateFormat = "2006-01-02"

// WriteTrialBalance renders a trial balance as an aligned table with column
// totals and a balance banner.
func WriteTrialBalance(w io.Writer, tb *ledger.TrialBalance) error {
	if tb == nil {
		return ledger.ErrInvalidLedger
	}

	fmt.Fprintf(w, "Trial Balance as of %s\n\n", tb.Date().Format(dateFormat))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Number\tAccount\tDebit\tCredit\t")
	for _, row := range tb.Rows() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t\n",
			row.Account.Number, row.Account.Name, money(row.Debit), money(row.Credit))
	}
	fmt.Fprintf(tw, "\tTotal\t%s\t%s\t\n",
		tb.TotalDebits().StringFixed(2), tb.TotalCredits().StringFixed(2))
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("rendering trial balance: %w", err)
	}

	if tb.Balanced() {
		fmt.Fprintln(w, "\nBALANCED")
	} else {
		fmt.Fprintf(w, "\nOUT OF BALANCE by %s\n", tb.Imbalance().StringFixed(2))
	}
	return nil
}

// WriteBalances renders every account's balance in first-appearance order.
func WriteBalances(w io.Writer, l *ledger.Ledger) error {
	if l == nil {
		return ledger.ErrInvalidLedger
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Number\tAccount\tType\tBalance\t")
	for _, a := range l.Accounts() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t\n",
			a.Number, a.Name, a.Type, l.Balance(a).StringFixed(2))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("rendering balances: %w", err)
	}
	return nil
}

// money formats a column amount, leaving zero cells blank the way a printed
// trial balance does.
func money(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.StringFixed(2)
}
