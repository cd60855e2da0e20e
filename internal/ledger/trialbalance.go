package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Row is one line of a trial balance: an account with its balance placed in
// the debit or the credit column, never both. An account whose net position
// is opposite its normal balance shows as a positive figure in the contra
// column rather than as a negative number.
type Row struct {
	Account Account
	Debit   decimal.Decimal
	Credit  decimal.Decimal
}

// TrialBalance is a point-in-time projection of a ledger: one row per
// distinct account, sorted by account number, whose debit and credit column
// totals must match. It is computed fresh from the ledger and never updated;
// post again, compute again.
type TrialBalance struct {
	date time.Time
	rows []Row
}

// NewTrialBalance computes a trial balance over the ledger as of date. It
// fails with ErrInvalidLedger when given a nil ledger.
func NewTrialBalance(l *Ledger, date time.Time) (*TrialBalance, error) {
	if l == nil {
		return nil, ErrInvalidLedger
	}

	accounts := l.Accounts()
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Number < accounts[j].Number
	})

	rows := make([]Row, 0, len(accounts))
	for _, a := range accounts {
		bal := l.Balance(a)
		side := a.NormalBalance()
		if bal.IsNegative() {
			bal = bal.Abs()
			side = side.Opposite()
		}
		row := Row{Account: a}
		if side == SideDebit {
			row.Debit = bal
		} else {
			row.Credit = bal
		}
		rows = append(rows, row)
	}

	return &TrialBalance{date: date, rows: rows}, nil
}

// Date returns the report date.
func (tb *TrialBalance) Date() time.Time { return tb.date }

// Rows returns a copy of the rows, ordered by account number ascending.
func (tb *TrialBalance) Rows() []Row {
	out := make([]Row, len(tb.rows))
	copy(out, tb.rows)
	return out
}

// RowFor returns the row for the given account, matched by number.
func (tb *TrialBalance) RowFor(account Account) (Row, bool) {
	for _, r := range tb.rows {
		if r.Account.Equal(account) {
			return r, true
		}
	}
	return Row{}, false
}

// RowsForType returns the rows whose accounts have the given type.
func (tb *TrialBalance) RowsForType(typ AccountType) []Row {
	var out []Row
	for _, r := range tb.rows {
		if r.Account.Type == typ {
			out = append(out, r)
		}
	}
	return out
}

// TotalDebits sums the debit column.
func (tb *TrialBalance) TotalDebits() decimal.Decimal {
	total := decimal.Zero
	for _, r := range tb.rows {
		total = total.Add(r.Debit)
	}
	return total
}

// TotalCredits sums the credit column.
func (tb *TrialBalance) TotalCredits() decimal.Decimal {
	total := decimal.Zero
	for _, r := range tb.rows {
		total = total.Add(r.Credit)
	}
	return total
}

// Imbalance returns the debit column total minus the credit column total.
func (tb *TrialBalance) Imbalance() decimal.Decimal {
	return tb.TotalDebits().Sub(tb.TotalCredits())
}

// Balanced reports whether the two column totals match.
func (tb *TrialBalance) Balanced() bool {
	return tb.Imbalance().IsZero()
}
