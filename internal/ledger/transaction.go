package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PostingSpec describes one posting of a transaction under construction. The
// side may be left empty, in which case the amount lands on the account's
// normal-balance side.
type PostingSpec struct {
	Account     Account
	Side        Side
	Amount      decimal.Decimal
	Description string
	Reference   string
}

// Transaction is a balanced journal entry: an ordered group of postings whose
// debits equal their credits exactly. The only way to obtain one is
// NewTransaction, which validates balance, so an unbalanced Transaction
// cannot exist.
type Transaction struct {
	description string
	date        time.Time
	reference   string
	postings    []Posting
}

// NewTransaction builds postings from specs, dated with the transaction date,
// and validates the double-entry invariant. It fails with
// ErrMissingPostingData when a spec carries no amount, with the posting
// constructor's error for a bad side or amount, and with
// UnbalancedTransactionError when total debits differ from total credits.
func NewTransaction(description string, date time.Time, specs []PostingSpec, reference string) (*Transaction, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: transaction has no postings", ErrMissingPostingData)
	}

	postings := make([]Posting, 0, len(specs))
	for i, spec := range specs {
		if spec.Amount.IsZero() {
			return nil, fmt.Errorf("%w: posting %d (%s)", ErrMissingPostingData, i, spec.Account.Name)
		}
		side := spec.Side
		if side == "" {
			side = spec.Account.NormalBalance()
		}
		p, err := NewPosting(spec.Account, side, spec.Amount, date, spec.Description, spec.Reference)
		if err != nil {
			return nil, fmt.Errorf("posting %d (%s): %w", i, spec.Account.Name, err)
		}
		postings = append(postings, p)
	}

	imbalance := decimal.Zero
	for _, p := range postings {
		imbalance = imbalance.Add(p.SignedAmount())
	}
	if !imbalance.IsZero() {
		return nil, &UnbalancedTransactionError{Imbalance: imbalance}
	}

	return &Transaction{
		description: description,
		date:        date,
		reference:   reference,
		postings:    postings,
	}, nil
}

// Description returns the transaction description.
func (t *Transaction) Description() string { return t.description }

// Date returns the transaction date.
func (t *Transaction) Date() time.Time { return t.date }

// Reference returns the optional external reference.
func (t *Transaction) Reference() string { return t.reference }

// Postings returns a copy of the postings in entry order.
func (t *Transaction) Postings() []Posting {
	out := make([]Posting, len(t.postings))
	copy(out, t.postings)
	return out
}

// TotalDebits sums the debit-side posting amounts.
func (t *Transaction) TotalDebits() decimal.Decimal {
	total := decimal.Zero
	for _, p := range t.postings {
		if p.IsDebit() {
			total = total.Add(p.Amount)
		}
	}
	return total
}

// TotalCredits sums the credit-side posting amounts.
func (t *Transaction) TotalCredits() decimal.Decimal {
	total := decimal.Zero
	for _, p := range t.postings {
		if p.IsCredit() {
			total = total.Add(p.Amount)
		}
	}
	return total
}

// Imbalance returns debits minus credits. Always zero for a constructed
// Transaction; exposed for diagnostics and tests.
func (t *Transaction) Imbalance() decimal.Decimal {
	return t.TotalDebits().Sub(t.TotalCredits())
}

// IsSimple reports whether the transaction has exactly two postings.
func (t *Transaction) IsSimple() bool { return len(t.postings) == 2 }

// IsCompound reports whether the transaction has more than two postings.
func (t *Transaction) IsCompound() bool { return len(t.postings) > 2 }

// Accounts returns the distinct accounts touched, in order of first
// appearance.
func (t *Transaction) Accounts() []Account {
	seen := make(map[int]bool, len(t.postings))
	var out []Account
	for _, p := range t.postings {
		if seen[p.Account.Number] {
			continue
		}
		seen[p.Account.Number] = true
		out = append(out, p.Account)
	}
	return out
}

// PostingsFor returns the postings against the given account, matched by
// account number.
func (t *Transaction) PostingsFor(account Account) []Posting {
	var out []Posting
	for _, p := range t.postings {
		if p.Account.Equal(account) {
			out = append(out, p)
		}
	}
	return out
}
