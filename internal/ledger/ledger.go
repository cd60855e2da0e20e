package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Ledger is the append-only history of posted transactions plus a flattened
// index of their postings in posting order. It grows only through Post and
// PostAll; Clear is the sole form of deletion. The Ledger is the one mutable
// value in this package and is not safe for concurrent mutation — callers
// sharing one across goroutines must serialize access themselves.
type Ledger struct {
	transactions []*Transaction
	postings     []Posting
}

// NewLedger returns an empty Ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Post appends a transaction and its postings to the history. It fails with
// ErrInvalidTransaction for a nil or zero-value argument; balance itself is
// not re-checked because NewTransaction already guarantees it.
func (l *Ledger) Post(tx *Transaction) error {
	if tx == nil || len(tx.postings) == 0 {
		return ErrInvalidTransaction
	}
	l.transactions = append(l.transactions, tx)
	l.postings = append(l.postings, tx.postings...)
	return nil
}

// PostAll posts transactions in order, stopping at the first failure. The
// transactions posted before the failing one stay posted; callers needing
// atomicity must validate the whole batch before posting any of it.
func (l *Ledger) PostAll(txs []*Transaction) error {
	for i, tx := range txs {
		if err := l.Post(tx); err != nil {
			return fmt.Errorf("posting transaction %d: %w", i, err)
		}
	}
	return nil
}

// Balance returns the account's net balance on its normal side: debits minus
// credits for debit-normal accounts, credits minus debits otherwise. A
// positive result means the account sits where its type expects it to.
// Accounts with no postings balance to exactly zero.
func (l *Ledger) Balance(account Account) decimal.Decimal {
	debits := decimal.Zero
	credits := decimal.Zero
	for _, p := range l.postings {
		if !p.Account.Equal(account) {
			continue
		}
		if p.IsDebit() {
			debits = debits.Add(p.Amount)
		} else {
			credits = credits.Add(p.Amount)
		}
	}
	if account.NormalBalance() == SideDebit {
		return debits.Sub(credits)
	}
	return credits.Sub(debits)
}

// AllBalances returns the balance of every account in the posting history,
// keyed by account number. Recomputed from the history on every call.
func (l *Ledger) AllBalances() map[int]decimal.Decimal {
	balances := make(map[int]decimal.Decimal)
	for _, a := range l.Accounts() {
		balances[a.Number] = l.Balance(a)
	}
	return balances
}

// Accounts returns the distinct accounts in the posting history, deduplicated
// by number, in order of first appearance.
func (l *Ledger) Accounts() []Account {
	seen := make(map[int]bool)
	var out []Account
	for _, p := range l.postings {
		if seen[p.Account.Number] {
			continue
		}
		seen[p.Account.Number] = true
		out = append(out, p.Account)
	}
	return out
}

// EntriesFor returns the transactions that touch the given account, in
// posting order.
func (l *Ledger) EntriesFor(account Account) []*Transaction {
	var out []*Transaction
	for _, tx := range l.transactions {
		if len(tx.PostingsFor(account)) > 0 {
			out = append(out, tx)
		}
	}
	return out
}

// EntriesBetween returns the transactions dated within [start, end],
// inclusive on both ends, in posting order.
func (l *Ledger) EntriesBetween(start, end time.Time) []*Transaction {
	var out []*Transaction
	for _, tx := range l.transactions {
		if tx.date.Before(start) || tx.date.After(end) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// Transactions returns a copy of the transaction history in posting order.
func (l *Ledger) Transactions() []*Transaction {
	out := make([]*Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// Postings returns a copy of the flattened posting index.
func (l *Ledger) Postings() []Posting {
	out := make([]Posting, len(l.postings))
	copy(out, l.postings)
	return out
}

// Len returns the number of posted transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// TotalDebits sums every debit posting in the ledger.
func (l *Ledger) TotalDebits() decimal.Decimal {
	total := decimal.Zero
	for _, p := range l.postings {
		if p.IsDebit() {
			total = total.Add(p.Amount)
		}
	}
	return total
}

// TotalCredits sums every credit posting in the ledger.
func (l *Ledger) TotalCredits() decimal.Decimal {
	total := decimal.Zero
	for _, p := range l.postings {
		if p.IsCredit() {
			total = total.Add(p.Amount)
		}
	}
	return total
}

// Balanced reports whether total debits equal total credits across the whole
// ledger. Holds by construction for any ledger built through Post/PostAll.
func (l *Ledger) Balanced() bool {
	return l.TotalDebits().Equal(l.TotalCredits())
}

// Clear wipes the transaction history and posting index. Irreversible; there
// is no per-transaction removal.
func (l *Ledger) Clear() {
	l.transactions = nil
	l.postings = nil
}
