// Package journal persists posted transactions as plain CSV under a books
// repository (<root>/<YYYY>/<MM>/journal.csv) and reconstructs a
// ledger.Ledger from those files. Reconstruction goes through the validating
// ledger constructors, so a journal file that no longer balances fails to
// load instead of producing a corrupt ledger.
package journal

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/id"
	"github.com/tally-dev/tally/internal/ledger"
)

// Row is one line of journal.csv: a single posting, tagged with its entry's
// ID plus a letter suffix tying it to its sibling rows.
type Row struct {
	RowID       string // "YYYY-MM-NNNx" where x = a,b,c...
	Date        time.Time
	Account     int
	Side        ledger.Side
	Amount      decimal.Decimal
	Description string
	Reference   string
}

// EntryID returns the base entry ID (without the posting suffix).
func (r Row) EntryID() string {
	return id.BaseID(r.RowID)
}

// RowsFromTransaction flattens a transaction into journal rows under the
// given entry ID.
func RowsFromTransaction(entryID string, tx *ledger.Transaction) []Row {
	postings := tx.Postings()
	rows := make([]Row, 0, len(postings))
	for i, p := range postings {
		desc := p.Description
		if desc == "" {
			desc = tx.Description()
		}
		ref := p.Reference
		if ref == "" {
			ref = tx.Reference()
		}
		rows = append(rows, Row{
			RowID:       id.FormatPostingID(entryID, i),
			Date:        p.Date,
			Account:     p.Account.Number,
			Side:        p.Side,
			Amount:      p.Amount,
			Description: desc,
			Reference:   ref,
		})
	}
	return rows
}
