package journal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/id"
	"github.com/tally-dev/tally/internal/ledger"
)

// ValidationError describes a single invariant violation in a journal file.
type ValidationError struct {
	Invariant   int
	EntryID     string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.EntryID, e.Description)
}

// AccountChecker tests whether an account number exists in the chart of
// accounts.
type AccountChecker interface {
	Exists(number int) bool
}

// ValidateRows enforces 5 invariants on a month's journal rows. The balance
// invariant is the same one ledger.NewTransaction enforces; checking it here
// catches files edited outside this tool before they reach the ledger.
func ValidateRows(rows []Row, accounts AccountChecker, year, month int) []ValidationError {
	var errs []ValidationError

	// Group rows by entry.
	groups := make(map[string][]Row)
	var groupOrder []string
	for _, row := range rows {
		g := row.EntryID()
		if _, seen := groups[g]; !seen {
			groupOrder = append(groupOrder, g)
		}
		groups[g] = append(groups[g], row)
	}

	// Invariant 1: Entry groups balance (sum(debits) == sum(credits) per group).
	for _, g := range groupOrder {
		totalDebit := decimal.Zero
		totalCredit := decimal.Zero
		for _, row := range groups[g] {
			if row.Side == ledger.SideDebit {
				totalDebit = totalDebit.Add(row.Amount)
			} else {
				totalCredit = totalCredit.Add(row.Amount)
			}
		}
		if !totalDebit.Equal(totalCredit) {
			errs = append(errs, ValidationError{
				Invariant:   1,
				EntryID:     g,
				Description: fmt.Sprintf("debits (%s) != credits (%s)", totalDebit.StringFixed(2), totalCredit.StringFixed(2)),
			})
		}
	}

	two := decimal.NewFromInt(100)
	for _, row := range rows {
		// Invariant 2: Positive amounts with no more than 2 decimal places.
		if !row.Amount.IsPositive() {
			errs = append(errs, ValidationError{
				Invariant:   2,
				EntryID:     row.RowID,
				Description: fmt.Sprintf("amount %s is not positive", row.Amount),
			})
		} else if !row.Amount.Mul(two).Equal(row.Amount.Mul(two).Floor()) {
			errs = append(errs, ValidationError{
				Invariant:   2,
				EntryID:     row.RowID,
				Description: fmt.Sprintf("amount %s has more than 2 decimal places", row.Amount),
			})
		}

		// Invariant 3: Valid account references.
		if !accounts.Exists(row.Account) {
			errs = append(errs, ValidationError{
				Invariant:   3,
				EntryID:     row.RowID,
				Description: fmt.Sprintf("unknown account %d", row.Account),
			})
		}

		// Invariant 4: Date within the month the file covers.
		if row.Date.Year() != year || int(row.Date.Month()) != month {
			errs = append(errs, ValidationError{
				Invariant:   4,
				EntryID:     row.RowID,
				Description: fmt.Sprintf("date %s not in %04d-%02d", row.Date.Format(dateFormat), year, month),
			})
		}
	}

	// Invariant 5: Sequential entry IDs — parseable, contiguous 1..N.
	seqSeen := make(map[int]bool)
	for _, row := range rows {
		_, _, seq, err := id.ParseEntryID(row.RowID)
		if err != nil {
			errs = append(errs, ValidationError{
				Invariant:   5,
				EntryID:     row.RowID,
				Description: fmt.Sprintf("invalid entry ID: %v", err),
			})
			continue
		}
		seqSeen[seq] = true
	}
	if len(seqSeen) > 0 {
		for i := 1; i <= len(seqSeen); i++ {
			if !seqSeen[i] {
				errs = append(errs, ValidationError{
					Invariant:   5,
					EntryID:     fmt.Sprintf("seq %d", i),
					Description: fmt.Sprintf("missing sequence %d in 1..%d", i, len(seqSeen)),
				})
			}
		}
	}

	return errs
}
