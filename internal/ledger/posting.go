package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Posting is a single debit or credit of an amount against one account on one
// date. Postings are immutable values; a reduction is always expressed as a
// posting on the opposite side, never as a negative amount.
type Posting struct {
	Account     Account
	Side        Side
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	Reference   string
}

// NewPosting creates a Posting. The amount must be strictly positive and the
// side must be debit or credit.
func NewPosting(account Account, side Side, amount decimal.Decimal, date time.Time, description, reference string) (Posting, error) {
	if !side.Valid() {
		return Posting{}, fmt.Errorf("%w: %q", ErrInvalidSide, side)
	}
	if !amount.IsPositive() {
		return Posting{}, fmt.Errorf("%w: %s", ErrInvalidAmount, amount.String())
	}
	return Posting{
		Account:     account,
		Side:        side,
		Amount:      amount,
		Date:        date,
		Description: description,
		Reference:   reference,
	}, nil
}

// IsDebit reports whether the posting is on the debit side.
func (p Posting) IsDebit() bool { return p.Side == SideDebit }

// IsCredit reports whether the posting is on the credit side.
func (p Posting) IsCredit() bool { return p.Side == SideCredit }

// SignedAmount returns the amount positive for debits and negative for
// credits. This sign convention exists for balance arithmetic only; it is not
// the accounting normal-balance convention.
func (p Posting) SignedAmount() decimal.Decimal {
	if p.IsDebit() {
		return p.Amount
	}
	return p.Amount.Neg()
}

// AbsoluteAmount returns the amount regardless of side.
func (p Posting) AbsoluteAmount() decimal.Decimal {
	return p.Amount
}

// IncreasesAccount reports whether the posting's side matches the account's
// normal balance, i.e. whether it grows the account.
func (p Posting) IncreasesAccount() bool {
	return p.Side == p.Account.NormalBalance()
}

// DecreasesAccount reports whether the posting shrinks the account.
func (p Posting) DecreasesAccount() bool {
	return !p.IncreasesAccount()
}

// Equal reports structural equality across all fields. Amounts are compared
// by value, so 1.5 and 1.50 are equal.
func (p Posting) Equal(other Posting) bool {
	return p.Account == other.Account &&
		p.Side == other.Side &&
		p.Amount.Equal(other.Amount) &&
		p.Date.Equal(other.Date) &&
		p.Description == other.Description &&
		p.Reference == other.Reference
}

func (p Posting) String() string {
	verb := "DR"
	if p.IsCredit() {
		verb = "CR"
	}
	return fmt.Sprintf("%s %s %s", verb, p.Account.String(), p.Amount.String())
}
