package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Sentinel errors for construction-time invariant violations. Everything here
// is a programmer-input error surfaced synchronously at the point of
// construction; there is no retry or recovery policy.
var (
	ErrInvalidAccountType = errors.New("invalid account type")
	ErrInvalidAmount      = errors.New("posting amount must be positive")
	ErrInvalidSide        = errors.New("side must be debit or credit")
	ErrMissingPostingData = errors.New("posting spec is missing an amount")
	ErrInvalidTransaction = errors.New("not a valid transaction")
	ErrInvalidLedger      = errors.New("not a valid ledger")
)

// UnbalancedTransactionError reports that a transaction's debits and credits
// do not sum to the same total. Imbalance is debits minus credits.
type UnbalancedTransactionError struct {
	Imbalance decimal.Decimal
}

func (e *UnbalancedTransactionError) Error() string {
	return fmt.Sprintf("unbalanced transaction: debits exceed credits by %s", e.Imbalance.String())
}

// IsUnbalanced reports whether err is an UnbalancedTransactionError.
func IsUnbalanced(err error) bool {
	var ube *UnbalancedTransactionError
	return errors.As(err, &ube)
}
