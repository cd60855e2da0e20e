// Package ledger implements the double-entry bookkeeping kernel: accounts,
// postings, balanced transactions, the append-only ledger, and the derived
// trial balance. All amounts are exact decimals; nothing here touches disk.
package ledger

import "fmt"

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeIncome    AccountType = "income"
	AccountTypeExpense   AccountType = "expense"
)

// Valid reports whether t is one of the five recognized account types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeIncome, AccountTypeExpense:
		return true
	}
	return false
}

// Side is one of the two columns of a posting.
type Side string

const (
	SideDebit  Side = "debit"
	SideCredit Side = "credit"
)

// Valid reports whether s is debit or credit.
func (s Side) Valid() bool {
	return s == SideDebit || s == SideCredit
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideDebit {
		return SideCredit
	}
	return SideDebit
}

// Account identifies and classifies one account in a chart of accounts.
// Accounts are plain immutable values; two accounts with the same number are
// the same account regardless of name or description.
type Account struct {
	Name        string
	Type        AccountType
	Number      int
	Description string
}

// Canonical numbering ranges start here, one block of a thousand per type.
var defaultNumbers = map[AccountType]int{
	AccountTypeAsset:     1000,
	AccountTypeLiability: 2000,
	AccountTypeEquity:    3000,
	AccountTypeIncome:    4000,
	AccountTypeExpense:   5000,
}

// NewAccount creates an Account. A zero number picks the first value of the
// type's canonical range (asset 1000, liability 2000, equity 3000, income
// 4000, expense 5000); number uniqueness across a chart is the caller's
// responsibility, not enforced here.
func NewAccount(name string, typ AccountType, number int, description string) (Account, error) {
	if !typ.Valid() {
		return Account{}, fmt.Errorf("%w: %q", ErrInvalidAccountType, typ)
	}
	if number == 0 {
		number = defaultNumbers[typ]
	}
	return Account{Name: name, Type: typ, Number: number, Description: description}, nil
}

// Equal reports whether both accounts carry the same number. Descriptive
// fields do not participate in identity.
func (a Account) Equal(other Account) bool {
	return a.Number == other.Number
}

// NormalBalance returns the side that increases this account: debit for
// assets and expenses, credit for liabilities, equity, and income.
func (a Account) NormalBalance() Side {
	switch a.Type {
	case AccountTypeAsset, AccountTypeExpense:
		return SideDebit
	default:
		return SideCredit
	}
}

// DebitIncreases reports whether a debit posting increases this account.
func (a Account) DebitIncreases() bool {
	return a.NormalBalance() == SideDebit
}

// CreditIncreases reports whether a credit posting increases this account.
func (a Account) CreditIncreases() bool {
	return a.NormalBalance() == SideCredit
}

func (a Account) IsAsset() bool     { return a.Type == AccountTypeAsset }
func (a Account) IsLiability() bool { return a.Type == AccountTypeLiability }
func (a Account) IsEquity() bool    { return a.Type == AccountTypeEquity }
func (a Account) IsIncome() bool    { return a.Type == AccountTypeIncome }
func (a Account) IsExpense() bool   { return a.Type == AccountTypeExpense }

func (a Account) String() string {
	return fmt.Sprintf("%d %s", a.Number, a.Name)
}
