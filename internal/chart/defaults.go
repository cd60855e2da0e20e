package chart

import "github.com/tally-dev/tally/internal/ledger"

// SuspenseAccount is where statement imports park unclassified amounts until
// someone recategorizes them.
const SuspenseAccount = 1090

// DefaultChart returns the default chart of accounts for a new books repo.
func DefaultChart() []ledger.Account {
	return []ledger.Account{
		{Number: 1010, Name: "Business Checking", Type: ledger.AccountTypeAsset, Description: "Primary checking account"},
		{Number: 1020, Name: "Business Savings", Type: ledger.AccountTypeAsset, Description: "Savings account"},
		{Number: SuspenseAccount, Name: "Uncategorized", Type: ledger.AccountTypeAsset, Description: "Suspense account for imported activity"},
		{Number: 2010, Name: "Credit Card", Type: ledger.AccountTypeLiability, Description: "Business credit card"},
		{Number: 3010, Name: "Owner's Equity", Type: ledger.AccountTypeEquity, Description: "Owner's equity"},
		{Number: 4010, Name: "Service Revenue", Type: ledger.AccountTypeIncome},
		{Number: 4020, Name: "Product Revenue", Type: ledger.AccountTypeIncome},
		{Number: 5010, Name: "Advertising & Marketing", Type: ledger.AccountTypeExpense, Description: "Advertising costs"},
		{Number: 5020, Name: "Software & SaaS", Type: ledger.AccountTypeExpense, Description: "Software subscriptions"},
		{Number: 5030, Name: "Office Supplies", Type: ledger.AccountTypeExpense, Description: "Office supplies and expenses"},
		{Number: 5040, Name: "Professional Services", Type: ledger.AccountTypeExpense, Description: "Legal, accounting, consulting"},
		{Number: 5100, Name: "Rent", Type: ledger.AccountTypeExpense, Description: "Office rent"},
	}
}
