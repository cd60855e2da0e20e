package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func cash() Account {
	return Account{Name: "Cash", Type: AccountTypeAsset, Number: 1000}
}

func revenue() Account {
	return Account{Name: "Revenue", Type: AccountTypeIncome, Number: 4100}
}

func rentExpense() Account {
	return Account{Name: "Rent Expense", Type: AccountTypeExpense, Number: 5100}
}

func mustTx(description string, d time.Time, specs []PostingSpec) *Transaction {
	tx, err := NewTransaction(description, d, specs, "")
	if err != nil {
		panic(err)
	}
	return tx
}

// saleTx posts amount from revenue into cash.
func saleTx(amount string) *Transaction {
	return mustTx("sale", date(2025, 1, 15), []PostingSpec{
		{Account: cash(), Side: SideDebit, Amount: dec(amount)},
		{Account: revenue(), Side: SideCredit, Amount: dec(amount)},
	})
}
