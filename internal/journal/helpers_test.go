package journal

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/ledger"
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

// mockChart implements AccountResolver for testing.
type mockChart struct {
	accounts map[int]ledger.Account
}

func newMockChart(accounts ...ledger.Account) *mockChart {
	m := &mockChart{accounts: make(map[int]ledger.Account)}
	for _, a := range accounts {
		m.accounts[a.Number] = a
	}
	return m
}

func (m *mockChart) Exists(number int) bool {
	_, ok := m.accounts[number]
	return ok
}

func (m *mockChart) Get(number int) (ledger.Account, bool) {
	a, ok := m.accounts[number]
	return a, ok
}

var (
	checking = ledger.Account{Number: 1010, Name: "Checking", Type: ledger.AccountTypeAsset}
	software = ledger.Account{Number: 5020, Name: "Software & SaaS", Type: ledger.AccountTypeExpense}
	svcRev   = ledger.Account{Number: 4010, Name: "Service Revenue", Type: ledger.AccountTypeIncome}
)

func defaultChart() *mockChart {
	return newMockChart(checking, software, svcRev)
}

// purchaseTx debits software and credits checking for amount.
func purchaseTx(description string, d time.Time, amount string) *ledger.Transaction {
	tx, err := ledger.NewTransaction(description, d, []ledger.PostingSpec{
		{Account: software, Side: ledger.SideDebit, Amount: dec(amount)},
		{Account: checking, Side: ledger.SideCredit, Amount: dec(amount)},
	}, "")
	if err != nil {
		panic(err)
	}
	return tx
}
