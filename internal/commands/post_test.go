package commands

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/chart"
	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/journal"
	"github.com/tally-dev/tally/internal/ledger"
)

// newBooks scaffolds a books repo without git, so tests stay hermetic.
func newBooks(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	cfg := config.Default("Test Biz", "llc_single_member")
	cfg.Git.AutoCommit = false
	require.NoError(t, config.Save(filepath.Join(dir, config.FileName), cfg))
	require.NoError(t, chart.NewService(chart.DefaultChart()).Save(dir))
	return dir
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRunPost(t *testing.T) {
	dir := newBooks(t)

	entryID, err := runPost(dir, postParams{
		Date:          mustDate(t, "2025-01-15"),
		Description:   "GitHub subscription",
		DebitAccount:  5020,
		CreditAccount: 1010,
		Amount:        dec("4.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-01-001", entryID)

	accounts, err := chart.Load(dir)
	require.NoError(t, err)
	l, err := journal.NewService(dir, accounts).LoadLedger()
	require.NoError(t, err)

	software, _ := accounts.Get(5020)
	assert.True(t, l.Balance(software).Equal(dec("4.00")))
	assert.True(t, l.Balanced())
}

func TestRunPost_UnknownAccount(t *testing.T) {
	dir := newBooks(t)

	_, err := runPost(dir, postParams{
		Date:          mustDate(t, "2025-01-15"),
		Description:   "bad",
		DebitAccount:  9999,
		CreditAccount: 1010,
		Amount:        dec("4.00"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown debit account")
}

func TestRunPost_RejectsBadAmount(t *testing.T) {
	dir := newBooks(t)

	_, err := runPost(dir, postParams{
		Date:          mustDate(t, "2025-01-15"),
		Description:   "zero",
		DebitAccount:  5020,
		CreditAccount: 1010,
		Amount:        decimal.Zero,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ledger.ErrMissingPostingData)
}

func TestTrialBalanceCommand(t *testing.T) {
	dir := newBooks(t)
	_, err := runPost(dir, postParams{
		Date:          mustDate(t, "2025-01-15"),
		Description:   "consulting invoice",
		DebitAccount:  1010,
		CreditAccount: 4010,
		Amount:        dec("500.00"),
	})
	require.NoError(t, err)

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"trial-balance", "--repo", dir, "--date", "2025-01-31"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "Trial Balance as of 2025-01-31")
	assert.Contains(t, out.String(), "BALANCED")
	assert.Contains(t, out.String(), "500.00")
}

func TestVerifyCommand_CleanBooks(t *testing.T) {
	dir := newBooks(t)
	_, err := runPost(dir, postParams{
		Date:          mustDate(t, "2025-01-15"),
		Description:   "rent",
		DebitAccount:  5100,
		CreditAccount: 1010,
		Amount:        dec("100.00"),
	})
	require.NoError(t, err)

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"verify", "--repo", dir})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "OK")
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse(flagDateFormat, s)
	require.NoError(t, err)
	return parsed
}
