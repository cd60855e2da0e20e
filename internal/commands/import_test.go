package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/chart"
	"github.com/tally-dev/tally/internal/journal"
)

const chaseStatement = `Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #
DEBIT,01/03/2025,GITHUB *PRO SUBSCRIPTION,-4.00,ACH_DEBIT,2996.00,
CREDIT,01/10/2025,ACME CONSULTING INVOICE 1042,3500.00,ACH_CREDIT,6496.00,
`

func TestImportCommand(t *testing.T) {
	dir := newBooks(t)
	importDir := filepath.Join(dir, "import")
	require.NoError(t, os.MkdirAll(importDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(importDir, "jan.csv"), []byte(chaseStatement), 0o644))

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"import", "--repo", dir, "--format", "chase"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Imported 2 entries from jan.csv")

	// The statement file moved to processed/.
	_, err := os.Stat(filepath.Join(importDir, "processed", "jan.csv"))
	require.NoError(t, err)

	// The entries landed in the ledger against bank and suspense.
	accounts, err := chart.Load(dir)
	require.NoError(t, err)
	l, err := journal.NewService(dir, accounts).LoadLedger()
	require.NoError(t, err)

	bank, _ := accounts.Get(1010)
	suspense, _ := accounts.Get(chart.SuspenseAccount)
	assert.True(t, l.Balance(bank).Equal(dec("3496.00")), "3500 in minus 4 out")
	assert.True(t, l.Balance(suspense).Equal(dec("-3496.00")), "suspense mirrors the bank")
	assert.True(t, l.Balanced())
}

func TestImportCommand_UnknownFormat(t *testing.T) {
	dir := newBooks(t)

	root := NewRootCommand()
	root.SetArgs([]string{"import", "--repo", dir, "--format", "vogon"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown statement format")
}

func TestImportCommand_NothingToImport(t *testing.T) {
	dir := newBooks(t)

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"import", "--repo", dir})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Nothing to import")
}
