package journal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/ledger"
)

func sampleRows() []Row {
	return []Row{
		{
			RowID:       "2025-01-001a",
			Date:        date(2025, 1, 15),
			Account:     5020,
			Side:        ledger.SideDebit,
			Amount:      dec("4.00"),
			Description: "GitHub subscription",
			Reference:   "github-jan",
		},
		{
			RowID:       "2025-01-001b",
			Date:        date(2025, 1, 15),
			Account:     1010,
			Side:        ledger.SideCredit,
			Amount:      dec("4.00"),
			Description: "GitHub subscription",
			Reference:   "github-jan",
		},
	}
}

func TestRowRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRows(&buf, sampleRows()))

	got, err := ReadRows(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "2025-01-001a", got[0].RowID)
	assert.True(t, got[0].Date.Equal(date(2025, 1, 15)))
	assert.Equal(t, 5020, got[0].Account)
	assert.Equal(t, ledger.SideDebit, got[0].Side)
	assert.True(t, got[0].Amount.Equal(dec("4.00")))
	assert.Equal(t, "GitHub subscription", got[0].Description)
	assert.Equal(t, ledger.SideCredit, got[1].Side)
}

func TestReadRows_Empty(t *testing.T) {
	got, err := ReadRows(bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadRows_HeaderOnly(t *testing.T) {
	got, err := ReadRows(strings.NewReader(Header + "\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUnmarshalRow_Errors(t *testing.T) {
	tests := []struct {
		name   string
		record []string
	}{
		{"wrong field count", []string{"2025-01-001a", "2025-01-15"}},
		{"bad date", []string{"2025-01-001a", "Jan 15", "5020", "debit", "4.00", "", ""}},
		{"bad account", []string{"2025-01-001a", "2025-01-15", "x", "debit", "4.00", "", ""}},
		{"bad side", []string{"2025-01-001a", "2025-01-15", "5020", "left", "4.00", "", ""}},
		{"bad amount", []string{"2025-01-001a", "2025-01-15", "5020", "debit", "four", "", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalRow(tt.record)
			assert.Error(t, err)
		})
	}
}

func TestAppendRows_NoHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, AppendRows(&buf, sampleRows()[:1]))
	assert.False(t, strings.HasPrefix(buf.String(), "row_id"), "append writes no header")
}

func TestRowsFromTransaction(t *testing.T) {
	tx := purchaseTx("SaaS renewal", date(2025, 2, 3), "12.50")

	rows := RowsFromTransaction("2025-02-007", tx)
	require.Len(t, rows, 2)

	assert.Equal(t, "2025-02-007a", rows[0].RowID)
	assert.Equal(t, "2025-02-007b", rows[1].RowID)
	assert.Equal(t, "2025-02-007", rows[0].EntryID())
	assert.Equal(t, 5020, rows[0].Account)
	assert.Equal(t, 1010, rows[1].Account)
	assert.Equal(t, "SaaS renewal", rows[0].Description, "posting inherits the entry description")
	assert.True(t, rows[0].Amount.Equal(dec("12.50")))
}
