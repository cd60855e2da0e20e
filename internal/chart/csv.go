package chart

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/tally-dev/tally/internal/ledger"
)

const (
	numFields = 4
	colNumber = 0
	colName   = 1
	colType   = 2
	colDesc   = 3
)

// ReadAccounts reads chart-of-accounts.csv.
func ReadAccounts(r io.Reader) ([]ledger.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var accounts []ledger.Account
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes chart-of-accounts.csv.
func WriteAccounts(w io.Writer, accounts []ledger.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"number", "name", "type", "description"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct ledger.Account) []string {
	row := make([]string, numFields)
	row[colNumber] = strconv.Itoa(acct.Number)
	row[colName] = acct.Name
	row[colType] = string(acct.Type)
	row[colDesc] = acct.Description
	return row
}

// UnmarshalAccount converts a CSV row to an Account, revalidating the type
// through the ledger constructor.
func UnmarshalAccount(record []string) (ledger.Account, error) {
	if len(record) != numFields {
		return ledger.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	number, err := strconv.Atoi(record[colNumber])
	if err != nil {
		return ledger.Account{}, fmt.Errorf("parsing number %q: %w", record[colNumber], err)
	}

	acct, err := ledger.NewAccount(record[colName], ledger.AccountType(record[colType]), number, record[colDesc])
	if err != nil {
		return ledger.Account{}, fmt.Errorf("account %d: %w", number, err)
	}
	return acct, nil
}
