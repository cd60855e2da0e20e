package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/ledger"
)

// Header is the CSV header for journal.csv.
const Header = "row_id,date,account,side,amount,description,reference"

const (
	numFields  = 7
	dateFormat = "2006-01-02"
	colRowID   = 0
	colDate    = 1
	colAccount = 2
	colSide    = 3
	colAmount  = 4
	colDesc    = 5
	colRef     = 6
)

// ReadRows reads all rows from a journal.csv reader.
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var rows []Row
	for i, rec := range records[1:] {
		row, err := UnmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteRows writes rows to a journal.csv writer (including header).
func WriteRows(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range rows {
		if err := cw.Write(MarshalRow(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendRows appends rows to an existing journal.csv writer (no header).
func AppendRows(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, row := range rows {
		if err := cw.Write(MarshalRow(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalRow converts a Row to a CSV record.
func MarshalRow(row Row) []string {
	rec := make([]string, numFields)
	rec[colRowID] = row.RowID
	rec[colDate] = row.Date.Format(dateFormat)
	rec[colAccount] = strconv.Itoa(row.Account)
	rec[colSide] = string(row.Side)
	rec[colAmount] = row.Amount.StringFixed(2)
	rec[colDesc] = row.Description
	rec[colRef] = row.Reference
	return rec
}

// UnmarshalRow converts a CSV record to a Row.
func UnmarshalRow(record []string) (Row, error) {
	if len(record) != numFields {
		return Row{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return Row{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	account, err := strconv.Atoi(record[colAccount])
	if err != nil {
		return Row{}, fmt.Errorf("parsing account %q: %w", record[colAccount], err)
	}

	side := ledger.Side(record[colSide])
	if !side.Valid() {
		return Row{}, fmt.Errorf("%w: %q", ledger.ErrInvalidSide, record[colSide])
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return Row{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return Row{
		RowID:       record[colRowID],
		Date:        date,
		Account:     account,
		Side:        side,
		Amount:      amount,
		Description: record[colDesc],
		Reference:   record[colRef],
	}, nil
}
