package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/tally-dev/tally/internal/id"
	"github.com/tally-dev/tally/internal/ledger"
)

// AccountResolver resolves account numbers against the chart of accounts.
type AccountResolver interface {
	AccountChecker
	Get(number int) (ledger.Account, bool)
}

// Service persists transactions under a books-repo root and rebuilds ledgers
// from what is on disk.
type Service struct {
	repoRoot string
	accounts AccountResolver
}

// NewService creates a journal Service.
func NewService(repoRoot string, accounts AccountResolver) *Service {
	return &Service{repoRoot: repoRoot, accounts: accounts}
}

// Append writes an already-constructed transaction to the month's
// journal.csv, validating the month's rows first. Returns the assigned entry
// ID.
func (s *Service) Append(tx *ledger.Transaction) (string, error) {
	if tx == nil {
		return "", ledger.ErrInvalidTransaction
	}

	year := tx.Date().Year()
	month := int(tx.Date().Month())

	seq, err := s.NextSeq(year, month)
	if err != nil {
		return "", err
	}

	entryID := id.FormatEntryID(year, month, seq)
	newRows := RowsFromTransaction(entryID, tx)

	existing, err := s.ReadMonth(year, month)
	if err != nil {
		return "", err
	}

	allRows := append(existing, newRows...)
	if verrs := ValidateRows(allRows, s.accounts, year, month); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return "", fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}

	journalPath := s.monthPath(year, month)
	if err := os.MkdirAll(filepath.Dir(journalPath), 0o755); err != nil {
		return "", fmt.Errorf("creating journal dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(journalPath); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(journalPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return "", fmt.Errorf("opening journal: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return "", fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendRows(f, newRows); err != nil {
		return "", fmt.Errorf("appending rows: %w", err)
	}

	return entryID, nil
}

// ReadMonth reads all rows for a given year/month. A missing file is an
// empty month, not an error.
func (s *Service) ReadMonth(year, month int) ([]Row, error) {
	path := s.monthPath(year, month)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening journal %s: %w", path, err)
	}
	defer f.Close()

	rows, err := ReadRows(f)
	if err != nil {
		return nil, fmt.Errorf("reading journal %s: %w", path, err)
	}
	return rows, nil
}

// NextSeq returns the next available sequence number for a month.
func (s *Service) NextSeq(year, month int) (int, error) {
	rows, err := s.ReadMonth(year, month)
	if err != nil {
		return 0, err
	}

	maxSeq := 0
	for _, row := range rows {
		_, _, seq, err := id.ParseEntryID(row.RowID)
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1, nil
}

// LoadLedger rebuilds a Ledger from every journal file under the repo root,
// months in chronological order. Every entry passes back through
// ledger.NewTransaction, so a hand-edited file that no longer balances makes
// the whole load fail.
func (s *Service) LoadLedger() (*ledger.Ledger, error) {
	months, err := s.months()
	if err != nil {
		return nil, err
	}

	l := ledger.NewLedger()
	for _, ym := range months {
		rows, err := s.ReadMonth(ym.year, ym.month)
		if err != nil {
			return nil, err
		}
		txs, err := s.buildTransactions(rows)
		if err != nil {
			return nil, fmt.Errorf("journal %04d-%02d: %w", ym.year, ym.month, err)
		}
		if err := l.PostAll(txs); err != nil {
			return nil, fmt.Errorf("journal %04d-%02d: %w", ym.year, ym.month, err)
		}
	}
	return l, nil
}

// buildTransactions regroups rows by entry ID, preserving order of first
// appearance, and reconstructs each group as a validated transaction.
func (s *Service) buildTransactions(rows []Row) ([]*ledger.Transaction, error) {
	groups := make(map[string][]Row)
	var order []string
	for _, row := range rows {
		g := row.EntryID()
		if _, seen := groups[g]; !seen {
			order = append(order, g)
		}
		groups[g] = append(groups[g], row)
	}

	var txs []*ledger.Transaction
	for _, g := range order {
		group := groups[g]
		specs := make([]ledger.PostingSpec, 0, len(group))
		for _, row := range group {
			account, ok := s.accounts.Get(row.Account)
			if !ok {
				return nil, fmt.Errorf("entry %s: unknown account %d", g, row.Account)
			}
			specs = append(specs, ledger.PostingSpec{
				Account:     account,
				Side:        row.Side,
				Amount:      row.Amount,
				Description: row.Description,
				Reference:   row.Reference,
			})
		}
		// The first row carries the entry-level description and date.
		tx, err := ledger.NewTransaction(group[0].Description, group[0].Date, specs, group[0].Reference)
		if err != nil {
			return nil, fmt.Errorf("entry %s: %w", g, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// Verify runs the file-level invariant checks over every journal month under
// the repo root and returns all violations found.
func (s *Service) Verify() ([]ValidationError, error) {
	months, err := s.months()
	if err != nil {
		return nil, err
	}

	var errs []ValidationError
	for _, ym := range months {
		rows, err := s.ReadMonth(ym.year, ym.month)
		if err != nil {
			return nil, err
		}
		errs = append(errs, ValidateRows(rows, s.accounts, ym.year, ym.month)...)
	}
	return errs, nil
}

type yearMonth struct {
	year  int
	month int
}

// months scans <root>/<YYYY>/<MM>/journal.csv and returns the months found,
// sorted chronologically.
func (s *Service) months() ([]yearMonth, error) {
	years, err := os.ReadDir(s.repoRoot)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading repo root: %w", err)
	}

	var out []yearMonth
	for _, ye := range years {
		if !ye.IsDir() {
			continue
		}
		year, err := strconv.Atoi(ye.Name())
		if err != nil || len(ye.Name()) != 4 {
			continue
		}
		monthDirs, err := os.ReadDir(filepath.Join(s.repoRoot, ye.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading year dir %s: %w", ye.Name(), err)
		}
		for _, me := range monthDirs {
			if !me.IsDir() {
				continue
			}
			month, err := strconv.Atoi(me.Name())
			if err != nil || month < 1 || month > 12 {
				continue
			}
			if _, err := os.Stat(s.monthPath(year, month)); err != nil {
				continue
			}
			out = append(out, yearMonth{year: year, month: month})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].year != out[j].year {
			return out[i].year < out[j].year
		}
		return out[i].month < out[j].month
	})
	return out, nil
}

func (s *Service) monthPath(year, month int) string {
	return filepath.Join(s.repoRoot, fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month), "journal.csv")
}
