// Package importer turns bank statement CSVs into balanced ledger
// transactions. Each statement line becomes a two-posting entry between the
// configured bank account and a suspense account; categorization out of
// suspense happens later, by hand.
package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/ledger"
)

// StatementLine is one parsed row of a bank statement. Amount keeps the
// bank's sign convention: negative for money out, positive for money in.
type StatementLine struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Reference   string
	Type        string // bank transaction type (ACH_DEBIT, etc.)
}

// Parser converts a bank CSV file into StatementLines.
type Parser interface {
	Parse(r io.Reader) ([]StatementLine, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// FileInfo describes a CSV file in the import directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&ChaseParser{})
	return r
}

// Transactions converts statement lines into balanced two-posting
// transactions: money in debits the bank account and credits suspense, money
// out debits suspense and credits the bank account. Zero-amount lines are
// skipped, since the ledger rejects zero postings.
func Transactions(lines []StatementLine, bank, suspense ledger.Account) ([]*ledger.Transaction, error) {
	var txs []*ledger.Transaction
	for i, line := range lines {
		if line.Amount.IsZero() {
			continue
		}

		amount := line.Amount.Abs()
		bankSide := ledger.SideDebit
		if line.Amount.IsNegative() {
			bankSide = ledger.SideCredit
		}

		tx, err := ledger.NewTransaction(line.Description, line.Date, []ledger.PostingSpec{
			{Account: bank, Side: bankSide, Amount: amount},
			{Account: suspense, Side: bankSide.Opposite(), Amount: amount},
		}, line.Reference)
		if err != nil {
			return nil, fmt.Errorf("statement line %d (%s): %w", i+1, line.Description, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// importDir is the subdirectory for import CSVs.
const importDir = "import"

// processedDir is the subdirectory for processed CSVs.
const processedDir = "import/processed"

// Scan returns CSV files in <repoRoot>/import/.
func Scan(repoRoot string) ([]FileInfo, error) {
	dir := filepath.Join(repoRoot, importDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// MarkProcessed moves a file from import/ to import/processed/.
func MarkProcessed(repoRoot, fileName string) error {
	src := filepath.Join(repoRoot, importDir, fileName)
	dstDir := filepath.Join(repoRoot, processedDir)

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	dst := filepath.Join(dstDir, fileName)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}
