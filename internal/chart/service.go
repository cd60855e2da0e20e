// Package chart manages the chart of accounts: an in-memory lookup service
// over ledger.Account values plus CSV load/save against a books repository.
package chart

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tally-dev/tally/internal/ledger"
)

// Service provides in-memory lookup over the chart of accounts.
type Service struct {
	accounts []ledger.Account
	byNumber map[int]ledger.Account
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []ledger.Account) *Service {
	byNumber := make(map[int]ledger.Account, len(accounts))
	for _, a := range accounts {
		byNumber[a.Number] = a
	}
	return &Service{accounts: accounts, byNumber: byNumber}
}

// Load reads chart-of-accounts.csv from a books-repo root and returns a
// Service.
func Load(repoRoot string) (*Service, error) {
	path := filepath.Join(repoRoot, "accounts", "chart-of-accounts.csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewService(accts), nil
}

// All returns all accounts.
func (s *Service) All() []ledger.Account {
	return s.accounts
}

// Get returns an account by number.
func (s *Service) Get(number int) (ledger.Account, bool) {
	a, ok := s.byNumber[number]
	return a, ok
}

// Exists reports whether an account number exists.
func (s *Service) Exists(number int) bool {
	_, ok := s.byNumber[number]
	return ok
}

// ByType returns all accounts of the given type.
func (s *Service) ByType(typ ledger.AccountType) []ledger.Account {
	var result []ledger.Account
	for _, a := range s.accounts {
		if a.Type == typ {
			result = append(result, a)
		}
	}
	return result
}

// Add appends a new account, rejecting a duplicate number.
func (s *Service) Add(account ledger.Account) error {
	if s.Exists(account.Number) {
		return fmt.Errorf("account %d already exists", account.Number)
	}
	s.accounts = append(s.accounts, account)
	s.byNumber[account.Number] = account
	return nil
}

// Save writes the chart of accounts to accounts/chart-of-accounts.csv.
func (s *Service) Save(repoRoot string) error {
	dir := filepath.Join(repoRoot, "accounts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	path := filepath.Join(dir, "chart-of-accounts.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.accounts); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}
