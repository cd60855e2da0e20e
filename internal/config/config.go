// Package config reads and writes tally.yaml, the per-books-repo settings
// file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file at the root of a books repo.
const FileName = "tally.yaml"

// Config represents the top-level tally.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Fiscal   FiscalConfig   `yaml:"fiscal"`
	Import   ImportConfig   `yaml:"import"`
	Git      GitConfig      `yaml:"git"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name       string `yaml:"name"`
	EntityType string `yaml:"entity_type"`
}

// FiscalConfig defines the fiscal year boundaries.
type FiscalConfig struct {
	YearStart string `yaml:"year_start"` // "MM-DD" format, e.g. "01-01"
}

// ImportConfig controls statement imports.
type ImportConfig struct {
	BankAccount     int `yaml:"bank_account"`     // chart number of the bank account statements describe
	SuspenseAccount int `yaml:"suspense_account"` // chart number imports post against until categorized
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a tally.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new books repo.
func Default(businessName, entityType string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name:       businessName,
			EntityType: entityType,
		},
		Fiscal: FiscalConfig{
			YearStart: "01-01",
		},
		Import: ImportConfig{
			BankAccount:     1010,
			SuspenseAccount: 1090,
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Tally",
			AuthorEmail: "books@tally.dev",
		},
	}
}
