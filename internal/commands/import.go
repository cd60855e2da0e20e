package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/chart"
	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/importer"
	"github.com/tally-dev/tally/internal/journal"
)

func newImportCommand() *cobra.Command {
	var repoDir string
	var format string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import bank statement CSVs from the import directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(repoDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runImport(cmd, absDir, format)
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "books repository directory")
	cmd.Flags().StringVar(&format, "format", "chase", "statement format")
	return cmd
}

func runImport(cmd *cobra.Command, repoRoot, format string) error {
	parser := importer.DefaultRegistry().Get(format)
	if parser == nil {
		return fmt.Errorf("unknown statement format %q", format)
	}

	cfg, err := config.Load(filepath.Join(repoRoot, config.FileName))
	if err != nil {
		return err
	}

	accounts, err := chart.Load(repoRoot)
	if err != nil {
		return err
	}
	bank, ok := accounts.Get(cfg.Import.BankAccount)
	if !ok {
		return fmt.Errorf("configured bank account %d not in chart", cfg.Import.BankAccount)
	}
	suspense, ok := accounts.Get(cfg.Import.SuspenseAccount)
	if !ok {
		return fmt.Errorf("configured suspense account %d not in chart", cfg.Import.SuspenseAccount)
	}

	files, err := importer.Scan(repoRoot)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to import")
		return nil
	}

	svc := journal.NewService(repoRoot, accounts)
	for _, file := range files {
		f, err := os.Open(file.Path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", file.Name, err)
		}
		lines, err := parser.Parse(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("parsing %s: %w", file.Name, err)
		}

		txs, err := importer.Transactions(lines, bank, suspense)
		if err != nil {
			return fmt.Errorf("building entries from %s: %w", file.Name, err)
		}

		for _, tx := range txs {
			if _, err := svc.Append(tx); err != nil {
				return fmt.Errorf("posting entry from %s: %w", file.Name, err)
			}
		}

		if err := importer.MarkProcessed(repoRoot, file.Name); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries from %s\n", len(txs), file.Name)
	}
	return nil
}
