package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/chart"
	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/gitops"
)

func newInitCommand() *cobra.Command {
	var name string
	var entityType string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new books repository",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if err := runInit(absDir, name, entityType); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized books for %s in %s\n", name, absDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&entityType, "entity-type", "llc_single_member", "entity type")

	return cmd
}

func runInit(dir, name, entityType string) error {
	dirs := []string{
		"accounts",
		"import",
		filepath.Join("import", "processed"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default(name, entityType)
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	svc := chart.NewService(chart.DefaultChart())
	if err := svc.Save(dir); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}

	gitignore := "import/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if cfg.Git.AutoCommit {
		if !gitops.IsRepo(dir) {
			if err := gitops.Init(dir); err != nil {
				return err
			}
		}
		msg := fmt.Sprintf("init: books for %s", name)
		if _, err := gitops.Commit(dir, msg, cfg.Git.AuthorName, cfg.Git.AuthorEmail); err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
	}

	return nil
}
