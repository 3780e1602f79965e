package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/razao-dev/razao/internal/accounts"
	"github.com/razao-dev/razao/internal/config"
	"github.com/razao-dev/razao/internal/store"
)

func newInitCommand(dir *string) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new razao project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(*dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(absDir, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runInit(dir, name string) error {
	// Create directory structure.
	dirs := []string{
		"accounts",
		"logs",
		"import",
		filepath.Join("import", "processed"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write razao.yaml.
	cfg := config.Default(name)
	if err := config.Save(filepath.Join(dir, configFile), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write the default PGC chart of accounts.
	svc, err := accounts.NewService(accounts.DefaultChart())
	if err != nil {
		return fmt.Errorf("building default chart: %w", err)
	}
	if err := svc.Save(filepath.Join(dir, cfg.Ledger.ChartFile)); err != nil {
		return err
	}

	// Create the journal database with its schema.
	db, err := store.Open(filepath.Join(dir, cfg.Ledger.DatabaseFile), newLogger(false))
	if err != nil {
		return err
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}

	// Write .gitignore.
	gitignore := "*.db\nlogs/\nimport/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	fmt.Printf("Initialized razao project for %s at %s\n", name, dir)
	return nil
}
