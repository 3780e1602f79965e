package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/razao-dev/razao/internal/importer"
	"github.com/razao-dev/razao/internal/journal"
	"github.com/razao-dev/razao/internal/model"
)

func newImportCommand(dir *string, verbose *bool) *cobra.Command {
	var format string
	var keep bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Capture bank statement CSVs from the import directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(*dir, *verbose)
			if err != nil {
				return err
			}
			defer p.Close()

			parser := importer.DefaultRegistry().Get(format)
			if parser == nil {
				return fmt.Errorf("unknown statement format %q", format)
			}

			files, err := importer.Scan(p.Root)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no statement files to import")
				return nil
			}

			for _, f := range files {
				posted, err := importFile(cmd, p, parser, f)
				if err != nil {
					return fmt.Errorf("importing %s: %w", f.Name, err)
				}
				if !keep {
					if err := importer.MarkProcessed(p.Root, f.Name); err != nil {
						return err
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d entries posted\n", f.Name, posted)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "bai", "statement format")
	cmd.Flags().BoolVar(&keep, "keep", false, "leave files in the import directory")
	return cmd
}

// importFile posts one journal entry per statement transaction. An
// inflow debits the bank account and credits the category counterpart;
// an outflow does the reverse.
func importFile(cmd *cobra.Command, p *Project, parser importer.Parser, f importer.FileInfo) (int, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	txs, err := parser.Parse(file)
	if err != nil {
		return 0, err
	}

	bank := p.Config.Import.BankAccount
	posted := 0
	for _, tx := range txs {
		counterpart, err := counterpartFor(p, tx)
		if err != nil {
			return posted, err
		}

		var draft journal.Draft
		if tx.Amount.IsNegative() {
			draft = journal.BalancedPair(tx.Date, tx.Description, tx.Reference, counterpart, bank, tx.Amount.Neg())
		} else {
			draft = journal.BalancedPair(tx.Date, tx.Description, tx.Reference, bank, counterpart, tx.Amount)
		}

		entry, err := p.Journal.Post(cmd.Context(), draft)
		if err != nil {
			return posted, fmt.Errorf("transaction %s: %w", tx.Reference, err)
		}
		if err := appendAudit(p.Root, "import", entry); err != nil {
			return posted, err
		}
		posted++
	}
	return posted, nil
}

func counterpartFor(p *Project, tx model.BankTransaction) (string, error) {
	code, ok := p.Config.Import.Categories[tx.Category]
	if !ok {
		return "", fmt.Errorf("no account mapped for category %q", tx.Category)
	}
	if !p.Chart.Exists(code) {
		return "", fmt.Errorf("category %q maps to unknown account %s", tx.Category, code)
	}
	return code, nil
}
