package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/razao-dev/razao/internal/auditlog"
	"github.com/razao-dev/razao/internal/journal"
	"github.com/razao-dev/razao/internal/model"
)

const dateFlagFormat = "2006-01-02"

func newPostCommand(dir *string, verbose *bool) *cobra.Command {
	var dateStr, description, documentRef string
	var debits, credits []string

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post a balanced journal entry",
		Long: `Post a balanced journal entry.

Lines are given as repeated --debit/--credit flags in code=amount form:

  razao post --date 2025-01-28 --desc "Salários de Janeiro" \
    --debit 63.1=80000 --credit 43.1=80000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(*dir, *verbose)
			if err != nil {
				return err
			}
			defer p.Close()

			date, err := time.Parse(dateFlagFormat, dateStr)
			if err != nil {
				return fmt.Errorf("parsing --date %q: %w", dateStr, err)
			}

			lines, err := parseLines(debits, credits)
			if err != nil {
				return err
			}

			entry, err := p.Journal.Post(cmd.Context(), journal.Draft{
				Date:        date,
				Description: description,
				DocumentRef: documentRef,
				Lines:       lines,
			})
			if err != nil {
				return err
			}

			if err := appendAudit(p.Root, "post", entry); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Posted entry %s (%s)\n",
				entry.Number, entry.TotalDebit().StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "entry date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&description, "desc", "", "entry description (required)")
	cmd.Flags().StringVar(&documentRef, "ref", "", "source document reference")
	cmd.Flags().StringArrayVar(&debits, "debit", nil, "debit line code=amount (repeatable)")
	cmd.Flags().StringArrayVar(&credits, "credit", nil, "credit line code=amount (repeatable)")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("desc")

	return cmd
}

// parseLines converts code=amount flag values into entry lines.
func parseLines(debits, credits []string) ([]model.EntryLine, error) {
	var lines []model.EntryLine
	for _, spec := range debits {
		code, amount, err := parseLineSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("--debit %q: %w", spec, err)
		}
		lines = append(lines, model.EntryLine{AccountCode: code, Debit: amount})
	}
	for _, spec := range credits {
		code, amount, err := parseLineSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("--credit %q: %w", spec, err)
		}
		lines = append(lines, model.EntryLine{AccountCode: code, Credit: amount})
	}
	return lines, nil
}

func parseLineSpec(spec string) (string, decimal.Decimal, error) {
	code, amountStr, ok := strings.Cut(spec, "=")
	if !ok {
		return "", decimal.Zero, fmt.Errorf("expected code=amount")
	}
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return "", decimal.Zero, fmt.Errorf("parsing amount %q: %w", amountStr, err)
	}
	return code, amount, nil
}

// appendAudit records an accepted posting in the project audit log.
func appendAudit(root, action string, entry model.JournalEntry) error {
	return auditlog.Append(root, []auditlog.Entry{{
		Timestamp:   time.Now().UTC(),
		Actor:       "cli",
		Action:      action,
		EntryNumber: entry.Number,
		Amount:      entry.TotalDebit().StringFixed(2),
		Details:     entry.Description,
	}})
}
