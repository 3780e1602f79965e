package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/razao-dev/razao/internal/classify"
	"github.com/razao-dev/razao/internal/journal"
	"github.com/razao-dev/razao/internal/money"
)

func newActivityCommand(dir *string, verbose *bool) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Recent entries with their transaction classification",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(*dir, *verbose)
			if err != nil {
				return err
			}
			defer p.Close()

			entries, err := p.Journal.Entries(cmd.Context(), journal.Filter{})
			if err != nil {
				return err
			}

			// Entries arrive date-ascending; show the most recent first.
			cur := p.Config.Ledger.Currency
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DATE\tENTRY\tACTIVITY\tDESCRIPTION\tAMOUNT")
			shown := 0
			for i := len(entries) - 1; i >= 0 && shown < limit; i-- {
				e := entries[i]
				rule := classify.Entry(e)
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					e.Date.Format(dateFlagFormat), e.Number, rule.Label,
					e.Description, money.Format(e.TotalDebit(), cur))
				shown++
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum entries to show")
	return cmd
}
