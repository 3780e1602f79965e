package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/razao-dev/razao/internal/journal"
)

func newEntriesCommand(dir *string, verbose *bool) *cobra.Command {
	var fromStr, toStr, account string

	cmd := &cobra.Command{
		Use:   "entries",
		Short: "List posted journal entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(*dir, *verbose)
			if err != nil {
				return err
			}
			defer p.Close()

			filter, err := parseFilter(fromStr, toStr)
			if err != nil {
				return err
			}
			filter.AccountCode = account

			entries, err := p.Journal.Entries(cmd.Context(), filter)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NUMBER\tDATE\tDESCRIPTION\tREF\tAMOUNT")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					e.Number, e.Date.Format(dateFlagFormat), e.Description,
					e.DocumentRef, e.TotalDebit().StringFixed(2))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "start date YYYY-MM-DD")
	cmd.Flags().StringVar(&toStr, "to", "", "end date YYYY-MM-DD")
	cmd.Flags().StringVar(&account, "account", "", "only entries touching this account code")

	return cmd
}

// parseFilter builds a journal filter from optional date flags.
func parseFilter(fromStr, toStr string) (journal.Filter, error) {
	var f journal.Filter
	if fromStr != "" {
		from, err := time.Parse(dateFlagFormat, fromStr)
		if err != nil {
			return f, fmt.Errorf("parsing --from %q: %w", fromStr, err)
		}
		f.From = from
	}
	if toStr != "" {
		to, err := time.Parse(dateFlagFormat, toStr)
		if err != nil {
			return f, fmt.Errorf("parsing --to %q: %w", toStr, err)
		}
		f.To = to
	}
	return f, nil
}
