package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/razao-dev/razao/internal/ledger"
	"github.com/razao-dev/razao/internal/money"
	"github.com/razao-dev/razao/internal/reports"
)

func newReportCommand(dir *string, verbose *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build financial statements",
	}

	cmd.AddCommand(newTrialBalanceCommand(dir, verbose))
	cmd.AddCommand(newBalanceSheetCommand(dir, verbose))
	cmd.AddCommand(newIncomeCommand(dir, verbose))
	cmd.AddCommand(newCashFlowCommand(dir, verbose))
	cmd.AddCommand(newLedgerCommand(dir, verbose))

	return cmd
}

// reportPeriod opens the project and fetches the entries in the flagged
// date range.
func reportPeriod(cmd *cobra.Command, dir string, verbose bool, fromStr, toStr string) (*Project, ledger.BalanceMap, error) {
	p, err := openProject(dir, verbose)
	if err != nil {
		return nil, nil, err
	}

	filter, err := parseFilter(fromStr, toStr)
	if err != nil {
		p.Close()
		return nil, nil, err
	}

	entries, err := p.Journal.Entries(cmd.Context(), filter)
	if err != nil {
		p.Close()
		return nil, nil, err
	}

	return p, ledger.Balances(entries), nil
}

func addPeriodFlags(cmd *cobra.Command, fromStr, toStr *string) {
	cmd.Flags().StringVar(fromStr, "from", "", "start date YYYY-MM-DD")
	cmd.Flags().StringVar(toStr, "to", "", "end date YYYY-MM-DD")
}

func newTrialBalanceCommand(dir *string, verbose *bool) *cobra.Command {
	var fromStr, toStr string

	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Trial balance with class totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, balances, err := reportPeriod(cmd, *dir, *verbose, fromStr, toStr)
			if err != nil {
				return err
			}
			defer p.Close()

			tb, err := reports.BuildTrialBalance(p.Chart, balances)
			if err != nil {
				return err
			}

			cur := p.Config.Ledger.Currency
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tACCOUNT\tCLASS\tDEBIT\tCREDIT")
			for _, row := range tb.Rows {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					row.Code, row.Name, row.Class,
					money.Format(row.Debit, cur), money.Format(row.Credit, cur))
			}
			fmt.Fprintf(tw, "\tTOTAL\t\t%s\t%s\n",
				money.Format(tb.TotalDebit, cur), money.Format(tb.TotalCredit, cur))
			return tw.Flush()
		},
	}

	addPeriodFlags(cmd, &fromStr, &toStr)
	return cmd
}

func newBalanceSheetCommand(dir *string, verbose *bool) *cobra.Command {
	var fromStr, toStr string

	cmd := &cobra.Command{
		Use:   "balance-sheet",
		Short: "Balance sheet (assets, liabilities, equity)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, balances, err := reportPeriod(cmd, *dir, *verbose, fromStr, toStr)
			if err != nil {
				return err
			}
			defer p.Close()

			bs, err := reports.BuildBalanceSheet(p.Chart, balances)
			if err != nil {
				return err
			}

			cur := p.Config.Ledger.Currency
			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

			printSection := func(title string, items []reports.AccountAmount) {
				fmt.Fprintf(tw, "%s\t\t\n", title)
				for _, it := range items {
					fmt.Fprintf(tw, "  %s\t%s\t%s\n", it.Code, it.Name, money.Format(it.Amount, cur))
				}
			}
			printSection("ASSETS", bs.Assets)
			fmt.Fprintf(tw, "  \tTotal assets\t%s\n", money.Format(bs.TotalAssets, cur))
			printSection("LIABILITIES", bs.Liabilities)
			fmt.Fprintf(tw, "  \tTotal liabilities\t%s\n", money.Format(bs.TotalLiabilities, cur))
			printSection("EQUITY", bs.Equity)
			fmt.Fprintf(tw, "  \tResult for the period\t%s\n", money.Format(bs.NetIncome, cur))
			fmt.Fprintf(tw, "  \tTotal equity\t%s\n", money.Format(bs.DerivedEquity, cur))
			return tw.Flush()
		},
	}

	addPeriodFlags(cmd, &fromStr, &toStr)
	return cmd
}

func newIncomeCommand(dir *string, verbose *bool) *cobra.Command {
	var fromStr, toStr string

	cmd := &cobra.Command{
		Use:   "income",
		Short: "Income statement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, balances, err := reportPeriod(cmd, *dir, *verbose, fromStr, toStr)
			if err != nil {
				return err
			}
			defer p.Close()

			is, err := reports.BuildIncomeStatement(p.Chart, balances)
			if err != nil {
				return err
			}

			cur := p.Config.Ledger.Currency
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "REVENUE\t\t")
			for _, it := range is.Revenue {
				fmt.Fprintf(tw, "  %s\t%s\t%s\n", it.Code, it.Name, money.Format(it.Amount, cur))
			}
			fmt.Fprintf(tw, "  \tTotal revenue\t%s\n", money.Format(is.TotalRevenue, cur))
			fmt.Fprintln(tw, "EXPENSES\t\t")
			for _, it := range is.Expenses {
				fmt.Fprintf(tw, "  %s\t%s\t%s\n", it.Code, it.Name, money.Format(it.Amount, cur))
			}
			fmt.Fprintf(tw, "  \tTotal expenses\t%s\n", money.Format(is.TotalExpenses, cur))
			fmt.Fprintf(tw, "  \tNET INCOME\t%s\n", money.Format(is.NetIncome, cur))
			return tw.Flush()
		},
	}

	addPeriodFlags(cmd, &fromStr, &toStr)
	return cmd
}

func newCashFlowCommand(dir *string, verbose *bool) *cobra.Command {
	var fromStr, toStr string

	cmd := &cobra.Command{
		Use:   "cash-flow",
		Short: "Cash-flow statement from cash/bank movements",
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

			entries, err := p.Journal.Entries(cmd.Context(), filter)
			if err != nil {
				return err
			}

			cf, err := reports.BuildCashFlow(p.Chart, entries)
			if err != nil {
				return err
			}

			cur := p.Config.Ledger.Currency
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			printFlow := func(title string, items []reports.FlowItem) {
				fmt.Fprintf(tw, "%s\t\t\t\n", title)
				for _, it := range items {
					fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n",
						it.Date.Format(dateFlagFormat), it.EntryNumber, it.Label,
						money.Format(it.Amount, cur))
				}
			}
			printFlow("OPERATING", cf.Operating)
			fmt.Fprintf(tw, "  \t\tNet operating\t%s\n", money.Format(cf.NetOperating, cur))
			printFlow("INVESTING", cf.Investing)
			fmt.Fprintf(tw, "  \t\tNet investing\t%s\n", money.Format(cf.NetInvesting, cur))
			printFlow("FINANCING", cf.Financing)
			fmt.Fprintf(tw, "  \t\tNet financing\t%s\n", money.Format(cf.NetFinancing, cur))
			fmt.Fprintf(tw, "  \t\tNET CASH FLOW\t%s\n", money.Format(cf.NetCashFlow, cur))
			return tw.Flush()
		},
	}

	addPeriodFlags(cmd, &fromStr, &toStr)
	return cmd
}

func newLedgerCommand(dir *string, verbose *bool) *cobra.Command {
	var fromStr, toStr string

	cmd := &cobra.Command{
		Use:   "ledger <account-code>",
		Short: "Single-account register with running balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			p, err := openProject(*dir, *verbose)
			if err != nil {
				return err
			}
			defer p.Close()

			acct, ok := p.Chart.Get(code)
			if !ok {
				return fmt.Errorf("unknown account %s", code)
			}

			filter, err := parseFilter(fromStr, toStr)
			if err != nil {
				return err
			}

			entries, err := p.Journal.Entries(cmd.Context(), filter)
			if err != nil {
				return err
			}

			rows := ledger.Register(entries, code)

			cur := p.Config.Ledger.Currency
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", acct.Code, acct.Name, acct.Class)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DATE\tENTRY\tDESCRIPTION\tDEBIT\tCREDIT\tBALANCE")
			for _, row := range rows {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					row.Date.Format(dateFlagFormat), row.EntryNumber, row.Description,
					money.Format(row.Debit, cur), money.Format(row.Credit, cur),
					money.Format(row.Balance, cur))
			}
			return tw.Flush()
		},
	}

	addPeriodFlags(cmd, &fromStr, &toStr)
	return cmd
}
