package commands

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/razao-dev/razao/internal/accounts"
	"github.com/razao-dev/razao/internal/model"
)

func newAccountsCommand(dir *string, verbose *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage the chart of accounts",
	}

	cmd.AddCommand(newAccountsListCommand(dir, verbose))
	cmd.AddCommand(newAccountsAddCommand(dir, verbose))

	return cmd
}

func newAccountsListCommand(dir *string, verbose *bool) *cobra.Command {
	var class string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(*dir, *verbose)
			if err != nil {
				return err
			}
			defer p.Close()

			var accts []model.Account
			if class != "" {
				c, err := accounts.ParseClass(class)
				if err != nil {
					return err
				}
				accts = p.Chart.ByClass(c)
			} else {
				accts = p.Chart.All()
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tNAME\tCLASS")
			for _, a := range accts {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", a.Code, a.Name, a.Class)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&class, "class", "", "filter by PGC class")

	return cmd
}

func newAccountsAddCommand(dir *string, verbose *bool) *cobra.Command {
	var code, name, class, description string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an account to the chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(*dir, *verbose)
			if err != nil {
				return err
			}
			defer p.Close()

			c, err := accounts.ParseClass(class)
			if err != nil {
				return err
			}

			updated, err := p.Chart.Add(model.Account{
				Code:        code,
				Name:        name,
				Class:       c,
				Description: description,
			})
			if err != nil {
				return err
			}

			chartPath := filepath.Join(p.Root, p.Config.Ledger.ChartFile)
			if err := updated.Save(chartPath); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added account %s (%s)\n", code, name)
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "account code, e.g. 63.2 (required)")
	cmd.Flags().StringVar(&name, "name", "", "account name (required)")
	cmd.Flags().StringVar(&class, "class", "", "PGC class (required)")
	cmd.Flags().StringVar(&description, "description", "", "account description")
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("class")

	return cmd
}
