package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/logspect/logspect-client/pkg/listview"
)

func newHistoryCommand(a *app) *cobra.Command {
	var (
		all      bool
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show login history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source := a.api.Auth.MyLoginHistorySource()
			if all {
				source = a.api.Auth.AllLoginHistorySource()
			}

			list := listview.NewFetcher(source, listview.Config{
				Mode:     listview.ClientPaginated,
				PageSize: pageSize,
			})

			ctx := cmd.Context()
			if err := fetchPage(ctx, list, nil, page); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			table := newTable(out)
			fmt.Fprintln(table, "ID\tUSER\tTIME\tRESULT")
			for _, record := range list.Visible() {
				result := "success"
				if !record.Status {
					result = "failure"
				}
				fmt.Fprintf(table, "%d\t%d\t%s\t%s\n",
					record.LoginID, record.UserID, formatTime(record.LoginTime), result)
			}
			table.Flush()
			printFooter(out, list)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "every user's history (admin)")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 10, "rows per page")

	return cmd
}
