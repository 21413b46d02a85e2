package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/logspect/logspect-client/pkg/listview"
)

func newLogsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Browse and manage parsed log entries",
	}
	cmd.AddCommand(newLogsListCommand(a), newLogsDeleteCommand(a))
	return cmd
}

func newLogsListCommand(a *app) *cobra.Command {
	var (
		search      string
		severity    string
		environment string
		category    string
		teamID      int64
		startDate   string
		endDate     string
		mine        bool
		scope       string
		page        int
		pageSize    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List log entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source := a.api.Logs.Source()
			if mine {
				source = a.api.Logs.MineSource()
			}

			list := listview.NewFetcher(source, listview.Config{
				Mode:     listview.ServerPaginated,
				PageSize: pageSize,
			})

			filters := map[string]string{
				"search":           search,
				"severity_code":    severity,
				"environment_code": environment,
				"category_name":    category,
				"start_date":       startDate,
				"end_date":         endDate,
			}
			if teamID > 0 {
				filters["team_id"] = strconv.FormatInt(teamID, 10)
			}
			if mine && scope != "" {
				filters["scope"] = scope
			}

			ctx := cmd.Context()
			if err := fetchPage(ctx, list, filters, page); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			table := newTable(out)
			fmt.Fprintln(table, "ID\tTIMESTAMP\tSEVERITY\tENV\tCATEGORY\tMESSAGE")
			for _, entry := range list.Visible() {
				fmt.Fprintf(table, "%d\t%s\t%s\t%s\t%s\t%s\n",
					entry.LogID,
					formatTime(entry.LogTimestamp),
					orDash(entry.SeverityCode),
					orDash(entry.EnvironmentCode),
					orDash(entry.CategoryName),
					entry.MessageLine)
			}
			table.Flush()
			printFooter(out, list)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "substring match on the message line")
	cmd.Flags().StringVar(&severity, "severity", "", "severity code (e.g. ERROR)")
	cmd.Flags().StringVar(&environment, "environment", "", "environment code (e.g. PROD)")
	cmd.Flags().StringVar(&category, "category", "", "category name")
	cmd.Flags().Int64Var(&teamID, "team", 0, "team id")
	cmd.Flags().StringVar(&startDate, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "end date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&mine, "mine", false, "only my own or my team's entries")
	cmd.Flags().StringVar(&scope, "scope", "me", "with --mine: me or team")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 10, "rows per page")

	return cmd
}

func newLogsDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Permanently delete one log entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid log id %q", args[0])
			}
			if err := a.api.Logs.Delete(cmd.Context(), logID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted log %d\n", logID)
			return nil
		},
	}
}
