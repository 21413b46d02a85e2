package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/logspect/logspect-client/pkg/listview"
)

func newAuditsCommand(a *app) *cobra.Command {
	var (
		userID     int64
		actionType string
		startTime  string
		endTime    string
		page       int
		pageSize   int
	)

	cmd := &cobra.Command{
		Use:   "audits",
		Short: "Browse the admin audit trail",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := listview.NewFetcher(a.api.Audits.Source(), listview.Config{
				Mode:     listview.ClientPaginated,
				PageSize: pageSize,
			})

			filters := map[string]string{
				"action_type": actionType,
				"start_time":  startTime,
				"end_time":    endTime,
			}
			if userID > 0 {
				filters["user_id"] = strconv.FormatInt(userID, 10)
			}

			ctx := cmd.Context()
			if err := fetchPage(ctx, list, filters, page); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			table := newTable(out)
			fmt.Fprintln(table, "ID\tUSER\tACTION\tTIME")
			for _, record := range list.Visible() {
				fmt.Fprintf(table, "%d\t%d\t%s\t%s\n",
					record.ActionID, record.UserID, record.ActionType, formatTime(record.ActionTime))
			}
			table.Flush()
			printFooter(out, list)
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "filter by user id")
	cmd.Flags().StringVar(&actionType, "action", "", "filter by action type")
	cmd.Flags().StringVar(&startTime, "start", "", "start time (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endTime, "end", "", "end time (YYYY-MM-DD)")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 10, "rows per page")

	return cmd
}
