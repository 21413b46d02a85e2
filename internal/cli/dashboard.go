package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDashboardCommand(a *app) *cobra.Command {
	var mine bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the dashboard summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if mine {
				return runUserDashboard(a, cmd)
			}
			return runAdminDashboard(a, cmd)
		},
	}

	cmd.Flags().BoolVar(&mine, "mine", false, "my personal summary instead of the admin one")
	return cmd
}

func runAdminDashboard(a *app, cmd *cobra.Command) error {
	summary, err := a.api.Dashboard.Summary(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Files uploaded today: %d\n", summary.FilesUploadedToday)
	fmt.Fprintf(out, "Security logs:        %d\n", summary.SecurityLogsCount)

	if len(summary.SeverityDistribution) > 0 {
		fmt.Fprintln(out, "\nSeverity distribution:")
		table := newTable(out)
		for _, slice := range summary.SeverityDistribution {
			fmt.Fprintf(table, "  %s\t%d\n", slice.Name, slice.Value)
		}
		table.Flush()
	}

	if len(summary.ActiveSystems) > 0 {
		fmt.Fprintln(out, "\nMost active systems:")
		table := newTable(out)
		for _, system := range summary.ActiveSystems {
			fmt.Fprintf(table, "  %s\t%d\n", system.System, system.Count)
		}
		table.Flush()
	}

	if len(summary.LogsTrend) > 0 {
		fmt.Fprintln(out, "\nIngestion trend:")
		table := newTable(out)
		for _, point := range summary.LogsTrend {
			fmt.Fprintf(table, "  %s\t%d\n", point.Date, point.Count)
		}
		table.Flush()
	}

	if summary.LastFile != nil {
		fmt.Fprintf(out, "\nLast upload: %s (%s, %s)\n",
			summary.LastFile.Name, formatSize(summary.LastFile.Size), formatTime(summary.LastFile.At))
	}
	return nil
}

func runUserDashboard(a *app, cmd *cobra.Command) error {
	summary, err := a.api.Dashboard.UserSummary(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	stats := summary.PersonalStats
	fmt.Fprintf(out, "Total logs:    %d\n", stats.TotalLogs)
	fmt.Fprintf(out, "Security logs: %d\n", stats.SecurityLogs)
	fmt.Fprintf(out, "Errors:        %d\n", stats.Errors)
	fmt.Fprintf(out, "Warnings:      %d\n", stats.Warnings)
	fmt.Fprintf(out, "Info:          %d\n", stats.Info)

	if summary.RecentFile != nil {
		fmt.Fprintf(out, "\nMost recent upload: %s (%.1f KB, %s)\n",
			summary.RecentFile.Name, summary.RecentFile.SizeKB, formatTime(summary.RecentFile.Timestamp))
	}
	return nil
}
