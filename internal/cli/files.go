package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/logspect/logspect-client/pkg/listview"
)

func newFilesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "Browse and manage uploaded log files",
	}
	cmd.AddCommand(
		newFilesListCommand(a),
		newFilesDeleteCommand(a),
		newFilesArchiveCommand(a),
	)
	return cmd
}

func newFilesListCommand(a *app) *cobra.Command {
	var (
		search   string
		teamID   int64
		mine     bool
		scope    string
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List uploaded files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source := a.api.Files.AllSource()
			if mine {
				source = a.api.Files.MineSource()
			}

			// File lists arrive complete; paging happens locally
			list := listview.NewFetcher(source, listview.Config{
				Mode:     listview.ClientPaginated,
				PageSize: pageSize,
			})

			filters := map[string]string{"search": search}
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
			fmt.Fprintln(table, "ID\tNAME\tSIZE\tTEAM\tUPLOADED\tARCHIVED")
			for _, file := range list.Visible() {
				archived := "no"
				if file.IsArchived {
					archived = "yes"
				}
				fmt.Fprintf(table, "%d\t%s\t%s\t%s\t%s\t%s\n",
					file.FileID,
					file.OriginalName,
					formatSize(file.FileSizeBytes),
					orDash(file.TeamName),
					formatTime(file.UploadedAt),
					archived)
			}
			table.Flush()
			printFooter(out, list)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "substring match on the file name")
	cmd.Flags().Int64Var(&teamID, "team", 0, "team id")
	cmd.Flags().BoolVar(&mine, "mine", false, "only my own or my team's files")
	cmd.Flags().StringVar(&scope, "scope", "me", "with --mine: me or team")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 10, "rows per page")

	return cmd
}

func newFilesDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Permanently delete a file and its parsed entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid file id %q", args[0])
			}
			if err := a.api.Files.Delete(cmd.Context(), fileID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted file %d\n", fileID)
			return nil
		},
	}
}

func newFilesArchiveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "archive <id>",
		Short: "Archive a file without deleting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid file id %q", args[0])
			}
			if err := a.api.Files.Archive(cmd.Context(), fileID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Archived file %d\n", fileID)
			return nil
		},
	}
}
