package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/logspect/logspect-client/pkg/api"
	"github.com/logspect/logspect-client/pkg/client"
	"github.com/logspect/logspect-client/pkg/upload"
)

// apiBackend adapts the service bundle to the upload coordinator.
type apiBackend struct {
	c *api.Client
}

func (b apiBackend) MyJoinedTeams(ctx context.Context) ([]api.Team, error) {
	return b.c.Teams.MyJoinedTeams(ctx)
}

func (b apiBackend) Environments(ctx context.Context) ([]api.Environment, error) {
	return b.c.Catalog.Environments(ctx)
}

func (b apiBackend) Upload(ctx context.Context, teamID, environmentID int64, files []api.UploadFile) ([]api.UploadedFile, error) {
	return b.c.Files.Upload(ctx, teamID, environmentID, files)
}

func newUploadCommand(a *app) *cobra.Command {
	var (
		teamID      int64
		environment string
	)

	cmd := &cobra.Command{
		Use:   "upload <file>...",
		Short: "Upload log files as one batch",
		Long: "Upload one or more log files to a team and environment in a single\n" +
			"batch. With a single eligible team the --team flag may be omitted.\n" +
			"Accepted extensions: " + strings.Join(upload.AcceptedExtensions, ", "),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			coord := upload.New(apiBackend{a.api}, upload.Config{})
			if err := coord.Open(ctx); err != nil {
				return fmt.Errorf("load upload prerequisites: %w", err)
			}

			if teamID > 0 {
				coord.SetTeam(teamID)
			}
			if coord.SelectedTeam() == 0 {
				return teamChoiceError(coord.Teams())
			}

			envID, err := resolveEnvironment(coord.Environments(), environment)
			if err != nil {
				return err
			}
			coord.SetEnvironment(envID)

			coord.SelectFiles(upload.FilesFromPaths(args))

			uploaded, err := coord.Submit(ctx)
			if err != nil {
				return fmt.Errorf("upload failed: %s", client.Detail(err, err.Error()))
			}

			out := cmd.OutOrStdout()
			table := newTable(out)
			fmt.Fprintln(table, "ID\tNAME\tSIZE")
			for _, file := range uploaded {
				fmt.Fprintf(table, "%d\t%s\t%s\n",
					file.FileID, file.OriginalName, formatSize(file.FileSizeBytes))
			}
			table.Flush()
			fmt.Fprintf(out, "\nUploaded %d file(s)\n", len(uploaded))
			return nil
		},
	}

	cmd.Flags().Int64Var(&teamID, "team", 0, "destination team id")
	cmd.Flags().StringVarP(&environment, "environment", "e", "", "destination environment code or id (required)")
	cmd.MarkFlagRequired("environment")

	return cmd
}

// teamChoiceError lists the eligible teams when no --team was given and
// more than one is possible.
func teamChoiceError(teams []api.Team) error {
	var b strings.Builder
	b.WriteString("multiple eligible teams, pick one with --team:\n")
	for _, team := range teams {
		fmt.Fprintf(&b, "  %d\t%s\n", team.TeamID, team.TeamName)
	}
	return fmt.Errorf("%s", strings.TrimRight(b.String(), "\n"))
}

// resolveEnvironment matches an environment by numeric id or by code,
// case-insensitively.
func resolveEnvironment(envs []api.Environment, value string) (int64, error) {
	if id, err := strconv.ParseInt(value, 10, 64); err == nil {
		for _, env := range envs {
			if env.EnvironmentID == id {
				return id, nil
			}
		}
	}
	for _, env := range envs {
		if strings.EqualFold(env.EnvironmentCode, value) {
			return env.EnvironmentID, nil
		}
	}

	codes := make([]string, 0, len(envs))
	for _, env := range envs {
		codes = append(codes, env.EnvironmentCode)
	}
	return 0, fmt.Errorf("unknown environment %q (known: %s)", value, strings.Join(codes, ", "))
}
