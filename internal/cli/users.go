package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/logspect/logspect-client/pkg/api"
	"github.com/logspect/logspect-client/pkg/listview"
)

func newUsersCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage accounts",
	}
	cmd.AddCommand(
		newUsersMeCommand(a),
		newUsersListCommand(a),
		newUsersRegisterCommand(a),
		newUsersUpdateCommand(a),
		newUsersDeleteCommand(a),
	)
	return cmd
}

func newUsersMeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the current account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.api.Users.Me(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:     %d\n", user.UserID)
			fmt.Fprintf(out, "Name:   %s %s\n", user.FirstName, user.LastName)
			fmt.Fprintf(out, "Email:  %s\n", user.Email)
			fmt.Fprintf(out, "Phone:  %s\n", user.PhoneNo)
			fmt.Fprintf(out, "Role:   %s\n", orDash(user.UserRole))
			if user.TeamID > 0 {
				fmt.Fprintf(out, "Team:   %d\n", user.TeamID)
			}
			return nil
		},
	}
}

func newUsersListCommand(a *app) *cobra.Command {
	var (
		search   string
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every account (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := listview.NewFetcher(a.api.Users.AllSource(), listview.Config{
				Mode:     listview.ClientPaginated,
				PageSize: pageSize,
			})

			ctx := cmd.Context()
			if err := fetchPage(ctx, list, map[string]string{"search": search}, page); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			table := newTable(out)
			fmt.Fprintln(table, "ID\tNAME\tEMAIL\tROLE\tTEAM\tACTIVE")
			for _, user := range list.Visible() {
				active := "yes"
				if !user.IsActive {
					active = "no"
				}
				fmt.Fprintf(table, "%d\t%s %s\t%s\t%s\t%d\t%s\n",
					user.UserID, user.FirstName, user.LastName,
					user.Email, orDash(user.UserRole), user.TeamID, active)
			}
			table.Flush()
			printFooter(out, list)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "substring match on name or email")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 10, "rows per page")

	return cmd
}

func newUsersRegisterCommand(a *app) *cobra.Command {
	var payload api.UserCreate

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.api.Users.Register(cmd.Context(), payload)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created user %d (%s)\n", user.UserID, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&payload.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&payload.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&payload.PhoneNo, "phone", "", "phone number")
	cmd.Flags().StringVar(&payload.Email, "email", "", "email address")
	cmd.Flags().StringVar(&payload.Username, "username", "", "username")
	cmd.Flags().StringVar(&payload.UserRole, "role", "", "role (admin or user)")
	cmd.Flags().StringVar(&payload.Password, "password", "", "initial password")
	cmd.MarkFlagRequired("first-name")
	cmd.MarkFlagRequired("phone")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func newUsersUpdateCommand(a *app) *cobra.Command {
	var (
		role     string
		teamID   int64
		activate bool
		suspend  bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an account (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}

			// Only flags the caller set become part of the partial update
			var payload api.UserUpdate
			if cmd.Flags().Changed("role") {
				payload.UserRole = &role
			}
			if cmd.Flags().Changed("team") {
				payload.TeamID = &teamID
			}
			if activate {
				v := true
				payload.IsActive = &v
			}
			if suspend {
				v := false
				payload.IsActive = &v
			}

			user, err := a.api.Users.Update(cmd.Context(), userID, payload)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated user %d\n", user.UserID)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "new role")
	cmd.Flags().Int64Var(&teamID, "team", 0, "new team id")
	cmd.Flags().BoolVar(&activate, "activate", false, "mark the account active")
	cmd.Flags().BoolVar(&suspend, "suspend", false, "mark the account inactive")
	cmd.MarkFlagsMutuallyExclusive("activate", "suspend")

	return cmd
}

func newUsersDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}
			if err := a.api.Users.Delete(cmd.Context(), userID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted user %d\n", userID)
			return nil
		},
	}
}
