package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/workzen/hrms-client/gateway"
	"github.com/workzen/hrms-client/internal/utils"
	"github.com/workzen/hrms-client/navigation"
)

func loginCmd(a *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the HRMS backend and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			displayAppname(a.cfg.GetAppName())

			reader := bufio.NewReader(cmd.InOrStdin())
			if email == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Email: ")
				line, err := reader.ReadString('\n')
				if err != nil {
					return err
				}
				email = strings.TrimSpace(line)
			}
			if password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Password: ")
				line, err := reader.ReadString('\n')
				if err != nil {
					return err
				}
				password = strings.TrimSpace(line)
			}

			resp, err := a.client.Auth.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", resp.User.FullName(), resp.User.Role)
			if utils.Value(resp.IsFirstLogin) {
				fmt.Fprintln(cmd.OutOrStdout(), "First login detected: change your password with 'hrmsctl login change-password'.")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	cmd.AddCommand(changePasswordCmd(a))
	return cmd
}

func changePasswordCmd(a *app) *cobra.Command {
	var current, next string

	cmd := &cobra.Command{
		Use:   "change-password",
		Short: "Change the current account's password",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.Auth.ChangePassword(cmd.Context(), current, next); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Password changed.")
			return nil
		},
	}
	cmd.Flags().StringVar(&current, "current", "", "current password")
	cmd.Flags().StringVar(&next, "new", "", "new password")
	_ = cmd.MarkFlagRequired("current")
	_ = cmd.MarkFlagRequired("new")
	return cmd
}

func logoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.store.Logout()
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func whoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := a.store.User()
			if user == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
				return nil
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "User:  %s <%s>\n", user.FullName(), user.Email)
			fmt.Fprintf(out, "Role:  %s\n", user.Role)
			if user.Department != nil {
				fmt.Fprintf(out, "Dept:  %s\n", utils.Value(user.Department))
			}
			if expiry, ok := gateway.TokenExpiry(a.store.AccessToken()); ok {
				fmt.Fprintf(out, "Token: expires %s\n", expiry.Local().Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}

func openCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "open <path>",
		Short: "Resolve what the current session would see at an application path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			decision := a.nav.Resolve(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", args[0], decision)
			return nil
		},
	}
}

func menuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Show the navigation entries visible to the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := navigation.VisibleMenu(a.store, navigation.DefaultMenu())
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No accessible entries. Are you logged in?")
				return nil
			}
			for _, item := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", item.Name, item.Path)
			}
			return nil
		},
	}
}
