package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/workzen/hrms-client/hrms"
)

func employeeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "employee",
		Short:             "Employee directory operations",
		PersistentPreRunE: requireSession(a),
	}
	cmd.AddCommand(employeeListCmd(a), employeeGetCmd(a), employeeStatsCmd(a))
	return cmd
}

func employeeListCmd(a *app) *cobra.Command {
	var page, size int
	var keyword string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees (ADMIN/HR_MANAGER)",
		RunE: func(cmd *cobra.Command, args []string) error {
			request := hrms.PageRequest{Page: page, Size: size}
			var result *hrms.Page[hrms.Employee]
			var err error
			if keyword != "" {
				result, err = a.client.Employees.Search(cmd.Context(), keyword, request)
			} else {
				result, err = a.client.Employees.List(cmd.Context(), request)
			}
			if err != nil {
				return err
			}
			if result == nil || len(result.Content) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No employees found.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCODE\tNAME\tEMAIL\tDEPARTMENT\tSTATUS")
			for _, e := range result.Content {
				fmt.Fprintf(w, "%d\t%s\t%s %s\t%s\t%s\t%s\n",
					e.ID, e.EmployeeID, e.FirstName, e.LastName, e.Email, e.Department, e.Status)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Page %d/%d (%d total)\n", page+1, result.TotalPages, result.TotalElements)
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 0, "page number (zero-based)")
	cmd.Flags().IntVar(&size, "size", 20, "page size")
	cmd.Flags().StringVar(&keyword, "search", "", "search keyword")
	return cmd
}

func employeeGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid employee id %q", args[0])
			}
			e, err := a.client.Employees.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			if e == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Employee not found.")
				return nil
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s (%s)\n", e.FirstName, e.LastName, e.EmployeeID)
			fmt.Fprintf(out, "Email:       %s\n", e.Email)
			fmt.Fprintf(out, "Department:  %s\n", e.Department)
			fmt.Fprintf(out, "Designation: %s\n", e.Designation)
			fmt.Fprintf(out, "Status:      %s\n", e.Status)
			if e.Manager != nil {
				fmt.Fprintf(out, "Manager:     %s %s\n", e.Manager.FirstName, e.Manager.LastName)
			}
			return nil
		},
	}
}

func employeeStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show headcount statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := a.client.Employees.Statistics(cmd.Context())
			if err != nil {
				return err
			}
			if stats == nil {
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %d  Active: %d  Inactive: %d\n",
				stats.TotalEmployees, stats.ActiveEmployees, stats.InactiveEmployees)
			return nil
		},
	}
}
