package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func departmentCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "department",
		Short:             "Department lookup",
		PersistentPreRunE: requireSession(a),
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List departments",
		RunE: func(cmd *cobra.Command, args []string) error {
			departments, err := a.client.Departments.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(departments) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No departments.")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tACTIVE\tMANAGER")
			for _, d := range departments {
				manager := ""
				if d.Manager != nil {
					manager = d.Manager.FirstName + " " + d.Manager.LastName
				}
				fmt.Fprintf(w, "%d\t%s\t%t\t%s\n", d.ID, d.Name, d.IsActive, manager)
			}
			return w.Flush()
		},
	})
	return cmd
}

func designationCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "designation",
		Short:             "Designation lookup",
		PersistentPreRunE: requireSession(a),
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List designations",
		RunE: func(cmd *cobra.Command, args []string) error {
			designations, err := a.client.Designations.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(designations) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No designations.")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tLEVEL\tACTIVE")
			for _, d := range designations {
				fmt.Fprintf(w, "%d\t%s\t%d\t%t\n", d.ID, d.Name, d.Level, d.IsActive)
			}
			return w.Flush()
		},
	})
	return cmd
}
