package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func performanceCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "performance",
		Short:             "Performance review operations",
		PersistentPreRunE: requireSession(a),
	}
	cmd.AddCommand(performanceListCmd(a))
	return cmd
}

func performanceListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the caller's performance reviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			reviews, err := a.client.Performance.MyReviews(cmd.Context())
			if err != nil {
				return err
			}
			if len(reviews) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No reviews.")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PERIOD\tRATING\tSTATUS\tREVIEWER")
			for _, r := range reviews {
				reviewer := ""
				if r.Reviewer != nil {
					reviewer = r.Reviewer.FirstName + " " + r.Reviewer.LastName
				}
				fmt.Fprintf(w, "%s - %s\t%.1f\t%s\t%s\n", r.ReviewPeriodStart, r.ReviewPeriodEnd, r.OverallRating, r.Status, reviewer)
			}
			return w.Flush()
		},
	}
}
