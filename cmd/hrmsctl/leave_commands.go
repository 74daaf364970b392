package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/workzen/hrms-client/hrms"
)

func leaveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "leave",
		Short:             "Leave application operations",
		PersistentPreRunE: requireSession(a),
	}
	cmd.AddCommand(leaveListCmd(a), leaveTypesCmd(a), leaveBalancesCmd(a), leaveApplyCmd(a), leaveApproveCmd(a), leaveRejectCmd(a), leavePendingCmd(a))
	return cmd
}

func leaveTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the active leave types",
		RunE: func(cmd *cobra.Command, args []string) error {
			types, err := a.client.Leave.Types(cmd.Context())
			if err != nil {
				return err
			}
			if len(types) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No leave types.")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tMAX DAYS\tNEEDS APPROVAL")
			for _, t := range types {
				fmt.Fprintf(w, "%d\t%s\t%d\t%t\n", t.ID, t.Name, t.MaxDaysAllowed, t.RequiresApproval)
			}
			return w.Flush()
		},
	}
}

func leaveListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the caller's leave applications",
		RunE: func(cmd *cobra.Command, args []string) error {
			leaves, err := a.client.Leave.MyLeaves(cmd.Context())
			if err != nil {
				return err
			}
			return printLeaves(cmd, leaves)
		},
	}
}

func leavePendingCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List applications awaiting the caller's approval",
		RunE: func(cmd *cobra.Command, args []string) error {
			leaves, err := a.client.Leave.PendingApprovals(cmd.Context())
			if err != nil {
				return err
			}
			return printLeaves(cmd, leaves)
		},
	}
}

func leaveBalancesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "balances",
		Short: "Show the caller's leave balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			balances, err := a.client.Leave.MyBalances(cmd.Context())
			if err != nil {
				return err
			}
			if len(balances) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No balances.")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tALLOCATED\tUSED\tBALANCE")
			for _, b := range balances {
				fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%.1f\n", b.LeaveType.Name, b.TotalAllocated, b.Used, b.Balance)
			}
			return w.Flush()
		},
	}
}

func leaveApplyCmd(a *app) *cobra.Command {
	var typeID int64
	var start, end, reason string
	var halfDay bool

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply for leave",
		RunE: func(cmd *cobra.Command, args []string) error {
			leave, err := a.client.Leave.Apply(cmd.Context(), hrms.ApplyRequest{
				LeaveTypeID: typeID,
				StartDate:   start,
				EndDate:     end,
				Reason:      reason,
				IsHalfDay:   halfDay,
			})
			if err != nil {
				return err
			}
			if leave != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Application %d submitted (%s).\n", leave.ID, leave.Status)
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&typeID, "type", 0, "leave type id (see 'leave types')")
	cmd.Flags().StringVar(&start, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "to", "", "end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&reason, "reason", "", "reason")
	cmd.Flags().BoolVar(&halfDay, "half-day", false, "half day leave")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func leaveApproveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "approve <id>",
		Short: "Approve a leave application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid application id %q", args[0])
			}
			leave, err := a.client.Leave.Approve(cmd.Context(), id)
			if err != nil {
				return err
			}
			if leave != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Application %d: %s\n", leave.ID, leave.Status)
			}
			return nil
		},
	}
}

func leaveRejectCmd(a *app) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "reject <id>",
		Short: "Reject a leave application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid application id %q", args[0])
			}
			leave, err := a.client.Leave.Reject(cmd.Context(), id, reason)
			if err != nil {
				return err
			}
			if leave != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Application %d: %s\n", leave.ID, leave.Status)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&reason, "reason", "", "rejection reason")
	_ = cmd.MarkFlagRequired("reason")
	return cmd
}

func printLeaves(cmd *cobra.Command, leaves []hrms.LeaveApplication) error {
	if len(leaves) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No leave applications.")
		return nil
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tFROM\tTO\tDAYS\tSTATUS")
	for _, l := range leaves {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.1f\t%s\n", l.ID, l.LeaveType.Name, l.StartDate, l.EndDate, l.TotalDays, l.Status)
	}
	return w.Flush()
}
