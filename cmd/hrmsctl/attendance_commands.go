package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func attendanceCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "attendance",
		Short:             "Attendance operations",
		PersistentPreRunE: requireSession(a),
	}
	cmd.AddCommand(attendanceTodayCmd(a), attendanceCheckInCmd(a), attendanceCheckOutCmd(a), attendanceMonthCmd(a))
	return cmd
}

func attendanceTodayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's attendance, if marked",
		RunE: func(cmd *cobra.Command, args []string) error {
			record := a.client.Attendance.TodayIfMarked(cmd.Context())
			if record == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No attendance marked for today.")
				return nil
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Status:    %s\n", record.Status)
			fmt.Fprintf(out, "Check-in:  %s\n", record.CheckInTime)
			if record.CheckOutTime != "" {
				fmt.Fprintf(out, "Check-out: %s\n", record.CheckOutTime)
				fmt.Fprintf(out, "Hours:     %.2f\n", record.WorkHours)
			}
			if record.IsLate {
				fmt.Fprintf(out, "Late by:   %d minutes\n", record.LateMinutes)
			}
			return nil
		},
	}
}

func attendanceCheckInCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check-in",
		Short: "Check in for today",
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := a.client.Attendance.CheckIn(cmd.Context())
			if err != nil {
				return err
			}
			if record != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Checked in at %s\n", record.CheckInTime)
			}
			return nil
		},
	}
}

func attendanceCheckOutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check-out",
		Short: "Check out for today",
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := a.client.Attendance.CheckOut(cmd.Context())
			if err != nil {
				return err
			}
			if record != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Checked out at %s (%.2f hours)\n", record.CheckOutTime, record.WorkHours)
			}
			return nil
		},
	}
}

func attendanceMonthCmd(a *app) *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "month",
		Short: "List the caller's attendance for one month",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if year == 0 {
				year = now.Year()
			}
			if month == 0 {
				month = int(now.Month())
			}
			records, err := a.client.Attendance.MyMonthly(cmd.Context(), year, month)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No records.")
				return nil
			}
			for _, r := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-10s %s - %s\n", r.Date, r.Status, r.CheckInTime, r.CheckOutTime)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "year (defaults to current)")
	cmd.Flags().IntVar(&month, "month", 0, "month 1-12 (defaults to current)")
	return cmd
}
