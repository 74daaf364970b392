package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func payrollCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "payroll",
		Short:             "Payroll operations",
		PersistentPreRunE: requireSession(a),
	}
	cmd.AddCommand(payrollListCmd(a), payrollPayrunCmd(a))
	return cmd
}

func payrollListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the caller's payslips",
		RunE: func(cmd *cobra.Command, args []string) error {
			payrolls, err := a.client.Payroll.MyPayrolls(cmd.Context())
			if err != nil {
				return err
			}
			if len(payrolls) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No payslips.")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "MONTH\tGROSS\tDEDUCTIONS\tNET\tPROCESSED")
			for _, p := range payrolls {
				fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%t\n", p.SalaryMonth, p.GrossSalary, p.TotalDeductions, p.NetSalary, p.IsProcessed)
			}
			return w.Flush()
		},
	}
}

func payrollPayrunCmd(a *app) *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "payrun",
		Short: "Generate payroll for all active employees (ADMIN/PAYROLL_OFFICER)",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if year == 0 {
				year = now.Year()
			}
			if month == 0 {
				month = int(now.Month())
			}
			result, err := a.client.Payroll.GeneratePayrun(cmd.Context(), month, year)
			if err != nil {
				return err
			}
			if result != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%d ok, %d failed of %d)\n",
					result.Message, result.SuccessCount, result.FailureCount, result.TotalEmployees)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "year (defaults to current)")
	cmd.Flags().IntVar(&month, "month", 0, "month 1-12 (defaults to current)")
	return cmd
}
