package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GregMSThompson/budget-backend/internal/budget"
	"github.com/GregMSThompson/budget-backend/internal/services"
)

var (
	flagSend  bool
	flagEmail string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print or email a user's monthly spending report",
	Long: "Without --month the current month's report is printed. With --month a closed " +
		"month is judged against the budget archived at rollover. --send emails it instead.",
	RunE: runReport,
}

func init() {
	addUserFlags(reportCmd)
	reportCmd.Flags().BoolVar(&flagSend, "send", false, "Email the report instead of printing it")
	reportCmd.Flags().StringVar(&flagEmail, "email", "", "Recipient (defaults to the stored address)")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	cfg, bs, ctx, err := setup()
	if err != nil {
		return err
	}
	defer bs.Close()

	out := cmd.OutOrStdout()

	if flagSend {
		if err := bs.InitMailer(cfg); err != nil {
			return err
		}
		rpserv := services.NewReportService(bs.Profiles, bs.Expenses, bs.Mailer, cfg.Location)

		send := func() (string, string, error) {
			if flagMonth == "" {
				res, err := rpserv.SendCurrentReport(ctx, flagUID, flagEmail, "")
				return res.Recipient, res.Month, err
			}
			res, err := rpserv.SendMonthReport(ctx, flagUID, flagMonth, flagEmail, "")
			return res.Recipient, res.Month, err
		}
		to, month, err := send()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Report for %s sent to %s\n", month, to)
		return nil
	}

	if flagMonth == "" {
		rpserv := services.NewReportService(bs.Profiles, bs.Expenses, bs.Mailer, cfg.Location)
		body, _, _, err := rpserv.CurrentReport(ctx, flagUID)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, body)
		return nil
	}

	dsserv := services.NewDashboardService(bs.Profiles, bs.Expenses, cfg.Location)
	month, err := dsserv.GetMonth(ctx, flagUID, flagMonth)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, budget.FormatPreviousMonthReport(month.Month, month.Summary.Total, month.Message))
	return nil
}
