package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GregMSThompson/budget-backend/internal/services"
	"github.com/GregMSThompson/budget-backend/pkg/logger"
)

var flagOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a user's expenses as CSV",
	Long:  "Exports every expense, or one month's with --month. Writes to stdout unless --output is given.",
	RunE:  runExport,
}

func init() {
	addUserFlags(exportCmd)
	exportCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, bs, ctx, err := setup()
	if err != nil {
		return err
	}
	defer bs.Close()

	xpserv := services.NewExportService(bs.Expenses, cfg.Location)
	export, err := xpserv.ExportCSV(ctx, flagUID, flagMonth)
	if err != nil {
		return err
	}

	if flagOutput == "" {
		_, err = cmd.OutOrStdout().Write(export.Body)
		return err
	}
	if err := os.WriteFile(flagOutput, export.Body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", flagOutput, err)
	}
	logger.FromContext(ctx).Info("csv written", "path", flagOutput, "rows", export.Rows)
	return nil
}
