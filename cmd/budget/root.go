package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/GregMSThompson/budget-backend/internal/bootstrap"
	"github.com/GregMSThompson/budget-backend/internal/config"
	"github.com/GregMSThompson/budget-backend/pkg/logger"
)

var (
	flagUID   string
	flagMonth string
)

var rootCmd = &cobra.Command{
	Use:          "budget",
	Short:        "Personal budgeting backend",
	Long:         "Serve the budgeting API, or print reports and CSV exports for a single user.",
	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads configuration and the record store, and returns a context
// carrying the application logger.
func setup() (*config.Config, *bootstrap.Bootstrap, context.Context, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, nil, err
	}
	bs, err := bootstrap.Run(cfg)
	if err != nil {
		if bs.Log != nil {
			bs.Log.Error("bootstrap failed", "error", err)
		}
		bs.Close()
		return nil, nil, nil, err
	}
	return cfg, bs, logger.ToContext(context.Background(), bs.Log), nil
}

// addUserFlags registers the flags shared by the single-user commands.
func addUserFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagUID, "uid", "u", "", "Firebase user id")
	cmd.Flags().StringVarP(&flagMonth, "month", "m", "", "Month as YYYY-MM")
	_ = cmd.MarkFlagRequired("uid")
}
