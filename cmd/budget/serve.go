package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/GregMSThompson/budget-backend/internal/handlers"
	"github.com/GregMSThompson/budget-backend/internal/middleware"
	"github.com/GregMSThompson/budget-backend/internal/response"
	"github.com/GregMSThompson/budget-backend/internal/router"
	"github.com/GregMSThompson/budget-backend/internal/services"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, bs, ctx, err := setup()
	if err != nil {
		return err
	}
	defer bs.Close()

	if err := bs.InitServices(cfg); err != nil {
		bs.Log.Error("service init failed", "error", err)
		return err
	}

	// services
	userv := services.NewUserService(bs.Profiles, cfg.Location)
	exserv := services.NewExpenseService(bs.Expenses, cfg.Location)
	dsserv := services.NewDashboardService(bs.Profiles, bs.Expenses, cfg.Location)
	xpserv := services.NewExportService(bs.Expenses, cfg.Location)
	rpserv := services.NewReportService(bs.Profiles, bs.Expenses, bs.Mailer, cfg.Location)
	ntserv := services.NewNotificationService(bs.Messaging)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.UserSvc = userv
	deps.ExpenseSvc = exserv
	deps.DashboardSvc = dsserv
	deps.ExportSvc = xpserv
	deps.ReportSvc = rpserv
	deps.NotificationSvc = ntserv

	// metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(reg)

	// router
	r := router.NewRouter(deps, middleware.NewMiddleware(bs.Auth), metrics)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		bs.Log.Info("server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			bs.Log.Error("server start failed", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	bs.Log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
