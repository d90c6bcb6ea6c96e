package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/GregMSThompson/budget-backend/internal/handlers"
	"github.com/GregMSThompson/budget-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps, auth *middleware.Middleware, metrics *middleware.Metrics) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)
	r.Use(metrics.Middleware)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())

	ush := handlers.NewUserHandlers(deps)
	exh := handlers.NewExpenseHandlers(deps)
	dsh := handlers.NewDashboardHandlers(deps)
	xph := handlers.NewExportHandlers(deps)
	rph := handlers.NewReportHandlers(deps)
	nth := handlers.NewNotificationHandlers(deps)

	r.Group(func(r chi.Router) {
		r.Use(auth.FirebaseAuth)

		r.Mount("/users", ush.UserRoutes())
		r.Mount("/expenses", exh.ExpenseRoutes())
		r.Mount("/dashboard", dsh.DashboardRoutes())
		r.Get("/forecast", dsh.GetForecast)
		r.Mount("/exports", xph.ExportRoutes())
		r.Mount("/reports", rph.ReportRoutes())
		r.Post("/notifications", nth.Send)
	})

	return r
}
