package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/budget-backend/internal/dto"
	"github.com/GregMSThompson/budget-backend/internal/middleware"
	"github.com/GregMSThompson/budget-backend/internal/response"
	"github.com/GregMSThompson/budget-backend/pkg/logger"
)

type exportService interface {
	ExportCSV(ctx context.Context, uid, month string) (dto.CSVExport, error)
}

type exportHandlers struct {
	ResponseHandler response.ResponseHandler
	ExportSvc       exportService
}

func NewExportHandlers(deps *Deps) *exportHandlers {
	return &exportHandlers{
		ResponseHandler: deps.ResponseHandler,
		ExportSvc:       deps.ExportSvc,
	}
}

func (h *exportHandlers) ExportRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/expenses.csv", h.ExportCSV)
	return r
}

// ExportCSV streams the file itself rather than the JSON envelope.
func (h *exportHandlers) ExportCSV(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	export, err := h.ExportSvc.ExportCSV(r.Context(), uid, r.URL.Query().Get("month"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(export.Body)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(export.Body); err != nil {
		logger.FromContext(r.Context()).Error("failed to write csv", "error", err)
	}
}
