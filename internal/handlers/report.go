package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/budget-backend/internal/dto"
	"github.com/GregMSThompson/budget-backend/internal/middleware"
	"github.com/GregMSThompson/budget-backend/internal/response"
)

type reportService interface {
	SendCurrentReport(ctx context.Context, uid, email, name string) (dto.EmailReportResult, error)
	SendMonthReport(ctx context.Context, uid, month, email, name string) (dto.EmailReportResult, error)
}

type reportHandlers struct {
	ResponseHandler response.ResponseHandler
	ReportSvc       reportService
}

func NewReportHandlers(deps *Deps) *reportHandlers {
	return &reportHandlers{
		ResponseHandler: deps.ResponseHandler,
		ReportSvc:       deps.ReportSvc,
	}
}

func (h *reportHandlers) ReportRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/email", h.EmailCurrent)
	r.Post("/email/{month}", h.EmailMonth)
	return r
}

func (h *reportHandlers) EmailCurrent(w http.ResponseWriter, r *http.Request) {
	var req dto.EmailReportRequest
	if err := decodeJSON(r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	ctx := r.Context()
	res, err := h.ReportSvc.SendCurrentReport(ctx, middleware.UID(ctx), req.Email, middleware.Name(ctx))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, res)
}

func (h *reportHandlers) EmailMonth(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")
	var req dto.EmailReportRequest
	if err := decodeJSON(r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	ctx := r.Context()
	res, err := h.ReportSvc.SendMonthReport(ctx, middleware.UID(ctx), month, req.Email, middleware.Name(ctx))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, res)
}
