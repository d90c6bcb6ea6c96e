package handlers

import (
	"context"
	"net/http"

	"github.com/GregMSThompson/budget-backend/internal/dto"
	"github.com/GregMSThompson/budget-backend/internal/response"
)

type notificationService interface {
	Send(ctx context.Context, req dto.NotificationRequest) (dto.NotificationResult, error)
}

type notificationHandlers struct {
	ResponseHandler response.ResponseHandler
	NotificationSvc notificationService
}

func NewNotificationHandlers(deps *Deps) *notificationHandlers {
	return &notificationHandlers{
		ResponseHandler: deps.ResponseHandler,
		NotificationSvc: deps.NotificationSvc,
	}
}

func (h *notificationHandlers) Send(w http.ResponseWriter, r *http.Request) {
	var req dto.NotificationRequest
	if err := decodeJSON(r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	res, err := h.NotificationSvc.Send(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, res)
}
