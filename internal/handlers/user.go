package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/budget-backend/internal/dto"
	"github.com/GregMSThompson/budget-backend/internal/errs"
	"github.com/GregMSThompson/budget-backend/internal/middleware"
	"github.com/GregMSThompson/budget-backend/internal/response"
)

type userService interface {
	Register(ctx context.Context, uid, username, email string) error
	LoadContext(ctx context.Context, uid, email, displayName string) (dto.UserContext, error)
	SetBudget(ctx context.Context, uid string, amount float64) error
}

type userHandlers struct {
	ResponseHandler response.ResponseHandler
	UserSvc         userService
}

func NewUserHandlers(deps *Deps) *userHandlers {
	return &userHandlers{
		ResponseHandler: deps.ResponseHandler,
		UserSvc:         deps.UserSvc,
	}
}

func (h *userHandlers) UserRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Register)
	r.Get("/me", h.GetContext)
	r.Put("/me/budget", h.SetBudget)
	return r
}

func (h *userHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	uid := middleware.UID(r.Context())
	if req.Email == "" {
		req.Email = middleware.Email(r.Context())
	}
	if err := h.UserSvc.Register(r.Context(), uid, req.Username, req.Email); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, nil)
}

func (h *userHandlers) GetContext(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	uc, err := h.UserSvc.LoadContext(ctx, middleware.UID(ctx), middleware.Email(ctx), middleware.Name(ctx))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, uc)
}

func (h *userHandlers) SetBudget(w http.ResponseWriter, r *http.Request) {
	var req dto.SetBudgetRequest
	if err := decodeJSON(r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	if req.Budget == nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("Please enter a valid budget amount."))
		return
	}

	uid := middleware.UID(r.Context())
	if err := h.UserSvc.SetBudget(r.Context(), uid, *req.Budget); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, map[string]float64{"budget": *req.Budget})
}
