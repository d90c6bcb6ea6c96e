package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/budget-backend/internal/dto"
	"github.com/GregMSThompson/budget-backend/internal/middleware"
	"github.com/GregMSThompson/budget-backend/internal/models"
	"github.com/GregMSThompson/budget-backend/internal/response"
)

type expenseService interface {
	AddExpense(ctx context.Context, uid string, req dto.CreateExpenseRequest) (models.Expense, error)
	ListExpenses(ctx context.Context, uid, month string) (dto.ExpenseList, error)
}

type expenseHandlers struct {
	ResponseHandler response.ResponseHandler
	ExpenseSvc      expenseService
}

func NewExpenseHandlers(deps *Deps) *expenseHandlers {
	return &expenseHandlers{
		ResponseHandler: deps.ResponseHandler,
		ExpenseSvc:      deps.ExpenseSvc,
	}
}

func (h *expenseHandlers) ExpenseRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.AddExpense)
	r.Get("/", h.ListExpenses)
	return r
}

func (h *expenseHandlers) AddExpense(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	uid := middleware.UID(r.Context())
	expense, err := h.ExpenseSvc.AddExpense(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, expense)
}

func (h *expenseHandlers) ListExpenses(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	list, err := h.ExpenseSvc.ListExpenses(r.Context(), uid, r.URL.Query().Get("month"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, list)
}
