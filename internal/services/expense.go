package services

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/GregMSThompson/budget-backend/internal/budget"
	"github.com/GregMSThompson/budget-backend/internal/dto"
	"github.com/GregMSThompson/budget-backend/internal/errs"
	"github.com/GregMSThompson/budget-backend/internal/models"
	"github.com/GregMSThompson/budget-backend/pkg/logger"
)

type expenseESStore interface {
	Append(ctx context.Context, uid string, e models.Expense) (string, error)
	QueryRange(ctx context.Context, uid string, startMs, endMs int64) ([]models.Expense, error)
}

type expenseService struct {
	Store expenseESStore
	now   func() time.Time
}

func NewExpenseService(store expenseESStore, loc *time.Location) *expenseService {
	return &expenseService{
		Store: store,
		now:   clockIn(loc),
	}
}

func (s *expenseService) AddExpense(ctx context.Context, uid string, req dto.CreateExpenseRequest) (models.Expense, error) {
	log := logger.FromContext(ctx)

	e, err := newExpense(req, s.now())
	if err != nil {
		return models.Expense{}, err
	}

	id, err := s.Store.Append(ctx, uid, e)
	if err != nil {
		log.Error("failed to add expense", "error", err)
		return models.Expense{}, errs.WithOfflineMessage(err, OfflineAddExpense)
	}
	e.ID = id

	log.Info("expense added", "expense_id", id, "category", e.Category, "amount", e.Amount)
	return e, nil
}

func newExpense(req dto.CreateExpenseRequest, now time.Time) (models.Expense, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || req.Amount == nil || req.Category == "" {
		return models.Expense{}, errs.NewValidationError("Please fill in all fields.")
	}
	amount := *req.Amount
	if amount <= 0 || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return models.Expense{}, errs.NewValidationError("Amount must be a positive number.")
	}
	category := models.Category(req.Category)
	if !category.Valid() {
		return models.Expense{}, errs.NewValidationError("Unknown category: " + req.Category)
	}

	return models.Expense{
		Name:      name,
		Amount:    amount,
		Category:  category,
		Timestamp: now.UnixMilli(),
	}, nil
}

// ListExpenses returns the well-formed expenses of month ("YYYY-MM"), or of
// the current month when month is empty.
func (s *expenseService) ListExpenses(ctx context.Context, uid, month string) (dto.ExpenseList, error) {
	now := s.now()
	if month == "" {
		month = budget.MonthKey(now)
	}
	w, err := budget.ParseMonth(month, now.Location())
	if err != nil {
		return dto.ExpenseList{}, errs.NewValidationError(err.Error())
	}

	records, err := s.Store.QueryRange(ctx, uid, w.StartMs(), w.EndMs())
	if err != nil {
		return dto.ExpenseList{}, errs.WithOfflineMessage(err, OfflineExpenses)
	}

	out := dto.ExpenseList{Month: month, Expenses: make([]models.Expense, 0, len(records))}
	for _, r := range records {
		if r.WellFormed() {
			out.Expenses = append(out.Expenses, r)
		}
	}
	return out, nil
}
