package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/GregMSThompson/budget-backend/internal/budget"
	"github.com/GregMSThompson/budget-backend/internal/dto"
	"github.com/GregMSThompson/budget-backend/internal/errs"
	"github.com/GregMSThompson/budget-backend/internal/models"
	"github.com/GregMSThompson/budget-backend/pkg/logger"
)

type profileDSStore interface {
	GetProfile(ctx context.Context, uid string) (*models.Profile, error)
}

type expenseDSStore interface {
	QueryRange(ctx context.Context, uid string, startMs, endMs int64) ([]models.Expense, error)
}

type dashboardService struct {
	profiles profileDSStore
	expenses expenseDSStore
	now      func() time.Time
}

func NewDashboardService(profiles profileDSStore, expenses expenseDSStore, loc *time.Location) *dashboardService {
	return &dashboardService{
		profiles: profiles,
		expenses: expenses,
		now:      clockIn(loc),
	}
}

// GetDashboard builds the current-month view. The profile and the six-month
// history are fetched together; if either fails nothing is computed.
func (s *dashboardService) GetDashboard(ctx context.Context, uid string) (dto.DashboardResponse, error) {
	log := logger.FromContext(ctx)
	now := s.now()

	profile, history, err := s.fetch(ctx, uid, budget.ForecastWindow(now))
	if err != nil {
		log.Warn("dashboard fetch failed", "error", err)
		return dto.DashboardResponse{}, errs.WithOfflineMessage(err, OfflineExpenses)
	}

	current := since(history, budget.CurrentMonthWindow(now).StartMs())
	amount := profile.Budget
	summary := budget.Aggregate(current, now)

	return dto.DashboardResponse{
		Month:       budget.MonthKey(now),
		Budget:      amount,
		Summary:     summary,
		Suggestion:  budget.SuggestPace(amount, summary.Total),
		Alerts:      budget.CategoryAlerts(summary.ByCategory, amount),
		Pace:        budget.ComputePace(amount, summary.Total, now),
		DailyAdvice: budget.DailyAdvice(amount, summary.Total, now),
		Forecast:    budget.Forecast(history, current, now),
	}, nil
}

// GetMonth aggregates a whole past month and judges it against the budget
// archived at the last rollover.
func (s *dashboardService) GetMonth(ctx context.Context, uid, month string) (dto.MonthResponse, error) {
	w, err := budget.ParseMonth(month, s.now().Location())
	if err != nil {
		return dto.MonthResponse{}, errs.NewValidationError(err.Error())
	}

	profile, records, err := s.fetch(ctx, uid, w)
	if err != nil {
		logger.FromContext(ctx).Warn("month fetch failed", "month", month, "error", err)
		return dto.MonthResponse{}, errs.WithOfflineMessage(err, OfflinePreviousMonth)
	}

	summary := budget.Aggregate(records, w.Start)
	return dto.MonthResponse{
		Month:          month,
		Summary:        summary,
		PreviousBudget: profile.PreviousBudget,
		Message:        budget.PreviousMonthSummary(summary.Total, profile.PreviousBudget),
	}, nil
}

func (s *dashboardService) GetForecast(ctx context.Context, uid string) (budget.ForecastResult, error) {
	now := s.now()

	history, err := s.expenses.QueryRange(ctx, uid, budget.ForecastWindow(now).StartMs(), 0)
	if err != nil {
		return budget.ForecastResult{}, errs.WithOfflineMessage(err, OfflineForecast)
	}

	current := since(history, budget.CurrentMonthWindow(now).StartMs())
	return budget.Forecast(history, current, now), nil
}

// fetch loads the profile and the records in w concurrently. A missing profile
// reads as the zero profile.
func (s *dashboardService) fetch(ctx context.Context, uid string, w budget.Window) (models.Profile, []models.Expense, error) {
	var (
		profile *models.Profile
		records []models.Expense
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile, err = s.profiles.GetProfile(gctx, uid)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.expenses.QueryRange(gctx, uid, w.StartMs(), w.EndMs())
		return err
	})
	if err := g.Wait(); err != nil {
		return models.Profile{}, nil, err
	}

	if profile == nil {
		return models.Profile{}, records, nil
	}
	return *profile, records, nil
}

func since(records []models.Expense, startMs int64) []models.Expense {
	var out []models.Expense
	for _, r := range records {
		if r.Timestamp >= startMs {
			out = append(out, r)
		}
	}
	return out
}
