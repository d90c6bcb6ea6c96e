package services

import (
	"context"
	"strings"
	"time"

	"github.com/GregMSThompson/budget-backend/internal/budget"
	"github.com/GregMSThompson/budget-backend/internal/dto"
	"github.com/GregMSThompson/budget-backend/internal/errs"
	"github.com/GregMSThompson/budget-backend/internal/models"
	"github.com/GregMSThompson/budget-backend/pkg/logger"
)

type profileRSStore interface {
	GetProfile(ctx context.Context, uid string) (*models.Profile, error)
	PutProfile(ctx context.Context, uid string, fields map[string]any, merge bool) error
}

type expenseRSStore interface {
	QueryRange(ctx context.Context, uid string, startMs, endMs int64) ([]models.Expense, error)
}

type reportMailer interface {
	Send(ctx context.Context, params dto.EmailReportParams) error
}

type reportService struct {
	profiles profileRSStore
	expenses expenseRSStore
	mailer   reportMailer
	now      func() time.Time
}

func NewReportService(profiles profileRSStore, expenses expenseRSStore, mailer reportMailer, loc *time.Location) *reportService {
	return &reportService{
		profiles: profiles,
		expenses: expenses,
		mailer:   mailer,
		now:      clockIn(loc),
	}
}

// CurrentReport renders the current month's report body along with the
// profile it was computed for.
func (s *reportService) CurrentReport(ctx context.Context, uid string) (string, models.Profile, float64, error) {
	now := s.now()

	profile, err := s.profile(ctx, uid)
	if err != nil {
		return "", models.Profile{}, 0, err
	}
	records, err := s.expenses.QueryRange(ctx, uid, budget.CurrentMonthWindow(now).StartMs(), 0)
	if err != nil {
		return "", models.Profile{}, 0, errs.WithOfflineMessage(err, OfflineEmail)
	}

	summary := budget.Aggregate(records, now)
	body := budget.FormatReport(budget.Report{
		Month:       budget.MonthKey(now),
		Total:       summary.Total,
		ByCategory:  summary.ByCategory,
		Suggestion:  budget.SuggestPace(profile.Budget, summary.Total),
		DailyAdvice: budget.DailyAdvice(profile.Budget, summary.Total, now),
	})
	return body, profile, summary.Total, nil
}

func (s *reportService) SendCurrentReport(ctx context.Context, uid, email, name string) (dto.EmailReportResult, error) {
	log := logger.FromContext(ctx)

	body, profile, total, err := s.CurrentReport(ctx, uid)
	if err != nil {
		return dto.EmailReportResult{}, err
	}

	to, err := recipient(email, profile.Email)
	if err != nil {
		return dto.EmailReportResult{}, err
	}

	month := budget.MonthKey(s.now())
	err = s.mailer.Send(ctx, dto.EmailReportParams{
		ToEmail:    to,
		ToName:     displayName(name),
		TotalSpent: budget.FormatAmount(total),
		Budget:     budget.FormatAmount(profile.Budget),
		Message:    body,
	})
	if err != nil {
		log.Error("failed to send current month report", "error", err)
		return dto.EmailReportResult{}, err
	}

	log.Info("current month report sent", "month", month)
	return dto.EmailReportResult{Recipient: to, Month: month}, nil
}

// SendMonthReport emails the summary of a past month. A newly supplied address
// that differs from the stored one replaces it.
func (s *reportService) SendMonthReport(ctx context.Context, uid, month, email, name string) (dto.EmailReportResult, error) {
	log := logger.FromContext(ctx)

	w, err := budget.ParseMonth(month, s.now().Location())
	if err != nil {
		return dto.EmailReportResult{}, errs.NewValidationError(err.Error())
	}

	profile, err := s.profile(ctx, uid)
	if err != nil {
		return dto.EmailReportResult{}, err
	}
	to, err := recipient(email, profile.Email)
	if err != nil {
		return dto.EmailReportResult{}, err
	}

	records, err := s.expenses.QueryRange(ctx, uid, w.StartMs(), w.EndMs())
	if err != nil {
		return dto.EmailReportResult{}, errs.WithOfflineMessage(err, OfflineEmail)
	}

	if to != profile.Email {
		err = s.profiles.PutProfile(ctx, uid, map[string]any{models.ProfileFieldEmail: to}, true)
		if err != nil {
			return dto.EmailReportResult{}, errs.WithOfflineMessage(err, OfflineEmail)
		}
		log.Info("profile email updated")
	}

	summary := budget.Aggregate(records, w.Start)
	message := budget.PreviousMonthSummary(summary.Total, profile.PreviousBudget)
	err = s.mailer.Send(ctx, dto.EmailReportParams{
		ToEmail:    to,
		ToName:     displayName(name),
		TotalSpent: budget.FormatAmount(summary.Total),
		Budget:     budget.FormatAmount(profile.PreviousBudget),
		Message:    budget.FormatPreviousMonthReport(month, summary.Total, message),
	})
	if err != nil {
		log.Error("failed to send month report", "month", month, "error", err)
		return dto.EmailReportResult{}, err
	}

	log.Info("month report sent", "month", month)
	return dto.EmailReportResult{Recipient: to, Month: month}, nil
}

func (s *reportService) profile(ctx context.Context, uid string) (models.Profile, error) {
	p, err := s.profiles.GetProfile(ctx, uid)
	if err != nil {
		return models.Profile{}, errs.WithOfflineMessage(err, OfflineEmail)
	}
	if p == nil {
		return models.Profile{}, errs.NewNotFoundError("profile not found")
	}
	return *p, nil
}

// recipient prefers the address supplied with the request over the stored one.
func recipient(supplied, stored string) (string, error) {
	to := strings.TrimSpace(supplied)
	if to == "" {
		to = stored
	}
	if !emailPattern.MatchString(to) {
		return "", errs.NewValidationError("Please enter a valid email address.")
	}
	return to, nil
}

func displayName(name string) string {
	if name == "" {
		return defaultDisplayName
	}
	return name
}
