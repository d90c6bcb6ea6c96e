package services

import (
	"context"
	"strings"
	"time"

	"github.com/GregMSThompson/budget-backend/internal/budget"
	"github.com/GregMSThompson/budget-backend/internal/dto"
	"github.com/GregMSThompson/budget-backend/internal/errs"
	"github.com/GregMSThompson/budget-backend/internal/models"
	"github.com/GregMSThompson/budget-backend/pkg/helpers"
	"github.com/GregMSThompson/budget-backend/pkg/logger"
)

const defaultDisplayName = "User"

type profileUSStore interface {
	GetProfile(ctx context.Context, uid string) (*models.Profile, error)
	PutProfile(ctx context.Context, uid string, fields map[string]any, merge bool) error
}

type userService struct {
	Store profileUSStore
	now   func() time.Time
}

func NewUserService(store profileUSStore, loc *time.Location) *userService {
	return &userService{
		Store: store,
		now:   clockIn(loc),
	}
}

// Register writes the initial profile for a new account. The month stays
// unset so the first context load asks for a budget. An existing profile is
// never replaced.
func (s *userService) Register(ctx context.Context, uid, username, email string) error {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if !usernamePattern.MatchString(username) {
		return errs.NewValidationError("Username must be 3-20 characters, alphanumeric, dots, dashes, or underscores.")
	}
	if !emailPattern.MatchString(email) {
		return errs.NewValidationError("Invalid email format.")
	}

	existing, err := s.Store.GetProfile(ctx, uid)
	if err != nil {
		return errs.WithOfflineMessage(err, OfflineLoad)
	}
	if existing != nil {
		log.Warn("profile already exists, refusing to overwrite")
		return errs.NewValidationError("An account already exists for this user.")
	}

	err = s.Store.PutProfile(ctx, uid, map[string]any{
		models.ProfileFieldUsername:        username,
		models.ProfileFieldEmail:           email,
		models.ProfileFieldBudget:          0.0,
		models.ProfileFieldLastBudgetMonth: nil,
		models.ProfileFieldPreviousBudget:  0.0,
	}, false)
	if err != nil {
		log.Error("failed to create profile in store", "error", err)
		return errs.WithOfflineMessage(err, OfflineLoad)
	}

	log.Info("profile created", "username", username)
	return nil
}

// LoadContext fetches the profile, creating it when missing, and applies the
// month rollover before reporting whether a budget prompt is due.
func (s *userService) LoadContext(ctx context.Context, uid, email, displayName string) (dto.UserContext, error) {
	log := logger.FromContext(ctx)
	var out dto.UserContext

	p, err := s.Store.GetProfile(ctx, uid)
	if err != nil {
		return out, errs.WithOfflineMessage(err, OfflineLoad)
	}

	res := budget.Rollover(p, s.now())
	profile := res.Profile

	switch {
	case res.Created:
		if displayName == "" {
			displayName = defaultDisplayName
		}
		profile.Username = displayName
		profile.Email = email
		err = s.Store.PutProfile(ctx, uid, map[string]any{
			models.ProfileFieldUsername:        profile.Username,
			models.ProfileFieldEmail:           profile.Email,
			models.ProfileFieldBudget:          profile.Budget,
			models.ProfileFieldLastBudgetMonth: profile.LastBudgetMonth,
			models.ProfileFieldPreviousBudget:  profile.PreviousBudget,
		}, false)
		if err == nil {
			log.Warn("profile not found, created a new one")
		}

	case res.RolledOver:
		fields := map[string]any{
			models.ProfileFieldLastBudgetMonth: profile.LastBudgetMonth,
			models.ProfileFieldPreviousBudget:  profile.PreviousBudget,
		}
		if profile.Email == "" && email != "" {
			profile.Email = email
			fields[models.ProfileFieldEmail] = email
		}
		err = s.Store.PutProfile(ctx, uid, fields, true)
		if err == nil {
			log.Info("budget month rolled over",
				"month", helpers.Value(profile.LastBudgetMonth),
				"previous_budget", profile.PreviousBudget)
		}
	}
	if err != nil {
		log.Error("failed to write profile", "error", err)
		return out, errs.WithOfflineMessage(err, OfflineLoad)
	}

	out.Profile = profile
	out.Created = res.Created
	out.RolledOver = res.RolledOver
	out.NeedsBudgetInput = res.NeedsBudgetInput || !budget.BudgetSet(profile.Budget)
	return out, nil
}

// SetBudget stores this month's budget and stamps the month so the prompt is
// not raised again until the next rollover. A pending rollover is applied in
// the same write so the outgoing budget is archived first.
func (s *userService) SetBudget(ctx context.Context, uid string, amount float64) error {
	log := logger.FromContext(ctx)

	if !budget.BudgetSet(amount) {
		return errs.NewValidationError("Please enter a valid budget amount.")
	}

	p, err := s.Store.GetProfile(ctx, uid)
	if err != nil {
		return errs.WithOfflineMessage(err, OfflineBudget)
	}

	res := budget.Rollover(p, s.now())
	fields := map[string]any{
		models.ProfileFieldBudget:          amount,
		models.ProfileFieldLastBudgetMonth: res.Profile.LastBudgetMonth,
	}
	if res.RolledOver {
		fields[models.ProfileFieldPreviousBudget] = res.Profile.PreviousBudget
	}

	if err := s.Store.PutProfile(ctx, uid, fields, true); err != nil {
		log.Error("failed to set budget", "error", err)
		return errs.WithOfflineMessage(err, OfflineBudget)
	}

	if res.RolledOver {
		log.Info("budget month rolled over",
			"month", helpers.Value(res.Profile.LastBudgetMonth),
			"previous_budget", res.Profile.PreviousBudget)
	}
	log.Info("budget set", "budget", amount)
	return nil
}
