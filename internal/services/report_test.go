package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/GregMSThompson/budget-backend/internal/dto"
	"github.com/GregMSThompson/budget-backend/internal/errs"
	"github.com/GregMSThompson/budget-backend/internal/models"
	"github.com/GregMSThompson/budget-backend/pkg/helpers"
)

type fakeMailer struct {
	sent []dto.EmailReportParams
	err  error
}

func (f *fakeMailer) Send(_ context.Context, params dto.EmailReportParams) error {
	f.sent = append(f.sent, params)
	return f.err
}

func newTestReportService(store *memStore, mailer *fakeMailer) *reportService {
	svc := NewReportService(store, store, mailer, time.UTC)
	svc.now = fixedClock(time.Date(2024, time.June, 20, 9, 0, 0, 0, time.UTC))
	return svc
}

func TestReportServiceSendCurrentReport(t *testing.T) {
	store := newMemStore()
	store.profiles["uid-1"] = &models.Profile{Email: "ada@example.com", Budget: 3000}
	store.seed("uid-1",
		models.Expense{Amount: 2000, Category: models.CategoryBills, Timestamp: ms(2024, time.June, 2)},
		models.Expense{Amount: 50, Category: models.CategoryFood, Timestamp: ms(2024, time.May, 2)},
	)
	mailer := &fakeMailer{}
	svc := newTestReportService(store, mailer)

	res, err := svc.SendCurrentReport(helpers.TestCtx(), "uid-1", "", "Ada")
	if err != nil {
		t.Fatalf("SendCurrentReport returned error: %v", err)
	}

	if res.Recipient != "ada@example.com" || res.Month != "2024-06" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected one email, got %d", len(mailer.sent))
	}
	p := mailer.sent[0]
	if p.ToName != "Ada" || p.TotalSpent != "2000.00" || p.Budget != "3000.00" {
		t.Fatalf("unexpected params: %+v", p)
	}
	if !strings.HasPrefix(p.Message, "Your Spending Report for 2024-06:\nTotal Spent: ₦2000.00\n") {
		t.Fatalf("unexpected message: %q", p.Message)
	}
	if !strings.Contains(p.Message, "Bills: ₦2000.00") {
		t.Fatalf("breakdown missing: %q", p.Message)
	}
}

func TestReportServiceRejectsInvalidEmail(t *testing.T) {
	store := newMemStore()
	store.profiles["uid-1"] = &models.Profile{}
	mailer := &fakeMailer{}
	svc := newTestReportService(store, mailer)

	_, err := svc.SendCurrentReport(helpers.TestCtx(), "uid-1", "not-an-email", "")

	var ve *errs.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(mailer.sent) != 0 {
		t.Fatalf("nothing should be sent")
	}
}

func TestReportServiceSendMonthReportUpdatesEmail(t *testing.T) {
	store := newMemStore()
	store.profiles["uid-1"] = &models.Profile{Email: "old@example.com", PreviousBudget: 1000}
	store.seed("uid-1",
		models.Expense{Amount: 100, Category: models.CategoryFood, Timestamp: ms(2024, time.May, 2)},
	)
	mailer := &fakeMailer{}
	svc := newTestReportService(store, mailer)

	res, err := svc.SendMonthReport(helpers.TestCtx(), "uid-1", "2024-05", "new@example.com", "")
	if err != nil {
		t.Fatalf("SendMonthReport returned error: %v", err)
	}

	if res.Recipient != "new@example.com" {
		t.Fatalf("unexpected recipient: %s", res.Recipient)
	}
	if store.profiles["uid-1"].Email != "new@example.com" {
		t.Fatalf("stored email not updated")
	}
	p := mailer.sent[0]
	want := "Your Spending Report for 2024-05:\nTotal Spent: ₦100.00\nSummary: Excellent! You spent only ₦100.00 of your ₦1000.00 budget last month."
	if p.Message != want {
		t.Fatalf("message = %q", p.Message)
	}
	if p.Budget != "1000.00" || p.ToName != "User" {
		t.Fatalf("unexpected params: %+v", p)
	}
}

func TestReportServiceMissingProfile(t *testing.T) {
	svc := newTestReportService(newMemStore(), &fakeMailer{})

	_, err := svc.SendMonthReport(helpers.TestCtx(), "uid-1", "2024-05", "a@example.com", "")

	var nf *errs.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestReportServiceOffline(t *testing.T) {
	store := newMemStore()
	store.profiles["uid-1"] = &models.Profile{Email: "a@example.com"}
	store.queryErr = offline()
	mailer := &fakeMailer{}
	svc := newTestReportService(store, mailer)

	_, err := svc.SendCurrentReport(helpers.TestCtx(), "uid-1", "", "")

	var u *errs.UnavailableError
	if !errors.As(err, &u) || u.Message != OfflineEmail {
		t.Fatalf("expected offline error, got %v", err)
	}
	if len(mailer.sent) != 0 {
		t.Fatalf("nothing should be sent while offline")
	}
}

func TestReportServiceMailerError(t *testing.T) {
	store := newMemStore()
	store.profiles["uid-1"] = &models.Profile{Email: "a@example.com"}
	mailErr := errs.NewExternalServiceError("emailjs", "send failed", true, errors.New("503"))
	svc := newTestReportService(store, &fakeMailer{err: mailErr})

	_, err := svc.SendCurrentReport(helpers.TestCtx(), "uid-1", "", "")

	if !errors.Is(err, mailErr) {
		t.Fatalf("expected mailer error, got %v", err)
	}
}
