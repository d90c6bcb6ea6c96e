package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GregMSThompson/budget-backend/internal/dto"
	"github.com/GregMSThompson/budget-backend/internal/errs"
)

type stubNotificationService struct {
	res     dto.NotificationResult
	err     error
	lastReq dto.NotificationRequest
}

func (s *stubNotificationService) Send(_ context.Context, req dto.NotificationRequest) (dto.NotificationResult, error) {
	s.lastReq = req
	return s.res, s.err
}

func TestSendNotification_OK(t *testing.T) {
	svc := &stubNotificationService{res: dto.NotificationResult{MessageID: "projects/p/messages/1"}}
	resp := &stubResponseHandler{}
	h := NewNotificationHandlers(&Deps{ResponseHandler: resp, NotificationSvc: svc})

	body := `{"token":"t","title":"Budget","body":"You are over budget"}`
	req := withUID(httptest.NewRequest(http.MethodPost, "/notifications", strings.NewReader(body)), "uid1")
	h.Send(httptest.NewRecorder(), req)

	if svc.lastReq.Token != "t" || svc.lastReq.Title != "Budget" {
		t.Fatalf("unexpected request %+v", svc.lastReq)
	}
	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatal("expected WriteSuccess with 200")
	}
}

func TestSendNotification_DeliveryError(t *testing.T) {
	svc := &stubNotificationService{err: errs.NewExternalServiceError("fcm", "failed to send notification", false, nil)}
	resp := &stubResponseHandler{}
	h := NewNotificationHandlers(&Deps{ResponseHandler: resp, NotificationSvc: svc})

	req := withUID(httptest.NewRequest(http.MethodPost, "/notifications", strings.NewReader(`{"token":"t"}`)), "uid1")
	h.Send(httptest.NewRecorder(), req)

	if !resp.handleErrorCalled {
		t.Fatal("expected HandleError")
	}
}
