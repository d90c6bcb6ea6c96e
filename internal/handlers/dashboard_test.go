package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GregMSThompson/budget-backend/internal/budget"
	"github.com/GregMSThompson/budget-backend/internal/dto"
)

type stubDashboardService struct {
	dashboard dto.DashboardResponse
	month     dto.MonthResponse
	forecast  budget.ForecastResult
	err       error
	lastMonth string
}

func (s *stubDashboardService) GetDashboard(_ context.Context, _ string) (dto.DashboardResponse, error) {
	return s.dashboard, s.err
}

func (s *stubDashboardService) GetMonth(_ context.Context, _, month string) (dto.MonthResponse, error) {
	s.lastMonth = month
	return s.month, s.err
}

func (s *stubDashboardService) GetForecast(_ context.Context, _ string) (budget.ForecastResult, error) {
	return s.forecast, s.err
}

func TestGetDashboard_OK(t *testing.T) {
	svc := &stubDashboardService{dashboard: dto.DashboardResponse{Month: "2024-05", Budget: 100000}}
	resp := &stubResponseHandler{}
	h := NewDashboardHandlers(&Deps{ResponseHandler: resp, DashboardSvc: svc})

	req := withUID(httptest.NewRequest(http.MethodGet, "/dashboard", nil), "uid1")
	h.GetDashboard(httptest.NewRecorder(), req)

	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("expected WriteSuccess with 200, got called=%v status=%d", resp.writeSuccessCalled, resp.writeSuccessStatus)
	}
	if got := resp.writeSuccessData.(dto.DashboardResponse); got.Month != "2024-05" {
		t.Fatalf("month = %q", got.Month)
	}
}

func TestGetDashboard_ServiceError(t *testing.T) {
	svc := &stubDashboardService{err: errors.New("db failure")}
	resp := &stubResponseHandler{}
	h := NewDashboardHandlers(&Deps{ResponseHandler: resp, DashboardSvc: svc})

	req := withUID(httptest.NewRequest(http.MethodGet, "/dashboard", nil), "uid1")
	h.GetDashboard(httptest.NewRecorder(), req)

	if !resp.handleErrorCalled {
		t.Fatal("expected HandleError to be called")
	}
}

func TestGetMonth_UsesURLParam(t *testing.T) {
	svc := &stubDashboardService{month: dto.MonthResponse{Month: "2024-04"}}
	resp := &stubResponseHandler{}
	h := NewDashboardHandlers(&Deps{ResponseHandler: resp, DashboardSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/dashboard/months/2024-04", nil)
	req = withUID(req, "uid1")
	req = withChiParam(req, "month", "2024-04")
	h.GetMonth(httptest.NewRecorder(), req)

	if svc.lastMonth != "2024-04" {
		t.Errorf("expected month=2024-04, got %s", svc.lastMonth)
	}
	if !resp.writeSuccessCalled {
		t.Fatal("expected WriteSuccess")
	}
}

func TestGetForecast_OK(t *testing.T) {
	svc := &stubDashboardService{forecast: budget.ForecastResult{ProjectedTotal: 42000}}
	resp := &stubResponseHandler{}
	h := NewDashboardHandlers(&Deps{ResponseHandler: resp, DashboardSvc: svc})

	req := withUID(httptest.NewRequest(http.MethodGet, "/forecast", nil), "uid1")
	h.GetForecast(httptest.NewRecorder(), req)

	got, ok := resp.writeSuccessData.(budget.ForecastResult)
	if !ok || got.ProjectedTotal != 42000 {
		t.Fatalf("unexpected data %#v", resp.writeSuccessData)
	}
}
