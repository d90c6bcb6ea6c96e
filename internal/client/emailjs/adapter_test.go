package emailjsclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GregMSThompson/budget-backend/internal/dto"
	"github.com/GregMSThompson/budget-backend/internal/errs"
)

func TestAdapterSend(t *testing.T) {
	var got dto.EmailJSSendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1.0/email/send" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Write([]byte("OK"))
	}))
	defer srv.Close()

	a, err := NewAdapter(Config{
		BaseURL:    srv.URL,
		ServiceID:  "service",
		TemplateID: "template",
		PublicKey:  "public",
		PrivateKey: "private",
	}, srv.Client())
	if err != nil {
		t.Fatalf("NewAdapter returned error: %v", err)
	}

	err = a.Send(context.Background(), dto.EmailReportParams{ToEmail: "a@example.com", TotalSpent: "10.00"})
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}

	if got.ServiceID != "service" || got.TemplateID != "template" || got.UserID != "public" || got.AccessToken != "private" {
		t.Fatalf("unexpected envelope: %+v", got)
	}
	if got.TemplateParams.ToEmail != "a@example.com" || got.TemplateParams.TotalSpent != "10.00" {
		t.Fatalf("unexpected params: %+v", got.TemplateParams)
	}
}

func TestAdapterSendErrors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		transient bool
	}{
		{"bad request", http.StatusBadRequest, false},
		{"rate limited", http.StatusTooManyRequests, true},
		{"server error", http.StatusBadGateway, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tt.status)
			}))
			defer srv.Close()

			a, err := NewAdapter(Config{BaseURL: srv.URL, ServiceID: "s", TemplateID: "t", PublicKey: "p"}, srv.Client())
			if err != nil {
				t.Fatalf("NewAdapter returned error: %v", err)
			}

			err = a.Send(context.Background(), dto.EmailReportParams{})

			var ee *errs.ExternalServiceError
			if !errors.As(err, &ee) {
				t.Fatalf("expected ExternalServiceError, got %v", err)
			}
			if ee.Transient != tt.transient {
				t.Fatalf("transient = %v, want %v", ee.Transient, tt.transient)
			}
		})
	}
}

func TestNewAdapterRequiresConfig(t *testing.T) {
	if _, err := NewAdapter(Config{ServiceID: "s"}, nil); err == nil {
		t.Fatalf("expected error for incomplete config")
	}
}
