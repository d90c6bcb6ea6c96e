package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GregMSThompson/budget-backend/internal/errs"
)

func TestStoreErrorClassification(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		unavailable bool
	}{
		{"grpc unavailable", status.Error(codes.Unavailable, "connection refused"), true},
		{"grpc deadline", status.Error(codes.DeadlineExceeded, "slow"), true},
		{"context deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), true},
		{"permission denied", status.Error(codes.PermissionDenied, "rules"), false},
		{"plain", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := storeError("query expenses", "failed to query expenses", tt.err)

			var u *errs.UnavailableError
			var d *errs.DatabaseError
			switch {
			case tt.unavailable && !errors.As(err, &u):
				t.Fatalf("expected UnavailableError, got %T", err)
			case !tt.unavailable && !errors.As(err, &d):
				t.Fatalf("expected DatabaseError, got %T", err)
			}
			if !errors.Is(err, tt.err) {
				t.Fatalf("cause not preserved")
			}
		})
	}
}
