package store

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GregMSThompson/budget-backend/internal/errs"
)

// storeError classifies a backend failure. Connectivity problems become
// UnavailableError so callers can report an offline state instead of a
// generic failure.
func storeError(operation, message string, err error) error {
	if unreachable(err) {
		return errs.NewUnavailableError(operation, err)
	}
	return errs.NewDatabaseError(operation, message, err)
}

func unreachable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded:
		return true
	}
	return false
}

// withTimeout bounds a single store call. Zero disables the bound.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
