package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestWithOfflineMessage(t *testing.T) {
	cause := errors.New("rpc error: code = Unavailable")
	err := WithOfflineMessage(NewUnavailableError("query expenses", cause), "You are offline.")

	var u *UnavailableError
	if !errors.As(err, &u) {
		t.Fatalf("expected UnavailableError, got %T", err)
	}
	if u.Message != "You are offline." {
		t.Fatalf("unexpected message: %q", u.Message)
	}
	if u.Operation != "query expenses" {
		t.Fatalf("unexpected operation: %q", u.Operation)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause not preserved")
	}
}

func TestWithOfflineMessageWrapped(t *testing.T) {
	wrapped := fmt.Errorf("load profile: %w", NewUnavailableError("get profile", errors.New("deadline exceeded")))

	err := WithOfflineMessage(wrapped, "You are offline.")

	var u *UnavailableError
	if !errors.As(err, &u) {
		t.Fatalf("expected UnavailableError, got %T", err)
	}
	if u.Message != "You are offline." || u.Operation != "get profile" {
		t.Fatalf("unexpected error: %+v", u)
	}
}

func TestWithOfflineMessagePassesOtherErrors(t *testing.T) {
	orig := NewValidationError("bad input")
	if got := WithOfflineMessage(orig, "You are offline."); got != error(orig) {
		t.Fatalf("expected the same error back, got %v", got)
	}
}

func TestDatabaseErrorUnwraps(t *testing.T) {
	cause := errors.New("disk full")
	err := NewDatabaseError("append expense", "failed to add expense", cause)

	if !errors.Is(err, cause) {
		t.Fatalf("cause not preserved")
	}
	if err.Error() != "failed to add expense: disk full" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
