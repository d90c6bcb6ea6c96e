package errs

import (
	"errors"
	"fmt"
)

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type NotFoundError struct {
	ErrorMessage
}

type ValidationError struct {
	ErrorMessage
}

// DatabaseError wraps a record store failure that is not a connectivity problem.
type DatabaseError struct {
	ErrorMessage
	Operation string
	Err       error
}

func (e *DatabaseError) Unwrap() error { return e.Err }

// UnavailableError means the record store could not be reached. Callers must
// report an offline state and never fall back to derived numbers.
type UnavailableError struct {
	ErrorMessage
	Operation string
	Err       error
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// ExternalServiceError is a failure of an outbound collaborator (mail, push).
type ExternalServiceError struct {
	ErrorMessage
	Service   string
	Transient bool
	Err       error
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewDatabaseError(operation, message string, err error) *DatabaseError {
	return &DatabaseError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("%s: %v", message, err)},
		Operation:    operation,
		Err:          err,
	}
}

func NewUnavailableError(operation string, err error) *UnavailableError {
	return &UnavailableError{
		ErrorMessage: ErrorMessage{Message: "record store unavailable"},
		Operation:    operation,
		Err:          err,
	}
}

func NewExternalServiceError(service, message string, transient bool, err error) *ExternalServiceError {
	return &ExternalServiceError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("%s: %v", message, err)},
		Service:      service,
		Transient:    transient,
		Err:          err,
	}
}

// WithOfflineMessage replaces the message of an UnavailableError with the
// user-facing wording for the action that failed. A wrapped UnavailableError
// is unwrapped to a copy carrying the new message. Other errors pass through.
func WithOfflineMessage(err error, message string) error {
	var u *UnavailableError
	if errors.As(err, &u) {
		out := *u
		out.Message = message
		return &out
	}
	return err
}
