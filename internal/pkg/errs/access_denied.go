package errs

import "fmt"

// AccessDeniedError is returned when the caller is known but lacks the role an
// operation requires.
type AccessDeniedError struct {
	Operation string
	Reason    string
}

func NewAccessDeniedError(operation, reason string) *AccessDeniedError {
	return &AccessDeniedError{
		Operation: operation,
		Reason:    reason,
	}
}

func (e *AccessDeniedError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %s", ErrAccessDenied, e.Operation)
	}
	return e.Reason
}

func (e *AccessDeniedError) Unwrap() error {
	return ErrAccessDenied
}

// UnauthenticatedError is returned when no valid caller identity accompanies a
// request that needs one.
type UnauthenticatedError struct {
	Reason string
}

func NewUnauthenticatedError(reason string) *UnauthenticatedError {
	return &UnauthenticatedError{Reason: reason}
}

func (e *UnauthenticatedError) Error() string {
	if e.Reason == "" {
		return ErrUnauthenticated.Error()
	}
	return fmt.Sprintf("%s: %s", ErrUnauthenticated, e.Reason)
}

func (e *UnauthenticatedError) Unwrap() error {
	return ErrUnauthenticated
}
