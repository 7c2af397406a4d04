package router

import (
	"errors"
	"fmt"
)

// Sentinel errors describing contract violations. Router operations never
// return them; they are carried by a *ContractError that is either logged or,
// in development mode, raised with panic.
var (
	// ErrNilSurface indicates an operation was given no surface to act on.
	ErrNilSurface = errors.New("surface is nil")

	// ErrNilPresentation indicates Route was called without a request.
	ErrNilPresentation = errors.New("presentation is nil")

	// ErrUnknownPresentation indicates a Presentation variant the router does not handle.
	ErrUnknownPresentation = errors.New("unknown presentation")

	// ErrUnknownAlertKind indicates an AlertKind variant the alert builder does not handle.
	ErrUnknownAlertKind = errors.New("unknown alert kind")
)

// ContractError reports a programmer error in how the router was called.
type ContractError struct {
	Op  string // Router operation (e.g., "close", "route")
	Err error  // Underlying sentinel
}

func (e *ContractError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("router: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("router: %s", e.Op)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

// IsContractViolation checks if err is, or wraps, a *ContractError.
func IsContractViolation(err error) bool {
	var contractErr *ContractError
	return errors.As(err, &contractErr)
}
