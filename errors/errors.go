// Package errors provides error handling for paw.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints printed by the CLI
//
// Usage:
//
//	// Wrap with context
//	if err := client.StartExecution(ctx, arn, input); err != nil {
//	    return errors.Wrap(err, "failed to restart execution")
//	}
//
//	// Add hints for operators
//	return errors.WithHint(err, "check AWS_PROFILE and AWS_REGION")
//
//	// Check errors
//	if errors.Is(err, errors.ErrTransport) {
//	    // remote call failed
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint       = crdb.WithHint
	WithHintf      = crdb.WithHintf
	WithDetail     = crdb.WithDetail
	WithDetailf    = crdb.WithDetailf
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Error inspection
var (
	Is         = crdb.Is
	IsAny      = crdb.IsAny
	As         = crdb.As
	Unwrap     = crdb.Unwrap
	UnwrapOnce = crdb.UnwrapOnce
	UnwrapAll  = crdb.UnwrapAll
)

// Marking
var (
	// Mark makes Is(err, reference) true without changing err's message or cause chain
	Mark = crdb.Mark
	// AssertionFailedf reports a broken internal invariant
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors. Wrap these with errors.Wrap() to add context while
// preserving the type; check them with errors.Is().
var (
	// ErrTransport marks any failure of a remote workflow-service call
	// (network, auth, not-found, throttling, malformed request).
	ErrTransport = New("workflow service call failed")

	// ErrMissingPayload indicates a described execution carries no input
	ErrMissingPayload = New("execution has no input payload")

	// ErrParse indicates operator-supplied text could not be parsed
	ErrParse = New("parse error")

	// ErrNotFound indicates the requested resource does not exist
	ErrNotFound = New("not found")

	// ErrInvalidRequest indicates the request was malformed or invalid
	ErrInvalidRequest = New("invalid request")
)

// IsTransportError checks if an error is or wraps ErrTransport
func IsTransportError(err error) bool {
	return err != nil && Is(err, ErrTransport)
}

// IsNotFoundError checks if an error is or wraps ErrNotFound
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsInvalidRequestError checks if an error is or wraps ErrInvalidRequest
func IsInvalidRequestError(err error) bool {
	return err != nil && Is(err, ErrInvalidRequest)
}

// NewNotFoundError creates a not-found error with a formatted message
func NewNotFoundError(format string, args ...interface{}) error {
	return Wrap(ErrNotFound, Newf(format, args...).Error())
}

// NewInvalidRequestError creates an invalid-request error with a formatted message
func NewInvalidRequestError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidRequest, Newf(format, args...).Error())
}
