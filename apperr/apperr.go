package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the one place that maps errors to HTTP
// statuses. Upstream covers any failure from a managed collaborator
// (identity gateway, document store, object store, generative model);
// Validation covers caller faults.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUpstream
)

// AppError carries a kind, a caller-facing message and the wrapped cause.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Validation(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

// Upstream wraps a failure from an external managed service. No
// transient/permanent distinction is kept; every upstream failure reports
// identically.
func Upstream(message string, err error) *AppError {
	return &AppError{Kind: KindUpstream, Message: message, Err: err}
}

// KindOf extracts the kind of err, defaulting to KindInternal.
func KindOf(err error) Kind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}
