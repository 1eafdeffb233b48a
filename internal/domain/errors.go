package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent error conditions in the appflow domain.
// These errors are returned by the public API and can be checked with
// errors.Is and errors.As.
var (
	// ErrIllegalTransition is the sentinel wrapped by every
	// IllegalTransitionError.
	ErrIllegalTransition = errors.New("appflow: illegal transition")

	// ErrUnknownStatus is the sentinel wrapped by every UnknownStatusError.
	ErrUnknownStatus = errors.New("appflow: unknown status")

	// ErrConflict is returned by a Store when the record's status changed
	// underneath the caller (optimistic concurrency check failed).
	ErrConflict = errors.New("appflow: record conflict")

	// ErrNotFound is returned by a Store when no record exists for an id.
	ErrNotFound = errors.New("appflow: record not found")
)

// IllegalTransitionError reports a requested status change that is not
// present in the transition table, including no-ops and exits from terminal
// statuses.
type IllegalTransitionError struct {
	From Status
	To   Status
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("appflow: illegal transition from %s to %s", e.From, e.To)
}

// Is makes the error match ErrIllegalTransition under errors.Is.
func (e *IllegalTransitionError) Is(target error) bool {
	return target == ErrIllegalTransition
}

// UnknownStatusError reports an externally-sourced status string that could
// not be canonicalized. Callers should fall back to StatusApplied and log
// the anomaly rather than fail the request.
type UnknownStatusError struct {
	Value string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("appflow: unknown status %q", e.Value)
}

// Is makes the error match ErrUnknownStatus under errors.Is.
func (e *UnknownStatusError) Is(target error) bool {
	return target == ErrUnknownStatus
}
