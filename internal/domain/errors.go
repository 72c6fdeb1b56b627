package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrHallNotFound     = errors.New("hall not found")
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrSessionNotFound  = errors.New("booking session not found")
)

var (
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)

var (
	ErrValidation         = errors.New("validation error")
	ErrNotAtReview        = errors.New("booking is not at the review step")
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
	ErrSessionFinished    = errors.New("booking session already finished")
)

var (
	ErrSubmissionRejected = errors.New("booking rejected by venue")
	ErrNetworkFailure     = errors.New("venue API unreachable")
	ErrServerFailure      = errors.New("venue API server error")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CheckResult is the outcome of validating one wizard step. Reasons keep the
// order in which the checks ran.
type CheckResult struct {
	Valid   bool
	Reasons []FieldError
}

// ValidationError carries the per-field reasons a step transition was refused.
// It unwraps to ErrValidation so callers can keep matching with errors.Is.
type ValidationError struct {
	Step    Step
	Reasons []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Reasons))
	for _, r := range e.Reasons {
		msgs = append(msgs, fmt.Sprintf("%s: %s", r.Field, r.Message))
	}
	return fmt.Sprintf("step %q invalid: %s", e.Step, strings.Join(msgs, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
