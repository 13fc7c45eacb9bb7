package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingSelection     = errors.New("no reviewers, task group or reviewer count given")
	ErrInvalidReviewers     = errors.New("invalid reviewers")
	ErrInvalidReviewerCount = errors.New("invalid reviewer count")
	ErrTooManyReviewers     = errors.New("too many reviewers")
	ErrInvalidMember        = errors.New("invalid member")
)

// Rejection is the outcome of a submission that failed validation. It wraps
// one of the sentinel errors above so callers can match it with errors.Is.
type Rejection struct {
	Reason error
	// Names holds the offending reviewer tokens for ErrInvalidReviewers.
	Names []string
	// Count is the requested count, or explicit+requested for ErrTooManyReviewers.
	Count    int
	PoolSize int
}

func (r *Rejection) Error() string {
	switch {
	case errors.Is(r.Reason, ErrInvalidReviewers):
		return fmt.Sprintf("%v: %s", r.Reason, strings.Join(r.Names, ", "))
	case errors.Is(r.Reason, ErrInvalidReviewerCount):
		return fmt.Sprintf("%v: %d (must be at least 0 and less than %d)", r.Reason, r.Count, r.PoolSize)
	case errors.Is(r.Reason, ErrTooManyReviewers):
		return fmt.Sprintf("%v: %d requested, team has %d members", r.Reason, r.Count, r.PoolSize)
	default:
		return r.Reason.Error()
	}
}

func (r *Rejection) Unwrap() error {
	return r.Reason
}
