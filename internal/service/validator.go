package service

import (
	"slices"
	"strings"

	"prassign/internal/domain"
	"prassign/internal/roster"
)

const revieweeTag = "[reviewee]"

type Validator struct {
	roster *roster.Roster
}

func NewValidator(r *roster.Roster) *Validator {
	return &Validator{roster: r}
}

// Validate checks a submission against the roster. Rules are applied in order
// and the first failure is returned as a *domain.Rejection.
//
// The reviewee's display name is resolved to its unique roster name first. A
// token naming that roster member is tagged as the reviewee even when it does
// not match the display name itself, e.g. "bob lee" for reviewee "Bob" when
// the roster has "Bob Lee".
func (v *Validator) Validate(sub domain.Submission) (domain.NormalizedSubmission, error) {
	tokens := splitReviewers(sub.ReviewersText)
	group := strings.TrimSpace(sub.TaskGroup)

	if len(tokens) == 0 && group == "" && sub.RequestedCount <= 0 {
		return domain.NormalizedSubmission{}, &domain.Rejection{Reason: domain.ErrMissingSelection}
	}

	pool := v.roster.GeneralPool()

	revieweeName := strings.TrimSpace(sub.Reviewee.Name)
	if name, ok := roster.Resolve(sub.Reviewee.Name, pool); ok {
		revieweeName = name
	}

	explicit := make([]string, 0, len(tokens))
	var invalid []string
	for _, token := range tokens {
		if roster.Matches(token, sub.Reviewee.Name) {
			invalid = append(invalid, token+revieweeTag)
			continue
		}

		name, ok := roster.Resolve(token, pool)
		switch {
		case !ok:
			invalid = append(invalid, token)
		case name == revieweeName:
			invalid = append(invalid, token+revieweeTag)
		case !slices.Contains(explicit, name):
			explicit = append(explicit, name)
		}
	}
	if len(invalid) > 0 {
		return domain.NormalizedSubmission{}, &domain.Rejection{
			Reason: domain.ErrInvalidReviewers,
			Names:  invalid,
		}
	}

	if sub.RequestedCount < 0 || sub.RequestedCount >= len(pool) {
		return domain.NormalizedSubmission{}, &domain.Rejection{
			Reason:   domain.ErrInvalidReviewerCount,
			Count:    sub.RequestedCount,
			PoolSize: len(pool),
		}
	}

	// The reviewee can never be picked, so the total has to stay below the pool size.
	if total := len(explicit) + sub.RequestedCount; total >= len(pool) {
		return domain.NormalizedSubmission{}, &domain.Rejection{
			Reason:   domain.ErrTooManyReviewers,
			Count:    total,
			PoolSize: len(pool),
		}
	}

	key, ok := v.roster.ResolveGroup(group)
	if members, _ := v.roster.Members(key); !ok || len(members) == 0 {
		key = ""
	}

	return domain.NormalizedSubmission{
		Submission:   sub,
		RevieweeName: revieweeName,
		Explicit:     explicit,
		Count:        sub.RequestedCount,
		Group:        key,
		Candidates:   v.roster.GroupMembers(key),
		Pool:         pool,
	}, nil
}

func splitReviewers(text string) []string {
	parts := strings.Split(text, ",")

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
