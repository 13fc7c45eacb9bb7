package domain

import "time"

// Member is the identity value used at the core boundary: a platform id plus
// the display name the platform reported for it.
type Member struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Submission struct {
	WorkItem       string
	Link           string
	Description    string
	Reviewee       Member
	ReviewersText  string
	TaskGroup      string
	RequestedCount int
}

// NormalizedSubmission is a submission that passed validation.
type NormalizedSubmission struct {
	Submission

	// RevieweeName is the roster spelling of the reviewee when it resolves
	// uniquely, otherwise the raw display name.
	RevieweeName string
	Explicit     []string
	Count        int
	// Group is the resolved group key, empty when falling back to the general pool.
	Group string
	// Candidates are the group members, or the general pool on fallback.
	Candidates []string
	Pool       []string
}

type Reviewer struct {
	Name string
	ID   string
}

type ReviewRequest struct {
	ID          string
	WorkItem    string
	Link        string
	Description string
	Reviewee    Member
	Reviewers   []Reviewer
	Group       string
	CreatedAt   time.Time
}
