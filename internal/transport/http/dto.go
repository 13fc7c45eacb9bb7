package http

import "time"

type errorBody struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type ErrorResponse struct {
	Error errorBody `json:"error"`
}

type MemberDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ReviewSubmitRequest struct {
	WorkItem      string    `json:"work_item"`
	Link          string    `json:"link"`
	Description   string    `json:"description"`
	Reviewee      MemberDTO `json:"reviewee"`
	Reviewers     string    `json:"reviewers"`
	TaskGroup     string    `json:"task_group"`
	ReviewerCount int       `json:"reviewer_count"`
}

type ReviewerDTO struct {
	Name string `json:"name"`
	ID   string `json:"id,omitempty"`
}

type ReviewDTO struct {
	ID          string        `json:"review_id"`
	WorkItem    string        `json:"work_item"`
	Link        string        `json:"link"`
	Description string        `json:"description"`
	Reviewee    MemberDTO     `json:"reviewee"`
	Reviewers   []ReviewerDTO `json:"reviewers"`
	TaskGroup   string        `json:"task_group,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}

type ReviewSubmitResponse struct {
	Review ReviewDTO `json:"review"`
}

type GroupDTO struct {
	Name    string   `json:"name"`
	Size    int      `json:"size"`
	Members []string `json:"members"`
}

type TeamGroupsResponse struct {
	ChannelID string     `json:"channel_id"`
	Groups    []GroupDTO `json:"groups"`
	General   GroupDTO   `json:"general"`
}

type MemberRegisterResponse struct {
	Member MemberDTO `json:"member"`
}

type MembersListResponse struct {
	Members []MemberDTO `json:"members"`
}
