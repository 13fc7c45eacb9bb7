package http

import (
	"errors"
	"net/http"

	"prassign/internal/domain"
	"prassign/internal/roster"
	"prassign/internal/service"
)

func submissionFromDto(req ReviewSubmitRequest) domain.Submission {
	return domain.Submission{
		WorkItem:       req.WorkItem,
		Link:           req.Link,
		Description:    req.Description,
		Reviewee:       memberFromDto(req.Reviewee),
		ReviewersText:  req.Reviewers,
		TaskGroup:      req.TaskGroup,
		RequestedCount: req.ReviewerCount,
	}
}

func memberFromDto(m MemberDTO) domain.Member {
	return domain.Member{ID: m.ID, Name: m.Name}
}

func memberToDto(m domain.Member) MemberDTO {
	return MemberDTO{ID: m.ID, Name: m.Name}
}

func reviewToDto(req domain.ReviewRequest) ReviewDTO {
	reviewers := make([]ReviewerDTO, 0, len(req.Reviewers))
	for _, r := range req.Reviewers {
		reviewers = append(reviewers, ReviewerDTO{Name: r.Name, ID: r.ID})
	}

	return ReviewDTO{
		ID:          req.ID,
		WorkItem:    req.WorkItem,
		Link:        req.Link,
		Description: req.Description,
		Reviewee:    memberToDto(req.Reviewee),
		Reviewers:   reviewers,
		TaskGroup:   req.Group,
		CreatedAt:   req.CreatedAt,
	}
}

func groupToDto(g roster.Group) GroupDTO {
	members := make([]string, len(g.Members))
	copy(members, g.Members)
	return GroupDTO{
		Name:    g.Name,
		Size:    len(members),
		Members: members,
	}
}

func teamToDto(t service.TeamOverview) TeamGroupsResponse {
	groups := make([]GroupDTO, 0, len(t.Groups))
	for _, g := range t.Groups {
		groups = append(groups, groupToDto(g))
	}

	return TeamGroupsResponse{
		ChannelID: t.ChannelID,
		Groups:    groups,
		General:   groupToDto(roster.Group{Name: roster.GeneralGroup, Members: t.General}),
	}
}

func mappingDomainErrors(err error) (int, ErrorResponse) {
	var code string
	var status int
	var details []string

	switch {
	case errors.Is(err, domain.ErrMissingSelection):
		status = http.StatusBadRequest
		code = "MISSING_SELECTION"

	case errors.Is(err, domain.ErrInvalidReviewers):
		status = http.StatusBadRequest
		code = "INVALID_REVIEWERS"
		var rej *domain.Rejection
		if errors.As(err, &rej) {
			details = rej.Names
		}

	case errors.Is(err, domain.ErrInvalidReviewerCount):
		status = http.StatusBadRequest
		code = "INVALID_REVIEWER_COUNT"

	case errors.Is(err, domain.ErrTooManyReviewers):
		status = http.StatusBadRequest
		code = "TOO_MANY_REVIEWERS"

	case errors.Is(err, domain.ErrInvalidMember):
		status = http.StatusBadRequest
		code = "BAD_REQUEST"

	default:
		status = http.StatusInternalServerError
		code = "INTERNAL"
	}

	return status, ErrorResponse{
		Error: errorBody{
			Code:    code,
			Message: err.Error(),
			Details: details,
		},
	}
}
