package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"prassign/internal/domain"
	"prassign/internal/roster"
)

type MemberRegistry interface {
	Register(ctx context.Context, member domain.Member) error
	All() []domain.Member
	IDForName(name string) (string, bool)
}

type Publisher interface {
	Publish(ctx context.Context, req domain.ReviewRequest) error
}

type TeamOverview struct {
	ChannelID string
	Groups    []roster.Group
	General   []string
}

type Service struct {
	roster    *roster.Roster
	validator *Validator
	engine    *Engine
	members   MemberRegistry
	publisher Publisher
	logger    *slog.Logger

	now   func() time.Time
	newID func() string
}

func NewService(r *roster.Roster, engine *Engine, members MemberRegistry, publisher Publisher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		roster:    r,
		validator: NewValidator(r),
		engine:    engine,
		members:   members,
		publisher: publisher,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

// Submit validates a review request, picks its reviewers and publishes the
// result to the team channel. Rejections are returned as *domain.Rejection.
func (s *Service) Submit(ctx context.Context, sub domain.Submission) (domain.ReviewRequest, error) {
	ns, err := s.validator.Validate(sub)
	if err != nil {
		s.logger.Info("review request rejected",
			"work_item", sub.WorkItem,
			"reviewee", sub.Reviewee.Name,
			"error", err)

		return domain.ReviewRequest{}, err
	}

	names := s.engine.Assign(ns)

	if sub.Reviewee.ID != "" {
		if err := s.members.Register(ctx, sub.Reviewee); err != nil {
			s.logger.Warn("failed to remember reviewee",
				"member_id", sub.Reviewee.ID,
				"error", err)
		}
	}

	req := domain.ReviewRequest{
		ID:          s.newID(),
		WorkItem:    sub.WorkItem,
		Link:        sub.Link,
		Description: sub.Description,
		Reviewee:    sub.Reviewee,
		Reviewers:   make([]domain.Reviewer, 0, len(names)),
		Group:       ns.Group,
		CreatedAt:   s.now(),
	}
	for _, name := range names {
		id, _ := s.members.IDForName(name)
		req.Reviewers = append(req.Reviewers, domain.Reviewer{Name: name, ID: id})
	}

	s.logger.Info("reviewers assigned",
		"request_id", req.ID,
		"work_item", req.WorkItem,
		"group", req.Group,
		"reviewers", strings.Join(names, ", "))

	if err := s.publisher.Publish(ctx, req); err != nil {
		s.logger.Error("failed to publish review request",
			"request_id", req.ID,
			"error", err)
	}

	return req, nil
}

func (s *Service) Team() TeamOverview {
	return TeamOverview{
		ChannelID: s.roster.ChannelID(),
		Groups:    s.roster.Groups(),
		General:   s.roster.GeneralPool(),
	}
}

func (s *Service) RegisterMember(ctx context.Context, member domain.Member) (domain.Member, error) {
	member.ID = strings.TrimSpace(member.ID)
	member.Name = strings.TrimSpace(member.Name)
	if member.ID == "" {
		return domain.Member{}, fmt.Errorf("%w: id is required", domain.ErrInvalidMember)
	}

	if err := s.members.Register(ctx, member); err != nil {
		return domain.Member{}, err
	}
	return member, nil
}

func (s *Service) Members() []domain.Member {
	return s.members.All()
}
