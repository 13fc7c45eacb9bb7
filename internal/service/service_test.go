package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"prassign/internal/domain"
	"prassign/internal/roster"
	"prassign/internal/service/mocks"
)

var fixedNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, members MemberRegistry, publisher Publisher) *Service {
	t.Helper()

	svc := NewService(smallRoster(t), seeded(1), members, publisher, slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc.now = func() time.Time { return fixedNow }
	svc.newID = func() string { return "req-1" }
	return svc
}

func TestService_Submit_Success(t *testing.T) {
	ctx := context.Background()

	registry := mocks.NewMemberRegistry(t)
	publisher := mocks.NewPublisher(t)

	reviewee := domain.Member{ID: "U1", Name: "Alice"}

	registry.
		On("Register", ctx, reviewee).
		Return(nil).Once()

	registry.
		On("IDForName", "Bob").
		Return("U2", true).Once()

	publisher.
		On("Publish", ctx, mock.MatchedBy(func(req domain.ReviewRequest) bool {
			return req.ID == "req-1" && len(req.Reviewers) == 1 && req.Reviewers[0].ID == "U2"
		})).
		Return(nil).Once()

	svc := newTestService(t, registry, publisher)

	got, err := svc.Submit(ctx, domain.Submission{
		WorkItem:       "WI-42",
		Link:           "https://example.test/pr/42",
		Description:    "fix the flaky test",
		Reviewee:       reviewee,
		TaskGroup:      "a",
		RequestedCount: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ReviewRequest{
		ID:          "req-1",
		WorkItem:    "WI-42",
		Link:        "https://example.test/pr/42",
		Description: "fix the flaky test",
		Reviewee:    reviewee,
		Reviewers:   []domain.Reviewer{{Name: "Bob", ID: "U2"}},
		Group:       "A",
		CreatedAt:   fixedNow,
	}, got)
}

func TestService_Submit_Rejected(t *testing.T) {
	ctx := context.Background()

	registry := mocks.NewMemberRegistry(t)
	publisher := mocks.NewPublisher(t)

	svc := newTestService(t, registry, publisher)

	_, err := svc.Submit(ctx, domain.Submission{
		Reviewee:      domain.Member{ID: "U1", Name: "Alice"},
		ReviewersText: "Alice",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidReviewers))
	assert.Contains(t, err.Error(), "Alice[reviewee]")

	registry.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestService_Submit_SideEffectFailuresDoNotFailRequest(t *testing.T) {
	ctx := context.Background()

	registry := mocks.NewMemberRegistry(t)
	publisher := mocks.NewPublisher(t)

	reviewee := domain.Member{ID: "U2", Name: "Bob"}

	registry.
		On("Register", ctx, reviewee).
		Return(errors.New("disk full")).Once()

	registry.
		On("IDForName", mock.AnythingOfType("string")).
		Return("", false).Twice()

	publisher.
		On("Publish", ctx, mock.AnythingOfType("domain.ReviewRequest")).
		Return(errors.New("channel not found")).Once()

	svc := newTestService(t, registry, publisher)

	got, err := svc.Submit(ctx, domain.Submission{
		Reviewee:       reviewee,
		TaskGroup:      "A",
		RequestedCount: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.Reviewer{{Name: "Alice"}, {Name: "Carol"}}, got.Reviewers)
	assert.Equal(t, "A", got.Group)
}

func TestService_Submit_AnonymousRevieweeIsNotRegistered(t *testing.T) {
	ctx := context.Background()

	registry := mocks.NewMemberRegistry(t)
	publisher := mocks.NewPublisher(t)

	registry.
		On("IDForName", "Carol").
		Return("U3", true).Once()

	publisher.
		On("Publish", ctx, mock.AnythingOfType("domain.ReviewRequest")).
		Return(nil).Once()

	svc := newTestService(t, registry, publisher)

	got, err := svc.Submit(ctx, domain.Submission{
		Reviewee:      domain.Member{Name: "Alice"},
		ReviewersText: "carol",
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.Reviewer{{Name: "Carol", ID: "U3"}}, got.Reviewers)

	registry.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestService_RegisterMember(t *testing.T) {
	ctx := context.Background()

	t.Run("requires_id", func(t *testing.T) {
		svc := newTestService(t, mocks.NewMemberRegistry(t), mocks.NewPublisher(t))

		_, err := svc.RegisterMember(ctx, domain.Member{ID: "  ", Name: "Alice"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidMember))
	})

	t.Run("trims_and_stores", func(t *testing.T) {
		registry := mocks.NewMemberRegistry(t)
		registry.
			On("Register", ctx, domain.Member{ID: "U1", Name: "Alice"}).
			Return(nil).Once()

		svc := newTestService(t, registry, mocks.NewPublisher(t))

		got, err := svc.RegisterMember(ctx, domain.Member{ID: " U1 ", Name: "Alice "})
		require.NoError(t, err)
		assert.Equal(t, domain.Member{ID: "U1", Name: "Alice"}, got)
	})

	t.Run("store_error", func(t *testing.T) {
		registry := mocks.NewMemberRegistry(t)
		storeErr := errors.New("boom")
		registry.
			On("Register", ctx, mock.AnythingOfType("domain.Member")).
			Return(storeErr).Once()

		svc := newTestService(t, registry, mocks.NewPublisher(t))

		_, err := svc.RegisterMember(ctx, domain.Member{ID: "U1", Name: "Alice"})
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestService_Team(t *testing.T) {
	svc := newTestService(t, mocks.NewMemberRegistry(t), mocks.NewPublisher(t))

	team := svc.Team()
	assert.Equal(t, "C1", team.ChannelID)
	assert.Equal(t, []roster.Group{
		{Name: "A", Members: []string{"Alice", "Bob"}},
		{Name: "B", Members: []string{"Carol"}},
	}, team.Groups)
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, team.General)
}

func TestService_Members(t *testing.T) {
	registry := mocks.NewMemberRegistry(t)
	registry.
		On("All").
		Return([]domain.Member{{ID: "U1", Name: "Alice"}}).Once()

	svc := newTestService(t, registry, mocks.NewPublisher(t))

	assert.Equal(t, []domain.Member{{ID: "U1", Name: "Alice"}}, svc.Members())
}
