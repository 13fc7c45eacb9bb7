package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/slack-go/slack"

	"prassign/internal/domain"
)

const (
	publishAttempts = 3
	publishDelay    = 500 * time.Millisecond
	publishMaxDelay = 5 * time.Second
)

var ErrNoChannel = errors.New("no channel configured")

type Slack struct {
	client    *slack.Client
	channelID string
	logger    *slog.Logger
}

func NewSlack(token, channelID string, logger *slog.Logger, opts ...slack.Option) *Slack {
	return &Slack{
		client:    slack.New(token, opts...),
		channelID: channelID,
		logger:    logger,
	}
}

// Publish posts the request to the configured channel, retrying transient
// failures with backoff.
func (s *Slack) Publish(ctx context.Context, req domain.ReviewRequest) error {
	if s.channelID == "" {
		return ErrNoChannel
	}

	text := FormatMessage(req)

	err := retry.Do(
		func() error {
			_, _, err := s.client.PostMessageContext(ctx, s.channelID,
				slack.MsgOptionText(text, false),
			)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(publishAttempts),
		retry.DelayType(retry.CombineDelay(retry.BackOffDelay, retry.RandomDelay)),
		retry.Delay(publishDelay),
		retry.MaxDelay(publishMaxDelay),
		retry.OnRetry(func(n uint, err error) {
			s.logger.Warn("slack post failed, retrying",
				"request_id", req.ID,
				"attempt", n+1,
				"error", err)
		}),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return fmt.Errorf("post to slack channel %s: %w", s.channelID, err)
	}

	s.logger.Debug("review request posted", "request_id", req.ID, "channel", s.channelID)
	return nil
}
