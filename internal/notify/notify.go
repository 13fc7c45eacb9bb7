// Package notify announces assigned review requests to the team channel.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"prassign/internal/domain"
)

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// FormatMessage renders a review request as Slack mrkdwn. Members with a
// known id are mentioned, the rest are written out by name.
func FormatMessage(req domain.ReviewRequest) string {
	var b strings.Builder

	if req.WorkItem != "" {
		fmt.Fprintf(&b, "*%s*\n", escaper.Replace(req.WorkItem))
	}
	if req.Link != "" {
		fmt.Fprintf(&b, "%s\n", formatLink(req.Link))
	}
	if req.Description != "" {
		fmt.Fprintf(&b, "%s\n", escaper.Replace(req.Description))
	}

	fmt.Fprintf(&b, "Reviewee: %s\n", mention(req.Reviewee.Name, req.Reviewee.ID))

	reviewers := make([]string, 0, len(req.Reviewers))
	for _, r := range req.Reviewers {
		reviewers = append(reviewers, mention(r.Name, r.ID))
	}
	if len(reviewers) == 0 {
		reviewers = append(reviewers, "none")
	}
	fmt.Fprintf(&b, "Reviewers: %s", strings.Join(reviewers, ", "))

	return b.String()
}

// formatLink wraps link in Slack link markup. A link that could break out of
// the markup is written as escaped plain text instead.
func formatLink(link string) string {
	if strings.ContainsAny(link, "<>|") || strings.IndexFunc(link, unicode.IsSpace) >= 0 {
		return escaper.Replace(link)
	}
	return "<" + escaper.Replace(link) + "|click to review>"
}

func mention(name, id string) string {
	if id != "" {
		return "<@" + id + ">"
	}
	return escaper.Replace(name)
}

// LogPublisher writes review requests to the log instead of a chat channel.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, req domain.ReviewRequest) error {
	p.logger.Info("review request",
		"request_id", req.ID,
		"message", FormatMessage(req))
	return nil
}
