package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Slack Block Kit limits.
const (
	maxSectionTextLength = 3000
	maxFallbackLength    = 150
)

// SlackNotifier posts alerts to a Slack incoming webhook. Slack allows one
// message per second per webhook.
type SlackNotifier struct {
	hook *webhook
}

func NewSlackNotifier(webhookURL string, timeout time.Duration, logger *slog.Logger) *SlackNotifier {
	return &SlackNotifier{hook: newWebhook("slack", webhookURL, timeout, logger)}
}

type slackPayload struct {
	Text   string       `json:"text"`
	Blocks []slackBlock `json:"blocks"`
}

type slackBlock struct {
	Type     string       `json:"type"`
	Text     *slackText   `json:"text,omitempty"`
	Elements []*slackText `json:"elements,omitempty"`
}

type slackText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func (s *SlackNotifier) Notify(ctx context.Context, alert Alert) error {
	return s.hook.send(ctx, buildSlackPayload(alert))
}

func buildSlackPayload(a Alert) slackPayload {
	body := fmt.Sprintf("*%s*\n%s", headline(a), detail(a))
	return slackPayload{
		Text: truncate(headline(a), maxFallbackLength),
		Blocks: []slackBlock{
			{Type: "section", Text: &slackText{Type: "mrkdwn", Text: truncate(body, maxSectionTextLength)}},
			{Type: "context", Elements: []*slackText{{Type: "mrkdwn", Text: footer(a)}}},
		},
	}
}

func headline(a Alert) string {
	if a.Level == LevelRecovered {
		return "newtab-feed: cache warming recovered"
	}
	return fmt.Sprintf("newtab-feed: cache warming %s", a.Status)
}

func detail(a Alert) string {
	if len(a.Degraded) == 0 {
		return fmt.Sprintf("all %d kinds served from cache or providers", a.Kinds)
	}
	return fmt.Sprintf("%d of %d kinds degraded: %s", len(a.Degraded), a.Kinds, strings.Join(a.Degraded, ", "))
}

func footer(a Alert) string {
	return fmt.Sprintf("%s • took %s", a.At.UTC().Format(time.RFC3339), a.Duration.Round(time.Millisecond))
}

// truncate cuts s to at most n bytes, marking the cut with "...".
func truncate(s string, n int) string {
	const suffix = "..."
	if len(s) <= n {
		return s
	}
	cut := n - len(suffix)
	if cut < 0 {
		cut = 0
	}
	return s[:cut] + suffix
}
