package notifier

import (
	"context"
	"log/slog"
	"time"
)

// Discord embed colors.
const (
	colorDegraded  = 0xE67E22
	colorRecovered = 0x2ECC71
)

const maxEmbedDescription = 4096

// DiscordNotifier posts alerts to a Discord webhook as a single embed.
type DiscordNotifier struct {
	hook *webhook
}

func NewDiscordNotifier(webhookURL string, timeout time.Duration, logger *slog.Logger) *DiscordNotifier {
	return &DiscordNotifier{hook: newWebhook("discord", webhookURL, timeout, logger)}
}

type discordPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Color       int           `json:"color"`
	Timestamp   string        `json:"timestamp"`
	Footer      discordFooter `json:"footer"`
}

type discordFooter struct {
	Text string `json:"text"`
}

func (d *DiscordNotifier) Notify(ctx context.Context, alert Alert) error {
	return d.hook.send(ctx, buildDiscordPayload(alert))
}

func buildDiscordPayload(a Alert) discordPayload {
	color := colorDegraded
	if a.Level == LevelRecovered {
		color = colorRecovered
	}
	return discordPayload{Embeds: []discordEmbed{{
		Title:       headline(a),
		Description: truncate(detail(a), maxEmbedDescription),
		Color:       color,
		Timestamp:   a.At.UTC().Format(time.RFC3339),
		Footer:      discordFooter{Text: "took " + a.Duration.Round(time.Millisecond).String()},
	}}}
}
