package notifier

import (
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"newtab-feed/internal/pkg/config"
)

// Config selects the webhook targets. An empty URL disables that target.
type Config struct {
	SlackWebhookURL   string
	DiscordWebhookURL string
	Timeout           time.Duration
}

// LoadConfigFromEnv reads SLACK_WEBHOOK_URL, DISCORD_WEBHOOK_URL and
// NOTIFY_TIMEOUT (1s-1m, default 10s). A malformed URL disables its target.
func LoadConfigFromEnv(logger *slog.Logger, metrics *config.ConfigMetrics) Config {
	s := config.NewSession(logger, metrics)
	cfg := Config{
		SlackWebhookURL:   config.Track(s, "slack_webhook_url", loadWebhookURL("SLACK_WEBHOOK_URL")),
		DiscordWebhookURL: config.Track(s, "discord_webhook_url", loadWebhookURL("DISCORD_WEBHOOK_URL")),
	}
	cfg.Timeout = config.Track(s, "notify_timeout",
		config.LoadEnvDuration("NOTIFY_TIMEOUT", 10*time.Second, func(d time.Duration) error {
			return config.ValidateDuration(d, time.Second, time.Minute)
		}))
	s.Finish()
	return cfg
}

// loadWebhookURL keeps the raw value out of the fallback warning, since
// webhook URLs embed their credentials.
func loadWebhookURL(key string) config.Result[string] {
	r := config.LoadEnvWithFallback(key, "", validateWebhookURL)
	if r.FallbackApplied {
		r.Warning = fmt.Sprintf("invalid %s, target disabled", key)
	}
	return r
}

func validateWebhookURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("webhook url must be http(s), got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("webhook url has no host")
	}
	return nil
}

// New returns a notifier for every configured target, or NoOp when none is.
func New(cfg Config, logger *slog.Logger) Notifier {
	var m Multi
	if cfg.SlackWebhookURL != "" {
		m = append(m, NewSlackNotifier(cfg.SlackWebhookURL, cfg.Timeout, logger))
	}
	if cfg.DiscordWebhookURL != "" {
		m = append(m, NewDiscordNotifier(cfg.DiscordWebhookURL, cfg.Timeout, logger))
	}
	switch len(m) {
	case 0:
		return NoOp{}
	case 1:
		return m[0]
	default:
		return m
	}
}
