package config

import (
	"github.com/m-mizutani/caskbump/pkg/utils/errutil"
	"github.com/urfave/cli/v3"
)

// Notify holds run reporting configuration
type Notify struct {
	SlackWebhookURL string
	SentryDSN       string
	SentryEnv       string
}

// Flags returns CLI flags for Slack and Sentry
func (c *Notify) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook URL for run summaries",
			Destination: &c.SlackWebhookURL,
			Sources:     cli.EnvVars("CASKBUMP_SLACK_WEBHOOK_URL"),
		},
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN for error reports",
			Destination: &c.SentryDSN,
			Sources:     cli.EnvVars("CASKBUMP_SENTRY_DSN", "SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Value:       "production",
			Destination: &c.SentryEnv,
			Sources:     cli.EnvVars("CASKBUMP_SENTRY_ENV"),
		},
	}
}

// InitSentry enables error reporting when a DSN is given
func (c *Notify) InitSentry() error {
	return errutil.InitSentry(c.SentryDSN, c.SentryEnv)
}
