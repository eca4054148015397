package config

import "github.com/urfave/cli/v3"

// GitHub holds GitHub configuration
type GitHub struct {
	Token         string
	WebhookSecret string
	BaseURL       string
}

// Flags returns CLI flags for the GitHub API token
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token used to look up the authenticated account and open pull requests",
			Required:    true,
			Destination: &c.Token,
			Sources:     cli.EnvVars("GITHUB_TOKEN", "HOMEBREW_GITHUB_API_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub API base URL (for GitHub Enterprise)",
			Destination: &c.BaseURL,
			Sources:     cli.EnvVars("CASKBUMP_GITHUB_API_URL"),
		},
	}
}

// WebhookFlags returns CLI flags for receiving GitHub webhooks
func (c *GitHub) WebhookFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-webhook-secret",
			Usage:       "GitHub webhook secret",
			Required:    true,
			Destination: &c.WebhookSecret,
			Sources:     cli.EnvVars("CASKBUMP_GITHUB_WEBHOOK_SECRET"),
		},
	}
}
