package slack

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/caskbump/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// Notifier posts run results to a Slack incoming webhook
type Notifier struct {
	webhookURL string
	post       func(ctx context.Context, url string, msg *slack.WebhookMessage) error
}

// New creates a Notifier posting to webhookURL
func New(webhookURL string) *Notifier {
	return &Notifier{
		webhookURL: webhookURL,
		post:       slack.PostWebhookContext,
	}
}

// NotifyRun posts a summary of result. No-op runs are not posted.
func (n *Notifier) NotifyRun(ctx context.Context, cfg model.BumpConfig, result *model.RunResult) error {
	if result == nil || result.NoOp {
		return nil
	}

	msg := &slack.WebhookMessage{
		Text: FormatRun(cfg, result),
	}
	if err := n.post(ctx, n.webhookURL, msg); err != nil {
		return goerr.Wrap(err, "failed to post Slack message", goerr.V("run_id", result.ID))
	}
	return nil
}

// FormatRun renders a run result as Slack mrkdwn
func FormatRun(cfg model.BumpConfig, result *model.RunResult) string {
	var sb strings.Builder

	mode := "tag " + cfg.Tag.Name()
	if cfg.ScanMode() {
		mode = "livecheck"
	}
	if cfg.DryRun.Enabled() {
		mode += ", dry run"
	}

	failed := result.Failed()
	if failed == 0 {
		sb.WriteString(fmt.Sprintf(":white_check_mark: caskbump (%s): %d bumped\n", mode, len(result.Outcomes)))
	} else {
		sb.WriteString(fmt.Sprintf(":x: caskbump (%s): %d of %d failed\n", mode, failed, len(result.Outcomes)))
	}

	for _, o := range result.Outcomes {
		status := "ok"
		if !o.Succeeded() {
			status = "failed"
		}
		sb.WriteString(fmt.Sprintf("• `%s` → %s: %s\n", o.Candidate.Name, o.Candidate.Version, status))
	}

	return sb.String()
}
