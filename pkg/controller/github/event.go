package github

import (
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/caskbump/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// NewWebhookEvent converts a payload parsed by github.ParseWebHook into a domain event.
// Payloads other than release and ping become EventTypeUnknown.
func NewWebhookEvent(deliveryID, eventType string, payload any, receivedAt time.Time) (*model.WebhookEvent, error) {
	event := &model.WebhookEvent{
		ID:         deliveryID,
		Type:       model.WebhookEventType(eventType),
		ReceivedAt: receivedAt,
	}

	switch e := payload.(type) {
	case *github.ReleaseEvent:
		event.Action = e.GetAction()
		event.Repository = e.GetRepo().GetFullName()
		event.Sender = e.GetSender().GetLogin()

		release, err := extractReleaseInfo(e)
		if err != nil {
			return nil, err
		}
		event.Release = release

	case *github.PingEvent:
		event.Repository = e.GetRepo().GetFullName()
		event.Sender = e.GetSender().GetLogin()

	default:
		event.Type = model.EventTypeUnknown
	}

	return event, nil
}

// extractReleaseInfo extracts release information from a GitHub release event
func extractReleaseInfo(event *github.ReleaseEvent) (*model.ReleaseInfo, error) {
	if event.GetRepo() == nil {
		return nil, goerr.Wrap(model.ErrInvalidInput, "missing repository information in release event")
	}

	if event.GetRelease() == nil {
		return nil, goerr.Wrap(model.ErrInvalidInput, "missing release information in release event")
	}

	// Use Get*() helper methods for concise and nil-safe field access
	owner := event.GetRepo().GetOwner().GetLogin()
	repo := event.GetRepo().GetName()
	tagName := event.GetRelease().GetTagName()

	if owner == "" || repo == "" || tagName == "" {
		return nil, goerr.Wrap(model.ErrInvalidInput, "missing required fields in release event",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("tag", tagName),
		)
	}

	return &model.ReleaseInfo{
		Owner:       owner,
		Repo:        repo,
		TagName:     tagName,
		ReleaseName: event.GetRelease().GetName(),
		Prerelease:  event.GetRelease().GetPrerelease(),
	}, nil
}
