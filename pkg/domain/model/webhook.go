package model

import "time"

// WebhookEventType represents the type of webhook event received
type WebhookEventType string

const (
	EventTypeRelease WebhookEventType = "release"
	EventTypePing    WebhookEventType = "ping"
	EventTypeUnknown WebhookEventType = "unknown"
)

// WebhookEvent represents a webhook event received from GitHub
type WebhookEvent struct {
	ID         string           // Retrieved from X-GitHub-Delivery header
	Type       WebhookEventType // Retrieved from X-GitHub-Event header
	Action     string           // Event action (e.g., released)
	Repository string           // Repository full name
	Sender     string           // Sender username
	ReceivedAt time.Time        // Time when the event was received
	Release    *ReleaseInfo     // Set for release events
}

// IsSupportedEvent checks if the event can trigger a bump
func (e *WebhookEvent) IsSupportedEvent() bool {
	switch e.Type {
	case EventTypeRelease:
		return e.Release != nil && (e.Action == "released" || e.Action == "prereleased")
	default:
		return false
	}
}
