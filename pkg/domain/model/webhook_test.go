package model_test

import (
	"testing"

	"github.com/m-mizutani/caskbump/pkg/domain/model"
)

func TestWebhookEvent_IsSupportedEvent(t *testing.T) {
	release := &model.ReleaseInfo{Owner: "owner", Repo: "app", TagName: "v1.0.0"}

	tests := []struct {
		name     string
		event    *model.WebhookEvent
		expected bool
	}{
		{
			name: "Release released - supported",
			event: &model.WebhookEvent{
				Type:    model.EventTypeRelease,
				Action:  "released",
				Release: release,
			},
			expected: true,
		},
		{
			name: "Release prereleased - supported",
			event: &model.WebhookEvent{
				Type:    model.EventTypeRelease,
				Action:  "prereleased",
				Release: release,
			},
			expected: true,
		},
		{
			name: "Release created - not supported",
			event: &model.WebhookEvent{
				Type:    model.EventTypeRelease,
				Action:  "created",
				Release: release,
			},
			expected: false,
		},
		{
			name: "Release without release info",
			event: &model.WebhookEvent{
				Type:   model.EventTypeRelease,
				Action: "released",
			},
			expected: false,
		},
		{
			name: "Ping event",
			event: &model.WebhookEvent{
				Type: model.EventTypePing,
			},
			expected: false,
		},
		{
			name: "Different event type",
			event: &model.WebhookEvent{
				Type:   model.WebhookEventType("issues"),
				Action: "opened",
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.event.IsSupportedEvent()
			if got != tt.expected {
				t.Errorf("IsSupportedEvent() = %v, want %v", got, tt.expected)
			}
		})
	}
}
