package interfaces

import (
	"context"

	"github.com/m-mizutani/caskbump/pkg/domain/model"
)

// BumpUseCase runs one bump, either for an explicit tag or for livecheck results
type BumpUseCase interface {
	Run(ctx context.Context, cfg model.BumpConfig) (*model.RunResult, error)
}

// WebhookUseCase defines the interface for webhook event processing
type WebhookUseCase interface {
	// ProcessEvent processes a webhook event
	ProcessEvent(ctx context.Context, event *model.WebhookEvent) error

	// Wait blocks until runs started by ProcessEvent have finished or ctx is done
	Wait(ctx context.Context) error
}
