package usecase

import (
	"context"
	"sync"

	"github.com/m-mizutani/caskbump/pkg/domain/interfaces"
	"github.com/m-mizutani/caskbump/pkg/domain/model"
	"github.com/m-mizutani/caskbump/pkg/domain/types"
	"github.com/m-mizutani/caskbump/pkg/utils/async"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// WebhookOption configures the webhook use case
type WebhookOption func(*webhookUseCase)

// WithDispatcher replaces async.Dispatch, mainly for tests
func WithDispatcher(dispatch func(ctx context.Context, handler func(ctx context.Context) error)) WebhookOption {
	return func(uc *webhookUseCase) {
		uc.dispatch = dispatch
	}
}

// WithBumpFlags sets the force and dry-run flags of triggered runs
func WithBumpFlags(force, dryRun types.Flag) WebhookOption {
	return func(uc *webhookUseCase) {
		uc.force = force
		uc.dryRun = dryRun
	}
}

type webhookUseCase struct {
	bump     interfaces.BumpUseCase
	routes   *model.Routes
	force    types.Flag
	dryRun   types.Flag
	dispatch func(ctx context.Context, handler func(ctx context.Context) error)

	// runs touch global git and brew state, so only one may be active
	mu sync.Mutex
	// in-flight runs, drained on shutdown
	wg sync.WaitGroup
}

// NewWebhook creates a new instance of WebhookUseCase that bumps routed casks on releases
func NewWebhook(bump interfaces.BumpUseCase, routes *model.Routes, opts ...WebhookOption) interfaces.WebhookUseCase {
	if routes == nil {
		routes = &model.Routes{}
	}

	uc := &webhookUseCase{
		bump:     bump,
		routes:   routes,
		dispatch: async.Dispatch,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// ProcessEvent starts an explicit-tag bump for a routed release event
func (uc *webhookUseCase) ProcessEvent(ctx context.Context, event *model.WebhookEvent) error {
	logger := ctxlog.From(ctx)

	logger.Info("Processing webhook event",
		"id", event.ID,
		"type", event.Type,
		"action", event.Action,
		"repository", event.Repository,
		"sender", event.Sender,
		"supported", event.IsSupportedEvent(),
	)

	if !event.IsSupportedEvent() {
		logger.Debug("Ignoring unsupported event",
			"type", event.Type,
			"action", event.Action,
		)
		return nil
	}

	route, ok := uc.routes.Find(event.Repository)
	if !ok {
		logger.Info("No route for repository", "repository", event.Repository)
		return nil
	}

	if event.Release.Prerelease && !route.Prerelease {
		logger.Info("Ignoring prerelease",
			"repository", event.Repository,
			"tag", event.Release.TagName,
		)
		return nil
	}

	cfg := model.BumpConfig{
		Tap:     route.Tap,
		Names:   []string{route.Cask},
		Tag:     model.ReleaseTag(event.Release.TagName),
		Message: route.Message,
		ForkOrg: route.ForkOrg,
		Force:   uc.force,
		DryRun:  uc.dryRun,
	}

	logger.Info("Dispatching bump for release",
		"repository", event.Repository,
		"tag", event.Release.TagName,
		"cask", model.ManifestEntry{Tap: route.Tap, Name: route.Cask}.FullName(),
	)

	uc.wg.Add(1)
	uc.dispatch(ctx, func(ctx context.Context) error {
		defer uc.wg.Done()

		uc.mu.Lock()
		defer uc.mu.Unlock()

		_, err := uc.bump.Run(ctx, cfg)
		return err
	})

	return nil
}

// Wait blocks until every dispatched run has finished. It returns ctx.Err() when
// ctx ends first; the runs keep going in that case.
func (uc *webhookUseCase) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		uc.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return goerr.Wrap(ctx.Err(), "bump runs still in progress")
	}
}
