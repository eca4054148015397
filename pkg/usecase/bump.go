package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/m-mizutani/caskbump/pkg/domain/interfaces"
	"github.com/m-mizutani/caskbump/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// BumpClients holds the external collaborators of a bump run
type BumpClients struct {
	Accounts  interfaces.AccountSource
	Identity  interfaces.IdentityConfigurer
	Bumper    interfaces.Bumper
	Manifests interfaces.ManifestLoader
	Scan      interfaces.ScanQuery
	Upstream  interfaces.UpstreamURLBuilder // optional
}

// BumpOption configures the bump use case
type BumpOption func(*bumpUseCase)

// WithNotifier reports every finished run to n
func WithNotifier(n interfaces.Notifier) BumpOption {
	return func(uc *bumpUseCase) {
		uc.notifier = n
	}
}

type bumpUseCase struct {
	accounts interfaces.AccountSource
	identity interfaces.IdentityConfigurer
	bumper   interfaces.Bumper
	resolver *Resolver
	scanner  *Scanner
	notifier interfaces.Notifier
}

// NewBump creates a new instance of BumpUseCase
func NewBump(clients BumpClients, opts ...BumpOption) interfaces.BumpUseCase {
	uc := &bumpUseCase{
		accounts: clients.Accounts,
		identity: clients.Identity,
		bumper:   clients.Bumper,
		resolver: NewResolver(clients.Manifests, clients.Upstream),
		scanner:  NewScanner(clients.Scan),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Run performs one bump run. The returned error is the fatal error of the run, or in
// scan mode the last failed bump once every candidate was attempted.
func (uc *bumpUseCase) Run(ctx context.Context, cfg model.BumpConfig) (*model.RunResult, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &model.RunResult{ID: uuid.NewString()}
	logger := ctxlog.From(ctx).With("run_id", result.ID)
	ctx = ctxlog.With(ctx, logger)

	logger.Info("Starting bump run",
		"livecheck", cfg.ScanMode(),
		"tap", cfg.Tap,
		"casks", cfg.Names,
		"tag", string(cfg.Tag),
		"dry_run", cfg.DryRun.Enabled(),
	)

	if err := uc.setup(ctx, cfg); err != nil {
		return nil, err
	}

	var err error
	if cfg.ScanMode() {
		err = uc.runScan(ctx, cfg, result)
	} else {
		err = uc.runExplicit(ctx, cfg, result)
	}

	uc.notify(ctx, cfg, result)

	if err != nil {
		return result, err
	}

	logger.Info("Bump run completed",
		"no_op", result.NoOp,
		"bumped", len(result.Outcomes),
	)
	return result, nil
}

func validateConfig(cfg model.BumpConfig) error {
	if cfg.ScanMode() {
		return nil
	}

	if len(cfg.Names) == 0 {
		return goerr.Wrap(model.ErrInvalidInput, "cask is required without livecheck")
	}
	if len(cfg.Names) > 1 {
		return goerr.Wrap(model.ErrInvalidInput, "only one cask can be bumped to a tag", goerr.V("casks", cfg.Names))
	}
	if cfg.Tag.Name() == "" {
		return goerr.Wrap(model.ErrInvalidInput, "tag is required without livecheck")
	}
	if _, err := cfg.Tag.Version(); err != nil {
		return goerr.Wrap(err, "failed to parse release tag", goerr.V("tag", string(cfg.Tag)))
	}

	return nil
}

// setup configures the commit identity and taps the tap
func (uc *bumpUseCase) setup(ctx context.Context, cfg model.BumpConfig) error {
	account, err := uc.accounts.GetAccount(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to get account")
	}

	identity := ResolveIdentity(account)
	if err := uc.identity.SetIdentity(ctx, identity); err != nil {
		return goerr.Wrap(err, "failed to configure commit identity", goerr.V("name", identity.Name))
	}

	ctxlog.From(ctx).Debug("Configured commit identity",
		"name", identity.Name,
		"email", identity.Email,
	)

	if cfg.Tap != "" {
		if err := uc.bumper.Tap(ctx, cfg.Tap); err != nil {
			return goerr.Wrap(err, "failed to tap", goerr.V("tap", cfg.Tap))
		}
	}

	return nil
}

func (uc *bumpUseCase) runExplicit(ctx context.Context, cfg model.BumpConfig, result *model.RunResult) error {
	entry := model.ManifestEntry{Tap: cfg.Tap, Name: cfg.Names[0]}

	res, err := uc.resolver.Resolve(ctx, entry, cfg.Tag)
	if err != nil {
		return err
	}
	if res.UpToDate {
		result.NoOp = true
		return nil
	}

	if res.InstallHelper != "" {
		if err := uc.bumper.Install(ctx, res.InstallHelper); err != nil {
			return goerr.Wrap(err, "failed to install helper", goerr.V("formula", res.InstallHelper))
		}
	}

	outcome := uc.bump(ctx, cfg, res.Candidate)
	result.Record(outcome)
	if outcome.Err != nil {
		return goerr.Wrap(outcome.Err, "failed to bump cask",
			goerr.V("cask", res.Candidate.Name),
			goerr.V("version", res.Candidate.Version),
		)
	}

	return nil
}

func (uc *bumpUseCase) runScan(ctx context.Context, cfg model.BumpConfig, result *model.RunResult) error {
	logger := ctxlog.From(ctx)

	candidates, err := uc.scanner.Scan(ctx, cfg.Tap, cfg.Names)
	if err != nil {
		return err
	}

	for candidate := range candidates {
		outcome := uc.bump(ctx, cfg, candidate)

		var cmdErr *model.CommandError
		if outcome.Err != nil && !errors.As(outcome.Err, &cmdErr) {
			result.Record(outcome)
			return goerr.Wrap(outcome.Err, "failed to run bump", goerr.V("cask", candidate.Name))
		}

		result.Record(outcome)
		if outcome.Err != nil {
			logger.Warn("Failed to bump cask, continuing",
				"cask", candidate.Name,
				"version", candidate.Version,
				"error", outcome.Err,
			)
		}
	}

	if err := result.Err(); err != nil {
		return goerr.Wrap(err, "failed to bump some casks",
			goerr.V("failed", result.Failed()),
			goerr.V("attempted", len(result.Outcomes)),
		)
	}

	return nil
}

func (uc *bumpUseCase) bump(ctx context.Context, cfg model.BumpConfig, candidate model.BumpCandidate) model.BumpOutcome {
	req := &model.BumpRequest{
		Message: ComposeMessage(cfg.Message),
		Version: candidate.Version,
		URL:     candidate.URL,
		ForkOrg: cfg.ForkOrg,
		Force:   cfg.Force.Enabled(),
		DryRun:  cfg.DryRun.Enabled(),
		Names:   []string{candidate.Name},
	}

	ctxlog.From(ctx).Info("Bumping cask",
		"cask", candidate.Name,
		"version", candidate.Version,
		"url", candidate.URL,
	)

	return model.BumpOutcome{
		Candidate: candidate,
		Err:       uc.bumper.BumpCaskPR(ctx, req),
	}
}

func (uc *bumpUseCase) notify(ctx context.Context, cfg model.BumpConfig, result *model.RunResult) {
	if uc.notifier == nil {
		return
	}
	if err := uc.notifier.NotifyRun(ctx, cfg, result); err != nil {
		ctxlog.From(ctx).Warn("Failed to notify run result", "error", err)
	}
}
