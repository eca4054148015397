package cli

import (
	"context"

	"github.com/m-mizutani/caskbump/pkg/cli/config"
	"github.com/m-mizutani/caskbump/pkg/domain/interfaces"
	"github.com/m-mizutani/caskbump/pkg/infra/brew"
	"github.com/m-mizutani/caskbump/pkg/infra/command"
	"github.com/m-mizutani/caskbump/pkg/infra/git"
	"github.com/m-mizutani/caskbump/pkg/infra/github"
	"github.com/m-mizutani/caskbump/pkg/infra/pypi"
	"github.com/m-mizutani/caskbump/pkg/infra/slack"
	"github.com/m-mizutani/caskbump/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

type bumpDeps struct {
	github config.GitHub
	brew   config.Brew
	notify config.Notify
}

func (d *bumpDeps) flags() []cli.Flag {
	var flags []cli.Flag
	flags = append(flags, d.github.Flags()...)
	flags = append(flags, d.brew.Flags()...)
	flags = append(flags, d.notify.Flags()...)
	return flags
}

// newBumpUseCase wires the infra clients into a bump use case
func (d *bumpDeps) newBumpUseCase(ctx context.Context) (interfaces.BumpUseCase, error) {
	if err := d.notify.InitSentry(); err != nil {
		return nil, goerr.Wrap(err, "failed to initialize Sentry")
	}

	var ghOpts []github.Option
	if d.github.BaseURL != "" {
		ghOpts = append(ghOpts, github.WithBaseURL(d.github.BaseURL))
	}
	accounts, err := github.NewClient(ctx, d.github.Token, ghOpts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub client")
	}

	// brew reads the token from its own environment variable
	runner := command.New(command.WithEnv("HOMEBREW_GITHUB_API_TOKEN=" + d.github.Token))
	brewClient := brew.New(d.brew.BrewBin, runner)

	var opts []usecase.BumpOption
	if d.notify.SlackWebhookURL != "" {
		opts = append(opts, usecase.WithNotifier(slack.New(d.notify.SlackWebhookURL)))
	}

	return usecase.NewBump(usecase.BumpClients{
		Accounts:  accounts,
		Identity:  git.New(d.brew.GitBin, runner),
		Bumper:    brewClient,
		Manifests: brewClient,
		Scan:      brewClient,
		Upstream:  pypi.New(),
	}, opts...), nil
}
