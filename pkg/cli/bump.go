package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/caskbump/pkg/cli/config"
	"github.com/m-mizutani/caskbump/pkg/utils/errutil"
	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"
)

func cmdBump() *cli.Command {
	var (
		bumpCfg config.Bump
		deps    bumpDeps
	)

	flags := append(bumpCfg.Flags(), deps.flags()...)

	return &cli.Command{
		Name:    "bump",
		Aliases: []string{"b"},
		Usage:   "Open cask version bump pull requests",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)
			cfg := bumpCfg.BuildConfig()

			logger.Info("Starting bump",
				slog.String("tap", cfg.Tap),
				slog.Any("casks", cfg.Names),
				slog.String("tag", string(cfg.Tag)),
				slog.Bool("livecheck", cfg.ScanMode()),
				slog.Bool("dry_run", cfg.DryRun.Enabled()),
			)

			uc, err := deps.newBumpUseCase(ctx)
			if err != nil {
				return err
			}
			defer errutil.FlushSentry()

			result, err := uc.Run(ctx, cfg)
			if err != nil {
				errutil.Handle(ctx, "bump failed", err)
				return err
			}

			if result.NoOp {
				logger.Info("Nothing to bump")
			} else {
				logger.Info("Bump completed", slog.Int("casks", len(result.Outcomes)))
			}
			return nil
		},
	}
}
