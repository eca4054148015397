package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/caskbump/pkg/cli/config"
	controller "github.com/m-mizutani/caskbump/pkg/controller/http"
	"github.com/m-mizutani/caskbump/pkg/domain/types"
	"github.com/m-mizutani/caskbump/pkg/usecase"
	"github.com/m-mizutani/caskbump/pkg/utils/errutil"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		bumpCfg   config.Bump
		deps      bumpDeps
	)

	flags := append(serverCfg.Flags(), deps.github.WebhookFlags()...)
	flags = append(flags, bumpCfg.ServeFlags()...)
	flags = append(flags, deps.flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server bumping casks on GitHub release webhooks",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting caskbump server",
				slog.String("addr", serverCfg.Addr),
				slog.String("routes", serverCfg.RouteFile),
			)

			routes, err := serverCfg.LoadRoutes()
			if err != nil {
				return err
			}
			logger.Info("Routes loaded", slog.Int("count", len(routes.Routes)))

			bumpUC, err := deps.newBumpUseCase(ctx)
			if err != nil {
				return err
			}
			defer errutil.FlushSentry()

			// Create use cases
			webhookUC := usecase.NewWebhook(bumpUC, routes,
				usecase.WithBumpFlags(types.ParseFlag(bumpCfg.Force), types.ParseFlag(bumpCfg.DryRun)),
			)

			// Create HTTP server with options
			server, err := controller.NewServer(
				ctx,
				webhookUC,
				controller.WithAddr(serverCfg.Addr),
				controller.WithWebhookSecret(deps.github.WebhookSecret),
				controller.WithSentry(deps.notify.SentryDSN != ""),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			// let a running bump-cask-pr finish before the process exits
			logger.Info("Waiting for running bumps", slog.Duration("timeout", serverCfg.DrainTimeout))
			drainCtx, cancelDrain := context.WithTimeout(context.Background(), serverCfg.DrainTimeout)
			defer cancelDrain()

			if err := webhookUC.Wait(drainCtx); err != nil {
				return err
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
