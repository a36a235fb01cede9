package client

import (
	"context"
	"io"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-sub-keeper/internal/notify"
	"github.com/MKhiriev/go-sub-keeper/internal/workers"
	"github.com/spf13/cobra"
)

func newWatchCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Keep the cache in sync and print every change until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return opts.app.watch(ctx, cmd.OutOrStdout())
		},
	}
}

// watch refreshes once, then runs the periodic refresh, the push listener and
// the observers until ctx is done.
func (a *App) watch(ctx context.Context, out io.Writer) error {
	listener, err := a.pushListener(ctx)
	if err != nil {
		return err
	}

	a.subscriptions.RefreshStatus(ctx)

	return workers.New(
		workers.Func(a.runRefreshJob),
		workers.Func(a.logBusy),
		workers.Func(func(ctx context.Context) error { return a.printUpdates(ctx, out) }),
		listener,
	).Run(ctx)
}

func (a *App) runRefreshJob(ctx context.Context) error {
	a.refreshJob.Start(ctx, a.refreshInterval)
	<-ctx.Done()
	a.refreshJob.Stop()
	return nil
}

func (a *App) logBusy(ctx context.Context) error {
	busy, updates, cancel := a.subscriptions.ObserveBusy()
	defer cancel()

	a.logger.Info().Bool("busy", busy).Msg("request activity")
	for {
		select {
		case <-ctx.Done():
			return nil
		case busy, ok := <-updates:
			if !ok {
				return nil
			}
			a.logger.Info().Bool("busy", busy).Msg("request activity")
		}
	}
}

func (a *App) printUpdates(ctx context.Context, out io.Writer) error {
	current, updates, cancel := a.subscriptions.ObserveSubscriptions()
	defer cancel()

	if err := printJSON(out, listOf(current)); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case records, ok := <-updates:
			if !ok {
				return nil
			}
			if err := printJSON(out, listOf(records)); err != nil {
				return err
			}
		}
	}
}

// pushListener returns nil when no relay is configured.
func (a *App) pushListener(ctx context.Context) (workers.Worker, error) {
	if a.redis == nil {
		a.logger.Info().Msg("push relay not configured, relying on periodic refresh")
		return nil, nil
	}

	listener, err := notify.NewRedisPushListener(a.redis, a.pushChannel, func(data map[string]string) {
		if err := a.subscriptions.OnPushPayloadReceived(ctx, data); err != nil {
			a.logger.Err(err).Str("func", "*App.pushListener").Msg("push payload not applied")
		}
	}, a.logger)
	if err != nil {
		return nil, err
	}
	return listener, nil
}
