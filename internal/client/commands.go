// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/go-sub-keeper/internal/config"
	"github.com/MKhiriev/go-sub-keeper/internal/dispatch"
	"github.com/MKhiriev/go-sub-keeper/internal/logger"
	"github.com/MKhiriev/go-sub-keeper/internal/service"
	"github.com/MKhiriev/go-sub-keeper/models"
	"github.com/spf13/cobra"
)

const defaultTimeout = 30 * time.Second

type rootOptions struct {
	configPath string
	timeout    time.Duration

	app    *App
	newApp func(ctx context.Context, configPath string) (*App, error)
	logger *logger.Logger
}

// CLI is the go-sub-client command line.
type CLI struct {
	opts *rootOptions
	root *cobra.Command
}

var _ Client = (*CLI)(nil)

// NewCLI builds the command tree. The app is assembled lazily by the first
// command that runs, from the JSON file named by --config and the environment.
func NewCLI(version string, logger *logger.Logger) *CLI {
	opts := &rootOptions{
		logger: logger,
		newApp: func(ctx context.Context, configPath string) (*App, error) {
			cfg, err := config.GetClientConfig(configPath)
			if err != nil {
				return nil, fmt.Errorf("error getting configs: %w", err)
			}
			return NewApp(ctx, cfg, logger)
		},
	}

	root := newRootCommand(opts)
	root.Version = version
	return &CLI{opts: opts, root: root}
}

// ExecuteContext runs the selected command and releases the app afterwards,
// whatever the outcome.
func (c *CLI) ExecuteContext(ctx context.Context) error {
	err := c.root.ExecuteContext(ctx)
	if c.opts.app != nil {
		err = errors.Join(err, c.opts.app.Close())
	}
	return err
}

func newRootCommand(opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:           "go-sub-client",
		Short:         "Subscription sync client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if opts.app != nil {
				return nil
			}
			app, err := opts.newApp(cmd.Context(), opts.configPath)
			if err != nil {
				return err
			}
			opts.app = app
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "JSON config file path")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", defaultTimeout, "how long to wait for a server operation")

	root.AddCommand(
		newStatusCommand(opts),
		newCacheCommand(opts),
		newPurchaseCommand(opts, "register", "Link a purchase to the current user"),
		newPurchaseCommand(opts, "transfer", "Move a purchase to the current user"),
		newContentCommand(opts),
		newDeviceCommand(opts),
		newPushCommand(opts),
		newWatchCommand(opts),
	)

	return root
}

func newStatusCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Refresh the subscription list from the server and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			subs := opts.app.subscriptions
			if err := opts.await(cmd.Context(), subs.RefreshStatus); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), listOf(subs.Subscriptions()))
		},
	}
}

func newCacheCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cache",
		Short: "Print the locally cached subscription list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd.OutOrStdout(), listOf(opts.app.subscriptions.Subscriptions()))
		},
	}
}

func newPurchaseCommand(opts *rootOptions, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <productId> <purchaseToken>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			subs := opts.app.subscriptions
			call := subs.Register
			if use == "transfer" {
				call = subs.Transfer
			}

			err := opts.await(cmd.Context(), func(ctx context.Context) <-chan struct{} {
				return call(ctx, args[0], args[1])
			})
			// a conflict is reported through the cached record
			var failure *service.OperationError
			if errors.As(err, &failure) && failure.Outcome() == dispatch.Conflict {
				err = nil
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), listOf(subs.Subscriptions()))
		},
	}
}

func newContentCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "content basic|premium",
		Short:     "Fetch the content location of a tier",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(models.ContentTierBasic), string(models.ContentTierPremium)},
		RunE: func(cmd *cobra.Command, args []string) error {
			subs := opts.app.subscriptions
			tier := models.ContentTier(args[0])

			var fetch func(context.Context) <-chan struct{}
			switch tier {
			case models.ContentTierBasic:
				fetch = subs.FetchBasicContent
			case models.ContentTierPremium:
				fetch = subs.FetchPremiumContent
			default:
				return ErrUnknownTier
			}

			if err := opts.await(cmd.Context(), fetch); err != nil {
				return err
			}
			resource, ok := subs.Content(tier)
			if !ok {
				return ErrContentUnavailable
			}
			return printJSON(cmd.OutOrStdout(), resource)
		},
	}
}

func newDeviceCommand(opts *rootOptions) *cobra.Command {
	device := &cobra.Command{
		Use:   "device",
		Short: "Manage the push delivery token of this device",
	}

	device.AddCommand(
		&cobra.Command{
			Use:   "register <token>",
			Short: "Associate a push token with the current user",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return opts.await(cmd.Context(), func(ctx context.Context) <-chan struct{} {
					return opts.app.subscriptions.OnDeviceTokenRefreshed(ctx, args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "unregister <token>",
			Short: "Remove a push token from the current user",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return opts.await(cmd.Context(), func(ctx context.Context) <-chan struct{} {
					return opts.app.subscriptions.UnregisterDevice(ctx, args[0])
				})
			},
		},
	)

	return device
}

func newPushCommand(opts *rootOptions) *cobra.Command {
	push := &cobra.Command{
		Use:   "push",
		Short: "Work with push data payloads",
	}

	push.AddCommand(&cobra.Command{
		Use:   "apply <file|->",
		Short: "Apply a push data payload read from a file or stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			var data map[string]string
			if err = json.Unmarshal(raw, &data); err != nil {
				return fmt.Errorf("decode push payload: %w", err)
			}

			if err = opts.app.subscriptions.OnPushPayloadReceived(cmd.Context(), data); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), listOf(opts.app.subscriptions.Subscriptions()))
		},
	})

	return push
}

// await starts op and waits for its outcome to be applied. A failure
// recorded while op ran is returned.
func (o *rootOptions) await(ctx context.Context, op func(context.Context) <-chan struct{}) error {
	timeout := o.timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	subs := o.app.subscriptions
	before := subs.LastFailure()

	select {
	case <-op(ctx):
		if failure := subs.LastFailure(); failure != nil && failure != before {
			return failure
		}
		return nil
	case <-ctx.Done():
		return ErrTimedOut
	}
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

func listOf(records []models.SubscriptionStatus) models.SubscriptionStatusList {
	if records == nil {
		records = []models.SubscriptionStatus{}
	}
	return models.SubscriptionStatusList{Subscriptions: records}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
