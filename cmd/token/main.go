package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-sub-keeper/internal/config"
	"github.com/MKhiriev/go-sub-keeper/internal/logger"
	"github.com/MKhiriev/go-sub-keeper/internal/service"
	"github.com/spf13/cobra"
)

// go-sub-token prints an identity token for jwt mode. The signing parameters
// come from APP_TOKEN_SIGN_KEY, APP_TOKEN_ISSUER and APP_TOKEN_DURATION and
// can be overridden with flags.
func main() {
	log := logger.NewClientLogger("go-sub-token")

	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		log.Err(err).Msg("token issue error")
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var override config.App

	cmd := &cobra.Command{
		Use:           "go-sub-token <userID>",
		Short:         "Issue an X-FireIDToken value for a user in jwt identity mode",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.GetTokenConfig()
			if err != nil {
				return err
			}
			if override.TokenSignKey != "" {
				cfg.TokenSignKey = override.TokenSignKey
			}
			if override.TokenIssuer != "" {
				cfg.TokenIssuer = override.TokenIssuer
			}
			if override.TokenDuration > 0 {
				cfg.TokenDuration = override.TokenDuration
			}

			issuer, err := service.NewTokenIssuer(cfg)
			if err != nil {
				return err
			}
			token, err := issuer.Issue(args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&override.TokenSignKey, "sign-key", "", "HS256 signing key")
	cmd.Flags().StringVar(&override.TokenIssuer, "issuer", "", "token issuer")
	cmd.Flags().DurationVar(&override.TokenDuration, "duration", 0, "token lifetime")

	return cmd
}
