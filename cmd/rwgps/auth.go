package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newLoginCmd(opts *rootOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Exchange email and password for an auth token",
		Long: "Exchange email and password for an auth token. The password may also be\n" +
			"given as RWGPS_PASSWORD. Store the printed auth_token as RWGPS_AUTH_TOKEN.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv("RWGPS_PASSWORD")
			}
			if password == "" {
				return fmt.Errorf("a password is required: pass --password or set RWGPS_PASSWORD")
			}

			c, err := opts.newClient()
			if err != nil {
				return err
			}

			start := time.Now()
			tok, err := c.CreateAuthToken(cmd.Context(), email, password)
			elapsed := time.Since(start)
			if err != nil {
				log.Error().Err(err).Str("email", email).Dur("elapsed", elapsed).Msg("login failed")
				return err
			}
			log.Debug().Dur("elapsed", elapsed).Msg("login succeeded")
			return printJSON(cmd.OutOrStdout(), tok)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newWhoamiCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the user the auth token belongs to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			u, err := c.GetCurrentUser(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), u)
		},
	}
}
