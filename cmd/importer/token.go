package main

import (
	"fmt"

	"safety-tracker-backend/internal/auth"
	"safety-tracker-backend/internal/config"

	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var as string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API token for an operator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			identity := auth.NewIdentity(as)
			if !identity.Authenticated() {
				return withCode(exitUsage, fmt.Errorf("--as is required"))
			}

			cfg, err := config.Load()
			if err != nil {
				return withCode(exitUsage, err)
			}
			svc, err := auth.NewAuthService(auth.NewAuthConfig(cfg.JWTSecret))
			if err != nil {
				return withCode(exitUsage, err)
			}

			token, err := svc.GenerateJWT(identity)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&as, "as", "", "Operator the token is issued to")
	_ = cmd.MarkFlagRequired("as")

	return cmd
}
