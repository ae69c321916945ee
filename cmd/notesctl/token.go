package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-notes-analyzer/pkg/jwt"
)

type tokenOptions struct {
	secret string
	issuer string
	userID string
	email  string
	role   string
	expiry time.Duration
}

func newTokenCmd() *cobra.Command {
	opts := &tokenOptions{}
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for the API",
		Long: `Mint a signed access token accepted by the /v1 API.

Examples:
  # Token for a random user, secret from the environment
  JWT_ACCESS_SECRET=dev notesctl token

  # Token for a known user valid for one hour
  notesctl token --secret dev --user 3f0c... --expiry 1h`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runToken(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.secret, "secret", os.Getenv("JWT_ACCESS_SECRET"), "signing secret (defaults to JWT_ACCESS_SECRET)")
	cmd.Flags().StringVar(&opts.issuer, "issuer", "meeting-notes-analyzer", "token issuer")
	cmd.Flags().StringVar(&opts.userID, "user", "", "user id (random when empty)")
	cmd.Flags().StringVar(&opts.email, "email", "", "user email")
	cmd.Flags().StringVar(&opts.role, "role", "user", "user role")
	cmd.Flags().DurationVar(&opts.expiry, "expiry", 15*time.Minute, "token lifetime")
	return cmd
}

func runToken(cmd *cobra.Command, opts *tokenOptions) error {
	if opts.secret == "" {
		return fmt.Errorf("a signing secret is required: set --secret or JWT_ACCESS_SECRET")
	}

	userID := uuid.New()
	if opts.userID != "" {
		parsed, err := uuid.Parse(opts.userID)
		if err != nil {
			return fmt.Errorf("invalid user id: %w", err)
		}
		userID = parsed
	}

	token, err := jwt.NewManager(opts.secret, opts.expiry, opts.issuer).
		GenerateAccessToken(userID, opts.email, opts.role)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
	return err
}
