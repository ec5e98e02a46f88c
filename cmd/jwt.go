package main

import (
	"fmt"
	"time"

	"skychart/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// JWTCommand constructs the 'jwt' subcommand that mints an RS256 bearer token
// for the API. The subject must be the user ID the charts will belong to.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates a bearer token for the API",
		RunE: func(cmd *cobra.Command, args []string) error {
			subject, _ := cmd.Flags().GetString("subject")
			random, _ := cmd.Flags().GetBool("random")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			switch {
			case random:
				subject = uuid.NewString()
			case subject == "":
				return fmt.Errorf("either --subject or --random is required")
			}
			if _, err := uuid.Parse(subject); err != nil {
				return fmt.Errorf("subject must be a user UUID: %w", err)
			}

			signed, err := signToken(cfg.JWT.PrivateKey, subject, time.Now(), ttl)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.ErrOrStderr(), "subject:", subject)
			fmt.Fprintln(cmd.OutOrStdout(), signed)

			return nil
		},
	}

	cmd.Flags().String("subject", "", "User ID the token is issued for")
	cmd.Flags().Bool("random", false, "Issue the token for a new random user ID")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")

	return cmd
}

func signToken(privateKeyPEM, subject string, now time.Time, ttl time.Duration) (string, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return "", fmt.Errorf("could not parse RSA private key: %w", err)
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("could not sign JWT: %w", err)
	}

	return signed, nil
}
