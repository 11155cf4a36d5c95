package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/dojo-forms/internal/auth"
)

// NewTokenCommand creates the token command. It only needs the auth
// settings, never the database.
func NewTokenCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		name string
		id   string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an instructor bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := rootOpts.load()
			if err != nil {
				return err
			}

			instructorID := uuid.New()
			if id != "" {
				instructorID, err = uuid.Parse(id)
				if err != nil {
					return fmt.Errorf("--id: %w", err)
				}
			}

			tokens := auth.NewJWTManager(e.cfg.Auth.JWTSecret, e.cfg.Auth.JWTIssuer, e.cfg.Auth.TokenTTL)
			token, err := tokens.GenerateToken(instructorID, name)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "instructor display name")
	cmd.Flags().StringVar(&id, "id", "", "instructor id (default: random)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
