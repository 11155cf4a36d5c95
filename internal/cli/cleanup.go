package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/dojo-forms/internal/app"
)

// NewCleanupCommand creates the cleanup command.
func NewCleanupCommand(rootOpts *RootOptions) *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Permanently remove forms that sat in the trash too long",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := rootOpts.load()
			if err != nil {
				return err
			}

			retention := e.cfg.Forms.TrashRetention()
			if cmd.Flags().Changed("older-than") {
				retention = olderThan
			}
			if retention <= 0 {
				return fmt.Errorf("--older-than must be positive (got %s)", retention)
			}

			return rootOpts.withDeps(cmd.Context(), e, func(ctx context.Context, deps *app.Deps) error {
				purged, err := deps.Service.PurgeTrash(ctx, retention)
				if err != nil {
					return fmt.Errorf("cleanup: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "purged %d form(s) trashed more than %s ago\n", purged, retention)
				return nil
			})
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", 0, "retention override (default: forms.trash_retention_days)")

	return cmd
}
