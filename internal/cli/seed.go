package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/dojo-forms/internal/app"
	"github.com/heartmarshall/dojo-forms/internal/app/seeder"
)

type seedOptions struct {
	seederConfig string
	starter      string
	wipe         bool
	dryRun       bool
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the starter forms",
		Long: `Insert the starter forms into the catalog.

Forms that already exist for their rank are skipped, so the command can be
re-run safely. --wipe removes every form (alive and trashed) first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := rootOpts.load()
			if err != nil {
				return err
			}

			cfg, err := seeder.LoadConfig(opts.seederConfig)
			if err != nil {
				return err
			}
			// Flags override config.
			if cmd.Flags().Changed("starter") {
				cfg.StarterPath = opts.starter
			}
			if opts.wipe {
				cfg.Wipe = true
			}
			if opts.dryRun {
				cfg.DryRun = true
			}

			return rootOpts.withDeps(cmd.Context(), e, func(ctx context.Context, deps *app.Deps) error {
				res, err := seeder.New(e.logger, deps.Service, deps.Forms, *cfg).Run(ctx)
				if err != nil {
					return fmt.Errorf("seed: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted=%d inserted=%d skipped=%d errors=%d\n",
					res.Deleted, res.Inserted, res.Skipped, res.Errors)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&opts.seederConfig, "seeder-config", "", "seeder YAML config file")
	cmd.Flags().StringVar(&opts.starter, "starter", "", "YAML list of starter forms (default: built-in set)")
	cmd.Flags().BoolVar(&opts.wipe, "wipe", false, "delete every form before seeding")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "validate the starter list without writing")

	return cmd
}
