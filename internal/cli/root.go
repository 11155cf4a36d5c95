// Package cli implements the formsctl command tree.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/dojo-forms/internal/app"
	"github.com/heartmarshall/dojo-forms/internal/config"
)

// defaultTimeout bounds a single maintenance run.
const defaultTimeout = 5 * time.Minute

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Timeout    time.Duration
}

// NewRootCommand creates the formsctl root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "formsctl",
		Short:         "Maintenance tool for the dojo forms catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default: $CONFIG_PATH or ./config.yaml)")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", defaultTimeout, "deadline for the whole run")

	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewCleanupCommand(opts))
	cmd.AddCommand(NewTokenCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// env is what every command needs before touching the database.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
}

func (o *RootOptions) load() (*env, error) {
	cfg, err := config.LoadPath(o.ConfigPath)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, logger: app.NewLogger(cfg.Log)}, nil
}

// withDeps runs fn with a connected dependency set under the run deadline.
func (o *RootOptions) withDeps(ctx context.Context, e *env, fn func(context.Context, *app.Deps) error) error {
	ctx, cancel := context.WithTimeout(ctx, o.Timeout)
	defer cancel()

	deps, err := app.Build(ctx, e.cfg, e.logger)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer deps.Close()

	return fn(ctx, deps)
}
