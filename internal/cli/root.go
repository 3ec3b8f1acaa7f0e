// Package cli defines the pourlog command line.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pourlog/internal/app"
	"github.com/KirkDiggler/pourlog/internal/config"
	"github.com/KirkDiggler/pourlog/internal/logging"
)

// Execute runs the root command and exits non-zero on failure
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	envFile string
	debug   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "pourlog",
		Short:        "pourlog: a personal drinking journal",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "load environment variables from this file (default .env if present)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging with source locations")

	cmd.AddCommand(
		newServeCmd(opts),
		newBotCmd(opts),
		newCatalogCmd(),
	)
	return cmd
}

// setup loads configuration and builds the application
func setup(cmd *cobra.Command, opts *rootOptions) (*app.App, error) {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Config{
		Format: cfg.LogFormat,
		Level:  cfg.LogLevel,
		Debug:  opts.debug,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}

	return app.New(cfg, logger)
}

// run restores the journal, runs fn until interrupted and saves the journal on the way out
func run(cmd *cobra.Command, opts *rootOptions, fn func(ctx context.Context, a *app.App) error) (err error) {
	a, err := setup(cmd, opts)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); err == nil {
			err = cerr
		}
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Restore(ctx); err != nil {
		return err
	}

	if err := fn(ctx, a); err != nil {
		return err
	}

	// ctx is done by now
	return a.Save(context.WithoutCancel(ctx))
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the journal over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, func(ctx context.Context, a *app.App) error {
				return a.Serve(ctx)
			})
		},
	}
}

func newBotCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Discord bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, func(ctx context.Context, a *app.App) error {
				return a.RunBot(ctx)
			})
		},
	}
}
