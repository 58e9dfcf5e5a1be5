package main

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/domain/port/gateway"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/logger"
	"github.com/guidy-app/joblight/internal/infrastructure/bootstrap"
	"github.com/guidy-app/joblight/internal/infrastructure/config"
)

type rootOptions struct {
	quiet bool
}

func (o *rootOptions) logger(cfg *config.Config) coreport.Logger {
	if o.quiet {
		return logger.NewNoopLogger()
	}
	return logger.NewWithOptions(logger.Options{
		Level:  cfg.Logger.Level,
		Format: cfg.Logger.Format,
		Output: "stderr",
	})
}

// withApp loads configuration, builds the container and runs fn with a context cancelled on SIGINT or SIGTERM
func withApp(cmd *cobra.Command, opts *rootOptions, fn func(ctx context.Context, app *bootstrap.Container) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := opts.logger(cfg)
	defer func() { _ = log.Flush() }()

	app, err := bootstrap.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	return fn(ctx, app)
}

func migrateCmd(opts *rootOptions) *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Long: `Apply every pending database migration.

With --seed, a demo user with a CV, a public portfolio and a few sections is created
when it does not exist yet.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.Container) error {
				if err := app.DB.Migrate(ctx); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")

				if seed {
					if err := app.DB.SeedDemoData(ctx); err != nil {
						return fmt.Errorf("seed: %w", err)
					}
					fmt.Fprintln(cmd.OutOrStdout(), "demo data seeded")
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "insert demo data after migrating")
	return cmd
}

func reconcileCmd(opts *rootOptions) *cobra.Command {
	var olderThan time.Duration
	var limit int

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Refresh pending payments from their providers",
		Long: `Ask each provider for the status of payments still pending after --older-than.

Payments found successful are settled exactly as if their webhook had arrived.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.Container) error {
				n, err := app.Payments.ReconcilePending(ctx, olderThan, limit)
				if err != nil {
					return fmt.Errorf("reconcile: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d payment(s) updated\n", n)
				return nil
			})
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", 5*time.Minute, "only payments pending for at least this long")
	cmd.Flags().IntVarP(&limit, "limit", "n", 100, "maximum number of payments to check")
	return cmd
}

func expireCmd(opts *rootOptions) *cobra.Command {
	var olderThan time.Duration
	var limit int

	cmd := &cobra.Command{
		Use:   "expire",
		Short: "Expire payments that stayed pending too long",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.Container) error {
				ttl := olderThan
				if ttl <= 0 {
					ttl = app.Config.Payment.PendingTTL
				}
				n, err := app.Payments.ExpireStale(ctx, ttl, limit)
				if err != nil {
					return fmt.Errorf("expire: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d payment(s) expired\n", n)
				return nil
			})
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", 0, "pending age to expire (default payment.pendingTtl)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 100, "maximum number of payments to expire")
	return cmd
}

func providersCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List enabled payment providers and their capabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			for _, p := range bootstrap.Providers(cfg.Providers, opts.logger(cfg)) {
				var capabilities []string
				for _, c := range gateway.Capabilities(p) {
					capabilities = append(capabilities, string(c))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", p.Name(), strings.Join(capabilities, ","))
			}
			return nil
		},
	}
}
