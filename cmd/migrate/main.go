// Command migrate applies the embedded catalog schema migrations.
//
//	migrate up       apply all pending migrations
//	migrate down     roll back the most recent migration
//	migrate status   list migrations and whether they are applied
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/exhibit-backend/internal/app"
	"github.com/heartmarshall/exhibit-backend/internal/config"
	"github.com/heartmarshall/exhibit-backend/migrations"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the exhibit catalog schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: withProvider(func(ctx context.Context, p *goose.Provider, log *slog.Logger) error {
				results, err := p.Up(ctx)
				for _, r := range results {
					log.Info("migration applied", slog.Int64("version", r.Source.Version), slog.Duration("duration", r.Duration))
				}
				return err
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: withProvider(func(ctx context.Context, p *goose.Provider, log *slog.Logger) error {
				r, err := p.Down(ctx)
				if err != nil {
					return err
				}
				log.Info("migration rolled back", slog.Int64("version", r.Source.Version))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show migration status",
			Args:  cobra.NoArgs,
			RunE: withProvider(func(ctx context.Context, p *goose.Provider, _ *slog.Logger) error {
				statuses, err := p.Status(ctx)
				if err != nil {
					return err
				}
				for _, s := range statuses {
					applied := "pending"
					if s.State == goose.StateApplied {
						applied = "applied " + s.AppliedAt.Format("2006-01-02 15:04:05")
					}
					fmt.Printf("%05d  %-30s  %s\n", s.Source.Version, s.Source.Path, applied)
				}
				return nil
			}),
		},
	)
	return root
}

type providerFunc func(ctx context.Context, p *goose.Provider, log *slog.Logger) error

func withProvider(fn providerFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger := app.NewLogger(cfg.Log)

		// goose requires *sql.DB.
		db, err := sql.Open("pgx", cfg.Database.DSN)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
		if err != nil {
			return fmt.Errorf("goose new provider: %w", err)
		}
		return fn(cmd.Context(), provider, logger)
	}
}
