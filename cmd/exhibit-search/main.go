// Command exhibit-search runs keyword searches against the catalog store
// from the command line.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/exhibit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/exhibit-backend/internal/app"
	"github.com/heartmarshall/exhibit-backend/internal/auth"
	"github.com/heartmarshall/exhibit-backend/internal/cli"
	"github.com/heartmarshall/exhibit-backend/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(open, app.BuildVersion())
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func open(ctx context.Context) (*cli.Backend, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to catalog store: %w", err)
	}

	svcs := app.NewServices(logger, pool, cfg)
	backend := &cli.Backend{Search: svcs.Search, Keywords: svcs.Browse}
	if cfg.Auth.TokensEnabled() {
		backend.Tokens = auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
	}
	return backend, pool.Close, nil
}
