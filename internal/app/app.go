// Package app wires configuration, the catalog store and the services into
// runnable programs.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/exhibit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/exhibit-backend/internal/auth"
	"github.com/heartmarshall/exhibit-backend/internal/config"
	"github.com/heartmarshall/exhibit-backend/internal/transport/middleware"
	"github.com/heartmarshall/exhibit-backend/internal/transport/rest"
)

const limiterCleanupInterval = time.Minute

// Run is the HTTP server entry point. It loads configuration, connects to
// the catalog store, and serves the API until ctx is cancelled, then drains
// in-flight requests within the configured shutdown timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting exhibit",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("tokens_enabled", cfg.Auth.TokensEnabled()),
		slog.Int("result_limit", cfg.Search.ResultLimit),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to catalog store: %w", err)
	}
	defer pool.Close()

	svcs := NewServices(logger, pool, cfg)

	limiter := middleware.NewRateLimiter(limiterCleanupInterval)
	defer limiter.Stop()

	deps := rest.RouterDeps{
		Health:          rest.NewHealthHandler(pool, BuildVersion()),
		Search:          rest.NewSearchHandler(svcs.Search, cfg.Exhibit.ImageBaseURL, logger),
		Browse:          rest.NewBrowseHandler(svcs.Browse, cfg.Exhibit.ImageBaseURL, logger),
		Limiter:         limiter,
		Keywords:        svcs.Catalog,
		KeywordBatch:    cfg.Search.ResultLimit,
		CORS:            cfg.CORS,
		SearchRateLimit: cfg.Search.RateLimitPerMinute,
		Logger:          logger,
	}
	if cfg.Auth.TokensEnabled() {
		deps.Tokens = auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      rest.NewRouter(deps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	return serve(ctx, logger, srv, cfg.Server.ShutdownTimeout)
}

// serve runs srv until ctx is done and then shuts it down gracefully.
func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, shutdownTimeout time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
