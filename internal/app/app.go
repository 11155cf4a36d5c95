// Package app wires configuration, storage, the form service and the HTTP
// transport into a runnable server.
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

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/dojo-forms/internal/config"
	"github.com/heartmarshall/dojo-forms/internal/transport/middleware"
	"github.com/heartmarshall/dojo-forms/internal/transport/rest"
)

// rateLimiterSweep is how often idle rate limit buckets are dropped.
const rateLimiterSweep = 5 * time.Minute

// Run loads configuration, serves the API and blocks until ctx is cancelled
// or the listener fails. In-flight requests get ShutdownTimeout to finish.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("auth_required", cfg.Auth.Required),
	)

	deps, err := Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer deps.Close()

	limiter := middleware.NewRateLimiter(rateLimiterSweep)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(cfg, logger, deps, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// NewHandler assembles the router and the middleware stack.
//
// Order, outermost first: request id, CORS, token authentication, access
// log, panic recovery. Mutating form routes additionally require an
// instructor (when auth is required) and are rate limited.
func NewHandler(cfg *config.Config, logger *slog.Logger, deps *Deps, limiter *middleware.RateLimiter) http.Handler {
	var requireInstructor middleware.Middleware
	if cfg.Auth.Required {
		requireInstructor = middleware.RequireInstructor
	}
	write := middleware.Chain(requireInstructor, limiter.Limit(cfg.Forms.WriteRateLimit))

	routes := rest.RouterConfig{
		Forms:  rest.NewFormHandler(deps.Service, logger, cfg.Forms.HistoryLimit),
		Health: rest.NewHealthHandler(deps.Pool, BuildVersion()),
		Write:  write,
	}
	if cfg.Metrics.Enabled {
		routes.Metrics = promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{Registry: deps.Registry})
		routes.MetricsPath = cfg.Metrics.Path
		routes.Instrument = middleware.NewHTTPMetrics(deps.Registry).Instrument
	}

	return middleware.Chain(
		middleware.RequestID,
		middleware.CORS(cfg.CORS),
		middleware.Authenticate(deps.Tokens),
		middleware.Logger(logger),
		middleware.Recovery(logger),
	)(rest.NewRouter(routes))
}
