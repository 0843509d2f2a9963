package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"hris/internal/catalog"
	"hris/internal/dashboard"
	"hris/internal/platform/config"
	"hris/internal/platform/jobs"
	"hris/internal/platform/logging"
	"hris/internal/platform/metrics"
	"hris/internal/platform/source"
	"hris/internal/transport/http/api"
	pageshandler "hris/internal/transport/http/handlers/pages"
	"hris/internal/transport/http/middleware"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Config   config.Config
	Router   http.Handler
	Sessions *dashboard.Sessions
	Metrics  *metrics.Collector
	Jobs     *jobs.Service

	logger *slog.Logger
	cancel context.CancelFunc
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	registry, err := catalog.Default()
	if err != nil {
		return nil, fmt.Errorf("build page registry: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	app := &App{
		Config:   cfg,
		Sessions: dashboard.NewSessions(),
		Metrics:  metrics.New(),
		Jobs:     jobs.New(),
		logger:   slog.Default(),
		cancel:   cancel,
	}

	app.Jobs.Start(ctx)
	app.Jobs.Schedule(ctx, jobs.JobSessionSweep, cfg.SessionSweepInterval, app.sweepSessions)

	pages := pageshandler.NewHandler(registry, source.NewSimulated(cfg.SimulatedLatency), app.Sessions, app.Metrics, cfg.LayoutBreakpoint, cfg.LoadTimeout)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(app.logger, app.Metrics))
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.IsProduction()))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute, middleware.MutationsOnly()))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/metrics", app.handleMetrics)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RequireJSON)
		pages.RegisterRoutes(r)
	})

	app.Router = router
	return app, nil
}

func (a *App) handleMetrics(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if !a.Config.MetricsEnabled {
		api.Fail(w, http.StatusNotFound, "metrics_disabled", "metrics are disabled", requestID)
		return
	}
	snapshot := a.Metrics.Snapshot()
	snapshot["jobs"] = a.Jobs.History()
	api.Success(w, snapshot, requestID)
}

func (a *App) sweepSessions(context.Context) (any, error) {
	expired := a.Sessions.Sweep(a.Config.SessionTTL)
	a.Metrics.SessionsClosed(expired, true)
	if expired > 0 {
		a.logger.Info("expired idle sessions", "count", expired, "remaining", a.Sessions.Len())
	}
	return map[string]int{"expired": expired}, nil
}

// Close stops background jobs. Mounted sessions are dropped with the process.
func (a *App) Close() {
	a.cancel()
}

func Run() error {
	cfg := config.Load()
	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("hris server listening", "addr", cfg.Addr, "env", cfg.Environment)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
