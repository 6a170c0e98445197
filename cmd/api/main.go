package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"

	hhttp "weatherapp/internal/handler/http"
	hforecast "weatherapp/internal/handler/http/forecast"
	"weatherapp/internal/handler/http/requestid"
	"weatherapp/internal/observability/logging"
	"weatherapp/internal/observability/metrics"
	"weatherapp/internal/observability/tracing"
	fcUC "weatherapp/internal/usecase/forecast"
	"weatherapp/pkg/config"

	_ "weatherapp/docs" // swagger docs
)

// @title           WeatherApp API
// @version         1.0
// @description     Demonstration weather forecast REST API with OpenTelemetry metrics, tracing, and health checks.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	tracerProvider, err := tracing.NewProvider()
	if err != nil {
		logger.Error("failed to initialize tracing", slog.Any("error", err))
		os.Exit(1)
	}

	meterProvider, err := metrics.NewProvider()
	if err != nil {
		logger.Error("failed to initialize metrics exporter", slog.Any("error", err))
		os.Exit(1)
	}

	// Instrument creation happens once here; failure is fatal to
	// startup rather than handled per request.
	registry, err := metrics.NewRegistry(meterProvider)
	if err != nil {
		logger.Error("failed to create metrics registry", slog.Any("error", err))
		os.Exit(1)
	}

	version := config.GetEnvString("VERSION", "dev")
	handler := applyMiddleware(logger, setupRoutes(registry, version))

	runServer(logger, handler, version)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		logger.Error("meter provider shutdown failed", slog.Any("error", err))
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		logger.Error("tracer provider shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}

// setupRoutes registers all HTTP routes.
func setupRoutes(registry *metrics.Registry, version string) http.Handler {
	svc := fcUC.Service{Metrics: registry}

	checks := []hhttp.Check{hhttp.SelfCheck()}

	mux := http.NewServeMux()
	hforecast.Register(mux, svc)
	mux.Handle("GET /health", hhttp.NewHealthHandler(version, checks...))
	mux.Handle("GET /alive", hhttp.NewAliveHandler(version, checks...))
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// applyMiddleware wraps the handler with the middleware chain.
// Order: Request ID → Tracing → Recovery → Logging → Body Limit → Metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	chain := handler

	// Applied in reverse order (innermost to outermost).
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// runServer starts the HTTP server and blocks until shutdown completes.
func runServer(logger *slog.Logger, handler http.Handler, version string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTimeout := config.GetEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err := config.ValidatePositiveDuration(shutdownTimeout); err != nil {
		logger.Error("invalid SHUTDOWN_TIMEOUT", slog.Any("error", err))
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", config.GetEnvInt("PORT", 8080))
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}
