package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/contrib/instrumentation/runtime"

	"github.com/phohuongviet/restaurant-backend/internal/api"
	"github.com/phohuongviet/restaurant-backend/internal/config"
	"github.com/phohuongviet/restaurant-backend/internal/menu"
	"github.com/phohuongviet/restaurant-backend/internal/orders"
	"github.com/phohuongviet/restaurant-backend/internal/telemetry"
	"github.com/phohuongviet/restaurant-backend/internal/webhook"
)

func main() {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()

	shutdownTracer, err := telemetry.InitTracerProvider(ctx, "restaurant-api", "0.1.0")
	if err != nil {
		logger.Error("failed to initialize tracer", "error", err)
		os.Exit(1)
	}
	defer func() { _ = shutdownTracer(ctx) }()

	metricsHandler, shutdownMeter, err := telemetry.InitMeterProvider("restaurant-api", "0.1.0")
	if err != nil {
		logger.Error("failed to initialize meter", "error", err)
		os.Exit(1)
	}
	defer func() { _ = shutdownMeter(ctx) }()

	if err := runtime.Start(); err != nil {
		logger.Error("failed to start runtime instrumentation", "error", err)
		os.Exit(1)
	}

	catalog := menu.Default()
	restaurant := menu.Identity()

	menuHandler := menu.NewHandler(catalog, logger)
	forwarder := webhook.NewForwarder(cfg.WebhookURL, cfg.WebhookSecret, logger)
	orderHandler := orders.NewHandler(orders.NewBuilder(catalog, restaurant), forwarder, logger)

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", metricsHandler)
	mux.HandleFunc("GET /api/health", telemetry.WithHTTPRoute(api.Health(restaurant.Name)))
	mux.HandleFunc("GET /api/menu", telemetry.WithHTTPRoute(menuHandler.HandleList))
	mux.HandleFunc("POST /api/orders", telemetry.WithHTTPRoute(orderHandler.HandleCreate))
	mux.HandleFunc("/", api.NotFound)

	handler := api.CORS(cfg.AllowedOrigin)(api.Recover(logger)(mux))

	server := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: otelhttp.NewHandler(handler, "restaurant-api",
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				if r.Pattern != "" {
					return r.Pattern
				}
				return r.Method + " " + r.URL.Path
			}),
		),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("starting restaurant api", "port", cfg.Port, "webhook_configured", cfg.WebhookURL != "")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}
}
