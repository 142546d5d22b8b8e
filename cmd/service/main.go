// Package main is the entry point for the service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zoevet/pet-travel-service/internal/adapters/clients"
	"github.com/zoevet/pet-travel-service/internal/adapters/clients/acl"
	"github.com/zoevet/pet-travel-service/internal/adapters/flags"
	httpapi "github.com/zoevet/pet-travel-service/internal/adapters/http"
	"github.com/zoevet/pet-travel-service/internal/adapters/http/handlers"
	"github.com/zoevet/pet-travel-service/internal/adapters/render"
	"github.com/zoevet/pet-travel-service/internal/app"
	"github.com/zoevet/pet-travel-service/internal/platform/catalog"
	"github.com/zoevet/pet-travel-service/internal/platform/config"
	"github.com/zoevet/pet-travel-service/internal/platform/logging"
	"github.com/zoevet/pet-travel-service/internal/platform/telemetry"
	"github.com/zoevet/pet-travel-service/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	slog.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Load the destination catalog (built-in unless a file is configured)
	travelCatalog, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("loading destination catalog: %w", err)
	}

	// 6. Create health registry and feature flags
	healthRegistry := ports.NewHealthRegistry()
	featureFlags := flags.New(cfg.Features)

	// 7. Create the instrumented HTTP client for the guidance model API
	apiKey := cfg.Guidance.APIKey
	guidanceHTTP, err := clients.New(&clients.Config{
		BaseURL:     cfg.Guidance.BaseURL,
		ServiceName: "gemini",
		Timeout:     cfg.Client.Timeout,
		Retry:       cfg.Client.Retry,
		Circuit:     cfg.Client.CircuitBreaker,
		AuthFunc: func(req *http.Request) {
			req.Header.Set("x-goog-api-key", apiKey)
		},
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("creating guidance HTTP client: %w", err)
	}

	// 8. Create the guidance model adapter (ACL pattern)
	guidanceClient := acl.NewGeminiAdapter(guidanceHTTP, cfg.Guidance.Model, cfg.Clinic.Country)

	if err := healthRegistry.Register(guidanceClient); err != nil {
		return fmt.Errorf("registering guidance health check: %w", err)
	}

	// 9. Create application services
	quoteService := app.NewQuoteService(app.QuoteServiceConfig{
		Catalog: travelCatalog,
		Logger:  logger,
	})

	guidanceService := app.NewGuidanceService(app.GuidanceServiceConfig{
		Client: guidanceClient,
		Flags:  featureFlags,
		Logger: logger,
	})

	// 10. Create handlers
	renderer, err := render.NewDocumentRenderer()
	if err != nil {
		return fmt.Errorf("creating document renderer: %w", err)
	}

	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo)
	travelHandler := handlers.NewTravelHandler(handlers.TravelHandlerConfig{
		Quotes:   quoteService,
		Guidance: guidanceService,
		Renderer: renderer,
		Clinic: render.ClinicInfo{
			Name:     cfg.Clinic.Name,
			Phone:    cfg.Clinic.Phone,
			Email:    cfg.Clinic.Email,
			Address:  cfg.Clinic.Address,
			Schedule: cfg.Clinic.Schedule,
		},
		WhatsAppNumber: cfg.Clinic.WhatsAppNumber,
		Logger:         logger,
	})

	// 11. Create HTTP server
	server := httpapi.New(&cfg.Server, logger)

	// 12. Setup router with all middleware and routes
	routerCfg := httpapi.RouterConfig{
		Logger:        logger,
		AppConfig:     &cfg.App,
		HealthHandler: healthHandler,
		TravelHandler: travelHandler,
		Timeout:       httpapi.DefaultRequestTimeout,
	}
	httpapi.SetupRouter(server.Engine(), routerCfg)

	// 13. Start server (non-blocking)
	serverErr := server.Start()

	// 14. Wait for shutdown signal
	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until a shutdown signal is received or server error occurs.
// It then performs graceful shutdown of the HTTP server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *httpapi.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	// Listen for OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		// Server error during startup or runtime
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	// Graceful shutdown sequence
	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	// Stop accepting new requests, drain in-flight
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
