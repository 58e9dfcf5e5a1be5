package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/api/dto"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/api/handler"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/api/middleware"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/api/routes"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/logger"
	"github.com/guidy-app/joblight/internal/infrastructure/bootstrap"
	"github.com/guidy-app/joblight/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	appLogger := logger.NewWithOptions(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		CallerInfo: cfg.Logger.CallerInfo,
	})

	if warnings := cfg.ProductionWarnings(); len(warnings) > 0 {
		appLogger.Warn("Production configuration has weak settings", map[string]any{"warnings": warnings})
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, appLogger)
	stop()

	if err != nil {
		appLogger.Error("Server stopped with an error", map[string]any{"error": err.Error()})
	}
	_ = appLogger.Flush()
	if err != nil {
		os.Exit(1)
	}
}

// run serves the API until ctx is cancelled, then drains requests before
// releasing the database and the wallet executor
func run(ctx context.Context, cfg *config.Config, appLogger coreport.Logger) error {
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := dto.RegisterValidators(); err != nil {
		return fmt.Errorf("register validators: %w", err)
	}

	startCtx, cancelStart := context.WithTimeout(ctx, 30*time.Second)
	app, err := bootstrap.New(startCtx, cfg, appLogger)
	cancelStart()
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}

	if err := app.DB.Migrate(ctx); err != nil {
		return errors.Join(fmt.Errorf("run migrations: %w", err), app.Close())
	}

	enabled := make([]string, 0, 4)
	for _, p := range app.Payments.GetProviders(ctx) {
		enabled = append(enabled, string(p.Name))
	}
	if len(enabled) == 0 {
		appLogger.Warn("No payment provider is enabled", nil)
	}

	router := gin.New()
	routes.SetupMiddlewares(router, cfg.Server.AllowedOrigins, appLogger)
	routes.SetupRoutes(router, routes.Handlers{
		Payment:   handler.NewPaymentHandler(app.Payments, appLogger),
		Webhook:   handler.NewWebhookHandler(app.Payments, appLogger),
		Fapshi:    handler.NewFapshiHandler(app.Fapshi, appLogger),
		AI:        handler.NewAIHandler(app.AI, appLogger),
		Portfolio: handler.NewPortfolioHandler(app.Portfolio, app.Stats, appLogger),
		Section:   handler.NewSectionHandler(app.Sections, appLogger),
		CV:        handler.NewCVHandler(app.CV, appLogger),
		Health:    handler.NewHealthHandler(app.DB),
	}, routes.Options{
		Auth:          middleware.AuthConfig{Secret: cfg.Auth.JWTSecret, Issuer: cfg.Auth.Issuer},
		CinetPayDebug: cfg.Providers.CinetPay.Debug,
	}, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":      server.Addr,
			"env":       cfg.Environment,
			"providers": enabled,
		})
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return errors.Join(fmt.Errorf("listen: %w", err), app.Close())
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down server", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// no wallet job may be queued once the executor closes, so requests drain first
	var shutdownErr error
	if err := server.Shutdown(shutdownCtx); err != nil {
		shutdownErr = fmt.Errorf("shutdown: %w", err)
	}
	if err := app.Close(); err != nil {
		shutdownErr = errors.Join(shutdownErr, fmt.Errorf("release resources: %w", err))
	}
	if shutdownErr == nil {
		appLogger.Info("Server exited gracefully", nil)
	}
	return shutdownErr
}
