package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/app"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/config"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/observability"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	envErr := godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	observability.InitializeLogger(cfg.Logger)
	defer observability.Sync()
	logger := observability.GetLogger()
	if envErr != nil {
		logger.Debug("no .env file found, using environment")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close(context.Background())

	debounce, err := cfg.UI.DebounceDuration()
	if err != nil {
		return err
	}

	var upstream server.Upstream
	if a.Client != nil {
		upstream = a.Client
		if !a.Client.CheckHealth(ctx) {
			logger.Warn("prediction service not healthy at startup", zap.String("base_url", a.Client.BaseURL()))
		}
	}

	gin.SetMode(gin.ReleaseMode)
	srv := server.NewServer(a.Store, a.Explainer, upstream, logger.Named("http"), server.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		SearchDebounce: debounce,
		TopK:           cfg.Prediction.TopK,
	})
	defer srv.Close()

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           srv.SetupRouter(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.Int("port", cfg.Server.Port), zap.String("prediction_mode", cfg.Prediction.Mode))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	srv.Close()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
