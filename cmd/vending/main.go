package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vending-machine/internal/config"
	"vending-machine/internal/handler"
	"vending-machine/internal/router"
	"vending-machine/internal/service"
	"vending-machine/internal/stock"
	"vending-machine/internal/vending"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting vending machine API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load initial stock
	manifest, err := loadStock(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to load initial stock: %w", err)
	}

	machine := vending.New(manifest.Products, manifest.Change, logger)
	vendingService := service.NewVendingService(machine, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(vendingService, logger)
	changeHandler := handler.NewChangeHandler(vendingService, logger)
	purchaseHandler := handler.NewPurchaseHandler(vendingService, logger)

	mux := router.New(productHandler, changeHandler, purchaseHandler, cfg.Auth.OperatorAPIKey, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// loadStock reads the configured manifest, trying S3 first when enabled.
// Without a manifest the machine starts empty.
func loadStock(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*stock.Manifest, error) {
	if cfg.Stock.ManifestPath == "" {
		logger.Info().Msg("no stock manifest configured, starting empty")
		return &stock.Manifest{}, nil
	}

	fileLoader := stock.NewFileLoader(logger)

	var s3Loader stock.Loader
	if cfg.S3.Enabled {
		loader, err := stock.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		} else {
			s3Loader = loader
		}
	}

	loader := stock.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, cfg.S3.Enabled, logger)
	return loader.Load(ctx, cfg.Stock.ManifestPath)
}
