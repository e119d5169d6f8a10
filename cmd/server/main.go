package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anonto42/local-food-lovers/backend/internal/repositories"
	"github.com/anonto42/local-food-lovers/backend/internal/router"
	"github.com/anonto42/local-food-lovers/backend/pkg/config"
	"github.com/anonto42/local-food-lovers/backend/pkg/logger"
	"github.com/rs/zerolog"
)

const (
	shutdownTimeout = 10 * time.Second
	indexTimeout    = 30 * time.Second
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}
	log := logger.New(cfg.Env, cfg.LogLevel)

	// Initialize database connection
	db, err := config.InitDB(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.CloseDB()

	reviewRepo := repositories.NewMongoReviewRepository(db.Database)
	favoriteRepo := repositories.NewMongoFavoriteRepository(db.Database)
	if err := ensureIndexes(reviewRepo, favoriteRepo); err != nil {
		// Listing still works without indexes; duplicate favorites are then only caught by the pre-check.
		log.Warn().Err(err).Msg("Failed to create indexes")
	}

	e := router.New(router.Dependencies{
		Logger:         log,
		AllowedOrigins: cfg.AllowedOrigins(),
		Reviews:        reviewRepo,
		Favorites:      favoriteRepo,
		DB:             db.Client,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("Local Food Lovers API starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Server stopped unexpectedly")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}
}

// indexer is implemented by every Mongo repository.
type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

// ensureIndexes tries every collection even when one fails, so the unique favorites index
// is not skipped because of an unrelated review index error.
func ensureIndexes(collections ...indexer) error {
	ctx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	defer cancel()

	var errs []error
	for _, c := range collections {
		if err := c.EnsureIndexes(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
