// Command devapi runs the local stand-in for the remote Circuna API. Point
// the client at it with CIRCUNA_API_URL=http://localhost:8000. Users live in
// memory unless MONGO_URI is set.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/circuna/circuna/internal/devapi"
	"github.com/circuna/circuna/internal/pkg/config"
	"github.com/circuna/circuna/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	repo, cleanup, err := newRepository(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise repository")
	}
	defer cleanup()

	e := devapi.NewRouter(repo, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("dev API listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func newRepository(ctx context.Context, cfg *config.Config) (devapi.UserRepository, func(), error) {
	if cfg.Mongo.URI == "" {
		return devapi.NewMemoryRepository(), func() {}, nil
	}

	client, db, err := devapi.ConnectMongo(ctx, devapi.MongoConfig{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}
	return devapi.NewMongoRepository(db), cleanup, nil
}
