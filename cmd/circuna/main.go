// Command circuna is the Circuna client: phone-number login, profile
// viewing, and custom profile creation against the remote Circuna API, with
// session state cached locally.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/circuna/circuna/internal/cli"
	"github.com/circuna/circuna/internal/core/ports"
	"github.com/circuna/circuna/internal/core/service"
	"github.com/circuna/circuna/internal/infrastructure/remote"
	"github.com/circuna/circuna/internal/infrastructure/storage/file"
	"github.com/circuna/circuna/internal/infrastructure/storage/redisstore"
	"github.com/circuna/circuna/internal/pkg/config"
	"github.com/circuna/circuna/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	store, err := newStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gateway := remote.NewClient(cfg.APIBaseURL, log)

	app := &cli.App{
		Sessions:      service.NewSessionService(gateway, store, log),
		Registrations: service.NewRegistrationService(gateway, store, log),
		Profiles:      service.NewProfileService(store, log),
		In:            os.Stdin,
		Out:           os.Stdout,
		Log:           log,
	}

	if err := app.Root().Execute(); err != nil {
		os.Exit(1)
	}
}

func newStore(cfg *config.Config) (ports.KVStore, error) {
	switch cfg.Storage {
	case "redis":
		client, err := redisstore.Connect(context.Background(), redisstore.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		return redisstore.NewStore(client), nil
	default:
		return file.NewStore(cfg.DataDir)
	}
}
