package main

import (
	"context"
	"os"

	"github.com/taskdesk/taskdesk/app/cli"
	"github.com/taskdesk/taskdesk/app/config"
	"github.com/taskdesk/taskdesk/app/logger"
	"github.com/taskdesk/taskdesk/app/services"
	"github.com/taskdesk/taskdesk/app/store"
)

func main() {
	config.Load()
	logger.Init()
	log := logger.Logger

	storage := store.NewJSONFile(config.GetString("DATA_DIR", "."))
	hasher := services.NewHasher(config.GetString("HASH_SCHEME", "sha256"))

	// Explicit construction: store first, then the credential service, then
	// the services that depend on it.
	auth := services.NewAuthService(storage, hasher, log)
	users := services.NewUserService(auth)
	tasks := services.NewTaskService(storage, log)

	ctx := context.Background()
	if err := auth.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to load users")
	}
	if err := tasks.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to load tasks")
	}

	app := cli.New(auth, users, tasks, log, os.Stdin, os.Stdout)
	if err := app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("session ended with error")
		os.Exit(1)
	}
}
