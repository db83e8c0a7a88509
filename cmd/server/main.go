package main

import (
	"context"

	"github.com/joho/godotenv"

	"github.com/smoretta/books-api/internal/config"
	apphttp "github.com/smoretta/books-api/internal/handler/http"
	"github.com/smoretta/books-api/internal/logger"
	"github.com/smoretta/books-api/internal/modules"
	"github.com/smoretta/books-api/internal/modules/books"
	"github.com/smoretta/books-api/internal/modules/common"
	"github.com/smoretta/books-api/internal/server"
	"github.com/smoretta/books-api/internal/store"
	"github.com/smoretta/books-api/migrations"
)

func main() {
	_ = godotenv.Load(".env.local")

	log := logger.NewLogger("server")

	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error loading config")
	}

	ctx := context.Background()
	db, err := store.Open(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = migrations.Migrate(db.DB, cfg.Storage.DB.Driver); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	// The module list is static and closed: adding a resource module means
	// adding one entry here.
	registry := modules.NewRegistry(
		books.NewModule(),
		common.NewModule(),
	)

	container := &modules.Container{
		DB:     db,
		Config: cfg,
		Logger: log,
	}
	if err = registry.Init(container); err != nil {
		log.Fatal().Err(err).Msg("error initializing modules")
	}

	handler := apphttp.NewHandler(cfg.App, log)

	srv, err := server.NewServer(handler.Init(registry), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
