package main

import (
	"context"
	"fmt"

	"github.com/keepnotes/go-notes-server/internal/config"
	httphandler "github.com/keepnotes/go-notes-server/internal/handler/http"
	"github.com/keepnotes/go-notes-server/internal/logger"
	"github.com/keepnotes/go-notes-server/internal/server"
	"github.com/keepnotes/go-notes-server/internal/service"
	"github.com/keepnotes/go-notes-server/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-notes-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// secrets (sign key, DSN credentials) are deliberately kept out of logs
	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Str("token_issuer", cfg.Auth.TokenIssuer).
		Dur("token_duration", cfg.Auth.TokenDuration).
		Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg.Auth, log)
	handler := httphandler.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
