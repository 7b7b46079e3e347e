package main

import (
	"context"
	"fmt"

	"github.com/Sniper-Code/auth-server/internal/config"
	httphandler "github.com/Sniper-Code/auth-server/internal/handler/http"
	"github.com/Sniper-Code/auth-server/internal/logger"
	"github.com/Sniper-Code/auth-server/internal/server"
	"github.com/Sniper-Code/auth-server/internal/service"
	"github.com/Sniper-Code/auth-server/internal/store"
	"github.com/Sniper-Code/auth-server/internal/validators"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("auth-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)
	services := service.NewServices(*repositories, cfg, log)
	handler := httphandler.NewHandler(services, validators.NewAccountValidator(), log)

	srv, err := server.NewServer(handler, cfg.Server, log)
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
