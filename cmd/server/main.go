package main

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/notewall/notewall/internal/config"
	httphandler "github.com/notewall/notewall/internal/handler/http"
	"github.com/notewall/notewall/internal/logger"
	"github.com/notewall/notewall/internal/server"
	"github.com/notewall/notewall/internal/service"
	"github.com/notewall/notewall/internal/store"
	"github.com/notewall/notewall/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// .env is optional, real environments set variables directly
	_ = godotenv.Load()

	log := logger.NewLogger("notewall-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(cfg.Storage.DB.DSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repos := store.NewRepositories(db, log)
	services := service.NewServices(repos, cfg.App, log)
	handler := httphandler.NewHandler(services, cfg.App, log)

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
