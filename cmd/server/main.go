package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/mock-user-auth/internal/config"
	myHTTP "github.com/MKhiriev/mock-user-auth/internal/handler/http"
	"github.com/MKhiriev/mock-user-auth/internal/logger"
	"github.com/MKhiriev/mock-user-auth/internal/server"
	"github.com/MKhiriev/mock-user-auth/internal/service"
	"github.com/MKhiriev/mock-user-auth/internal/store"
	"github.com/MKhiriev/mock-user-auth/internal/workers"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// a .env file is optional; real env vars still win inside the config merge
	_ = godotenv.Load()

	log := logger.NewLogger("mock-user-auth-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(*storages, cfg, log)

	handler := myHTTP.NewHandler(services, log)

	backgroundWorkers := workers.NewWorkers(
		workers.NewSessionSweeper(services.Sessions, 0, log),
	)
	backgroundWorkers.Run()

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
