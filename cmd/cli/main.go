package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/dmitrijs2005/fieldkeeper/internal/buildinfo"
	"github.com/dmitrijs2005/fieldkeeper/internal/client/api"
	"github.com/dmitrijs2005/fieldkeeper/internal/client/cli"
	"github.com/dmitrijs2005/fieldkeeper/internal/client/config"
	"github.com/dmitrijs2005/fieldkeeper/internal/client/credentials"
	"github.com/dmitrijs2005/fieldkeeper/internal/client/services"
	"github.com/dmitrijs2005/fieldkeeper/internal/client/storage"
	"github.com/dmitrijs2005/fieldkeeper/internal/filex"
	"github.com/dmitrijs2005/fieldkeeper/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx := context.Background()
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	if err := filex.EnsureParentDir(cfg.DatabasePath); err != nil {
		log.Fatalf("%v", err)
	}
	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer db.Close()

	store := credentials.New(storage.NewSQLiteRepository(db), logger)
	client := api.New(cfg.ServerBaseURL, store,
		api.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
		api.WithLogger(logger),
	)

	app := cli.NewApp(
		services.NewSessionService(client, store, logger),
		services.NewComplaintService(client, logger),
		services.NewHRService(client, logger),
		logger,
		os.Stdin,
		os.Stdout,
	)
	app.Run(ctx)

}
