package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/bankcli/internal/client/cli"
	"github.com/dmitrijs2005/bankcli/internal/client/client"
	"github.com/dmitrijs2005/bankcli/internal/client/config"
	"github.com/dmitrijs2005/bankcli/internal/client/services"
	"github.com/dmitrijs2005/bankcli/internal/client/session"
	"github.com/dmitrijs2005/bankcli/internal/filex"
	"github.com/dmitrijs2005/bankcli/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := logging.New(cfg.LogBackend, cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var creds session.CredentialStore
	if cfg.Ephemeral {
		creds = session.NewMemoryCredentialStore("")
	} else {
		path, err := filex.EnsureParentDir(cfg.DatabasePath)
		if err != nil {
			log.Fatalf("%v", err)
		}
		repos, err := client.InitDatabase(ctx, path)
		if err != nil {
			log.Fatalf("error initializing database: %v", err)
		}
		defer repos.Close()
		creds = session.NewSQLiteCredentialStore(repos.DB)
	}

	store := session.New(creds, session.WithLogger(logger))

	apiClient, err := client.NewHTTPClient(cfg.ServerURL, store,
		client.WithTimeout(cfg.RequestTimeout),
		client.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("%v", err)
	}

	store.Hydrate(ctx)

	app := cli.NewApp(cfg, store, cli.Services{
		Auth:      services.NewAuthService(apiClient, store),
		Dashboard: services.NewDashboardService(apiClient, logger),
		Transfer:  services.NewTransferService(apiClient, logger),
		Statement: services.NewStatementService(apiClient, logger),
	}, logger)

	app.Run(ctx)
}
